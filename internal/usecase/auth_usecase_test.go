package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusvoice/internal/domain/entity"
	"campusvoice/pkg/errors"
)

type fakeAuthClient struct {
	uids map[string]string // email -> uid
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	uid := "uid-" + email
	f.uids[email] = uid
	return uid, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	for email, uid := range f.uids {
		if token == "token-"+email {
			return uid, nil
		}
	}
	return "", errors.Unauthorized("Invalid token", nil)
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	if _, ok := f.uids[email]; !ok {
		return "", errors.Unauthorized("Invalid credentials", nil)
	}
	return "token-" + email, nil
}

func newAuthFixture(users ...*entity.User) (*AuthUseCase, *fakeUserRepo, *fakeAuthClient) {
	userRepo := newFakeUserRepo(users...)
	authClient := &fakeAuthClient{uids: map[string]string{}}
	for _, u := range users {
		authClient.uids[u.Email] = u.ID
	}
	return NewAuthUseCase(userRepo, authClient, "famt.ac.in"), userRepo, authClient
}

func TestRegisterRestrictedToCampusDomain(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "someone@gmail.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Contains(t, err.Error(), "famt.ac.in")
}

func TestRegisterCreatesStudent(t *testing.T) {
	uc, userRepo, _ := newAuthFixture()

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:     "aditya@famt.ac.in",
		Password:  "secret123",
		Name:      "Aditya Kulkarni",
		StudentID: "FAMT-2024-021",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleStudent, result.User.Role)
	assert.Equal(t, entity.DefaultDepartment, result.User.Department)
	assert.True(t, result.User.IsActive)
	assert.NotEmpty(t, result.Token)

	stored, err := userRepo.GetByID(context.Background(), result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "aditya@famt.ac.in", stored.Email)
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	uc, _, _ := newAuthFixture(&entity.User{ID: "u1", Email: "aditya@famt.ac.in", Role: entity.RoleStudent})

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "aditya@famt.ac.in",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "User already exists")
}

func TestLogin(t *testing.T) {
	uc, _, _ := newAuthFixture(&entity.User{ID: "u1", Email: "aditya@famt.ac.in", Role: entity.RoleStudent})

	result, err := uc.Login(context.Background(), "aditya@famt.ac.in", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "u1", result.User.ID)
	assert.False(t, result.User.LastLogin.IsZero())
}

func TestLoginBadCredentials(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, err := uc.Login(context.Background(), "ghost@famt.ac.in", "wrong")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	uc, _, _ := newAuthFixture(&entity.User{ID: "u1", Email: "aditya@famt.ac.in", Role: entity.RoleStudent})

	_, err := uc.AdminLogin(context.Background(), "aditya@famt.ac.in", "secret123")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Contains(t, err.Error(), "No admin account found")
}

func TestAdminLogin(t *testing.T) {
	uc, _, _ := newAuthFixture(&entity.User{ID: "a1", Email: "registrar@famt.ac.in", Role: entity.RoleAdmin})

	result, err := uc.AdminLogin(context.Background(), "registrar@famt.ac.in", "secret123")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, result.User.Role)
}
