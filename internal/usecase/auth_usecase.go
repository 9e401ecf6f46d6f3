package usecase

import (
	"context"
	"strings"
	"time"

	"campusvoice/internal/domain/entity"
	"campusvoice/internal/domain/repository"
	"campusvoice/pkg/errors"
	"campusvoice/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
	campusDomain string
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient, campusDomain string) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
		campusDomain: campusDomain,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	Name      string
	StudentID string
	Phone     string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

// Register creates a student account. The admin role is never reachable
// from here; admins are seeded out of band.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if uc.campusDomain != "" && !strings.HasSuffix(input.Email, "@"+uc.campusDomain) {
		return nil, errors.BadRequest("Only @"+uc.campusDomain+" emails allowed for registration", nil)
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("User already exists", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:         uid,
		Email:      input.Email,
		Name:       input.Name,
		StudentID:  input.StudentID,
		Phone:      input.Phone,
		Role:       entity.RoleStudent,
		Department: entity.DefaultDepartment,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid email or password", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	user.LastLogin = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Warn("Failed to record last login for %s: %v", uid, err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

// AdminLogin rejects non-admin accounts before any credential exchange.
func (uc *AuthUseCase) AdminLogin(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil || user == nil || user.Role != entity.RoleAdmin {
		return nil, errors.Unauthorized("No admin account found with this email", nil)
	}

	return uc.Login(ctx, email, password)
}
