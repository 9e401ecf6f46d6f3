package usecase

import (
	"context"

	"campusvoice/internal/domain/entity"
	"campusvoice/internal/domain/repository"
	"campusvoice/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type UpdateProfileInput struct {
	Name       string
	StudentID  string
	Phone      string
	Department string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.Department != "" && !entity.ValidDepartment(input.Department) {
		return nil, errors.BadRequest("Invalid department", nil)
	}

	user.Name = input.Name
	user.StudentID = input.StudentID
	user.Phone = input.Phone
	if input.Department != "" {
		user.Department = input.Department
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return uc.userRepo.GetByID(ctx, uid)
}

func (uc *UserUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, limit, offset)
}
