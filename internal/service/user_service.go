package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"usedphoneshop/internal/model"
	"usedphoneshop/internal/repository"
	"usedphoneshop/internal/utils"
)

// UserService provides admin-only account management
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, id int) error
}

type userService struct {
	userRepo repository.UserRepository
	digester utils.PasswordDigester
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, digester utils.PasswordDigester) UserService {
	return &userService{userRepo: userRepo, digester: digester}
}

// ListUsers returns all accounts in insertion order
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser overwrites the provided fields of an account; omitted fields
// stay unchanged. A provided password is re-digested before storage. The
// row is written in a single statement so the update never partially
// applies.
func (s *userService) UpdateUser(ctx context.Context, id int, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Password != nil && *req.Password != "" {
		passwordHash, err := s.digester.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash new password: %w", err)
		}
		user.PasswordHash = passwordHash
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to update user in repository: %w", err)
	}
	return user, nil
}

// DeleteUser permanently removes an account. Tokens already issued for the
// account are not invalidated.
func (s *userService) DeleteUser(ctx context.Context, id int) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user in repository: %w", err)
	}
	return nil
}
