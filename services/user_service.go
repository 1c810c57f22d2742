package services

import (
	"context"
	"fmt"

	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/repositories"
)

// UserService interface defines user read and persistence operations.
// It is a thin façade over the user repository; the audited mutation
// paths live in UserWorkflowService and call into this one.
type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	FilterByActive(ctx context.Context, isActive bool) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByIDUntracked(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
	GetUserCount(ctx context.Context) (int, error)
}

// userService implements UserService interface
type userService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetAll retrieves all users
func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// FilterByActive retrieves users by active state
func (s *userService) FilterByActive(ctx context.Context, isActive bool) ([]models.User, error) {
	return s.userRepo.FilterByActive(ctx, isActive)
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid user ID: %d", id)
	}
	return s.userRepo.GetByID(ctx, id)
}

// GetUserByIDUntracked retrieves a detached copy of a user by ID
func (s *userService) GetUserByIDUntracked(ctx context.Context, id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, fmt.Errorf("invalid user ID: %d", id)
	}
	return s.userRepo.GetByIDUntracked(ctx, id)
}

// CreateUser persists a new user and assigns its ID
func (s *userService) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateUser replaces the stored record matching the user's ID
func (s *userService) UpdateUser(ctx context.Context, user *models.User) error {
	if user.ID <= 0 {
		return fmt.Errorf("invalid user ID: %d", user.ID)
	}
	return s.userRepo.Update(ctx, user)
}

// DeleteUser deletes a user by ID. The lookup happens first so a missing
// ID surfaces as NotFound to the caller instead of silently no-op-ing.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid user ID: %d", id)
	}

	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.userRepo.Delete(ctx, id)
}

// GetUserCount returns the total number of users
func (s *userService) GetUserCount(ctx context.Context) (int, error) {
	return s.userRepo.Count(ctx)
}
