// Package mocks provides testify mocks for the repository interfaces,
// used by the service-layer tests.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/blogem/user-management/models"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a new mock and registers expectation
// assertions with the test's cleanup
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByIDUntracked(ctx context.Context, id int64) (models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FilterByActive(ctx context.Context, isActive bool) ([]models.User, error) {
	args := m.Called(ctx, isActive)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockUserLogRepository is a mock implementation of repositories.UserLogRepository
type MockUserLogRepository struct {
	mock.Mock
}

// NewMockUserLogRepository creates a new mock and registers expectation
// assertions with the test's cleanup
func NewMockUserLogRepository(t *testing.T) *MockUserLogRepository {
	m := &MockUserLogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserLogRepository) GetAll(ctx context.Context) ([]models.UserLog, error) {
	args := m.Called(ctx)
	logs, _ := args.Get(0).([]models.UserLog)
	return logs, args.Error(1)
}

func (m *MockUserLogRepository) GetByID(ctx context.Context, id int64) (*models.UserLog, error) {
	args := m.Called(ctx, id)
	log, _ := args.Get(0).(*models.UserLog)
	return log, args.Error(1)
}

func (m *MockUserLogRepository) GetByUserID(ctx context.Context, userID int64) ([]models.UserLog, error) {
	args := m.Called(ctx, userID)
	logs, _ := args.Get(0).([]models.UserLog)
	return logs, args.Error(1)
}

func (m *MockUserLogRepository) Create(ctx context.Context, log *models.UserLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockUserLogRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
