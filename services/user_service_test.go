package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/repositories"
	"github.com/blogem/user-management/repositories/mocks"
)

func newUserService(t *testing.T) (UserService, *mocks.MockUserRepository) {
	mockRepo := mocks.NewMockUserRepository(t)
	return NewUserService(mockRepo), mockRepo
}

func TestGetUserByID_InvalidID(t *testing.T) {
	service, mockRepo := newUserService(t)

	user, err := service.GetUserByID(context.Background(), 0)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "invalid user ID")
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetUserByIDUntracked_InvalidID(t *testing.T) {
	service, mockRepo := newUserService(t)

	_, err := service.GetUserByIDUntracked(context.Background(), -1)

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "GetByIDUntracked", mock.Anything, mock.Anything)
}

func TestFilterByActive_Delegates(t *testing.T) {
	service, mockRepo := newUserService(t)

	active := []models.User{
		{ID: 1, Forename: "Peter", Surname: "Loew", IsActive: true},
	}
	mockRepo.On("FilterByActive", mock.Anything, true).Return(active, nil).Once()

	result, err := service.FilterByActive(context.Background(), true)

	assert.NoError(t, err)
	assert.Equal(t, active, result)
}

// DeleteUser looks the record up first so a missing ID surfaces as
// NotFound instead of a silent no-op
func TestDeleteUser_LookupFirst(t *testing.T) {
	service, mockRepo := newUserService(t)

	notFound := &repositories.NotFoundError{Entity: "user", ID: 42}
	mockRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, notFound).Once()

	err := service.DeleteUser(context.Background(), 42)

	assert.Error(t, err)
	assert.True(t, repositories.IsNotFound(err))
	assert.Contains(t, err.Error(), "42")
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteUser_Success(t *testing.T) {
	service, mockRepo := newUserService(t)

	user := &models.User{ID: 3, Forename: "Castor", Surname: "Troy"}
	mockRepo.On("GetByID", mock.Anything, int64(3)).Return(user, nil).Once()
	mockRepo.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

	err := service.DeleteUser(context.Background(), 3)

	assert.NoError(t, err)
}

func TestUpdateUser_InvalidID(t *testing.T) {
	service, mockRepo := newUserService(t)

	err := service.UpdateUser(context.Background(), &models.User{ID: 0})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
