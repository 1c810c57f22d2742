package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/repositories"
	"github.com/blogem/user-management/repositories/mocks"
)

func newLoggingService(t *testing.T) (UserLoggingService, *mocks.MockUserLogRepository) {
	mockRepo := mocks.NewMockUserLogRepository(t)
	return NewUserLoggingService(mockRepo), mockRepo
}

func TestCreateLogEntry_InvalidAction(t *testing.T) {
	service, mockRepo := newLoggingService(t)

	entry := &models.UserLog{UserID: 1, Action: "replace"}
	err := service.CreateLogEntry(context.Background(), entry)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log action")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLogEntry_PersistenceFailurePropagates(t *testing.T) {
	service, mockRepo := newLoggingService(t)

	storeErr := errors.New("database locked")
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.UserLog")).
		Return(storeErr).Once()

	entry := &models.UserLog{UserID: 1, Action: models.ActionAdd}
	err := service.CreateLogEntry(context.Background(), entry)

	assert.ErrorIs(t, err, storeErr)
}

func TestDeleteLogEntry_NotFound(t *testing.T) {
	service, mockRepo := newLoggingService(t)

	notFound := &repositories.NotFoundError{Entity: "user log", ID: 5}
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, notFound).Once()

	err := service.DeleteLogEntry(context.Background(), 5)

	assert.Error(t, err)
	assert.True(t, repositories.IsNotFound(err))
	assert.Contains(t, err.Error(), "user log")
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// Deletion failures propagate to the caller, the same policy as creation
func TestDeleteLogEntry_PersistenceFailurePropagates(t *testing.T) {
	service, mockRepo := newLoggingService(t)

	entry := &models.UserLog{ID: 5, UserID: 1, Action: models.ActionAdd, Created: time.Now()}
	storeErr := errors.New("database locked")
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(entry, nil).Once()
	mockRepo.On("Delete", mock.Anything, int64(5)).Return(storeErr).Once()

	err := service.DeleteLogEntry(context.Background(), 5)

	assert.ErrorIs(t, err, storeErr)
}

func TestDeleteLogEntry_Success(t *testing.T) {
	service, mockRepo := newLoggingService(t)

	entry := &models.UserLog{ID: 5, UserID: 1, Action: models.ActionAdd, Created: time.Now()}
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(entry, nil).Once()
	mockRepo.On("Delete", mock.Anything, int64(5)).Return(nil).Once()

	err := service.DeleteLogEntry(context.Background(), 5)

	assert.NoError(t, err)
}

func TestGetAllLogsForUser_ReturnsOnlyMatching(t *testing.T) {
	service, mockRepo := newLoggingService(t)

	logs := []models.UserLog{
		{ID: 1, UserID: 3, Action: models.ActionAdd},
		{ID: 4, UserID: 3, Action: models.ActionEdit},
	}
	mockRepo.On("GetByUserID", mock.Anything, int64(3)).Return(logs, nil).Once()

	result, err := service.GetAllLogsForUser(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	for _, entry := range result {
		assert.Equal(t, int64(3), entry.UserID)
	}
}

func TestGetLogByID_InvalidID(t *testing.T) {
	service, mockRepo := newLoggingService(t)

	entry, err := service.GetLogByID(context.Background(), 0)

	assert.Error(t, err)
	assert.Nil(t, entry)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
