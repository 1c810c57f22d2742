package services

import (
	"context"
	"fmt"
	"log"

	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/repositories"
)

// UserLoggingService interface defines audit log operations
type UserLoggingService interface {
	GetAllLogs(ctx context.Context) ([]models.UserLog, error)
	GetAllLogsForUser(ctx context.Context, userID int64) ([]models.UserLog, error)
	GetLogByID(ctx context.Context, id int64) (*models.UserLog, error)
	CreateLogEntry(ctx context.Context, entry *models.UserLog) error
	DeleteLogEntry(ctx context.Context, id int64) error
}

// userLoggingService implements UserLoggingService interface
type userLoggingService struct {
	logRepo repositories.UserLogRepository
}

// NewUserLoggingService creates a new user logging service
func NewUserLoggingService(logRepo repositories.UserLogRepository) UserLoggingService {
	return &userLoggingService{logRepo: logRepo}
}

// GetAllLogs retrieves all audit log entries
func (s *userLoggingService) GetAllLogs(ctx context.Context) ([]models.UserLog, error) {
	return s.logRepo.GetAll(ctx)
}

// GetAllLogsForUser retrieves all audit log entries for a specific user.
// The list may be non-empty for users that no longer exist.
func (s *userLoggingService) GetAllLogsForUser(ctx context.Context, userID int64) ([]models.UserLog, error) {
	return s.logRepo.GetByUserID(ctx, userID)
}

// GetLogByID retrieves a single audit log entry by ID
func (s *userLoggingService) GetLogByID(ctx context.Context, id int64) (*models.UserLog, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid log ID: %d", id)
	}
	return s.logRepo.GetByID(ctx, id)
}

// CreateLogEntry persists a new audit log entry. Failures are recorded
// diagnostically and returned to the caller, who decides whether the
// surrounding mutation already committed.
func (s *userLoggingService) CreateLogEntry(ctx context.Context, entry *models.UserLog) error {
	if !entry.Action.Valid() {
		return fmt.Errorf("invalid log action: %q", entry.Action)
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Printf("Error creating log entry: %v", err)
		return err
	}

	return nil
}

// DeleteLogEntry deletes an audit log entry by ID. The lookup happens
// first so a missing entry surfaces as NotFound. Deletion failures are
// recorded and returned, the same policy as CreateLogEntry.
func (s *userLoggingService) DeleteLogEntry(ctx context.Context, id int64) error {
	if _, err := s.logRepo.GetByID(ctx, id); err != nil {
		if repositories.IsNotFound(err) {
			log.Printf("Cannot find log with ID: %d", id)
		}
		return err
	}

	if err := s.logRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting log entry: %v", err)
		return err
	}

	return nil
}
