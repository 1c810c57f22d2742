package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/blogem/user-management/models"
)

// ErrAuditNotRecorded marks the outcome where the primary user mutation
// committed but the audit log write failed. There is no rollback: callers
// receive the mutated user alongside an error wrapping this sentinel and
// must surface the failure rather than treat it as silent success.
var ErrAuditNotRecorded = errors.New("user mutation committed but audit log was not recorded")

// UserWorkflowService orchestrates user mutations together with their
// audit log entries. Each mutation is a strictly ordered two-step
// sequence (mutate, then log) with no transaction spanning the steps.
type UserWorkflowService interface {
	CreateUser(ctx context.Context, form *models.UserForm) (*models.User, error)
	EditUser(ctx context.Context, id int64, form *models.UserForm) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// userWorkflowService implements UserWorkflowService interface
type userWorkflowService struct {
	users   UserService
	logging UserLoggingService
}

// NewUserWorkflowService creates a new user workflow service
func NewUserWorkflowService(users UserService, logging UserLoggingService) UserWorkflowService {
	return &userWorkflowService{
		users:   users,
		logging: logging,
	}
}

// CreateUser validates and persists a new user, then appends an audit
// entry recording the created state. The user is returned even when the
// audit write fails; see ErrAuditNotRecorded.
func (s *userWorkflowService) CreateUser(ctx context.Context, form *models.UserForm) (*models.User, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	user := form.ToUser()
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	entry := &models.UserLog{
		UserID:        user.ID,
		Action:        models.ActionAdd,
		Created:       time.Now().UTC(),
		Message:       fmt.Sprintf("Created %s", user.FullName()),
		AfterChange:   serializeUser(user),
		LastKnownName: user.FullName(),
	}

	if err := s.logging.CreateLogEntry(ctx, entry); err != nil {
		return user, fmt.Errorf("%w: %w", ErrAuditNotRecorded, err)
	}

	return user, nil
}

// EditUser updates an existing user and appends an audit entry holding
// before and after snapshots. The pre-change snapshot is taken with an
// untracked read before the update so it cannot observe the new state.
func (s *userWorkflowService) EditUser(ctx context.Context, id int64, form *models.UserForm) (*models.User, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, validationError(errs)
	}

	before, err := s.users.GetUserByIDUntracked(ctx, id)
	if err != nil {
		return nil, err
	}

	user := form.ToUser()
	user.ID = id
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	entry := &models.UserLog{
		UserID:        user.ID,
		Action:        models.ActionEdit,
		Created:       time.Now().UTC(),
		Message:       fmt.Sprintf("Edited user ID: %d", user.ID),
		BeforeChange:  serializeUser(&before),
		AfterChange:   serializeUser(user),
		LastKnownName: user.FullName(),
	}

	if err := s.logging.CreateLogEntry(ctx, entry); err != nil {
		return user, fmt.Errorf("%w: %w", ErrAuditNotRecorded, err)
	}

	return user, nil
}

// DeleteUser deletes a user and appends an audit entry holding the
// pre-delete snapshot. A missing user aborts before anything is written.
func (s *userWorkflowService) DeleteUser(ctx context.Context, id int64) error {
	before, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.DeleteUser(ctx, id); err != nil {
		return err
	}

	entry := &models.UserLog{
		UserID:        before.ID,
		Action:        models.ActionDelete,
		Created:       time.Now().UTC(),
		Message:       fmt.Sprintf("Deleted %s", before.FullName()),
		BeforeChange:  serializeUser(before),
		LastKnownName: before.FullName(),
	}

	if err := s.logging.CreateLogEntry(ctx, entry); err != nil {
		return fmt.Errorf("%w: %w", ErrAuditNotRecorded, err)
	}

	return nil
}

// serializeUser renders a user snapshot for an audit entry. Serialization
// failure degrades to an empty snapshot rather than failing the mutation.
func serializeUser(user *models.User) string {
	data, err := json.Marshal(user)
	if err != nil {
		log.Printf("Failed to serialize user %d for audit: %v", user.ID, err)
		return ""
	}
	return string(data)
}

// validationError folds form validation messages into a single error
func validationError(errs []string) error {
	return fmt.Errorf("validation failed: %s", strings.Join(errs, ", "))
}
