package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/user-management/models"
)

// UserLogRepository interface defines audit log database operations.
// Entries are append-only: there is deliberately no update operation.
type UserLogRepository interface {
	GetAll(ctx context.Context) ([]models.UserLog, error)
	GetByID(ctx context.Context, id int64) (*models.UserLog, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.UserLog, error)
	Create(ctx context.Context, log *models.UserLog) error
	Delete(ctx context.Context, id int64) error
}

// userLogRepository implements UserLogRepository interface
type userLogRepository struct {
	db *sql.DB
}

// NewUserLogRepository creates a new user log repository
func NewUserLogRepository(db *sql.DB) UserLogRepository {
	return &userLogRepository{db: db}
}

// GetAll retrieves all log entries in ID order
func (r *userLogRepository) GetAll(ctx context.Context) ([]models.UserLog, error) {
	query := `
		SELECT id, user_id, message, created, action,
		       before_change, after_change, last_known_name
		FROM user_logs
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query user logs: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// GetByID retrieves a log entry by ID
func (r *userLogRepository) GetByID(ctx context.Context, id int64) (*models.UserLog, error) {
	query := `
		SELECT id, user_id, message, created, action,
		       before_change, after_change, last_known_name
		FROM user_logs
		WHERE id = ?
	`

	var log models.UserLog
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&log.ID,
		&log.UserID,
		&log.Message,
		&log.Created,
		&log.Action,
		&log.BeforeChange,
		&log.AfterChange,
		&log.LastKnownName,
	)

	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Entity: "user log", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user log: %w", err)
	}

	return &log, nil
}

// GetByUserID retrieves all log entries referencing the given user ID.
// The user itself may no longer exist; logs outlive user deletion.
func (r *userLogRepository) GetByUserID(ctx context.Context, userID int64) ([]models.UserLog, error) {
	query := `
		SELECT id, user_id, message, created, action,
		       before_change, after_change, last_known_name
		FROM user_logs
		WHERE user_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user logs for user %d: %w", userID, err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

// Create inserts a new log entry and assigns its ID
func (r *userLogRepository) Create(ctx context.Context, log *models.UserLog) error {
	query := `
		INSERT INTO user_logs (user_id, message, created, action,
		                       before_change, after_change, last_known_name)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if log.Created.IsZero() {
		log.Created = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		log.UserID,
		log.Message,
		log.Created,
		log.Action,
		log.BeforeChange,
		log.AfterChange,
		log.LastKnownName,
	)
	if err != nil {
		return fmt.Errorf("failed to create user log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	log.ID = id
	return nil
}

// Delete deletes a log entry by ID
func (r *userLogRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM user_logs WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user log: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return &NotFoundError{Entity: "user log", ID: id}
	}

	return nil
}

// scanLogs reads all remaining rows into log records
func scanLogs(rows *sql.Rows) ([]models.UserLog, error) {
	var logs []models.UserLog
	for rows.Next() {
		var log models.UserLog
		err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.Message,
			&log.Created,
			&log.Action,
			&log.BeforeChange,
			&log.AfterChange,
			&log.LastKnownName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user log: %w", err)
		}
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user logs: %w", err)
	}

	return logs, nil
}
