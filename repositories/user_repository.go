package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/user-management/models"
)

// UserRepository interface defines user database operations
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByIDUntracked(ctx context.Context, id int64) (models.User, error)
	FilterByActive(ctx context.Context, isActive bool) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// GetAll retrieves all users in ID order
func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, forename, surname, email, date_of_birth, is_active
		FROM users
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Forename,
			&user.Surname,
			&user.Email,
			&user.DateOfBirth,
			&user.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := r.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByIDUntracked retrieves a user by ID as a detached value copy.
// Mutating the returned record never affects stored state, which makes
// it safe to hold as a pre-change snapshot across a subsequent update.
func (r *userRepository) GetByIDUntracked(ctx context.Context, id int64) (models.User, error) {
	user, err := r.getByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	return *user, nil
}

func (r *userRepository) getByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, forename, surname, email, date_of_birth, is_active
		FROM users
		WHERE id = ?
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Forename,
		&user.Surname,
		&user.Email,
		&user.DateOfBirth,
		&user.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Entity: "user", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// FilterByActive retrieves users whose active flag equals isActive
func (r *userRepository) FilterByActive(ctx context.Context, isActive bool) ([]models.User, error) {
	query := `
		SELECT id, forename, surname, email, date_of_birth, is_active
		FROM users
		WHERE is_active = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, isActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by active state: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Forename,
			&user.Surname,
			&user.Email,
			&user.DateOfBirth,
			&user.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// Create creates a new user and assigns its ID
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (forename, surname, email, date_of_birth, is_active)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		user.Forename,
		user.Surname,
		user.Email,
		user.DateOfBirth,
		user.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	user.ID = id
	return nil
}

// Update replaces the stored record matching the user's ID.
// A missing ID fails with NotFoundError; updates never upsert.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET forename = ?, surname = ?, email = ?, date_of_birth = ?, is_active = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		user.Forename,
		user.Surname,
		user.Email,
		user.DateOfBirth,
		user.IsActive,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return &NotFoundError{Entity: "user", ID: user.ID}
	}

	return nil
}

// Delete deletes a user by ID
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return &NotFoundError{Entity: "user", ID: id}
	}

	return nil
}

// Count returns the total number of users
func (r *userRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}
