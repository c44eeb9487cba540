package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateUserID = errors.New("user id already exists")
)

// UserRepository handles account persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new account keyed by its user id.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (user_id, username, password_hash, phone_no, email)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		user.UserID, user.Username, user.PasswordHash, user.PhoneNo, user.Email,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateUserID
		}
		return err
	}

	return r.db.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM users WHERE user_id = ?`, user.UserID,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

// GetByUserID retrieves an account by its user id.
func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	query := `SELECT user_id, username, password_hash, phone_no, email, created_at, updated_at
		FROM users WHERE user_id = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.UserID, &user.Username, &user.PasswordHash,
		&user.PhoneNo, &user.Email, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// Update overwrites the mutable account fields and refreshes updated_at.
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `UPDATE users SET username = ?, password_hash = ?, phone_no = ?, email = ?,
		updated_at = CURRENT_TIMESTAMP WHERE user_id = ?`

	if _, err := r.db.ExecContext(ctx, query,
		user.Username, user.PasswordHash, user.PhoneNo, user.Email, user.UserID,
	); err != nil {
		return err
	}

	return r.db.QueryRowContext(ctx,
		`SELECT updated_at FROM users WHERE user_id = ?`, user.UserID,
	).Scan(&user.UpdatedAt)
}

// Delete removes an account by its user id. Todos owned by the account are
// left in place; the ownership scope makes them unreachable.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
