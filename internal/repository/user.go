package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/whisperbox/whisperbox/internal/model"
)

// Common errors for user repository operations.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// CreateUser inserts a new user into the database.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, google_id, email, name, avatar_url, scopes, is_accepting_messages, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.GoogleID,
		user.Email,
		user.Name,
		user.AvatarURL,
		pq.Array(user.Scopes),
		user.IsAcceptingMessages,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

const userColumns = `id, google_id, email, name, avatar_url, scopes, is_accepting_messages, created_at, updated_at`

// scanUser scans a single user row.
func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	var scopes []string
	err := row.Scan(
		&user.ID,
		&user.GoogleID,
		&user.Email,
		&user.Name,
		&user.AvatarURL,
		pq.Array(&scopes),
		&user.IsAcceptingMessages,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	user.Scopes = scopes
	return &user, nil
}

// GetUserByID retrieves a user by their ID.
func (r *Repository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

// GetUserByEmail retrieves a user by their email address.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

// GetUserByGoogleID retrieves a user by their Google subject id.
func (r *Repository) GetUserByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, googleID))
}

// GetOrCreateUserByGoogleID gets a user by Google subject id or creates one
// if not found. Exactly one record exists per subject id: a concurrent
// first sign-in that loses the insert race falls back to re-fetching the
// winner's record.
func (r *Repository) GetOrCreateUserByGoogleID(ctx context.Context, user *model.User) (*model.User, error) {
	existing, err := r.GetUserByGoogleID(ctx, user.GoogleID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	// Create new user
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if err := r.CreateUser(ctx, user); err != nil {
		// Handle race condition - another request may have created it
		if errors.Is(err, ErrUserExists) {
			return r.GetUserByGoogleID(ctx, user.GoogleID)
		}
		return nil, err
	}

	return user, nil
}

// ToggleAcceptingMessages flips the accept-messages flag in a single UPDATE
// and returns the new value. Relies on per-row write atomicity; concurrent
// toggles are last-write-wins.
func (r *Repository) ToggleAcceptingMessages(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE users
		SET is_accepting_messages = NOT is_accepting_messages, updated_at = now()
		WHERE id = $1
		RETURNING is_accepting_messages
	`

	var accepting bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&accepting)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrUserNotFound
		}
		return false, fmt.Errorf("failed to toggle accepting messages: %w", err)
	}

	return accepting, nil
}
