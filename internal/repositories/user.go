package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-meal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-meal-tracker/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewUserReadRepository(db *sqlx.DB, timeout time.Duration) *UserReadRepository {
	return &UserReadRepository{db: db, timeout: timeout}
}

// GetByUsername returns the user with the given username, or nil if none exists.
// The match is case-sensitive.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	// Log with query in single line
	logger.Log.Infow("user read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewUserWriteRepository(db *sqlx.DB, timeout time.Duration) *UserWriteRepository {
	return &UserWriteRepository{db: db, timeout: timeout}
}

// Save persists a new user and returns its generated identifier.
// The password must already be hashed; plaintext never reaches this layer.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (user_id, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING user_id
	`

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var userID uuid.UUID
	err := r.db.GetContext(ctx, &userID, query, uuid.New(), username, passwordHash)

	// Log with query in single line; the hash itself is not logged
	logger.Log.Infow("user write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", userID,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}
