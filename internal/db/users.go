package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/zrashid/salahboard/internal/model"
)

// Postgres error code for violating a unique constraint.
const uniqueViolation = "23505"

// CreateUser inserts a new user row, returns the new user ID.
// A duplicate username is rejected by the unique constraint and mapped to
// model.ErrDuplicateUsername, so concurrent registrations cannot race.
func (s *pgStore) CreateUser(username, passwordHash string) (int, error) {
	query := `
	INSERT INTO users (username, password_hash, created_at)
	VALUES ($1, $2, now())
	RETURNING id;
	`
	var newID int
	err := s.db.QueryRow(query, username, passwordHash).Scan(&newID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, fmt.Errorf("create user %q: %w", username, model.ErrDuplicateUsername)
		}
		log.Error().Err(err).Msg("failed to create user")
		return 0, err
	}
	return newID, nil
}

// GetUserByUsername fetches a user by username.
// Returns model.ErrUserNotFound when no row matches.
func (s *pgStore) GetUserByUsername(username string) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, username, password_hash, created_at
	FROM users
	WHERE username = $1;
	`
	err := s.db.Get(&u, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		log.Error().Err(err).Msg("failed to get user by username")
		return nil, err
	}
	return &u, nil
}

// GetUserByID fetches a user by ID. Returns model.ErrUserNotFound when no
// row matches.
func (s *pgStore) GetUserByID(id int) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, username, password_hash, created_at
	FROM users
	WHERE id = $1;
	`
	err := s.db.Get(&u, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		log.Error().Err(err).Msg("failed to get user by id")
		return nil, err
	}
	return &u, nil
}
