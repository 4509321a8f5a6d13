package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/auth"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectUserColumns = `
	id, name, user_name, email, role, password_hash, household_id, token_epoch, created_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*auth.User, error) {
	var u auth.User

	var roleStr string

	if err := s.Scan(
		&u.ID, &u.Name, &u.UserName, &u.Email, &roleStr,
		&u.PasswordHash, &u.HouseholdID, &u.TokenEpoch, &u.CreatedAt,
	); err != nil {
		return nil, err
	}

	u.Role = auth.Role(roleStr)

	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *auth.User) error {
	query := `
		INSERT INTO users (name, user_name, email, role, password_hash, household_id, token_epoch, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, NOW())
		RETURNING id, token_epoch, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		u.Name, u.UserName, u.Email, u.Role, u.PasswordHash, u.HouseholdID,
	).Scan(&u.ID, &u.TokenEpoch, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, auth.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) GetUserByUserName(ctx context.Context, userName string) (*auth.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE user_name = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, userName))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, auth.ErrNotFound
		}

		return nil, fmt.Errorf("getting user by name: %w", err)
	}

	return u, nil
}

func (s *Store) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, tokenEpoch int) error {
	query := `
		UPDATE users
		SET password_hash = $1, token_epoch = $2
		WHERE id = $3
	`

	_, err := s.db.ExecContext(ctx, query, passwordHash, tokenEpoch, id)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	return nil
}

func (s *Store) CreateHousehold(ctx context.Context, h *auth.Household) error {
	query := `
		INSERT INTO households (name, created_at)
		VALUES ($1, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, h.Name).Scan(&h.ID, &h.CreatedAt); err != nil {
		return fmt.Errorf("creating household: %w", err)
	}

	return nil
}

func (s *Store) GetHousehold(ctx context.Context, id uuid.UUID) (*auth.Household, error) {
	query := `SELECT id, name, created_at FROM households WHERE id = $1`

	var h auth.Household
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&h.ID, &h.Name, &h.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, auth.ErrNotFound
		}

		return nil, fmt.Errorf("getting household: %w", err)
	}

	return &h, nil
}

func (s *Store) RecordAttempt(ctx context.Context, attempt *auth.LoginAttempt) error {
	query := `
		INSERT INTO login_attempts (user_name, success, lat, lon, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	var lat, lon sql.NullFloat64
	if attempt.Location != nil {
		lat = sql.NullFloat64{Float64: attempt.Location.Lat, Valid: true}
		lon = sql.NullFloat64{Float64: attempt.Location.Lon, Valid: true}
	}

	err := s.db.QueryRowContext(ctx, query, attempt.UserName, attempt.Success, lat, lon).
		Scan(&attempt.ID, &attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("recording login attempt: %w", err)
	}

	return nil
}

func (s *Store) ListAttempts(ctx context.Context, limit int) ([]*auth.LoginAttempt, error) {
	query := `
		SELECT id, user_name, success, lat, lon, created_at
		FROM login_attempts
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing login attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*auth.LoginAttempt

	for rows.Next() {
		var a auth.LoginAttempt

		var lat, lon sql.NullFloat64

		if err := rows.Scan(&a.ID, &a.UserName, &a.Success, &lat, &lon, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning login attempt: %w", err)
		}

		if lat.Valid && lon.Valid {
			a.Location = &auth.Location{Lat: lat.Float64, Lon: lon.Float64}
		}

		attempts = append(attempts, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating login attempts: %w", err)
	}

	return attempts, nil
}
