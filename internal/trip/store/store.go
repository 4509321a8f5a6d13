package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/trip"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectTripColumns = `
	id, household_id, title, purpose, start_date, end_date, budget, notes, created_at, updated_at, deleted_at
`

func scanTrip(s scanner) (*trip.Trip, error) {
	var t trip.Trip

	var purpose, notes sql.NullString

	if err := s.Scan(
		&t.ID, &t.HouseholdID, &t.Title, &purpose, &t.StartDate, &t.EndDate,
		&t.Budget, &notes, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	); err != nil {
		return nil, err
	}

	t.Purpose = purpose.String
	t.Notes = notes.String

	return &t, nil
}

func (s *Store) CreateTrip(ctx context.Context, t *trip.Trip) error {
	query := `
		INSERT INTO trips (household_id, title, purpose, start_date, end_date, budget, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.HouseholdID, t.Title, t.Purpose, t.StartDate, t.EndDate, t.Budget, t.Notes,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating trip: %w", err)
	}

	return nil
}

func (s *Store) GetTrip(ctx context.Context, householdID, id uuid.UUID) (*trip.Trip, error) {
	query := `SELECT ` + selectTripColumns + `
		FROM trips
		WHERE id = $1 AND household_id = $2 AND deleted_at IS NULL`

	t, err := scanTrip(s.db.QueryRowContext(ctx, query, id, householdID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, trip.ErrNotFound
		}

		return nil, fmt.Errorf("getting trip: %w", err)
	}

	return t, nil
}

func (s *Store) UpdateTrip(ctx context.Context, t *trip.Trip) error {
	query := `
		UPDATE trips
		SET title = $1, purpose = $2, start_date = $3, end_date = $4, budget = $5, notes = $6, updated_at = NOW()
		WHERE id = $7 AND household_id = $8 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		t.Title, t.Purpose, t.StartDate, t.EndDate, t.Budget, t.Notes, t.ID, t.HouseholdID,
	)
	if err != nil {
		return fmt.Errorf("updating trip: %w", err)
	}

	return nil
}

func (s *Store) DeleteTrip(ctx context.Context, householdID, id uuid.UUID) error {
	query := `
		UPDATE trips
		SET deleted_at = NOW()
		WHERE id = $1 AND household_id = $2
	`

	if _, err := s.db.ExecContext(ctx, query, id, householdID); err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}

	return nil
}

func (s *Store) ListTrips(ctx context.Context, householdID uuid.UUID) ([]*trip.Trip, error) {
	query := `SELECT ` + selectTripColumns + `
		FROM trips
		WHERE household_id = $1 AND deleted_at IS NULL
		ORDER BY start_date DESC`

	rows, err := s.db.QueryContext(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("listing trips: %w", err)
	}
	defer rows.Close()

	var trips []*trip.Trip

	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning trip: %w", err)
		}

		trips = append(trips, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trips: %w", err)
	}

	return trips, nil
}

func (s *Store) SumTripExpenses(ctx context.Context, householdID, tripID uuid.UUID) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE household_id = $1 AND trip_id = $2 AND deleted_at IS NULL
	`

	var spent int64
	if err := s.db.QueryRowContext(ctx, query, householdID, tripID).Scan(&spent); err != nil {
		return 0, fmt.Errorf("summing trip expenses: %w", err)
	}

	return spent, nil
}
