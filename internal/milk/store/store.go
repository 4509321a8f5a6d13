package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/milk"
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

const selectEntryColumns = `id, household_id, date, quantity, rate, amount, created_at`

func scanEntry(s scanner) (*milk.Entry, error) {
	var e milk.Entry

	if err := s.Scan(&e.ID, &e.HouseholdID, &e.Date, &e.Quantity, &e.Rate, &e.Amount, &e.CreatedAt); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Store) CreateEntry(ctx context.Context, e *milk.Entry) error {
	query := `
		INSERT INTO milk_entries (household_id, date, quantity, rate, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.HouseholdID, e.Date, e.Quantity, e.Rate, e.Amount,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating milk entry: %w", err)
	}

	return nil
}

func (s *Store) GetEntry(ctx context.Context, householdID, id uuid.UUID) (*milk.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM milk_entries
		WHERE id = $1 AND household_id = $2`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, id, householdID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, milk.ErrNotFound
		}

		return nil, fmt.Errorf("getting milk entry: %w", err)
	}

	return e, nil
}

func (s *Store) DeleteEntry(ctx context.Context, householdID, id uuid.UUID) (*milk.Entry, error) {
	query := `
		DELETE FROM milk_entries
		WHERE id = $1 AND household_id = $2
		RETURNING ` + selectEntryColumns

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, id, householdID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, milk.ErrNotFound
		}

		return nil, fmt.Errorf("deleting milk entry: %w", err)
	}

	return e, nil
}

func (s *Store) ListEntries(ctx context.Context, householdID uuid.UUID, month, year, page, limit int) ([]*milk.Entry, int, error) {
	where := `
		WHERE household_id = $1
			AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3`

	var total int

	countQuery := `SELECT COUNT(*) FROM milk_entries ` + where
	if err := s.db.QueryRowContext(ctx, countQuery, householdID, month+1, year).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting milk entries: %w", err)
	}

	query := `SELECT ` + selectEntryColumns + ` FROM milk_entries ` + where + `
		ORDER BY date DESC
		LIMIT $4 OFFSET $5`

	rows, err := s.db.QueryContext(ctx, query, householdID, month+1, year, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("listing milk entries: %w", err)
	}
	defer rows.Close()

	var entries []*milk.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning milk entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating milk entries: %w", err)
	}

	return entries, total, nil
}

func (s *Store) SumMonth(ctx context.Context, householdID uuid.UUID, month, year int) (int64, int, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM milk_entries
		WHERE household_id = $1
			AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3
	`

	var total int64

	var count int

	if err := s.db.QueryRowContext(ctx, query, householdID, month+1, year).Scan(&total, &count); err != nil {
		return 0, 0, fmt.Errorf("summing milk month: %w", err)
	}

	return total, count, nil
}

func (s *Store) CreateSettlement(ctx context.Context, settlement *milk.Settlement) error {
	query := `
		INSERT INTO milk_settlements (household_id, month, year, total_amount, settled_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, settled_at
	`

	err := s.db.QueryRowContext(ctx, query,
		settlement.HouseholdID, settlement.Month, settlement.Year, settlement.TotalAmount,
	).Scan(&settlement.ID, &settlement.SettledAt)
	if err != nil {
		return fmt.Errorf("creating settlement: %w", err)
	}

	return nil
}

func (s *Store) IsSettled(ctx context.Context, householdID uuid.UUID, month, year int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM milk_settlements
			WHERE household_id = $1 AND month = $2 AND year = $3
		)
	`

	var settled bool
	if err := s.db.QueryRowContext(ctx, query, householdID, month, year).Scan(&settled); err != nil {
		return false, fmt.Errorf("checking settlement: %w", err)
	}

	return settled, nil
}

func (s *Store) ListSettledMonths(ctx context.Context, householdID uuid.UUID) ([]milk.SettledMonth, error) {
	query := `
		SELECT month, year
		FROM milk_settlements
		WHERE household_id = $1
		ORDER BY year DESC, month DESC
	`

	rows, err := s.db.QueryContext(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("listing settled months: %w", err)
	}
	defer rows.Close()

	var months []milk.SettledMonth

	for rows.Next() {
		var m milk.SettledMonth
		if err := rows.Scan(&m.Month, &m.Year); err != nil {
			return nil, fmt.Errorf("scanning settled month: %w", err)
		}

		months = append(months, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settled months: %w", err)
	}

	return months, nil
}
