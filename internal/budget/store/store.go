package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/budget"
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

const selectBudgetColumns = `
	id, household_id, category, subcategory, amount, month, year, created_at, updated_at
`

func scanBudget(s scanner) (*budget.Budget, error) {
	var b budget.Budget

	var subcategory sql.NullString

	if err := s.Scan(
		&b.ID, &b.HouseholdID, &b.Category, &subcategory, &b.Amount,
		&b.Month, &b.Year, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.Subcategory = subcategory.String

	return &b, nil
}

func (s *Store) CreateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		INSERT INTO budgets (household_id, category, subcategory, amount, month, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.HouseholdID, b.Category, b.Subcategory, b.Amount, b.Month, b.Year,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating budget: %w", err)
	}

	return nil
}

func (s *Store) GetBudget(ctx context.Context, householdID, id uuid.UUID) (*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets
		WHERE id = $1 AND household_id = $2`

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, id, householdID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return b, nil
}

func (s *Store) UpdateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		UPDATE budgets
		SET category = $1, subcategory = $2, amount = $3, month = $4, year = $5, updated_at = NOW()
		WHERE id = $6 AND household_id = $7
	`

	_, err := s.db.ExecContext(ctx, query,
		b.Category, b.Subcategory, b.Amount, b.Month, b.Year, b.ID, b.HouseholdID,
	)
	if err != nil {
		return fmt.Errorf("updating budget: %w", err)
	}

	return nil
}

func (s *Store) DeleteBudget(ctx context.Context, householdID, id uuid.UUID) error {
	query := `DELETE FROM budgets WHERE id = $1 AND household_id = $2`

	if _, err := s.db.ExecContext(ctx, query, id, householdID); err != nil {
		return fmt.Errorf("deleting budget: %w", err)
	}

	return nil
}

func (s *Store) ListBudgets(ctx context.Context, householdID uuid.UUID, month, year int) ([]*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets
		WHERE household_id = $1 AND month = $2 AND year = $3
		ORDER BY category ASC, subcategory ASC`

	rows, err := s.db.QueryContext(ctx, query, householdID, month, year)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.Budget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budgets: %w", err)
	}

	return budgets, nil
}

// FindBudget prefers an exact subcategory slot over the category-wide one.
func (s *Store) FindBudget(ctx context.Context, householdID uuid.UUID, category, subcategory string, month, year int) (*budget.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets
		WHERE household_id = $1 AND category = $2 AND month = $3 AND year = $4
			AND (subcategory = $5 OR subcategory = '' OR subcategory IS NULL)
		ORDER BY (subcategory = $5) DESC
		LIMIT 1`

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, householdID, category, month, year, subcategory))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("finding budget: %w", err)
	}

	return b, nil
}

func (s *Store) SumSpent(ctx context.Context, householdID uuid.UUID, category, subcategory string, month, year int) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE household_id = $1 AND deleted_at IS NULL
			AND category = $2
			AND ($3 = '' OR subcategory = $3)
			AND EXTRACT(MONTH FROM date) = $4 AND EXTRACT(YEAR FROM date) = $5
	`

	var spent int64

	// Wire months are 0-11; EXTRACT is 1-12.
	err := s.db.QueryRowContext(ctx, query, householdID, category, subcategory, month+1, year).Scan(&spent)
	if err != nil {
		return 0, fmt.Errorf("summing spent: %w", err)
	}

	return spent, nil
}
