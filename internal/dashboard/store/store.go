package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/dashboard"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) TotalBalance(ctx context.Context, householdID uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE household_id = $1`

	var total int64
	if err := s.db.QueryRowContext(ctx, query, householdID).Scan(&total); err != nil {
		return 0, fmt.Errorf("totalling balances: %w", err)
	}

	return total, nil
}

const monthTotalsQuery = `
	SELECT
		COALESCE(SUM(amount) FILTER (WHERE type = 'salary'), 0),
		COALESCE(SUM(amount) FILTER (WHERE type = 'investment'), 0)
	FROM account_transactions
	WHERE household_id = $1
		AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3
`

const monthExpensesQuery = `
	SELECT COALESCE(SUM(amount), 0)
	FROM expenses
	WHERE household_id = $1
		AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3
		AND deleted_at IS NULL
`

func (s *Store) MonthTotals(ctx context.Context, householdID uuid.UUID, month, year int) (dashboard.MonthTotals, error) {
	var totals dashboard.MonthTotals

	err := s.db.QueryRowContext(ctx, monthTotalsQuery, householdID, month+1, year).
		Scan(&totals.Salary, &totals.Investment)
	if err != nil {
		return totals, fmt.Errorf("totalling transactions: %w", err)
	}

	err = s.db.QueryRowContext(ctx, monthExpensesQuery, householdID, month+1, year).
		Scan(&totals.Expense)
	if err != nil {
		return totals, fmt.Errorf("totalling expenses: %w", err)
	}

	return totals, nil
}

func (s *Store) TotalsBefore(ctx context.Context, householdID uuid.UUID, month, year int) (dashboard.MonthTotals, error) {
	var totals dashboard.MonthTotals

	// First day of the requested month, in SQL, to avoid a round trip
	// through Go time handling.
	txQuery := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'salary'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'investment'), 0)
		FROM account_transactions
		WHERE household_id = $1
			AND date < make_date($3, $2, 1)
	`

	err := s.db.QueryRowContext(ctx, txQuery, householdID, month+1, year).
		Scan(&totals.Salary, &totals.Investment)
	if err != nil {
		return totals, fmt.Errorf("totalling prior transactions: %w", err)
	}

	expQuery := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE household_id = $1
			AND date < make_date($3, $2, 1)
			AND deleted_at IS NULL
	`

	err = s.db.QueryRowContext(ctx, expQuery, householdID, month+1, year).
		Scan(&totals.Expense)
	if err != nil {
		return totals, fmt.Errorf("totalling prior expenses: %w", err)
	}

	return totals, nil
}

func (s *Store) YearTotals(ctx context.Context, householdID uuid.UUID, year int) ([]dashboard.MonthTotals, error) {
	totals := make([]dashboard.MonthTotals, 12)

	txQuery := `
		SELECT
			EXTRACT(MONTH FROM date)::int,
			COALESCE(SUM(amount) FILTER (WHERE type = 'salary'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'investment'), 0)
		FROM account_transactions
		WHERE household_id = $1 AND EXTRACT(YEAR FROM date) = $2
		GROUP BY 1
	`

	rows, err := s.db.QueryContext(ctx, txQuery, householdID, year)
	if err != nil {
		return nil, fmt.Errorf("totalling yearly transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			month              int
			salary, investment int64
		)

		if err := rows.Scan(&month, &salary, &investment); err != nil {
			return nil, fmt.Errorf("scanning yearly transactions: %w", err)
		}

		totals[month-1].Salary = salary
		totals[month-1].Investment = investment
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating yearly transactions: %w", err)
	}

	expQuery := `
		SELECT EXTRACT(MONTH FROM date)::int, COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE household_id = $1 AND EXTRACT(YEAR FROM date) = $2
			AND deleted_at IS NULL
		GROUP BY 1
	`

	expRows, err := s.db.QueryContext(ctx, expQuery, householdID, year)
	if err != nil {
		return nil, fmt.Errorf("totalling yearly expenses: %w", err)
	}
	defer expRows.Close()

	for expRows.Next() {
		var (
			month   int
			expense int64
		)

		if err := expRows.Scan(&month, &expense); err != nil {
			return nil, fmt.Errorf("scanning yearly expenses: %w", err)
		}

		totals[month-1].Expense = expense
	}

	if err := expRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating yearly expenses: %w", err)
	}

	return totals, nil
}

func (s *Store) ExpensesByCategory(ctx context.Context, householdID uuid.UUID, month, year int) ([]dashboard.CategorySlice, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0), COUNT(*)
		FROM expenses
		WHERE household_id = $1
			AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3
			AND deleted_at IS NULL
		GROUP BY category
		ORDER BY 2 DESC
	`

	rows, err := s.db.QueryContext(ctx, query, householdID, month+1, year)
	if err != nil {
		return nil, fmt.Errorf("grouping expenses: %w", err)
	}
	defer rows.Close()

	var slices []dashboard.CategorySlice

	for rows.Next() {
		var slice dashboard.CategorySlice
		if err := rows.Scan(&slice.Category, &slice.Total, &slice.Count); err != nil {
			return nil, fmt.Errorf("scanning expense group: %w", err)
		}

		slices = append(slices, slice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense groups: %w", err)
	}

	return slices, nil
}
