package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/expense"
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

const selectExpenseColumns = `
	id, household_id, amount, description, category, subcategory, account_id, date, trip_id, created_at, updated_at, deleted_at
`

func scanExpense(s scanner) (*expense.Expense, error) {
	var e expense.Expense

	var subcategory sql.NullString

	if err := s.Scan(
		&e.ID, &e.HouseholdID, &e.Amount, &e.Description, &e.Category, &subcategory,
		&e.AccountID, &e.Date, &e.TripID, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	); err != nil {
		return nil, err
	}

	e.Subcategory = subcategory.String

	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	insert := `
		INSERT INTO expenses (household_id, amount, description, category, subcategory, account_id, date, trip_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, insert,
		e.HouseholdID, e.Amount, e.Description, e.Category, e.Subcategory,
		e.AccountID, e.Date, e.TripID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	debit := `
		UPDATE accounts
		SET balance = balance - $1, updated_at = NOW()
		WHERE id = $2 AND household_id = $3 AND deleted_at IS NULL
	`
	if _, err := dbTx.ExecContext(ctx, debit, e.Amount, e.AccountID, e.HouseholdID); err != nil {
		return fmt.Errorf("debiting account: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing expense: %w", err)
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, householdID, id uuid.UUID) (*expense.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses
		WHERE id = $1 AND household_id = $2 AND deleted_at IS NULL`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id, householdID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, expense.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense, previousAmount int64, previousAccountID uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	update := `
		UPDATE expenses
		SET amount = $1, description = $2, category = $3, subcategory = $4,
			account_id = $5, date = $6, trip_id = $7, updated_at = NOW()
		WHERE id = $8 AND household_id = $9 AND deleted_at IS NULL
	`

	_, err = dbTx.ExecContext(ctx, update,
		e.Amount, e.Description, e.Category, e.Subcategory,
		e.AccountID, e.Date, e.TripID, e.ID, e.HouseholdID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	adjust := `
		UPDATE accounts
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2 AND household_id = $3 AND deleted_at IS NULL
	`

	// Credit the old amount back to the old account, then debit the new
	// amount from the (possibly different) current account.
	if _, err := dbTx.ExecContext(ctx, adjust, previousAmount, previousAccountID, e.HouseholdID); err != nil {
		return fmt.Errorf("reversing previous debit: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, adjust, -e.Amount, e.AccountID, e.HouseholdID); err != nil {
		return fmt.Errorf("debiting account: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing expense update: %w", err)
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, householdID, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	var amount int64

	var accountID uuid.UUID

	mark := `
		UPDATE expenses
		SET deleted_at = NOW()
		WHERE id = $1 AND household_id = $2 AND deleted_at IS NULL
		RETURNING amount, account_id
	`

	err = dbTx.QueryRowContext(ctx, mark, id, householdID).Scan(&amount, &accountID)
	if err != nil {
		if err == sql.ErrNoRows {
			return expense.ErrNotFound
		}

		return fmt.Errorf("deleting expense: %w", err)
	}

	credit := `
		UPDATE accounts
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2 AND household_id = $3 AND deleted_at IS NULL
	`
	if _, err := dbTx.ExecContext(ctx, credit, amount, accountID, householdID); err != nil {
		return fmt.Errorf("crediting account: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing expense delete: %w", err)
	}

	return nil
}

func (s *Store) ListExpenses(ctx context.Context, householdID uuid.UUID, filter expense.ListFilter) ([]*expense.Expense, int, error) {
	where := ` WHERE household_id = $1 AND deleted_at IS NULL`
	args := []any{householdID}
	argIdx := 2

	if filter.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", argIdx)

		args = append(args, filter.Category)
		argIdx++
	}

	if filter.AccountID != nil {
		where += fmt.Sprintf(" AND account_id = $%d", argIdx)

		args = append(args, *filter.AccountID)
		argIdx++
	}

	if filter.TripID != nil {
		where += fmt.Sprintf(" AND trip_id = $%d", argIdx)

		args = append(args, *filter.TripID)
		argIdx++
	}

	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Search != "" {
		where += fmt.Sprintf(" AND description ILIKE '%%' || $%d || '%%'", argIdx)

		args = append(args, filter.Search)
		argIdx++
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting expenses: %w", err)
	}

	query := `SELECT ` + selectExpenseColumns + ` FROM expenses` + where +
		fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating expenses: %w", err)
	}

	return expenses, total, nil
}
