package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/accounttx"
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

const selectTransactionColumns = `
	id, household_id, type, amount, date, from_account_id, to_account_id, account_id, note, created_at, deleted_at
`

func scanTransaction(s scanner) (*accounttx.Transaction, error) {
	var tx accounttx.Transaction

	var typeStr string

	var note sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.HouseholdID, &typeStr, &tx.Amount, &tx.Date,
		&tx.FromAccountID, &tx.ToAccountID, &tx.AccountID, &note,
		&tx.CreatedAt, &tx.DeletedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = accounttx.Type(typeStr)
	tx.Note = note.String

	return &tx, nil
}

// CreateMovement inserts the transaction row and applies every balance
// delta in a single database transaction.
func (s *Store) CreateMovement(ctx context.Context, tx *accounttx.Transaction, deltas map[uuid.UUID]int64) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	insert := `
		INSERT INTO account_transactions (household_id, type, amount, date, from_account_id, to_account_id, account_id, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, insert,
		tx.HouseholdID, tx.Type, tx.Amount, tx.Date,
		tx.FromAccountID, tx.ToAccountID, tx.AccountID, tx.Note,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating account transaction: %w", err)
	}

	update := `
		UPDATE accounts
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2 AND household_id = $3 AND deleted_at IS NULL
	`

	for accountID, delta := range deltas {
		if _, err := dbTx.ExecContext(ctx, update, delta, accountID, tx.HouseholdID); err != nil {
			return fmt.Errorf("applying balance delta: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing movement: %w", err)
	}

	return nil
}

func (s *Store) ListTransactions(ctx context.Context, householdID uuid.UUID, filter accounttx.ListFilter) ([]*accounttx.Transaction, int, error) {
	where := ` WHERE household_id = $1 AND deleted_at IS NULL`
	args := []any{householdID}
	argIdx := 2

	if filter.Type != nil {
		where += fmt.Sprintf(" AND type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.Month != nil && filter.Year != nil {
		where += fmt.Sprintf(" AND EXTRACT(MONTH FROM date) = $%d AND EXTRACT(YEAR FROM date) = $%d", argIdx, argIdx+1)

		args = append(args, int(*filter.Month), *filter.Year)
		argIdx += 2
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM account_transactions`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting transactions: %w", err)
	}

	query := `SELECT ` + selectTransactionColumns + ` FROM account_transactions` + where +
		fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*accounttx.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, total, nil
}

func (s *Store) RecentTransactions(ctx context.Context, householdID uuid.UUID, month time.Month, year, limit int) ([]*accounttx.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM account_transactions
		WHERE household_id = $1 AND deleted_at IS NULL
			AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date DESC, created_at DESC
		LIMIT $4`

	rows, err := s.db.QueryContext(ctx, query, householdID, int(month), year, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent transactions: %w", err)
	}
	defer rows.Close()

	var txs []*accounttx.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recent transactions: %w", err)
	}

	return txs, nil
}
