// Package accounttx covers money movements between and into accounts:
// transfers, investment contributions, salary credits and adjustments.
package accounttx

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/account"
)

var (
	ErrNotFound       = errors.New("transaction not found")
	ErrSameAccount    = errors.New("from and to accounts must differ")
	ErrMissingAccount = errors.New("transaction is missing an account")
	ErrInvalidAmount  = errors.New("amount must be positive")
)

// Type is the transaction kind.
type Type string

const (
	TypeSalary     Type = "salary"
	TypeTransfer   Type = "transfer"
	TypeInvestment Type = "investment"
	TypeIncome     Type = "income"
	TypeExpense    Type = "expense"
	TypeAdjustment Type = "adjustment"
	TypeOther      Type = "other"

	// TypeDeposit is a display-only label offered by transfer forms.
	// It never reaches the wire; Classify normalizes it to a transfer.
	TypeDeposit Type = "deposit"
)

// DefaultInvestmentNote pre-fills the note field when a transfer is
// reclassified as an investment and the user typed nothing.
const DefaultInvestmentNote = "Investment from salary"

// Classify resolves the effective transaction type for a money movement.
// A destination account of type investment forces the result to investment
// no matter what the user selected; otherwise the selection stands, with
// the deposit label normalized to transfer.
func Classify(selected Type, destType account.Type) Type {
	if destType == account.TypeInvestment {
		return TypeInvestment
	}

	if selected == TypeDeposit || selected == "" {
		return TypeTransfer
	}

	return selected
}

// Transaction is one movement. Transfers and investments carry both
// FromAccountID and ToAccountID; salary and simple entries carry only
// AccountID.
type Transaction struct {
	ID            uuid.UUID
	HouseholdID   uuid.UUID
	Type          Type
	Amount        int64
	Date          time.Time
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID
	AccountID     *uuid.UUID
	Note          string
	CreatedAt     time.Time
	DeletedAt     *time.Time
}
