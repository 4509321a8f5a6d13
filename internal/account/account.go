package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("account not found")

// Type classifies where the money lives.
type Type string

const (
	TypeBank       Type = "bank"
	TypeUPI        Type = "upi"
	TypeInvestment Type = "investment"
	TypeWallet     Type = "wallet"
	TypeCash       Type = "cash"
	TypeCard       Type = "card"
	TypeOther      Type = "other"
)

// Valid reports whether t is a known account type.
func (t Type) Valid() bool {
	switch t {
	case TypeBank, TypeUPI, TypeInvestment, TypeWallet, TypeCash, TypeCard, TypeOther:
		return true
	}

	return false
}

// Account holds a balance in paise. Balances are mutated only by
// transaction processing, never directly.
type Account struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Name        string
	Type        Type
	Balance     int64
	Note        string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}
