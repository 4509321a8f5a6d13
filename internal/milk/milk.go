// Package milk tracks daily milk deliveries and monthly settlements.
// Once a month is settled its entries are locked against further edits.
package milk

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound        = errors.New("milk entry not found")
	ErrMonthSettled    = errors.New("month is already settled")
	ErrNothingToSettle = errors.New("no entries to settle for month")
	ErrInvalidEntry    = errors.New("quantity and rate must be positive")
)

// Entry is one day's delivery. Quantity is in litres, Rate in paise per
// litre, Amount the precomputed product in paise.
type Entry struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Date        time.Time
	Quantity    decimal.Decimal
	Rate        int64
	Amount      int64
	CreatedAt   time.Time
}

// ComputeAmount rounds quantity×rate to whole paise.
func ComputeAmount(quantity decimal.Decimal, rate int64) int64 {
	return quantity.Mul(decimal.NewFromInt(rate)).Round(0).IntPart()
}

// Settlement closes a month. Month is 0-11 on the wire.
type Settlement struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Month       int
	Year        int
	TotalAmount int64
	SettledAt   time.Time
}

// SettledMonth identifies a locked period.
type SettledMonth struct {
	Month int
	Year  int
}
