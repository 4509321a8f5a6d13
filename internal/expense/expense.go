package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("expense not found")
	ErrInvalidAmount = errors.New("amount must be positive")
)

type Expense struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Amount      int64
	Description string
	Category    string
	Subcategory string
	AccountID   uuid.UUID
	Date        time.Time
	TripID      *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}
