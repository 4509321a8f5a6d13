// Package budget tracks monthly category budgets and evaluates
// hypothetical expenses against them without committing anything.
package budget

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("budget not found")
	ErrInvalidMonth = errors.New("month must be between 0 and 11")
)

// Budget caps spending for a (category, subcategory, month, year) slot.
// Month is 0-11 on the wire. Subcategory empty means the whole category.
type Budget struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Category    string
	Subcategory string
	Amount      int64
	Month       int
	Year        int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Status is the outcome of a budget check.
type Status string

const (
	StatusOK         Status = "ok"
	StatusNearLimit  Status = "nearLimit"
	StatusOverBudget Status = "overBudget"
)

// nearLimitRatio marks a budget as approaching its cap once projected
// spend reaches this share of it.
const nearLimitRatio = 0.8

// CheckResult is the non-committing verdict on a candidate expense.
// Remaining is set for ok/nearLimit; OverBy for overBudget.
type CheckResult struct {
	Status    Status
	Budgeted  int64
	Spent     int64
	Remaining int64
	OverBy    int64
}

// Evaluate projects a candidate amount on top of what is already spent
// and classifies the result.
func Evaluate(budgeted, spent, amount int64) CheckResult {
	projected := spent + amount

	if projected > budgeted {
		return CheckResult{
			Status:   StatusOverBudget,
			Budgeted: budgeted,
			Spent:    spent,
			OverBy:   projected - budgeted,
		}
	}

	result := CheckResult{
		Status:    StatusOK,
		Budgeted:  budgeted,
		Spent:     spent,
		Remaining: budgeted - projected,
	}

	if float64(projected) >= float64(budgeted)*nearLimitRatio {
		result.Status = StatusNearLimit
	}

	return result
}
