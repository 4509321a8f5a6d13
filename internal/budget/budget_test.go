package budget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/homeledger/internal/budget"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name          string
		budgeted      int64
		spent         int64
		amount        int64
		wantStatus    budget.Status
		wantRemaining int64
		wantOverBy    int64
	}{
		{
			// Groceries: budget 5000, spent 4800, adding 300.
			name:       "OverBudget",
			budgeted:   500000,
			spent:      480000,
			amount:     30000,
			wantStatus: budget.StatusOverBudget,
			wantOverBy: 10000,
		},
		{
			name:          "NearLimitAtEightyPercent",
			budgeted:      500000,
			spent:         300000,
			amount:        100000,
			wantStatus:    budget.StatusNearLimit,
			wantRemaining: 100000,
		},
		{
			name:          "OK",
			budgeted:      500000,
			spent:         100000,
			amount:        100000,
			wantStatus:    budget.StatusOK,
			wantRemaining: 300000,
		},
		{
			name:          "ExactlyAtBudgetIsNearLimitNotOver",
			budgeted:      500000,
			spent:         400000,
			amount:        100000,
			wantStatus:    budget.StatusNearLimit,
			wantRemaining: 0,
		},
		{
			name:          "JustUnderEightyPercent",
			budgeted:      500000,
			spent:         200000,
			amount:        199999,
			wantStatus:    budget.StatusOK,
			wantRemaining: 100001,
		},
		{
			name:       "OneOverBudget",
			budgeted:   500000,
			spent:      500000,
			amount:     1,
			wantStatus: budget.StatusOverBudget,
			wantOverBy: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := budget.Evaluate(tt.budgeted, tt.spent, tt.amount)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantRemaining, got.Remaining)
			assert.Equal(t, tt.wantOverBy, got.OverBy)
			assert.Equal(t, tt.budgeted, got.Budgeted)
			assert.Equal(t, tt.spent, got.Spent)
		})
	}
}
