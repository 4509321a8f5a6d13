package dashboard_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/homeledger/internal/dashboard"
)

func TestServiceSummary(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()

	ctrl := gomock.NewController(t)
	repo := dashboard.NewMockRepository(ctrl)

	repo.EXPECT().
		TotalBalance(gomock.Any(), householdID).
		Return(int64(2_500_000), nil)
	repo.EXPECT().
		MonthTotals(gomock.Any(), householdID, 2, 2025).
		Return(dashboard.MonthTotals{Salary: 8_000_000, Expense: 3_000_000, Investment: 1_000_000}, nil)
	repo.EXPECT().
		TotalsBefore(gomock.Any(), householdID, 2, 2025).
		Return(dashboard.MonthTotals{Salary: 16_000_000, Expense: 7_000_000, Investment: 2_000_000}, nil)

	yearly := make([]dashboard.MonthTotals, 12)
	yearly[2] = dashboard.MonthTotals{Salary: 8_000_000, Expense: 3_000_000, Investment: 1_000_000}
	repo.EXPECT().
		YearTotals(gomock.Any(), householdID, 2025).
		Return(yearly, nil)

	svc := dashboard.NewService(repo)

	summary, err := svc.Summary(context.Background(), householdID, 2, 2025)
	require.NoError(t, err)

	assert.Equal(t, int64(2_500_000), summary.TotalBalance)
	assert.Equal(t, int64(8_000_000), summary.TotalSalary)
	assert.Equal(t, int64(3_000_000), summary.TotalExpenses)
	assert.Equal(t, int64(1_000_000), summary.Investment)
	assert.Equal(t, int64(4_000_000), summary.NetThisMonth)
	assert.Equal(t, int64(7_000_000), summary.CarryForwardFromLastMonth)
	assert.Equal(t, int64(11_000_000), summary.CarryForward)

	require.Len(t, summary.MonthlyChart, 12)
	assert.Equal(t, "Jan", summary.MonthlyChart[0].Label)
	assert.Equal(t, "Mar", summary.MonthlyChart[2].Label)
	assert.Equal(t, int64(8_000_000), summary.MonthlyChart[2].Salary)
	assert.Zero(t, summary.MonthlyChart[0].Salary)
}

func TestServiceExpenseSummary(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()

	ctrl := gomock.NewController(t)
	repo := dashboard.NewMockRepository(ctrl)

	repo.EXPECT().
		ExpensesByCategory(gomock.Any(), householdID, 6, 2025).
		Return([]dashboard.CategorySlice{
			{Category: "Groceries", Total: 480_000, Count: 12},
			{Category: "Transport", Total: 120_000, Count: 8},
		}, nil)

	svc := dashboard.NewService(repo)

	slices, err := svc.ExpenseSummary(context.Background(), householdID, 6, 2025)
	require.NoError(t, err)
	require.Len(t, slices, 2)
	assert.Equal(t, "Groceries", slices[0].Category)
	assert.Equal(t, int64(480_000), slices[0].Total)
}
