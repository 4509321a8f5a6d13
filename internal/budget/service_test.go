package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/homeledger/internal/budget"
)

func TestService_Check(t *testing.T) {
	household := uuid.New()
	// July 2025: wire month 6.
	date := time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)

	t.Run("OverBudget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().
			FindBudget(gomock.Any(), household, "Groceries", "", 6, 2025).
			Return(&budget.Budget{
				HouseholdID: household,
				Category:    "Groceries",
				Amount:      500000,
				Month:       6,
				Year:        2025,
			}, nil)
		repo.EXPECT().
			SumSpent(gomock.Any(), household, "Groceries", "", 6, 2025).
			Return(int64(480000), nil)

		svc := budget.NewService(repo)
		result, err := svc.Check(context.Background(), budget.CheckParams{
			HouseholdID: household,
			Category:    "Groceries",
			Amount:      30000,
			Date:        date,
		})

		require.NoError(t, err)
		assert.Equal(t, budget.StatusOverBudget, result.Status)
		assert.Equal(t, int64(10000), result.OverBy)
	})

	t.Run("NoBudgetMeansOK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().
			FindBudget(gomock.Any(), household, "Travel", "", 6, 2025).
			Return(nil, budget.ErrNotFound)

		svc := budget.NewService(repo)
		result, err := svc.Check(context.Background(), budget.CheckParams{
			HouseholdID: household,
			Category:    "Travel",
			Amount:      100000,
			Date:        date,
		})

		require.NoError(t, err)
		assert.Equal(t, budget.StatusOK, result.Status)
	})

	t.Run("SubcategorySlotUsed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := budget.NewMockRepository(ctrl)
		repo.EXPECT().
			FindBudget(gomock.Any(), household, "Groceries", "Dairy", 6, 2025).
			Return(&budget.Budget{
				Category:    "Groceries",
				Subcategory: "Dairy",
				Amount:      100000,
				Month:       6,
				Year:        2025,
			}, nil)
		repo.EXPECT().
			SumSpent(gomock.Any(), household, "Groceries", "Dairy", 6, 2025).
			Return(int64(50000), nil)

		svc := budget.NewService(repo)
		result, err := svc.Check(context.Background(), budget.CheckParams{
			HouseholdID: household,
			Category:    "Groceries",
			Subcategory: "Dairy",
			Amount:      10000,
			Date:        date,
		})

		require.NoError(t, err)
		assert.Equal(t, budget.StatusOK, result.Status)
		assert.Equal(t, int64(40000), result.Remaining)
	})
}

func TestService_Create_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)

	svc := budget.NewService(repo)
	_, err := svc.Create(context.Background(), budget.CreateParams{
		HouseholdID: uuid.New(),
		Category:    "Groceries",
		Amount:      500000,
		Month:       12,
		Year:        2025,
	})

	assert.ErrorIs(t, err, budget.ErrInvalidMonth)
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	household := uuid.New()

	repo := budget.NewMockRepository(ctrl)
	repo.EXPECT().
		ListBudgets(gomock.Any(), household, 6, 2025).
		Return([]*budget.Budget{
			{Category: "Groceries", Amount: 500000},
			{Category: "Fuel", Amount: 200000},
		}, nil)
	repo.EXPECT().
		SumSpent(gomock.Any(), household, "Groceries", "", 6, 2025).
		Return(int64(480000), nil)
	repo.EXPECT().
		SumSpent(gomock.Any(), household, "Fuel", "", 6, 2025).
		Return(int64(0), nil)

	svc := budget.NewService(repo)
	rows, err := svc.Summary(context.Background(), household, 6, 2025)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.InDelta(t, 96.0, rows[0].Percentage, 0.001)
	assert.Zero(t, rows[1].Percentage)
}
