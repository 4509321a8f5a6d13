package expense_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/homeledger/internal/category"
	"github.com/MrJamesThe3rd/homeledger/internal/expense"
)

type allowAllCategories struct{}

func (allowAllCategories) Validate(context.Context, uuid.UUID, string, string) error { return nil }

func TestService_Create(t *testing.T) {
	household := uuid.New()
	accountID := uuid.New()
	date := time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateExpense(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *expense.Expense) error {
				e.ID = uuid.New()
				e.CreatedAt = time.Now()
				return nil
			})

		svc := expense.NewService(repo, allowAllCategories{})
		got, err := svc.Create(context.Background(), expense.CreateParams{
			HouseholdID: household,
			Amount:      30000,
			Description: "Weekly vegetables",
			Category:    "Groceries",
			Subcategory: "Vegetables",
			AccountID:   accountID,
			Date:        date,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)

		svc := expense.NewService(repo, allowAllCategories{})
		_, err := svc.Create(context.Background(), expense.CreateParams{
			HouseholdID: household,
			Amount:      -100,
			Category:    "Groceries",
			AccountID:   accountID,
			Date:        date,
		})

		assert.ErrorIs(t, err, expense.ErrInvalidAmount)
	})

	t.Run("BadSubcategory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := expense.NewMockRepository(ctrl)

		validator := expense.NewMockCategoryValidator(ctrl)
		validator.EXPECT().
			Validate(gomock.Any(), household, "Groceries", "Petrol").
			Return(category.ErrUnknownSubcategory)

		svc := expense.NewService(repo, validator)
		_, err := svc.Create(context.Background(), expense.CreateParams{
			HouseholdID: household,
			Amount:      30000,
			Category:    "Groceries",
			Subcategory: "Petrol",
			AccountID:   accountID,
			Date:        date,
		})

		assert.ErrorIs(t, err, category.ErrUnknownSubcategory)
	})
}

func TestService_Update_CategoryChangeClearsSubcategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	household := uuid.New()
	id := uuid.New()

	existing := &expense.Expense{
		ID:          id,
		HouseholdID: household,
		Amount:      30000,
		Category:    "Groceries",
		Subcategory: "Dairy",
		AccountID:   uuid.New(),
	}

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().GetExpense(gomock.Any(), household, id).Return(existing, nil)
	repo.EXPECT().
		UpdateExpense(gomock.Any(), gomock.Any(), int64(30000), existing.AccountID).
		DoAndReturn(func(_ context.Context, e *expense.Expense, _ int64, _ uuid.UUID) error {
			assert.Equal(t, "Fuel", e.Category)
			assert.Empty(t, e.Subcategory)
			return nil
		})

	newCategory := "Fuel"

	svc := expense.NewService(repo, allowAllCategories{})
	got, err := svc.Update(context.Background(), household, id, expense.UpdateParams{
		Category: &newCategory,
	})

	require.NoError(t, err)
	assert.Empty(t, got.Subcategory)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	household := uuid.New()
	filter := expense.ListFilter{Category: "Groceries", Page: 1, Limit: 10}

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().
		ListExpenses(gomock.Any(), household, filter).
		Return([]*expense.Expense{{ID: uuid.New()}}, 95, nil)

	svc := expense.NewService(repo, allowAllCategories{})
	expenses, total, err := svc.List(context.Background(), household, filter)

	require.NoError(t, err)
	assert.Len(t, expenses, 1)
	assert.Equal(t, 95, total)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	household := uuid.New()
	id := uuid.New()

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().GetExpense(gomock.Any(), household, id).Return(nil, expense.ErrNotFound)

	svc := expense.NewService(repo, allowAllCategories{})
	_, err := svc.Update(context.Background(), household, id, expense.UpdateParams{})

	assert.True(t, errors.Is(err, expense.ErrNotFound))
}
