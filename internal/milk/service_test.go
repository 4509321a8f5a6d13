package milk_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/homeledger/internal/milk"
)

func TestComputeAmount(t *testing.T) {
	t.Parallel()

	// 1.5 litres at ₹60.00/litre is ₹90.00.
	got := milk.ComputeAmount(decimal.RequireFromString("1.5"), 6000)
	assert.Equal(t, int64(9000), got)

	// 0.33 litres at ₹61.50/litre rounds to whole paise.
	got = milk.ComputeAmount(decimal.RequireFromString("0.33"), 6150)
	assert.Equal(t, int64(2030), got)
}

func TestServiceAdd(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("records entry with computed amount", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := milk.NewMockRepository(ctrl)

		repo.EXPECT().
			IsSettled(gomock.Any(), householdID, 2, 2025).
			Return(false, nil)
		repo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *milk.Entry) error {
				assert.Equal(t, int64(12000), e.Amount)
				e.ID = uuid.New()

				return nil
			})

		svc := milk.NewService(repo)

		e, err := svc.Add(context.Background(), milk.AddParams{
			HouseholdID: householdID,
			Date:        date,
			Quantity:    decimal.NewFromInt(2),
			Rate:        6000,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(12000), e.Amount)
	})

	t.Run("rejects settled month", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := milk.NewMockRepository(ctrl)

		repo.EXPECT().
			IsSettled(gomock.Any(), householdID, 2, 2025).
			Return(true, nil)

		svc := milk.NewService(repo)

		_, err := svc.Add(context.Background(), milk.AddParams{
			HouseholdID: householdID,
			Date:        date,
			Quantity:    decimal.NewFromInt(1),
			Rate:        6000,
		})
		assert.ErrorIs(t, err, milk.ErrMonthSettled)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := milk.NewMockRepository(ctrl)

		svc := milk.NewService(repo)

		_, err := svc.Add(context.Background(), milk.AddParams{
			HouseholdID: householdID,
			Date:        date,
			Quantity:    decimal.Zero,
			Rate:        6000,
		})
		assert.ErrorIs(t, err, milk.ErrInvalidEntry)
	})
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	entryID := uuid.New()

	t.Run("deletes entry in open month", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := milk.NewMockRepository(ctrl)

		entry := &milk.Entry{
			ID:          entryID,
			HouseholdID: householdID,
			Date:        time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC),
		}

		repo.EXPECT().
			GetEntry(gomock.Any(), householdID, entryID).
			Return(entry, nil)
		repo.EXPECT().
			IsSettled(gomock.Any(), householdID, 5, 2025).
			Return(false, nil)
		repo.EXPECT().
			DeleteEntry(gomock.Any(), householdID, entryID).
			Return(entry, nil)

		svc := milk.NewService(repo)

		err := svc.Delete(context.Background(), householdID, entryID)
		require.NoError(t, err)
	})

	t.Run("refuses delete in settled month", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := milk.NewMockRepository(ctrl)

		repo.EXPECT().
			GetEntry(gomock.Any(), householdID, entryID).
			Return(&milk.Entry{
				ID:          entryID,
				HouseholdID: householdID,
				Date:        time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC),
			}, nil)
		repo.EXPECT().
			IsSettled(gomock.Any(), householdID, 5, 2025).
			Return(true, nil)

		svc := milk.NewService(repo)

		err := svc.Delete(context.Background(), householdID, entryID)
		assert.ErrorIs(t, err, milk.ErrMonthSettled)
	})
}

func TestServiceSettle(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()

	t.Run("settles month with entries", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := milk.NewMockRepository(ctrl)

		repo.EXPECT().
			IsSettled(gomock.Any(), householdID, 4, 2025).
			Return(false, nil)
		repo.EXPECT().
			SumMonth(gomock.Any(), householdID, 4, 2025).
			Return(int64(186000), 31, nil)
		repo.EXPECT().
			CreateSettlement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *milk.Settlement) error {
				assert.Equal(t, 4, s.Month)
				assert.Equal(t, 2025, s.Year)
				assert.Equal(t, int64(186000), s.TotalAmount)
				s.ID = uuid.New()

				return nil
			})

		svc := milk.NewService(repo)

		settlement, err := svc.Settle(context.Background(), householdID, 4, 2025)
		require.NoError(t, err)
		assert.Equal(t, int64(186000), settlement.TotalAmount)
	})

	t.Run("refuses double settlement", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := milk.NewMockRepository(ctrl)

		repo.EXPECT().
			IsSettled(gomock.Any(), householdID, 4, 2025).
			Return(true, nil)

		svc := milk.NewService(repo)

		_, err := svc.Settle(context.Background(), householdID, 4, 2025)
		assert.ErrorIs(t, err, milk.ErrMonthSettled)
	})

	t.Run("refuses empty month", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repo := milk.NewMockRepository(ctrl)

		repo.EXPECT().
			IsSettled(gomock.Any(), householdID, 6, 2025).
			Return(false, nil)
		repo.EXPECT().
			SumMonth(gomock.Any(), householdID, 6, 2025).
			Return(int64(0), 0, nil)

		svc := milk.NewService(repo)

		_, err := svc.Settle(context.Background(), householdID, 6, 2025)
		assert.ErrorIs(t, err, milk.ErrNothingToSettle)
	})
}
