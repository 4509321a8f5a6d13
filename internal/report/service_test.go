package report_test

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/homeledger/internal/expense"
	"github.com/MrJamesThe3rd/homeledger/internal/report"
	"github.com/MrJamesThe3rd/homeledger/internal/trip"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := report.WriteCSV(&buf, report.Sheet{
		Name:   "demo",
		Header: []string{"Date", "Amount"},
		Rows:   [][]string{{"Mar 1, 2025", "120.00"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Date,Amount\n\"Mar 1, 2025\",120.00\n", buf.String())
}

func TestWriteArchive(t *testing.T) {
	t.Parallel()

	sheets := []report.Sheet{
		{Name: "one", Header: []string{"A"}, Rows: [][]string{{"1"}}},
		{Name: "two", Header: []string{"B"}},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteArchive(&buf, sheets))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "one.csv", zr.File[0].Name)
	assert.Equal(t, "two.csv", zr.File[1].Name)
}

func TestServiceMonthly(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()

	ctrl := gomock.NewController(t)
	expenses := report.NewMockExpenseSource(ctrl)

	expenses.EXPECT().
		List(gomock.Any(), householdID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter expense.ListFilter) ([]*expense.Expense, int, error) {
			require.NotNil(t, filter.StartDate)
			require.NotNil(t, filter.EndDate)
			assert.Equal(t, time.March, filter.StartDate.Month())

			return []*expense.Expense{
				{Date: time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), Description: "Veggies", Category: "Groceries", Amount: 45000},
				{Date: time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), Description: "Fuel", Category: "Transport", Amount: 150000},
			}, 2, nil
		})

	svc := report.NewService(expenses, nil, nil, nil, nil)

	sheet, err := svc.Monthly(context.Background(), householdID, 2, 2025)
	require.NoError(t, err)

	assert.Equal(t, "monthly_Mar_2025", sheet.Name)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "450.00", sheet.Rows[0][4])
	assert.Equal(t, []string{"", "", "", "Total", "1950.00"}, sheet.Rows[2])
}

func TestServiceTripReport(t *testing.T) {
	t.Parallel()

	householdID := uuid.New()
	tripID := uuid.New()

	ctrl := gomock.NewController(t)
	expenses := report.NewMockExpenseSource(ctrl)
	trips := report.NewMockTripSource(ctrl)

	trips.EXPECT().
		Get(gomock.Any(), householdID, tripID).
		Return(&trip.Trip{
			ID:        tripID,
			Title:     "Goa",
			StartDate: time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.April, 14, 0, 0, 0, 0, time.UTC),
			Budget:    5_000_000,
		}, nil)
	expenses.EXPECT().
		List(gomock.Any(), householdID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter expense.ListFilter) ([]*expense.Expense, int, error) {
			require.NotNil(t, filter.TripID)
			assert.Equal(t, tripID, *filter.TripID)

			return []*expense.Expense{
				{Date: time.Date(2025, time.April, 11, 0, 0, 0, 0, time.UTC), Description: "Hotel", Category: "Travel", Amount: 1_200_000},
			}, 1, nil
		})

	svc := report.NewService(expenses, nil, nil, nil, trips)

	sheets, err := svc.TripReport(context.Background(), householdID, tripID)
	require.NoError(t, err)
	require.Len(t, sheets, 2)

	overview := sheets[0]
	assert.Equal(t, "trip_overview", overview.Name)
	require.Len(t, overview.Rows, 1)
	assert.Equal(t, "12000.00", overview.Rows[0][5])

	detail := sheets[1]
	require.Len(t, detail.Rows, 1)
	assert.Equal(t, "Hotel", detail.Rows[0][1])
}
