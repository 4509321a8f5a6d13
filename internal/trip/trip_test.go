package trip_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/homeledger/internal/trip"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTrip_Contains(t *testing.T) {
	goa := &trip.Trip{
		ID:        uuid.New(),
		Title:     "Goa",
		StartDate: day(2025, 7, 10),
		EndDate:   day(2025, 7, 15),
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "DayBeforeStartIsInWindow", date: day(2025, 7, 9), want: true},
		{name: "StartDate", date: day(2025, 7, 10), want: true},
		{name: "MidTrip", date: day(2025, 7, 12), want: true},
		{name: "EndDate", date: day(2025, 7, 15), want: true},
		{name: "DayAfterEndIsInWindow", date: day(2025, 7, 16), want: true},
		{name: "TwoDaysBefore", date: day(2025, 7, 8), want: false},
		{name: "TwoDaysAfter", date: day(2025, 7, 17), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, goa.Contains(tt.date))
		})
	}
}

func TestMatch(t *testing.T) {
	goa := &trip.Trip{ID: uuid.New(), Title: "Goa", StartDate: day(2025, 7, 10), EndDate: day(2025, 7, 15)}
	manali := &trip.Trip{ID: uuid.New(), Title: "Manali", StartDate: day(2025, 8, 1), EndDate: day(2025, 8, 5)}

	trips := []*trip.Trip{goa, manali}

	assert.Equal(t, goa, trip.Match(day(2025, 7, 11), trips))
	assert.Equal(t, manali, trip.Match(day(2025, 8, 6), trips))
	assert.Nil(t, trip.Match(day(2025, 9, 1), trips))
	assert.Nil(t, trip.Match(day(2025, 7, 11), nil))
}
