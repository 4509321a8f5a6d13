package trip

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("trip not found")
	ErrInvalidSpan = errors.New("end date is before start date")
)

type Trip struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Title       string
	Purpose     string
	StartDate   time.Time
	EndDate     time.Time
	Budget      int64
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// Contains reports whether a date falls inside the trip's detection
// window, which pads the actual span by one day on either side.
func (t *Trip) Contains(date time.Time) bool {
	start := t.StartDate.AddDate(0, 0, -1)
	end := t.EndDate.AddDate(0, 0, 1)

	return !date.Before(start) && !date.After(end)
}

// Match finds the first trip whose padded window contains the date.
// Nil when no trip matches; expense forms use this to auto-attach a trip.
func Match(date time.Time, trips []*Trip) *Trip {
	for _, t := range trips {
		if t.Contains(date) {
			return t
		}
	}

	return nil
}
