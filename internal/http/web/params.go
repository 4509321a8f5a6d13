package web

import (
	"net/http"
	"strconv"
	"time"
)

// QueryInt reads an integer query parameter, falling back when absent
// or malformed.
func QueryInt(r *http.Request, name string, fallback int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return fallback
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}

	return n
}

// QueryMonthYear reads the month (0-11) and year parameters common to
// the period-scoped endpoints, defaulting to the current period.
func QueryMonthYear(r *http.Request) (int, int) {
	now := time.Now()

	month := QueryInt(r, "month", int(now.Month())-1)
	year := QueryInt(r, "year", now.Year())

	return month, year
}
