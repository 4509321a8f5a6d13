package client

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Location is the coordinate pair the login gate requires.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ReadOnly reports whether the session's role blocks mutations.
func (u User) ReadOnly() bool {
	return u.Role == "viewer"
}

type Household struct {
	Name string `json:"name"`
}

// Session is the authenticated state persisted across runs.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	Household Household `json:"household"`
}

type LoginAttempt struct {
	UserName  string    `json:"username"`
	Success   bool      `json:"success"`
	Location  *Location `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Account struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	Balance int64     `json:"balance"`
	Note    string    `json:"note,omitempty"`
}

type Transaction struct {
	ID            uuid.UUID  `json:"id"`
	Type          string     `json:"type"`
	Amount        int64      `json:"amount"`
	Date          time.Time  `json:"date"`
	FromAccountID *uuid.UUID `json:"fromAccountId,omitempty"`
	ToAccountID   *uuid.UUID `json:"toAccountId,omitempty"`
	AccountID     *uuid.UUID `json:"accountId,omitempty"`
	Note          string     `json:"note,omitempty"`
}

type Expense struct {
	ID          uuid.UUID  `json:"id"`
	Amount      int64      `json:"amount"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory,omitempty"`
	AccountID   uuid.UUID  `json:"accountId"`
	Date        time.Time  `json:"date"`
	TripID      *uuid.UUID `json:"tripId,omitempty"`
}

type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Subcategories []string `json:"subcategories"`
	Color         string   `json:"color,omitempty"`
}

type Budget struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Amount      int64     `json:"amount"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
}

// BudgetCheck is the non-committing verdict on a candidate expense.
type BudgetCheck struct {
	Status    string `json:"status"`
	Remaining *int64 `json:"remaining,omitempty"`
	OverBy    *int64 `json:"overBy,omitempty"`
}

type BudgetSummaryRow struct {
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"`
	Budgeted    int64   `json:"budgeted"`
	Spent       int64   `json:"spent"`
	Percentage  float64 `json:"percentage"`
}

type Trip struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Purpose   string    `json:"purpose,omitempty"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Budget    int64     `json:"budget"`
	Notes     string    `json:"notes,omitempty"`
}

// Within reports whether a date falls in the trip's detection window,
// one day of slack on each side.
func (t Trip) Within(date time.Time) bool {
	start := t.StartDate.AddDate(0, 0, -1)
	end := t.EndDate.AddDate(0, 0, 1)

	return !date.Before(start) && !date.After(end)
}

type ChartPoint struct {
	Label      string `json:"label"`
	Salary     int64  `json:"salary"`
	Expense    int64  `json:"expense"`
	Investment int64  `json:"investment"`
}

type DashboardSummary struct {
	TotalBalance              int64        `json:"totalBalance"`
	TotalSalary               int64        `json:"totalSalary"`
	TotalExpenses             int64        `json:"totalExpenses"`
	NetThisMonth              int64        `json:"netThisMonth"`
	CarryForward              int64        `json:"carryForward"`
	Investment                int64        `json:"investment"`
	CarryForwardFromLastMonth int64        `json:"carryForwardFromLastMonth"`
	MonthlyChart              []ChartPoint `json:"monthlyChart"`
}

type CategorySlice struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
	Count    int    `json:"count"`
}

type MilkEntry struct {
	ID       uuid.UUID       `json:"id"`
	Date     time.Time       `json:"date"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     int64           `json:"rate"`
	Amount   int64           `json:"amount"`
}

type MilkSettlement struct {
	ID          uuid.UUID `json:"id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	TotalAmount int64     `json:"totalAmount"`
	SettledAt   time.Time `json:"settledAt"`
}

type SettledMonth struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}
