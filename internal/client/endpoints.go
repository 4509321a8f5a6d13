package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type loginRequest struct {
	UserName string    `json:"username"`
	Password string    `json:"password"`
	Location *Location `json:"location"`
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, username, password string, location *Location) (*Session, error) {
	var session Session

	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{
		UserName: username,
		Password: password,
		Location: location,
	}, &session)
	if err != nil {
		return nil, err
	}

	c.token = session.Token

	return &session, nil
}

type registerRequest struct {
	Name          string `json:"name"`
	UserName      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	HouseholdName string `json:"householdName"`
}

func (c *Client) Register(ctx context.Context, name, username, email, password, householdName string) (*Session, error) {
	var session Session

	err := c.do(ctx, http.MethodPost, "/auth/register", nil, registerRequest{
		Name:          name,
		UserName:      username,
		Email:         email,
		Password:      password,
		HouseholdName: householdName,
	}, &session)
	if err != nil {
		return nil, err
	}

	c.token = session.Token

	return &session, nil
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	return c.do(ctx, http.MethodPost, "/auth/change-password", nil, changePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	}, nil)
}

func (c *Client) LoginAttempts(ctx context.Context, limit int) ([]LoginAttempt, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var attempts []LoginAttempt
	if err := c.do(ctx, http.MethodGet, "/auth/attempts", q, nil, &attempts); err != nil {
		return nil, err
	}

	return attempts, nil
}

func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := c.do(ctx, http.MethodGet, "/accounts", nil, nil, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

type CreateAccountParams struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Balance string `json:"balance"`
	Note    string `json:"note"`
}

func (c *Client) CreateAccount(ctx context.Context, params CreateAccountParams) (*Account, error) {
	var a Account
	if err := c.do(ctx, http.MethodPost, "/accounts", nil, params, &a); err != nil {
		return nil, err
	}

	return &a, nil
}

// TransactionFilter narrows the account-transaction list. Month is 0-11
// when set.
type TransactionFilter struct {
	Type  string
	Month *int
	Year  *int
	Page  int
	Limit int
}

type transactionList struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
}

func (c *Client) Transactions(ctx context.Context, filter TransactionFilter) ([]Transaction, int, error) {
	q := url.Values{}

	if filter.Type != "" {
		q.Set("type", filter.Type)
	}

	if filter.Month != nil {
		q.Set("month", strconv.Itoa(*filter.Month))
	}

	if filter.Year != nil {
		q.Set("year", strconv.Itoa(*filter.Year))
	}

	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}

	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	var list transactionList
	if err := c.do(ctx, http.MethodGet, "/account-transactions", q, nil, &list); err != nil {
		return nil, 0, err
	}

	return list.Transactions, list.Total, nil
}

func (c *Client) RecentTransactions(ctx context.Context, month, year, limit int) ([]Transaction, error) {
	q := periodQuery(month, year)
	q.Set("limit", strconv.Itoa(limit))

	var txs []Transaction
	if err := c.do(ctx, http.MethodGet, "/account-transactions/recent", q, nil, &txs); err != nil {
		return nil, err
	}

	return txs, nil
}

type TransferParams struct {
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	FromAccountID uuid.UUID `json:"fromAccountId"`
	ToAccountID   uuid.UUID `json:"toAccountId"`
	Note          string    `json:"note"`
	Date          time.Time `json:"date"`
}

func (c *Client) Transfer(ctx context.Context, params TransferParams) (*Transaction, error) {
	var tx Transaction
	if err := c.do(ctx, http.MethodPost, "/account-transactions", nil, params, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

type SalaryParams struct {
	AccountID uuid.UUID `json:"accountId"`
	Amount    string    `json:"amount"`
	Note      string    `json:"note"`
	Date      time.Time `json:"date"`
}

func (c *Client) RecordSalary(ctx context.Context, params SalaryParams) (*Transaction, error) {
	var tx Transaction
	if err := c.do(ctx, http.MethodPost, "/account-transactions/salary", nil, params, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

// ExpenseFilter narrows the expense list.
type ExpenseFilter struct {
	Category  string
	AccountID *uuid.UUID
	TripID    *uuid.UUID
	Search    string
	Page      int
	Limit     int
}

type expenseList struct {
	Expenses []Expense `json:"expenses"`
	Total    int       `json:"total"`
}

func (c *Client) Expenses(ctx context.Context, filter ExpenseFilter) ([]Expense, int, error) {
	q := url.Values{}

	if filter.Category != "" {
		q.Set("category", filter.Category)
	}

	if filter.AccountID != nil {
		q.Set("accountId", filter.AccountID.String())
	}

	if filter.TripID != nil {
		q.Set("tripId", filter.TripID.String())
	}

	if filter.Search != "" {
		q.Set("search", filter.Search)
	}

	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}

	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	var list expenseList
	if err := c.do(ctx, http.MethodGet, "/expenses", q, nil, &list); err != nil {
		return nil, 0, err
	}

	return list.Expenses, list.Total, nil
}

type ExpenseParams struct {
	Amount      string     `json:"amount"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory"`
	AccountID   uuid.UUID  `json:"accountId"`
	Date        time.Time  `json:"date"`
	TripID      *uuid.UUID `json:"tripId,omitempty"`
}

func (c *Client) CreateExpense(ctx context.Context, params ExpenseParams) (*Expense, error) {
	var e Expense
	if err := c.do(ctx, http.MethodPost, "/expenses", nil, params, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

func (c *Client) UpdateExpense(ctx context.Context, id uuid.UUID, params ExpenseParams) (*Expense, error) {
	var e Expense
	if err := c.do(ctx, http.MethodPut, "/expenses/"+id.String(), nil, params, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/expenses/"+id.String(), nil, nil, nil)
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *Client) Budgets(ctx context.Context, month, year int) ([]Budget, error) {
	var budgets []Budget
	if err := c.do(ctx, http.MethodGet, "/budgets", periodQuery(month, year), nil, &budgets); err != nil {
		return nil, err
	}

	return budgets, nil
}

// CheckBudget evaluates a hypothetical expense without committing it.
func (c *Client) CheckBudget(ctx context.Context, category, subcategory, amount string, date time.Time) (*BudgetCheck, error) {
	q := url.Values{}
	q.Set("category", category)
	q.Set("amount", amount)
	q.Set("date", date.Format(time.DateOnly))

	if subcategory != "" {
		q.Set("subcategory", subcategory)
	}

	var check BudgetCheck
	if err := c.do(ctx, http.MethodGet, "/budgets/check", q, nil, &check); err != nil {
		return nil, err
	}

	return &check, nil
}

func (c *Client) BudgetSummary(ctx context.Context, month, year int) ([]BudgetSummaryRow, error) {
	var rows []BudgetSummaryRow
	if err := c.do(ctx, http.MethodGet, "/budgets/summary", periodQuery(month, year), nil, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

type BudgetParams struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Amount      string `json:"amount"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
}

func (c *Client) CreateBudget(ctx context.Context, params BudgetParams) (*Budget, error) {
	var b Budget
	if err := c.do(ctx, http.MethodPost, "/budgets", nil, params, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (c *Client) Trips(ctx context.Context) ([]Trip, error) {
	var trips []Trip
	if err := c.do(ctx, http.MethodGet, "/trips", nil, nil, &trips); err != nil {
		return nil, err
	}

	return trips, nil
}

func (c *Client) TripReport(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return c.download(ctx, "/trips/"+id.String()+"/report", nil)
}

func (c *Client) DashboardSummary(ctx context.Context, month, year int) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/dashboard/summary", periodQuery(month, year), nil, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *Client) ExpenseSummary(ctx context.Context, month, year int) ([]CategorySlice, error) {
	var slices []CategorySlice
	if err := c.do(ctx, http.MethodGet, "/dashboard/expense-summary", periodQuery(month, year), nil, &slices); err != nil {
		return nil, err
	}

	return slices, nil
}

type milkList struct {
	Entries []MilkEntry `json:"entries"`
	Total   int         `json:"total"`
	Settled bool        `json:"settled"`
}

func (c *Client) MilkEntries(ctx context.Context, month, year, page, limit int) ([]MilkEntry, int, bool, error) {
	q := periodQuery(month, year)
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var list milkList
	if err := c.do(ctx, http.MethodGet, "/milk", q, nil, &list); err != nil {
		return nil, 0, false, err
	}

	return list.Entries, list.Total, list.Settled, nil
}

type MilkEntryParams struct {
	Date     time.Time `json:"date"`
	Quantity string    `json:"quantity"`
	Rate     string    `json:"rate"`
}

func (c *Client) AddMilkEntry(ctx context.Context, params MilkEntryParams) (*MilkEntry, error) {
	var e MilkEntry
	if err := c.do(ctx, http.MethodPost, "/milk", nil, params, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

func (c *Client) DeleteMilkEntry(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/milk/"+id.String(), nil, nil, nil)
}

type settleRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (c *Client) SettleMilkMonth(ctx context.Context, month, year int) (*MilkSettlement, error) {
	var settlement MilkSettlement
	if err := c.do(ctx, http.MethodPost, "/milk/settle", nil, settleRequest{Month: month, Year: year}, &settlement); err != nil {
		return nil, err
	}

	return &settlement, nil
}

func (c *Client) SettledMonths(ctx context.Context) ([]SettledMonth, error) {
	var months []SettledMonth
	if err := c.do(ctx, http.MethodGet, "/milk/settlements", nil, nil, &months); err != nil {
		return nil, err
	}

	return months, nil
}

// MonthlyReport downloads one of the period-scoped CSV reports.
// Kind is one of monthly, budget-summary, transactions, milk-summary.
func (c *Client) MonthlyReport(ctx context.Context, kind string, month, year int) ([]byte, error) {
	return c.download(ctx, "/reports/"+kind, periodQuery(month, year))
}
