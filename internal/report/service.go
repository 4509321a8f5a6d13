package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/accounttx"
	"github.com/MrJamesThe3rd/homeledger/internal/budget"
	"github.com/MrJamesThe3rd/homeledger/internal/expense"
	"github.com/MrJamesThe3rd/homeledger/internal/milk"
	"github.com/MrJamesThe3rd/homeledger/internal/money"
	"github.com/MrJamesThe3rd/homeledger/internal/trip"
)

// reportPageSize caps how many rows a single sheet pulls in one query.
const reportPageSize = 1000

//go:generate mockgen -source=service.go -destination=sources_mock.go -package=report
type ExpenseSource interface {
	List(ctx context.Context, householdID uuid.UUID, filter expense.ListFilter) ([]*expense.Expense, int, error)
}

type BudgetSource interface {
	Summary(ctx context.Context, householdID uuid.UUID, month, year int) ([]budget.SummaryRow, error)
}

type TransactionSource interface {
	List(ctx context.Context, householdID uuid.UUID, filter accounttx.ListFilter) ([]*accounttx.Transaction, int, error)
}

type MilkSource interface {
	List(ctx context.Context, householdID uuid.UUID, month, year, page, limit int) ([]*milk.Entry, int, error)
}

type TripSource interface {
	Get(ctx context.Context, householdID, id uuid.UUID) (*trip.Trip, error)
}

type Service struct {
	expenses     ExpenseSource
	budgets      BudgetSource
	transactions TransactionSource
	milk         MilkSource
	trips        TripSource
}

func NewService(expenses ExpenseSource, budgets BudgetSource, transactions TransactionSource, milkEntries MilkSource, trips TripSource) *Service {
	return &Service{
		expenses:     expenses,
		budgets:      budgets,
		transactions: transactions,
		milk:         milkEntries,
		trips:        trips,
	}
}

func monthRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// Monthly lists the month's expenses with a trailing total row.
// Month is 0-11.
func (s *Service) Monthly(ctx context.Context, householdID uuid.UUID, month, year int) (Sheet, error) {
	start, end := monthRange(month, year)

	expenses, _, err := s.expenses.List(ctx, householdID, expense.ListFilter{
		StartDate: &start,
		EndDate:   &end,
		Page:      1,
		Limit:     reportPageSize,
	})
	if err != nil {
		return Sheet{}, fmt.Errorf("listing expenses: %w", err)
	}

	sheet := Sheet{
		Name:   fmt.Sprintf("monthly_%s_%d", money.Months[month], year),
		Header: []string{"Date", "Description", "Category", "Subcategory", "Amount"},
	}

	var total int64

	for _, e := range expenses {
		total += e.Amount

		sheet.Rows = append(sheet.Rows, []string{
			money.FormatDate(e.Date),
			e.Description,
			e.Category,
			e.Subcategory,
			money.FormatAmount(e.Amount),
		})
	}

	sheet.Rows = append(sheet.Rows, []string{"", "", "", "Total", money.FormatAmount(total)})

	return sheet, nil
}

// BudgetSummary renders budget-vs-actual rows for the month.
func (s *Service) BudgetSummary(ctx context.Context, householdID uuid.UUID, month, year int) (Sheet, error) {
	rows, err := s.budgets.Summary(ctx, householdID, month, year)
	if err != nil {
		return Sheet{}, fmt.Errorf("summarising budgets: %w", err)
	}

	sheet := Sheet{
		Name:   fmt.Sprintf("budget_summary_%s_%d", money.Months[month], year),
		Header: []string{"Category", "Subcategory", "Budgeted", "Spent", "Used %"},
	}

	for _, row := range rows {
		sheet.Rows = append(sheet.Rows, []string{
			row.Category,
			row.Subcategory,
			money.FormatAmount(row.Budgeted),
			money.FormatAmount(row.Spent),
			fmt.Sprintf("%.1f", row.Percentage),
		})
	}

	return sheet, nil
}

// Transactions lists the month's account movements.
func (s *Service) Transactions(ctx context.Context, householdID uuid.UUID, month, year int) (Sheet, error) {
	m := time.Month(month + 1)

	transactions, _, err := s.transactions.List(ctx, householdID, accounttx.ListFilter{
		Month: &m,
		Year:  &year,
		Page:  1,
		Limit: reportPageSize,
	})
	if err != nil {
		return Sheet{}, fmt.Errorf("listing transactions: %w", err)
	}

	sheet := Sheet{
		Name:   fmt.Sprintf("transactions_%s_%d", money.Months[month], year),
		Header: []string{"Date", "Type", "Amount", "Note"},
	}

	for _, tx := range transactions {
		sheet.Rows = append(sheet.Rows, []string{
			money.FormatDate(tx.Date),
			string(tx.Type),
			money.FormatAmount(tx.Amount),
			tx.Note,
		})
	}

	return sheet, nil
}

// MilkSummary lists the month's deliveries with quantity and amount
// totals.
func (s *Service) MilkSummary(ctx context.Context, householdID uuid.UUID, month, year int) (Sheet, error) {
	entries, _, err := s.milk.List(ctx, householdID, month, year, 1, reportPageSize)
	if err != nil {
		return Sheet{}, fmt.Errorf("listing milk entries: %w", err)
	}

	sheet := Sheet{
		Name:   fmt.Sprintf("milk_%s_%d", money.Months[month], year),
		Header: []string{"Date", "Quantity (L)", "Rate", "Amount"},
	}

	var total int64

	for _, e := range entries {
		total += e.Amount

		sheet.Rows = append(sheet.Rows, []string{
			money.FormatDate(e.Date),
			e.Quantity.String(),
			money.FormatAmount(e.Rate),
			money.FormatAmount(e.Amount),
		})
	}

	sheet.Rows = append(sheet.Rows, []string{"", "", "Total", money.FormatAmount(total)})

	return sheet, nil
}

// TripReport bundles a trip overview sheet with its expense detail
// sheet.
func (s *Service) TripReport(ctx context.Context, householdID, tripID uuid.UUID) ([]Sheet, error) {
	t, err := s.trips.Get(ctx, householdID, tripID)
	if err != nil {
		return nil, fmt.Errorf("getting trip: %w", err)
	}

	expenses, _, err := s.expenses.List(ctx, householdID, expense.ListFilter{
		TripID: &tripID,
		Page:   1,
		Limit:  reportPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("listing trip expenses: %w", err)
	}

	var spent int64
	for _, e := range expenses {
		spent += e.Amount
	}

	overview := Sheet{
		Name:   "trip_overview",
		Header: []string{"Title", "Purpose", "Start", "End", "Budget", "Spent"},
		Rows: [][]string{{
			t.Title,
			t.Purpose,
			money.FormatDate(t.StartDate),
			money.FormatDate(t.EndDate),
			money.FormatAmount(t.Budget),
			money.FormatAmount(spent),
		}},
	}

	detail := Sheet{
		Name:   "trip_expenses",
		Header: []string{"Date", "Description", "Category", "Amount"},
	}

	for _, e := range expenses {
		detail.Rows = append(detail.Rows, []string{
			money.FormatDate(e.Date),
			e.Description,
			e.Category,
			money.FormatAmount(e.Amount),
		})
	}

	return []Sheet{overview, detail}, nil
}
