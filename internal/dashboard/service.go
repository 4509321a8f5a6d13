package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dashboard
type Repository interface {
	TotalBalance(ctx context.Context, householdID uuid.UUID) (int64, error)
	MonthTotals(ctx context.Context, householdID uuid.UUID, month, year int) (MonthTotals, error)
	TotalsBefore(ctx context.Context, householdID uuid.UUID, month, year int) (MonthTotals, error)
	YearTotals(ctx context.Context, householdID uuid.UUID, year int) ([]MonthTotals, error)
	ExpensesByCategory(ctx context.Context, householdID uuid.UUID, month, year int) ([]CategorySlice, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary assembles the figures for one month. Month is 0-11.
// Carry forward is cumulative: everything netted before the month plus
// the month's own net.
func (s *Service) Summary(ctx context.Context, householdID uuid.UUID, month, year int) (*Summary, error) {
	balance, err := s.repo.TotalBalance(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("totalling balances: %w", err)
	}

	current, err := s.repo.MonthTotals(ctx, householdID, month, year)
	if err != nil {
		return nil, fmt.Errorf("totalling month: %w", err)
	}

	before, err := s.repo.TotalsBefore(ctx, householdID, month, year)
	if err != nil {
		return nil, fmt.Errorf("totalling prior months: %w", err)
	}

	yearly, err := s.repo.YearTotals(ctx, householdID, year)
	if err != nil {
		return nil, fmt.Errorf("totalling year: %w", err)
	}

	chart := make([]ChartPoint, len(money.Months))
	for i := range chart {
		chart[i].Label = money.Months[i]
		if i < len(yearly) {
			chart[i].Salary = yearly[i].Salary
			chart[i].Expense = yearly[i].Expense
			chart[i].Investment = yearly[i].Investment
		}
	}

	carryFromLast := before.Net()

	return &Summary{
		TotalBalance:              balance,
		TotalSalary:               current.Salary,
		TotalExpenses:             current.Expense,
		Investment:                current.Investment,
		NetThisMonth:              current.Net(),
		CarryForwardFromLastMonth: carryFromLast,
		CarryForward:              carryFromLast + current.Net(),
		MonthlyChart:              chart,
	}, nil
}

// ExpenseSummary breaks the month's expenses down per category, largest
// first.
func (s *Service) ExpenseSummary(ctx context.Context, householdID uuid.UUID, month, year int) ([]CategorySlice, error) {
	slices, err := s.repo.ExpensesByCategory(ctx, householdID, month, year)
	if err != nil {
		return nil, fmt.Errorf("summarising expenses: %w", err)
	}

	return slices, nil
}
