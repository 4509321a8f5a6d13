package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	CreateBudget(ctx context.Context, b *Budget) error
	GetBudget(ctx context.Context, householdID, id uuid.UUID) (*Budget, error)
	UpdateBudget(ctx context.Context, b *Budget) error
	DeleteBudget(ctx context.Context, householdID, id uuid.UUID) error
	ListBudgets(ctx context.Context, householdID uuid.UUID, month, year int) ([]*Budget, error)

	// FindBudget resolves the budget applying to a category/subcategory
	// slot: an exact subcategory match wins, otherwise the
	// category-wide budget. ErrNotFound when neither exists.
	FindBudget(ctx context.Context, householdID uuid.UUID, category, subcategory string, month, year int) (*Budget, error)

	// SumSpent totals non-deleted expenses matching the budget's slot
	// for the given month.
	SumSpent(ctx context.Context, householdID uuid.UUID, category, subcategory string, month, year int) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	HouseholdID uuid.UUID
	Category    string
	Subcategory string
	Amount      int64
	Month       int
	Year        int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Budget, error) {
	if params.Month < 0 || params.Month > 11 {
		return nil, ErrInvalidMonth
	}

	b := &Budget{
		HouseholdID: params.HouseholdID,
		Category:    params.Category,
		Subcategory: params.Subcategory,
		Amount:      params.Amount,
		Month:       params.Month,
		Year:        params.Year,
	}
	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) Update(ctx context.Context, b *Budget) error {
	if b.Month < 0 || b.Month > 11 {
		return ErrInvalidMonth
	}

	return s.repo.UpdateBudget(ctx, b)
}

func (s *Service) Get(ctx context.Context, householdID, id uuid.UUID) (*Budget, error) {
	return s.repo.GetBudget(ctx, householdID, id)
}

func (s *Service) Delete(ctx context.Context, householdID, id uuid.UUID) error {
	return s.repo.DeleteBudget(ctx, householdID, id)
}

func (s *Service) List(ctx context.Context, householdID uuid.UUID, month, year int) ([]*Budget, error) {
	return s.repo.ListBudgets(ctx, householdID, month, year)
}

type CheckParams struct {
	HouseholdID uuid.UUID
	Category    string
	Subcategory string
	Amount      int64
	Date        time.Time
}

// Check evaluates a hypothetical expense against the applicable monthly
// budget. No budget for the slot means an unconditional ok.
func (s *Service) Check(ctx context.Context, params CheckParams) (CheckResult, error) {
	month := int(params.Date.Month()) - 1
	year := params.Date.Year()

	b, err := s.repo.FindBudget(ctx, params.HouseholdID, params.Category, params.Subcategory, month, year)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return CheckResult{Status: StatusOK}, nil
		}

		return CheckResult{}, fmt.Errorf("finding budget: %w", err)
	}

	spent, err := s.repo.SumSpent(ctx, params.HouseholdID, b.Category, b.Subcategory, month, year)
	if err != nil {
		return CheckResult{}, fmt.Errorf("summing spent: %w", err)
	}

	return Evaluate(b.Amount, spent, params.Amount), nil
}

// SummaryRow is one category's budget-vs-actual line for a month.
type SummaryRow struct {
	Category    string
	Subcategory string
	Budgeted    int64
	Spent       int64
	Percentage  float64
}

// Summary reports budget-vs-actual per budget slot for a month.
func (s *Service) Summary(ctx context.Context, householdID uuid.UUID, month, year int) ([]SummaryRow, error) {
	budgets, err := s.repo.ListBudgets(ctx, householdID, month, year)
	if err != nil {
		return nil, err
	}

	rows := make([]SummaryRow, 0, len(budgets))

	for _, b := range budgets {
		spent, err := s.repo.SumSpent(ctx, householdID, b.Category, b.Subcategory, month, year)
		if err != nil {
			return nil, fmt.Errorf("summing spent for %s: %w", b.Category, err)
		}

		row := SummaryRow{
			Category:    b.Category,
			Subcategory: b.Subcategory,
			Budgeted:    b.Amount,
			Spent:       spent,
		}
		if b.Amount > 0 {
			row.Percentage = float64(spent) / float64(b.Amount) * 100
		}

		rows = append(rows, row)
	}

	return rows, nil
}
