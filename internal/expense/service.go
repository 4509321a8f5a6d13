package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	// CreateExpense inserts the expense and debits its account in one
	// database transaction.
	CreateExpense(ctx context.Context, e *Expense) error
	GetExpense(ctx context.Context, householdID, id uuid.UUID) (*Expense, error)
	// UpdateExpense rewrites the expense and applies the balance
	// correction (old amount credited back, new amount debited).
	UpdateExpense(ctx context.Context, e *Expense, previousAmount int64, previousAccountID uuid.UUID) error
	// DeleteExpense soft-deletes and credits the amount back.
	DeleteExpense(ctx context.Context, householdID, id uuid.UUID) error

	ListExpenses(ctx context.Context, householdID uuid.UUID, filter ListFilter) ([]*Expense, int, error)
}

// CategoryValidator guards the category/subcategory pair on writes.
type CategoryValidator interface {
	Validate(ctx context.Context, householdID uuid.UUID, categoryName, subcategory string) error
}

type Service struct {
	repo       Repository
	categories CategoryValidator
}

func NewService(repo Repository, categories CategoryValidator) *Service {
	return &Service{repo: repo, categories: categories}
}

type CreateParams struct {
	HouseholdID uuid.UUID
	Amount      int64
	Description string
	Category    string
	Subcategory string
	AccountID   uuid.UUID
	Date        time.Time
	TripID      *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if err := s.categories.Validate(ctx, params.HouseholdID, params.Category, params.Subcategory); err != nil {
		return nil, fmt.Errorf("validating category: %w", err)
	}

	e := &Expense{
		HouseholdID: params.HouseholdID,
		Amount:      params.Amount,
		Description: params.Description,
		Category:    params.Category,
		Subcategory: params.Subcategory,
		AccountID:   params.AccountID,
		Date:        params.Date,
		TripID:      params.TripID,
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

type UpdateParams struct {
	Amount      *int64
	Description *string
	Category    *string
	Subcategory *string
	AccountID   *uuid.UUID
	Date        *time.Time
	TripID      *uuid.UUID
}

func (s *Service) Update(ctx context.Context, householdID, id uuid.UUID, params UpdateParams) (*Expense, error) {
	e, err := s.repo.GetExpense(ctx, householdID, id)
	if err != nil {
		return nil, err
	}

	previousAmount := e.Amount
	previousAccountID := e.AccountID

	if params.Amount != nil {
		if *params.Amount <= 0 {
			return nil, ErrInvalidAmount
		}

		e.Amount = *params.Amount
	}

	if params.Description != nil {
		e.Description = *params.Description
	}

	if params.Category != nil {
		e.Category = *params.Category
		// The cascade: a category change without an explicit
		// subcategory clears the old one.
		if params.Subcategory == nil {
			e.Subcategory = ""
		}
	}

	if params.Subcategory != nil {
		e.Subcategory = *params.Subcategory
	}

	if params.AccountID != nil {
		e.AccountID = *params.AccountID
	}

	if params.Date != nil {
		e.Date = *params.Date
	}

	if params.TripID != nil {
		e.TripID = params.TripID
	}

	if err := s.categories.Validate(ctx, householdID, e.Category, e.Subcategory); err != nil {
		return nil, fmt.Errorf("validating category: %w", err)
	}

	if err := s.repo.UpdateExpense(ctx, e, previousAmount, previousAccountID); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, householdID, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, householdID, id)
}

func (s *Service) Delete(ctx context.Context, householdID, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, householdID, id)
}

type ListFilter struct {
	Category  string
	AccountID *uuid.UUID
	TripID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
	Page      int
	Limit     int
}

// List returns one page of expenses plus the total count for the filter.
func (s *Service) List(ctx context.Context, householdID uuid.UUID, filter ListFilter) ([]*Expense, int, error) {
	return s.repo.ListExpenses(ctx, householdID, filter)
}
