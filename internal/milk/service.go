package milk

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=milk
type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	DeleteEntry(ctx context.Context, householdID, id uuid.UUID) (*Entry, error)
	GetEntry(ctx context.Context, householdID, id uuid.UUID) (*Entry, error)
	ListEntries(ctx context.Context, householdID uuid.UUID, month, year, page, limit int) ([]*Entry, int, error)

	SumMonth(ctx context.Context, householdID uuid.UUID, month, year int) (int64, int, error)
	CreateSettlement(ctx context.Context, s *Settlement) error
	IsSettled(ctx context.Context, householdID uuid.UUID, month, year int) (bool, error)
	ListSettledMonths(ctx context.Context, householdID uuid.UUID) ([]SettledMonth, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type AddParams struct {
	HouseholdID uuid.UUID
	Date        time.Time
	Quantity    decimal.Decimal
	Rate        int64
}

// Add records a delivery. Settled months refuse new entries.
func (s *Service) Add(ctx context.Context, params AddParams) (*Entry, error) {
	if params.Quantity.Sign() <= 0 || params.Rate <= 0 {
		return nil, ErrInvalidEntry
	}

	month := int(params.Date.Month()) - 1
	year := params.Date.Year()

	settled, err := s.repo.IsSettled(ctx, params.HouseholdID, month, year)
	if err != nil {
		return nil, fmt.Errorf("checking settlement: %w", err)
	}

	if settled {
		return nil, ErrMonthSettled
	}

	e := &Entry{
		HouseholdID: params.HouseholdID,
		Date:        params.Date,
		Quantity:    params.Quantity,
		Rate:        params.Rate,
		Amount:      ComputeAmount(params.Quantity, params.Rate),
	}
	if err := s.repo.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Delete removes an entry unless its month is settled.
func (s *Service) Delete(ctx context.Context, householdID, id uuid.UUID) error {
	e, err := s.repo.GetEntry(ctx, householdID, id)
	if err != nil {
		return err
	}

	month := int(e.Date.Month()) - 1
	year := e.Date.Year()

	settled, err := s.repo.IsSettled(ctx, householdID, month, year)
	if err != nil {
		return fmt.Errorf("checking settlement: %w", err)
	}

	if settled {
		return ErrMonthSettled
	}

	_, err = s.repo.DeleteEntry(ctx, householdID, id)

	return err
}

func (s *Service) List(ctx context.Context, householdID uuid.UUID, month, year, page, limit int) ([]*Entry, int, error) {
	return s.repo.ListEntries(ctx, householdID, month, year, page, limit)
}

// IsSettled reports whether a month is locked against entry changes.
func (s *Service) IsSettled(ctx context.Context, householdID uuid.UUID, month, year int) (bool, error) {
	return s.repo.IsSettled(ctx, householdID, month, year)
}

func (s *Service) SettledMonths(ctx context.Context, householdID uuid.UUID) ([]SettledMonth, error) {
	return s.repo.ListSettledMonths(ctx, householdID)
}

// Settle closes a month, recording its total. Settling twice or settling
// an empty month fails.
func (s *Service) Settle(ctx context.Context, householdID uuid.UUID, month, year int) (*Settlement, error) {
	settled, err := s.repo.IsSettled(ctx, householdID, month, year)
	if err != nil {
		return nil, fmt.Errorf("checking settlement: %w", err)
	}

	if settled {
		return nil, ErrMonthSettled
	}

	total, count, err := s.repo.SumMonth(ctx, householdID, month, year)
	if err != nil {
		return nil, fmt.Errorf("summing month: %w", err)
	}

	if count == 0 {
		return nil, ErrNothingToSettle
	}

	settlement := &Settlement{
		HouseholdID: householdID,
		Month:       month,
		Year:        year,
		TotalAmount: total,
	}
	if err := s.repo.CreateSettlement(ctx, settlement); err != nil {
		return nil, err
	}

	return settlement, nil
}
