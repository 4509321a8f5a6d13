package trip

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=trip
type Repository interface {
	CreateTrip(ctx context.Context, t *Trip) error
	GetTrip(ctx context.Context, householdID, id uuid.UUID) (*Trip, error)
	UpdateTrip(ctx context.Context, t *Trip) error
	DeleteTrip(ctx context.Context, householdID, id uuid.UUID) error
	ListTrips(ctx context.Context, householdID uuid.UUID) ([]*Trip, error)

	// SumTripExpenses totals non-deleted expenses linked to the trip.
	SumTripExpenses(ctx context.Context, householdID, tripID uuid.UUID) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	HouseholdID uuid.UUID
	Title       string
	Purpose     string
	StartDate   time.Time
	EndDate     time.Time
	Budget      int64
	Notes       string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Trip, error) {
	if params.EndDate.Before(params.StartDate) {
		return nil, ErrInvalidSpan
	}

	t := &Trip{
		HouseholdID: params.HouseholdID,
		Title:       params.Title,
		Purpose:     params.Purpose,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		Budget:      params.Budget,
		Notes:       params.Notes,
	}
	if err := s.repo.CreateTrip(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, householdID, id uuid.UUID) (*Trip, error) {
	return s.repo.GetTrip(ctx, householdID, id)
}

func (s *Service) Update(ctx context.Context, t *Trip) error {
	if t.EndDate.Before(t.StartDate) {
		return ErrInvalidSpan
	}

	return s.repo.UpdateTrip(ctx, t)
}

func (s *Service) Delete(ctx context.Context, householdID, id uuid.UUID) error {
	return s.repo.DeleteTrip(ctx, householdID, id)
}

func (s *Service) List(ctx context.Context, householdID uuid.UUID) ([]*Trip, error) {
	return s.repo.ListTrips(ctx, householdID)
}

// SummaryRow pairs a trip with what has been spent against it.
type SummaryRow struct {
	Trip  *Trip
	Spent int64
}

func (s *Service) Summary(ctx context.Context, householdID uuid.UUID) ([]SummaryRow, error) {
	trips, err := s.repo.ListTrips(ctx, householdID)
	if err != nil {
		return nil, err
	}

	rows := make([]SummaryRow, 0, len(trips))

	for _, t := range trips {
		spent, err := s.repo.SumTripExpenses(ctx, householdID, t.ID)
		if err != nil {
			return nil, fmt.Errorf("summing trip expenses for %s: %w", t.Title, err)
		}

		rows = append(rows, SummaryRow{Trip: t, Spent: spent})
	}

	return rows, nil
}
