package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidType = errors.New("unknown account type")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccount(ctx context.Context, householdID, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context, householdID uuid.UUID) ([]*Account, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	HouseholdID uuid.UUID
	Name        string
	Type        Type
	Balance     int64
	Note        string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	if !params.Type.Valid() {
		return nil, ErrInvalidType
	}

	a := &Account{
		HouseholdID: params.HouseholdID,
		Name:        params.Name,
		Type:        params.Type,
		Balance:     params.Balance,
		Note:        params.Note,
	}
	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, householdID, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, householdID, id)
}

func (s *Service) List(ctx context.Context, householdID uuid.UUID) ([]*Account, error) {
	return s.repo.ListAccounts(ctx, householdID)
}
