package accounttx

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/account"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=accounttx
type Repository interface {
	// CreateMovement inserts the transaction and applies its balance
	// deltas atomically. Deltas map account IDs to signed paise.
	CreateMovement(ctx context.Context, tx *Transaction, deltas map[uuid.UUID]int64) error

	ListTransactions(ctx context.Context, householdID uuid.UUID, filter ListFilter) ([]*Transaction, int, error)
	RecentTransactions(ctx context.Context, householdID uuid.UUID, month time.Month, year, limit int) ([]*Transaction, error)
}

// AccountLookup is the slice of the account service transfers need.
type AccountLookup interface {
	Get(ctx context.Context, householdID, id uuid.UUID) (*account.Account, error)
}

type Service struct {
	repo     Repository
	accounts AccountLookup
}

func NewService(repo Repository, accounts AccountLookup) *Service {
	return &Service{repo: repo, accounts: accounts}
}

type TransferParams struct {
	HouseholdID   uuid.UUID
	SelectedType  Type
	Amount        int64
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Note          string
	Date          time.Time
}

// Transfer moves money between two accounts. The effective type comes
// from Classify against the destination account, never from the raw
// selection; an investment destination also defaults the note.
func (s *Service) Transfer(ctx context.Context, params TransferParams) (*Transaction, error) {
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if params.FromAccountID == uuid.Nil || params.ToAccountID == uuid.Nil {
		return nil, ErrMissingAccount
	}

	if params.FromAccountID == params.ToAccountID {
		return nil, ErrSameAccount
	}

	dest, err := s.accounts.Get(ctx, params.HouseholdID, params.ToAccountID)
	if err != nil {
		return nil, fmt.Errorf("loading destination account: %w", err)
	}

	if _, err := s.accounts.Get(ctx, params.HouseholdID, params.FromAccountID); err != nil {
		return nil, fmt.Errorf("loading source account: %w", err)
	}

	effective := Classify(params.SelectedType, dest.Type)

	note := params.Note
	if note == "" && effective == TypeInvestment {
		note = DefaultInvestmentNote
	}

	from := params.FromAccountID
	to := params.ToAccountID

	tx := &Transaction{
		HouseholdID:   params.HouseholdID,
		Type:          effective,
		Amount:        params.Amount,
		Date:          params.Date,
		FromAccountID: &from,
		ToAccountID:   &to,
		Note:          note,
	}

	deltas := map[uuid.UUID]int64{
		from: -params.Amount,
		to:   params.Amount,
	}
	if err := s.repo.CreateMovement(ctx, tx, deltas); err != nil {
		return nil, err
	}

	return tx, nil
}

type SalaryParams struct {
	HouseholdID uuid.UUID
	AccountID   uuid.UUID
	Amount      int64
	Note        string
	Date        time.Time
}

// RecordSalary credits a salary into a single account.
func (s *Service) RecordSalary(ctx context.Context, params SalaryParams) (*Transaction, error) {
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if params.AccountID == uuid.Nil {
		return nil, ErrMissingAccount
	}

	if _, err := s.accounts.Get(ctx, params.HouseholdID, params.AccountID); err != nil {
		return nil, fmt.Errorf("loading account: %w", err)
	}

	acc := params.AccountID

	tx := &Transaction{
		HouseholdID: params.HouseholdID,
		Type:        TypeSalary,
		Amount:      params.Amount,
		Date:        params.Date,
		AccountID:   &acc,
		Note:        params.Note,
	}

	deltas := map[uuid.UUID]int64{acc: params.Amount}
	if err := s.repo.CreateMovement(ctx, tx, deltas); err != nil {
		return nil, err
	}

	return tx, nil
}

type ListFilter struct {
	Type  *Type
	Month *time.Month
	Year  *int
	Page  int
	Limit int
}

// List returns the filtered page and the unfiltered total count for that
// filter, which drives pagination.
func (s *Service) List(ctx context.Context, householdID uuid.UUID, filter ListFilter) ([]*Transaction, int, error) {
	return s.repo.ListTransactions(ctx, householdID, filter)
}

// Recent returns the latest transactions within a month.
func (s *Service) Recent(ctx context.Context, householdID uuid.UUID, month time.Month, year, limit int) ([]*Transaction, error) {
	if limit <= 0 {
		limit = 5
	}

	return s.repo.RecentTransactions(ctx, householdID, month, year, limit)
}
