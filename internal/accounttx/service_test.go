package accounttx_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/homeledger/internal/account"
	"github.com/MrJamesThe3rd/homeledger/internal/accounttx"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		selected accounttx.Type
		destType account.Type
		want     accounttx.Type
	}{
		{name: "InvestmentDestOverridesTransfer", selected: accounttx.TypeTransfer, destType: account.TypeInvestment, want: accounttx.TypeInvestment},
		{name: "InvestmentDestOverridesDeposit", selected: accounttx.TypeDeposit, destType: account.TypeInvestment, want: accounttx.TypeInvestment},
		{name: "DepositNormalizesToTransfer", selected: accounttx.TypeDeposit, destType: account.TypeBank, want: accounttx.TypeTransfer},
		{name: "EmptySelectionDefaultsToTransfer", selected: "", destType: account.TypeWallet, want: accounttx.TypeTransfer},
		{name: "PlainTransferStands", selected: accounttx.TypeTransfer, destType: account.TypeUPI, want: accounttx.TypeTransfer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accounttx.Classify(tt.selected, tt.destType))
		})
	}
}

type fakeAccounts struct {
	byID map[uuid.UUID]*account.Account
}

func (f *fakeAccounts) Get(_ context.Context, _ uuid.UUID, id uuid.UUID) (*account.Account, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, account.ErrNotFound
	}

	return a, nil
}

func TestService_Transfer(t *testing.T) {
	household := uuid.New()
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	bank := &account.Account{ID: uuid.New(), HouseholdID: household, Name: "HDFC", Type: account.TypeBank}
	sip := &account.Account{ID: uuid.New(), HouseholdID: household, Name: "SIP", Type: account.TypeInvestment}

	accounts := &fakeAccounts{byID: map[uuid.UUID]*account.Account{
		bank.ID: bank,
		sip.ID:  sip,
	}}

	t.Run("InvestmentDestinationForced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := accounttx.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateMovement(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *accounttx.Transaction, deltas map[uuid.UUID]int64) error {
				assert.Equal(t, accounttx.TypeInvestment, tx.Type)
				assert.Equal(t, accounttx.DefaultInvestmentNote, tx.Note)
				assert.Equal(t, int64(-500000), deltas[bank.ID])
				assert.Equal(t, int64(500000), deltas[sip.ID])

				tx.ID = uuid.New()

				return nil
			})

		svc := accounttx.NewService(repo, accounts)
		tx, err := svc.Transfer(context.Background(), accounttx.TransferParams{
			HouseholdID:   household,
			SelectedType:  accounttx.TypeTransfer,
			Amount:        500000,
			FromAccountID: bank.ID,
			ToAccountID:   sip.ID,
			Date:          date,
		})

		require.NoError(t, err)
		assert.Equal(t, accounttx.TypeInvestment, tx.Type)
	})

	t.Run("UserNoteNotOverwritten", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := accounttx.NewMockRepository(ctrl)
		repo.EXPECT().
			CreateMovement(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *accounttx.Transaction, _ map[uuid.UUID]int64) error {
				assert.Equal(t, "July SIP", tx.Note)
				return nil
			})

		svc := accounttx.NewService(repo, accounts)
		_, err := svc.Transfer(context.Background(), accounttx.TransferParams{
			HouseholdID:   household,
			SelectedType:  accounttx.TypeTransfer,
			Amount:        100000,
			FromAccountID: bank.ID,
			ToAccountID:   sip.ID,
			Note:          "July SIP",
			Date:          date,
		})

		require.NoError(t, err)
	})

	t.Run("SameAccountRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := accounttx.NewMockRepository(ctrl)

		svc := accounttx.NewService(repo, accounts)
		_, err := svc.Transfer(context.Background(), accounttx.TransferParams{
			HouseholdID:   household,
			Amount:        1000,
			FromAccountID: bank.ID,
			ToAccountID:   bank.ID,
			Date:          date,
		})

		assert.ErrorIs(t, err, accounttx.ErrSameAccount)
	})

	t.Run("NonPositiveAmountRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := accounttx.NewMockRepository(ctrl)

		svc := accounttx.NewService(repo, accounts)
		_, err := svc.Transfer(context.Background(), accounttx.TransferParams{
			HouseholdID:   household,
			Amount:        0,
			FromAccountID: bank.ID,
			ToAccountID:   sip.ID,
			Date:          date,
		})

		assert.ErrorIs(t, err, accounttx.ErrInvalidAmount)
	})
}

func TestService_RecordSalary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	household := uuid.New()
	bank := &account.Account{ID: uuid.New(), HouseholdID: household, Type: account.TypeBank}
	accounts := &fakeAccounts{byID: map[uuid.UUID]*account.Account{bank.ID: bank}}

	repo := accounttx.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateMovement(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *accounttx.Transaction, deltas map[uuid.UUID]int64) error {
			assert.Equal(t, accounttx.TypeSalary, tx.Type)
			require.NotNil(t, tx.AccountID)
			assert.Nil(t, tx.FromAccountID)
			assert.Nil(t, tx.ToAccountID)
			assert.Equal(t, int64(8000000), deltas[bank.ID])
			return nil
		})

	svc := accounttx.NewService(repo, accounts)
	tx, err := svc.RecordSalary(context.Background(), accounttx.SalaryParams{
		HouseholdID: household,
		AccountID:   bank.ID,
		Amount:      8000000,
		Note:        "Salary for July",
		Date:        time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, accounttx.TypeSalary, tx.Type)
}
