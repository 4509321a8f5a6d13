package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/homeledger/internal/auth"
)

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret", time.Hour)
}

func testUser(t *testing.T, password string) *auth.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &auth.User{
		ID:           uuid.New(),
		Name:         "Asha",
		UserName:     "asha",
		Email:        "asha@example.com",
		Role:         auth.RoleAdmin,
		PasswordHash: string(hash),
		HouseholdID:  uuid.New(),
	}
}

func TestService_Login(t *testing.T) {
	location := &auth.Location{Lat: 12.97, Lon: 77.59}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := testUser(t, "secret123")

		repo := auth.NewMockRepository(ctrl)
		repo.EXPECT().GetUserByUserName(gomock.Any(), "asha").Return(user, nil)
		repo.EXPECT().
			RecordAttempt(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *auth.LoginAttempt) error {
				assert.True(t, a.Success)
				assert.Equal(t, location, a.Location)
				return nil
			})
		repo.EXPECT().GetHousehold(gomock.Any(), user.HouseholdID).
			Return(&auth.Household{ID: user.HouseholdID, Name: "Sharma Family"}, nil)

		svc := auth.NewService(repo, testIssuer())
		session, err := svc.Login(context.Background(), auth.LoginParams{
			UserName:       "asha",
			Password:       "secret123",
			ClientLocation: location,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, "Sharma Family", session.Household.Name)
	})

	t.Run("MissingLocationRejectedBeforeLookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// No repo expectations: the location gate fires first.
		repo := auth.NewMockRepository(ctrl)

		svc := auth.NewService(repo, testIssuer())
		_, err := svc.Login(context.Background(), auth.LoginParams{
			UserName: "asha",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, auth.ErrLocationRequired)
	})

	t.Run("WrongPasswordAudited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := testUser(t, "secret123")

		repo := auth.NewMockRepository(ctrl)
		repo.EXPECT().GetUserByUserName(gomock.Any(), "asha").Return(user, nil)
		repo.EXPECT().
			RecordAttempt(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *auth.LoginAttempt) error {
				assert.False(t, a.Success)
				return nil
			})

		svc := auth.NewService(repo, testIssuer())
		_, err := svc.Login(context.Background(), auth.LoginParams{
			UserName:       "asha",
			Password:       "wrong",
			ClientLocation: location,
		})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := auth.NewMockRepository(ctrl)
		repo.EXPECT().GetUserByUserName(gomock.Any(), "ghost").Return(nil, auth.ErrNotFound)
		repo.EXPECT().RecordAttempt(gomock.Any(), gomock.Any()).Return(nil)

		svc := auth.NewService(repo, testIssuer())
		_, err := svc.Login(context.Background(), auth.LoginParams{
			UserName:       "ghost",
			Password:       "whatever",
			ClientLocation: location,
		})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestService_Authenticate_EpochInvalidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser(t, "secret123")

	issuer := testIssuer()
	token, err := issuer.Issue(user)
	require.NoError(t, err)

	repo := auth.NewMockRepository(ctrl)
	svc := auth.NewService(repo, issuer)

	// Token verifies while the epoch matches.
	repo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)

	claims, err := svc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, auth.RoleAdmin, claims.Role)

	// After a password change the stored epoch moves on and the same
	// token is rejected.
	rotated := *user
	rotated.TokenEpoch = user.TokenEpoch + 1
	repo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(&rotated, nil)

	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestService_Authenticate_GarbageToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := auth.NewMockRepository(ctrl)
	svc := auth.NewService(repo, testIssuer())

	_, err := svc.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser(t, "old-pass")

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	repo.EXPECT().
		UpdatePassword(gomock.Any(), user.ID, gomock.Any(), user.TokenEpoch+1).
		Return(nil)

	svc := auth.NewService(repo, testIssuer())
	err := svc.ChangePassword(context.Background(), user.ID, "old-pass", "new-pass")
	require.NoError(t, err)
}

func TestService_Register_DuplicateUserName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().GetUserByUserName(gomock.Any(), "asha").
		Return(testUser(t, "x"), nil)

	svc := auth.NewService(repo, testIssuer())
	_, err := svc.Register(context.Background(), auth.RegisterParams{
		Name:     "Asha",
		UserName: "asha",
		Email:    "asha@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, auth.ErrUserExists)
}

func TestRole_ReadOnly(t *testing.T) {
	assert.True(t, auth.RoleViewer.ReadOnly())
	assert.False(t, auth.RoleAdmin.ReadOnly())
	assert.False(t, auth.Role("").ReadOnly())
}
