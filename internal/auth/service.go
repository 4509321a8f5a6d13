package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByUserName(ctx context.Context, userName string) (*User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, tokenEpoch int) error

	CreateHousehold(ctx context.Context, h *Household) error
	GetHousehold(ctx context.Context, id uuid.UUID) (*Household, error)

	RecordAttempt(ctx context.Context, attempt *LoginAttempt) error
	ListAttempts(ctx context.Context, limit int) ([]*LoginAttempt, error)
}

type Service struct {
	repo   Repository
	tokens *TokenIssuer
}

func NewService(repo Repository, tokens *TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

type LoginParams struct {
	UserName       string
	Password       string
	ClientLocation *Location
}

// Session is what a successful login hands back to the client.
type Session struct {
	Token     string
	User      *User
	Household *Household
}

// Login verifies credentials and mints a token. A client location is
// mandatory before credentials are even looked at; every attempt, failed
// or not, lands in the audit log with its coordinates.
func (s *Service) Login(ctx context.Context, params LoginParams) (*Session, error) {
	if params.ClientLocation == nil {
		return nil, ErrLocationRequired
	}

	user, err := s.repo.GetUserByUserName(ctx, params.UserName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.recordAttempt(ctx, params, false)
			return nil, ErrInvalidCredentials
		}

		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(params.Password)) != nil {
		s.recordAttempt(ctx, params, false)
		return nil, ErrInvalidCredentials
	}

	s.recordAttempt(ctx, params, true)

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	household, err := s.repo.GetHousehold(ctx, user.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf("loading household: %w", err)
	}

	return &Session{Token: token, User: user, Household: household}, nil
}

// recordAttempt writes to the audit log. Audit failures never block the
// login flow itself.
func (s *Service) recordAttempt(ctx context.Context, params LoginParams, success bool) {
	_ = s.repo.RecordAttempt(ctx, &LoginAttempt{
		UserName: params.UserName,
		Success:  success,
		Location: params.ClientLocation,
	})
}

type RegisterParams struct {
	Name          string
	UserName      string
	Email         string
	Password      string
	HouseholdName string
}

// Register creates a household and its first (admin) user.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*Session, error) {
	if _, err := s.repo.GetUserByUserName(ctx, params.UserName); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	householdName := params.HouseholdName
	if householdName == "" {
		householdName = params.Name + "'s Household"
	}

	household := &Household{Name: householdName}
	if err := s.repo.CreateHousehold(ctx, household); err != nil {
		return nil, fmt.Errorf("creating household: %w", err)
	}

	user := &User{
		Name:         params.Name,
		UserName:     params.UserName,
		Email:        params.Email,
		Role:         RoleAdmin,
		PasswordHash: string(hash),
		HouseholdID:  household.ID,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, User: user, Household: household}, nil
}

// ChangePassword rotates the hash and bumps the token epoch so every
// outstanding token stops verifying.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, userID, string(hash), user.TokenEpoch+1)
}

// Authenticate parses a bearer token and rejects it when the user's epoch
// has moved on since it was minted.
func (s *Service) Authenticate(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	if user.TokenEpoch != claims.TokenEpoch {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

func (s *Service) Attempts(ctx context.Context, limit int) ([]*LoginAttempt, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.repo.ListAttempts(ctx, limit)
}
