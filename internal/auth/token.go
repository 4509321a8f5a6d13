package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the JWT payload carried by every authenticated request.
type Claims struct {
	UserID      uuid.UUID
	Email       string
	Role        Role
	HouseholdID uuid.UUID
	TokenEpoch  int
}

// TokenIssuer mints and parses HS256 bearer tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (ti *TokenIssuer) Issue(u *User) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       u.ID.String(),
		"email":     u.Email,
		"role":      string(u.Role),
		"household": u.HouseholdID.String(),
		"epoch":     u.TokenEpoch,
		"iat":       now.Unix(),
		"exp":       now.Add(ti.ttl).Unix(),
	})

	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (ti *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return ti.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	sub, _ := mc["sub"].(string)

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	household, _ := mc["household"].(string)

	householdID, err := uuid.Parse(household)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	email, _ := mc["email"].(string)
	role, _ := mc["role"].(string)
	epoch, _ := mc["epoch"].(float64)

	return &Claims{
		UserID:      userID,
		Email:       email,
		Role:        Role(role),
		HouseholdID: householdID,
		TokenEpoch:  int(epoch),
	}, nil
}
