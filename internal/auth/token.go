// internal/auth/token.go
package auth

import (
	"fmt"
	"time"

	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenManager struct {
	secret       []byte
	expiryPeriod time.Duration
}

func NewTokenManager(secret string, expiryPeriod time.Duration) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		expiryPeriod: expiryPeriod,
	}
}

// Identity is the caller context every scoped operation receives. It is
// decoded from the token and trusted downstream; authorization happens at the
// middleware boundary.
type Identity struct {
	UserID       uuid.UUID
	Role         model.Role
	OrgID        *uuid.UUID
	SupervisorID *uuid.UUID
	AdminID      *uuid.UUID
}

type Claims struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	OrgID        string `json:"org_id,omitempty"`
	SupervisorID string `json:"supervisor_id,omitempty"`
	AdminID      string `json:"admin_id,omitempty"`
	jwt.RegisteredClaims
}

func (tm *TokenManager) Generate(user *model.User) (string, error) {
	claims := Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.expiryPeriod)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	if user.OrgID != nil {
		claims.OrgID = user.OrgID.String()
	}
	if user.SupervisorID != nil {
		claims.SupervisorID = user.SupervisorID.String()
	}
	if user.AdminID != nil {
		claims.AdminID = user.AdminID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// Identity converts validated claims back into the typed caller context.
func (c *Claims) Identity() (*Identity, error) {
	uid, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil, fmt.Errorf("parsing user id claim: %w", err)
	}

	id := &Identity{
		UserID: uid,
		Role:   model.Role(c.Role),
	}

	if id.OrgID, err = parseOptionalID(c.OrgID); err != nil {
		return nil, fmt.Errorf("parsing org id claim: %w", err)
	}
	if id.SupervisorID, err = parseOptionalID(c.SupervisorID); err != nil {
		return nil, fmt.Errorf("parsing supervisor id claim: %w", err)
	}
	if id.AdminID, err = parseOptionalID(c.AdminID); err != nil {
		return nil, fmt.Errorf("parsing admin id claim: %w", err)
	}

	return id, nil
}

func parseOptionalID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
