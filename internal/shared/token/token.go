package token

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	autherrors "go-dinas/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "go-dinas"

// Claims carried by access tokens.
type Claims struct {
	AccountID int64   `json:"account_id"`
	RoleID    int64   `json:"role_id"`
	Role      string  `json:"role"`
	Branches  []int64 `json:"branches"`
	jwt.RegisteredClaims
}

func (c *Claims) HasBranch(id int64) bool {
	return slices.Contains(c.Branches, id)
}

// Denylist stores revoked token ids until they would have expired anyway.
type Denylist interface {
	Add(ctx context.Context, jti string, ttl time.Duration) error
	Contains(ctx context.Context, jti string) (bool, error)
}

type Manager struct {
	secret   []byte
	ttl      time.Duration
	denylist Denylist
	now      func() time.Time
}

type Option func(*Manager)

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(secret string, ttl time.Duration, denylist Denylist, opts ...Option) *Manager {
	m := &Manager{
		secret:   []byte(secret),
		ttl:      ttl,
		denylist: denylist,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Issue signs claims with a fresh jti and expiry. It returns the token and its expiry.
func (m *Manager) Issue(c Claims) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.ttl)
	c.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   fmt.Sprintf("%d", c.AccountID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &c).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse verifies signature, expiry and the denylist.
func (m *Manager) Parse(ctx context.Context, raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}
	if !tok.Valid || claims.AccountID == 0 {
		return nil, autherrors.ErrInvalidToken
	}

	if m.denylist != nil && claims.ID != "" {
		revoked, err := m.denylist.Contains(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, autherrors.ErrTokenRevoked
		}
	}
	return claims, nil
}

// Revoke denylists the token for its remaining lifetime.
func (m *Manager) Revoke(ctx context.Context, c *Claims) error {
	if m.denylist == nil || c == nil || c.ID == "" {
		return nil
	}
	ttl := time.Minute
	if c.ExpiresAt != nil {
		ttl = c.ExpiresAt.Time.Sub(m.now())
	}
	if ttl <= 0 {
		return nil
	}
	return m.denylist.Add(ctx, c.ID, ttl)
}
