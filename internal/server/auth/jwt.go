// Package auth holds the credential and token lifecycle: password hashing,
// signed access/refresh tokens and the gate that guards privileged calls.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/userserver/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GrantType tells what a token may be used for.
type GrantType string

const (
	// GrantNormal tokens authenticate API calls.
	GrantNormal GrantType = "normal"
	// GrantRefresh tokens can only be exchanged for a new GrantNormal token.
	GrantRefresh GrantType = "refresh"
)

// Claims is the signed token payload. Times are Unix seconds.
type Claims struct {
	GrantType GrantType `json:"grant_type"`
	Email     string    `json:"email"`
	Subject   uint64    `json:"sub"`
	ExpiresAt int64     `json:"exp"`
	IssuedAt  int64     `json:"iat"`
}

func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

func (c Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

func (c Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

func (c Claims) GetIssuer() (string, error) { return "", nil }

func (c Claims) GetSubject() (string, error) {
	return strconv.FormatUint(c.Subject, 10), nil
}

func (c Claims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// Validate is run by the jwt parser after the standard time checks.
func (c Claims) Validate() error {
	switch c.GrantType {
	case GrantNormal, GrantRefresh:
	default:
		return fmt.Errorf("unknown grant type %q", c.GrantType)
	}
	if c.ExpiresAt <= c.IssuedAt {
		return errors.New("exp must be after iat")
	}
	return nil
}

// TokenIssuer signs and verifies HS256 tokens with a single process-wide
// secret. It keeps no state besides the secret and the clock, so one value
// is shared by every request.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

type IssuerOption func(*TokenIssuer)

// WithClock replaces time.Now. Tests use it to move across expiry.
func WithClock(now func() time.Time) IssuerOption {
	return func(i *TokenIssuer) {
		i.now = now
	}
}

func NewTokenIssuer(secret string, opts ...IssuerOption) *TokenIssuer {
	i := &TokenIssuer{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Issue signs a fresh Claims value valid for ttl (whole seconds, at least one).
func (i *TokenIssuer) Issue(grant GrantType, ttl time.Duration, subjectID uint64, email string) (string, error) {
	if len(i.secret) == 0 {
		return "", fmt.Errorf("%w: empty signing secret", common.ErrTokenGeneration)
	}
	if ttl < time.Second {
		return "", fmt.Errorf("%w: ttl %s is shorter than one second", common.ErrTokenGeneration, ttl)
	}

	now := i.now().Unix()
	claims := Claims{
		GrantType: grant,
		Email:     email,
		Subject:   subjectID,
		IssuedAt:  now,
		ExpiresAt: now + int64(ttl/time.Second),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrTokenGeneration, err)
	}

	return token, nil
}

// Verify checks the signature and expiry of token and returns its claims.
// A token is expired once exp <= now. Expired tokens yield ErrTokenExpired,
// any other problem ErrInvalidToken; both match common.ErrorUnauthorized.
func (i *TokenIssuer) Verify(token string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	return claims, nil
}
