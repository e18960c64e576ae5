package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/userserver/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is moved by hand between issuance and verification.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newClockedIssuer(secret string) (*TokenIssuer, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewTokenIssuer(secret, WithClock(clock.Now)), clock
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	issuer, clock := newClockedIssuer("super-secret")

	for _, grant := range []GrantType{GrantNormal, GrantRefresh} {
		tok, err := issuer.Issue(grant, time.Hour, 42, "a@b.com")
		require.NoError(t, err)

		claims, err := issuer.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, grant, claims.GrantType)
		assert.Equal(t, uint64(42), claims.Subject)
		assert.Equal(t, "a@b.com", claims.Email)
		assert.Equal(t, clock.now.Unix(), claims.IssuedAt)
		assert.Equal(t, clock.now.Add(time.Hour).Unix(), claims.ExpiresAt)
	}
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	issuer, clock := newClockedIssuer("super-secret")
	issuedAt := clock.now

	tok, err := issuer.Issue(GrantNormal, time.Hour, 1, "a@b.com")
	require.NoError(t, err)

	clock.now = issuedAt.Add(time.Hour - time.Second)
	_, err = issuer.Verify(tok)
	require.NoError(t, err, "one second before expiry must pass")

	clock.now = issuedAt.Add(time.Hour)
	_, err = issuer.Verify(tok)
	require.ErrorIs(t, err, common.ErrTokenExpired)
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	clock.now = issuedAt.Add(8 * 24 * time.Hour)
	_, err = issuer.Verify(tok)
	require.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenIssuer("right-secret").Issue(GrantNormal, time.Hour, 2, "u@x.io")
	require.NoError(t, err)

	_, err = NewTokenIssuer("wrong-secret").Verify(tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("k")
	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		_, err := issuer.Verify(tok)
		require.ErrorIs(t, err, common.ErrInvalidToken, "token %q", tok)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("k")
	tok, err := issuer.Issue(GrantRefresh, time.Hour, 2, "u@x.io")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	payload := base64.RawURLEncoding.EncodeToString(
		[]byte(`{"grant_type":"normal","email":"u@x.io","sub":2,"exp":4102444800,"iat":1700000000}`))

	_, err = issuer.Verify(parts[0] + "." + payload + "." + parts[2])
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := Claims{GrantType: GrantNormal, Subject: 1, IssuedAt: time.Now().Unix(), ExpiresAt: time.Now().Add(time.Hour).Unix()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewTokenIssuer("k").Verify(tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenIssuer("k").Verify(none)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_UnknownGrantType(t *testing.T) {
	t.Parallel()

	claims := Claims{GrantType: "admin", Subject: 1, IssuedAt: time.Now().Unix(), ExpiresAt: time.Now().Add(time.Hour).Unix()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewTokenIssuer("k").Verify(tok)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestIssue_Failures(t *testing.T) {
	t.Parallel()

	_, err := NewTokenIssuer("").Issue(GrantNormal, time.Hour, 1, "a@b.com")
	require.ErrorIs(t, err, common.ErrTokenGeneration)

	_, err = NewTokenIssuer("k").Issue(GrantNormal, 0, 1, "a@b.com")
	require.ErrorIs(t, err, common.ErrTokenGeneration)

	_, err = NewTokenIssuer("k").Issue(GrantNormal, -time.Second, 1, "a@b.com")
	require.ErrorIs(t, err, common.ErrTokenGeneration)
}

func TestClaims_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Claims{GrantType: GrantNormal, IssuedAt: 1, ExpiresAt: 2}.Validate())
	assert.Error(t, Claims{GrantType: GrantNormal, IssuedAt: 2, ExpiresAt: 2}.Validate())
	assert.Error(t, Claims{GrantType: "", IssuedAt: 1, ExpiresAt: 2}.Validate())

	sub, err := Claims{Subject: 99}.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "99", sub)
}
