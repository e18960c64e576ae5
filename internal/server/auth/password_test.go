package auth

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/userserver/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher("pepper")

	encoded, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=4096,t=3,p=4$"), encoded)

	ok, err := h.Verify(encoded, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(encoded, "secret2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_Deterministic(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher("pepper")

	a, err := h.Hash("same password")
	require.NoError(t, err)
	b, err := h.Hash("same password")
	require.NoError(t, err)

	assert.Equal(t, a, b)

	ok, err := h.Verify(b, "same password")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordHasher_SecretMatters(t *testing.T) {
	t.Parallel()

	encoded, err := NewPasswordHasher("secret-a").Hash("secret1")
	require.NoError(t, err)

	other, err := NewPasswordHasher("secret-b").Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, encoded, other)

	ok, err := NewPasswordHasher("secret-b").Verify(encoded, "secret1")
	require.NoError(t, err)
	assert.False(t, ok, "hash must not verify under another secret")
}

func TestPasswordHasher_EmptyPassword(t *testing.T) {
	t.Parallel()

	_, err := NewPasswordHasher("pepper").Hash("")
	require.ErrorIs(t, err, common.ErrHashFailure)
}

func TestPasswordHasher_InvalidParams(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasherWithParams("pepper", Argon2Params{Time: 1, Memory: 64, Threads: 0, KeyLen: 32})
	_, err := h.Hash("secret1")
	require.ErrorIs(t, err, common.ErrHashFailure)
}

func TestPasswordHasher_CustomParamsAreEncoded(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasherWithParams("pepper", Argon2Params{Time: 1, Memory: 64, Threads: 1, KeyLen: 16})
	encoded, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.Contains(t, encoded, "$m=64,t=1,p=1$")

	// the default hasher reads the parameters back from the credential
	ok, err := NewPasswordHasher("pepper").Verify(encoded, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordHasher_VerifyMalformed(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher("pepper")
	good, err := h.Hash("secret1")
	require.NoError(t, err)
	parts := strings.Split(good, "$")

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "plain text", encoded: "secret1"},
		{name: "wrong variant", encoded: strings.Replace(good, "argon2id", "argon2i", 1)},
		{name: "wrong version", encoded: strings.Replace(good, "v=19", "v=16", 1)},
		{name: "bad params", encoded: strings.Replace(good, "m=4096,t=3,p=4", "m=x,t=3,p=4", 1)},
		{name: "zero lanes", encoded: strings.Replace(good, "p=4", "p=0", 1)},
		{name: "huge memory", encoded: strings.Replace(good, "m=4096", "m=99999999", 1)},
		{name: "bad salt", encoded: strings.Join([]string{"", parts[1], parts[2], parts[3], "!!!", parts[5]}, "$")},
		{name: "bad hash", encoded: strings.Join([]string{"", parts[1], parts[2], parts[3], parts[4], "!!!"}, "$")},
		{name: "empty hash", encoded: strings.Join([]string{"", parts[1], parts[2], parts[3], parts[4], ""}, "$")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify(tt.encoded, "secret1")
			require.ErrorIs(t, err, common.ErrVerificationFailure)
			assert.False(t, ok)
		})
	}
}
