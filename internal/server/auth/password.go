package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userserver/internal/common"
	"golang.org/x/crypto/argon2"
)

// passwordSalt is shared by every stored credential. Changing it invalidates
// all existing hashes.
var passwordSalt = []byte("sorasupersecuresalt")

// maxMemoryKiB bounds the memory parameter accepted from a stored credential.
const maxMemoryKiB = 1 << 20

// Argon2Params are the argon2id cost parameters. Threads is the number of
// lanes processed in parallel.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params: 4 MiB, 3 passes, 4 lanes, 32-byte key.
var DefaultArgon2Params = Argon2Params{Time: 3, Memory: 4096, Threads: 4, KeyLen: 32}

func (p Argon2Params) valid() bool {
	return p.Time > 0 && p.Threads > 0 && p.KeyLen > 0 && p.Memory > 0 && p.Memory <= maxMemoryKiB
}

// PasswordHasher hashes and verifies passwords with argon2id. The password
// is keyed with the server secret (HMAC-SHA256) before hashing, so a leaked
// credential table cannot be brute forced without the secret.
//
// Hashes are deterministic for a given secret: the salt is fixed, there is
// no per-record randomness.
type PasswordHasher struct {
	secret []byte
	salt   []byte
	params Argon2Params
}

// NewPasswordHasher returns a hasher keyed with secret using
// DefaultArgon2Params.
func NewPasswordHasher(secret string) *PasswordHasher {
	return NewPasswordHasherWithParams(secret, DefaultArgon2Params)
}

func NewPasswordHasherWithParams(secret string, params Argon2Params) *PasswordHasher {
	return &PasswordHasher{secret: []byte(secret), salt: passwordSalt, params: params}
}

// Hash returns the PHC-encoded argon2id hash of password:
//
//	$argon2id$v=19$m=4096,t=3,p=4$<salt>$<hash>
func (h *PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: empty password", common.ErrHashFailure)
	}
	if !h.params.valid() {
		return "", fmt.Errorf("%w: invalid argon2 parameters %+v", common.ErrHashFailure, h.params)
	}

	key := h.derive(password, h.salt, h.params)

	return encodeHash(h.params, h.salt, key), nil
}

// Verify reports whether password matches the encoded credential. A wrong
// password yields false and a nil error; ErrVerificationFailure is returned
// only when encoded cannot be parsed.
func (h *PasswordHasher) Verify(encoded, password string) (bool, error) {
	params, salt, want, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	got := h.derive(password, salt, params)

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func (h *PasswordHasher) derive(password string, salt []byte, p Argon2Params) []byte {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(password))
	keyed := mac.Sum(nil)
	defer common.WipeByteArray(keyed)

	return argon2.IDKey(keyed, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

func encodeHash(p Argon2Params, salt, key []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func decodeHash(encoded string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, fmt.Errorf("%w: unexpected format", common.ErrVerificationFailure)
	}
	if parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("%w: unsupported variant %q", common.ErrVerificationFailure, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("%w: version: %v", common.ErrVerificationFailure, err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("%w: unsupported version %d", common.ErrVerificationFailure, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, fmt.Errorf("%w: params: %v", common.ErrVerificationFailure, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: salt: %v", common.ErrVerificationFailure, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: hash: %v", common.ErrVerificationFailure, err)
	}

	p.KeyLen = uint32(len(key))
	if !p.valid() {
		return p, nil, nil, fmt.Errorf("%w: invalid parameters", common.ErrVerificationFailure)
	}

	return p, salt, key, nil
}
