package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a plaintext password into an opaque salted string and checks
// candidates against it. Two calls to Hash with the same plaintext produce
// different outputs; Verify succeeds against both.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, encoded string) bool
}

// New returns the hasher for the given mode. Anything other than the
// explicit "legacy" opt-in gets bcrypt.
func New(mode string) Hasher {
	if strings.EqualFold(strings.TrimSpace(mode), "legacy") {
		return Legacy{}
	}
	return Bcrypt{}
}

// Bcrypt is the default hasher; the salt is embedded by the algorithm.
type Bcrypt struct{}

func (Bcrypt) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (Bcrypt) Verify(plain, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plain)) == nil
}

// Legacy is the fast salted-digest scheme the old auth server used. It is
// only reachable through PASSWORD_HASHER=legacy and must stay that way.
// Encoded form: hex(salt) + "$" + hex(sha256(salt || password)).
type Legacy struct{}

func (Legacy) Hash(plain string) (string, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}
	digest := legacyDigest(salt[:], plain)
	return hex.EncodeToString(salt[:]) + "$" + hex.EncodeToString(digest), nil
}

func (Legacy) Verify(plain, encoded string) bool {
	saltHex, digestHex, ok := strings.Cut(encoded, "$")
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(digestHex)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(legacyDigest(salt, plain), want) == 1
}

func legacyDigest(salt []byte, plain string) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(plain))
	return h.Sum(nil)
}
