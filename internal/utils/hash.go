package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordDigester turns plaintext passwords into storable digests and
// checks login attempts against them. Implementations must never return
// the plaintext in any form.
type PasswordDigester interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// SHA256Digester digests passwords as base64(SHA-256(password)).
// Deterministic and unsalted: the same password always yields the same
// digest. Kept for compatibility with the existing users table; prefer
// BcryptDigester for new deployments.
type SHA256Digester struct{}

func (SHA256Digester) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (d SHA256Digester) Verify(password, digest string) bool {
	hashed, err := d.Hash(password)
	if err != nil {
		return false
	}
	return hashed == digest
}

// BcryptDigester digests passwords with bcrypt (salted, slow).
type BcryptDigester struct {
	Cost int
}

func (d BcryptDigester) Hash(password string) (string, error) {
	cost := d.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

func (BcryptDigester) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// NewPasswordDigester returns the digester for the configured scheme.
// Unknown schemes fall back to sha256.
func NewPasswordDigester(scheme string) PasswordDigester {
	if scheme == "bcrypt" {
		return BcryptDigester{}
	}
	return SHA256Digester{}
}
