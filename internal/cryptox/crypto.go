// Package cryptox implements credential hashing for patient and caregiver
// accounts: a random per-account salt and an Argon2id hash derived from the
// password and that salt.
package cryptox

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"

	"github.com/Zetpete/Vaccine-Scheduler/internal/common"
)

// SaltSize is the length in bytes of a freshly generated account salt.
const SaltSize = 16

// Argon2id parameters. Changing these invalidates every stored hash.
const (
	argonTime    = 1
	argonMemKiB  = 64 * 1024
	argonThreads = 4
	hashSize     = 32
)

// GenerateSalt returns a new random salt for account registration.
func GenerateSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives the stored hash from a password and salt.
// The derivation is deterministic: the same inputs always produce
// the same hash.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemKiB, argonThreads, hashSize)
}

// VerifyPassword reports whether password matches the stored (salt, hash)
// pair. The comparison is constant-time.
func VerifyPassword(password, salt, hash []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
