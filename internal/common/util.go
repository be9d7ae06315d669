package common

import "crypto/rand"

// GenerateRandByteArray returns size cryptographically random bytes.
// rand.Read on the default source does not fail in practice; a failure here
// means the platform RNG is broken, so we panic rather than continue with
// predictable material.
func GenerateRandByteArray(size int) []byte {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return buf
}
