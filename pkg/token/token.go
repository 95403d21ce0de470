package token

import (
	"strings"

	"diloti-server/internal/rng"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a crypto-secure random alphanumeric string of length n
func Generate(n int) string {
	return GenerateWith(rng.Crypto{}, n)
}

// GenerateWith returns a random alphanumeric string of length n using the
// supplied generator
func GenerateWith(r rng.Generator, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[r.Intn(len(alphabet))])
	}

	return sb.String()
}
