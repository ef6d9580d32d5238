// Package id generates short random identifiers used for stored artifacts
// such as attachment file names.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// alphabet is Base62: URL-safe and case-sensitive.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// DefaultLength is used when callers pass a non-positive length.
const DefaultLength = 12

// Generate creates a cryptographically random Base62 string of the given
// length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate is Generate for call sites where a failure of the system
// entropy source is not recoverable anyway.
func MustGenerate(length int) string {
	s, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return s
}
