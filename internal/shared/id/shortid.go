// Package id generates URL-safe random identifiers using Base62 encoding.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 21

	// APIKeyPrefix marks programmatic credentials. Keys look like "tk_<32 chars>".
	APIKeyPrefix = "tk"

	// APIKeyLength is the random portion length of an API key.
	APIKeyLength = 32
)

// Generate creates a random short ID with the specified length using Base62 encoding.
// The generated ID is cryptographically random and URL-safe.
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

// MustGenerate creates a random short ID and panics on error.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix_randomstring".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	id, err := Generate(length)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, id), nil
}

// NewTicketID generates a new ticket identifier.
func NewTicketID() (string, error) {
	return Generate(DefaultLength)
}

// NewUserID generates a new user identifier.
func NewUserID() (string, error) {
	return Generate(DefaultLength)
}

// NewAPIKey generates a new API key with the "tk_" prefix.
func NewAPIKey() (string, error) {
	return GenerateWithPrefix(APIKeyPrefix, APIKeyLength)
}

// HasAPIKeyShape reports whether the value carries the API key prefix.
// It deliberately checks shape only; key lookup decides validity.
func HasAPIKeyShape(key string) bool {
	return strings.HasPrefix(key, APIKeyPrefix+"_")
}
