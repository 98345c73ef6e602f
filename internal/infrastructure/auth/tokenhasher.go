package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256TokenHasher digests refresh tokens for at-rest storage. Refresh
// tokens are high-entropy JWTs, so a fast unsalted hash is sufficient.
type SHA256TokenHasher struct{}

func NewSHA256TokenHasher() *SHA256TokenHasher {
	return &SHA256TokenHasher{}
}

func (h *SHA256TokenHasher) Hash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
