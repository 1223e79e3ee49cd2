package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex sha-256 digest of p.
// Unsalted on purpose to stay compatible with existing user rows; moving to
// a salted KDF needs a migration and is tracked in DESIGN.md.
func HashPassword(p string) string {
	sum := sha256.Sum256([]byte(p))
	return hex.EncodeToString(sum[:])
}

func CheckPasswordHash(p, hash string) bool {
	return HashPassword(p) == hash
}
