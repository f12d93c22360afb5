package auth

import "golang.org/x/crypto/bcrypt"

// hashCost bounds login latency while keeping offline brute force expensive.
const hashCost = 8

// Hasher is the one-way credential transform. Stateless; safe to copy.
type Hasher struct{}

// Hash returns the salted bcrypt digest of plaintext. Output differs between
// calls for the same input.
func (Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A malformed
// digest is treated as a mismatch, never an error.
func (Hasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
