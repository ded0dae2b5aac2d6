package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashPassword produces a salted bcrypt digest. Two calls on the same
// plaintext yield different digests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the digest. Malformed
// digests simply fail the check.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
