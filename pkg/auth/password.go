package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost matches the work factor the user records were written
// with. Changing it only affects newly created hashes.
const passwordHashCost = 10

// HashPassword produces a salted one-way bcrypt hash of the plaintext.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
