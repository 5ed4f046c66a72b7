package services

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost matching the original deployment's hashes
const bcryptCost = 10

// HashPassword returns the salted bcrypt hash of a password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePasswords reports whether the plain-text password matches the
// stored hash.
func ComparePasswords(storedHash, plainPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plainPassword)) == nil
}
