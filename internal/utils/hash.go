package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from the given plaintext
// password using the library's default cost.
//
// The resulting string embeds the salt and cost parameters, so no separate
// salt storage is needed. Suitable for direct persistence in the users table.
//
// Parameters:
//
//	password - the plaintext password to hash
//
// Returns:
//
//	string - the encoded bcrypt hash
//	error  - non-nil if hashing fails (e.g. the password exceeds 72 bytes)
//
// Example usage:
//
//	hash, err := utils.HashPassword("correct horse battery staple")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. The underlying comparison is constant-time with respect to
// the derived key.
//
// Parameters:
//
//	password - the plaintext candidate password
//	hash     - the encoded bcrypt hash loaded from storage
//
// Returns:
//
//	bool - true if the password produces the same hash, false otherwise
//	       (including malformed hashes)
func CheckPassword(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
