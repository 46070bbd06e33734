package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the salt rounds the service has always used for
// stored hashes; lowering it would leave old hashes verifiable but new
// ones weaker, raising it only slows registration and login down.
const bcryptCost = 12

// HashPassword derives a salted bcrypt hash from a plaintext password.
// The returned string encodes the salt alongside the hash.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// A malformed stored hash is a non-match, not an error.
func CheckPassword(plaintext, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)) == nil
}
