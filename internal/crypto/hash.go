package crypto

import "golang.org/x/crypto/bcrypt"

// HashCost is the fixed bcrypt work factor for password hashing.
const HashCost = 10

// HashPassword hashes a password with bcrypt. The salt is embedded in the
// returned hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// A mismatch is not an error; it yields false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
