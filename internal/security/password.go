package security

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, errHash := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errHash != nil {
		return "", fmt.Errorf("security: hash password: %w", errHash)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// tempPasswordAlphabet avoids ambiguous characters so generated passwords
// survive being read aloud or copied by hand.
const tempPasswordAlphabet = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"

// tempPasswordLength is the length of generated temporary passwords.
const tempPasswordLength = 12

// GenerateTempPassword returns a random temporary password for first-login
// flows.
func GenerateTempPassword() (string, error) {
	buf := make([]byte, tempPasswordLength)
	if _, errRead := rand.Read(buf); errRead != nil {
		return "", fmt.Errorf("security: generate password: %w", errRead)
	}
	for i, b := range buf {
		buf[i] = tempPasswordAlphabet[int(b)%len(tempPasswordAlphabet)]
	}
	return string(buf), nil
}
