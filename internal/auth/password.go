package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/scrypt"
)

const (
	MinPasswordLength = 8

	saltBytes = 16
	keyLength = 64

	// scrypt cost parameters
	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// dummyHash is verified against when no user exists, so a sign-in for an
// unknown email costs the same as one with a wrong password.
var dummyHash = strings.Repeat("0", 2*saltBytes) + ":" + strings.Repeat("0", 2*keyLength)

// HashPassword returns "salt:derivedKeyHex" where salt is 16 random bytes,
// hex encoded.
func HashPassword(password string) (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)

	derived, err := deriveKey(password, salt)
	if err != nil {
		return "", err
	}
	return salt + ":" + derived, nil
}

// CheckPasswordHash reports whether password matches the stored form.
// A malformed stored form never matches.
func CheckPasswordHash(password, stored string) bool {
	salt, key, ok := strings.Cut(stored, ":")
	if !ok || salt == "" || key == "" {
		return false
	}

	derived, err := deriveKey(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(derived), []byte(key)) == 1
}

// BurnVerification runs one verification against a fixed hash.
func BurnVerification(password string) {
	_ = CheckPasswordHash(password, dummyHash)
}

// ValidatePassword checks the minimum length, counted in characters.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	return nil
}

func deriveKey(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", fmt.Errorf("derive key: %w", err)
	}
	return hex.EncodeToString(key), nil
}
