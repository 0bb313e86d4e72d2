// Package password hashes and verifies passwords using scrypt. The stored
// form is "hex(derivedKey).hex(salt)" so a stored hash carries everything
// needed to verify a supplied password.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN = 16384
	scryptR = 8
	scryptP = 1
	keyLen  = 64
	saltLen = 16
)

// Hash derives a key from the plaintext with a fresh random salt and
// returns the delimited stored form.
func Hash(plain string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key, err := scrypt.Key([]byte(plain), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("deriving key: %w", err)
	}

	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// Verify recomputes the derived key for the supplied plaintext using the
// salt embedded in stored and compares in constant time. A malformed stored
// form reports an error and never verifies.
func Verify(plain, stored string) (bool, error) {
	parts := strings.SplitN(stored, ".", 2)
	if len(parts) != 2 {
		return false, fmt.Errorf("malformed stored password")
	}

	key, err := hex.DecodeString(parts[0])
	if err != nil {
		return false, fmt.Errorf("decoding stored key: %w", err)
	}
	if len(key) == 0 {
		return false, fmt.Errorf("malformed stored password")
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, fmt.Errorf("decoding stored salt: %w", err)
	}

	derived, err := scrypt.Key([]byte(plain), salt, scryptN, scryptR, scryptP, len(key))
	if err != nil {
		return false, fmt.Errorf("deriving key: %w", err)
	}

	return subtle.ConstantTimeCompare(derived, key) == 1, nil
}
