package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash indicates the stored hash is corrupted and cannot be
// compared against. A plain mismatch is not an error.
var ErrMalformedHash = errors.New("password: stored hash is malformed")

const cost = 10

// Hash derives a salted bcrypt hash from the plaintext password.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. bcrypt's compare
// is constant-time with respect to match/mismatch. A mismatch returns
// (false, nil); only an undecodable hash returns an error.
func Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrMalformedHash
}
