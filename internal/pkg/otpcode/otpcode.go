package otpcode

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("code hashing failed")
	ErrInvalidCode   = errors.New("invalid code")
)

const DefaultCost = bcrypt.DefaultCost

// Generate returns a cryptographically secure numeric code of the given
// length, zero-padded so "004213" stays six digits on the wire.
func Generate(length int) (string, error) {
	if length < 4 || length > 10 {
		return "", fmt.Errorf("unsupported code length %d", length)
	}

	limit := big.NewInt(1)
	for range length {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n), nil
}

// Hash stores only a bcrypt digest of the code; the raw code never
// touches persistence.
func Hash(code string) (string, error) {
	if code == "" {
		return "", ErrInvalidCode
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(code), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Compare(hash, code string) error {
	if hash == "" || code == "" {
		return ErrInvalidCode
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCode
		}
		return err
	}

	return nil
}
