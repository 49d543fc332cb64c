// Package pnr generates internal PNRs for split registrations.
//
// An internal PNR is five uppercase letters followed by five digits, drawn
// from crypto/rand. The generator knows nothing about storage; callers pass
// an existence probe to GenerateUnique.
package pnr

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
)

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"

	// MaxAttempts bounds the collision re-roll loop.
	MaxAttempts = 10
)

var internalPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{5}$`)

// ErrExhausted is returned when every attempt collided with an existing PNR.
var ErrExhausted = errors.New("could not generate a unique internal PNR")

// ExistsFunc reports whether candidate is already used as a PNR.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Generate returns a fresh internal PNR.
func Generate() (string, error) {
	buf := make([]byte, 0, 10)
	for i := 0; i < 5; i++ {
		c, err := pick(letters)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}
	for i := 0; i < 5; i++ {
		c, err := pick(digits)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}
	return string(buf), nil
}

// Valid reports whether s has the internal PNR format.
func Valid(s string) bool {
	return internalPattern.MatchString(s)
}

// GenerateUnique draws candidates until exists reports a free one, giving up
// after maxAttempts draws. A maxAttempts <= 0 uses MaxAttempts.
func GenerateUnique(ctx context.Context, exists ExistsFunc, maxAttempts int) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = MaxAttempts
	}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate, err := Generate()
		if err != nil {
			return "", fmt.Errorf("generate internal pnr: %w", err)
		}
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("probe internal pnr: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrExhausted, maxAttempts)
}

func pick(alphabet string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, err
	}
	return alphabet[n.Int64()], nil
}
