package otp

import (
	"crypto/rand"
	"math/big"
)

// The numeric code range. Six digits with no leading zero by construction.
const (
	Min = 100000
	Max = 999999
)

// Generate draws a code uniformly from [Min, Max] using crypto/rand.
// Codes are unique per subscriber only; collisions across subscribers are
// acceptable and not checked.
func Generate() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(Max-Min+1))
	if err != nil {
		return 0, err
	}
	return Min + int(n.Int64()), nil
}
