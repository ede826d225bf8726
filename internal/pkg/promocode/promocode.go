package promocode

import (
	"crypto/rand"
	"math/big"
)

// Length is the fixed discount-code length.
const Length = 16

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate produces a 16-character uppercase-alphanumeric code using
// crypto/rand. Uniqueness against already-issued codes is the calling
// workflow's responsibility.
func Generate() (string, error) {
	b := make([]byte, Length)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", err
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b), nil
}
