// utils/random.go
package utils

import (
	"crypto/rand"
	"math/big"
)

const digits = "0123456789"

// GenerateRandomDigits returns n random decimal digits, used for the
// suffix of business transaction numbers.
func GenerateRandomDigits(n int) string {
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			panic("failed to read random source")
		}
		out[i] = digits[idx.Int64()]
	}
	return string(out)
}
