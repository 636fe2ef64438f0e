package otp

import (
	"crypto/rand"
	"math/big"
)

const (
	// CodeLength is the size of an authorization code sent out-of-band.
	CodeLength = 5
	// FolioLength is the size of the human-facing quote reference number.
	FolioLength = 15
)

// Generator produces the numeric secrets used by the authorization gate and
// the quote folio. Codes need no uniqueness across rows, only unpredictability.
type Generator interface {
	Digits(length int) string
}

type DigitGenerator struct{}

func NewGenerator() *DigitGenerator {
	return &DigitGenerator{}
}

func (g *DigitGenerator) Digits(length int) string {
	const charset = "0123456789"
	max := big.NewInt(int64(len(charset)))

	out := make([]byte, length)
	for i := range out {
		n, _ := rand.Int(rand.Reader, max)
		out[i] = charset[n.Int64()]
	}
	return string(out)
}
