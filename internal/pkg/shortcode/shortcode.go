package shortcode

import (
	"crypto/rand"

	"acara-api/internal/pkg/errs"
)

const (
	// Uppercase letters and digits only so codes survive being read
	// aloud or printed on a voucher.
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	VoucherLength     = 5
	OrderNumberLength = 8
)

var errGenerateFailed = errs.New("failed to generate short code")

// Generator produces opaque short identifiers such as voucher codes and
// human-facing order numbers.
type Generator interface {
	Generate(length int) (string, error)
}

type CryptoGenerator struct{}

func NewCryptoGenerator() Generator {
	return &CryptoGenerator{}
}

func (g *CryptoGenerator) Generate(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Mark(err, errGenerateFailed)
	}

	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}

	return string(buf), nil
}
