//go:build unit

package shortcode_test

import (
	"strings"
	"testing"

	"acara-api/internal/pkg/shortcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	gen := shortcode.NewCryptoGenerator()

	t.Run("produces codes of the requested length", func(t *testing.T) {
		for _, length := range []int{shortcode.VoucherLength, shortcode.OrderNumberLength, 16} {
			code, err := gen.Generate(length)
			require.NoError(t, err)
			assert.Len(t, code, length)
		}
	})

	t.Run("uses only uppercase letters and digits", func(t *testing.T) {
		const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
		for range 100 {
			code, err := gen.Generate(shortcode.VoucherLength)
			require.NoError(t, err)
			for _, r := range code {
				assert.True(t, strings.ContainsRune(charset, r), "unexpected character %q in %q", r, code)
			}
		}
	})

	t.Run("codes are distinct in practice", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 1000 {
			code, err := gen.Generate(shortcode.OrderNumberLength)
			require.NoError(t, err)
			_, dup := seen[code]
			require.False(t, dup, "duplicate code %q", code)
			seen[code] = struct{}{}
		}
	})
}
