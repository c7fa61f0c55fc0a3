//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"acara-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("sentinel")

	t.Run("marked errors match the sentinel", func(t *testing.T) {
		err := errs.Mark(errs.New("low level failure"), sentinel)
		assert.True(t, errors.Is(err, sentinel))
	})

	t.Run("nil error collapses to the sentinel", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("wrapped error keeps the cause", func(t *testing.T) {
		cause := errs.New("cause")
		err := errs.Wrap(cause, "context")
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), "context")
	})
}

func TestExtractStackLines(t *testing.T) {
	t.Run("nil error yields nothing", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 8))
	})

	t.Run("first line carries the message", func(t *testing.T) {
		lines := errs.ExtractStackLines(errs.New("boom"), 0)
		require.NotEmpty(t, lines)
		assert.Contains(t, lines[0], "boom")
	})

	t.Run("output is capped at maxLines", func(t *testing.T) {
		lines := errs.ExtractStackLines(errs.Wrap(errs.New("boom"), "context"), 3)
		assert.LessOrEqual(t, len(lines), 3)
	})
}
