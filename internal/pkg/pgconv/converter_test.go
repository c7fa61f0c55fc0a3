//go:build unit

package pgconv_test

import (
	"database/sql"
	"testing"

	"acara-api/internal/pkg/pgconv"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericConversion(t *testing.T) {
	t.Run("preserves scale through the numeric representation", func(t *testing.T) {
		price := decimal.RequireFromString("150000.50")

		got := pgconv.DecimalFromNumeric(pgconv.NumericFromDecimal(price))
		assert.True(t, price.Equal(got), "expected %s, got %s", price, got)
	})

	t.Run("invalid numeric maps to zero", func(t *testing.T) {
		got := pgconv.DecimalFromNumeric(pgtype.Numeric{Valid: false})
		assert.True(t, got.IsZero())
	})
}

func TestNullableConversions(t *testing.T) {
	id := uuid.New()
	lat := 35.6812
	region := "kanto"

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"uuid present", pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id)), &id},
		{"uuid null", pgconv.UUIDPtrFromPgtype(pgtype.UUID{Valid: false}), (*uuid.UUID)(nil)},
		{"float present", pgconv.Float64PtrFromPgtype(pgconv.Float64PtrToPgtype(&lat)), &lat},
		{"float null", pgconv.Float64PtrFromPgtype(pgtype.Float8{Valid: false}), (*float64)(nil)},
		{"string present", pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(&region)), &region},
		{"string null", pgconv.StringPtrFromPgtype(pgtype.Text{Valid: false}), (*string)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("conversion mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsNoRows(t *testing.T) {
	require.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	require.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	require.False(t, pgconv.IsNoRows(assert.AnError))
}
