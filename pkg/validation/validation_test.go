package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID       string          `params:"id"`
	Name     string          `json:"name" validate:"required,notblank,min=2"`
	Label    string          `json:"label,omitempty" validate:"max=5"`
	Price    decimal.Decimal `json:"price" validate:"gt=0"`
	StockQty int             `json:"stockQty" validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := Struct(&sample{Name: "ok", Price: decimal.RequireFromString("0.01")})
		assert.NoError(t, err)
	})

	t.Run("every failing field is reported with json names", func(t *testing.T) {
		err := Struct(&sample{Name: "", Label: "too long", Price: decimal.Zero, StockQty: -1})
		require.Error(t, err)

		var fields Errors
		require.True(t, errors.As(err, &fields))

		got := map[string]string{}
		for _, fe := range fields {
			got[fe.Field] = fe.Code
		}
		assert.Equal(t, map[string]string{
			"name":     "required",
			"label":    "max",
			"price":    "gt",
			"stockQty": "gte",
		}, got)
	})

	t.Run("negative decimal fails gt", func(t *testing.T) {
		err := Struct(&sample{Name: "ok", Price: decimal.NewFromInt(-3)})

		var fields Errors
		require.True(t, errors.As(err, &fields))
		require.Len(t, fields, 1)
		assert.Equal(t, FieldError{Field: "price", Code: "gt", Message: "Must be greater than 0"}, fields[0])
	})

	t.Run("min length message", func(t *testing.T) {
		err := Struct(&sample{Name: "a", Price: decimal.NewFromInt(1)})

		var fields Errors
		require.True(t, errors.As(err, &fields))
		require.Len(t, fields, 1)
		assert.Equal(t, "Minimum length is 2", fields[0].Message)
		assert.Contains(t, fields.Error(), "name: Minimum length is 2")
	})

	t.Run("whitespace-only string is reported as required", func(t *testing.T) {
		for _, name := range []string{"  ", "\t\n", "   "} {
			err := Struct(&sample{Name: name, Price: decimal.NewFromInt(1)})

			var fields Errors
			require.True(t, errors.As(err, &fields), "name %q", name)
			require.Len(t, fields, 1)
			assert.Equal(t, FieldError{Field: "name", Code: "required", Message: "This field is required"}, fields[0])
		}
	})

	t.Run("padded name is not blank", func(t *testing.T) {
		assert.NoError(t, Struct(&sample{Name: " ok ", Price: decimal.NewFromInt(1)}))
	})
}
