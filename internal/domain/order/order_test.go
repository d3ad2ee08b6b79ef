package order

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, productID, name, price string, qty int) Line {
	t.Helper()
	line, err := NewLine(productID, name, decimal.RequireFromString(price), qty)
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("computes line total", func(t *testing.T) {
		line := mustLine(t, "p2", "Portable Charger", "29.99", 3)
		assert.True(t, line.LineTotal.Equal(decimal.RequireFromString("89.97")))
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewLine("p1", "Wireless Earbuds", decimal.RequireFromString("49.99"), 0)
		assert.Error(t, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewLine("p1", "Wireless Earbuds", decimal.RequireFromString("49.99"), -2)
		assert.Error(t, err)
	})

	t.Run("rejects empty product ID", func(t *testing.T) {
		_, err := NewLine("", "Wireless Earbuds", decimal.RequireFromString("49.99"), 1)
		assert.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("sums line totals", func(t *testing.T) {
		o, err := New("Jane", "jane@x.com", []Line{
			mustLine(t, "p1", "Wireless Earbuds", "49.99", 2),
			mustLine(t, "p3", "Smart LED Bulb", "14.99", 1),
		})
		require.NoError(t, err)

		assert.True(t, o.TotalAmount.Equal(decimal.RequireFromString("114.97")))
		assert.Len(t, o.Lines, 2)
		assert.False(t, o.CreatedAt.IsZero())
		assert.Equal(t, o.CreatedAt.UTC(), o.CreatedAt)
	})

	t.Run("trims customer fields", func(t *testing.T) {
		o, err := New("  Jane  ", " jane@x.com ", []Line{
			mustLine(t, "p1", "Wireless Earbuds", "49.99", 1),
		})
		require.NoError(t, err)

		assert.Equal(t, "Jane", o.CustomerName)
		assert.Equal(t, "jane@x.com", o.CustomerEmail)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := New("   ", "jane@x.com", []Line{
			mustLine(t, "p1", "Wireless Earbuds", "49.99", 1),
		})
		assert.ErrorIs(t, err, shared.ErrMissingCustomerInfo)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("rejects missing email", func(t *testing.T) {
		_, err := New("Jane", "", []Line{
			mustLine(t, "p1", "Wireless Earbuds", "49.99", 1),
		})
		assert.ErrorIs(t, err, shared.ErrMissingCustomerInfo)
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		_, err := New("Jane", "jane@x.com", nil)
		assert.ErrorIs(t, err, shared.ErrEmptyCart)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("missing identity wins over empty cart", func(t *testing.T) {
		_, err := New("", "", nil)
		assert.ErrorIs(t, err, shared.ErrMissingCustomerInfo)
	})
}

func TestNewID(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)

	t.Run("matches expected format", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			assert.Regexp(t, pattern, NewID())
		}
	})

	t.Run("generates distinct identifiers", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id := NewID()
			assert.False(t, seen[id], "duplicate order ID %s", id)
			seen[id] = true
		}
	})
}
