package kernel_test

import (
	"testing"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		wantErr bool
	}{
		{name: "valid price", amount: 10000, wantErr: false},
		{name: "valid minimal price", amount: kernel.PriceMinAmount, wantErr: false},
		{name: "zero price", amount: 0, wantErr: true},
		{name: "negative price", amount: -500, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := kernel.NewPrice(tt.amount)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}

			require.NoError(t, err)
			require.NoError(t, price.Validate())
			assert.Equal(t, tt.amount, price.Amount())
		})
	}
}

func TestPrice_IsEqual(t *testing.T) {
	a, err := kernel.NewPrice(10000)
	require.NoError(t, err)
	b, err := kernel.NewPrice(10000)
	require.NoError(t, err)
	c, err := kernel.NewPrice(9999)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestPrice_IsLowerThan(t *testing.T) {
	lower, err := kernel.NewPrice(9999)
	require.NoError(t, err)
	higher, err := kernel.NewPrice(10000)
	require.NoError(t, err)

	assert.True(t, lower.IsLowerThan(higher))
	assert.False(t, higher.IsLowerThan(lower))
	assert.False(t, lower.IsLowerThan(lower))
}

func TestPrice_String(t *testing.T) {
	tests := []struct {
		amount   int64
		expected string
	}{
		{amount: 10000, expected: "100.00"},
		{amount: 12550, expected: "125.50"},
		{amount: 7, expected: "0.07"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			price, err := kernel.NewPrice(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, price.String())
		})
	}
}

func TestPrice_Validate(t *testing.T) {
	t.Run("constructed price is valid", func(t *testing.T) {
		price, err := kernel.NewPrice(100)
		require.NoError(t, err)
		require.NoError(t, price.Validate())
	})

	t.Run("zero value price is invalid", func(t *testing.T) {
		var price kernel.Price
		err := price.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price must be created")
	})
}
