package queries_test

import (
	"testing"

	"freightbid/internal/core/application/usecases/queries"
	"freightbid/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetQuotesForOrderQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetQuotesForOrderQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetQuotesForOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetQuotesForOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetQuotesForOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetQuotesForOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetQuotesForOrderQueryIsNotConstructed)
}
