package commands_test

import (
	"testing"

	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewUpdateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	ownerID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderCommand(orderID, ownerID, strPtr("North depot"), nil, strPtr("3 Dock Ln"))
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, ownerID, cmd.OwnerID())
	require.NotNil(t, cmd.Warehouse())
	assert.Equal(t, "North depot", *cmd.Warehouse())
	assert.Nil(t, cmd.Goods())
	require.NotNil(t, cmd.DeliveryAddress())
	assert.Equal(t, "3 Dock Ln", *cmd.DeliveryAddress())
}

func TestNewUpdateOrderCommand_NoFields(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoFieldsToUpdate)
}

func TestNewUpdateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(kernel.UUID{}, kernel.NewUUID(), strPtr("North depot"), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUpdateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.UpdateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
}
