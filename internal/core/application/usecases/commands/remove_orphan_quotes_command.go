package commands

import (
	"errors"

	"freightbid/internal/pkg/guard"
)

var (
	ErrRemoveOrphanQuotesCommandIsNotConstructed = errors.New(
		"RemoveOrphanQuotesCommand must be created via NewRemoveOrphanQuotesCommand constructor",
	)
)

// RemoveOrphanQuotesCommand triggers a sweep of quotes whose order no longer
// exists. Orders are never deleted by the bidding core itself, but an
// administrative removal outside it must not leave dangling quotes behind.
type RemoveOrphanQuotesCommand struct {
	guard guard.ConstructorGuard
}

// NewRemoveOrphanQuotesCommand creates a parameterless sweep command.
func NewRemoveOrphanQuotesCommand() RemoveOrphanQuotesCommand {
	return RemoveOrphanQuotesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrphanQuotesCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrphanQuotesCommandIsNotConstructed)
}
