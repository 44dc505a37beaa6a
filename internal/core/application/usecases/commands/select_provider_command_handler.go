package commands

import (
	"context"
	"errors"
)

// ErrQuotePriceMismatch is returned when the price in a selection does not
// match the provider's stored quote. The owner acted on stale data (the
// provider revised the quote meanwhile) or the request was tampered with;
// either way the selection must be re-made against fresh state.
var ErrQuotePriceMismatch = errors.New("selected price does not match the provider's quote")

// SelectProviderCommandHandler orchestrates close-via-selection: picking a
// winning quote atomically ends bidding on the order.
//
// The quote consistency check and the status transition happen inside one
// transaction, and the transition itself is a compare-and-swap conditioned on
// the order still being Active. Either all three selection fields and the
// Closed status commit together, or nothing does.
//
// The order is read with an exclusive row lock before the quote check. A
// concurrent revision of the winning quote holds a share lock on the same
// row for the duration of its transaction, so it serializes against this
// one: the price read here is the price stored when the selection commits.
type SelectProviderCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

// NewSelectProviderCommandHandler creates a handler for provider selection.
// Requires a UoWFactory spanning both order and quote repositories.
func NewSelectProviderCommandHandler(uowFactory UoWFactory, clock Clock) SelectProviderCommandHandler {
	return SelectProviderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the selection command.
// Returns a not-found error for unknown orders or when the provider has no
// quote on the order, ErrQuotePriceMismatch when the echoed price is stale,
// and order.ErrOrderClosed when bidding already ended (including losing the
// race against a concurrent close or selection).
func (h SelectProviderCommandHandler) Handle(ctx context.Context, cmd SelectProviderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	quoteRepo := uow.QuoteRepository()

	existing, err := orderRepo.GetForSelection(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !existing.IsOwnedBy(cmd.OwnerID()) {
		return ErrNotOrderOwner
	}

	winningQuote, err := quoteRepo.GetByOrderAndProvider(ctx, cmd.OrderID(), cmd.Provider())
	if err != nil {
		return err
	}

	if !winningQuote.Price().IsEqual(cmd.Price()) {
		return ErrQuotePriceMismatch
	}

	if err = existing.SelectWinner(cmd.Provider(), cmd.Price(), h.clock()); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfActive(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
