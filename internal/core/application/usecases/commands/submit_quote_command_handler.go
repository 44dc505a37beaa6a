package commands

import (
	"context"

	"freightbid/internal/core/domain/model/quote"
)

// SubmitQuoteCommandHandler handles quote submissions and revisions from providers.
//
// The no-late-bidding rule is enforced transactionally: the order's status is
// read through a share-locked row inside the same transaction that writes the
// quote, so an order closing concurrently either commits before this read
// (the submission fails with order.ErrOrderClosed) or waits for this
// transaction to finish. A status check done outside the write's transaction
// scope would leave a window for quotes to land on just-closed orders.
type SubmitQuoteCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

// NewSubmitQuoteCommandHandler creates a handler for quote submissions.
// Requires a UoWFactory spanning both order and quote repositories.
func NewSubmitQuoteCommandHandler(uowFactory UoWFactory, clock Clock) SubmitQuoteCommandHandler {
	return SubmitQuoteCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the quote submission command.
// Returns a not-found error for unknown orders, order.ErrOrderClosed when
// bidding has ended, and validation errors for a non-positive price or an
// estimated delivery that is not strictly in the future.
func (h SubmitQuoteCommandHandler) Handle(ctx context.Context, cmd SubmitQuoteCommand) error {
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

	biddingOrder, err := uow.OrderRepository().GetForBidding(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = biddingOrder.Status().ValidateMutable(); err != nil {
		return err
	}

	newQuote, err := quote.NewQuote(
		cmd.QuoteID(),
		cmd.OrderID(),
		cmd.Provider(),
		cmd.Price(),
		cmd.EstimatedDelivery(),
		cmd.Remarks(),
		h.clock(),
	)
	if err != nil {
		return err
	}

	if err = uow.QuoteRepository().Upsert(ctx, newQuote); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
