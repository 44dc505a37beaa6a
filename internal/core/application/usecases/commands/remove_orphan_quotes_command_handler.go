package commands

import (
	"context"
)

// RemoveOrphanQuotesCommandHandler deletes quotes left behind by
// administrative order removal. Runs from a scheduled job; a single sweep
// deletes all current orphans in one statement.
type RemoveOrphanQuotesCommandHandler struct {
	uowFactory QuoteUoWFactory
}

// NewRemoveOrphanQuotesCommandHandler creates a handler for orphan-quote sweeps.
func NewRemoveOrphanQuotesCommandHandler(uowFactory QuoteUoWFactory) RemoveOrphanQuotesCommandHandler {
	return RemoveOrphanQuotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command and reports how many quotes were removed.
func (h RemoveOrphanQuotesCommandHandler) Handle(ctx context.Context, cmd RemoveOrphanQuotesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.QuoteRepository().RemoveOrphans(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
