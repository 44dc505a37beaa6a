package jobs

import (
	"context"
	"log/slog"

	"freightbid/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// QuoteCleanupJob manages the scheduled removal of orphaned quotes.
// Runs every minute to sweep quotes whose order was deleted outside the
// bidding core.
type QuoteCleanupJob struct {
	handler commands.RemoveOrphanQuotesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQuoteCleanupJob creates a new job for sweeping orphaned quotes.
// Uses RemoveOrphanQuotesCommandHandler to run the sweep every minute.
func NewQuoteCleanupJob(handler commands.RemoveOrphanQuotesCommandHandler, logger *slog.Logger) *QuoteCleanupJob {
	return &QuoteCleanupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "quote_cleanup_job"),
	}
}

// Start begins the quote cleanup job to run every minute.
func (j *QuoteCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRemoveOrphanQuotesCommand()

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Quote cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Removed orphaned quotes", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote cleanup job started (running every minute)")
	return nil
}

// Stop stops the quote cleanup job.
func (j *QuoteCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote cleanup job stopped")
}
