package quoterepo

import (
	"context"
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/quote"
	"freightbid/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormQuoteRepository implements QuoteRepository using GORM.
type GormQuoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQuoteRepository creates a new GORM quote repository.
func NewGormQuoteRepository(db *gorm.DB, tracker aggregateTracker) *GormQuoteRepository {
	return &GormQuoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert saves a quote, keyed by (order_id, provider). A first submission
// inserts the row; a resubmission from the same provider updates price,
// estimated delivery, remarks, and updated_at in place, so the stored row
// keeps its original id and created_at.
func (r *GormQuoteRepository) Upsert(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"price", "estimated_delivery", "remarks", "updated_at",
			}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderAndProvider retrieves the quote a provider has on an order.
func (r *GormQuoteRepository) GetByOrderAndProvider(
	ctx context.Context,
	orderID kernel.UUID,
	provider string,
) (*quote.Quote, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto QuoteDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND provider = ?", orderID.Bytes(), provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote", provider)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every quote on an order, cheapest first.
// Ties are broken by earlier creation time, then by provider identity, the
// same ordering the lowest-quote queries use.
func (r *GormQuoteRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*quote.Quote, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []QuoteDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("price, created_at, provider").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	quotes := make([]*quote.Quote, 0, len(dtos))
	for _, dto := range dtos {
		q, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}

// RemoveOrphans deletes quotes whose order row no longer exists and reports
// how many rows were removed.
func (r *GormQuoteRepository) RemoveOrphans(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM quotes
		WHERE NOT EXISTS (
			SELECT 1 FROM orders WHERE orders.id = quotes.order_id
		)
	`)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
