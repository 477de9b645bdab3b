// Package repositories defines the warehouse persistence contracts for the
// price star schema: dim_item, dim_date and fact_prices.
package repositories

import (
	"context"
	"time"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

// ItemRepository manages the dim_item dimension, keyed by item_name.
type ItemRepository interface {
	Upsert(ctx context.Context, rows []models.CleanedPriceRecord) (map[string]int, error)
	Count(ctx context.Context) (int, error)
}

// DateRepository manages the dim_date dimension, keyed by calendar date.
// The returned map is keyed by the date formatted with models.DateLayout.
type DateRepository interface {
	Upsert(ctx context.Context, dates []time.Time) (map[string]int, error)
	Count(ctx context.Context) (int, error)
}

// PriceRepository manages fact_prices. Facts are unique per (item, date);
// re-loading the same day replaces the stored price.
type PriceRepository interface {
	Upsert(ctx context.Context, rows []models.CleanedPriceRecord, itemIDs, dateIDs map[string]int) error
	GetHistory(ctx context.Context) ([]models.CleanedPriceRecord, error)
	Count(ctx context.Context) (int, error)
}
