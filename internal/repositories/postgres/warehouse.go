package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/repositories"
)

var (
	_ repositories.ItemRepository  = (*ItemRepository)(nil)
	_ repositories.DateRepository  = (*DateRepository)(nil)
	_ repositories.PriceRepository = (*PriceRepository)(nil)
)

// Warehouse bundles the three star-schema repositories behind one load
// surface. Cleaned history and forecasts share fact_prices; a forecast is
// just a fact dated in the future.
type Warehouse struct {
	pool   *pgxpool.Pool
	Items  *ItemRepository
	Dates  *DateRepository
	Prices *PriceRepository
}

func NewWarehouse(pool *pgxpool.Pool) *Warehouse {
	return &Warehouse{
		pool:   pool,
		Items:  NewItemRepository(pool),
		Dates:  NewDateRepository(pool),
		Prices: NewPriceRepository(pool),
	}
}

func (w *Warehouse) EnsureSchema(ctx context.Context) error {
	return EnsureSchema(ctx, w.pool)
}

// LoadCleaned upserts dimensions first, then the facts that reference them.
func (w *Warehouse) LoadCleaned(ctx context.Context, rows []models.CleanedPriceRecord) error {
	itemIDs, err := w.Items.Upsert(ctx, rows)
	if err != nil {
		return err
	}

	dates := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, row.Date)
	}
	dateIDs, err := w.Dates.Upsert(ctx, dates)
	if err != nil {
		return err
	}

	return w.Prices.Upsert(ctx, rows, itemIDs, dateIDs)
}

// LoadPredicted stores forecast rows through the same star schema.
func (w *Warehouse) LoadPredicted(ctx context.Context, preds []models.PredictedPriceRecord) error {
	rows := make([]models.CleanedPriceRecord, 0, len(preds))
	for _, p := range preds {
		rows = append(rows, models.CleanedPriceRecord{
			Date:          p.Date,
			Category:      p.Category,
			ItemName:      p.ItemName,
			Specification: p.Specification,
			Price:         p.PredictedPrice,
		})
	}
	return w.LoadCleaned(ctx, rows)
}

func (w *Warehouse) Close() {
	w.pool.Close()
}
