package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

type PriceRepository struct {
	pool *pgxpool.Pool
}

func NewPriceRepository(pool *pgxpool.Pool) *PriceRepository {
	return &PriceRepository{pool: pool}
}

// Upsert writes fact rows keyed on (item_id, date_id); a conflicting fact has
// its price replaced, so replaying a load is safe.
func (r *PriceRepository) Upsert(ctx context.Context, rows []models.CleanedPriceRecord, itemIDs, dateIDs map[string]int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	stmt := `
        INSERT INTO fact_prices (item_id, date_id, price)
        VALUES ($1, $2, $3)
        ON CONFLICT (item_id, date_id) DO UPDATE SET price = EXCLUDED.price`

	for _, row := range rows {
		itemID, ok := itemIDs[row.ItemName]
		if !ok {
			return fmt.Errorf("no dim_item id for %q", row.ItemName)
		}
		dateKey := row.Date.Format(models.DateLayout)
		dateID, ok := dateIDs[dateKey]
		if !ok {
			return fmt.Errorf("no dim_date id for %s", dateKey)
		}
		if _, err := tx.Exec(ctx, stmt, itemID, dateID, row.Price); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetHistory joins the star schema back into flat price records, ordered the
// same way the cleaned CSV is.
func (r *PriceRepository) GetHistory(ctx context.Context) ([]models.CleanedPriceRecord, error) {
	query := `
        SELECT d.date, i.category, i.item_name, COALESCE(i.specification, ''), f.price
        FROM fact_prices f
        JOIN dim_item i USING (item_id)
        JOIN dim_date d USING (date_id)
        ORDER BY d.date, i.category, i.item_name, f.price`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.CleanedPriceRecord
	for rows.Next() {
		var rec models.CleanedPriceRecord
		if err := rows.Scan(&rec.Date, &rec.Category, &rec.ItemName, &rec.Specification, &rec.Price); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PriceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM fact_prices").Scan(&count)
	return count, err
}
