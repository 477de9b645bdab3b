package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

// Upsert writes one dim_item row per distinct item name, keeping the first
// category and specification seen for each item, and returns item_name to
// item_id.
func (r *ItemRepository) Upsert(ctx context.Context, rows []models.CleanedPriceRecord) (map[string]int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	stmt := `
        INSERT INTO dim_item (item_name, category, specification)
        VALUES ($1, $2, $3)
        ON CONFLICT (item_name) DO UPDATE SET
            category = EXCLUDED.category,
            specification = EXCLUDED.specification
        RETURNING item_id`

	ids := make(map[string]int)
	for _, row := range rows {
		if _, ok := ids[row.ItemName]; ok {
			continue
		}
		var id int
		if err := tx.QueryRow(ctx, stmt, row.ItemName, row.Category, row.Specification).Scan(&id); err != nil {
			return nil, err
		}
		ids[row.ItemName] = id
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM dim_item").Scan(&count)
	return count, err
}
