package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

type DateRepository struct {
	pool *pgxpool.Pool
}

func NewDateRepository(pool *pgxpool.Pool) *DateRepository {
	return &DateRepository{pool: pool}
}

// Upsert writes one dim_date row per distinct date with its ISO week number
// and returns formatted date to date_id.
func (r *DateRepository) Upsert(ctx context.Context, dates []time.Time) (map[string]int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	stmt := `
        INSERT INTO dim_date (date, week_num)
        VALUES ($1, $2)
        ON CONFLICT (date) DO UPDATE SET week_num = EXCLUDED.week_num
        RETURNING date_id`

	ids := make(map[string]int)
	for _, date := range dates {
		key := date.Format(models.DateLayout)
		if _, ok := ids[key]; ok {
			continue
		}
		_, week := date.ISOWeek()
		var id int
		if err := tx.QueryRow(ctx, stmt, date, week).Scan(&id); err != nil {
			return nil, err
		}
		ids[key] = id
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *DateRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM dim_date").Scan(&count)
	return count, err
}
