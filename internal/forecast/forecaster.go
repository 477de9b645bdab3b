package forecast

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

// Forecaster derives one holiday price prediction per item from cleaned
// history. The rule is fixed: mean of same-month observations with the markup
// applied, falling back to the last known price when the item has no history
// in the target month.
type Forecaster struct {
	TargetDate time.Time
	Markup     float64
	logger     *zap.Logger
}

// New builds a Forecaster for the given target date and fractional markup.
func New(targetDate time.Time, markup float64, logger *zap.Logger) *Forecaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Forecaster{TargetDate: targetDate, Markup: markup, logger: logger}
}

// itemHistory accumulates per-item observations in input order, so the
// first-seen category and specification travel onto the predicted row.
type itemHistory struct {
	category      string
	specification string
	rows          []models.CleanedPriceRecord
}

// Forecast recomputes the full predicted price table from history. One output
// row per distinct item, emitted in item-name order; predictions never go
// below zero. This is replace-not-append: callers overwrite any previous
// forecast wholesale.
func (f *Forecaster) Forecast(history []models.CleanedPriceRecord) []models.PredictedPriceRecord {
	groups := make(map[string]*itemHistory)
	var names []string
	for _, row := range history {
		group, ok := groups[row.ItemName]
		if !ok {
			group = &itemHistory{category: row.Category, specification: row.Specification}
			groups[row.ItemName] = group
			names = append(names, row.ItemName)
		}
		group.rows = append(group.rows, row)
	}
	sort.Strings(names)

	targetMonth := f.TargetDate.Month()
	predictions := make([]models.PredictedPriceRecord, 0, len(names))
	for _, name := range names {
		group := groups[name]

		var sum float64
		var seasonal int
		for _, row := range group.rows {
			if row.Date.Month() == targetMonth {
				sum += row.Price
				seasonal++
			}
		}

		var predicted float64
		if seasonal > 0 {
			predicted = round2(sum / float64(seasonal) * (1 + f.Markup))
		} else {
			// No seasonal history: carry the most recent observation
			// forward without markup.
			predicted = lastKnownPrice(group.rows)
			f.logger.Debug("no seasonal history, using last known price",
				zap.String("item", name),
				zap.Float64("price", predicted))
		}
		predicted = math.Max(0, predicted)

		predictions = append(predictions, models.PredictedPriceRecord{
			ItemName:       name,
			Category:       group.category,
			Specification:  group.specification,
			Date:           f.TargetDate,
			PredictedPrice: predicted,
		})
	}

	f.logger.Info("forecast complete",
		zap.Int("items", len(predictions)),
		zap.Time("target_date", f.TargetDate),
		zap.Float64("markup", f.Markup))

	return predictions
}

// lastKnownPrice returns the price of the max-date observation.
func lastKnownPrice(rows []models.CleanedPriceRecord) float64 {
	latest := rows[0]
	for _, row := range rows[1:] {
		if row.Date.After(latest.Date) {
			latest = row
		}
	}
	return latest.Price
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
