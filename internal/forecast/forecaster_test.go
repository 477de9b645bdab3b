package forecast

import (
	"testing"
	"time"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

var targetDate = time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func record(name string, date time.Time, price float64) models.CleanedPriceRecord {
	return models.CleanedPriceRecord{
		Date:          date,
		Category:      "MEAT",
		ItemName:      name,
		Specification: "Fresh",
		Price:         price,
	}
}

func TestSeasonalMeanWithMarkup(t *testing.T) {
	f := New(targetDate, 0.12, nil)

	history := []models.CleanedPriceRecord{
		record("Ham", day(time.December, 18), 100),
		record("Ham", day(time.December, 19), 110),
		record("Ham", day(time.December, 20), 120),
		record("Ham", day(time.November, 30), 999), // outside target month, ignored
	}

	preds := f.Forecast(history)
	if len(preds) != 1 {
		t.Fatalf("predictions = %d, want 1", len(preds))
	}
	// mean(100,110,120) * 1.12 = 123.2
	if preds[0].PredictedPrice != 123.20 {
		t.Errorf("predicted = %v, want 123.20", preds[0].PredictedPrice)
	}
	if !preds[0].Date.Equal(targetDate) {
		t.Errorf("prediction date = %v, want %v", preds[0].Date, targetDate)
	}
}

func TestLastKnownFallback(t *testing.T) {
	f := New(targetDate, 0.12, nil)

	history := []models.CleanedPriceRecord{
		record("Queso de Bola", day(time.October, 5), 75),
		record("Queso de Bola", day(time.November, 20), 80),
		record("Queso de Bola", day(time.November, 10), 90),
	}

	preds := f.Forecast(history)
	if len(preds) != 1 {
		t.Fatalf("predictions = %d, want 1", len(preds))
	}
	// No December history: the most recent price carries over unmarked.
	if preds[0].PredictedPrice != 80.00 {
		t.Errorf("predicted = %v, want 80.00", preds[0].PredictedPrice)
	}
}

func TestOnePredictionPerItemSorted(t *testing.T) {
	f := New(targetDate, 0.10, nil)

	history := []models.CleanedPriceRecord{
		record("Tomato", day(time.December, 19), 100),
		record("Ampalaya", day(time.December, 19), 150),
		record("Tomato", day(time.December, 20), 120),
		record("Bangus", day(time.November, 2), 200),
	}

	preds := f.Forecast(history)
	if len(preds) != 3 {
		t.Fatalf("predictions = %d, want 3", len(preds))
	}
	wantOrder := []string{"Ampalaya", "Bangus", "Tomato"}
	for i, name := range wantOrder {
		if preds[i].ItemName != name {
			t.Errorf("prediction %d = %s, want %s", i, preds[i].ItemName, name)
		}
	}
}

func TestFirstSeenCategoryAndSpec(t *testing.T) {
	f := New(targetDate, 0.12, nil)

	history := []models.CleanedPriceRecord{
		{Date: day(time.December, 18), Category: "FISH", ItemName: "Bangus", Specification: "Medium (3-4 pcs/kg)", Price: 180},
		{Date: day(time.December, 19), Category: "FISHERY", ItemName: "Bangus", Specification: "Large", Price: 200},
	}

	preds := f.Forecast(history)
	if preds[0].Category != "FISH" || preds[0].Specification != "Medium (3-4 pcs/kg)" {
		t.Errorf("first-seen attributes lost: %+v", preds[0])
	}
}

func TestPredictionFloorsAtZero(t *testing.T) {
	f := New(targetDate, -1.5, nil)

	history := []models.CleanedPriceRecord{
		record("Tomato", day(time.December, 19), 100),
	}

	preds := f.Forecast(history)
	if preds[0].PredictedPrice != 0 {
		t.Errorf("predicted = %v, want 0", preds[0].PredictedPrice)
	}
}

func TestEmptyHistory(t *testing.T) {
	f := New(targetDate, 0.12, nil)
	if preds := f.Forecast(nil); len(preds) != 0 {
		t.Errorf("predictions from empty history = %d, want 0", len(preds))
	}
}
