package cleaner

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

func TestCorrectPrice(t *testing.T) {
	c := New(2025, nil, nil, nil)

	tests := []struct {
		name     string
		raw      string
		category string
		want     float64
	}{
		{"lost decimal point", "4550", "MEAT", 45.50},
		{"already sane", "45.50", "MEAT", 45.50},
		{"thousands comma", "1,500.00", "MEAT", 1500.00},
		{"volatile tenfold overscale", "1500", "FRUITS", 150.00},
		{"volatile under threshold", "950", "SPICES", 950.00},
		{"both corrections chain", "2500", "FRUITS", 25.00},
		{"boundary not corrected", "2000", "MEAT", 2000.00},
		{"volatile boundary not corrected", "1000", "SPICES", 1000.00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.CorrectPrice(tt.raw, tt.category)
			if err != nil {
				t.Fatalf("CorrectPrice(%q, %q) error: %v", tt.raw, tt.category, err)
			}
			if got != tt.want {
				t.Errorf("CorrectPrice(%q, %q) = %v, want %v", tt.raw, tt.category, got, tt.want)
			}
		})
	}
}

func TestCorrectPriceUnparsable(t *testing.T) {
	c := New(2025, nil, nil, nil)
	for _, raw := range []string{"n/a", "", "12.3.4"} {
		if _, err := c.CorrectPrice(raw, "MEAT"); !errors.Is(err, ErrUnparsablePrice) {
			t.Errorf("CorrectPrice(%q) error = %v, want ErrUnparsablePrice", raw, err)
		}
	}
}

func TestParseDayLabel(t *testing.T) {
	c := New(2025, nil, nil, nil)

	got, err := c.ParseDayLabel("December 19")
	if err != nil {
		t.Fatalf("ParseDayLabel error: %v", err)
	}
	want := time.Date(2025, time.December, 19, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDayLabel = %v, want %v", got, want)
	}

	quoted, err := c.ParseDayLabel("“December 19”")
	if err != nil {
		t.Fatalf("ParseDayLabel quoted error: %v", err)
	}
	if !quoted.Equal(want) {
		t.Errorf("ParseDayLabel quoted = %v, want %v", quoted, want)
	}

	if _, err := c.ParseDayLabel("not a day"); !errors.Is(err, ErrUnparsableDate) {
		t.Errorf("ParseDayLabel garbage error = %v, want ErrUnparsableDate", err)
	}
}

func TestCleanItem(t *testing.T) {
	c := New(2025, nil, nil, nil)

	got, entry := c.CleanItem("Cooking 0Oil (Palm)")
	if got != "Cooking Oil (Palm)" {
		t.Errorf("alias repair = %q, want %q", got, "Cooking Oil (Palm)")
	}
	if entry == nil || entry.Field != models.FieldItemName {
		t.Fatalf("alias repair should produce an item_name log entry, got %+v", entry)
	}
	if entry.Corrected == nil || *entry.Corrected != "Cooking Oil (Palm)" {
		t.Errorf("log entry corrected = %v", entry.Corrected)
	}

	got, entry = c.CleanItem("Bangus*")
	if got != "Bangus" || entry == nil {
		t.Errorf("scrub repair = %q, entry %+v", got, entry)
	}

	got, entry = c.CleanItem("Bangus")
	if got != "Bangus" || entry != nil {
		t.Errorf("canonical input must not be logged: %q, %+v", got, entry)
	}
}

func TestCleanItemOverrides(t *testing.T) {
	c := New(2025, map[string]string{"Xyzzy": "Ampalaya"}, nil, nil)
	got, entry := c.CleanItem("Xyzzy")
	if got != "Ampalaya" || entry == nil {
		t.Errorf("override alias = %q, entry %+v", got, entry)
	}

	// Defaults still apply alongside overrides.
	if got, _ := c.CleanItem("Cooking 0Oil (Palm)"); got != "Cooking Oil (Palm)" {
		t.Errorf("default alias lost after override merge: %q", got)
	}
}

func TestCleanSpec(t *testing.T) {
	c := New(2025, nil, nil, nil)

	got, entry := c.CleanSpec("shredded garbage", "Ginger")
	if got != GingerSpec || entry == nil {
		t.Errorf("ginger override = %q, entry %+v", got, entry)
	}

	got, entry = c.CleanSpec(GingerSpec, "Ginger")
	if got != GingerSpec || entry != nil {
		t.Errorf("canonical ginger spec must not be logged: %q, %+v", got, entry)
	}

	got, entry = c.CleanSpec("10-12 pes/kg", "Red Onion, Local")
	if got != "10–12 pcs/kg" || entry == nil {
		t.Errorf("spec alias = %q, entry %+v", got, entry)
	}

	got, entry = c.CleanSpec("..,", "Tomato")
	if got != "" || entry == nil {
		t.Errorf("noise gate = %q, entry %+v", got, entry)
	}

	got, entry = c.CleanSpec("", "Tomato")
	if got != "" || entry != nil {
		t.Errorf("empty spec must stay empty and unlogged: %q, %+v", got, entry)
	}

	got, entry = c.CleanSpec("Medium (3-4 pcs/kg)", "Bangus")
	if got != "Medium (3-4 pcs/kg)" || entry != nil {
		t.Errorf("canonical spec must pass through: %q, %+v", got, entry)
	}
}

func TestCleanPipeline(t *testing.T) {
	c := New(2025, nil, nil, nil)

	rows := []models.RawPriceRecord{
		{DayLabel: "December 19", Category: "MEAT", ItemName: `"Whole Chicken, Local"`, Specification: "Fresh", Price: "4550"},
		{DayLabel: "December 19", Category: "MEAT", ItemName: "Whole Chicken, Local", Specification: "Fresh", Price: "45.50"},
		{DayLabel: "December 20", Category: "FRUITS", ItemName: "Banana (Lakatan)", Specification: "Medium (10-12 pcs/kg)", Price: "1500"},
		{DayLabel: "not a day", Category: "MEAT", ItemName: "Pork Loin, Local", Specification: "Fresh", Price: "100"},
		{DayLabel: "December 21", Category: "FISH", ItemName: "Bangus", Specification: "Medium", Price: "n/a"},
		{DayLabel: "December 18", Category: "SPICES", ItemName: "Ginger", Specification: "gibberish cell", Price: "350"},
	}

	cleaned, log := c.Clean(rows)

	want := []models.CleanedPriceRecord{
		{Date: time.Date(2025, 12, 18, 0, 0, 0, 0, time.UTC), Category: "SPICES", ItemName: "Ginger", Specification: GingerSpec, Price: 350},
		{Date: time.Date(2025, 12, 19, 0, 0, 0, 0, time.UTC), Category: "MEAT", ItemName: "Whole Chicken, Local", Specification: "Fresh", Price: 45.50},
		{Date: time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC), Category: "FRUITS", ItemName: "Banana (Lakatan)", Specification: "Medium (10-12 pcs/kg)", Price: 150},
	}
	if len(cleaned) != len(want) {
		t.Fatalf("cleaned rows = %d, want %d: %+v", len(cleaned), len(want), cleaned)
	}
	for i := range want {
		got := cleaned[i]
		if !got.Date.Equal(want[i].Date) || got.Category != want[i].Category ||
			got.ItemName != want[i].ItemName || got.Specification != want[i].Specification ||
			got.Price != want[i].Price {
			t.Errorf("row %d = %+v, want %+v", i, got, want[i])
		}
	}

	var sawPriceFailure, sawDropSummary, sawSpecFix bool
	for _, entry := range log {
		switch entry.Field {
		case models.FieldPrice:
			sawPriceFailure = entry.Corrected == nil
		case models.FieldRowsDropped:
			sawDropSummary = entry.Original == "6" && entry.Corrected != nil && *entry.Corrected == "4"
		case models.FieldSpecification:
			sawSpecFix = true
		}
	}
	if !sawPriceFailure {
		t.Error("expected a price log entry with nil correction")
	}
	if !sawDropSummary {
		t.Errorf("expected rows_dropped 6 -> 4, log: %+v", log)
	}
	if !sawSpecFix {
		t.Error("expected a specification log entry for the ginger row")
	}
}

func TestCleanIdempotent(t *testing.T) {
	c := New(2025, nil, nil, nil)

	rows := []models.RawPriceRecord{
		{DayLabel: "December 19", Category: "MEAT", ItemName: `"Whole Chicken, Local"`, Specification: "Fresh", Price: "4550"},
		{DayLabel: "December 20", Category: "FRUITS", ItemName: "Banana (Lakatan)", Specification: "Medium (10-12 pcs/kg)", Price: "1500"},
		{DayLabel: "December 18", Category: "SPICES", ItemName: "Ginger", Specification: "gibberish cell", Price: "350"},
	}

	first, _ := c.Clean(rows)

	recycled := make([]models.RawPriceRecord, 0, len(first))
	for _, rec := range first {
		recycled = append(recycled, models.RawPriceRecord{
			DayLabel:      rec.Date.Format("January 2"),
			Category:      rec.Category,
			ItemName:      rec.ItemName,
			Specification: rec.Specification,
			Price:         fmt.Sprintf("%.2f", rec.Price),
		})
	}

	second, log := c.Clean(recycled)
	if len(log) != 0 {
		t.Fatalf("re-cleaning a clean table must log nothing, got %+v", log)
	}
	if len(second) != len(first) {
		t.Fatalf("re-cleaning changed row count: %d vs %d", len(second), len(first))
	}
	for i := range first {
		if second[i] != first[i] {
			t.Errorf("row %d changed on re-clean: %+v vs %+v", i, second[i], first[i])
		}
	}
}
