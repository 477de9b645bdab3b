package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

func TestHeaders(t *testing.T) {
	got, err := Headers(models.TopicCleanedPrices)
	if err != nil {
		t.Fatalf("Headers error: %v", err)
	}
	want := []string{"date", "category", "item_name", "specification", "price"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("headers = %v, want %v", got, want)
	}

	if _, err := Headers("bogus"); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestCSVOutputFixedColumnOrder(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVOutput(dir, "processed")

	rec := models.CleanedPriceRecord{
		Date:          time.Date(2025, 12, 19, 0, 0, 0, 0, time.UTC),
		Category:      "MEAT",
		ItemName:      "Whole Chicken, Local",
		Specification: "Fresh",
		Price:         45.5,
	}
	msg, err := json.Marshal(rec.Event())
	if err != nil {
		t.Fatal(err)
	}
	if err := sink.WriteMessage(models.TopicCleanedPrices, msg); err != nil {
		t.Fatalf("WriteMessage error: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	file, err := os.Open(filepath.Join(dir, "processed", "cleaned_prices.csv"))
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	wantHeader := []string{"date", "category", "item_name", "specification", "price"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}
	wantRow := []string{"2025-12-19", "MEAT", "Whole Chicken, Local", "Fresh", "45.50"}
	if !reflect.DeepEqual(rows[1], wantRow) {
		t.Errorf("row = %v, want %v", rows[1], wantRow)
	}
}

func TestCSVOutputNilCorrection(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVOutput(dir, "processed")

	entry := models.CleaningLogEntry{Field: models.FieldPrice, Original: "n/a"}
	msg, _ := json.Marshal(entry.Event())
	if err := sink.WriteMessage(models.TopicCleaningLog, msg); err != nil {
		t.Fatalf("WriteMessage error: %v", err)
	}
	sink.Close()

	data, err := os.ReadFile(filepath.Join(dir, "processed", "cleaning_log.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[1] != "price,n/a," {
		t.Errorf("log row = %q, want empty corrected column", lines[1])
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		key   string
		value interface{}
		want  string
	}{
		{"price", 45.5, "45.50"},
		{"predicted_price", 123.2, "123.20"},
		{"week_num", float64(52), "52"},
		{"item_name", "Bangus", "Bangus"},
		{"corrected", nil, ""},
	}
	for _, tt := range tests {
		if got := formatValue(tt.key, tt.value); got != tt.want {
			t.Errorf("formatValue(%q, %v) = %q, want %q", tt.key, tt.value, got, tt.want)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	dir := t.TempDir()
	sink := NewJSONOutput(dir, "processed")

	date := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	for _, name := range []string{"Bangus", "Tomato"} {
		rec := models.PredictedPriceRecord{ItemName: name, Category: "X", Date: date, PredictedPrice: 10}
		msg, _ := json.Marshal(rec.Event())
		if err := sink.WriteMessage(models.TopicPredictedPrices, msg); err != nil {
			t.Fatalf("WriteMessage error: %v", err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "processed", "predicted_prices.json"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("json lines = %d, want 2", len(lines))
	}
	var event map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &event); err != nil {
		t.Fatalf("line 0 not valid JSON: %v", err)
	}
	if event["item_name"] != "Bangus" {
		t.Errorf("item_name = %v", event["item_name"])
	}
}

func TestForConfigDefaults(t *testing.T) {
	dest, err := ForConfig(&models.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := dest.(*ConsoleOutput); !ok {
		t.Errorf("empty config should fall back to console, got %T", dest)
	}

	dest, err = ForConfig(&models.Config{OutputPath: t.TempDir(), OutputFormat: "csv"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := dest.(*CSVOutput); !ok {
		t.Errorf("csv config should build a CSV sink, got %T", dest)
	}

	if _, err := ForConfig(&models.Config{OutputPath: t.TempDir(), OutputFormat: "xml"}); err == nil {
		t.Error("expected error for unsupported format")
	}
}
