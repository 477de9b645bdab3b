package factories

import (
	"reflect"
	"testing"
)

func TestExtractFactoryDeterministic(t *testing.T) {
	a := NewExtractFactory(42).Rows(25)
	b := NewExtractFactory(42).Rows(25)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed must produce identical extracts")
	}

	c := NewExtractFactory(7).Rows(25)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds should produce different extracts")
	}
}

func TestExtractFactoryRows(t *testing.T) {
	rows := NewExtractFactory(42).Rows(50)
	if len(rows) != 50 {
		t.Fatalf("rows = %d, want 50", len(rows))
	}
	for i, row := range rows {
		if row.DayLabel == "" || row.Category == "" || row.ItemName == "" || row.Price == "" {
			t.Errorf("row %d incomplete: %+v", i, row)
		}
	}
}
