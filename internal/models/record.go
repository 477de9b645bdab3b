package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar date format used across CSV artifacts
// and the warehouse dimension tables.
const DateLayout = "2006-01-02"

// RawPriceRecord is one extracted table cell straight out of the OCR stage.
// Every field is raw text and may be garbled; the cleaning pipeline consumes
// these wholesale.
type RawPriceRecord struct {
	DayLabel      string `json:"day"`
	Category      string `json:"category"`
	ItemName      string `json:"item_name"`
	Specification string `json:"specification"`
	Price         string `json:"price"`
}

// CleanedPriceRecord is a canonical historical price fact. Immutable once
// produced by the cleaning pipeline.
type CleanedPriceRecord struct {
	Date          time.Time `json:"-"`
	Category      string    `json:"category"`
	ItemName      string    `json:"item_name"`
	Specification string    `json:"specification"`
	Price         float64   `json:"price"`
}

// WeekNum returns the ISO week number for the record date, used by dim_date.
func (r CleanedPriceRecord) WeekNum() int {
	_, week := r.Date.ISOWeek()
	return week
}

// Event flattens the record into a sink message payload.
func (r CleanedPriceRecord) Event() map[string]interface{} {
	return map[string]interface{}{
		"date":          r.Date.Format(DateLayout),
		"category":      r.Category,
		"item_name":     r.ItemName,
		"specification": r.Specification,
		"price":         r.Price,
	}
}

// LogField identifies which raw field a cleaning log entry refers to.
type LogField string

const (
	FieldItemName      LogField = "item_name"
	FieldSpecification LogField = "specification"
	FieldPrice         LogField = "price"
	FieldRowsDropped   LogField = "rows_dropped"
)

// CleaningLogEntry is one line of the append-only cleaning audit trail.
// Corrected is nil when the value could not be recovered at all.
type CleaningLogEntry struct {
	Field     LogField `json:"field"`
	Original  string   `json:"original"`
	Corrected *string  `json:"corrected"`
}

// Event flattens the log entry into a sink message payload.
func (e CleaningLogEntry) Event() map[string]interface{} {
	var corrected interface{}
	if e.Corrected != nil {
		corrected = *e.Corrected
	}
	return map[string]interface{}{
		"field":     string(e.Field),
		"original":  e.Original,
		"corrected": corrected,
	}
}

// PredictedPriceRecord is one forecast row for the target date. The forecast
// is a full replacement computation: one row per distinct historical item.
type PredictedPriceRecord struct {
	ItemName       string    `json:"item_name"`
	Category       string    `json:"category"`
	Specification  string    `json:"specification"`
	Date           time.Time `json:"-"`
	PredictedPrice float64   `json:"predicted_price"`
}

// WeekNum returns the ISO week number of the target date.
func (r PredictedPriceRecord) WeekNum() int {
	_, week := r.Date.ISOWeek()
	return week
}

// Event flattens the record into a sink message payload.
func (r PredictedPriceRecord) Event() map[string]interface{} {
	return map[string]interface{}{
		"item_name":       r.ItemName,
		"category":        r.Category,
		"specification":   r.Specification,
		"date":            r.Date.Format(DateLayout),
		"week_num":        r.WeekNum(),
		"predicted_price": r.PredictedPrice,
	}
}

func (r PredictedPriceRecord) String() string {
	return fmt.Sprintf("%s @ %.2f (%s)", r.ItemName, r.PredictedPrice, r.Date.Format(DateLayout))
}
