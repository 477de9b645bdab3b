package models

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// columnIndex maps lowered, trimmed header names to positions so extracts
// survive header casing drift between OCR runs.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return idx
}

func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// ReadRawRecords loads an extracted price CSV (day, category, item_name,
// specification, price). Every cell stays raw text.
func ReadRawRecords(path string) ([]RawPriceRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open raw extract: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read raw extract header: %w", err)
	}
	idx := columnIndex(header)

	var records []RawPriceRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read raw extract row: %w", err)
		}
		records = append(records, RawPriceRecord{
			DayLabel:      field(row, idx, "day"),
			Category:      field(row, idx, "category"),
			ItemName:      field(row, idx, "item_name"),
			Specification: field(row, idx, "specification"),
			Price:         field(row, idx, "price"),
		})
	}
	return records, nil
}

// ReadCleanedRecords loads a cleaned price CSV produced by the clean command.
func ReadCleanedRecords(path string) ([]CleanedPriceRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cleaned prices: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read cleaned prices header: %w", err)
	}
	idx := columnIndex(header)

	var records []CleanedPriceRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read cleaned prices row: %w", err)
		}

		date, err := time.Parse(DateLayout, field(row, idx, "date"))
		if err != nil {
			return nil, fmt.Errorf("invalid date in cleaned prices: %w", err)
		}
		price, err := strconv.ParseFloat(field(row, idx, "price"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price in cleaned prices: %w", err)
		}

		records = append(records, CleanedPriceRecord{
			Date:          date,
			Category:      field(row, idx, "category"),
			ItemName:      field(row, idx, "item_name"),
			Specification: field(row, idx, "specification"),
			Price:         price,
		})
	}
	return records, nil
}

// ReadPredictedRecords loads a predicted price CSV produced by the forecast
// command.
func ReadPredictedRecords(path string) ([]PredictedPriceRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open predicted prices: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read predicted prices header: %w", err)
	}
	idx := columnIndex(header)

	var records []PredictedPriceRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read predicted prices row: %w", err)
		}

		date, err := time.Parse(DateLayout, field(row, idx, "date"))
		if err != nil {
			return nil, fmt.Errorf("invalid date in predicted prices: %w", err)
		}
		price, err := strconv.ParseFloat(field(row, idx, "predicted_price"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid predicted price: %w", err)
		}

		records = append(records, PredictedPriceRecord{
			ItemName:       field(row, idx, "item_name"),
			Category:       field(row, idx, "category"),
			Specification:  field(row, idx, "specification"),
			Date:           date,
			PredictedPrice: price,
		})
	}
	return records, nil
}

// ReadCartFile loads a JSON cart ([{"item_name": ..., "specification": ...,
// "price": ...}, ...]). Items without ids get fresh ones.
func ReadCartFile(path string) ([]CartItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cart file: %w", err)
	}

	var items []CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse cart file: %w", err)
	}
	for i := range items {
		if items[i].ID == "" {
			items[i] = NewCartItem(items[i].ItemName, items[i].Specification, items[i].Price)
		}
	}
	return items, nil
}

// LoadMenuFile reads an authored menu from JSON, overriding the built-in one.
func LoadMenuFile(path string) ([]MenuDish, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu file: %w", err)
	}

	var payload struct {
		FullMenu []MenuDish `json:"full_menu"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse menu file: %w", err)
	}
	if len(payload.FullMenu) == 0 {
		return nil, fmt.Errorf("menu file %s contains no dishes", path)
	}
	return payload.FullMenu, nil
}
