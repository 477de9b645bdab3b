package cleaner

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

// Row-level failures. Both drop the offending row and land in the audit log;
// neither aborts the batch.
var (
	ErrUnparsableDate  = errors.New("unparsable day label")
	ErrUnparsablePrice = errors.New("unparsable price value")
)

// Cleaner turns raw OCR extract rows into the canonical price table. All
// correction policy (alias tables, scrub whitelists, magnitude thresholds)
// is fixed at construction.
type Cleaner struct {
	year        int
	itemAliases map[string]string
	specAliases map[string]string
	logger      *zap.Logger
}

// New builds a Cleaner for the given processing year. Alias overrides extend
// the built-in correction tables; a nil logger disables diagnostics.
func New(year int, itemOverrides, specOverrides map[string]string, logger *zap.Logger) *Cleaner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cleaner{
		year:        year,
		itemAliases: mergeAliases(defaultItemAliases, itemOverrides),
		specAliases: mergeAliases(defaultSpecAliases, specOverrides),
		logger:      logger,
	}
}

func changeEntry(field models.LogField, original, corrected string) *models.CleaningLogEntry {
	return &models.CleaningLogEntry{Field: field, Original: original, Corrected: &corrected}
}

// CleanItem repairs a raw item name. Alias table first, whitelist scrub as
// the safety net for corruption not yet catalogued. The returned log entry is
// nil when the text was already canonical.
func (c *Cleaner) CleanItem(raw string) (string, *models.CleaningLogEntry) {
	original := Normalize(raw)
	if mapped, ok := c.itemAliases[original]; ok {
		return mapped, changeEntry(models.FieldItemName, original, mapped)
	}
	cleaned := scrubItem(original)
	if cleaned != original {
		return cleaned, changeEntry(models.FieldItemName, original, cleaned)
	}
	return cleaned, nil
}

// CleanSpec repairs a raw specification. Ginger rows get a forced canonical
// descriptor, then the alias table, then a noise gate (fewer than three
// letters means the cell is beyond recovery), then the whitelist scrub.
func (c *Cleaner) CleanSpec(raw, itemName string) (string, *models.CleaningLogEntry) {
	original := Normalize(raw)

	if strings.Contains(strings.ToLower(itemName), "ginger") {
		if original == GingerSpec {
			return GingerSpec, nil
		}
		return GingerSpec, changeEntry(models.FieldSpecification, original, GingerSpec)
	}

	if mapped, ok := c.specAliases[original]; ok {
		return mapped, changeEntry(models.FieldSpecification, original, mapped)
	}

	if alphaCount(original) < 3 {
		if original == "" {
			return "", nil
		}
		return "", changeEntry(models.FieldSpecification, original, "")
	}

	cleaned := scrubSpec(original)
	if cleaned != original {
		return cleaned, changeEntry(models.FieldSpecification, original, cleaned)
	}
	return cleaned, nil
}

// CorrectPrice parses a raw numeric cell and rescales OCR magnitude errors:
// values above 2000 lost their decimal point during extraction, and volatile
// categories are priced per small unit so anything above 1000 there is a
// tenfold overscale.
func (c *Cleaner) CorrectPrice(raw, category string) (float64, error) {
	text := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	price, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparsablePrice, raw)
	}
	if price > 2000 {
		price /= 100
	}
	if models.VolatileCategories[strings.ToUpper(category)] && price > 1000 {
		price /= 10
	}
	return round2(price), nil
}

// ParseDayLabel resolves an extracted day label ("December 19") into a date
// within the processing year.
func (c *Cleaner) ParseDayLabel(label string) (time.Time, error) {
	date, err := time.Parse("January 2 2006", fmt.Sprintf("%s %d", Normalize(label), c.year))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableDate, label)
	}
	return date, nil
}

// Clean runs the full pipeline over a raw batch: field repair, magnitude
// correction, invalid-row dropping, dedup and a deterministic sort. It always
// terminates with a (possibly empty) table plus a complete audit log.
func (c *Cleaner) Clean(rows []models.RawPriceRecord) ([]models.CleanedPriceRecord, []models.CleaningLogEntry) {
	var (
		cleaned []models.CleanedPriceRecord
		log     []models.CleaningLogEntry
	)

	appendEntry := func(entry *models.CleaningLogEntry) {
		if entry != nil {
			log = append(log, *entry)
		}
	}

	before := len(rows)
	for _, row := range rows {
		item, entry := c.CleanItem(row.ItemName)
		appendEntry(entry)

		spec, entry := c.CleanSpec(row.Specification, item)
		appendEntry(entry)

		date, dateErr := c.ParseDayLabel(row.DayLabel)
		price, priceErr := c.CorrectPrice(row.Price, row.Category)
		if priceErr != nil {
			log = append(log, models.CleaningLogEntry{Field: models.FieldPrice, Original: row.Price})
		}

		if dateErr != nil || priceErr != nil || item == "" {
			c.logger.Debug("dropping unrecoverable row",
				zap.String("day", row.DayLabel),
				zap.String("item", row.ItemName),
				zap.NamedError("date_error", dateErr),
				zap.NamedError("price_error", priceErr))
			continue
		}

		cleaned = append(cleaned, models.CleanedPriceRecord{
			Date:          date,
			Category:      strings.ToUpper(Normalize(row.Category)),
			ItemName:      item,
			Specification: spec,
			Price:         price,
		})
	}

	if len(cleaned) != before {
		log = append(log, models.CleaningLogEntry{
			Field:     models.FieldRowsDropped,
			Original:  strconv.Itoa(before),
			Corrected: ptr(strconv.Itoa(len(cleaned))),
		})
	}

	cleaned = dedupe(cleaned)
	sort.SliceStable(cleaned, func(i, j int) bool {
		a, b := cleaned[i], cleaned[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.ItemName != b.ItemName {
			return a.ItemName < b.ItemName
		}
		return a.Price < b.Price
	})

	c.logger.Info("cleaning finished",
		zap.Int("rows_in", before),
		zap.Int("rows_out", len(cleaned)),
		zap.Int("log_entries", len(log)))

	return cleaned, log
}

// dedupe removes exact full-row duplicates, keeping first occurrence.
func dedupe(rows []models.CleanedPriceRecord) []models.CleanedPriceRecord {
	seen := make(map[string]bool, len(rows))
	out := rows[:0]
	for _, row := range rows {
		key := fmt.Sprintf("%s|%s|%s|%s|%.2f",
			row.Date.Format(models.DateLayout), row.Category, row.ItemName, row.Specification, row.Price)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, row)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr(s string) *string {
	return &s
}
