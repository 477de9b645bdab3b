// Package factories synthesizes raw price extracts for trying the pipeline
// without a real OCR run.
package factories

import (
	"fmt"
	"math/rand"

	"github.com/jaswdr/faker"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

type sampleItem struct {
	category string
	name     string
	spec     string
	minPrice int
	maxPrice int
}

// Market vocabulary drawn from DTI price bulletins. Prices are per kilo
// except rice (per kilo milled).
var sampleItems = []sampleItem{
	{"LOWLAND VEGETABLES", "Ampalaya", "Medium (4-6 pcs/kg)", 80, 180},
	{"LOWLAND VEGETABLES", "Tomato", "Medium (10-12 pcs/kg)", 60, 160},
	{"LOWLAND VEGETABLES", "Eggplant", "Medium (8-10 pcs/kg)", 70, 150},
	{"SPICES", "Red Onion (Local)", "Medium (10-12 pcs/kg)", 120, 260},
	{"SPICES", "Garlic (Imported)", "Medium", 120, 220},
	{"SPICES", "Ginger", "Fairly well-matured, medium (150–300 g)", 150, 350},
	{"FRUITS", "Banana (Lakatan)", "Medium (10-12 pcs/kg)", 70, 140},
	{"FRUITS", "Mango (Carabao)", "Medium (3-5 pcs/kg)", 150, 280},
	{"MEAT", "Pork Belly (Liempo)", "Fresh, medium fat", 330, 420},
	{"MEAT", "Whole Chicken (Fully Dressed)", "Fresh", 170, 230},
	{"MEAT", "Beef Brisket", "Fresh", 350, 480},
	{"FISH", "Bangus", "Medium (3-4 pcs/kg)", 160, 240},
	{"FISH", "Tilapia", "Medium (5-6 pcs/kg)", 120, 170},
	{"FISH", "Galunggong (Local)", "Medium (14-18 pcs/kg)", 180, 260},
	{"RICE", "Well Milled Rice (Local)", "", 38, 52},
}

// ExtractFactory produces garbled extract rows that exercise every repair
// path in the cleaner: curly quotes, stray glyphs, lost decimal points and
// unparsable cells. Deterministic for a given seed.
type ExtractFactory struct {
	fake faker.Faker
}

func NewExtractFactory(seed int64) *ExtractFactory {
	return &ExtractFactory{fake: faker.NewWithSeed(rand.NewSource(seed))}
}

func (f *ExtractFactory) Row() models.RawPriceRecord {
	item := sampleItems[f.fake.IntBetween(0, len(sampleItems)-1)]

	name := item.name
	switch f.fake.IntBetween(0, 9) {
	case 0, 1:
		name = "“" + name + "”"
	case 2:
		name = name + "*"
	}

	spec := item.spec
	if f.fake.IntBetween(0, 9) == 0 {
		spec = "..,"
	}

	return models.RawPriceRecord{
		DayLabel:      fmt.Sprintf("December %d", f.fake.IntBetween(15, 24)),
		Category:      item.category,
		ItemName:      name,
		Specification: spec,
		Price:         f.price(item),
	}
}

func (f *ExtractFactory) price(item sampleItem) string {
	base := f.fake.Float64(2, item.minPrice, item.maxPrice)
	switch f.fake.IntBetween(0, 19) {
	case 0, 1, 2:
		// decimal point lost during extraction
		return fmt.Sprintf("%.0f", base*100)
	case 3:
		return "n/a"
	default:
		return fmt.Sprintf("%.2f", base)
	}
}

func (f *ExtractFactory) Rows(n int) []models.RawPriceRecord {
	rows := make([]models.RawPriceRecord, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, f.Row())
	}
	return rows
}
