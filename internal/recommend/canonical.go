package recommend

import (
	"strings"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

// canonicalClass groups the aliases that collapse onto one ingredient class.
type canonicalClass struct {
	name    string
	aliases []string
}

// canonicalClasses is matched top to bottom and the first hit wins, so the
// precedence between overlapping aliases is explicit here rather than left to
// map iteration order. Keep more specific classes above more general ones.
var canonicalClasses = []canonicalClass{
	{"garlic", []string{"garlic"}},
	{"onion", []string{"onion", "red onion", "white onion"}},
	{"salt", []string{"salt", "rock salt", "iodized salt"}},
	{"oil", []string{"oil", "coconut oil", "palm olein", "cooking oil"}},
	{"chicken", []string{"chicken"}},
	{"pork", []string{"pork"}},
	{"beef", []string{"beef"}},
	{"fish", []string{"bangus", "galunggong", "salmon", "pampano", "alumahan", "tuna", "pusit", "tilapia", "sardines", "tambakol"}},
	{"tomato", []string{"tomato"}},
	{"carrot", []string{"carrot"}},
	{"bell pepper", []string{"bell pepper"}},
	{"sugar", []string{"sugar", "brown sugar", "refined sugar"}},
	{"potato", []string{"potato"}},
	{"calamansi", []string{"calamansi"}},
	{"avocado", []string{"avocado"}},
	{"banana", []string{"banana", "saba", "lakatan", "latundan"}},
	{"melon", []string{"melon", "watermelon"}},
	{"mango", []string{"mango"}},
}

// Canonicalize maps a free-text ingredient or item name onto its canonical
// ingredient class. Unknown names become their own singleton class (the
// lowered input). Pure function, used for both cart-to-recipe matching and
// protein detection in dish ingredient lists.
func Canonicalize(name string) string {
	lowered := strings.ToLower(name)
	for _, class := range canonicalClasses {
		for _, alias := range class.aliases {
			if strings.Contains(lowered, alias) {
				return class.name
			}
		}
	}
	return lowered
}

// IsProtein reports whether an item name names a Noche Buena protein source.
// Substring match, case-insensitive, independent of the canonical table.
func IsProtein(name string) bool {
	lowered := strings.ToLower(name)
	for _, keyword := range models.ProteinKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
