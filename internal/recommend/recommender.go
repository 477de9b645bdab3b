package recommend

import (
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

// Scoring policy. These weights are output compatibility surface: coverage is
// worth two points per matched ingredient, an anchoring protein three, and
// every ingredient still to buy costs one.
const (
	matchWeight    = 2
	proteinBonus   = 3
	missingPenalty = 1
)

// DefaultMinMatch and DefaultMaxResults are the recommender's only externally
// tunable parameters.
const (
	DefaultMinMatch   = 2
	DefaultMaxResults = 10
)

// NoneSentinel marks an empty missing-ingredient list in display output.
const NoneSentinel = "None"

// Recommender ranks menu dishes against a shopping cart using predicted
// ingredient prices.
type Recommender struct {
	menu   []models.MenuDish
	prices map[string]float64
	budget float64
	logger *zap.Logger
}

// New builds a Recommender over an authored menu and a predicted price table.
// Budget only drives the per-dish price warning; zero disables it.
func New(menu []models.MenuDish, predictions []models.PredictedPriceRecord, budget float64, logger *zap.Logger) *Recommender {
	if logger == nil {
		logger = zap.NewNop()
	}
	prices := make(map[string]float64, len(predictions))
	for _, p := range predictions {
		prices[p.ItemName] = p.PredictedPrice
	}
	return &Recommender{menu: menu, prices: prices, budget: budget, logger: logger}
}

// DishCost sums the predicted price of every ingredient. Ingredients without
// a price record contribute zero; that understates some dishes and is kept
// deliberately for output compatibility.
func (r *Recommender) DishCost(ingredients []string) float64 {
	var total float64
	for _, ing := range ingredients {
		total += r.prices[ing]
	}
	return round2(total)
}

// Suggest scores and ranks menu dishes against the cart. Dishes sharing fewer
// than minMatch canonical ingredients with the cart are excluded entirely;
// ties keep menu order; at most maxResults suggestions come back.
func (r *Recommender) Suggest(cart []models.CartItem, minMatch, maxResults int) []models.DishSuggestion {
	if minMatch < 1 {
		minMatch = DefaultMinMatch
	}
	if maxResults < 1 {
		maxResults = DefaultMaxResults
	}

	available := make(map[string]bool, len(cart))
	proteins := make(map[string]bool)
	for _, item := range cart {
		canonical := Canonicalize(item.ItemName)
		available[canonical] = true
		if IsProtein(item.ItemName) {
			proteins[canonical] = true
		}
	}

	var suggestions []models.DishSuggestion
	for _, dish := range r.menu {
		ing := make(map[string]bool, len(dish.Ingredients))
		for _, name := range dish.Ingredients {
			ing[Canonicalize(name)] = true
		}

		var matched, proteinHits int
		var missing []string
		for class := range ing {
			if available[class] {
				matched++
			} else {
				missing = append(missing, class)
			}
			if proteins[class] {
				proteinHits++
			}
		}
		if matched < minMatch {
			continue
		}
		sort.Strings(missing)

		score := matchWeight * matched
		if proteinHits > 0 {
			score += proteinBonus
		}
		score -= missingPenalty * len(missing)

		cost := r.DishCost(dish.Ingredients)
		display := NoneSentinel
		if len(missing) > 0 {
			display = strings.Join(missing, ", ")
		}

		suggestions = append(suggestions, models.DishSuggestion{
			Dish:          dish.Name,
			Course:        dish.Category,
			Ingredients:   dish.Ingredients,
			Missing:       display,
			MissingRaw:    missing,
			ServingSize:   dish.ServingSize,
			EstimatedCost: cost,
			Score:         score,
			PriceWarning:  r.budget > 0 && cost > r.budget,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	r.logger.Debug("meal suggestions computed",
		zap.Int("cart_items", len(cart)),
		zap.Int("suggestions", len(suggestions)))

	return suggestions
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
