package recommend

import (
	"testing"
	"time"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
)

func testMenu() []models.MenuDish {
	return []models.MenuDish{
		{
			Category:    "Main Courses",
			Name:        "Roast Whole Chicken",
			Ingredients: []string{"Whole Chicken, Local", "Garlic, Native/Local", "Salt (Iodized)"},
			ServingSize: 5,
		},
		{
			Category:    "Vegetables/Sides",
			Name:        "Ensaladang Talong",
			Ingredients: []string{"Eggplant", "Tomato", "Red Onion, Local"},
			ServingSize: 3,
		},
		{
			Category:    "Vegetables/Sides",
			Name:        "Tomato Onion Salad",
			Ingredients: []string{"Tomato", "Red Onion, Local"},
			ServingSize: 3,
		},
	}
}

func cart(names ...string) []models.CartItem {
	items := make([]models.CartItem, 0, len(names))
	for _, name := range names {
		items = append(items, models.NewCartItem(name, "", 0))
	}
	return items
}

func predictions() []models.PredictedPriceRecord {
	date := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	return []models.PredictedPriceRecord{
		{ItemName: "Tomato", Category: "LOWLAND VEGETABLES", Date: date, PredictedPrice: 50},
		{ItemName: "Eggplant", Category: "LOWLAND VEGETABLES", Date: date, PredictedPrice: 30},
		{ItemName: "Red Onion, Local", Category: "SPICES", Date: date, PredictedPrice: 120},
	}
}

func TestSuggestScoringAndProteinBonus(t *testing.T) {
	r := New(testMenu(), predictions(), 500, nil)

	got := r.Suggest(cart("Whole Chicken, Local", "Garlic, Native/Local", "Rock Salt"), 2, 10)
	if len(got) != 1 {
		t.Fatalf("suggestions = %d, want 1: %+v", len(got), got)
	}
	s := got[0]
	if s.Dish != "Roast Whole Chicken" {
		t.Errorf("dish = %s", s.Dish)
	}
	// 3 matches * 2 + protein bonus 3 - 0 missing = 9
	if s.Score != 9 {
		t.Errorf("score = %d, want 9", s.Score)
	}
	if s.Missing != NoneSentinel || len(s.MissingRaw) != 0 {
		t.Errorf("missing = %q raw %v, want sentinel and empty", s.Missing, s.MissingRaw)
	}
}

func TestSuggestMinMatchExcludes(t *testing.T) {
	r := New(testMenu(), predictions(), 500, nil)

	got := r.Suggest(cart("Tomato", "Red Onion, Local"), 2, 10)
	for _, s := range got {
		if s.Dish == "Roast Whole Chicken" {
			t.Errorf("chicken dish shares no ingredients with this cart, got %+v", s)
		}
	}
	if len(got) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(got))
	}

	// Tomato Onion Salad: 2*2 - 0 = 4. Ensaladang Talong: 2*2 - 1 = 3.
	if got[0].Dish != "Tomato Onion Salad" || got[0].Score != 4 {
		t.Errorf("top suggestion = %+v", got[0])
	}
	if got[1].Dish != "Ensaladang Talong" || got[1].Score != 3 {
		t.Errorf("second suggestion = %+v", got[1])
	}
	if got[1].Missing != "eggplant" {
		t.Errorf("missing = %q, want eggplant", got[1].Missing)
	}
}

func TestSuggestMaxResults(t *testing.T) {
	r := New(testMenu(), predictions(), 500, nil)

	got := r.Suggest(cart("Tomato", "Red Onion, Local"), 1, 1)
	if len(got) != 1 {
		t.Fatalf("suggestions = %d, want 1", len(got))
	}
}

func TestSuggestTieKeepsMenuOrder(t *testing.T) {
	menu := []models.MenuDish{
		{Category: "Vegetables/Sides", Name: "First Salad", Ingredients: []string{"Tomato", "Red Onion, Local"}},
		{Category: "Vegetables/Sides", Name: "Second Salad", Ingredients: []string{"Tomato", "Red Onion, Local"}},
	}
	r := New(menu, nil, 500, nil)

	got := r.Suggest(cart("Tomato", "Red Onion, Local"), 2, 10)
	if len(got) != 2 || got[0].Dish != "First Salad" || got[1].Dish != "Second Salad" {
		t.Errorf("tie order broken: %+v", got)
	}
}

func TestDishCost(t *testing.T) {
	r := New(nil, predictions(), 500, nil)

	// Unpriced ingredients contribute zero.
	got := r.DishCost([]string{"Tomato", "Eggplant", "Bay Leaf"})
	if got != 80 {
		t.Errorf("DishCost = %v, want 80", got)
	}
}

func TestPriceWarning(t *testing.T) {
	menu := []models.MenuDish{
		{Category: "Vegetables/Sides", Name: "Pricy Salad", Ingredients: []string{"Tomato", "Red Onion, Local"}},
	}

	r := New(menu, predictions(), 100, nil)
	got := r.Suggest(cart("Tomato", "Red Onion, Local"), 2, 10)
	if len(got) != 1 {
		t.Fatalf("suggestions = %d, want 1", len(got))
	}
	if got[0].EstimatedCost != 170 {
		t.Errorf("cost = %v, want 170", got[0].EstimatedCost)
	}
	if !got[0].PriceWarning {
		t.Error("expected price warning above budget")
	}

	generous := New(menu, predictions(), 500, nil)
	if s := generous.Suggest(cart("Tomato", "Red Onion, Local"), 2, 10); s[0].PriceWarning {
		t.Error("unexpected price warning under budget")
	}
}
