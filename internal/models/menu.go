package models

import "github.com/lucsky/cuid"

// MenuDish is an authored reference dish. Ingredients are canonical item
// names drawn from the same vocabulary as the cleaned price table.
type MenuDish struct {
	Category    string   `json:"category" mapstructure:"category"`
	Name        string   `json:"dish" mapstructure:"dish"`
	Ingredients []string `json:"ingredients" mapstructure:"ingredients"`
	ServingSize int      `json:"serving_size" mapstructure:"serving_size"`
}

// CartItem is a transient, session-owned purchase line.
type CartItem struct {
	ID            string  `json:"id"`
	ItemName      string  `json:"item_name"`
	Specification string  `json:"specification"`
	Price         float64 `json:"price"`
}

// NewCartItem assigns a fresh uid to a cart line.
func NewCartItem(itemName, specification string, price float64) CartItem {
	return CartItem{
		ID:            cuid.New(),
		ItemName:      itemName,
		Specification: specification,
		Price:         price,
	}
}

// DishSuggestion is a ranked recommendation, recomputed on every call.
// MissingRaw carries the machine-readable missing list ("add these to cart");
// Missing is the comma-joined display form with a "None" sentinel.
type DishSuggestion struct {
	Dish          string   `json:"dish"`
	Course        string   `json:"course"`
	Ingredients   []string `json:"ingredients"`
	Missing       string   `json:"missing"`
	MissingRaw    []string `json:"missing_raw"`
	ServingSize   int      `json:"serving_size"`
	EstimatedCost float64  `json:"estimated_cost"`
	Score         int      `json:"score"`
	PriceWarning  bool     `json:"price_warning"`
}
