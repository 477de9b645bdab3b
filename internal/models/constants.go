package models

// Sink topics. File sinks map these to data/<folder>/<topic>.csv etc.
const (
	TopicCleanedPrices   = "cleaned_prices"
	TopicCleaningLog     = "cleaning_log"
	TopicPredictedPrices = "predicted_prices"
)

// VolatileCategories are priced per small unit and rarely exceed 1000; the
// price corrector rescales anything above that in these categories.
var VolatileCategories = map[string]bool{
	"LOWLAND VEGETABLES": true,
	"FRUITS":             true,
	"SPICES":             true,
}

// ProteinKeywords anchor the recommender's protein bonus. Matched by
// case-insensitive substring against cart item names, independently of the
// canonical ingredient table.
var ProteinKeywords = []string{
	"chicken", "pork", "beef",
	"bangus", "tilapia", "galunggong", "salmon",
}
