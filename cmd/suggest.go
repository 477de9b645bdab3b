package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/menu"
	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/models"
	"github.com/CalistaJajalla/nochebuena-budget-tracker/internal/recommend"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Rank Noche Buena dishes against a shopping cart",
	Long: `suggest matches the items in a shopping cart against the authored Noche
Buena menu and ranks dishes by ingredient coverage, protein anchoring and
how much is still missing. Estimated dish costs come from the predicted
price table; dishes whose cost exceeds the household budget are flagged.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		logger := newLogger()
		defer logger.Sync()

		predictions, err := models.ReadPredictedRecords(cfg.PredictedFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading predicted prices: %v\n", err)
			os.Exit(1)
		}

		dishes := menu.Default()
		if cfg.MenuFile != "" {
			dishes, err = models.LoadMenuFile(cfg.MenuFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading menu file: %v\n", err)
				os.Exit(1)
			}
		}

		cart, err := buildCart(cmd, cfg, predictions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building cart: %v\n", err)
			os.Exit(1)
		}
		if len(cart) == 0 {
			fmt.Fprintln(os.Stderr, "Cart is empty: pass --cart items or --cart-file")
			os.Exit(1)
		}

		r := recommend.New(dishes, predictions, cfg.Budget, logger)
		suggestions := r.Suggest(cart, cfg.MinMatch, cfg.MaxResults)

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(suggestions); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding suggestions: %v\n", err)
				os.Exit(1)
			}
			return
		}

		printSuggestions(cart, suggestions)
		logger.Info("suggest complete",
			zap.Int("cart_items", len(cart)),
			zap.Int("suggestions", len(suggestions)))
	},
}

// buildCart assembles cart lines from --cart-file and/or repeated --cart
// names. Flag-named items get their predicted price when one exists.
func buildCart(cmd *cobra.Command, cfg *models.Config, predictions []models.PredictedPriceRecord) ([]models.CartItem, error) {
	var cart []models.CartItem

	cartFile, _ := cmd.Flags().GetString("cart-file")
	if cartFile != "" {
		items, err := models.ReadCartFile(cartFile)
		if err != nil {
			return nil, err
		}
		cart = append(cart, items...)
	}

	prices := make(map[string]models.PredictedPriceRecord, len(predictions))
	for _, p := range predictions {
		prices[p.ItemName] = p
	}

	names, _ := cmd.Flags().GetStringSlice("cart")
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if p, ok := prices[name]; ok {
			cart = append(cart, models.NewCartItem(p.ItemName, p.Specification, p.PredictedPrice))
			continue
		}
		cart = append(cart, models.NewCartItem(name, "", 0))
	}
	return cart, nil
}

func printSuggestions(cart []models.CartItem, suggestions []models.DishSuggestion) {
	var cartTotal float64
	for _, item := range cart {
		cartTotal += item.Price
	}
	fmt.Printf("Cart: %d items, estimated total %.2f\n\n", len(cart), cartTotal)

	if len(suggestions) == 0 {
		fmt.Println("No dishes share enough ingredients with this cart.")
		return
	}

	for i, s := range suggestions {
		warning := ""
		if s.PriceWarning {
			warning = "  [over budget]"
		}
		fmt.Printf("%2d. %s (%s) score %d, serves %d, est. cost %.2f%s\n",
			i+1, s.Dish, s.Course, s.Score, s.ServingSize, s.EstimatedCost, warning)
		fmt.Printf("    missing: %s\n", s.Missing)
	}
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().StringSlice("cart", nil, "Cart item names (repeatable or comma-separated)")
	suggestCmd.Flags().String("cart-file", "", "JSON cart file")
	suggestCmd.Flags().String("predicted-file", "data/processed/predicted_prices.csv", "Path to the predicted price CSV")
	suggestCmd.Flags().String("menu-file", "", "JSON menu file overriding the built-in menu")
	suggestCmd.Flags().Int("min-match", 2, "Minimum shared ingredients for a dish to qualify")
	suggestCmd.Flags().Int("max-results", 10, "Maximum number of suggestions")
	suggestCmd.Flags().Float64("budget", 500, "Household budget used for the per-dish price warning")
	suggestCmd.Flags().Bool("json", false, "Emit suggestions as JSON")
}
