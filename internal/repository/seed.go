package repository

import (
	"context"
	"fmt"

	"hedonic/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// seedProducts is the launch catalogue. IDs are assigned at insert time.
var seedProducts = []model.Product{
	{
		Name:        "Dirty Shirley",
		Slug:        "dirty-shirley",
		Tagline:     "Clarified, carbonated, and dangerously smooth.",
		Description: "A sophisticated take on the classic Shirley Temple, elevated with premium clarified vodka. Bright grenadine sweetness meets fresh lime and effervescent carbonation for a cocktail that's as beautiful as it is balanced. Crystal clear with a rosy blush, each sip reveals layers of tart citrus and delicate pomegranate.",
		Ingredients: "Clarified Vodka, Grenadine, Fresh Lime, Carbonated Water",
		Spirit:      "Vodka",
		Price:       29.99,
		Volume:      "750mL",
		Servings:    4,
		ABV:         "8%",
		ImageURL:    "/images/dirty-shirley.png",
		Color:       "#c94060",
		Featured:    true,
	},
	{
		Name:        "Orange Julius",
		Slug:        "orange-julius",
		Tagline:     "Creamy citrus indulgence, reimagined.",
		Description: "The nostalgic orange cream flavor you remember, transformed into a sophisticated adult indulgence. Smooth vodka melds with fresh-squeezed orange juice and house-made vanilla syrup, creating a velvety, dreamsicle-like cocktail. Rich, creamy, and impossibly smooth with a long vanilla finish.",
		Ingredients: "Vodka, Fresh Orange Juice, Vanilla Syrup, Cream",
		Spirit:      "Vodka",
		Price:       29.99,
		Volume:      "750mL",
		Servings:    4,
		ABV:         "8%",
		ImageURL:    "/images/orange-julius.png",
		Color:       "#e8a040",
		Featured:    true,
	},
	{
		Name:        "Mezcal Soda",
		Slug:        "mezcal-soda",
		Tagline:     "Smoky, bright, and utterly addictive.",
		Description: "For those who crave depth and complexity. Premium mezcal brings its signature smokiness, perfectly tempered by bright lemon and a whisper of vanilla syrup. Light, effervescent, and endlessly drinkable with a long, smoldering finish that lingers beautifully.",
		Ingredients: "Mezcal, Fresh Lemon, Vanilla Syrup, Soda Water",
		Spirit:      "Mezcal",
		Price:       29.99,
		Volume:      "750mL",
		Servings:    4,
		ABV:         "8%",
		ImageURL:    "/images/mezcal-soda.png",
		Color:       "#c4a050",
		Featured:    true,
	},
}

// SeedProducts inserts the launch catalogue when the products table is
// empty. Seeding an already-populated catalogue is a no-op.
func SeedProducts(ctx context.Context, repo ProductRepository, logger zerolog.Logger) error {
	logger = logger.With().Str("component", "seed").Logger()

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing products: %w", err)
	}
	if count > 0 {
		logger.Info().Int("existing", count).Msg("catalogue already seeded, skipping")
		return nil
	}

	for _, p := range seedProducts {
		p.ID = uuid.NewString()
		if err := repo.Create(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.Slug, err)
		}
	}

	logger.Info().Int("products", len(seedProducts)).Msg("catalogue seeded")
	return nil
}
