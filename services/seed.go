package services

import (
	"context"
	"fmt"

	"storefront-api/errs"
	"storefront-api/models"
)

// SeedDatabase writes the fixture catalog in one batch. It is an operational
// tool, not a production path: re-running it duplicates records.
func SeedDatabase(ctx context.Context, products ProductBatchWriter) (string, error) {
	fixtures := CatalogFixtures()
	inserted, err := products.InsertMany(ctx, fixtures)
	if err != nil {
		return "", &errs.DataSourceError{Op: "seed products", Err: err}
	}
	categories := map[string]bool{}
	for _, p := range fixtures {
		categories[p.Category] = true
	}
	return fmt.Sprintf("seeded %d products across %d categories", inserted, len(categories)), nil
}

// CatalogFixtures is the initial product set loaded by the seed operation.
func CatalogFixtures() []models.Product {
	return []models.Product{
		{
			Name:        "Trail Runner 2",
			Brand:       "Nordstep",
			Description: "Lightweight trail running shoe with a grippy outsole.",
			Quantity:    40,
			Price:       119.00,
			Category:    "Sneakers",
			Images:      []string{"/images/trail-runner-2.jpg"},
		},
		{
			Name:        "City Canvas Low",
			Brand:       "Nordstep",
			Description: "Everyday canvas sneaker in unbleached cotton.",
			Quantity:    120,
			Price:       59.00,
			Category:    "Sneakers",
			Images:      []string{"/images/city-canvas-low.jpg"},
		},
		{
			Name:        "Fjord Hiker",
			Brand:       "Vidda",
			Description: "Waterproof leather hiking boot, sized for thick socks.",
			Quantity:    25,
			Price:       189.00,
			Category:    "Boots",
			Images:      []string{"/images/fjord-hiker.jpg"},
		},
		{
			Name:        "Chelsea Classic",
			Brand:       "Vidda",
			Description: "Slip-on chelsea boot in oiled nubuck.",
			Quantity:    30,
			Price:       149.00,
			Category:    "Boots",
			Images:      []string{"/images/chelsea-classic.jpg"},
		},
		{
			Name:        "Court Pro",
			Brand:       "Baseline",
			Description: "Indoor court shoe with reinforced toe cap.",
			Quantity:    55,
			Price:       89.00,
			Category:    "Sports",
			Images:      []string{"/images/court-pro.jpg"},
		},
		{
			Name:        "Marathon Elite",
			Brand:       "Baseline",
			Description: "Carbon-plated racing shoe for long distances.",
			Quantity:    15,
			Price:       229.00,
			Category:    "Sports",
			Images:      []string{"/images/marathon-elite.jpg"},
		},
		{
			Name:        "Sandal Breeze",
			Brand:       "Sundby",
			Description: "Cork-bed sandal with adjustable straps.",
			Quantity:    80,
			Price:       45.00,
			Category:    "Sandals",
			Images:      []string{"/images/sandal-breeze.jpg"},
		},
		{
			Name:        "Loafer Due",
			Brand:       "Sundby",
			Description: "Penny loafer in burgundy calf leather.",
			Quantity:    20,
			Price:       139.00,
			Category:    "Loafers",
			Images:      []string{"/images/loafer-due.jpg"},
		},
	}
}
