// Command seed populates the product collection with the fixture catalog.
// It prints a status line and exits non-zero on failure. Re-running it
// duplicates records; it is an operational tool, not a production path.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"storefront-api/configs"
	"storefront-api/services"
	"storefront-api/store"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	products := store.NewProducts(configs.GetCollection(configs.DB, "products"))

	summary, err := services.SeedDatabase(ctx, products)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(summary)
}
