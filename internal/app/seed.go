package app

import (
	_ "embed"

	jsoniter "github.com/json-iterator/go"
	"github.com/printarts/printrec/internal/domain"
)

// The seed catalog was distilled from the original spreadsheet. It lives here
// as data only; main passes it to SeedCatalog explicitly at startup.
//
//go:embed seed_products.json
var seedProductsData []byte

// LoadSeedProducts decodes the embedded seed catalog.
func LoadSeedProducts() ([]domain.Product, error) {
	var products []domain.Product
	if err := jsoniter.Unmarshal(seedProductsData, &products); err != nil {
		return nil, err
	}
	return products, nil
}
