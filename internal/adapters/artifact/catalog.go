package artifact

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/skinai/skinai-backend/internal/core"
)

// Required catalog CSV columns. Any other column is treated as a binary
// allergen flag keyed by its normalized name.
const (
	colBrand       = "Brand"
	colProductType = "Product_Type"
	colProductName = "Product_Name"
	colProductLink = "Product_Link"
	colIngredients = "Ingredients"
)

// LoadCatalog reads the product catalog from a CSV file. Row order is
// preserved; recommendation picks follow it.
func LoadCatalog(path string) (*core.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("catalog %s has no header row", path)
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colBrand, colProductType, colProductName, colProductLink, colIngredients} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("catalog %s is missing column %s", path, required)
		}
	}

	catalog := &core.Catalog{Products: make([]core.Product, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		product := core.Product{
			Brand:         cell(row, index[colBrand]),
			Type:          cell(row, index[colProductType]),
			Name:          cell(row, index[colProductName]),
			Link:          cell(row, index[colProductLink]),
			Ingredients:   splitIngredients(cell(row, index[colIngredients])),
			AllergenFlags: map[string]string{},
		}
		for name, i := range index {
			switch name {
			case colBrand, colProductType, colProductName, colProductLink, colIngredients:
				continue
			}
			product.AllergenFlags[core.NormalizeAllergen(name)] = cell(row, i)
		}
		catalog.Products = append(catalog.Products, product)
	}

	return catalog, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// splitIngredients splits a semicolon-separated ingredient list. Commas
// are accepted too since some catalog exports use them.
func splitIngredients(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ';' || r == ','
	})
	ingredients := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ingredients = append(ingredients, trimmed)
		}
	}
	return ingredients
}
