package core

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// RecommenderService filters the product catalog by requested type and
// declared allergens, applying brand preference with graceful fallback.
type RecommenderService struct {
	catalog *Catalog
	logger  *zap.Logger
}

// NewRecommenderService creates a new recommendation service. The catalog
// may be nil when its file was missing at startup.
func NewRecommenderService(catalog *Catalog, logger *zap.Logger) *RecommenderService {
	return &RecommenderService{
		catalog: catalog,
		logger:  logger,
	}
}

// NormalizeAllergen normalizes an allergen name the way the catalog's flag
// columns were named: spaces, hyphens and slashes stripped, then
// capitalized.
func NormalizeAllergen(name string) string {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '/':
			return -1
		}
		return unicode.ToLower(r)
	}, name)
	if stripped == "" {
		return ""
	}
	return strings.ToUpper(stripped[:1]) + stripped[1:]
}

// IsSafe reports whether a product contains none of the declared allergens,
// by ingredient match or by allergen-flag column.
func IsSafe(p *Product, allergens []string) bool {
	for _, allergen := range allergens {
		allergen = strings.TrimSpace(allergen)
		if allergen == "" {
			continue
		}
		for _, ingredient := range p.Ingredients {
			if strings.EqualFold(strings.TrimSpace(ingredient), allergen) {
				return false
			}
		}
		if flag, ok := p.AllergenFlags[NormalizeAllergen(allergen)]; ok && flag == "1" {
			return false
		}
	}
	return true
}

// Recommend resolves one recommendation attempt per requested product
// type, in request order. Choices follow catalog order; there is no
// ranking.
func (s *RecommenderService) Recommend(productTypes []string, allergens []string, preferredBrand string) (*RecommendationResult, error) {
	if s.catalog == nil {
		return nil, ErrCatalogNotLoaded
	}

	result := &RecommendationResult{
		Recommendations: []Recommendation{},
		Unavailable:     []UnavailableNotice{},
	}

	for _, productType := range productTypes {
		safe := s.safeProducts(productType, allergens)

		if len(safe) == 0 {
			result.Unavailable = append(result.Unavailable, UnavailableNotice{
				ProductType:       productType,
				Brand:             preferredBrand,
				Msg:               fmt.Sprintf("No safe %s found for your allergies", productType),
				AlternativeBrands: []string{},
			})
			continue
		}

		if preferredBrand != "" {
			if match := firstOfBrand(safe, preferredBrand); match != nil {
				result.Recommendations = append(result.Recommendations, toRecommendation(match))
				continue
			}
			// Preferred brand has no safe product but others do: report the
			// gap and still recommend the first safe alternative.
			result.Unavailable = append(result.Unavailable, UnavailableNotice{
				ProductType:       productType,
				Brand:             preferredBrand,
				Msg:               fmt.Sprintf("No safe %s available from %s", productType, preferredBrand),
				AlternativeBrands: distinctBrands(safe),
			})
		}

		result.Recommendations = append(result.Recommendations, toRecommendation(safe[0]))
	}

	return result, nil
}

// safeProducts returns the catalog entries of the requested type that pass
// the allergy filter, in catalog order.
func (s *RecommenderService) safeProducts(productType string, allergens []string) []*Product {
	var safe []*Product
	for i := range s.catalog.Products {
		p := &s.catalog.Products[i]
		if !strings.EqualFold(p.Type, productType) {
			continue
		}
		if IsSafe(p, allergens) {
			safe = append(safe, p)
		}
	}
	return safe
}

func firstOfBrand(products []*Product, brand string) *Product {
	for _, p := range products {
		if strings.EqualFold(p.Brand, brand) {
			return p
		}
	}
	return nil
}

func distinctBrands(products []*Product) []string {
	seen := make(map[string]struct{}, len(products))
	brands := []string{}
	for _, p := range products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	return brands
}

func toRecommendation(p *Product) Recommendation {
	return Recommendation{
		Brand:       p.Brand,
		ProductType: p.Type,
		ProductName: p.Name,
		ProductLink: p.Link,
	}
}
