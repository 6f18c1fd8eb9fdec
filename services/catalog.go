package services

import (
	"strings"

	"pos-client/models"
)

// FilterProducts keeps the products whose name contains term, ignoring case.
func FilterProducts(products []models.Product, term string) []models.Product {
	if term == "" {
		return products
	}
	needle := strings.ToLower(term)
	filtered := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func findProduct(products []models.Product, id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
