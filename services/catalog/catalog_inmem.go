package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

const topN = 10

type inMemoryCatalog struct {
	products []Product
}

// NewInMemoryCatalog serves a fixed sports-shop assortment.
func NewInMemoryCatalog() Searcher {
	return &inMemoryCatalog{
		products: products,
	}
}

// Search matches the term case-insensitively against product names. An empty term returns the first products.
func (s *inMemoryCatalog) Search(c context.Context, term string) ([]Product, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return limit(s.products, topN), nil
	}

	found := []Product{}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			found = append(found, p)
		}
	}
	return found, nil
}

func limit(products []Product, max int) []Product {
	if len(products) > max {
		products = products[:max]
	}
	result := make([]Product, len(products))
	copy(result, products)
	return result
}

var products = []Product{
	{ID: "product_hockey_stick", Name: "Hockey stick", Price: decimal.RequireFromString("190.00")},
	{ID: "product_hockey_shoes", Name: "Hockey shoes", Price: decimal.RequireFromString("120.00")},
	{ID: "product_jogging_pants", Name: "Jogging pants", Price: decimal.RequireFromString("60.00")},
	{ID: "product_sweat_shirt", Name: "Sweat shirt", Price: decimal.RequireFromString("70.00")},
	{ID: "product_hoody", Name: "Hoody", Price: decimal.RequireFromString("80.00")},
	{ID: "product_tennis_racket", Name: "Tennis racket", Price: decimal.RequireFromString("169.00")},
	{ID: "product_tennis_balls", Name: "Tennis balls", Price: decimal.RequireFromString("10.00")},
	{ID: "product_tennis_shoes", Name: "Tennis shoes", Price: decimal.RequireFromString("120.00")},
	{ID: "product_running_shoes", Name: "Running shoes", Price: decimal.RequireFromString("120.00")},
	{ID: "product_running_shirt", Name: "Running shirt", Price: decimal.RequireFromString("50.00")},
	{ID: "product_running_shorts", Name: "Running shorts", Price: decimal.RequireFromString("40.00")},
	{ID: "product_running_socks", Name: "Running socks", Price: decimal.RequireFromString("9.99")},
	{ID: "product_running_cap", Name: "Running cap", Price: decimal.RequireFromString("20.00")},
}
