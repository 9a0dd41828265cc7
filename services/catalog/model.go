package catalog

import "github.com/shopspring/decimal"

type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// SearchResponse is the wire format of the product endpoint.
type SearchResponse struct {
	Term     string
	Products []Product
}
