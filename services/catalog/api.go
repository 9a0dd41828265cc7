package catalog

import "context"

//go:generate mockgen -source=api.go -package catalog -destination searcher_mock.go Searcher
type Searcher interface {
	Search(c context.Context, term string) ([]Product, error)
}
