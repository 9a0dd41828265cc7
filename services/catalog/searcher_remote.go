package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MarcGrol/salessimulator/lib/myhttpclient"
)

type remoteSearcher struct {
	baseURL string
	sender  myhttpclient.HTTPSender
}

// NewRemoteSearcher queries the product endpoint of a remote catalog service.
func NewRemoteSearcher(baseURL string, sender myhttpclient.HTTPSender) Searcher {
	return &remoteSearcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		sender:  sender,
	}
}

func (s *remoteSearcher) Search(c context.Context, term string) ([]Product, error) {
	searchURL := fmt.Sprintf("%s/api/product?%s", s.baseURL, url.Values{"term": []string{term}}.Encode())

	resp := SearchResponse{}
	err := myhttpclient.SendJSON(c, s.sender, http.MethodGet, searchURL, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("error searching products with term '%s': %w", term, err)
	}

	return resp.Products, nil
}
