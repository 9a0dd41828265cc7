package currency

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/salessimulator/lib/myhttpclient"
)

type remoteRateProvider struct {
	baseURL      string
	baseCurrency string
	sender       myhttpclient.HTTPSender
}

// NewRemoteRateProvider fetches rates from the rate endpoint of a remote currency service.
func NewRemoteRateProvider(baseURL string, baseCurrency string, sender myhttpclient.HTTPSender) RateProvider {
	return &remoteRateProvider{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		baseCurrency: baseCurrency,
		sender:       sender,
	}
}

func (p *remoteRateProvider) GetRate(c context.Context, target string) (decimal.Decimal, error) {
	rateURL := fmt.Sprintf("%s/api/rate/%s/%s", p.baseURL, url.PathEscape(p.baseCurrency), url.PathEscape(target))

	resp := RateResponse{}
	err := myhttpclient.SendJSON(c, p.sender, http.MethodGet, rateURL, nil, &resp)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error fetching rate %s->%s: %w", p.baseCurrency, target, err)
	}

	return resp.Rate, nil
}
