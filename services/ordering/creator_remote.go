package ordering

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MarcGrol/salessimulator/lib/myhttpclient"
)

type remoteOrderCreator struct {
	baseURL string
	sender  myhttpclient.HTTPSender
}

// NewRemoteOrderCreator posts orders to the order endpoint of a remote order service.
func NewRemoteOrderCreator(baseURL string, sender myhttpclient.HTTPSender) OrderCreator {
	return &remoteOrderCreator{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		sender:  sender,
	}
}

func (o *remoteOrderCreator) CreateOrder(c context.Context, req CreateOrderRequest) (string, error) {
	resp := CreateOrderResponse{}
	err := myhttpclient.SendJSON(c, o.sender, http.MethodPost, o.baseURL+"/api/order", req, &resp)
	if err != nil {
		return "", fmt.Errorf("error creating order for account %s: %w", req.AccountID, err)
	}
	if resp.OrderUID == "" {
		return "", fmt.Errorf("order service returned no order uid")
	}

	return resp.OrderUID, nil
}
