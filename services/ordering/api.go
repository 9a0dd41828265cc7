package ordering

import "context"

//go:generate mockgen -source=api.go -package ordering -destination creator_mock.go OrderCreator
type OrderCreator interface {
	// CreateOrder returns the uid of the created order.
	CreateOrder(c context.Context, req CreateOrderRequest) (string, error)
}
