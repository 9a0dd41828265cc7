package ordering

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/salessimulator/lib/myerrors"
	"github.com/MarcGrol/salessimulator/lib/mylog"
	"github.com/MarcGrol/salessimulator/services/ordering/orderevents"
)

func validate(req CreateOrderRequest) error {
	if req.AccountID == "" {
		return myerrors.NewInvalidInputErrorf("account is required")
	}
	if len(req.Items) == 0 {
		return myerrors.NewInvalidInputErrorf("order has no items")
	}
	for _, item := range req.Items {
		if item.ProductID == "" {
			return myerrors.NewInvalidInputErrorf("item without product id")
		}
		if item.Quantity < 1 {
			return myerrors.NewInvalidInputErrorf("quantity of %s must be at least 1, got %d", item.ProductID, item.Quantity)
		}
		if item.UnitPrice.IsNegative() {
			return myerrors.NewInvalidInputErrorf("price of %s must not be negative", item.ProductID)
		}
	}
	return nil
}

func (s *service) CreateOrder(c context.Context, req CreateOrderRequest) (string, error) {
	err := validate(req)
	if err != nil {
		return "", err
	}

	orderUID := s.uuider.Create()
	order := Order{
		UID:       orderUID,
		CreatedAt: s.nower.Now(),
		AccountID: req.AccountID,
		Status:    StatusCreated,
		Lines:     make([]OrderLine, 0, len(req.Items)),
	}
	total := decimal.Zero
	for _, item := range req.Items {
		totalLine := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(totalLine)
		order.Lines = append(order.Lines, OrderLine{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			TotalLine:   totalLine.String(),
		})
	}
	order.TotalAmount = total.String()

	s.logger.Log(c, orderUID, mylog.SeverityInfo, "Creating order %s for account %s with %d lines", orderUID, req.AccountID, len(order.Lines))

	err = s.orderStore.RunInTransaction(c, func(c context.Context) error {
		err := s.orderStore.Put(c, orderUID, order)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, orderevents.TopicName, orderevents.OrderCreated{
			OrderUID:    orderUID,
			AccountID:   req.AccountID,
			LineCount:   len(order.Lines),
			TotalAmount: order.TotalAmount,
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return orderUID, nil
}

func (s *service) getOrder(c context.Context, orderUID string) (Order, error) {
	s.logger.Log(c, orderUID, mylog.SeverityInfo, "Fetch details of order uid %s", orderUID)

	order, found, err := s.orderStore.Get(c, orderUID)
	if err != nil {
		return Order{}, myerrors.NewInternalError(err)
	}
	if !found {
		return Order{}, myerrors.NewNotFoundError(fmt.Errorf("order with uid %s not found", orderUID))
	}

	return order, nil
}

func (s *service) viewOrder(c context.Context, orderUID string) (OrderView, error) {
	order, err := s.getOrder(c, orderUID)
	if err != nil {
		return OrderView{}, err
	}

	total, err := decimal.NewFromString(order.TotalAmount)
	if err != nil {
		return OrderView{}, myerrors.NewInternalError(fmt.Errorf("corrupt total of order %s: %w", orderUID, err))
	}

	formatted, err := s.format.Apply(total)
	if err != nil {
		return OrderView{}, myerrors.NewInternalError(err)
	}

	return OrderView{
		Order:          order,
		FormattedTotal: formatted,
	}, nil
}
