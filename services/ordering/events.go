package ordering

import (
	"context"
	"fmt"

	"github.com/MarcGrol/salessimulator/lib/myerrors"
	"github.com/MarcGrol/salessimulator/lib/myhttp"
	"github.com/MarcGrol/salessimulator/lib/mylog"
	"github.com/MarcGrol/salessimulator/services/ordering/orderevents"
)

const eventPath = "/api/order/event"

func (s *service) Subscribe(c context.Context) error {
	err := s.publisher.CreateTopic(c, orderevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %w", orderevents.TopicName, err)
	}

	err = s.pubsub.Subscribe(c, orderevents.TopicName, myhttp.GuessHostnameWithScheme()+eventPath)
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %w", orderevents.TopicName, err)
	}

	return nil
}

// OnOrderCreated confirms the order once its creation has been delivered.
func (s *service) OnOrderCreated(c context.Context, topic string, event orderevents.OrderCreated) error {
	s.logger.Log(c, event.OrderUID, mylog.SeverityInfo, "Event: order %s created for account %s (total %s)", event.OrderUID, event.AccountID, event.TotalAmount)

	now := s.nower.Now()

	return s.orderStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent
		order, found, err := s.orderStore.Get(c, event.OrderUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("order with uid %s not found", event.OrderUID))
		}

		if order.Status == StatusConfirmed {
			return nil
		}

		order.Status = StatusConfirmed
		order.LastModified = &now

		err = s.orderStore.Put(c, order.UID, order)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
}
