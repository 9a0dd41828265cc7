package mypublisher

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/salessimulator/lib/myevents"
	"github.com/MarcGrol/salessimulator/lib/mypubsub"
	"github.com/MarcGrol/salessimulator/lib/myqueue"
	"github.com/MarcGrol/salessimulator/lib/mystore"
	"github.com/MarcGrol/salessimulator/lib/mytime"
)

type orderPlaced struct {
	OrderUID string
}

func (e orderPlaced) GetEventTypeName() string {
	return "order.placed"
}

func (e orderPlaced) GetAggregateName() string {
	return e.OrderUID
}

func TestTransactionalPublisher(t *testing.T) {

	t.Run("Publish stores and enqueues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, _, outbox, nower, queue, _, sut := setup(ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(func(c context.Context, task myqueue.Task) error {
			assert.Equal(t, fmt.Sprintf("/pubsub/order/%s", task.UID), task.WebhookURLPath)
			return nil
		})

		// when
		err := sut.Publish(ctx, "order", orderPlaced{OrderUID: "order_1"})

		// then
		assert.NoError(t, err)
		envelopes, err := outbox.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, envelopes, 1)
		assert.Equal(t, "order.placed", envelopes[0].EventTypeName)
		assert.Equal(t, "order_1", envelopes[0].AggregateUID)
		assert.Equal(t, `{"OrderUID":"order_1"}`, envelopes[0].EventPayload)
		assert.Equal(t, mytime.ExampleTime, envelopes[0].CreatedAt)
		assert.False(t, envelopes[0].Published)
	})

	t.Run("Publish fails when queue fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, _, _, nower, queue, _, sut := setup(ctrl)

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime)
		queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(fmt.Errorf("queue down"))

		// when
		err := sut.Publish(ctx, "order", orderPlaced{OrderUID: "order_1"})

		// then
		assert.ErrorContains(t, err, "queue down")
	})

	t.Run("Trigger publishes pending events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, outbox, _, _, pubsub, _ := setup(ctrl)

		// given
		outbox.Put(ctx, "e1", myevents.EventEnvelope{UID: "e1", Topic: "order", CreatedAt: mytime.ExampleTime})
		outbox.Put(ctx, "e2", myevents.EventEnvelope{UID: "e2", Topic: "order", CreatedAt: mytime.ExampleTime, Published: true})
		pubsub.EXPECT().Publish(gomock.Any(), "order", gomock.Any()).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPut, "/pubsub/order/e1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Successfully published 1 events")
		envelope, _, _ := outbox.Get(ctx, "e1")
		assert.True(t, envelope.Published)
	})

	t.Run("Trigger keeps events pending on failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, outbox, _, _, pubsub, _ := setup(ctrl)

		// given
		outbox.Put(ctx, "e1", myevents.EventEnvelope{UID: "e1", Topic: "order", CreatedAt: mytime.ExampleTime})
		pubsub.EXPECT().Publish(gomock.Any(), "order", gomock.Any()).Return(fmt.Errorf("pubsub down"))

		// when
		request, err := http.NewRequest(http.MethodPut, "/pubsub/order/e1", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 500, response.Code)
		envelope, _, _ := outbox.Get(ctx, "e1")
		assert.False(t, envelope.Published)
	})
}

func setup(ctrl *gomock.Controller) (context.Context, *mux.Router, mystore.Store[myevents.EventEnvelope], *mytime.MockNower, *myqueue.MockTaskQueuer, *mypubsub.MockPubSub, *transactionalPublisher) {
	c := context.TODO()
	outbox, _, _ := mystore.NewInMemoryStore[myevents.EventEnvelope](c)
	nower := mytime.NewMockNower(ctrl)
	queue := myqueue.NewMockTaskQueuer(ctrl)
	pubsub := mypubsub.NewMockPubSub(ctrl)

	sut := New(outbox, pubsub, queue, nower)
	router := mux.NewRouter()
	sut.RegisterEndpoints(c, router)

	return c, router, outbox, nower, queue, pubsub, sut
}
