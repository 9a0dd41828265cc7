package mypubsub

import (
	"context"
	"os"

	"github.com/MarcGrol/salessimulator/lib/mylog"
)

type fakePubSub struct {
	logger mylog.Logger
}

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newFakePubSub
	}
}

func newFakePubSub(c context.Context) (PubSub, func(), error) {
	return &fakePubSub{
		logger: mylog.New("pubsub"),
	}, func() {}, nil
}

func (q *fakePubSub) Subscribe(c context.Context, topic string, urlToPostTo string) error {
	return nil
}

func (q *fakePubSub) CreateTopic(c context.Context, topic string) error {
	return nil
}

func (q *fakePubSub) Publish(c context.Context, topic string, data string) error {
	q.logger.Log(c, topic, mylog.SeverityDebug, "Publish on %s: %s", topic, data)
	return nil
}
