package ordering

import (
	"github.com/MarcGrol/salessimulator/lib/mylog"
	"github.com/MarcGrol/salessimulator/lib/mymoney"
	"github.com/MarcGrol/salessimulator/lib/mypublisher"
	"github.com/MarcGrol/salessimulator/lib/mypubsub"
	"github.com/MarcGrol/salessimulator/lib/mystore"
	"github.com/MarcGrol/salessimulator/lib/mytime"
	"github.com/MarcGrol/salessimulator/lib/myuuid"
)

type service struct {
	orderStore mystore.Store[Order]
	nower      mytime.Nower
	uuider     myuuid.UUIDer
	pubsub     mypubsub.PubSub
	publisher  mypublisher.Publisher
	format     mymoney.Format
	logger     mylog.Logger
}

// NewBackend is the in-process order backend. Use dependency injection to isolate the infrastructure and ease testing
func NewBackend(store mystore.Store[Order], nower mytime.Nower, uuider myuuid.UUIDer, pubsub mypubsub.PubSub, pub mypublisher.Publisher, format mymoney.Format) *service {
	return &service{
		orderStore: store,
		nower:      nower,
		uuider:     uuider,
		pubsub:     pubsub,
		publisher:  pub,
		format:     format,
		logger:     mylog.New("ordering"),
	}
}
