package salessim

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/salessimulator/lib/mytime"
	"github.com/MarcGrol/salessimulator/lib/myuuid"
	"github.com/MarcGrol/salessimulator/services/catalog"
	"github.com/MarcGrol/salessimulator/services/currency"
	"github.com/MarcGrol/salessimulator/services/ordering"
)

var (
	productA     = AddProduct{ID: "A", Name: "Hockey stick", Price: decimal.NewFromInt(10)}
	productB     = AddProduct{ID: "B", Name: "Tennis balls", Price: decimal.NewFromInt(5)}
	initialItems = []catalog.Product{{ID: "A", Name: "Hockey stick", Price: decimal.NewFromInt(10)}}
)

type fixture struct {
	scheduler *mytime.FakeScheduler
	nower     *mytime.MockNower
	uuider    *myuuid.MockUUIDer
	searcher  *catalog.MockSearcher
	rates     *currency.MockRateProvider
	orders    *ordering.MockOrderCreator
	registry  *SessionRegistry
}

func newFixture(ctrl *gomock.Controller, config Config) *fixture {
	f := &fixture{
		scheduler: mytime.NewFakeScheduler(),
		nower:     mytime.NewMockNower(ctrl),
		uuider:    myuuid.NewMockUUIDer(ctrl),
		searcher:  catalog.NewMockSearcher(ctrl),
		rates:     currency.NewMockRateProvider(ctrl),
		orders:    ordering.NewMockOrderCreator(ctrl),
	}
	f.registry = NewSessionRegistry(config, f.nower, f.uuider, f.scheduler, f.searcher, f.rates, f.orders)
	return f
}

// newSession creates a session whose initial query returns initialItems.
func (f *fixture) newSession(t *testing.T, sessionUID string, accountContextID string) *Session {
	f.uuider.EXPECT().Create().Return(sessionUID)
	f.nower.EXPECT().Now().Return(mytime.ExampleTime)
	f.searcher.EXPECT().Search(gomock.Any(), "").Return(initialItems, nil)

	session := f.registry.Create(context.TODO(), accountContextID)
	t.Cleanup(session.Close)

	return session
}

func setupCart(t *testing.T, ctrl *gomock.Controller, config Config) (*fixture, *Session) {
	f := newFixture(ctrl, config)
	return f, f.newSession(t, "session_1", "acc_1")
}

func countVariant(notifications []Notification, variant Variant) int {
	count := 0
	for _, n := range notifications {
		if n.Variant == variant {
			count++
		}
	}
	return count
}
