package salessim

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/salessimulator/lib/myerrors"
	"github.com/MarcGrol/salessimulator/lib/mytime"
	"github.com/MarcGrol/salessimulator/lib/myuuid"
	"github.com/MarcGrol/salessimulator/services/catalog"
)

var sticks = []catalog.Product{{ID: "product_hockey_stick", Name: "Hockey stick", Price: decimal.NewFromInt(190)}}

func TestSearchPanel(t *testing.T) {

	t.Run("Initial query uses empty term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, session := setupCart(t, ctrl, DefaultConfig())

		// then
		assert.Equal(t, "", session.Search.Term())
		assert.Equal(t, initialItems, session.Search.Products())
	})

	t.Run("Rapid changes produce one term update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f, session := setupCart(t, ctrl, DefaultConfig())
		sut := session.Search
		updates := []string{}
		sut.TermSubject().Subscribe(func(term string) {
			updates = append(updates, term)
		})

		// given
		f.searcher.EXPECT().Search(gomock.Any(), "sti").Return(sticks, nil).Times(1)

		// when
		sut.OnInputChange("s")
		f.scheduler.Advance(100 * time.Millisecond)
		sut.OnInputChange("st")
		f.scheduler.Advance(100 * time.Millisecond)
		sut.OnInputChange("sti")
		f.scheduler.Advance(299 * time.Millisecond)

		// then
		assert.Empty(t, updates)
		assert.Equal(t, 1, f.scheduler.Pending())

		// when
		f.scheduler.Advance(1 * time.Millisecond)

		// then
		assert.Equal(t, []string{"sti"}, updates)
		assert.Equal(t, "sti", sut.Term())
		assert.Equal(t, sticks, sut.Products())
		assert.Equal(t, 0, f.scheduler.Pending())
	})

	t.Run("Configured delay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		config := DefaultConfig()
		config.DebounceDelay = 50 * time.Millisecond
		f, session := setupCart(t, ctrl, config)

		// given
		f.searcher.EXPECT().Search(gomock.Any(), "hockey").Return(sticks, nil)

		// when
		session.Search.OnInputChange("hockey")
		f.scheduler.Advance(50 * time.Millisecond)

		// then
		assert.Equal(t, "hockey", session.Search.Term())
	})

	t.Run("Unchanged term does not query again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f, session := setupCart(t, ctrl, DefaultConfig())

		// when
		session.Search.OnInputChange("")
		f.scheduler.Advance(time.Second)

		// then
		assert.Equal(t, initialItems, session.Search.Products())
	})

	t.Run("Search failure keeps previous list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f, session := setupCart(t, ctrl, DefaultConfig())

		// given
		f.searcher.EXPECT().Search(gomock.Any(), "x").Return(nil, fmt.Errorf("catalog down"))

		// when
		session.Search.OnInputChange("x")
		f.scheduler.Advance(time.Second)

		// then
		assert.Equal(t, "x", session.Search.Term())
		assert.Equal(t, initialItems, session.Search.Products())
		notifications := session.Notifications.Peek()
		require.Len(t, notifications, 1)
		assert.Equal(t, VariantError, notifications[0].Variant)
	})

	t.Run("Close cancels pending update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		f, session := setupCart(t, ctrl, DefaultConfig())

		// when
		session.Search.OnInputChange("hockey")
		session.Close()
		f.scheduler.Advance(time.Second)
		session.Search.OnInputChange("tennis")

		// then
		assert.Equal(t, "", session.Search.Term())
		assert.Equal(t, 0, f.scheduler.Pending())
	})

	t.Run("Add clicked is put on the bus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, session := setupCart(t, ctrl, DefaultConfig())
		received := []AddProduct{}
		session.Bus.OnAddProduct(func(msg AddProduct) error {
			received = append(received, msg)
			return nil
		})

		// when
		err := session.Search.OnAddClicked("A", "Hockey stick", " 19.95 ")

		// then
		require.NoError(t, err)
		require.Len(t, received, 1)
		assert.Equal(t, "A", received[0].ID)
		assert.True(t, decimal.RequireFromString("19.95").Equal(received[0].Price))
		items := session.Cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "Hockey stick", items[0].ProductName)
		assert.Equal(t, "", session.Search.Term())
	})

	t.Run("Unparsable price is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, session := setupCart(t, ctrl, DefaultConfig())

		// when
		err := session.Search.OnAddClicked("A", "Hockey stick", "abc")

		// then
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
		assert.Empty(t, session.Cart.Items())
	})

	t.Run("Negative price is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, session := setupCart(t, ctrl, DefaultConfig())

		// when
		err := session.Search.OnAddClicked("A", "Hockey stick", "-1")

		// then
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
		assert.Empty(t, session.Cart.Items())
	})
}

func TestSearchPanelWithRealTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// setup
	config := DefaultConfig()
	config.DebounceDelay = 10 * time.Millisecond
	searcher := catalog.NewInMemoryCatalog()
	registry := NewSessionRegistry(config, mytime.RealNower{}, myuuid.RealUUIDer{}, mytime.RealScheduler{}, searcher, nil, nil)
	defer registry.Close()

	session := registry.Create(context.TODO(), "acc_1")
	require.Len(t, session.Search.Products(), 10)

	// when
	session.Search.OnInputChange("tennis")
	session.Search.OnInputChange("tennis b")

	// then
	deadline := time.Now().Add(2 * time.Second)
	for len(session.Search.Products()) != 1 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, "tennis b", session.Search.Term())
	products := session.Search.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "product_tennis_balls", products[0].ID)

	// when
	session.Search.OnInputChange("hoody")
	require.NoError(t, registry.Delete(session.UID))
	time.Sleep(30 * time.Millisecond)

	// then
	assert.Equal(t, "tennis b", session.Search.Term())
}
