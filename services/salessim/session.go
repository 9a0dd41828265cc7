package salessim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MarcGrol/salessimulator/lib/myerrors"
	"github.com/MarcGrol/salessimulator/lib/mytime"
	"github.com/MarcGrol/salessimulator/lib/myuuid"
	"github.com/MarcGrol/salessimulator/services/catalog"
	"github.com/MarcGrol/salessimulator/services/currency"
	"github.com/MarcGrol/salessimulator/services/ordering"
)

// Session is one order-entry conversation. Its components share a single mutex so they act as one actor.
type Session struct {
	UID              string
	CreatedAt        time.Time
	AccountContextID string

	mu            sync.Mutex
	cancel        context.CancelFunc
	Bus           *Bus
	Search        *SearchPanel
	Cart          *CartManager
	Notifications *NotificationLog
}

func (s *Session) Snapshot() (SessionSnapshot, error) {
	s.mu.Lock()
	snapshot := SessionSnapshot{
		UID:              s.UID,
		CreatedAt:        s.CreatedAt,
		AccountContextID: s.AccountContextID,
		Term:             s.Search.Term(),
		Products:         s.Search.productsLocked(),
		Cart:             s.Cart.itemsLocked(),
		Total:            s.Cart.computeTotalLocked(),
		Conversion:       s.Cart.conversionLocked(),
		Submission:       s.Cart.submission,
		Notifications:    s.Notifications.Peek(),
	}
	s.mu.Unlock()

	formatted, err := s.Cart.config.BaseFormat.Apply(snapshot.Total)
	if err != nil {
		return SessionSnapshot{}, myerrors.NewInternalError(err)
	}
	snapshot.FormattedTotal = formatted

	return snapshot, nil
}

func (s *Session) Close() {
	s.Search.Close()
	s.cancel()
}

type SessionRegistry struct {
	sync.RWMutex
	sessions  map[string]*Session
	config    Config
	nower     mytime.Nower
	uuider    myuuid.UUIDer
	scheduler mytime.Scheduler
	searcher  catalog.Searcher
	rates     currency.RateProvider
	orders    ordering.OrderCreator
}

func NewSessionRegistry(config Config, nower mytime.Nower, uuider myuuid.UUIDer, scheduler mytime.Scheduler, searcher catalog.Searcher, rates currency.RateProvider, orders ordering.OrderCreator) *SessionRegistry {
	return &SessionRegistry{
		sessions:  map[string]*Session{},
		config:    config,
		nower:     nower,
		uuider:    uuider,
		scheduler: scheduler,
		searcher:  searcher,
		rates:     rates,
		orders:    orders,
	}
}

// Create starts a session, optionally bound to an account, and loads the initial product list.
func (r *SessionRegistry) Create(c context.Context, accountContextID string) *Session {
	sessionUID := r.uuider.Create()
	ctx, cancel := context.WithCancel(context.Background())

	notifications := NewNotificationLog(r.config.NotificationLimit)
	sink := NewFanoutSink(notifications, NewLoggingSink(sessionUID))

	session := &Session{
		UID:              sessionUID,
		CreatedAt:        r.nower.Now(),
		AccountContextID: accountContextID,
		cancel:           cancel,
		Bus:              NewBus(),
		Notifications:    notifications,
	}
	session.Search = newSearchPanel(ctx, sessionUID, &session.mu, r.config.DebounceDelay, r.scheduler, r.searcher, session.Bus, sink)
	session.Cart = newCartManager(sessionUID, &session.mu, r.rates, r.orders, sink, r.config)
	session.Bus.OnAddProduct(session.Cart.OnAddProduct)

	session.Search.Refresh(c)

	r.Lock()
	defer r.Unlock()
	r.sessions[sessionUID] = session

	return session
}

func (r *SessionRegistry) Get(sessionUID string) (*Session, error) {
	r.RLock()
	defer r.RUnlock()

	session, found := r.sessions[sessionUID]
	if !found {
		return nil, myerrors.NewNotFoundError(fmt.Errorf("session with uid %s not found", sessionUID))
	}
	return session, nil
}

func (r *SessionRegistry) Delete(sessionUID string) error {
	r.Lock()
	session, found := r.sessions[sessionUID]
	delete(r.sessions, sessionUID)
	r.Unlock()

	if !found {
		return myerrors.NewNotFoundError(fmt.Errorf("session with uid %s not found", sessionUID))
	}
	session.Close()
	return nil
}

// Close stops every session.
func (r *SessionRegistry) Close() {
	r.Lock()
	sessions := r.sessions
	r.sessions = map[string]*Session{}
	r.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
