package salessim

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/salessimulator/lib/myerrors"
	"github.com/MarcGrol/salessimulator/lib/mylog"
	"github.com/MarcGrol/salessimulator/lib/mytime"
	"github.com/MarcGrol/salessimulator/services/catalog"
)

// SearchPanel turns keystrokes into debounced product queries and emits add-to-cart intents on the bus.
type SearchPanel struct {
	mu        *sync.Mutex
	ctx       context.Context
	traceUID  string
	delay     time.Duration
	scheduler mytime.Scheduler
	searcher  catalog.Searcher
	bus       *Bus
	sink      NotificationSink
	logger    mylog.Logger

	term       *TermSubject
	pending    mytime.Stopper
	pendingSeq int
	querySeq   int
	products   []catalog.Product
	closed     bool
}

func newSearchPanel(ctx context.Context, traceUID string, mu *sync.Mutex, delay time.Duration, scheduler mytime.Scheduler, searcher catalog.Searcher, bus *Bus, sink NotificationSink) *SearchPanel {
	p := &SearchPanel{
		mu:        mu,
		ctx:       ctx,
		traceUID:  traceUID,
		delay:     delay,
		scheduler: scheduler,
		searcher:  searcher,
		bus:       bus,
		sink:      sink,
		logger:    mylog.New("searchpanel"),
		term:      NewTermSubject(""),
		products:  []catalog.Product{},
	}
	p.term.Subscribe(p.issueQuery)

	return p
}

// OnInputChange replaces any pending term update by one that fires after the debounce delay.
func (p *SearchPanel) OnInputChange(rawText string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	if p.pending != nil {
		p.pending.Stop()
	}
	p.pendingSeq++
	seq := p.pendingSeq
	p.pending = p.scheduler.AfterFunc(p.delay, func() {
		p.activate(seq, rawText)
	})
}

func (p *SearchPanel) activate(seq int, term string) {
	p.mu.Lock()
	if p.closed || seq != p.pendingSeq {
		// superseded by a later keystroke that raced with Stop
		p.mu.Unlock()
		return
	}
	p.pending = nil
	p.mu.Unlock()

	p.term.Set(term)
}

// Refresh queries the catalog for the active term, also when it did not change.
func (p *SearchPanel) Refresh(c context.Context) {
	p.runQuery(c, p.term.Get())
}

func (p *SearchPanel) issueQuery(term string) {
	p.runQuery(p.ctx, term)
}

func (p *SearchPanel) runQuery(c context.Context, term string) {
	p.mu.Lock()
	p.querySeq++
	seq := p.querySeq
	p.mu.Unlock()

	found, err := p.searcher.Search(c, term)

	p.mu.Lock()
	defer p.mu.Unlock()

	if seq != p.querySeq {
		p.logger.Log(c, p.traceUID, mylog.SeverityDebug, "Discard results of superseded query '%s'", term)
		return
	}
	if err != nil {
		p.logger.Log(c, p.traceUID, mylog.SeverityWarn, "Error searching products with term '%s': %s", term, err)
		p.sink.Show(c, Notification{
			Title:   "Error",
			Message: "Failed to search products.",
			Variant: VariantError,
		})
		return
	}
	if found == nil {
		found = []catalog.Product{}
	}
	p.products = found
}

// OnAddClicked emits the clicked product on the bus. The panel itself does not change.
func (p *SearchPanel) OnAddClicked(id string, name string, rawPrice string) error {
	if strings.TrimSpace(id) == "" {
		return myerrors.NewInvalidInputErrorf("missing product id")
	}
	price, err := decimal.NewFromString(strings.TrimSpace(rawPrice))
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("price '%s' of product %s is not a number", rawPrice, id))
	}
	if price.IsNegative() {
		return myerrors.NewInvalidInputError(fmt.Errorf("price %s of product %s is negative", price, id))
	}

	return p.bus.PublishAddProduct(AddProduct{
		ID:    id,
		Name:  name,
		Price: price,
	})
}

func (p *SearchPanel) Term() string {
	return p.term.Get()
}

// TermSubject exposes the active term for additional observers.
func (p *SearchPanel) TermSubject() *TermSubject {
	return p.term
}

func (p *SearchPanel) Products() []catalog.Product {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.productsLocked()
}

func (p *SearchPanel) productsLocked() []catalog.Product {
	result := make([]catalog.Product, len(p.products))
	copy(result, p.products)
	return result
}

// Close cancels a pending term update.
func (p *SearchPanel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.pending != nil {
		p.pending.Stop()
		p.pending = nil
	}
}
