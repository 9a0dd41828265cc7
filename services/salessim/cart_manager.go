package salessim

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/salessimulator/lib/myerrors"
	"github.com/MarcGrol/salessimulator/lib/mylog"
	"github.com/MarcGrol/salessimulator/lib/mymoney"
	"github.com/MarcGrol/salessimulator/services/currency"
	"github.com/MarcGrol/salessimulator/services/ordering"
)

const (
	convertFailedMessage = "Failed to convert currency."
	orderFailedMessage   = "Failed to create order."
	missingAccountText   = "This session is not bound to an account."
	orderCreatedMessage  = "Order {0} created successfully! Click to open."
	viewOrderLabel       = "View order"
)

// CartManager owns the cart of one session: aggregation, totals, currency conversion and order submission.
type CartManager struct {
	mu       *sync.Mutex
	traceUID string
	rates    currency.RateProvider
	orders   ordering.OrderCreator
	sink     NotificationSink
	config   Config
	logger   mylog.Logger

	items      []CartLineItem
	generation int
	conversion ConversionState
	submission SubmissionState
}

func newCartManager(traceUID string, mu *sync.Mutex, rates currency.RateProvider, orders ordering.OrderCreator, sink NotificationSink, config Config) *CartManager {
	return &CartManager{
		mu:       mu,
		traceUID: traceUID,
		rates:    rates,
		orders:   orders,
		sink:     sink,
		config:   config,
		logger:   mylog.New("cartmanager"),
		items:    []CartLineItem{},
		conversion: ConversionState{
			State:        PhaseIdle,
			ExchangeRate: decimal.Zero,
		},
		submission: SubmissionState{
			State: PhaseIdle,
		},
	}
}

// OnAddProduct is the bus handler for add-to-cart intents.
func (m *CartManager) OnAddProduct(msg AddProduct) error {
	return m.AddOrIncrement(msg)
}

func (m *CartManager) AddOrIncrement(product AddProduct) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.checkMutable()
	if err != nil {
		return err
	}

	m.invalidate()

	for i := range m.items {
		if m.items[i].ProductID == product.ID {
			m.items[i].Quantity++
			m.items[i].TotalLine = lineTotal(m.items[i].Quantity, m.items[i].UnitPrice)
			return nil
		}
	}

	m.items = append(m.items, CartLineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    1,
		UnitPrice:   product.Price,
		TotalLine:   product.Price,
	})
	return nil
}

// RemoveItem drops the line of productID, if any. The converted total is invalidated regardless.
func (m *CartManager) RemoveItem(productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.checkMutable()
	if err != nil {
		return err
	}

	m.invalidate()

	remaining := make([]CartLineItem, 0, len(m.items))
	for _, item := range m.items {
		if item.ProductID != productID {
			remaining = append(remaining, item)
		}
	}
	m.items = remaining
	return nil
}

func (m *CartManager) checkMutable() error {
	if m.submission.State == PhaseInFlight {
		return myerrors.NewConflictError(fmt.Errorf("cart cannot change while an order is being submitted"))
	}
	return nil
}

func (m *CartManager) invalidate() {
	m.generation++
	m.conversion.ConvertedTotal = nil
}

func lineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

func (m *CartManager) ComputeTotal() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.computeTotalLocked()
}

func (m *CartManager) computeTotalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, item := range m.items {
		total = total.Add(lineTotal(item.Quantity, item.UnitPrice))
	}
	return total
}

// FormattedTotal renders the total in the base currency.
func (m *CartManager) FormattedTotal() (string, error) {
	return m.config.BaseFormat.Apply(m.ComputeTotal())
}

func (m *CartManager) Items() []CartLineItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.itemsLocked()
}

func (m *CartManager) itemsLocked() []CartLineItem {
	result := make([]CartLineItem, len(m.items))
	copy(result, m.items)
	return result
}

func (m *CartManager) Conversion() ConversionState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.conversionLocked()
}

func (m *CartManager) conversionLocked() ConversionState {
	state := m.conversion
	if state.ConvertedTotal != nil {
		converted := *state.ConvertedTotal
		state.ConvertedTotal = &converted
	}
	return state
}

func (m *CartManager) Submission() SubmissionState {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.submission
}

// ConvertCurrency fetches the rate of target and stores the converted total formatted for the target's locale.
// Remote failures are reported as notification, not as error.
func (m *CartManager) ConvertCurrency(c context.Context, target string) error {
	code, err := mymoney.ParseCurrency(target)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	m.mu.Lock()
	if m.conversion.State == PhaseInFlight {
		m.mu.Unlock()
		return myerrors.NewConflictError(fmt.Errorf("conversion to %s is still in progress", m.conversion.SelectedCurrency))
	}
	m.conversion.State = PhaseInFlight
	m.conversion.SelectedCurrency = code
	generation := m.generation
	m.mu.Unlock()

	rate, err := m.rates.GetRate(c, code)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.conversion.State = PhaseSettled

	if err != nil {
		m.logger.Log(c, m.traceUID, mylog.SeverityWarn, "Error fetching rate for %s: %s", code, err)
		m.sink.Show(c, Notification{
			Title:   "Error",
			Message: convertFailedMessage,
			Variant: VariantError,
		})
		return nil
	}

	if generation != m.generation {
		m.logger.Log(c, m.traceUID, mylog.SeverityInfo, "Discard rate %s for %s: cart changed during conversion", rate, code)
		return nil
	}

	m.conversion.ExchangeRate = rate

	if !rate.IsPositive() {
		m.logger.Log(c, m.traceUID, mylog.SeverityWarn, "No usable rate for %s: %s", code, rate)
		if m.config.RejectNonPositiveRate {
			m.sink.Show(c, Notification{
				Title:   "Error",
				Message: fmt.Sprintf("No exchange rate available for %s.", code),
				Variant: VariantError,
			})
		}
		return nil
	}

	converted := m.computeTotalLocked().Mul(rate)
	format := mymoney.Format{
		Currency:          code,
		Locale:            m.config.Locales.LocaleFor(code),
		MinFractionDigits: 2,
		MaxFractionDigits: 2,
	}
	formatted, err := format.Apply(converted)
	if err != nil {
		m.logger.Log(c, m.traceUID, mylog.SeverityError, "Error formatting %s in %s: %s", converted, code, err)
		m.sink.Show(c, Notification{
			Title:   "Error",
			Message: convertFailedMessage,
			Variant: VariantError,
		})
		return nil
	}

	m.conversion.ConvertedTotal = &formatted
	return nil
}

// SubmitOrder sends the cart as order for the account. On success the cart is cleared and a
// notification links to the new order; on failure the cart is kept and the reason is notified.
func (m *CartManager) SubmitOrder(c context.Context, accountContextID string) error {
	m.mu.Lock()
	if m.submission.State == PhaseInFlight {
		m.mu.Unlock()
		return myerrors.NewConflictError(fmt.Errorf("order submission is still in progress"))
	}
	if accountContextID == "" {
		m.submission.LastError = missingAccountText
		m.mu.Unlock()

		m.sink.Show(c, Notification{
			Title:   "Error",
			Message: missingAccountText,
			Variant: VariantError,
		})
		return myerrors.NewInvalidInputErrorf("missing account context")
	}
	m.submission.State = PhaseInFlight
	items := m.itemsLocked()
	m.mu.Unlock()

	orderUID, err := m.orders.CreateOrder(c, ordering.CreateOrderRequest{
		AccountID: accountContextID,
		Items:     toOrderItems(items),
	})

	m.mu.Lock()
	defer m.mu.Unlock()

	m.submission.State = PhaseSettled

	if err != nil {
		msg := myerrors.UserMessage(err)
		if msg == "" {
			msg = orderFailedMessage
		}
		m.logger.Log(c, m.traceUID, mylog.SeverityWarn, "Error creating order for account %s: %s", accountContextID, err)
		m.submission.LastError = msg
		m.sink.Show(c, Notification{
			Title:   "Error",
			Message: msg,
			Variant: VariantError,
		})
		return nil
	}

	m.logger.Log(c, m.traceUID, mylog.SeverityInfo, "Order %s created for account %s", orderUID, accountContextID)

	m.submission.LastOrderUID = orderUID
	m.submission.LastError = ""
	m.items = []CartLineItem{}
	m.invalidate()

	m.sink.Show(c, Notification{
		Title:   "Success",
		Message: orderCreatedMessage,
		Variant: VariantSuccess,
		Actions: []Action{
			{
				URL:   ordering.ViewPath(orderUID),
				Label: viewOrderLabel,
			},
		},
	})
	return nil
}

func toOrderItems(items []CartLineItem) []ordering.OrderItem {
	result := make([]ordering.OrderItem, 0, len(items))
	for _, item := range items {
		result = append(result, ordering.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return result
}
