package salessim

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

// AddProduct is the intent to put one unit of a product in the cart.
type AddProduct struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// Bus carries messages between the components of one session.
type Bus struct {
	sync.RWMutex
	addProductHandlers []func(msg AddProduct) error
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) OnAddProduct(handler func(msg AddProduct) error) {
	b.Lock()
	defer b.Unlock()

	b.addProductHandlers = append(b.addProductHandlers, handler)
}

// PublishAddProduct calls every handler in registration order and joins their errors.
func (b *Bus) PublishAddProduct(msg AddProduct) error {
	b.RLock()
	handlers := make([]func(msg AddProduct) error, len(b.addProductHandlers))
	copy(handlers, b.addProductHandlers)
	b.RUnlock()

	errs := []error{}
	for _, h := range handlers {
		err := h(msg)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
