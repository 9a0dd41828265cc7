package ordering

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusCreated   = "created"
	StatusConfirmed = "confirmed"
)

type CreateOrderRequest struct {
	AccountID string
	Items     []OrderItem
}

type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

type CreateOrderResponse struct {
	OrderUID string
	ViewURL  string
}

// Order is persisted; amounts are kept as decimal strings so every store backend can hold them.
type Order struct {
	UID          string
	CreatedAt    time.Time
	LastModified *time.Time
	AccountID    string
	Status       string
	Lines        []OrderLine
	TotalAmount  string
}

type OrderLine struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   string
	TotalLine   string
}

type OrderView struct {
	Order
	FormattedTotal string
}

// ViewPath is the deep link under which a created order can be opened.
func ViewPath(orderUID string) string {
	return fmt.Sprintf("/order/%s/view", orderUID)
}
