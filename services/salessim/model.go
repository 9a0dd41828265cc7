package salessim

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/salessimulator/services/catalog"
)

type CartLineItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalLine   decimal.Decimal
}

type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseInFlight Phase = "in_flight"
	PhaseSettled  Phase = "settled"
)

type ConversionState struct {
	State            Phase
	SelectedCurrency string
	ExchangeRate     decimal.Decimal
	ConvertedTotal   *string
}

type SubmissionState struct {
	State        Phase
	LastOrderUID string
	LastError    string
}

type SessionSnapshot struct {
	UID              string
	CreatedAt        time.Time
	AccountContextID string
	Term             string
	Products         []catalog.Product
	Cart             []CartLineItem
	Total            decimal.Decimal
	FormattedTotal   string
	Conversion       ConversionState
	Submission       SubmissionState
	Notifications    []Notification
}

