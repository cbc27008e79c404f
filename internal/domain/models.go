package domain

import "time"

// Customer identifies who placed the order and where it is delivered.
type Customer struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// DeliverySchedule is the requested delivery date and slot.
type DeliverySchedule struct {
	Date          string // YYYY-MM-DD
	Slot          DeliverySlot
	PreferredTime *string
}

// FlavourSelection holds the chosen flavour(s) and their per-kg rates.
// Secondary is only meaningful when Mixed is set.
type FlavourSelection struct {
	Primary             string
	Secondary           *string
	PrimaryPricePerKg   float64
	SecondaryPricePerKg *float64
	Mixed               bool
}

// OrderIntent is a customer's order as submitted, before any gateway
// interaction. It is always re-priced server-side; a client-supplied total
// is display-only and never trusted.
type OrderIntent struct {
	Customer    Customer
	Delivery    DeliverySchedule
	Flavours    FlavourSelection
	WeightKg    float64
	CakeMessage *string
}

// PaymentConfirmation is the gateway callback payload. Ephemeral: it lives
// for one verification request and is never persisted.
type PaymentConfirmation struct {
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
	Intent           OrderIntent
}

// LedgerRow is the flattened record of a confirmed order handed to the
// spreadsheet ledger. Ownership transfers on append; no local copy is kept.
type LedgerRow struct {
	ConfirmedAt  time.Time
	CustomerName string
	Phone        string
	Email        string
	Address      string
	Flavour      string
	WeightKg     float64
	DeliveryDate string
	DeliverySlot string
	CakeMessage  string
	PaymentID    string
	AmountRupees int64
}

// FlavourLabel renders the flavour selection for emails and the ledger,
// e.g. "Chocolate" or "Chocolate + Vanilla".
func (f FlavourSelection) FlavourLabel() string {
	if f.Mixed && f.Secondary != nil && *f.Secondary != "" {
		return f.Primary + " + " + *f.Secondary
	}
	return f.Primary
}
