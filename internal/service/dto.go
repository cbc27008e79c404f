package service

// CreateOrderRequest is the order intake payload. The client may display its
// own estimate but every field here is re-priced server-side. Validation
// lives in the services, not in binding tags: the same shape arrives both at
// order intake (where everything is required) and nested in a payment
// callback (where a missing intent must map to the missing-fields error).
type CreateOrderRequest struct {
	Weight             float64      `json:"weight"`
	Flavour1           string       `json:"flavour1"`
	Flavour2           *string      `json:"flavour2,omitempty"`
	Flavour1PricePerKg float64      `json:"flavour1PricePerKg"`
	Flavour2PricePerKg *float64     `json:"flavour2PricePerKg,omitempty"`
	Mix                bool         `json:"mix"`
	Customer           CustomerInfo `json:"customer"`
	DeliveryDate       string       `json:"deliveryDate"`
	DeliverySlot       string       `json:"deliverySlot"`
	PreferredTime      *string      `json:"preferredTime,omitempty"`
	Message            *string      `json:"message,omitempty"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ConfirmPaymentRequest is the gateway callback relayed by the client after
// checkout. Field names follow the gateway's callback payload.
type ConfirmPaymentRequest struct {
	RazorpayOrderID   string             `json:"razorpay_order_id"`
	RazorpayPaymentID string             `json:"razorpay_payment_id"`
	RazorpaySignature string             `json:"razorpay_signature"`
	OrderData         CreateOrderRequest `json:"orderData"`
}
