package errors

import "fmt"

// ErrInvalidPayload indicates the request was missing or malformed in a way
// that makes pricing or order creation impossible.
type ErrInvalidPayload struct {
	Reason string
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid payload: %s", e.Reason)
}

// ErrMissingFields indicates a payment confirmation arrived without one or
// more of the verification fields.
type ErrMissingFields struct {
	Fields []string
}

func (e *ErrMissingFields) Error() string {
	return fmt.Sprintf("missing required fields: %v", e.Fields)
}

// ErrInvalidSignature indicates the payment signature did not match the
// expected HMAC. Security relevant: nothing downstream may run after this.
type ErrInvalidSignature struct {
	OrderID string
}

func (e *ErrInvalidSignature) Error() string {
	return fmt.Sprintf("signature verification failed for order %s", e.OrderID)
}

// ErrGatewayUnavailable indicates the payment gateway could not be reached or
// rejected the order creation request.
type ErrGatewayUnavailable struct {
	Err error
}

func (e *ErrGatewayUnavailable) Error() string {
	return fmt.Sprintf("payment gateway unavailable: %v", e.Err)
}

func (e *ErrGatewayUnavailable) Unwrap() error {
	return e.Err
}

// ErrCapacityExceeded indicates the requested delivery date is fully booked.
type ErrCapacityExceeded struct {
	Date string
}

func (e *ErrCapacityExceeded) Error() string {
	return fmt.Sprintf("no booking capacity left for %s", e.Date)
}
