package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kappucake/cakeapi/internal/domain"
	"github.com/kappucake/cakeapi/pkg/errors"
)

const testSecret = "rzp_test_secret"

// ---- mock mail sender ----

type sentMail struct {
	to      string
	subject string
	body    string
}

type mockSender struct {
	sent []sentMail
	err  error
}

func (m *mockSender) Send(_ context.Context, to, subject, htmlBody string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return m.err
}

// ---- mock ledger ----

type mockLedger struct {
	rows []domain.LedgerRow
	err  error
}

func (m *mockLedger) Append(_ context.Context, row domain.LedgerRow) error {
	m.rows = append(m.rows, row)
	return m.err
}

func signFor(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func validConfirmRequest() ConfirmPaymentRequest {
	return ConfirmPaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: signFor("order_abc", "pay_xyz"),
		OrderData:         validCreateRequest(),
	}
}

func TestConfirmPayment_Success(t *testing.T) {
	mail := &mockSender{}
	book := &mockLedger{}
	svc := NewConfirmationService(testSecret, mail, "orders@kappucake.in", book, zap.NewNop())

	res, err := svc.ConfirmPayment(context.Background(), validConfirmRequest())
	require.NoError(t, err)

	// Amount is recomputed from the intent, not taken from the client.
	assert.Equal(t, "pay_xyz", res.PaymentID)
	assert.Equal(t, int64(1099), res.AmountRupees)

	// Customer mail then admin mail.
	require.Len(t, mail.sent, 2)
	assert.Equal(t, "asha@example.com", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].subject, "pay_xyz")
	assert.Contains(t, mail.sent[0].body, "Asha")
	assert.Equal(t, "orders@kappucake.in", mail.sent[1].to)
	assert.Contains(t, mail.sent[1].body, "9876543210")

	require.Len(t, book.rows, 1)
	row := book.rows[0]
	assert.Equal(t, "pay_xyz", row.PaymentID)
	assert.Equal(t, "Chocolate", row.Flavour)
	assert.Equal(t, "2026-09-05", row.DeliveryDate)
	assert.Equal(t, int64(1099), row.AmountRupees)
	assert.False(t, row.ConfirmedAt.IsZero())
}

func TestConfirmPayment_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfirmPaymentRequest)
		field  string
	}{
		{"no order id", func(r *ConfirmPaymentRequest) { r.RazorpayOrderID = "" }, "razorpay_order_id"},
		{"no payment id", func(r *ConfirmPaymentRequest) { r.RazorpayPaymentID = "" }, "razorpay_payment_id"},
		{"no signature", func(r *ConfirmPaymentRequest) { r.RazorpaySignature = "" }, "razorpay_signature"},
		{"no order data", func(r *ConfirmPaymentRequest) { r.OrderData = CreateOrderRequest{} }, "orderData"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mail := &mockSender{}
			book := &mockLedger{}
			svc := NewConfirmationService(testSecret, mail, "orders@kappucake.in", book, zap.NewNop())

			req := validConfirmRequest()
			tt.mutate(&req)

			_, err := svc.ConfirmPayment(context.Background(), req)
			require.Error(t, err)

			missing, ok := err.(*errors.ErrMissingFields)
			require.True(t, ok, "expected ErrMissingFields, got %T", err)
			assert.Contains(t, missing.Fields, tt.field)

			assert.Empty(t, mail.sent)
			assert.Empty(t, book.rows)
		})
	}
}

func TestConfirmPayment_InvalidSignatureSendsNothing(t *testing.T) {
	mail := &mockSender{}
	book := &mockLedger{}
	svc := NewConfirmationService(testSecret, mail, "orders@kappucake.in", book, zap.NewNop())

	req := validConfirmRequest()
	req.RazorpaySignature = signFor("order_abc", "pay_forged")

	_, err := svc.ConfirmPayment(context.Background(), req)
	require.Error(t, err)

	_, ok := err.(*errors.ErrInvalidSignature)
	assert.True(t, ok, "expected ErrInvalidSignature, got %T", err)

	// The whole point of the check: a forged callback triggers zero side
	// effects.
	assert.Empty(t, mail.sent)
	assert.Empty(t, book.rows)
}

func TestConfirmPayment_MailFailureDoesNotBlockLedger(t *testing.T) {
	mail := &mockSender{err: fmt.Errorf("relay down")}
	book := &mockLedger{}
	svc := NewConfirmationService(testSecret, mail, "orders@kappucake.in", book, zap.NewNop())

	res, err := svc.ConfirmPayment(context.Background(), validConfirmRequest())
	require.NoError(t, err)
	assert.Equal(t, "pay_xyz", res.PaymentID)

	// Both mails were attempted despite failing, and the ledger still got
	// its row.
	assert.Len(t, mail.sent, 2)
	assert.Len(t, book.rows, 1)
}

func TestConfirmPayment_LedgerFailureDoesNotBlockConfirmation(t *testing.T) {
	mail := &mockSender{}
	book := &mockLedger{err: fmt.Errorf("quota exceeded")}
	svc := NewConfirmationService(testSecret, mail, "orders@kappucake.in", book, zap.NewNop())

	res, err := svc.ConfirmPayment(context.Background(), validConfirmRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1099), res.AmountRupees)
	assert.Len(t, mail.sent, 2)
}

func TestConfirmPayment_NilCollaboratorsStillConfirm(t *testing.T) {
	svc := NewConfirmationService(testSecret, nil, "", nil, zap.NewNop())

	res, err := svc.ConfirmPayment(context.Background(), validConfirmRequest())
	require.NoError(t, err)
	assert.Equal(t, "pay_xyz", res.PaymentID)
}
