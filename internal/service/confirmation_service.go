package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kappucake/cakeapi/internal/domain"
	"github.com/kappucake/cakeapi/internal/ledger"
	"github.com/kappucake/cakeapi/internal/mailer"
	"github.com/kappucake/cakeapi/internal/payment"
	"github.com/kappucake/cakeapi/internal/pricing"
	"github.com/kappucake/cakeapi/pkg/errors"
)

// ConfirmationResult is returned once a payment has been verified. Notification
// outcomes never change it.
type ConfirmationResult struct {
	PaymentID    string
	AmountRupees int64
}

type confirmationService struct {
	gatewaySecret string
	mail          mailer.Sender
	adminEmail    string
	ledger        ledger.Ledger
	now           func() time.Time
	logger        *zap.Logger
}

// NewConfirmationService creates the payment verification orchestrator. The
// mail sender and ledger are optional; a nil collaborator is skipped with a
// warning instead of failing confirmations.
func NewConfirmationService(
	gatewaySecret string,
	mail mailer.Sender,
	adminEmail string,
	appendLedger ledger.Ledger,
	logger *zap.Logger,
) *confirmationService {
	return &confirmationService{
		gatewaySecret: gatewaySecret,
		mail:          mail,
		adminEmail:    adminEmail,
		ledger:        appendLedger,
		now:           time.Now,
		logger:        logger,
	}
}

// ConfirmPayment verifies the callback signature and, only on a match, fires
// the confirmation side effects. The side effects are best-effort and fail
// independently; the payment is valid regardless of notification delivery.
func (s *confirmationService) ConfirmPayment(ctx context.Context, req ConfirmPaymentRequest) (*ConfirmationResult, error) {
	if missing := missingFields(req); len(missing) > 0 {
		return nil, &errors.ErrMissingFields{Fields: missing}
	}

	if !payment.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.gatewaySecret) {
		// Security relevant: a forged or tampered callback. Nothing below this
		// line may run. The signature values themselves are not logged.
		s.logger.Warn("Payment signature verification failed",
			zap.String("gateway_order_id", req.RazorpayOrderID),
			zap.String("gateway_payment_id", req.RazorpayPaymentID),
		)
		return nil, &errors.ErrInvalidSignature{OrderID: req.RazorpayOrderID}
	}

	// Recompute the charge from the submitted intent. The client does not get
	// to state an amount at confirmation time either.
	quote, err := pricing.Quote(pricing.QuoteRequest{
		PrimaryPricePerKg:   req.OrderData.Flavour1PricePerKg,
		SecondaryPricePerKg: derefFloat(req.OrderData.Flavour2PricePerKg),
		Mixed:               req.OrderData.Mix,
		WeightKg:            req.OrderData.Weight,
	})
	if err != nil {
		return nil, &errors.ErrInvalidPayload{Reason: err.Error()}
	}

	intent := toIntent(req.OrderData)
	s.notify(ctx, intent, req.RazorpayPaymentID, quote.FinalRupees)

	return &ConfirmationResult{
		PaymentID:    req.RazorpayPaymentID,
		AmountRupees: quote.FinalRupees,
	}, nil
}

// notify fires the three confirmation side effects. Each failure is logged
// with enough context to redo manually, then swallowed: one collaborator
// being down must not block the others, and none of them may fail the
// confirmation.
func (s *confirmationService) notify(ctx context.Context, intent domain.OrderIntent, paymentID string, amountRupees int64) {
	if s.mail != nil {
		msg := mailer.CustomerConfirmation(intent, paymentID, amountRupees)
		if err := s.mail.Send(ctx, intent.Customer.Email, msg.Subject, msg.HTMLBody); err != nil {
			s.logger.Error("Failed to send customer confirmation",
				zap.String("payment_id", paymentID),
				zap.String("to", intent.Customer.Email),
				zap.Error(err),
			)
		}
	} else {
		s.logger.Warn("Mail sender not configured, skipping customer confirmation",
			zap.String("payment_id", paymentID))
	}

	if s.mail != nil && s.adminEmail != "" {
		msg := mailer.AdminNotification(intent, paymentID, amountRupees)
		if err := s.mail.Send(ctx, s.adminEmail, msg.Subject, msg.HTMLBody); err != nil {
			s.logger.Error("Failed to send admin notification",
				zap.String("payment_id", paymentID),
				zap.String("to", s.adminEmail),
				zap.Error(err),
			)
		}
	}

	if s.ledger != nil {
		row := toLedgerRow(intent, paymentID, amountRupees, s.now())
		if err := s.ledger.Append(ctx, row); err != nil {
			s.logger.Error("Failed to append ledger row",
				zap.String("payment_id", paymentID),
				zap.String("delivery_date", intent.Delivery.Date),
				zap.Error(err),
			)
		}
	} else {
		s.logger.Warn("Ledger not configured, skipping append",
			zap.String("payment_id", paymentID))
	}
}

func missingFields(req ConfirmPaymentRequest) []string {
	var missing []string
	if req.RazorpayOrderID == "" {
		missing = append(missing, "razorpay_order_id")
	}
	if req.RazorpayPaymentID == "" {
		missing = append(missing, "razorpay_payment_id")
	}
	if req.RazorpaySignature == "" {
		missing = append(missing, "razorpay_signature")
	}
	if req.OrderData.Customer.Email == "" {
		missing = append(missing, "orderData")
	}
	return missing
}

func toIntent(req CreateOrderRequest) domain.OrderIntent {
	slot := domain.DeliverySlot(req.DeliverySlot)
	if !slot.IsValid() {
		slot = domain.SlotEvening
	}

	return domain.OrderIntent{
		Customer: domain.Customer{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Email:   req.Customer.Email,
			Address: req.Customer.Address,
		},
		Delivery: domain.DeliverySchedule{
			Date:          req.DeliveryDate,
			Slot:          slot,
			PreferredTime: req.PreferredTime,
		},
		Flavours: domain.FlavourSelection{
			Primary:             req.Flavour1,
			Secondary:           req.Flavour2,
			PrimaryPricePerKg:   req.Flavour1PricePerKg,
			SecondaryPricePerKg: req.Flavour2PricePerKg,
			Mixed:               req.Mix,
		},
		WeightKg:    req.Weight,
		CakeMessage: req.Message,
	}
}

func toLedgerRow(intent domain.OrderIntent, paymentID string, amountRupees int64, confirmedAt time.Time) domain.LedgerRow {
	message := ""
	if intent.CakeMessage != nil {
		message = *intent.CakeMessage
	}

	return domain.LedgerRow{
		ConfirmedAt:  confirmedAt,
		CustomerName: intent.Customer.Name,
		Phone:        intent.Customer.Phone,
		Email:        intent.Customer.Email,
		Address:      intent.Customer.Address,
		Flavour:      intent.Flavours.FlavourLabel(),
		WeightKg:     intent.WeightKg,
		DeliveryDate: intent.Delivery.Date,
		DeliverySlot: string(intent.Delivery.Slot),
		CakeMessage:  message,
		PaymentID:    paymentID,
		AmountRupees: amountRupees,
	}
}
