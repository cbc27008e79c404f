package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kappucake/cakeapi/internal/capacity"
	"github.com/kappucake/cakeapi/internal/pricing"
	"github.com/kappucake/cakeapi/internal/razorpay"
	"github.com/kappucake/cakeapi/pkg/errors"
)

const currency = "INR"

// PaymentGateway opens gateway orders for a server-computed amount.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (*razorpay.Order, error)
}

// OrderHandle is what the caller needs to start the client-side payment flow,
// plus the computed rupee amount for display.
type OrderHandle struct {
	GatewayOrderID string
	AmountPaise    int64
	Currency       string
	AmountRupees   int64
	Breakdown      pricing.Breakdown
}

type orderService struct {
	gateway  PaymentGateway
	reserver capacity.Reserver
	logger   *zap.Logger
}

// NewOrderService creates the order intake orchestrator.
func NewOrderService(gateway PaymentGateway, reserver capacity.Reserver, logger *zap.Logger) *orderService {
	return &orderService{
		gateway:  gateway,
		reserver: reserver,
		logger:   logger,
	}
}

// CreateOrder validates the intent, prices it server-side, claims a delivery
// slot, and opens a gateway order for the computed amount. Whatever total the
// client showed the customer is never forwarded to the gateway.
func (s *orderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderHandle, error) {
	if err := validateIntent(req); err != nil {
		return nil, err
	}

	quote, err := pricing.Quote(pricing.QuoteRequest{
		PrimaryPricePerKg:   req.Flavour1PricePerKg,
		SecondaryPricePerKg: derefFloat(req.Flavour2PricePerKg),
		Mixed:               req.Mix,
		WeightKg:            req.Weight,
	})
	if err != nil {
		return nil, &errors.ErrInvalidPayload{Reason: err.Error()}
	}

	if err := s.reserver.Reserve(ctx, req.DeliveryDate); err != nil {
		return nil, err
	}

	receipt := "rcpt_" + uuid.NewString()
	order, err := s.gateway.CreateOrder(ctx, quote.FinalPaise, currency, receipt)
	if err != nil {
		// Give the slot back; the booking never happened.
		if relErr := s.reserver.Release(ctx, req.DeliveryDate); relErr != nil {
			s.logger.Warn("Failed to release booking slot after gateway error",
				zap.String("delivery_date", req.DeliveryDate),
				zap.Error(relErr),
			)
		}
		return nil, &errors.ErrGatewayUnavailable{Err: err}
	}

	s.logger.Info("Order created",
		zap.String("gateway_order_id", order.ID),
		zap.Int64("amount_paise", quote.FinalPaise),
		zap.String("delivery_date", req.DeliveryDate),
	)

	return &OrderHandle{
		GatewayOrderID: order.ID,
		AmountPaise:    order.Amount,
		Currency:       order.Currency,
		AmountRupees:   quote.FinalRupees,
		Breakdown:      quote,
	}, nil
}

func validateIntent(req CreateOrderRequest) error {
	switch {
	case req.Customer.Name == "":
		return &errors.ErrInvalidPayload{Reason: "customer name is required"}
	case req.Customer.Phone == "":
		return &errors.ErrInvalidPayload{Reason: "customer phone is required"}
	case req.Customer.Email == "":
		return &errors.ErrInvalidPayload{Reason: "customer email is required"}
	case req.Customer.Address == "":
		return &errors.ErrInvalidPayload{Reason: "customer address is required"}
	case req.DeliveryDate == "":
		return &errors.ErrInvalidPayload{Reason: "delivery date is required"}
	case req.Weight <= 0:
		return &errors.ErrInvalidPayload{Reason: "weight must be positive"}
	case req.Flavour1PricePerKg <= 0:
		return &errors.ErrInvalidPayload{Reason: "flavour1PricePerKg must be positive"}
	}
	return nil
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
