package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kappucake/cakeapi/internal/service"
	"github.com/kappucake/cakeapi/pkg/errors"
)

// OrderCreator prices an intent and opens a gateway order.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req service.CreateOrderRequest) (*service.OrderHandle, error)
}

// PaymentConfirmer verifies a payment callback and fires notifications.
type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, req service.ConfirmPaymentRequest) (*service.ConfirmationResult, error)
}

// GatewayOrderResponse mirrors what the checkout widget needs to open payment.
type GatewayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
}

// CreateOrderResponse is the success envelope for POST /create-order.
type CreateOrderResponse struct {
	Success      bool                 `json:"success"`
	Order        GatewayOrderResponse `json:"order"`
	AmountRupees int64                `json:"amountRupees"`
}

// HandleCreateOrder handles POST /create-order
func HandleCreateOrder(orders OrderCreator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "invalid_payload",
			})
			return
		}

		handle, err := orders.CreateOrder(c.Request.Context(), req)
		if err != nil {
			writeError(c, err, logger)
			return
		}

		c.JSON(http.StatusOK, CreateOrderResponse{
			Success: true,
			Order: GatewayOrderResponse{
				ID:       handle.GatewayOrderID,
				Amount:   handle.AmountPaise,
				Currency: handle.Currency,
			},
			AmountRupees: handle.AmountRupees,
		})
	}
}

// HandleVerifyAndEmail handles POST /verify-and-email
func HandleVerifyAndEmail(confirmer PaymentConfirmer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ConfirmPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "invalid_payload",
			})
			return
		}

		if _, err := confirmer.ConfirmPayment(c.Request.Context(), req); err != nil {
			writeError(c, err, logger)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// writeError maps typed service errors onto the {success:false, error} wire
// envelope. Internals are logged, never returned.
func writeError(c *gin.Context, err error, logger *zap.Logger) {
	switch err.(type) {
	case *errors.ErrInvalidPayload:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid_payload"})
	case *errors.ErrMissingFields:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing_fields"})
	case *errors.ErrInvalidSignature:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid_signature"})
	case *errors.ErrCapacityExceeded:
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "capacity_exceeded"})
	case *errors.ErrGatewayUnavailable:
		logger.Error("Payment gateway call failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "gateway_unavailable"})
	default:
		logger.Error("Unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal_error"})
	}
}
