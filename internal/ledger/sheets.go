// Package ledger appends confirmed orders to an external spreadsheet for
// bookkeeping. Rows are write-only from this service's point of view.
package ledger

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/kappucake/cakeapi/internal/config"
	"github.com/kappucake/cakeapi/internal/domain"
)

// Ledger records a confirmed order. Implementations must not retry; append
// failures are the caller's to log and swallow.
type Ledger interface {
	Append(ctx context.Context, row domain.LedgerRow) error
}

// SheetsLedger appends rows to a Google Sheet using a service account.
type SheetsLedger struct {
	svc           *sheets.Service
	spreadsheetID string
	appendRange   string
	logger        *zap.Logger
}

// NewSheetsLedger builds a ledger from service-account credentials on disk.
func NewSheetsLedger(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*SheetsLedger, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsLedger{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		appendRange:   cfg.Range,
		logger:        logger,
	}, nil
}

func (l *SheetsLedger) Append(ctx context.Context, row domain.LedgerRow) error {
	values := &sheets.ValueRange{
		Values: [][]interface{}{{
			row.ConfirmedAt.Format(time.RFC3339),
			row.CustomerName,
			row.Phone,
			row.Email,
			row.Address,
			row.Flavour,
			row.WeightKg,
			row.DeliveryDate,
			row.DeliverySlot,
			row.CakeMessage,
			row.PaymentID,
			row.AmountRupees,
		}},
	}

	_, err := l.svc.Spreadsheets.Values.
		Append(l.spreadsheetID, l.appendRange, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append ledger row: %w", err)
	}

	l.logger.Info("Ledger row appended",
		zap.String("payment_id", row.PaymentID),
		zap.String("delivery_date", row.DeliveryDate),
	)
	return nil
}
