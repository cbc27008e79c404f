package capacity

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/kappucake/cakeapi/pkg/errors"
)

// PostgresReserver persists per-date booking counters, so capacity survives
// restarts and is shared by every running instance.
//
// Expected schema:
//
//	CREATE TABLE daily_bookings (
//	    delivery_date DATE PRIMARY KEY,
//	    booked        INT NOT NULL DEFAULT 0
//	);
type PostgresReserver struct {
	db        *sql.DB
	maxPerDay int
	logger    *zap.Logger
}

// NewPostgresReserver creates a postgres-backed reserver bounded by maxPerDay.
func NewPostgresReserver(db *sql.DB, maxPerDay int, logger *zap.Logger) *PostgresReserver {
	return &PostgresReserver{
		db:        db,
		maxPerDay: maxPerDay,
		logger:    logger,
	}
}

func (r *PostgresReserver) Reserve(ctx context.Context, date string) error {
	// Single statement so the bounded increment is atomic under concurrent
	// requests for the same date.
	query := `
		INSERT INTO daily_bookings (delivery_date, booked)
		VALUES ($1, 1)
		ON CONFLICT (delivery_date)
		DO UPDATE SET booked = daily_bookings.booked + 1
		WHERE daily_bookings.booked < $2
		RETURNING booked
	`

	var booked int
	err := r.db.QueryRowContext(ctx, query, date, r.maxPerDay).Scan(&booked)
	if err == sql.ErrNoRows {
		return &errors.ErrCapacityExceeded{Date: date}
	}
	if err != nil {
		r.logger.Error("Failed to reserve booking slot", zap.Error(err))
		return err
	}

	return nil
}

func (r *PostgresReserver) Release(ctx context.Context, date string) error {
	query := `
		UPDATE daily_bookings
		SET booked = booked - 1
		WHERE delivery_date = $1 AND booked > 0
	`

	if _, err := r.db.ExecContext(ctx, query, date); err != nil {
		r.logger.Error("Failed to release booking slot", zap.Error(err))
		return err
	}

	return nil
}
