package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// Business constants. These must match the storefront's displayed estimate,
// so changing any of them is a coordinated front-end + back-end change.
var (
	mixPremium   = decimal.NewFromFloat(0.10) // surcharge for two-flavour cakes
	profitMargin = decimal.NewFromFloat(0.09)
	hundred      = decimal.NewFromInt(100)
	two          = decimal.NewFromInt(2)
)

// charmEndings are the allowed last-two-digit price endings, in ascending
// order. The final rupee amount is always snapped upward onto one of these.
var charmEndings = []int64{29, 49, 79, 99}

// ErrMissingRequiredField is returned when the base price or weight is
// absent, zero, negative, or not a finite number.
type ErrMissingRequiredField struct {
	Field string
}

func (e *ErrMissingRequiredField) Error() string {
	return "missing or invalid required field: " + e.Field
}

// QuoteRequest carries the customer-chosen cake parameters that drive the
// price. Prices are rupees per kg.
type QuoteRequest struct {
	PrimaryPricePerKg   float64
	SecondaryPricePerKg float64 // zero when no second flavour
	Mixed               bool
	WeightKg            float64
}

// Breakdown is the server-computed price. Recomputed on every request and
// never cached or accepted from the client.
type Breakdown struct {
	RawSubtotal     decimal.Decimal
	AfterMarkup     decimal.Decimal
	DiscountPercent int
	AmountSaved     decimal.Decimal
	FinalRupees     int64
	FinalPaise      int64
}

// Quote computes the charge for a cake. Pure and deterministic: identical
// inputs always produce the identical breakdown, which is what lets the
// storefront estimate match the charged amount exactly.
func Quote(req QuoteRequest) (Breakdown, error) {
	if !isPositiveFinite(req.PrimaryPricePerKg) {
		return Breakdown{}, &ErrMissingRequiredField{Field: "flavour1PricePerKg"}
	}
	if !isPositiveFinite(req.WeightKg) {
		return Breakdown{}, &ErrMissingRequiredField{Field: "weight"}
	}

	base := decimal.NewFromFloat(req.PrimaryPricePerKg)
	if req.Mixed && isPositiveFinite(req.SecondaryPricePerKg) {
		secondary := decimal.NewFromFloat(req.SecondaryPricePerKg)
		base = base.Add(secondary).Div(two).Mul(decimal.NewFromInt(1).Add(mixPremium))
	}

	weight := decimal.NewFromFloat(req.WeightKg)
	subtotal := base.Mul(weight)
	markup := subtotal.Mul(decimal.NewFromInt(1).Add(profitMargin))

	disc := DiscountPercent(req.WeightKg)
	after := markup.Mul(decimal.NewFromInt(int64(100 - disc))).Div(hundred)

	rupees := snapToCharm(after.Round(0).IntPart())

	return Breakdown{
		RawSubtotal:     subtotal,
		AfterMarkup:     markup,
		DiscountPercent: disc,
		AmountSaved:     markup.Sub(after),
		FinalRupees:     rupees,
		FinalPaise:      rupees * 100,
	}, nil
}

// DiscountPercent is the volume discount tier for a given weight. The gaps
// between tiers, (0, 2.5) and (4.5, 5), intentionally earn no discount.
func DiscountPercent(weightKg float64) int {
	switch {
	case weightKg >= 7:
		return 5
	case weightKg >= 5 && weightKg < 7:
		return 7
	case weightKg > 3 && weightKg <= 4.5:
		return 8
	case weightKg >= 2.5 && weightKg <= 3:
		return 9
	default:
		return 0
	}
}

// snapToCharm rounds a rupee value upward to the nearest charm ending within
// its hundred-block, rolling over to the next block's first ending when the
// block is exhausted. The result is never below the input, so the charged
// price never undercuts the computed fair price.
func snapToCharm(rupees int64) int64 {
	block := (rupees / 100) * 100
	for _, e := range charmEndings {
		if cand := block + e; cand >= rupees {
			return cand
		}
	}
	return block + 100 + charmEndings[0]
}

func isPositiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
