package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kappucake/cakeapi/internal/pricing"
)

// Support tool: cross-check what a customer was (or will be) charged for a
// given cake without touching the running service.
func main() {
	weight := flag.Float64("weight", 0, "cake weight in kg")
	price1 := flag.Float64("price1", 0, "primary flavour price per kg (rupees)")
	price2 := flag.Float64("price2", 0, "secondary flavour price per kg (rupees, optional)")
	mix := flag.Bool("mix", false, "mix two flavours")
	flag.Parse()

	if *weight == 0 || *price1 == 0 {
		fmt.Println("Usage: price-quote -weight 1.5 -price1 999 [-price2 899 -mix]")
		os.Exit(1)
	}

	b, err := pricing.Quote(pricing.QuoteRequest{
		PrimaryPricePerKg:   *price1,
		SecondaryPricePerKg: *price2,
		Mixed:               *mix,
		WeightKg:            *weight,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to price: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Subtotal:        ₹%s\n", b.RawSubtotal.StringFixed(2))
	fmt.Printf("After markup:    ₹%s\n", b.AfterMarkup.StringFixed(2))
	fmt.Printf("Volume discount: %d%% (saves ₹%s)\n", b.DiscountPercent, b.AmountSaved.StringFixed(2))
	fmt.Printf("Final price:     ₹%d (%d paise)\n", b.FinalRupees, b.FinalPaise)
}
