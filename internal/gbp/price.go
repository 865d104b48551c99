package gbp

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is a unit price of a holding in pounds sterling.
type Price struct {
	amount decimal.Decimal
}

// FromDecimal wraps an amount already denominated in GBP.
func FromDecimal(amount decimal.Decimal) Price {
	return Price{amount: amount}
}

// FromString parses a scraped price string quoted in the given currency.
// GBP values pass through unchanged; GBX (pence) values are divided by 100.
// Any other currency is rejected.
//
// Scraped text is messy: thousands separators, a leading pound sign and
// trailing annotations ("23.46 GBP") are all tolerated.
func FromString(text, currency string) (Price, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	cleaned = strings.TrimPrefix(cleaned, "£")
	if fields := strings.Fields(cleaned); len(fields) > 0 {
		cleaned = fields[0]
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Price{}, fmt.Errorf("cannot parse price %q: %w", text, err)
	}

	switch currency {
	case "GBP":
		return Price{amount: amount}, nil
	case "GBX":
		return Price{amount: amount.Shift(-2)}, nil
	default:
		return Price{}, fmt.Errorf("currency %q not supported", currency)
	}
}

// Decimal returns the exact GBP amount.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// String renders the price to four significant figures for display,
// e.g. "£23.46".
func (p Price) String() string {
	return "£" + p.round(4).String()
}

func (p Price) round(sigFigs int32) decimal.Decimal {
	if p.amount.IsZero() {
		return p.amount
	}
	f, _ := p.amount.Abs().Float64()
	magnitude := int32(math.Floor(math.Log10(f)))
	return p.amount.Round(sigFigs - 1 - magnitude)
}
