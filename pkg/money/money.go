package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent computes part/whole as a whole-number percentage, rounded half-up.
// A non-positive whole yields 0.
func Percent(part, whole decimal.Decimal) int {
	if whole.Sign() <= 0 {
		return 0
	}
	pct := part.Div(whole).Mul(hundred)
	return int(pct.Round(0).IntPart())
}

// NonNegative clamps d at zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.Sign() < 0 {
		return decimal.Zero
	}
	return d
}

// MustParse builds a decimal from a literal. Panics on malformed input, so it
// is only for constants and test fixtures.
func MustParse(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}
