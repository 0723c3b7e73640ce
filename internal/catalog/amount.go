package catalog

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value as submitted by a form: either a JSON number or
// a numeric string. The raw text is kept so that unparsable input surfaces as
// a field error instead of a decoding failure.
type Amount string

// AmountOf converts a stored price to an Amount.
func AmountOf(f float64) Amount {
	return Amount(decimal.NewFromFloat(f).String())
}

// UnmarshalJSON accepts numbers, strings and null.
func (a *Amount) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*a = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(strings.TrimSpace(s))
	default:
		*a = Amount(raw)
	}
	return nil
}

// MarshalJSON writes parsable amounts as numbers.
func (a Amount) MarshalJSON() ([]byte, error) {
	if d, ok := a.Decimal(); ok {
		return []byte(d.String()), nil
	}
	if !a.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(string(a))
}

// IsSet reports whether anything other than whitespace was submitted.
func (a Amount) IsSet() bool {
	return strings.TrimSpace(string(a)) != ""
}

// Decimal parses the amount.
func (a Amount) Decimal() (decimal.Decimal, bool) {
	if !a.IsSet() {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(string(a)))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Float64 returns the parsed amount, or 0 when it does not parse.
func (a Amount) Float64() float64 {
	d, ok := a.Decimal()
	if !ok {
		return 0
	}
	f, _ := d.Float64()
	return f
}
