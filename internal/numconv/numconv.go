// Package numconv coerces locale-ambiguous cell values to numbers.
//
// Ledger exports mix the comma-decimal convention ("1,5") with plain dot
// decimals ("2.5"). Coercion never fails: anything that is not a number
// after normalization becomes 0.
package numconv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Coerce renders value as text, replaces every comma with a period and parses
// the result. Empty, nil and non-numeric values yield 0.
func Coerce(value any) float64 {
	d, ok := Parse(value)
	if !ok {
		return 0
	}
	return d.InexactFloat64()
}

// Parse is Coerce without the silent fallback: ok is false when the value is
// not numeric after comma normalization.
func Parse(value any) (decimal.Decimal, bool) {
	text := strings.TrimSpace(render(value))
	if text == "" {
		return decimal.Zero, false
	}
	text = strings.ReplaceAll(text, ",", ".")
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// IsZero reports whether value is numeric and exactly zero. Empty cells are not zero.
func IsZero(value any) bool {
	d, ok := Parse(value)
	return ok && d.IsZero()
}

func render(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case decimal.Decimal:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
