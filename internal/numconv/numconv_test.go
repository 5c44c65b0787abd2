package numconv_test

import (
	"math"
	"testing"

	"fjacquet/notas-pedidos/internal/numconv"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{name: "comma decimal", input: "1,5", expected: 1.5},
		{name: "dot decimal", input: "2.5", expected: 2.5},
		{name: "integer text", input: "42", expected: 42},
		{name: "negative comma decimal", input: "-3,25", expected: -3.25},
		{name: "surrounding whitespace", input: "  7,0 ", expected: 7},
		{name: "non numeric", input: "abc", expected: 0},
		{name: "empty string", input: "", expected: 0},
		{name: "nil", input: nil, expected: 0},
		{name: "symbol", input: "$", expected: 0},
		{name: "thousands and decimal comma is not a number", input: "1.234,56", expected: 0},
		{name: "float input", input: 12.75, expected: 12.75},
		{name: "int input", input: 9, expected: 9},
		{name: "int64 input", input: int64(7791234567890), expected: 7791234567890},
		{name: "decimal input", input: decimal.RequireFromString("0.1"), expected: 0.1},
		{name: "NaN is not a number", input: math.NaN(), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, numconv.Coerce(tt.input))
		})
	}
}

func TestCoerce_Idempotent(t *testing.T) {
	for _, input := range []any{"1,5", "2.5", "abc", "", 0.1, 1e-7, 123456789.125, -0.5} {
		once := numconv.Coerce(input)
		assert.Equal(t, once, numconv.Coerce(once), "input %v", input)
	}
}

func TestIsZero(t *testing.T) {
	assert.True(t, numconv.IsZero("0"))
	assert.True(t, numconv.IsZero("0,00"))
	assert.True(t, numconv.IsZero(0.0))
	assert.False(t, numconv.IsZero(""))
	assert.False(t, numconv.IsZero(nil))
	assert.False(t, numconv.IsZero("abc"))
	assert.False(t, numconv.IsZero("1"))
}
