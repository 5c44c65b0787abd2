package textutils_test

import (
	"testing"

	"fjacquet/notas-pedidos/internal/textutils"

	"github.com/stretchr/testify/assert"
)

func TestExtractInvoiceCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{
			name:     "code longer than prefix",
			input:    "Fact.: A0018XYZ",
			expected: "A0018",
			found:    true,
		},
		{
			name:     "lower case stops the run",
			input:    "Compra Fact.: A0307xx",
			expected: "A0307",
			found:    true,
		},
		{
			name:     "trailing text after code",
			input:    "Fact.: A0018B 002",
			expected: "A0018",
			found:    true,
		},
		{
			name:     "no whitespace after marker",
			input:    "Fact.:A1114000123",
			expected: "A1114",
			found:    true,
		},
		{
			name:     "no-break space after marker",
			input:    "Fact.:\u00a0A0018B 002",
			expected: "A0018",
			found:    true,
		},
		{
			name:     "mixed spaces after marker",
			input:    "Fact.: \u00a0 A0307",
			expected: "A0307",
			found:    true,
		},
		{
			name:     "short code returned whole",
			input:    "Fact.: B12",
			expected: "B12",
			found:    true,
		},
		{
			name:  "no marker",
			input: "PD X 001",
		},
		{
			name:  "marker without code",
			input: "Fact.: ",
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := textutils.ExtractInvoiceCode(tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestSplitNameAndAccount(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantName    string
		wantAccount int64
		wantOK      bool
	}{
		{
			name:        "name with trailing account",
			input:       "Monroe Americana SA123",
			wantName:    "Monroe Americana SA",
			wantAccount: 123,
			wantOK:      true,
		},
		{
			name:        "space before account and outer whitespace",
			input:       "  Drogueria Kellerhoff SA 4567  ",
			wantName:    "Drogueria Kellerhoff SA",
			wantAccount: 4567,
			wantOK:      true,
		},
		{
			name:     "no trailing digits",
			input:    "Sin Numero",
			wantName: "Sin Numero",
		},
		{
			name:        "digits only",
			input:       "98765",
			wantName:    "",
			wantAccount: 98765,
			wantOK:      true,
		},
		{
			name:     "digits in the middle only",
			input:    "Suizo 22 Argentina",
			wantName: "Suizo 22 Argentina",
		},
		{
			name:     "account overflowing int64",
			input:    "Cofarsur 123456789012345678901234",
			wantName: "Cofarsur 123456789012345678901234",
		},
		{
			name: "empty cell",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, account, ok := textutils.SplitNameAndAccount(tt.input)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantAccount, account)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
