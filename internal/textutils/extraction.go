// Package textutils decomposes composite text fields found in ledger and order sheets.
package textutils

import (
	"regexp"
	"strconv"
	"strings"
)

// InvoiceCodeLength is the number of characters of an invoice code that identify the vendor.
const InvoiceCodeLength = 5

var (
	invoiceCodePattern    = regexp.MustCompile(`Fact\.:[\s\p{Zs}]*([A-Z0-9]+)`)
	trailingNumberPattern = regexp.MustCompile(`^(.*?)(\d+)$`)
)

// ExtractInvoiceCode finds the "Fact.:" marker in an operation description and
// returns the first InvoiceCodeLength characters of the upper-case alphanumeric
// run that follows it. ok is false when there is no marker.
func ExtractInvoiceCode(operation string) (code string, ok bool) {
	if operation == "" {
		return "", false
	}
	matches := invoiceCodePattern.FindStringSubmatch(operation)
	if len(matches) < 2 {
		return "", false
	}
	code = matches[1]
	if len(code) > InvoiceCodeLength {
		code = code[:InvoiceCodeLength]
	}
	return code, true
}

// SplitNameAndAccount splits a pharmacy cell such as "Monroe Americana SA123"
// into its name and the trailing account number. hasAccount is false when the
// text does not end in digits; the trimmed text is then returned as the name.
func SplitNameAndAccount(text string) (name string, account int64, hasAccount bool) {
	text = strings.TrimSpace(text)
	matches := trailingNumberPattern.FindStringSubmatch(text)
	if len(matches) < 3 {
		return text, 0, false
	}
	account, err := strconv.ParseInt(matches[2], 10, 64)
	if err != nil {
		// digit run too long for an account number
		return text, 0, false
	}
	return strings.TrimSpace(matches[1]), account, true
}
