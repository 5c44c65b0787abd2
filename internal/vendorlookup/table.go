// Package vendorlookup resolves the vendor of a ledger row from the invoice code
// embedded in its operation text.
package vendorlookup

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed vendors.yaml
var defaultTableYAML []byte

// LookupTable maps an invoice code prefix to a vendor display name.
// It cannot be modified after construction.
type LookupTable struct {
	entries map[string]string
}

type tableFile struct {
	Vendors map[string]string `yaml:"vendors"`
}

// NewLookupTable copies entries into a new table.
func NewLookupTable(entries map[string]string) LookupTable {
	copied := make(map[string]string, len(entries))
	for code, name := range entries {
		copied[code] = name
	}
	return LookupTable{entries: copied}
}

// DefaultLookupTable returns the table compiled into the binary.
func DefaultLookupTable() LookupTable {
	table, err := ParseLookupTable(defaultTableYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded vendor table is invalid: %v", err))
	}
	return table
}

// ParseLookupTable reads a table from YAML of the form
//
//	vendors:
//	  A0018: Drogueria Kellerhoff SA
func ParseLookupTable(data []byte) (LookupTable, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return LookupTable{}, fmt.Errorf("error parsing vendor table: %w", err)
	}
	if len(file.Vendors) == 0 {
		return LookupTable{}, fmt.Errorf("vendor table has no entries")
	}
	return NewLookupTable(file.Vendors), nil
}

// Lookup returns the vendor mapped to code.
func (t LookupTable) Lookup(code string) (string, bool) {
	name, ok := t.entries[code]
	return name, ok
}

// Len returns the number of entries.
func (t LookupTable) Len() int { return len(t.entries) }

// Codes returns the mapped codes in sorted order.
func (t LookupTable) Codes() []string {
	codes := make([]string, 0, len(t.entries))
	for code := range t.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
