package vendorlookup

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/notas-pedidos/internal/logging"
	"fjacquet/notas-pedidos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapRecord map[string]any

func (m mapRecord) Value(column string) (any, bool) {
	v, ok := m[column]
	return v, ok
}

type panickyRecord struct{}

func (panickyRecord) Value(string) (any, bool) { panic("broken row") }

func TestDefaultLookupTable(t *testing.T) {
	table := DefaultLookupTable()
	assert.Equal(t, 5, table.Len())
	assert.Equal(t, []string{"A0018", "A0307", "A0418", "A0567", "A1114"}, table.Codes())

	name, ok := table.Lookup("A0418")
	require.True(t, ok)
	assert.Equal(t, "Suizo Argentina SA", name)

	_, ok = table.Lookup("Z9999")
	assert.False(t, ok)
}

func TestNewLookupTable_CopiesEntries(t *testing.T) {
	entries := map[string]string{"B0001": "Uno"}
	table := NewLookupTable(entries)
	entries["B0001"] = "Changed"
	entries["B0002"] = "Dos"

	name, _ := table.Lookup("B0001")
	assert.Equal(t, "Uno", name)
	assert.Equal(t, 1, table.Len())
}

func TestParseLookupTable(t *testing.T) {
	_, err := ParseLookupTable([]byte("vendors: {}\n"))
	assert.Error(t, err)

	_, err = ParseLookupTable([]byte("vendors: [unclosed"))
	assert.Error(t, err)

	table, err := ParseLookupTable([]byte("vendors:\n  C0001: Tres\n"))
	require.NoError(t, err)
	name, ok := table.Lookup("C0001")
	require.True(t, ok)
	assert.Equal(t, "Tres", name)
}

func TestLoadLookupTable(t *testing.T) {
	table, err := LoadLookupTable("")
	require.NoError(t, err)
	assert.Equal(t, 5, table.Len())

	path := filepath.Join(t.TempDir(), "vendors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vendors:\n  D0001: Cuatro\n"), 0600))
	table, err = LoadLookupTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"D0001"}, table.Codes())

	_, err = LoadLookupTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver(DefaultLookupTable(), logging.NewMockLogger())

	tests := []struct {
		name   string
		record mapRecord
		want   any
	}{
		{
			name:   "mapped code overrides existing vendor",
			record: mapRecord{models.LedgerOperation: "Fact.: A0307xx", models.LedgerVendor: "Otro"},
			want:   "Drogueria Cofarsur SACIF",
		},
		{
			name:   "long code uses first five characters",
			record: mapRecord{models.LedgerOperation: "Compra Fact.: A0018B 002"},
			want:   "Drogueria Kellerhoff SA",
		},
		{
			name:   "unmapped code keeps existing vendor",
			record: mapRecord{models.LedgerOperation: "Fact.: Z9999", models.LedgerVendor: "Proveedor X"},
			want:   "Proveedor X",
		},
		{
			name:   "no marker keeps existing vendor",
			record: mapRecord{models.LedgerOperation: "Ajuste de stock", models.LedgerVendor: "Proveedor X"},
			want:   "Proveedor X",
		},
		{
			name:   "null operation keeps existing vendor",
			record: mapRecord{models.LedgerOperation: nil, models.LedgerVendor: "Proveedor X"},
			want:   "Proveedor X",
		},
		{
			name:   "no vendor column yields nil",
			record: mapRecord{models.LedgerOperation: "Ajuste"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.record))
		})
	}
}

func TestResolver_ResolveNeverFails(t *testing.T) {
	logger := logging.NewMockLogger()
	resolver := NewResolver(DefaultLookupTable(), logger)

	assert.Nil(t, resolver.Resolve(nil))
	assert.Nil(t, resolver.Resolve(panickyRecord{}))
	assert.Len(t, logger.GetEntriesByLevel("WARN"), 2)

	_, err := resolver.TryResolve(panickyRecord{})
	assert.ErrorContains(t, err, "broken row")
}

func TestResolver_AlternateTable(t *testing.T) {
	resolver := NewResolver(NewLookupTable(map[string]string{"A0307": "Alternativa"}), nil)
	got := resolver.Resolve(mapRecord{models.LedgerOperation: "Fact.: A0307xx"})
	assert.Equal(t, "Alternativa", got)
}
