package consolidate_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/notas-pedidos/cmd/common"
	"fjacquet/notas-pedidos/cmd/consolidate"
	"fjacquet/notas-pedidos/cmd/root"
	"fjacquet/notas-pedidos/internal/config"
	"fjacquet/notas-pedidos/internal/container"
	"fjacquet/notas-pedidos/internal/logging"
	"fjacquet/notas-pedidos/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, flags root.CommonFlags) *bytes.Buffer {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Ledger.Delimiter = ";"
	cfg.Ledger.Encoding = "ISO-8859-1"
	cfg.Ledger.LoadedMarker = "Cargado"
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)

	original, saved := root.AppContainer, root.SharedFlags
	t.Cleanup(func() {
		root.AppContainer = original
		root.SharedFlags = saved
	})
	root.AppContainer = c
	root.SharedFlags = flags

	var out bytes.Buffer
	consolidate.Cmd.SetOut(&out)
	return &out
}

func TestConsolidateCommand_Metadata(t *testing.T) {
	assert.Equal(t, "consolidate", consolidate.Cmd.Use)
	assert.Contains(t, consolidate.Cmd.Short, "order note workbooks")
	assert.Contains(t, consolidate.Cmd.Long, "zero quantity")
	assert.NotNil(t, consolidate.Cmd.RunE)
}

func TestConsolidateCommand_NoContainer(t *testing.T) {
	original := root.AppContainer
	defer func() { root.AppContainer = original }()
	root.AppContainer = nil

	assert.ErrorIs(t, consolidate.Cmd.RunE(consolidate.Cmd, nil), common.ErrContainerNotInitialized)
}

func TestConsolidateCommand_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "report.csv")
	out := setup(t, root.CommonFlags{Input: dir, Output: filepath.Join(dir, "out.xlsx"), Report: report})

	require.NoError(t, consolidate.Cmd.RunE(consolidate.Cmd, nil))
	assert.Equal(t, "No results: nothing to export\n", out.String())
	assert.NoFileExists(t, filepath.Join(dir, "out.xlsx"))
	assert.FileExists(t, report)
}

func TestConsolidateCommand_MissingDirectory(t *testing.T) {
	setup(t, root.CommonFlags{Input: filepath.Join(t.TempDir(), "missing"), Output: "out.xlsx"})

	err := consolidate.Cmd.RunE(consolidate.Cmd, nil)
	var dirErr *parsererror.DirectoryError
	assert.True(t, errors.As(err, &dirErr))
}

func TestConsolidateCommand_SkipsUnreadableWorkbook(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.xlsx"), []byte("not a zip"), 0600))
	out := setup(t, root.CommonFlags{Input: dir, Output: filepath.Join(dir, "out.xlsx")})

	require.NoError(t, consolidate.Cmd.RunE(consolidate.Cmd, nil))
	assert.Equal(t, "No results: nothing to export\n", out.String())
}
