package vendorlookup

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/notas-pedidos/internal/fileutils"
)

// FindTableFile looks for a vendor table override in the usual locations:
// the given path, ./config, and ~/.notas-pedidos.
func FindTableFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".notas-pedidos", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadLookupTable returns the table stored in filename, or the default table
// when filename is empty.
func LoadLookupTable(filename string) (LookupTable, error) {
	if filename == "" {
		return DefaultLookupTable(), nil
	}

	path, err := FindTableFile(filename)
	if err != nil {
		return LookupTable{}, fmt.Errorf("vendor table %s not found: %w", filename, err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return LookupTable{}, fmt.Errorf("error reading vendor table: %w", err)
	}
	return ParseLookupTable(data)
}
