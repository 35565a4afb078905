// Package loader reads the equipment workbook into a cleaned armory.Catalog.
//
// The workbook is positional: a decorative first row, a header row, then data
// rows whose fixed column ranges hold five unrelated relations side by side.
// Header text is never trusted; only its width is used to detect the optional
// spirit column.
package loader

//go:generate mockgen -destination=mock/mock_loader.go -package=loadermock github.com/KirkDiggler/build-roller/internal/loader Interface

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/build-roller/internal/entities/armory"
	"github.com/KirkDiggler/build-roller/internal/errors"
)

// Interface loads a catalog from a path
type Interface interface {
	// Load reads and cleans the source at path
	// Returns errors.NotFound if path does not resolve to a readable file
	// Returns errors.Internal for read or decode failures
	Load(ctx context.Context, path string) (*armory.Catalog, error)
}

// Loader reads CSV and XLSX workbooks
type Loader struct{}

// New creates a Loader
func New() *Loader {
	return &Loader{}
}

// Load reads the workbook at path and returns its five cleaned relations
func (l *Loader) Load(ctx context.Context, path string) (*armory.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("data path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "load canceled")
	}

	if err := checkReadable(path); err != nil {
		return nil, err
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path)
	default:
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	catalog := extract(rows)
	catalog.Source = path

	slog.Debug("Catalog loaded",
		"source", path,
		"weapons", len(catalog.Weapons),
		"offhand_items", len(catalog.OffhandItems),
		"spells", len(catalog.Spells),
		"armor_sets", len(catalog.ArmorSets),
		"spirits", len(catalog.Spirits),
	)

	return catalog, nil
}

// checkReadable maps a missing file or a directory to NotFound
func checkReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.NotFoundf("data file %q not found", path).WithMeta("path", path)
		}
		return errors.Wrapf(err, "failed to stat data file %q", path)
	}
	if info.IsDir() {
		return errors.NotFoundf("data file %q is a directory", path).WithMeta("path", path)
	}
	return nil
}

var _ Interface = (*Loader)(nil)
