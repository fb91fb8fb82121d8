package table

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/xuri/excelize/v2"
)

// Loader implements ports.DefinitionLoader for .csv and .xlsx transition tables.
type Loader struct {
	path  string
	sheet string
	comma rune
}

// Option configures the Loader.
type Option func(*Loader)

// WithSheet selects a worksheet by name. The first sheet is used otherwise.
func WithSheet(name string) Option {
	return func(l *Loader) {
		l.sheet = name
	}
}

// WithComma sets the CSV field delimiter (default ',').
func WithComma(r rune) Option {
	return func(l *Loader) {
		l.comma = r
	}
}

// NewLoader creates a loader for the table at path.
func NewLoader(path string, opts ...Option) *Loader {
	l := &Loader{path: path, comma: ','}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Supports reports whether path has an extension this package reads.
func Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx", ".xlsm":
		return true
	}
	return false
}

// Load reads the grid and parses it.
func (l *Loader) Load(ctx context.Context) (*domain.Definition, error) {
	if _, err := os.Stat(l.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.SourceUnavailableError{Source: l.path, Err: err}
		}
		return nil, fmt.Errorf("failed to stat table: %w", err)
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".csv":
		rows, err = l.readCSV()
	case ".xlsx", ".xlsm":
		rows, err = l.readWorkbook()
	default:
		return nil, fmt.Errorf("unsupported table format %q", filepath.Ext(l.path))
	}
	if err != nil {
		return nil, err
	}

	def, err := Parse(rows)
	if err != nil {
		return nil, err
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(l.path), filepath.Ext(l.path))
	}
	return def, nil
}

func (l *Loader) readCSV() ([][]string, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = l.comma
	r.FieldsPerRecord = -1 // ragged rows are normal in hand-edited tables
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.path, err)
	}
	return rows, nil
}

func (l *Loader) readWorkbook() ([][]string, error) {
	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", l.path, err)
	}
	defer f.Close()

	sheet := l.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", l.path)
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, &domain.SourceUnavailableError{Source: l.path + "#" + sheet}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
