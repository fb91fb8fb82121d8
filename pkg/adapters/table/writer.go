package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aretw0/dfasim/pkg/domain"
	"github.com/xuri/excelize/v2"
)

// WriteCSV writes def as a CSV transition table.
func WriteCSV(w io.Writer, def domain.Definition) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(Grid(def)); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// SaveWorkbook writes def to an .xlsx file on its first sheet.
func SaveWorkbook(path string, def domain.Definition) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".xlsx" {
		return fmt.Errorf("workbooks must use the .xlsx extension, got %q", ext)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range Grid(def) {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cellName, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
