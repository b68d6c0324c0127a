// Package xlsx reads and writes the Excel workbooks the application
// exchanges with its users: the two-sheet import/export format and the
// bilingual template. The spreadsheet library is consumed as a black
// box; everything domain-specific (sheet heuristics, header order,
// row-to-map conversion) lives here.
package xlsx

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"ledgerdesk/arap/internal/apperrors"
	"ledgerdesk/arap/internal/logging"
)

// Sheet names used by the template and by export.
const (
	SheetReceivable = "应收账款"
	SheetPayable    = "应付账款"
)

// ImportResult carries the raw rows read from a workbook, keyed by their
// header cells. Normalization happens downstream.
type ImportResult struct {
	SourceFile     string
	ReceivableRows []map[string]any
	PayableRows    []map[string]any
}

// ParseFile reads a workbook and extracts the receivable and payable
// sheets. The receivable sheet is the first whose name contains "应收" or
// "receivable", falling back to the first sheet; the payable sheet is
// the first containing "应付" or "payable", falling back to the second
// sheet if one exists, else no payable rows. A file the spreadsheet
// library cannot open surfaces as an ImportError and leaves any
// persisted state untouched.
func ParseFile(path string, log logging.Logger) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &apperrors.ImportError{FilePath: path, Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("failed to close workbook")
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &apperrors.ImportError{FilePath: path, Err: fmt.Errorf("workbook has no sheets")}
	}

	receivableSheet := findSheet(sheets, "应收", "receivable")
	if receivableSheet == "" {
		receivableSheet = sheets[0]
	}
	payableSheet := findSheet(sheets, "应付", "payable")
	if payableSheet == "" && len(sheets) > 1 && sheets[1] != receivableSheet {
		payableSheet = sheets[1]
	}

	result := &ImportResult{SourceFile: filepath.Base(path)}
	result.ReceivableRows, err = sheetRows(f, receivableSheet)
	if err != nil {
		return nil, &apperrors.ImportError{FilePath: path, Err: err}
	}
	if payableSheet != "" {
		result.PayableRows, err = sheetRows(f, payableSheet)
		if err != nil {
			return nil, &apperrors.ImportError{FilePath: path, Err: err}
		}
	}

	log.Info("workbook parsed",
		logging.F("file", path),
		logging.F("receivable_rows", len(result.ReceivableRows)),
		logging.F("payable_rows", len(result.PayableRows)))
	return result, nil
}

// ValidateFormat reports whether the file is a workbook the importer can
// read. IO-level failures are returned as errors; an unreadable or
// sheetless workbook is simply invalid.
func ValidateFormat(path string) (bool, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return false, nil
	}
	defer func() { _ = f.Close() }()
	return len(f.GetSheetList()) > 0, nil
}

func findSheet(sheets []string, substrings ...string) string {
	for _, name := range sheets {
		lower := strings.ToLower(name)
		for _, sub := range substrings {
			if strings.Contains(lower, sub) {
				return name
			}
		}
	}
	return ""
}

// sheetRows reads row 1 as headers and every following non-empty row as
// a header-keyed map. Cells under a blank header are dropped.
func sheetRows(f *excelize.File, sheet string) ([]map[string]any, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	headers := rows[0]
	var result []map[string]any
	for _, cells := range rows[1:] {
		row := make(map[string]any)
		empty := true
		for i, cell := range cells {
			if i >= len(headers) || strings.TrimSpace(headers[i]) == "" {
				continue
			}
			if strings.TrimSpace(cell) == "" {
				continue
			}
			row[strings.TrimSpace(headers[i])] = cell
			empty = false
		}
		if !empty {
			result = append(result, row)
		}
	}
	return result, nil
}
