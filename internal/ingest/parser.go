package ingest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"befach-store/internal/model"

	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row keyed by the source file's header labels.
type Row map[string]string

// Parse converts an uploaded catalogue file into rows. The format is
// derived from the filename extension: .csv, or .xlsx/.xls for Excel
// workbooks. Any other extension fails with ErrInvalidFileType.
func Parse(data []byte, filename string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(data), nil
	case ".xlsx", ".xls":
		return parseExcel(data)
	default:
		return nil, model.ErrInvalidFileType
	}
}

// parseCSV splits on single commas with one layer of surrounding quotes
// stripped. Delimiters or newlines embedded inside quoted values are not
// supported; supplier exports are expected to keep cells delimiter-free.
func parseCSV(data []byte) []Row {
	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 {
		return nil
	}

	headers := splitCSVLine(lines[0])

	var rows []Row
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := splitCSVLine(line)
		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = values[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}

func splitCSVLine(line string) []string {
	cells := strings.Split(line, ",")
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		cell = strings.TrimPrefix(cell, `"`)
		cell = strings.TrimSuffix(cell, `"`)
		cells[i] = cell
	}
	return cells
}

// parseExcel reads the first sheet of a workbook; the first row supplies
// the header labels, every later row becomes one Row. Fully blank rows
// are skipped.
func parseExcel(data []byte) ([]Row, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	sheetRows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(sheetRows) == 0 {
		return nil, nil
	}

	headers := sheetRows[0]

	var rows []Row
	for _, cells := range sheetRows[1:] {
		if isBlankRow(cells) {
			continue
		}

		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(cells) {
				row[header] = strings.TrimSpace(cells[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func isBlankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
