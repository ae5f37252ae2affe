package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// generate_sample_catalog writes a small catalogue in both supported
// upload formats under data/samples, for exercising the upload and
// sync endpoints by hand.
func main() {
	dir := "data/samples"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("failed to create %s: %v", dir, err)
	}

	rows := [][]interface{}{
		{"id", "product_name", "price", "category", "sku", "stock", "image_url"},
		{"BF-001", "Steel Widget", 19.99, "Hardware", "SW-1", 25, "https://example.com/widget.png"},
		{"BF-002", "Brass Gadget", 5.50, "Hardware", "BG-2", 120, ""},
		{"BF-003", "Packing Tape", 3.00, "Supplies", "PT-3", 0, ""},
		{"", "Unlabelled Sample", "abc", "Supplies", "", "", ""},
	}

	if err := writeCSV(filepath.Join(dir, "catalog.csv"), rows); err != nil {
		log.Fatalf("failed to write CSV: %v", err)
	}

	if err := writeXLSX(filepath.Join(dir, "catalog.xlsx"), rows); err != nil {
		log.Fatalf("failed to write XLSX: %v", err)
	}

	fmt.Printf("Sample catalogue written to %s (catalog.csv, catalog.xlsx)\n", dir)
}

func writeCSV(path string, rows [][]interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(f, ",")
			}
			fmt.Fprintf(f, "%v", cell)
		}
		fmt.Fprintln(f)
	}
	return nil
}

func writeXLSX(path string, rows [][]interface{}) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := workbook.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return workbook.SaveAs(path)
}
