// Package report renders monthly, budget, transaction, milk, and trip
// figures as CSV sheets, singly or bundled into a zip archive.
package report

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
)

// Sheet is one tabular report. Rows are already formatted strings.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Filename is the sheet's name inside an archive or download.
func (s Sheet) Filename() string {
	return s.Name + ".csv"
}

// WriteCSV renders the sheet, header first.
func WriteCSV(w io.Writer, sheet Sheet) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(sheet.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range sheet.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteArchive bundles the sheets into a zip stream.
func WriteArchive(w io.Writer, sheets []Sheet) error {
	zw := zip.NewWriter(w)

	for _, sheet := range sheets {
		f, err := zw.Create(sheet.Filename())
		if err != nil {
			return fmt.Errorf("creating %s: %w", sheet.Filename(), err)
		}

		if err := WriteCSV(f, sheet); err != nil {
			return fmt.Errorf("rendering %s: %w", sheet.Filename(), err)
		}
	}

	return zw.Close()
}
