// Package export writes the listed bills to CSV or PDF files
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/billform/internal/models"
)

// Format is an export file format
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// DefaultBaseName is the file name used when the user does not pick one
const DefaultBaseName = "bills"

// ParseFormat converts a user-supplied format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV, "":
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (expected csv or pdf)", s)
	}
}

// FormatForPath picks the format from a file extension, defaulting to CSV
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return FormatPDF
	}
	return FormatCSV
}

// DefaultPath is bills.csv or bills.pdf inside dir
func DefaultPath(dir string, format Format) string {
	return filepath.Join(dir, DefaultBaseName+"."+string(format))
}

// ToFile creates (or truncates) path and writes rows in the given format.
// Rows are written exactly as given, so callers pass the currently
// displayed (possibly filtered) rows.
func ToFile(path string, format Format, rows []models.BillRow) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close export file: %w", closeErr)
		}
	}()

	switch format {
	case FormatPDF:
		return WritePDF(f, rows)
	default:
		return WriteCSV(f, rows)
	}
}
