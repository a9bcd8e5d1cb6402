package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/thenoetrevino/billform/internal/models"
)

// WriteCSV writes the header row followed by one record per bill
func WriteCSV(w io.Writer, rows []models.BillRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(models.BillRowHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Cells()); err != nil {
			return fmt.Errorf("failed to write bill %d: %w", row.BillID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
