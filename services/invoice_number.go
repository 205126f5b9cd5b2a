package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// formatInvoiceNumber constructs the invoice number string from components.
func formatInvoiceNumber(year int, sequence int) string {
	return fmt.Sprintf("INV-%d-%04d", year, sequence)
}

// GenerateInvoiceNumber creates the next invoice number.
// Format: INV-{year}-{sequence}
// - year: calendar year of the invoice date
// - sequence: 4-digit zero-padded, restarting at 1 each year
func GenerateInvoiceNumber(app *pocketbase.PocketBase, now time.Time) (string, error) {
	year := now.Year()
	prefix := fmt.Sprintf("INV-%d-", year)

	existing, err := app.FindRecordsByFilter(
		"invoices",
		"invoice_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{
			"prefix": prefix + "%",
		},
	)
	if err != nil {
		// If collection doesn't exist or no records, start at 1
		existing = nil
	}

	return formatInvoiceNumber(year, len(existing)+1), nil
}
