// Package export serializes the ledger to CSV and drives the file-write
// and share collaborators at the boundary of the export flow.
package export

import (
	"strings"

	"fintrack/internal/core"
)

// Header is the literal first line of every export.
const Header = "Date,Description,Amount,Type,Category"

// RenderCSV serializes the snapshot in the order given (the ledger's
// current order, newest first), one \n-terminated line per record.
//
// The format is intentionally loose rather than RFC 4180: the description
// is wrapped in double quotes verbatim, with no escaping of embedded quotes
// or commas, and no other field is quoted at all. Consumers of these files
// expect exactly this shape.
func RenderCSV(items []core.Transaction) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, tx := range items {
		b.WriteString(tx.Date.ISO())
		b.WriteString(`,"`)
		b.WriteString(tx.Description)
		b.WriteString(`",`)
		b.WriteString(tx.Amount.DecimalString())
		b.WriteByte(',')
		b.WriteString(string(tx.Type))
		b.WriteByte(',')
		b.WriteString(tx.Category)
		b.WriteByte('\n')
	}
	return b.String()
}
