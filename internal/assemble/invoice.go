// Package assemble orchestrates the field locators over one or two OCR
// text blocks and populates a fixed-shape record. Each field is attempted
// independently; a locator coming up empty never blocks the others, and a
// value set by a higher-priority tier is never overwritten.
package assemble

import (
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/locate"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/record"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/textnorm"
)

// Invoice runs the deterministic invoice pipeline over a single OCR
// transcript. Accent repair is applied to the issuer name only; numeric and
// date fields pass through untouched.
func Invoice(text string) record.Invoice {
	if text == "" {
		return record.Invoice{}
	}
	return record.Invoice{
		InvoiceNumber: locate.InvoiceNumber(text),
		Date:          locate.InvoiceDate(text),
		LineItems:     locate.LineItems(text),
		IssuerName:    textnorm.RepairAccents(locate.IssuerName(text)),
		TotalAfterTax: locate.TotalAfterTax(text),
	}
}
