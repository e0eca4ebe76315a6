package constants

import "strings"

// DocType identifies one of the two supported document layouts.
type DocType string

// Stable values (store these exact strings in DB and job records).
const (
	DocTypeInvoice  DocType = "invoice"
	DocTypeIdentity DocType = "identity"
)

// ParseDocType maps user input to a DocType. Accepts the Vietnamese
// shorthand "cccd" for the identity card.
func ParseDocType(s string) (DocType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "invoice", "hoadon", "hd":
		return DocTypeInvoice, true
	case "identity", "id", "cccd":
		return DocTypeIdentity, true
	}
	return "", false
}
