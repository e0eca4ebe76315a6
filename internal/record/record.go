// Package record defines the fixed-shape output structures for one
// extraction: an invoice or an identity card. Every declared field is
// always present; the empty string means "not found".
package record

import (
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/constants"
)

// FieldMap is the flat field-name → value view of a record, keyed by the
// Vietnamese field literals in constants. It is what the external extractor
// returns, what persistence consumes, and what the CLI prints.
type FieldMap map[string]string

// Empty reports whether every declared field of the document type is empty.
// Undeclared keys are ignored.
func (m FieldMap) Empty(dt constants.DocType) bool {
	for _, k := range constants.FieldKeys(dt) {
		if m[k] != "" {
			return false
		}
	}
	return true
}

// Filled counts the non-empty values, useful for logging extraction yield.
func (m FieldMap) Filled() int {
	n := 0
	for _, v := range m {
		if v != "" {
			n++
		}
	}
	return n
}

// Invoice is the extracted purchase-invoice record ("hóa đơn mua vào").
type Invoice struct {
	InvoiceNumber string // SỐ HĐ
	Date          string // NGÀY, DD/MM/YYYY
	LineItems     string // NỘI DUNG, "<n>. <desc>" lines
	IssuerName    string // ĐƠN VỊ XUẤT
	TotalAfterTax string // GIÁ TRỊ SAU THUẾ, digits only
}

// Fields returns the invoice as a FieldMap with all five keys present.
func (r Invoice) Fields() FieldMap {
	return FieldMap{
		constants.KeyInvoiceNumber: r.InvoiceNumber,
		constants.KeyInvoiceDate:   r.Date,
		constants.KeyLineItems:     r.LineItems,
		constants.KeyIssuerName:    r.IssuerName,
		constants.KeyTotalAfterTax: r.TotalAfterTax,
	}
}

// InvoiceFromFields builds an Invoice from a FieldMap; missing keys become
// empty fields.
func InvoiceFromFields(m FieldMap) Invoice {
	return Invoice{
		InvoiceNumber: m[constants.KeyInvoiceNumber],
		Date:          m[constants.KeyInvoiceDate],
		LineItems:     m[constants.KeyLineItems],
		IssuerName:    m[constants.KeyIssuerName],
		TotalAfterTax: m[constants.KeyTotalAfterTax],
	}
}

// Identity is the extracted CCCD (citizen ID card) record.
type Identity struct {
	IDNumber           string // Số CCCD, exactly 12 digits when non-empty
	FullName           string // Họ và tên
	DateOfBirth        string // Ngày sinh, DD/MM/YYYY
	Sex                string // Giới tính
	Nationality        string // Quốc tịch
	PlaceOfOrigin      string // Quê quán
	PermanentResidence string // Nơi thường trú
	IssueDate          string // Ngày cấp, DD/MM/YYYY
	IssuingAuthority   string // Nơi cấp
}

// Fields returns the identity record as a FieldMap with all nine keys.
func (r Identity) Fields() FieldMap {
	return FieldMap{
		constants.KeyIDNumber:           r.IDNumber,
		constants.KeyFullName:           r.FullName,
		constants.KeyDateOfBirth:        r.DateOfBirth,
		constants.KeySex:                r.Sex,
		constants.KeyNationality:        r.Nationality,
		constants.KeyPlaceOfOrigin:      r.PlaceOfOrigin,
		constants.KeyPermanentResidence: r.PermanentResidence,
		constants.KeyIssueDate:          r.IssueDate,
		constants.KeyIssuingAuthority:   r.IssuingAuthority,
	}
}

// IdentityFromFields builds an Identity from a FieldMap.
func IdentityFromFields(m FieldMap) Identity {
	return Identity{
		IDNumber:           m[constants.KeyIDNumber],
		FullName:           m[constants.KeyFullName],
		DateOfBirth:        m[constants.KeyDateOfBirth],
		Sex:                m[constants.KeySex],
		Nationality:        m[constants.KeyNationality],
		PlaceOfOrigin:      m[constants.KeyPlaceOfOrigin],
		PermanentResidence: m[constants.KeyPermanentResidence],
		IssueDate:          m[constants.KeyIssueDate],
		IssuingAuthority:   m[constants.KeyIssuingAuthority],
	}
}
