package constants

// Field name literals as they appear on the documents and in the external
// extractor's JSON payload. The extraction engine keys its field maps by
// these exact strings, so they double as workbook column headers.
const (
	// Invoice (hóa đơn) fields.
	KeyInvoiceNumber = "SỐ HĐ"
	KeyInvoiceDate   = "NGÀY"
	KeyLineItems     = "NỘI DUNG"
	KeyIssuerName    = "ĐƠN VỊ XUẤT"
	KeyTotalAfterTax = "GIÁ TRỊ SAU THUẾ"

	// Identity card (CCCD) fields.
	KeyIDNumber           = "Số CCCD"
	KeyFullName           = "Họ và tên"
	KeyDateOfBirth        = "Ngày sinh"
	KeySex                = "Giới tính"
	KeyNationality        = "Quốc tịch"
	KeyPlaceOfOrigin      = "Quê quán"
	KeyPermanentResidence = "Nơi thường trú"
	KeyIssueDate          = "Ngày cấp"
	KeyIssuingAuthority   = "Nơi cấp"
)

// InvoiceFieldKeys lists the invoice fields in display/column order.
var InvoiceFieldKeys = []string{
	KeyInvoiceNumber,
	KeyInvoiceDate,
	KeyLineItems,
	KeyIssuerName,
	KeyTotalAfterTax,
}

// IdentityFieldKeys lists the identity fields in display/column order.
var IdentityFieldKeys = []string{
	KeyIDNumber,
	KeyFullName,
	KeyDateOfBirth,
	KeySex,
	KeyNationality,
	KeyPlaceOfOrigin,
	KeyPermanentResidence,
	KeyIssueDate,
	KeyIssuingAuthority,
}

// FieldKeys returns the ordered field list for a document type.
func FieldKeys(dt DocType) []string {
	if dt == DocTypeIdentity {
		return IdentityFieldKeys
	}
	return InvoiceFieldKeys
}
