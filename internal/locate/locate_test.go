package locate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumberLabelled(t *testing.T) {
	text := "HÓA ĐƠN GIÁ TRỊ GIA TĂNG\nSố (No.): 00000788\nKý hiệu: AA/23E"
	assert.Equal(t, "00000788", InvoiceNumber(text))
}

func TestInvoiceNumberKeywordNearRun(t *testing.T) {
	text := "Thanh toán HD ngay hom nay\n00001234\n"
	assert.Equal(t, "00001234", InvoiceNumber(text))
}

func TestInvoiceNumberRunAfterFirstKeyword(t *testing.T) {
	text := "Số hóa đơn nằm ở dòng dưới đây nhé bạn\n123456"
	assert.Equal(t, "123456", InvoiceNumber(text))
}

func TestInvoiceNumberAbsent(t *testing.T) {
	assert.Equal(t, "", InvoiceNumber("không có gì ở đây"))
}

func TestIdentityNumberLabelled(t *testing.T) {
	text := "Số / No.: 080188012880\nHọ và tên / Full name:"
	assert.Equal(t, "080188012880", IdentityNumber(text))
}

func TestIdentityNumberWrongLengthNearLabel(t *testing.T) {
	// 11 digits after the label is a misread, never a partial match
	text := "Số / No.: 08018801288\nHọ và tên / Full name:"
	assert.Equal(t, "", IdentityNumber(text))
}

func TestIdentityNumberFallbackWithoutSlash(t *testing.T) {
	text := "SO No: 080188012880 CĂN CƯỚC CÔNG DÂN"
	assert.Equal(t, "080188012880", IdentityNumber(text))
}

func TestIdentityNumberAbsent(t *testing.T) {
	assert.Equal(t, "", IdentityNumber("CĂN CƯỚC CÔNG DÂN"))
}

func TestInvoiceDate(t *testing.T) {
	assert.Equal(t, "05/06/2023", InvoiceDate("Ngày 05/06/2023"))
}

func TestInvoiceDateTwoDigitYear(t *testing.T) {
	assert.Equal(t, "05/06/2023", InvoiceDate("ngày 05/06/23"))
}

func TestInvoiceDateAbsent(t *testing.T) {
	assert.Equal(t, "", InvoiceDate("không ngày tháng"))
}

func TestDateOfBirthBilingualLabel(t *testing.T) {
	text := "Ngày sinh / Date of birth: 01/02/1990\nGiới tính / Sex: Nam"
	assert.Equal(t, "01/02/1990", DateOfBirth(text))
}

func TestDateOfBirthDriftedValue(t *testing.T) {
	// the printed date often lands lines below its label
	text := "Ngày sinh / Date of birth:\nGiới tính / Sex: Nam\n01/02/1990"
	assert.Equal(t, "01/02/1990", DateOfBirth(text))
}

func TestDateOfBirthVietnameseOnlyLabel(t *testing.T) {
	assert.Equal(t, "01/02/1990", DateOfBirth("Ngày sinh: 01/02/1990"))
}

func TestIssueDate(t *testing.T) {
	text := "Ngày cấp / Date of issue:\n01/03/2021"
	assert.Equal(t, "01/03/2021", IssueDate(text))
}

func TestFullNameAfterBilingualLabel(t *testing.T) {
	text := "Họ và tên / Full name:\nNGUYỄN VĂN AN\nNgày sinh / Date of birth:"
	assert.Equal(t, "NGUYỄN VĂN AN", FullName(text))
}

func TestFullNameSameLineStopsAtNextLabel(t *testing.T) {
	text := "Họ và tên / Full name: NGUYỄN VĂN AN Ngày sinh"
	assert.Equal(t, "NGUYỄN VĂN AN", FullName(text))
}

func TestFullNameFallbackWithoutColon(t *testing.T) {
	text := "Họ và tên NGUYỄN VĂN AN\nNgày sinh: 01/02/1990"
	assert.Equal(t, "NGUYỄN VĂN AN", FullName(text))
}

func TestFullNameAbsent(t *testing.T) {
	assert.Equal(t, "", FullName("không có tên"))
}

func TestSex(t *testing.T) {
	assert.Equal(t, "Nam", Sex("Giới tính / Sex: Nam"))
	assert.Equal(t, "Nữ", Sex("Giới tính: Nữ"))
}

func TestSexBareValueFallback(t *testing.T) {
	assert.Equal(t, "Nam", Sex("gioi tinh Nam"))
}

func TestNationalityUppercaseValue(t *testing.T) {
	text := "Quốc tịch / Nationality: VIỆT NAM\nQuê quán / Place of origin:"
	assert.Equal(t, "VIỆT NAM", Nationality(text))
}

func TestNationalityMixedCaseValueRejectedInWindow(t *testing.T) {
	// the window capture is uppercase-only; mixed case near the label is
	// treated as noise rather than risking a partial capture
	text := "Quốc tịch / Nationality: Việt Nam\nQuê quán / Place of origin:"
	assert.Equal(t, "", Nationality(text))
}

func TestNationalityFallback(t *testing.T) {
	assert.Equal(t, "Việt Nam", Nationality("quoc tich cua toi la Việt Nam"))
}

func TestIssuerName(t *testing.T) {
	text := "CÔNG TY TNHH TON THÉP THANH DAT\nMã số thuế: 0312345678"
	assert.Equal(t, "TNHH TON THÉP THANH DAT", IssuerName(text))
}

func TestIssuerNameAbsent(t *testing.T) {
	assert.Equal(t, "", IssuerName("không rõ thông tin"))
}

func TestIssuingAuthority(t *testing.T) {
	text := "Nơi cấp: CỤC CẢNH SÁT QUẢN LÝ HÀNH CHÍNH VỀ TRẬT TỰ XÃ HỘI\n"
	assert.Equal(t, "CỤC CẢNH SÁT QUẢN LÝ HÀNH CHÍNH VỀ TRẬT TỰ XÃ HỘI", IssuingAuthority(text))
}

func TestTotalAfterTaxCurrencySuffix(t *testing.T) {
	assert.Equal(t, "1234000", TotalAfterTax("Tổng thanh toán 1.234.000 VND"))
	assert.Equal(t, "2500000", TotalAfterTax("phải trả 2.500.000 đ"))
}

func TestTotalAfterTaxAbsent(t *testing.T) {
	assert.Equal(t, "", TotalAfterTax("không có số tiền"))
}

func TestLineItemsConsecutive(t *testing.T) {
	text := "STT Tên hàng hóa, dịch vụ\n1. Tôn lạnh màu\n2. Thép hộp 25x50\n3. Xà gồ C100\nTổng cộng 5.000.000 VND"
	want := "1. Tôn lạnh màu\n2. Thép hộp 25x50\n3. Xà gồ C100"
	assert.Equal(t, want, LineItems(text))
}

func TestLineItemsGapEndsRun(t *testing.T) {
	text := "1. Gạch men\n2. Xi măng\n4. Cát xây"
	assert.Equal(t, "1. Gạch men\n2. Xi măng", LineItems(text))
}

func TestLineItemsUndottedRows(t *testing.T) {
	text := "hàng hóa gồm\n1 Bánh tráng sữa\n2 Kẹo dừa Bến Tre"
	assert.Equal(t, "1. Bánh tráng sữa\n2. Kẹo dừa Bến Tre", LineItems(text))
}

func TestLineItemsAbsent(t *testing.T) {
	assert.Equal(t, "", LineItems("HÓA ĐƠN\nTổng cộng"))
}
