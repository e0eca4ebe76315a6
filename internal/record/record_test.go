package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/constants"
)

func TestParseFieldMapFillsMissingKeys(t *testing.T) {
	raw := []byte(`{"SỐ HĐ": "00000788", "NGÀY": "05/06/2023"}`)
	m, err := ParseFieldMap(constants.DocTypeInvoice, raw)
	require.NoError(t, err)

	assert.Len(t, m, len(constants.InvoiceFieldKeys))
	assert.Equal(t, "00000788", m[constants.KeyInvoiceNumber])
	assert.Equal(t, "05/06/2023", m[constants.KeyInvoiceDate])
	assert.Equal(t, "", m[constants.KeyLineItems])
	assert.Equal(t, "", m[constants.KeyIssuerName])
	assert.Equal(t, "", m[constants.KeyTotalAfterTax])
}

func TestParseFieldMapDropsUnknownKeys(t *testing.T) {
	raw := []byte(`{"SỐ HĐ": "1234", "ghi chú": "bỏ qua"}`)
	m, err := ParseFieldMap(constants.DocTypeInvoice, raw)
	require.NoError(t, err)

	_, ok := m["ghi chú"]
	assert.False(t, ok)
}

func TestParseFieldMapCoercesScalars(t *testing.T) {
	raw := []byte(`{"GIÁ TRỊ SAU THUẾ": 1234000, "SỐ HĐ": null, "NGÀY": "  05/06/2023  "}`)
	m, err := ParseFieldMap(constants.DocTypeInvoice, raw)
	require.NoError(t, err)

	assert.Equal(t, "1234000", m[constants.KeyTotalAfterTax])
	assert.Equal(t, "", m[constants.KeyInvoiceNumber])
	assert.Equal(t, "05/06/2023", m[constants.KeyInvoiceDate])
}

func TestParseFieldMapInvalidJSON(t *testing.T) {
	_, err := ParseFieldMap(constants.DocTypeInvoice, []byte("```json"))
	assert.Error(t, err)
}

func TestFieldMapEmpty(t *testing.T) {
	assert.True(t, FieldMap{}.Empty(constants.DocTypeInvoice))
	assert.True(t, FieldMap{"khác": "x"}.Empty(constants.DocTypeInvoice))
	assert.False(t, FieldMap{constants.KeyInvoiceNumber: "1234"}.Empty(constants.DocTypeInvoice))
}

func TestFieldMapFilled(t *testing.T) {
	m := FieldMap{
		constants.KeyInvoiceNumber: "1234",
		constants.KeyInvoiceDate:   "",
		constants.KeyIssuerName:    "CÔNG TY A",
	}
	assert.Equal(t, 2, m.Filled())
}

func TestInvoiceFieldsRoundTrip(t *testing.T) {
	inv := Invoice{
		InvoiceNumber: "00000788",
		Date:          "05/06/2023",
		LineItems:     "1. Tôn lạnh màu",
		IssuerName:    "CÔNG TY TNHH TÔN THÉP THÀNH ĐẠT",
		TotalAfterTax: "1234000",
	}
	assert.Equal(t, inv, InvoiceFromFields(inv.Fields()))
}

func TestIdentityFieldsRoundTrip(t *testing.T) {
	card := Identity{
		IDNumber:    "080188012880",
		FullName:    "NGUYỄN VĂN AN",
		DateOfBirth: "01/02/1990",
		Sex:         "Nam",
		Nationality: "Việt Nam",
	}
	assert.Equal(t, card, IdentityFromFields(card.Fields()))
}
