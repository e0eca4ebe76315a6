package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDocType(t *testing.T) {
	cases := []struct {
		in   string
		want DocType
		ok   bool
	}{
		{"invoice", DocTypeInvoice, true},
		{"HD", DocTypeInvoice, true},
		{"hoadon", DocTypeInvoice, true},
		{"cccd", DocTypeIdentity, true},
		{" CCCD ", DocTypeIdentity, true},
		{"identity", DocTypeIdentity, true},
		{"passport", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseDocType(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestFieldKeys(t *testing.T) {
	assert.Equal(t, InvoiceFieldKeys, FieldKeys(DocTypeInvoice))
	assert.Equal(t, IdentityFieldKeys, FieldKeys(DocTypeIdentity))
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, "pdf", NormalizeExt(".PDF"))
	assert.Equal(t, "jpg", NormalizeExt("jpg"))
	assert.Equal(t, "", NormalizeExt(""))
}

func TestMapExtToFormat(t *testing.T) {
	assert.Equal(t, PDF, MapExtToFormat(".pdf"))
	assert.Equal(t, IMAGE, MapExtToFormat("JPEG"))
	assert.Equal(t, IMAGE, MapExtToFormat("png"))
	assert.Equal(t, "", MapExtToFormat(".txt"))
}
