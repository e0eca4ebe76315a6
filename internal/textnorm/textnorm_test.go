package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairAccents(t *testing.T) {
	in := "CÔNG TY TNHH TON THÉP THANH DAT"
	want := "CÔNG TY TNHH TÔN THÉP THÀNH ĐẠT"
	assert.Equal(t, want, RepairAccents(in))
}

func TestRepairAccentsIdempotent(t *testing.T) {
	once := RepairAccents("CONG TY DONG A")
	assert.Equal(t, "CÔNG TY ĐÔNG A", once)
	assert.Equal(t, once, RepairAccents(once))
}

func TestRepairAccentsWholeWordOnly(t *testing.T) {
	// substrings inside longer tokens must stay untouched
	assert.Equal(t, "TONNE DATA THANHS", RepairAccents("TONNE DATA THANHS"))
}

func TestRepairAccentsEmpty(t *testing.T) {
	assert.Equal(t, "", RepairAccents(""))
}

func TestStripThousands(t *testing.T) {
	assert.Equal(t, "1000000", StripThousands("1.000.000"))
	assert.Equal(t, "1234567", StripThousands("1,234,567"))
	assert.Equal(t, "1234567", StripThousands("1 234 567"))
	assert.Equal(t, "", StripThousands("12a34"))
	assert.Equal(t, "", StripThousands(""))
}

func TestTrimTrailingPunct(t *testing.T) {
	assert.Equal(t, "CÔNG TY A", TrimTrailingPunct("CÔNG TY A .-- "))
	assert.Equal(t, "CÔNG TY A", TrimTrailingPunct("CÔNG TY A"))
}

func TestCanonicalDate(t *testing.T) {
	assert.Equal(t, "05/06/2023", CanonicalDate("05", "06", "23"))
	assert.Equal(t, "17/01/2026", CanonicalDate("17", "01", "2026"))
}

func TestNormalize(t *testing.T) {
	in := "a\r\nb\t\tc   d\n\n\n\ne\n----\nf"
	got := Normalize(in)
	assert.Equal(t, "a\nb c d\n\ne\n\nf", got)
}

func TestNormalizeKeepsLineStructure(t *testing.T) {
	in := "Số / No.: 080188012880\nHọ và tên / Full name:\nNGUYỄN VĂN A"
	assert.Equal(t, in, Normalize(in))
}
