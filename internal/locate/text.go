package locate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/textnorm"
)

var reHasLetter = regexp.MustCompile(`[A-Za-zÀ-ỹ]`)

// Name fields on the card are printed in uppercase Vietnamese; the capture
// stops at a newline or at the next field's keyword.
var (
	nameLabel = regexp.MustCompile(`(?i)(?:Họ và tên|HỌ VÀ TÊN|Họ, chữ đệm và tên|Full name|Name)\s*[/\\]?\s*(?:Full name|Name)?\s*:`)

	nameInWindow = regexp.MustCompile(`([A-ZÀ-Ỹ][A-ZÀ-Ỹ\s]{5,50}?)(?:\n|Ngày|Date|Giới|Sex|Gender|$)`)

	nameFallbacks = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Họ và tên|HỌ VÀ TÊN|Họ, chữ đệm và tên)[\s:]*([A-ZÀ-Ỹ][A-ZÀ-Ỹ\s]+?)(?:\n|Ngày)`),
		regexp.MustCompile(`(?i)(?:Full name|Name)[\s:]*([A-ZÀ-Ỹ][A-ZÀ-Ỹ\s]+?)(?:\n|Date)`),
	}
)

// FullName extracts the holder's name from the card front.
func FullName(text string) string {
	if loc := nameLabel.FindStringIndex(text); loc != nil {
		if m := nameInWindow.FindStringSubmatch(sliceAfter(text, loc[1], 150)); m != nil {
			return strings.TrimSpace(m[1])
		}
		return ""
	}
	for _, re := range nameFallbacks {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// Sex and nationality are closed vocabularies; matching is label-anchored
// with a small window.
var (
	sexLabel     = regexp.MustCompile(`(?i)(?:Giới tính|Sex|Gender)\s*[/\\]?\s*(?:Sex|Gender)?\s*:`)
	sexValue     = regexp.MustCompile(`(?i)\s*((?:Nam|Nữ|Male|Female|NAM|NỮ))`)
	sexFallbacks = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Giới tính|Sex|Gender)[\s:]*((?:Nam|Nữ|Male|Female|NAM|NỮ))`),
		regexp.MustCompile(`(?i)(Nam|Nữ|Male|Female)`),
	}
)

// Sex extracts the sex field ("Nam"/"Nữ", or the English equivalents when
// the Vietnamese print was misread).
func Sex(text string) string {
	if loc := sexLabel.FindStringIndex(text); loc != nil {
		if m := sexValue.FindStringSubmatch(sliceAfter(text, loc[1], 50)); m != nil {
			return strings.TrimSpace(m[1])
		}
		return ""
	}
	for _, re := range sexFallbacks {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

var (
	nationalityLabel    = regexp.MustCompile(`(?i)(?:Quốc tịch|Nationality)\s*[/\\]?\s*(?:Nationality)?\s*:`)
	nationalityInWindow = regexp.MustCompile(`\s*([A-ZÀ-Ỹ\s]{2,50}?)(?:\n|Quê|Place|Origin|$)`)
	nationalityFallbacks = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Quốc tịch|Nationality)[\s:]*([A-ZÀ-Ỹ\s]+?)(?:\n|Quê)`),
		regexp.MustCompile(`(?i)(Vietnam|Việt Nam|VN)`),
	}
)

// Nationality extracts the nationality field.
func Nationality(text string) string {
	if loc := nationalityLabel.FindStringIndex(text); loc != nil {
		if m := nationalityInWindow.FindStringSubmatch(sliceAfter(text, loc[1], 100)); m != nil {
			return strings.TrimSpace(m[1])
		}
		return ""
	}
	for _, re := range nationalityFallbacks {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// IssuerName extracts the issuing company ("ĐƠN VỊ XUẤT") from an invoice.
// The capture keeps all Vietnamese letters; callers apply accent repair.
var issuerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:Đơn vị|Công ty|CÔNG TY|ĐƠN VỊ|Company)[\s:]*([^\n]+)`),
	regexp.MustCompile(`(?im)(?:Bán bởi|Seller|Người bán)[\s:]*([^\n]+)`),
}

func IssuerName(text string) string {
	for _, re := range issuerPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v := textnorm.TrimTrailingPunct(m[1])
		if utf8.RuneCountInString(v) >= 3 && reHasLetter.MatchString(v) {
			return v
		}
	}
	return ""
}

// IssuingAuthority extracts the authority that issued the card.
var authorityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:Nơi cấp|Place of issue|Issued by)[\s:]*([A-ZÀ-Ỹ0-9/\s,]+?)(?:\n|$)`),
	regexp.MustCompile(`(?im)(?:Cơ quan cấp|Authority)[\s:]*([A-ZÀ-Ỹ0-9/\s,]+?)(?:\n|$)`),
}

func IssuingAuthority(text string) string {
	for _, re := range authorityPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}

// TotalAfterTax extracts the after-tax amount ("GIÁ TRỊ SAU THUẾ") and
// strips thousands separators; the result is digits-only or "".
var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Tổng|Total|Thành tiền|Sau thuế|SAU THUẾ|Số tiền)[\s:]*[\d.,]*\s*([\d.,]+)`),
	regexp.MustCompile(`(?i)([\d.,]+)\s*VND`),
	regexp.MustCompile(`(?i)([\d.,]+)\s*đ`),
}

func TotalAfterTax(text string) string {
	for _, re := range totalPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if v := textnorm.StripThousands(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}
