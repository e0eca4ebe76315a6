package locate

import (
	"regexp"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/textnorm"
)

// Invoice numbers degrade through three tiers: exact label+digits, a long
// digit run near a label keyword, then the first long run shortly after the
// first keyword. Vietnamese invoices usually print the number zero-padded
// ("SỐ (No.): 00000788"), so zero-led runs are tried before generic ones.
var (
	invoiceNoPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:SỐ|SO|Số)\s*\(?\s*No\.?\s*\)?\s*:?\s*(\d{4,})`),
		regexp.MustCompile(`(?im)No\.\s*:?\s*(\d{4,})`),
		regexp.MustCompile(`(?im)(?:SỐ|SO|Số)\s*:?\s*(\d{4,})`),
		regexp.MustCompile(`(?im)(?:Số|SO|Số HĐ|HĐ số|HD)\s*:?\s*(\d{4,})`),
		regexp.MustCompile(`(?im)(?:Invoice|INVOICE)\s*No\.?\s*:?\s*(\d{4,})`),
	}

	longDigitRuns = []*regexp.Regexp{
		regexp.MustCompile(`\b0{3,}\d{4,}\b`), // zero-padded serials first
		regexp.MustCompile(`\b\d{6,}\b`),
	}
	invoiceNoKeyword = regexp.MustCompile(`(?i)(?:SỐ|SO|Số|No\.|Invoice|HĐ|HD)`)
	firstKeyword     = regexp.MustCompile(`(?i)(?:SỐ|SO|Số|No\.|Invoice)`)
	reLongRun        = regexp.MustCompile(`\d{6,}`)
)

// InvoiceNumber extracts the invoice serial ("SỐ HĐ") from raw OCR text.
func InvoiceNumber(text string) string {
	// Tier a: label immediately followed by digits.
	for _, re := range invoiceNoPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if n := m[1]; len(n) >= 4 && textnorm.IsDigits(n) {
				return n
			}
		}
	}

	// Tier b: a long digit run with a label keyword in a narrow window
	// (30 runes before, 10 after).
	for _, re := range longDigitRuns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			n := text[loc[0]:loc[1]]
			if len(n) < 6 || !textnorm.IsDigits(n) {
				continue
			}
			ctx := sliceAround(text, loc[0], loc[1], 30, 10)
			if invoiceNoKeyword.MatchString(ctx) {
				return n
			}
		}
	}

	// Tier c: first long run within 50 runes after the first keyword.
	if kw := firstKeyword.FindStringIndex(text); kw != nil {
		if m := reLongRun.FindString(sliceAfter(text, kw[1], 50)); m != "" {
			return m
		}
	}
	return ""
}

// Citizen ID numbers are printed after "Số / No.:" on the card front and are
// always exactly 12 digits; anything else is a misread and rejected.
var (
	idLabel = regexp.MustCompile(`(?i)(?:Số|SO)\s*[/\\]\s*No\.?\s*:`)

	idAfterLabel = regexp.MustCompile(`(\d{12})(?:$|\D)`)

	idFallbacks = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:Số|SO)\s*[/\\]?\s*No\.?\s*:?\s*(\d{12})(?:\s|$)`),
		regexp.MustCompile(`(?im)(?:Số|SO)[\s:]*(\d{12})(?:\s|$)`),
		regexp.MustCompile(`(?im)No\.\s*:?\s*(\d{12})(?:\s|$)`),
	}
)

// IdentityNumber extracts the 12-digit CCCD number. A run of any other
// length near the label yields "", falling through to the caller's empty
// value; partial matches are never returned.
func IdentityNumber(text string) string {
	if loc := idLabel.FindStringIndex(text); loc != nil {
		if m := idAfterLabel.FindStringSubmatch(sliceAfter(text, loc[1], 50)); m != nil {
			if n := m[1]; len(n) == 12 && textnorm.IsDigits(n) {
				return n
			}
		}
		// A label was present but no clean 12-digit run followed; the
		// loose fallbacks below would only rematch the same noise.
		return ""
	}
	for _, re := range idFallbacks {
		if m := re.FindStringSubmatch(text); m != nil {
			if n := m[1]; len(n) == 12 && textnorm.IsDigits(n) {
				return n
			}
		}
	}
	return ""
}
