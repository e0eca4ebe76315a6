package locate

import (
	"regexp"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/textnorm"
)

// Date output is always DD/MM/YYYY with a 4-digit year; 2-digit years are
// expanded to 20xx. When several date-like substrings appear, the first
// match in the search window wins.

var invoiceDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`),
	regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{2})`),
	regexp.MustCompile(`Ngày[\s:]*(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`),
	regexp.MustCompile(`Date[\s:]*(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`),
}

// InvoiceDate finds the invoice date ("NGÀY") anywhere in the text.
func InvoiceDate(text string) string {
	for _, re := range invoiceDatePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return textnorm.CanonicalDate(m[1], m[2], m[3])
		}
	}
	return ""
}

// On ID cards the printed date frequently drifts off the label's line, so
// the label-anchored locators widen their window instead of requiring
// adjacency.
var (
	reCardDate = regexp.MustCompile(`(\d{2})[/\-](\d{2})[/\-](\d{4})`)

	dobLabel = regexp.MustCompile(`(?i)(?:Ngày sinh|Date of birth|DOB)\s*[/\\]?\s*Date of birth\s*:`)

	dobFallbacks = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:Ngày sinh|Date of birth|DOB)[\s:/\\]*Date of birth\s*:\s*(\d{2})[/\-](\d{2})[/\-](\d{4})`),
		regexp.MustCompile(`(?im)(?:Ngày sinh|Date of birth|DOB)[\s:]*(\d{2})[/\-](\d{2})[/\-](\d{4})`),
		regexp.MustCompile(`(\d{2})[/\-](\d{2})[/\-](\d{4})`),
	}

	issueLabels = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Ngày cấp\s*[/\\]?\s*Date of issue\s*:`),
		regexp.MustCompile(`(?i)Ngày cấp\s*:`),
		regexp.MustCompile(`(?i)Date of issue\s*:`),
		regexp.MustCompile(`(?i)Issued date\s*:`),
	}

	issueFallbacks = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Ngày cấp|Date of issue|Issued date)[\s:]*(\d{2})[/\-](\d{2})[/\-](\d{4})`),
		regexp.MustCompile(`(\d{2})[/\-](\d{2})[/\-](\d{4})`),
	}
)

// DateOfBirth finds the DOB on the card front: a bilingual label first,
// searched with a 100-rune window past the label, then plainer fallbacks.
func DateOfBirth(text string) string {
	if loc := dobLabel.FindStringIndex(text); loc != nil {
		window := text[loc[0]:loc[1]] + sliceAfter(text, loc[1], 100)
		if m := reCardDate.FindStringSubmatch(window); m != nil {
			return textnorm.CanonicalDate(m[1], m[2], m[3])
		}
	}
	for _, re := range dobFallbacks {
		if m := re.FindStringSubmatch(text); m != nil {
			return textnorm.CanonicalDate(m[1], m[2], m[3])
		}
	}
	return ""
}

// IssueDate finds the card's date of issue, same widened-window approach.
func IssueDate(text string) string {
	for _, label := range issueLabels {
		loc := label.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if m := reCardDate.FindStringSubmatch(sliceAfter(text, loc[1], 100)); m != nil {
			return textnorm.CanonicalDate(m[1], m[2], m[3])
		}
		break
	}
	for _, re := range issueFallbacks {
		if m := re.FindStringSubmatch(text); m != nil {
			return textnorm.CanonicalDate(m[1], m[2], m[3])
		}
	}
	return ""
}
