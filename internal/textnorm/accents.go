package textnorm

import "regexp"

// accentFix is one entry in the fixed correction table for Vietnamese words
// that tesseract commonly strips the diacritics from. Matching is whole-word
// and case-insensitive so substrings inside longer tokens are left alone.
type accentFix struct {
	re          *regexp.Regexp
	replacement string
}

// The table is deliberately small: only words that show up misread on real
// invoices and ID cards (mostly company names). "DONG" is ambiguous between
// ĐÔNG and ĐỒNG; company names almost always mean ĐÔNG, so that is the fix.
var accentFixes = []accentFix{
	{regexp.MustCompile(`(?i)\bTON\b`), "TÔN"},
	{regexp.MustCompile(`(?i)\bTHANH\b`), "THÀNH"},
	{regexp.MustCompile(`(?i)\bDAT\b`), "ĐẠT"},
	{regexp.MustCompile(`(?i)\bCONG\b`), "CÔNG"},
	{regexp.MustCompile(`(?i)\bDONG\b`), "ĐÔNG"},
}

// RepairAccents restores diacritics on known OCR-stripped Vietnamese words.
// It is a pure function and idempotent: corrected forms contain non-ASCII
// letters, so a second pass never rematches them. Unknown misreadings pass
// through unchanged; this is a lookup table, not a spell checker.
func RepairAccents(text string) string {
	if text == "" {
		return text
	}
	out := text
	for _, f := range accentFixes {
		out = f.re.ReplaceAllString(out, f.replacement)
	}
	return out
}
