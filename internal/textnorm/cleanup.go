package textnorm

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reThousands     = regexp.MustCompile(`[,.\s]`)
	reTrailingPunct = regexp.MustCompile(`[\s\-.]+$`)
	reDigitsOnly    = regexp.MustCompile(`^\d+$`)
)

// StripThousands removes thousands separators (comma, dot, space) from a
// numeric string. Returns "" unless the remainder is digits-only: a value
// like "1.234,56abc" is noise, not an amount.
func StripThousands(s string) string {
	v := reThousands.ReplaceAllString(strings.TrimSpace(s), "")
	if v == "" || !reDigitsOnly.MatchString(v) {
		return ""
	}
	return v
}

// IsDigits reports whether s is non-empty and ASCII digits only.
func IsDigits(s string) bool {
	return reDigitsOnly.MatchString(s)
}

// TrimTrailingPunct strips trailing runs of spaces, hyphens and dots that
// OCR tends to append to captured values.
func TrimTrailingPunct(s string) string {
	return reTrailingPunct.ReplaceAllString(strings.TrimSpace(s), "")
}

// CanonicalDate renders a day/month/year triple as DD/MM/YYYY. Two-digit
// years are expanded by prefixing "20". Separators are already stripped by
// the caller's capture groups, so this only canonicalizes the join.
func CanonicalDate(day, month, year string) string {
	if len(year) == 2 {
		year = "20" + year
	}
	return fmt.Sprintf("%s/%s/%s", day, month, year)
}
