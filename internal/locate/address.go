package locate

import (
	"regexp"
	"strings"
)

// Address fields on the CCCD wrap across lines and the value often starts
// on the line *below* the bilingual label. The locators anchor on a label,
// walk up to four following lines, stop at the next field's label or at a
// blank line once something has been collected, and join the pieces with
// single spaces. A bounded one-shot regex acts as the fallback when line
// walking finds nothing.

var reLine = regexp.MustCompile(`\r?\n`)

var (
	originLabels = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Quê quán\s*[/\\]?\s*Place of origin\s*:`),
		regexp.MustCompile(`(?i)Quê quán\s*:`),
		regexp.MustCompile(`(?i)Place of origin\s*:`),
	}
	originResidue   = regexp.MustCompile(`(?i)^(?:Quê quán|Place of origin|Origin)[\s:/\\]*`)
	originStop      = regexp.MustCompile(`(?i)^(?:Nơi thường trú|Permanent address|Address|Quốc tịch|Nationality)`)
	originLineStart = regexp.MustCompile(`^[A-ZÀ-Ỹ]`)

	originFallbacks = []*regexp.Regexp{
		regexp.MustCompile(`(?im)Quê quán\s*[/\\]?\s*Place of origin\s*:\s*([A-ZÀ-Ỹ][A-ZÀ-Ỹ0-9/\s,.\-]{5,150}?)(?:\n|Nơi|Permanent|Address|Quốc|Nationality|$)`),
		regexp.MustCompile(`(?im)Quê quán\s*:\s*([A-ZÀ-Ỹ][A-ZÀ-Ỹ0-9/\s,.\-]{5,150}?)(?:\n|Nơi|$)`),
		regexp.MustCompile(`(?im)(?:Quê quán|Place of origin|Origin)[\s:]*([A-ZÀ-Ỹ0-9/\s,.\-]{5,150}?)(?:\n|Nơi|Permanent|Address|Quốc|Nationality|$)`),
	}
)

// PlaceOfOrigin extracts the "Quê quán" address from the card front.
func PlaceOfOrigin(text string) string {
	if loc := firstLabel(originLabels, text); loc != nil {
		lines := reLine.Split(sliceAfter(text, loc[1], 400), -1)
		if len(lines) > 4 {
			lines = lines[:4]
		}
		var collected []string
		for _, line := range lines {
			line = strings.TrimSpace(originResidue.ReplaceAllString(strings.TrimSpace(line), ""))
			if originStop.MatchString(line) {
				break
			}
			if line != "" && (originLineStart.MatchString(line) || strings.Contains(line, ",")) {
				collected = append(collected, line)
			} else if line == "" && len(collected) > 0 {
				break
			}
		}
		if len(collected) > 0 {
			return strings.Join(collected, " ")
		}
	}
	for _, re := range originFallbacks {
		if m := re.FindStringSubmatch(text); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}

var (
	residenceLabels = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Nơi thường trú\s*[/\\]?\s*Permanent address\s*:`),
		regexp.MustCompile(`(?i)Nơi thường trú\s*[/\\]?\s*Place of residence\s*:`),
		regexp.MustCompile(`(?i)Nơi thường trú\s*:`),
		regexp.MustCompile(`(?i)Permanent address\s*:`),
	}
	residenceResidue   = regexp.MustCompile(`(?i)^(?:Nơi thường trú|Permanent address|Address|Place of residence)[\s:/\\]*`)
	residenceStop      = regexp.MustCompile(`(?i)^(?:Ngày cấp|Date of issue|Place of issue|Issued)`)
	residenceFirstLine = regexp.MustCompile(`^[0-9A-ZÀ-Ỹ/]`)
	residenceLineStart = regexp.MustCompile(`^[0-9A-ZÀ-Ỹ]`)

	residenceFallbacks = []*regexp.Regexp{
		regexp.MustCompile(`(?im)Nơi thường trú\s*[/\\]?\s*Permanent address\s*:\s*([0-9A-ZÀ-Ỹ/][A-ZÀ-Ỹ0-9/\s,.\-]{10,200}?)(?:\n|Ngày|Date|$)`),
		regexp.MustCompile(`(?im)Nơi thường trú\s*:\s*([0-9A-ZÀ-Ỹ/][A-ZÀ-Ỹ0-9/\s,.\-]{10,200}?)(?:\n|Ngày|$)`),
		regexp.MustCompile(`(?im)(?:Nơi thường trú|Permanent address|Place of residence)[\s:]*([0-9A-ZÀ-Ỹ/][A-ZÀ-Ỹ0-9/\s,.\-]{10,200}?)(?:\n|Ngày|Date|$)`),
	}
)

// PermanentResidence extracts "Nơi thường trú". Unlike the origin field,
// the value usually starts on the label's own line (after the colon) and
// continues below, so the remainder of the first line is kept too.
func PermanentResidence(text string) string {
	if loc := firstLabel(residenceLabels, text); loc != nil {
		lines := reLine.Split(sliceAfter(text, loc[1], 500), -1)

		var collected []string
		first := strings.TrimSpace(residenceResidue.ReplaceAllString(strings.TrimSpace(lines[0]), ""))
		if first != "" && (residenceFirstLine.MatchString(first) || strings.ContainsAny(first, ",.")) {
			collected = append(collected, first)
		}

		rest := lines[1:]
		if len(rest) > 4 {
			rest = rest[:4]
		}
		for _, line := range rest {
			line = strings.TrimSpace(line)
			if residenceStop.MatchString(line) {
				break
			}
			if line != "" && (residenceLineStart.MatchString(line) || strings.ContainsAny(line, ",.")) {
				collected = append(collected, line)
			} else if line == "" && len(collected) > 0 {
				break
			}
		}
		if len(collected) > 0 {
			return strings.Join(collected, " ")
		}
	}
	for _, re := range residenceFallbacks {
		if m := re.FindStringSubmatch(text); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}

func firstLabel(labels []*regexp.Regexp, text string) []int {
	for _, re := range labels {
		if loc := re.FindStringIndex(text); loc != nil {
			return loc
		}
	}
	return nil
}
