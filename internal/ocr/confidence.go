package ocr

import (
	"regexp"
	"strings"
)

var (
	reDateish = regexp.MustCompile(`\b\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}\b|ngày\s*\d`)
	reCurrish = regexp.MustCompile(`\bvnd\b|\bvnđ\b|\s[đd]\b|₫`)
	reAmtish  = regexp.MustCompile(`\b\d{1,3}(?:[.,]\d{3})+\b`)
	reDocish  = regexp.MustCompile(`hóa đơn|hoa don|căn cước|can cuoc|invoice`)
)

// naive heuristic confidence based on decoded text characteristics:
// date-ish, VND currency-ish, thousand-grouped amount-ish, and document
// keywords each add a fixed boost.
func heuristicConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if reDateish.MatchString(txtL) {
		score += 0.2
	}
	if reCurrish.MatchString(txtL) {
		score += 0.15
	}
	if reAmtish.MatchString(txtL) {
		score += 0.15
	}
	if reDocish.MatchString(txtL) {
		score += 0.1
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
