// Package locate holds the per-field extraction strategies for noisy OCR
// transcripts. Every locator is a pure function from raw text to a value,
// with "" meaning "not found"; absence is an expected outcome, never an
// error. Locators try their patterns most-specific first and stop at the
// first plausible hit.
package locate

// Search windows are measured in runes, not bytes, so Vietnamese diacritics
// do not shrink the effective range.

// sliceAfter returns up to n runes of s starting at byte offset off.
func sliceAfter(s string, off, n int) string {
	if off < 0 {
		off = 0
	}
	if off >= len(s) {
		return ""
	}
	r := []rune(s[off:])
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

// sliceAround returns the span [start,end) of s widened by up to `before`
// runes on the left and `after` runes on the right.
func sliceAround(s string, start, end, before, after int) string {
	pre := []rune(s[:start])
	if len(pre) > before {
		pre = pre[len(pre)-before:]
	}
	post := []rune(s[end:])
	if len(post) > after {
		post = post[:after]
	}
	return string(pre) + s[start:end] + string(post)
}
