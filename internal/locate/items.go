package locate

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/textnorm"
)

// Line items come from the "Tên hàng hóa, dịch vụ" table. OCR flattens the
// table, so the locator scans the whole text for "small integer, optional
// dot, description" rows, deduplicates, and keeps the longest consecutive
// run starting at 1. A gap terminates the run rather than leaving a hole.
// The 1..4 secondary fallback can admit a non-consecutive item; that is a
// known approximation inherited from the field data this was tuned on.

var (
	itemRowPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:^|\n)\s*(\d{1,2})\.\s+([^\n]{3,150})`),
		regexp.MustCompile(`(?:^|\n)\s*(\d{1,2})\s+([^\n]{3,150})`),
	}
	reItemHeader = regexp.MustCompile(`(?i)^(?:STT|No|SỐ|Tổng|Total|Ngày|Date|Đơn|vị|Tên hàng|Name)`)

	looseItemRow    = regexp.MustCompile(`(?i)\n\s*([1-9]|10)[.\s]+([A-Za-zÀ-ỹ][^\n]{4,100})`)
	looseItemHeader = regexp.MustCompile(`(?i)^(?:STT|No|SỐ|Tổng|Total)`)
)

type itemRow struct {
	n    int
	text string
}

// LineItems extracts the numbered goods/services list, rendered as
// "<n>. <description>" lines joined by "\n".
func LineItems(text string) string {
	var found []itemRow
	for _, re := range itemRowPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			desc := textnorm.TrimTrailingPunct(m[2])
			if !plausibleItem(desc) {
				continue
			}
			found = append(found, itemRow{n: n, text: desc})
		}
	}

	rows := dedupeRows(found)
	if len(rows) > 0 {
		if items := consecutiveFromOne(rows); len(items) >= 2 {
			return strings.Join(items, "\n")
		}
		if len(rows) >= 2 {
			var items []string
			for _, r := range rows {
				if r.n >= 1 && r.n <= 4 {
					items = append(items, fmt.Sprintf("%d. %s", r.n, r.text))
				}
			}
			if len(items) > 0 {
				return strings.Join(items, "\n")
			}
		}
	}
	return looseLineItems(text)
}

func plausibleItem(desc string) bool {
	if len([]rune(desc)) < 3 || !reHasLetter.MatchString(desc) {
		return false
	}
	bare := strings.NewReplacer("-", "", ".", "", " ", "").Replace(desc)
	if textnorm.IsDigits(bare) {
		return false
	}
	return !reItemHeader.MatchString(desc)
}

// dedupeRows sorts by item index and drops duplicates by (index, lowercased
// description); only indexes 1..10 survive.
func dedupeRows(found []itemRow) []itemRow {
	sort.SliceStable(found, func(i, j int) bool { return found[i].n < found[j].n })
	seen := make(map[string]struct{}, len(found))
	rows := make([]itemRow, 0, len(found))
	for _, r := range found {
		if r.n < 1 || r.n > 10 {
			continue
		}
		key := fmt.Sprintf("%d|%s", r.n, strings.ToLower(r.text))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, r)
	}
	return rows
}

// consecutiveFromOne walks sorted rows expecting 1,2,3,... and formats the
// run; once at least two items are in, the first gap ends the sequence.
func consecutiveFromOne(rows []itemRow) []string {
	expected := 1
	var items []string
	for _, r := range rows {
		if r.n == expected {
			items = append(items, fmt.Sprintf("%d. %s", r.n, r.text))
			expected++
		} else if r.n > expected && len(items) >= 2 {
			break
		}
	}
	return items
}

// looseLineItems is the last-resort scan: a single laxer pattern that must
// produce at least two plausible rows before anything is accepted.
func looseLineItems(text string) string {
	matches := looseItemRow.FindAllStringSubmatch(text, -1)
	if len(matches) < 2 {
		return ""
	}
	var rows []itemRow
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		desc := strings.TrimSpace(m[2])
		if len([]rune(desc)) < 3 || !reHasLetter.MatchString(desc) || looseItemHeader.MatchString(desc) {
			continue
		}
		rows = append(rows, itemRow{n: n, text: desc})
	}
	if len(rows) == 0 {
		return ""
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].n < rows[j].n })

	if items := consecutiveFromOne(rows); len(items) >= 2 {
		return strings.Join(items, "\n")
	}
	if len(rows) >= 2 {
		if len(rows) > 4 {
			rows = rows[:4]
		}
		items := make([]string, 0, len(rows))
		for _, r := range rows {
			items = append(items, fmt.Sprintf("%d. %s", r.n, r.text))
		}
		return strings.Join(items, "\n")
	}
	return ""
}
