// Package contract renders a labor contract ("hợp đồng lao động") from a
// plain-text template and a citizen-card record.
package contract

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/record"
)

// DefaultTemplateFile is the template name the original workflow uses.
const DefaultTemplateFile = "HDLD_Mau.txt"

const defaultCity = "Tp. Hồ Chí Minh"

// Render substitutes the card's fields into the template. Replacements run
// in order: the "Hôm nay ngày ..." line must be filled before the bare
// "..." city placeholder eats its ellipses.
func Render(template string, card record.Identity, now time.Time) string {
	honorific := "Ông/bà"
	switch {
	case strings.Contains(card.Sex, "Nam"):
		honorific = "Ông"
	case strings.Contains(card.Sex, "Nữ"):
		honorific = "Bà"
	}

	contactAddr := card.PermanentResidence
	if contactAddr == "" {
		contactAddr = card.PlaceOfOrigin
	}

	dateLine := fmt.Sprintf("Hôm nay ngày %02d tháng %02d năm %d",
		now.Day(), int(now.Month()), now.Year())

	replacements := []struct{ from, to string }{
		{"[Nguoi_LD]", card.FullName},
		{"[Ngay_sinh]", card.DateOfBirth},
		{"[Gioi_tinh]", card.Sex},
		{"[Quoc_tich]", card.Nationality},
		{"[So_CCCD]", card.IDNumber},
		{"[Ngay_cap]", card.IssueDate},
		{"[Noi_cap]", card.IssuingAuthority},
		{"[Que_quan]", card.PlaceOfOrigin},
		{"[DC_LH]", contactAddr},
		{"Ông/bà :", honorific + ":"},
		{"Hôm nay ngày ... tháng ... năm 2020", dateLine},
		{"...", defaultCity},
	}

	out := template
	for _, r := range replacements {
		out = strings.ReplaceAll(out, r.from, r.to)
	}
	return out
}

// RenderFile reads the template from disk and renders it.
func RenderFile(path string, card record.Identity, now time.Time) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return Render(string(b), card, now), nil
}
