package export

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Summary mirrors the business-result report: totals over the after-tax
// column plus the two derived tax figures.
type Summary struct {
	PurchaseCount int
	PurchaseTotal int64
	SalesTotal    int64
	// VATPayable = sales - purchases; may be negative.
	VATPayable int64
	// CITPayable = 22% of VATPayable, zero when VATPayable <= 0.
	CITPayable int64
}

// BuildSummary totals the stored purchase invoices against an externally
// supplied sales total and derives the tax lines.
func (s *Service) BuildSummary(ctx context.Context, salesTotal int64) (Summary, error) {
	recs, err := s.invoices.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("query invoices: %w", err)
	}

	sum := Summary{PurchaseCount: len(recs), SalesTotal: salesTotal}
	for _, r := range recs {
		if v, ok := parseAmount(r.Invoice.TotalAfterTax); ok {
			sum.PurchaseTotal += v
		}
	}
	sum.VATPayable = sum.SalesTotal - sum.PurchaseTotal
	if sum.VATPayable > 0 {
		sum.CITPayable = int64(0.22 * float64(sum.VATPayable))
	}
	return sum, nil
}

// parseAmount strips thousand separators and spaces; an empty cell counts
// as zero and anything unparseable is skipped.
func parseAmount(s string) (int64, bool) {
	cleaned := strings.NewReplacer(" ", "", ",", "", ".", "").Replace(s)
	if cleaned == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatAmount renders a VND amount with space-grouped thousands, the way
// the report displays money.
func FormatAmount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, " ")
	if neg {
		out = "-" + out
	}
	return out
}
