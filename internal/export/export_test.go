package export

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/record"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/repository"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := repository.Open(context.Background(), repository.Config{
		Path: filepath.Join(t.TempDir(), "test.db"),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { repository.Close(db, nil) })
	return NewService(repository.NewInvoiceRepository(db, nil), repository.NewIdentityRepository(db, nil), nil)
}

func saveInvoice(t *testing.T, s *Service, number, total string, at time.Time) {
	t.Helper()
	_, err := s.invoices.Save(context.Background(), repository.StoredInvoice{
		Invoice: record.Invoice{
			InvoiceNumber: number,
			Date:          "05/06/2023",
			LineItems:     "1. Tôn lạnh màu\n2. Thép hộp 25x50",
			IssuerName:    "CÔNG TY TNHH TÔN THÉP THÀNH ĐẠT",
			TotalAfterTax: total,
		},
		Source:    "local",
		CreatedAt: at,
	})
	require.NoError(t, err)
}

func TestExportInvoicesXLSX(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)
	base := time.Date(2023, 6, 5, 10, 0, 0, 0, time.UTC)
	saveInvoice(t, s, "00000788", "1234000", base)
	saveInvoice(t, s, "00000789", "2500000", base.Add(time.Minute))

	data, err := s.ExportInvoicesXLSX(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{InvoiceSheet}, f.GetSheetList())

	a1, _ := f.GetCellValue(InvoiceSheet, "A1")
	assert.Equal(t, "SỐ HĐ", a1)
	e1, _ := f.GetCellValue(InvoiceSheet, "E1")
	assert.Equal(t, "GIÁ TRỊ SAU THUẾ", e1)

	a2, _ := f.GetCellValue(InvoiceSheet, "A2")
	assert.Equal(t, "00000788", a2)
	c2, _ := f.GetCellValue(InvoiceSheet, "C2")
	assert.Equal(t, "1. Tôn lạnh màu\n2. Thép hộp 25x50", c2)
	a3, _ := f.GetCellValue(InvoiceSheet, "A3")
	assert.Equal(t, "00000789", a3)
}

func TestExportInvoicesXLSXEmpty(t *testing.T) {
	s := newTestService(t)

	data, err := s.ExportInvoicesXLSX(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	a2, _ := f.GetCellValue(InvoiceSheet, "A2")
	assert.Equal(t, "", a2)
}

func TestExportIdentitiesXLSX(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)
	_, err := s.identities.Save(ctx, repository.StoredIdentity{
		Identity: record.Identity{
			IDNumber: "080188012880",
			FullName: "NGUYỄN VĂN AN",
			Sex:      "Nam",
		},
		Source: "local",
	})
	require.NoError(t, err)

	data, err := s.ExportIdentitiesXLSX(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{IdentitySheet}, f.GetSheetList())

	a1, _ := f.GetCellValue(IdentitySheet, "A1")
	assert.Equal(t, "Số CCCD", a1)
	a2, _ := f.GetCellValue(IdentitySheet, "A2")
	assert.Equal(t, "080188012880", a2)
	b2, _ := f.GetCellValue(IdentitySheet, "B2")
	assert.Equal(t, "NGUYỄN VĂN AN", b2)
}

func TestBuildSummary(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)
	base := time.Date(2023, 6, 5, 10, 0, 0, 0, time.UTC)
	saveInvoice(t, s, "1", "1234000", base)
	saveInvoice(t, s, "2", "", base.Add(time.Second))
	saveInvoice(t, s, "3", "n/a", base.Add(2*time.Second))

	sum, err := s.BuildSummary(ctx, 5_000_000)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.PurchaseCount)
	assert.Equal(t, int64(1_234_000), sum.PurchaseTotal)
	assert.Equal(t, int64(3_766_000), sum.VATPayable)
	assert.Equal(t, int64(828_520), sum.CITPayable)
}

func TestBuildSummaryNegativeVAT(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)
	saveInvoice(t, s, "1", "1234000", time.Date(2023, 6, 5, 10, 0, 0, 0, time.UTC))

	sum, err := s.BuildSummary(ctx, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(-1_234_000), sum.VATPayable)
	assert.Equal(t, int64(0), sum.CITPayable)
}

func TestParseAmount(t *testing.T) {
	v, ok := parseAmount("1.234.000")
	assert.True(t, ok)
	assert.Equal(t, int64(1_234_000), v)

	v, ok = parseAmount("")
	assert.True(t, ok)
	assert.Equal(t, int64(0), v)

	_, ok = parseAmount("n/a")
	assert.False(t, ok)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1 234 000", FormatAmount(1_234_000))
	assert.Equal(t, "1 000", FormatAmount(1000))
	assert.Equal(t, "500", FormatAmount(500))
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "-3 766 000", FormatAmount(-3_766_000))
}
