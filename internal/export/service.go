// Package export produces the XLSX workbooks the back office consumes:
// one for purchase invoices, one for citizen cards.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/constants"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/repository"
)

const (
	InvoiceSheet  = "HD_MV"
	IdentitySheet = "CCCD"

	InvoiceWorkbook  = "Ket_qua_Hoa_don_mua_vao.xlsx"
	IdentityWorkbook = "Ket_qua_CCCD.xlsx"
)

// Service is a tiny façade over the repositories that produces XLSX bytes.
type Service struct {
	invoices   repository.InvoiceRepository
	identities repository.IdentityRepository
	logger     *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, identities repository.IdentityRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, identities: identities, logger: logger}
}

// ExportInvoicesXLSX returns the purchase-invoice workbook as bytes.
func (s *Service) ExportInvoicesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()
	recs, err := s.invoices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", InvoiceSheet)

	if err := writeHeaderRow(f, InvoiceSheet, constants.InvoiceFieldKeys); err != nil {
		return nil, err
	}

	dataStyle, wrapStyle, err := dataStyles(f)
	if err != nil {
		return nil, err
	}

	for i, r := range recs {
		row := i + 2
		values := []string{
			r.Invoice.InvoiceNumber,
			r.Invoice.Date,
			r.Invoice.LineItems,
			r.Invoice.IssuerName,
			r.Invoice.TotalAfterTax,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(InvoiceSheet, cell, v)
			// long text columns wrap: line items and issuer name
			if col == 2 || col == 3 {
				_ = f.SetCellStyle(InvoiceSheet, cell, cell, wrapStyle)
			} else {
				_ = f.SetCellStyle(InvoiceSheet, cell, cell, dataStyle)
			}
		}
	}

	_ = f.SetColWidth(InvoiceSheet, "A", "A", 15)
	_ = f.SetColWidth(InvoiceSheet, "B", "B", 15)
	_ = f.SetColWidth(InvoiceSheet, "C", "C", 60)
	_ = f.SetColWidth(InvoiceSheet, "D", "D", 50)
	_ = f.SetColWidth(InvoiceSheet, "E", "E", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	s.logger.Info("export.invoices.ok",
		"rows", len(recs), "elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

// ExportIdentitiesXLSX returns the citizen-card workbook as bytes.
func (s *Service) ExportIdentitiesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()
	recs, err := s.identities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query identities: %w", err)
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", IdentitySheet)

	if err := writeHeaderRow(f, IdentitySheet, constants.IdentityFieldKeys); err != nil {
		return nil, err
	}

	dataStyle, wrapStyle, err := dataStyles(f)
	if err != nil {
		return nil, err
	}

	for i, r := range recs {
		row := i + 2
		values := []string{
			r.Identity.IDNumber,
			r.Identity.FullName,
			r.Identity.DateOfBirth,
			r.Identity.Sex,
			r.Identity.Nationality,
			r.Identity.PlaceOfOrigin,
			r.Identity.PermanentResidence,
			r.Identity.IssueDate,
			r.Identity.IssuingAuthority,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(IdentitySheet, cell, v)
			// addresses and issuing authority wrap
			if col == 5 || col == 6 || col == 8 {
				_ = f.SetCellStyle(IdentitySheet, cell, cell, wrapStyle)
			} else {
				_ = f.SetCellStyle(IdentitySheet, cell, cell, dataStyle)
			}
		}
	}

	widths := []float64{18, 30, 15, 12, 15, 50, 60, 15, 50}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(IdentitySheet, col, col, w)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	s.logger.Info("export.identities.ok",
		"rows", len(recs), "elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: "Arial", Size: 11, Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center", Vertical: "center", WrapText: true,
		},
	})
	if err != nil {
		return err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		_ = f.SetCellStyle(sheet, cell, cell, style)
	}
	return nil
}

func dataStyles(f *excelize.File) (plain, wrapped int, err error) {
	plain, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Arial", Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return 0, 0, err
	}
	wrapped, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: "Arial", Size: 10},
		Alignment: &excelize.Alignment{
			Horizontal: "left", Vertical: "top", WrapText: true,
		},
	})
	if err != nil {
		return 0, 0, err
	}
	return plain, wrapped, nil
}
