package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/export"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/repository"
)

func newExportCmd() *cobra.Command {
	var (
		flagOutDir     string
		flagSalesTotal int64
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the invoice and CCCD workbooks from the local database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := repository.Open(ctx, repository.Config{
				Path:        cfg.Database.Path,
				DialTimeout: cfg.Database.DialTimeout,
				BusyTimeout: cfg.Database.BusyTimeout,
			}, logger)
			if err != nil {
				return err
			}
			defer repository.Close(db, logger)

			svc := export.NewService(
				repository.NewInvoiceRepository(db, logger),
				repository.NewIdentityRepository(db, logger),
				logger)

			outDir := flagOutDir
			if outDir == "" {
				outDir = cfg.Export.OutputDir
			}

			invBytes, err := svc.ExportInvoicesXLSX(ctx)
			if err != nil {
				return err
			}
			invPath := filepath.Join(outDir, export.InvoiceWorkbook)
			if err := os.WriteFile(invPath, invBytes, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", invPath, err)
			}

			idBytes, err := svc.ExportIdentitiesXLSX(ctx)
			if err != nil {
				return err
			}
			idPath := filepath.Join(outDir, export.IdentityWorkbook)
			if err := os.WriteFile(idPath, idBytes, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", idPath, err)
			}

			sum, err := svc.BuildSummary(ctx, flagSalesTotal)
			if err != nil {
				return err
			}
			fmt.Printf("Tổng giá trị mua vào: %s đ (%d hóa đơn)\n",
				export.FormatAmount(sum.PurchaseTotal), sum.PurchaseCount)
			fmt.Printf("Tổng giá trị bán ra: %s đ\n", export.FormatAmount(sum.SalesTotal))
			fmt.Printf("Thuế VAT phải nộp: %s đ\n", export.FormatAmount(sum.VATPayable))
			fmt.Printf("Thuế TNDN phải nộp: %s đ\n", export.FormatAmount(sum.CITPayable))
			fmt.Printf("Đã ghi: %s, %s\n", invPath, idPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagOutDir, "out", "o", "", "output directory (defaults to BIZDOC_EXPORT_DIR)")
	cmd.Flags().Int64Var(&flagSalesTotal, "sales-total", 0, "total sales value for the business summary")
	return cmd
}
