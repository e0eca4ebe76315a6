package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/batch"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/engine"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/llm"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/llm/openai"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/ocr"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/repository"
)

func newBatchCmd() *cobra.Command {
	var (
		flagWorkers   int
		flagUseOpenAI bool
		flagSave      bool
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Extract every invoice in a directory with a worker pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			root := args[0]

			paths, stats, err := batch.ScanDirectory(root, nil, true)
			if err != nil {
				return err
			}
			logger.Info("batch.scan.done",
				"root", root, "scanned", stats.Scanned,
				"matched", stats.Matched, "skipped", stats.Skipped)
			if len(paths) == 0 {
				fmt.Println("Không tìm thấy file hóa đơn nào.")
				return nil
			}

			extractor := ocr.NewExtractor(ocr.Config{
				TesseractLang: cfg.OCR.TesseractLang,
				TessdataDir:   cfg.OCR.TessdataDir,
				DPI:           cfg.OCR.DPI,
				MaxPages:      cfg.OCR.MaxPages,
			}, logger)

			var fieldExtractor llm.FieldExtractor
			if flagUseOpenAI {
				fieldExtractor = openai.NewClient(openai.Config{
					APIKey:      cfg.LLM.APIKey,
					Model:       cfg.LLM.Model,
					Temperature: cfg.LLM.Temperature,
					MaxTokens:   cfg.LLM.MaxTokens,
					Timeout:     cfg.LLM.Timeout,
				}, logger)
			}

			var invRepo repository.InvoiceRepository
			if flagSave {
				db, err := repository.Open(ctx, repository.Config{
					Path:        cfg.Database.Path,
					DialTimeout: cfg.Database.DialTimeout,
					BusyTimeout: cfg.Database.BusyTimeout,
				}, logger)
				if err != nil {
					return err
				}
				defer repository.Close(db, logger)
				invRepo = repository.NewInvoiceRepository(db, logger)
			}

			proc := batch.NewProcessor(extractor, engine.New(fieldExtractor, logger), invRepo, logger)
			proc.UseExternal = flagUseOpenAI
			proc.Credential = cfg.LLM.APIKey

			q := batch.NewQueue(proc, logger, batch.WithWorkers(flagWorkers))
			for _, p := range paths {
				_ = q.Enqueue(ctx, batch.Job{ID: uuid.New(), Path: p, SubmittedAt: time.Now()})
			}
			outcomes := q.Shutdown(ctx)

			failed := 0
			for _, o := range outcomes {
				if o.Err != nil {
					failed++
					fmt.Printf("LỖI  %s: %v\n", o.Path, o.Err)
					continue
				}
				fmt.Printf("OK   %s (%s, %d trường)\n", o.Path, o.Source, o.Fields.Filled())
			}
			fmt.Printf("Hoàn tất: %d file, %d lỗi\n", len(outcomes), failed)
			return nil
		},
	}

	cmd.Flags().IntVarP(&flagWorkers, "workers", "w", 4, "number of concurrent workers")
	cmd.Flags().BoolVar(&flagUseOpenAI, "openai", false, "use the OpenAI extractor with regex fallback")
	cmd.Flags().BoolVar(&flagSave, "save", false, "persist results to the local database")
	return cmd
}
