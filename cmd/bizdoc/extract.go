package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/constants"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/engine"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/llm"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/llm/openai"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/ocr"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/record"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/repository"
)

func newExtractCmd() *cobra.Command {
	var (
		flagUseOpenAI bool
		flagAPIKey    string
		flagSave      bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Run OCR and field extraction on a document",
	}

	invoice := &cobra.Command{
		Use:   "invoice <file>",
		Short: "Extract a purchase invoice from a PDF or image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.Context(), constants.DocTypeInvoice, args,
				flagUseOpenAI, flagAPIKey, flagSave)
		},
	}

	cccd := &cobra.Command{
		Use:   "cccd <front> [back]",
		Short: "Extract a citizen ID card from front and back images",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.Context(), constants.DocTypeIdentity, args,
				flagUseOpenAI, flagAPIKey, flagSave)
		},
	}

	for _, c := range []*cobra.Command{invoice, cccd} {
		c.Flags().BoolVar(&flagUseOpenAI, "openai", false, "use the OpenAI extractor with regex fallback")
		c.Flags().StringVar(&flagAPIKey, "api-key", "", "OpenAI API key (defaults to OPENAI_API_KEY)")
		c.Flags().BoolVar(&flagSave, "save", false, "persist the result to the local database")
	}

	cmd.AddCommand(invoice, cccd)
	return cmd
}

func runExtract(ctx context.Context, dt constants.DocType, paths []string, useOpenAI bool, apiKey string, save bool) error {
	extractor := ocr.NewExtractor(ocr.Config{
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	texts := make([]string, 0, len(paths))
	for _, p := range paths {
		res, err := extractor.Extract(ctx, p)
		if err != nil {
			return fmt.Errorf("ocr %s: %w", p, err)
		}
		logger.Info("extract.ocr.done",
			"path", p, "method", res.Method, "pages", res.Pages,
			"confidence", res.Confidence)
		texts = append(texts, res.Text)
	}

	var fieldExtractor llm.FieldExtractor
	credential := apiKey
	if credential == "" {
		credential = cfg.LLM.APIKey
	}
	if useOpenAI {
		fieldExtractor = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	}

	eng := engine.New(fieldExtractor, logger)
	result := eng.Extract(ctx, engine.Request{
		DocType:     dt,
		Texts:       texts,
		UseExternal: useOpenAI,
		Credential:  credential,
	})
	for _, w := range result.Warnings {
		logger.Warn("extract.warning", "warning", w)
	}

	if save {
		if err := saveResult(ctx, dt, result, paths[0]); err != nil {
			return err
		}
	}

	return printFields(dt, result)
}

func saveResult(ctx context.Context, dt constants.DocType, result engine.Result, sourceFile string) error {
	db, err := repository.Open(ctx, repository.Config{
		Path:        cfg.Database.Path,
		DialTimeout: cfg.Database.DialTimeout,
		BusyTimeout: cfg.Database.BusyTimeout,
	}, logger)
	if err != nil {
		return err
	}
	defer repository.Close(db, logger)

	if dt == constants.DocTypeIdentity {
		repo := repository.NewIdentityRepository(db, logger)
		_, err = repo.Save(ctx, repository.StoredIdentity{
			Identity:   record.IdentityFromFields(result.Fields),
			Source:     result.Source,
			RawText:    result.RawText,
			SourceFile: sourceFile,
			CreatedAt:  time.Now().UTC(),
		})
		return err
	}
	repo := repository.NewInvoiceRepository(db, logger)
	_, err = repo.Save(ctx, repository.StoredInvoice{
		Invoice:    record.InvoiceFromFields(result.Fields),
		Source:     result.Source,
		RawText:    result.RawText,
		SourceFile: sourceFile,
		CreatedAt:  time.Now().UTC(),
	})
	return err
}

func printFields(dt constants.DocType, result engine.Result) error {
	fmt.Printf("source: %s\n", result.Source)
	// declared key order keeps the output stable
	for _, k := range constants.FieldKeys(dt) {
		fmt.Printf("%s: %s\n", k, result.Fields[k])
	}
	return nil
}
