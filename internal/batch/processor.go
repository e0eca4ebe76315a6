// Package batch runs extraction over whole folders of documents with a
// bounded worker pool.
package batch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/constants"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/engine"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/ocr"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/record"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/repository"
)

// Job is one document to process.
type Job struct {
	ID          uuid.UUID
	Path        string
	SubmittedAt time.Time
}

// Outcome is the per-file result of a batch run.
type Outcome struct {
	Path   string
	Fields record.FieldMap
	Source string
	Err    error
}

// Processor OCRs one invoice file, extracts its fields, and optionally
// persists the result.
type Processor struct {
	ocr      *ocr.Extractor
	engine   *engine.Engine
	invoices repository.InvoiceRepository // nil = don't persist
	logger   *slog.Logger

	UseExternal bool
	Credential  string
}

func NewProcessor(extractor *ocr.Extractor, eng *engine.Engine, invoices repository.InvoiceRepository, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{ocr: extractor, engine: eng, invoices: invoices, logger: logger}
}

// ProcessFile runs the full pipeline for one invoice file.
func (p *Processor) ProcessFile(ctx context.Context, path string) (Outcome, error) {
	ocrRes, err := p.ocr.Extract(ctx, path)
	if err != nil {
		return Outcome{Path: path, Err: err}, err
	}

	res := p.engine.Extract(ctx, engine.Request{
		DocType:     constants.DocTypeInvoice,
		Texts:       []string{ocrRes.Text},
		UseExternal: p.UseExternal,
		Credential:  p.Credential,
	})

	if p.invoices != nil {
		_, err = p.invoices.Save(ctx, repository.StoredInvoice{
			Invoice:    record.InvoiceFromFields(res.Fields),
			Source:     res.Source,
			RawText:    res.RawText,
			SourceFile: path,
		})
		if err != nil {
			return Outcome{Path: path, Fields: res.Fields, Source: res.Source, Err: err}, err
		}
	}

	return Outcome{Path: path, Fields: res.Fields, Source: res.Source}, nil
}
