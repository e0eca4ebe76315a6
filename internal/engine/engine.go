// Package engine selects between the external model-backed extractor and
// the deterministic regex pipeline, guaranteeing a result either way.
package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/constants"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/assemble"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/llm"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/record"
)

const (
	SourceExternal = "external"
	SourceLocal    = "local"
)

// Request describes one extraction: the document type plus its OCR texts.
// An invoice carries one text; an identity card carries front then back.
type Request struct {
	DocType     constants.DocType
	Texts       []string
	UseExternal bool
	// Credential is passed through to the external extractor per call and
	// never stored.
	Credential string
}

// Result is what Extract always produces. Source records which path won.
type Result struct {
	Fields   record.FieldMap
	RawText  string
	Source   string
	Warnings []string
}

type Engine struct {
	extractor llm.FieldExtractor
	logger    *slog.Logger
}

// New builds an engine. The extractor may be nil, in which case only the
// deterministic pipeline runs.
func New(extractor llm.FieldExtractor, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{extractor: extractor, logger: logger}
}

// Extract runs the strategy selector. It never returns an error: when the
// external path is disabled, unavailable, or rejects, the local assembler
// result is returned instead, worst case an all-empty record.
func (e *Engine) Extract(ctx context.Context, req Request) Result {
	res := Result{
		RawText: strings.Join(req.Texts, "\n\n"),
		Source:  SourceLocal,
	}

	if req.UseExternal {
		switch {
		case e.extractor == nil:
			res.Warnings = append(res.Warnings, "external extractor not configured")
		case req.Credential == "":
			res.Warnings = append(res.Warnings, "external extraction requested without credential")
		default:
			fields, _, err := e.extractor.ExtractFields(ctx, llm.ExtractRequest{
				DocType:    req.DocType,
				Texts:      req.Texts,
				Credential: req.Credential,
			})
			if err != nil {
				e.logger.Warn("engine.extract.external_failed",
					"doc_type", req.DocType, "error", err)
				res.Warnings = append(res.Warnings, "external extraction failed: "+err.Error())
			} else if fields.Empty(req.DocType) {
				e.logger.Warn("engine.extract.external_empty", "doc_type", req.DocType)
				res.Warnings = append(res.Warnings, "external extraction returned no fields")
			} else {
				res.Fields = fields
				res.Source = SourceExternal
				e.logger.Info("engine.extract.ok",
					"doc_type", req.DocType, "source", res.Source,
					"filled", fields.Filled())
				return res
			}
		}
	}

	res.Fields = e.local(req)
	e.logger.Info("engine.extract.ok",
		"doc_type", req.DocType, "source", res.Source,
		"filled", res.Fields.Filled())
	return res
}

func (e *Engine) local(req Request) record.FieldMap {
	if req.DocType == constants.DocTypeIdentity {
		front, back := "", ""
		if len(req.Texts) > 0 {
			front = req.Texts[0]
		}
		if len(req.Texts) > 1 {
			back = req.Texts[1]
		}
		return assemble.Identity(front, back).Fields()
	}
	text := ""
	if len(req.Texts) > 0 {
		text = req.Texts[0]
	}
	return assemble.Invoice(text).Fields()
}
