package llm

import (
	"context"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/constants"
	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/record"
)

// ExtractRequest carries one document's OCR transcripts to the model.
type ExtractRequest struct {
	DocType constants.DocType
	// Texts holds the raw OCR blocks: one for an invoice, front then back
	// for an identity card.
	Texts []string
	// Credential is the per-call API key supplied by the host application.
	// The extractor must not cache it; when empty, the client falls back
	// to its configured key.
	Credential string
}

// FieldExtractor is the interface the extraction engine depends on.
// Implementations return the parsed field map plus the raw model payload
// for audit logging. Any error means the deterministic pipeline takes over.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (record.FieldMap, []byte /*rawJSON*/, error)
}
