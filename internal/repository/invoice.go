package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/record"
)

// StoredInvoice is one persisted extraction result plus its provenance.
type StoredInvoice struct {
	ID         string
	Invoice    record.Invoice
	Source     string // "external" | "local"
	RawText    string
	SourceFile string
	CreatedAt  time.Time
}

type InvoiceRepository interface {
	Save(ctx context.Context, inv StoredInvoice) (StoredInvoice, error)
	List(ctx context.Context) ([]StoredInvoice, error)
	FindByNumber(ctx context.Context, number string) (*StoredInvoice, error)
}

type invoiceRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewInvoiceRepository(db *sql.DB, logger *slog.Logger) InvoiceRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &invoiceRepository{db: db, logger: logger}
}

func (r *invoiceRepository) Save(ctx context.Context, inv StoredInvoice) (StoredInvoice, error) {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invoices
			(id, invoice_number, invoice_date, line_items, issuer_name,
			 total_after_tax, source, raw_text, source_file, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Invoice.InvoiceNumber, inv.Invoice.Date, inv.Invoice.LineItems,
		inv.Invoice.IssuerName, inv.Invoice.TotalAfterTax,
		inv.Source, inv.RawText, inv.SourceFile, inv.CreatedAt)
	if err != nil {
		r.logger.Error("repository.invoice.save_failed", "error", err)
		return StoredInvoice{}, err
	}
	r.logger.Info("repository.invoice.saved",
		"id", inv.ID, "invoice_number", inv.Invoice.InvoiceNumber, "source", inv.Source)
	return inv, nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]StoredInvoice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, invoice_number, invoice_date, line_items, issuer_name,
		       total_after_tax, source, raw_text, source_file, created_at
		FROM invoices ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredInvoice
	for rows.Next() {
		var inv StoredInvoice
		if err := rows.Scan(&inv.ID, &inv.Invoice.InvoiceNumber, &inv.Invoice.Date,
			&inv.Invoice.LineItems, &inv.Invoice.IssuerName, &inv.Invoice.TotalAfterTax,
			&inv.Source, &inv.RawText, &inv.SourceFile, &inv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invoiceRepository) FindByNumber(ctx context.Context, number string) (*StoredInvoice, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, invoice_number, invoice_date, line_items, issuer_name,
		       total_after_tax, source, raw_text, source_file, created_at
		FROM invoices WHERE invoice_number = ? ORDER BY created_at DESC LIMIT 1`, number)

	var inv StoredInvoice
	err := row.Scan(&inv.ID, &inv.Invoice.InvoiceNumber, &inv.Invoice.Date,
		&inv.Invoice.LineItems, &inv.Invoice.IssuerName, &inv.Invoice.TotalAfterTax,
		&inv.Source, &inv.RawText, &inv.SourceFile, &inv.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
