package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/record"
)

// StoredIdentity is one persisted citizen-card extraction plus provenance.
type StoredIdentity struct {
	ID         string
	Identity   record.Identity
	Source     string // "external" | "local"
	RawText    string
	SourceFile string
	CreatedAt  time.Time
}

type IdentityRepository interface {
	Save(ctx context.Context, card StoredIdentity) (StoredIdentity, error)
	List(ctx context.Context) ([]StoredIdentity, error)
	FindByIDNumber(ctx context.Context, idNumber string) (*StoredIdentity, error)
}

type identityRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewIdentityRepository(db *sql.DB, logger *slog.Logger) IdentityRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &identityRepository{db: db, logger: logger}
}

func (r *identityRepository) Save(ctx context.Context, card StoredIdentity) (StoredIdentity, error) {
	if card.ID == "" {
		card.ID = uuid.New().String()
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO identities
			(id, id_number, full_name, date_of_birth, sex, nationality,
			 place_of_origin, permanent_residence, issue_date, issuing_authority,
			 source, raw_text, source_file, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		card.ID, card.Identity.IDNumber, card.Identity.FullName,
		card.Identity.DateOfBirth, card.Identity.Sex, card.Identity.Nationality,
		card.Identity.PlaceOfOrigin, card.Identity.PermanentResidence,
		card.Identity.IssueDate, card.Identity.IssuingAuthority,
		card.Source, card.RawText, card.SourceFile, card.CreatedAt)
	if err != nil {
		r.logger.Error("repository.identity.save_failed", "error", err)
		return StoredIdentity{}, err
	}
	r.logger.Info("repository.identity.saved",
		"id", card.ID, "id_number", card.Identity.IDNumber, "source", card.Source)
	return card, nil
}

func (r *identityRepository) List(ctx context.Context) ([]StoredIdentity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, id_number, full_name, date_of_birth, sex, nationality,
		       place_of_origin, permanent_residence, issue_date, issuing_authority,
		       source, raw_text, source_file, created_at
		FROM identities ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredIdentity
	for rows.Next() {
		var card StoredIdentity
		if err := rows.Scan(&card.ID, &card.Identity.IDNumber, &card.Identity.FullName,
			&card.Identity.DateOfBirth, &card.Identity.Sex, &card.Identity.Nationality,
			&card.Identity.PlaceOfOrigin, &card.Identity.PermanentResidence,
			&card.Identity.IssueDate, &card.Identity.IssuingAuthority,
			&card.Source, &card.RawText, &card.SourceFile, &card.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, card)
	}
	return out, rows.Err()
}

func (r *identityRepository) FindByIDNumber(ctx context.Context, idNumber string) (*StoredIdentity, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, id_number, full_name, date_of_birth, sex, nationality,
		       place_of_origin, permanent_residence, issue_date, issuing_authority,
		       source, raw_text, source_file, created_at
		FROM identities WHERE id_number = ? ORDER BY created_at DESC LIMIT 1`, idNumber)

	var card StoredIdentity
	err := row.Scan(&card.ID, &card.Identity.IDNumber, &card.Identity.FullName,
		&card.Identity.DateOfBirth, &card.Identity.Sex, &card.Identity.Nationality,
		&card.Identity.PlaceOfOrigin, &card.Identity.PermanentResidence,
		&card.Identity.IssueDate, &card.Identity.IssuingAuthority,
		&card.Source, &card.RawText, &card.SourceFile, &card.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}
