// Package pgsql persists the ledger document as a single JSONB row. The
// document stays the unit of persistence; Postgres contributes durability
// and backups, not a relational decomposition.
package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	portsrepo "github.com/splitbooks/splitbooks_app/internal/core/ports/repositories"
)

// documentID keys the singleton row; there is exactly one ledger.
const documentID = "ledger"

type PgxDocumentRepository struct {
	pool *pgxpool.Pool

	partyAName string
	partyBName string
}

// NewPgxDocumentRepository creates a repository over the given pool. The
// party names seed an empty ledger when the row does not exist yet.
func NewPgxDocumentRepository(pool *pgxpool.Pool, partyAName, partyBName string) *PgxDocumentRepository {
	return &PgxDocumentRepository{pool: pool, partyAName: partyAName, partyBName: partyBName}
}

var _ portsrepo.DocumentRepository = (*PgxDocumentRepository)(nil)

// Load retrieves the document row, seeding an empty ledger on first use.
func (r *PgxDocumentRepository) Load(ctx context.Context) (*domain.Document, error) {
	query := `
		SELECT body
		FROM ledger_documents
		WHERE document_id = $1;
	`
	var raw []byte
	err := r.pool.QueryRow(ctx, query, documentID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			doc := domain.NewDocument(r.partyAName, r.partyBName)
			if err := r.Save(ctx, doc); err != nil {
				return nil, fmt.Errorf("failed to seed ledger document: %w", err)
			}
			return doc, nil
		}
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse ledger document row: %w", err)
	}
	return &doc, nil
}

// Save upserts the document row wholesale.
func (r *PgxDocumentRepository) Save(ctx context.Context, doc *domain.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger document: %w", err)
	}

	query := `
		INSERT INTO ledger_documents (document_id, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (document_id) DO UPDATE SET
			body = EXCLUDED.body,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.pool.Exec(ctx, query, documentID, raw); err != nil {
		return fmt.Errorf("failed to save ledger document: %w", err)
	}
	return nil
}
