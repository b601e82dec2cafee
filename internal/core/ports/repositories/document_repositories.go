package repositories

import (
	"context"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

// DocumentReader defines read access to the persisted ledger document.
type DocumentReader interface {
	// Load retrieves the current document. Implementations return a copy
	// the caller may mutate freely.
	Load(ctx context.Context) (*domain.Document, error)
}

// DocumentWriter defines write access to the persisted ledger document.
type DocumentWriter interface {
	// Save replaces the stored document wholesale. There is no partial
	// update: the document is the unit of persistence.
	Save(ctx context.Context, doc *domain.Document) error
}

// DocumentRepository combines read and write access. It is the storage
// adapter the services depend on; implementations are swappable (local
// JSON file, relational backend).
type DocumentRepository interface {
	DocumentReader
	DocumentWriter
}
