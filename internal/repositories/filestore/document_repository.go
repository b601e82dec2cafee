// Package filestore persists the ledger document as a single JSON file.
// It is the default storage adapter: a two-person ledger fits comfortably
// in one file, and the file doubles as a human-readable backup.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	portsrepo "github.com/splitbooks/splitbooks_app/internal/core/ports/repositories"
)

// FileDocumentRepository stores the document at a fixed path. Writes go
// through a temp file and rename, so a crash mid-write leaves the previous
// document intact. A copy is cached in memory; the file is only read once.
type FileDocumentRepository struct {
	path string

	mu  sync.RWMutex
	doc *domain.Document
}

// NewFileDocumentRepository opens the document at path, seeding an empty
// ledger for the given party names when no file exists yet.
func NewFileDocumentRepository(path, partyAName, partyBName string) (*FileDocumentRepository, error) {
	r := &FileDocumentRepository{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		r.doc = domain.NewDocument(partyAName, partyBName)
		if err := r.persist(r.doc); err != nil {
			return nil, fmt.Errorf("failed to seed ledger file: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read ledger file %s: %w", path, err)
	default:
		var doc domain.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse ledger file %s: %w", path, err)
		}
		r.doc = &doc
	}

	return r, nil
}

var _ portsrepo.DocumentRepository = (*FileDocumentRepository)(nil)

// Load returns a deep copy of the cached document.
func (r *FileDocumentRepository) Load(ctx context.Context) (*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.Clone(), nil
}

// Save writes the document to disk and replaces the cached copy. The cache
// is only updated after the file write succeeds.
func (r *FileDocumentRepository) Save(ctx context.Context, doc *domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.persist(doc); err != nil {
		return err
	}
	r.doc = doc.Clone()
	return nil
}

// persist marshals doc and atomically replaces the ledger file.
func (r *FileDocumentRepository) persist(doc *domain.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ledger document: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create ledger directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp ledger file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace ledger file %s: %w", r.path, err)
	}
	return nil
}
