package services

import (
	"context"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	"github.com/splitbooks/splitbooks_app/internal/dto"
)

// DocumentSvcFacade handles whole-document concerns: export, import,
// settings, logo and the audit trail.
type DocumentSvcFacade interface {
	// Export returns the full document and a timestamped filename.
	// Exporting then importing the result yields an identical document.
	Export(ctx context.Context) (*dto.ExportResponse, error)

	// Import validates the incoming document and replaces the stored one
	// verbatim, with no merge and no migration. A document that fails
	// validation is rejected and the stored state is left unchanged.
	Import(ctx context.Context, doc *domain.Document) error

	// UpdateLogo stores an opaque logo payload in the document meta.
	UpdateLogo(ctx context.Context, req dto.UpdateLogoRequest, actor domain.Party) error

	// UpdateSettings changes persisted preferences.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, actor domain.Party) error

	// GetChangeLog returns the audit trail, most recent first.
	GetChangeLog(ctx context.Context) ([]dto.ChangeLogEntryResponse, error)
}
