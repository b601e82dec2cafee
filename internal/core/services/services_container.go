package services

import (
	portsrepo "github.com/splitbooks/splitbooks_app/internal/core/ports/repositories"
	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repo portsrepo.DocumentRepository) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repo, cfg)
	container.Reporting = NewReportingService(repo, cfg)
	container.Counterparty = NewCounterpartyService(repo)
	container.Document = NewDocumentService(repo, cfg)
	container.Token = NewTokenService(cfg)

	return container
}
