package services

import (
	"context"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	"github.com/splitbooks/splitbooks_app/internal/dto"
)

// ReportingSvcFacade derives summary totals, the monthly time series and
// the running debt balance from the full transaction set. All values are
// recomputed on every call; nothing derived is ever stored.
type ReportingSvcFacade interface {
	// GetSummary aggregates the filtered set for the requesting party.
	GetSummary(ctx context.Context, query dto.ReportQuery, currentParty domain.Party) (*dto.SummaryResponse, error)

	// GetMonthlySeries buckets the filtered set by calendar month.
	GetMonthlySeries(ctx context.Context, query dto.ReportQuery) (*dto.MonthlySeriesResponse, error)

	// GetDebtBalance recomputes the net obligation over all transactions,
	// ignoring any filter: the balance is a whole-ledger property.
	GetDebtBalance(ctx context.Context) (*dto.DebtBalanceResponse, error)
}
