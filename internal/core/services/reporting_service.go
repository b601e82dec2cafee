package services

import (
	"context"
	"fmt"
	"time"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	"github.com/splitbooks/splitbooks_app/internal/core/finance"
	portsrepo "github.com/splitbooks/splitbooks_app/internal/core/ports/repositories"
	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/internal/dto"
	"github.com/splitbooks/splitbooks_app/pkg/config"
)

// reportingService derives summaries, the monthly series and the debt
// balance. Everything is recomputed from the document on each call; the
// dataset is small enough that no caching layer sits in between.
type reportingService struct {
	repo portsrepo.DocumentReader
	cfg  *config.Config
	// now is injectable so period presets are testable.
	now func() time.Time
}

// NewReportingService creates a new ReportingService.
func NewReportingService(repo portsrepo.DocumentReader, cfg *config.Config) portssvc.ReportingSvcFacade {
	return &reportingService{repo: repo, cfg: cfg, now: time.Now}
}

// NewReportingServiceAt creates a ReportingService with a fixed clock.
func NewReportingServiceAt(repo portsrepo.DocumentReader, cfg *config.Config, now func() time.Time) portssvc.ReportingSvcFacade {
	return &reportingService{repo: repo, cfg: cfg, now: now}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// criteriaFor resolves a report query to filter criteria. Explicit bounds
// win over the period preset; with neither, the document's default period
// applies.
func (s *reportingService) criteriaFor(query dto.ReportQuery, doc *domain.Document) (finance.Criteria, error) {
	criteria := finance.Criteria{
		CounterpartyID:   query.CounterpartyID,
		ResponsibleParty: domain.Party(query.ResponsibleParty),
	}

	period := doc.Settings.DefaultPeriod
	if query.Period != "" {
		period = domain.Period(query.Period)
	}
	criteria.Start, criteria.End = finance.PeriodRange(period, s.now().UTC())

	if query.From != "" {
		from, err := time.ParseInLocation(dto.DateLayout, query.From, time.UTC)
		if err != nil {
			return finance.Criteria{}, fmt.Errorf("invalid 'from' date: %w", err)
		}
		criteria.Start = from
	}
	if query.To != "" {
		to, err := time.ParseInLocation(dto.DateLayout, query.To, time.UTC)
		if err != nil {
			return finance.Criteria{}, fmt.Errorf("invalid 'to' date: %w", err)
		}
		criteria.End = to
	}
	return criteria, nil
}

// GetSummary aggregates the filtered set for the requesting party.
func (s *reportingService) GetSummary(ctx context.Context, query dto.ReportQuery, currentParty domain.Party) (*dto.SummaryResponse, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	criteria, err := s.criteriaFor(query, doc)
	if err != nil {
		return nil, err
	}

	incomes := finance.FilterIncomes(doc.IncomeTransactions, criteria)
	expenses := finance.FilterExpenses(doc.ExpenseTransactions, criteria)

	summary, err := finance.Summarize(incomes, expenses, currentParty, s.cfg.ReportingCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	// The debt balance always covers the whole ledger, not the filter:
	// it is the running obligation, not a windowed aggregate.
	balance, err := finance.DebtBalance(doc, s.cfg.ReportingCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to compute debt balance: %w", err)
	}

	return &dto.SummaryResponse{
		From:              criteria.Start.Format(dto.DateLayout),
		To:                criteria.End.Format(dto.DateLayout),
		Party:             currentParty,
		TotalIncome:       summary.TotalIncome,
		CurrentPartyShare: summary.CurrentPartyShare,
		PartnerShare:      summary.PartnerShare,
		TotalExpenses:     summary.TotalExpenses,
		DebtBalance:       balance,
	}, nil
}

// GetMonthlySeries buckets the filtered set by calendar month.
func (s *reportingService) GetMonthlySeries(ctx context.Context, query dto.ReportQuery) (*dto.MonthlySeriesResponse, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	criteria, err := s.criteriaFor(query, doc)
	if err != nil {
		return nil, err
	}

	incomes := finance.FilterIncomes(doc.IncomeTransactions, criteria)
	expenses := finance.FilterExpenses(doc.ExpenseTransactions, criteria)

	series, err := finance.AggregateMonthly(incomes, expenses, s.cfg.ReportingCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly series: %w", err)
	}

	resp := dto.ToMonthlySeriesResponse(series)
	return &resp, nil
}

// GetDebtBalance recomputes the running balance over all transactions.
func (s *reportingService) GetDebtBalance(ctx context.Context) (*dto.DebtBalanceResponse, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger document: %w", err)
	}

	balance, err := finance.DebtBalance(doc, s.cfg.ReportingCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to compute debt balance: %w", err)
	}

	resp := dto.ToDebtBalanceResponse(balance)
	return &resp, nil
}
