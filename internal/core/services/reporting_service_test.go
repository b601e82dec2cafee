package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/internal/core/services"
	"github.com/splitbooks/splitbooks_app/internal/dto"
)

// fixedNow anchors period presets so the tests do not drift.
var fixedNow = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

func storedTxn(kind domain.TransactionKind, date time.Time, amount int64, responsible domain.Party) domain.Transaction {
	return domain.Transaction{
		TransactionID:    "txn-" + date.Format("20060102"),
		Kind:             kind,
		Date:             date,
		CurrencyCode:     "USD",
		Amount:           decimal.NewFromInt(amount),
		Split: domain.Split{
			Mode:        domain.SplitPercent,
			PartyAShare: decimal.NewFromInt(50),
			PartyBShare: decimal.NewFromInt(50),
		},
		ResponsibleParty: responsible,
	}
}

func reportingDoc() *domain.Document {
	doc := domain.NewDocument("Alice", "Bruno")
	doc.IncomeTransactions = []domain.IncomeTransaction{
		{Transaction: storedTxn(domain.Income, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 1000, domain.PartyA)},
		{Transaction: storedTxn(domain.Income, time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC), 400, domain.PartyB)},
		// Outside every six-month window anchored at fixedNow.
		{Transaction: storedTxn(domain.Income, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), 9999, domain.PartyA)},
	}
	doc.ExpenseTransactions = []domain.ExpenseTransaction{
		{Transaction: storedTxn(domain.Expense, time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC), 200, domain.PartyA)},
	}
	return doc
}

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDocumentRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDocumentRepository)
	suite.service = services.NewReportingServiceAt(suite.mockRepo, testConfig(), func() time.Time { return fixedNow })
}

func (suite *ReportingServiceTestSuite) TestGetSummary_DefaultPeriod() {
	ctx := context.Background()
	doc := reportingDoc()
	suite.mockRepo.On("Load", ctx).Return(doc, nil).Once()

	// No query fields set: the document default (LAST_6_MONTHS) applies,
	// so only the 2026-03 and later rows count.
	resp, err := suite.service.GetSummary(ctx, dto.ReportQuery{}, domain.PartyA)

	suite.Require().NoError(err)
	suite.Equal(domain.PartyA, resp.Party)
	suite.Equal("2026-03-01", resp.From)
	suite.True(resp.TotalIncome.Equal(decimal.NewFromInt(1400)), "got %s", resp.TotalIncome)
	suite.True(resp.CurrentPartyShare.Equal(decimal.NewFromInt(700)))
	suite.True(resp.PartnerShare.Equal(decimal.NewFromInt(700)))
	suite.True(resp.TotalExpenses.Equal(decimal.NewFromInt(200)))
}

func (suite *ReportingServiceTestSuite) TestGetSummary_ExplicitBoundsWinOverPreset() {
	ctx := context.Background()
	doc := reportingDoc()
	suite.mockRepo.On("Load", ctx).Return(doc, nil).Once()

	query := dto.ReportQuery{
		Period: string(domain.PeriodAllTime),
		From:   "2026-07-01",
		To:     "2026-07-31",
	}

	resp, err := suite.service.GetSummary(ctx, query, domain.PartyB)

	suite.Require().NoError(err)
	suite.Equal("2026-07-01", resp.From)
	suite.Equal("2026-07-31", resp.To)
	suite.True(resp.TotalIncome.Equal(decimal.NewFromInt(400)))
	suite.True(resp.TotalExpenses.Equal(decimal.NewFromInt(200)))
}

func (suite *ReportingServiceTestSuite) TestGetSummary_DebtBalanceIgnoresFilter() {
	ctx := context.Background()
	doc := domain.NewDocument("Alice", "Bruno")
	// A paid a 2025 income: B owes A half of it. The summary window below
	// excludes the row, but the balance still reflects it.
	doc.IncomeTransactions = []domain.IncomeTransaction{
		{Transaction: storedTxn(domain.Income, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 800, domain.PartyA)},
	}
	suite.mockRepo.On("Load", ctx).Return(doc, nil).Once()

	query := dto.ReportQuery{From: "2026-01-01", To: "2026-12-31"}

	resp, err := suite.service.GetSummary(ctx, query, domain.PartyA)

	suite.Require().NoError(err)
	suite.True(resp.TotalIncome.IsZero())
	suite.True(resp.DebtBalance.Equal(decimal.NewFromInt(-400)), "got %s", resp.DebtBalance)
}

func (suite *ReportingServiceTestSuite) TestGetMonthlySeries_BucketsAscendingAndSkipsGaps() {
	ctx := context.Background()
	doc := reportingDoc()
	suite.mockRepo.On("Load", ctx).Return(doc, nil).Once()

	resp, err := suite.service.GetMonthlySeries(ctx, dto.ReportQuery{Period: string(domain.PeriodAllTime)})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Points, 3)
	suite.Equal("2025-01", resp.Points[0].YearMonth)
	suite.Equal("2026-03", resp.Points[1].YearMonth)
	// 2026-07 nets the 400 income against the 200 expense.
	suite.Equal("2026-07", resp.Points[2].YearMonth)
	suite.True(resp.Points[2].Net.Equal(decimal.NewFromInt(200)), "got %s", resp.Points[2].Net)
}

func (suite *ReportingServiceTestSuite) TestGetDebtBalance_Settled() {
	ctx := context.Background()
	doc := domain.NewDocument("Alice", "Bruno")
	suite.mockRepo.On("Load", ctx).Return(doc, nil).Once()

	resp, err := suite.service.GetDebtBalance(ctx)

	suite.Require().NoError(err)
	suite.True(resp.Balance.IsZero())
	suite.Equal("SETTLED", resp.Direction)
}

func (suite *ReportingServiceTestSuite) TestGetDebtBalance_Direction() {
	ctx := context.Background()
	doc := domain.NewDocument("Alice", "Bruno")
	// A paid a shared expense: B owes A their half.
	doc.ExpenseTransactions = []domain.ExpenseTransaction{
		{Transaction: storedTxn(domain.Expense, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), 300, domain.PartyA)},
	}
	suite.mockRepo.On("Load", ctx).Return(doc, nil).Once()

	resp, err := suite.service.GetDebtBalance(ctx)

	suite.Require().NoError(err)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(150)))
	suite.Equal("PARTY_B_OWES_PARTY_A", resp.Direction)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(150)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
