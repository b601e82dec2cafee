package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/splitbooks/splitbooks_app/internal/apperrors"
	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/internal/dto"
	"github.com/splitbooks/splitbooks_app/internal/handlers"
	"github.com/splitbooks/splitbooks_app/pkg/config"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, actor domain.Party) (*dto.IncomeResponse, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.IncomeResponse), args.Error(1)
}
func (m *MockLedgerService) UpdateIncome(ctx context.Context, transactionID string, req dto.UpdateIncomeRequest, actor domain.Party) (*dto.IncomeResponse, error) {
	args := m.Called(ctx, transactionID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.IncomeResponse), args.Error(1)
}
func (m *MockLedgerService) DeleteIncome(ctx context.Context, transactionID string, actor domain.Party) error {
	args := m.Called(ctx, transactionID, actor)
	return args.Error(0)
}
func (m *MockLedgerService) GetIncome(ctx context.Context, transactionID string) (*dto.IncomeResponse, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.IncomeResponse), args.Error(1)
}
func (m *MockLedgerService) ListIncomes(ctx context.Context) ([]dto.IncomeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.IncomeResponse), args.Error(1)
}
func (m *MockLedgerService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, actor domain.Party) (*dto.ExpenseResponse, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExpenseResponse), args.Error(1)
}
func (m *MockLedgerService) UpdateExpense(ctx context.Context, transactionID string, req dto.UpdateExpenseRequest, actor domain.Party) (*dto.ExpenseResponse, error) {
	args := m.Called(ctx, transactionID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExpenseResponse), args.Error(1)
}
func (m *MockLedgerService) DeleteExpense(ctx context.Context, transactionID string, actor domain.Party) error {
	args := m.Called(ctx, transactionID, actor)
	return args.Error(0)
}
func (m *MockLedgerService) GetExpense(ctx context.Context, transactionID string) (*dto.ExpenseResponse, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExpenseResponse), args.Error(1)
}
func (m *MockLedgerService) ListExpenses(ctx context.Context) ([]dto.ExpenseResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ExpenseResponse), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetSummary(ctx context.Context, query dto.ReportQuery, currentParty domain.Party) (*dto.SummaryResponse, error) {
	args := m.Called(ctx, query, currentParty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SummaryResponse), args.Error(1)
}
func (m *MockReportingService) GetMonthlySeries(ctx context.Context, query dto.ReportQuery) (*dto.MonthlySeriesResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MonthlySeriesResponse), args.Error(1)
}
func (m *MockReportingService) GetDebtBalance(ctx context.Context) (*dto.DebtBalanceResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DebtBalanceResponse), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock CounterpartyService ---
type MockCounterpartyService struct {
	mock.Mock
}

func (m *MockCounterpartyService) CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest, actor domain.Party) (*domain.Counterparty, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}
func (m *MockCounterpartyService) ListCounterparties(ctx context.Context) ([]domain.Counterparty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Counterparty), args.Error(1)
}
func (m *MockCounterpartyService) DeleteCounterparty(ctx context.Context, counterpartyID string, actor domain.Party) error {
	args := m.Called(ctx, counterpartyID, actor)
	return args.Error(0)
}

var _ portssvc.CounterpartySvcFacade = (*MockCounterpartyService)(nil)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Export(ctx context.Context) (*dto.ExportResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExportResponse), args.Error(1)
}
func (m *MockDocumentService) Import(ctx context.Context, doc *domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}
func (m *MockDocumentService) UpdateLogo(ctx context.Context, req dto.UpdateLogoRequest, actor domain.Party) error {
	args := m.Called(ctx, req, actor)
	return args.Error(0)
}
func (m *MockDocumentService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, actor domain.Party) error {
	args := m.Called(ctx, req, actor)
	return args.Error(0)
}
func (m *MockDocumentService) GetChangeLog(ctx context.Context) ([]dto.ChangeLogEntryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ChangeLogEntryResponse), args.Error(1)
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Test Suite ---
type IncomeHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockLedger *MockLedgerService
	jwtSecret  string
}

func (suite *IncomeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockLedger = new(MockLedgerService)

	cfg := &config.Config{
		JWTSecret:      suite.jwtSecret,
		LoginRateLimit: "10-M",
	}
	container := &portssvc.ServiceContainer{
		Ledger:       suite.mockLedger,
		Reporting:    new(MockReportingService),
		Counterparty: new(MockCounterpartyService),
		Document:     new(MockDocumentService),
		Token:        new(MockTokenService),
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// generateTestToken creates a JWT whose subject is the given party slot.
func (suite *IncomeHandlerTestSuite) generateTestToken(party domain.Party) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "splitbooks-test",
		Subject:   string(party),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func validCreateIncomeBody() map[string]any {
	return map[string]any{
		"date":         "2026-03-15",
		"currencyCode": "USD",
		"amount":       "1000",
		"split": map[string]any{
			"mode":        "PERCENT",
			"partyAShare": "50",
			"partyBShare": "50",
		},
		"responsibleParty": "PARTY_A",
		"invoiceNumber":    "INV-001",
	}
}

// --- Test Cases ---

func (suite *IncomeHandlerTestSuite) TestCreateIncome_Success() {
	expected := &dto.IncomeResponse{
		TransactionID:    uuid.NewString(),
		Date:             "2026-03-15",
		CurrencyCode:     "USD",
		Amount:           decimal.NewFromInt(1000),
		ResponsibleParty: domain.PartyA,
		InvoiceNumber:    "INV-001",
		Computed: dto.TransactionComputed{
			NetAmount:   decimal.NewFromInt(1000),
			PartyAShare: decimal.NewFromInt(500),
			PartyBShare: decimal.NewFromInt(500),
		},
	}

	suite.mockLedger.On("CreateIncome",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateIncomeRequest) bool {
			return req.CurrencyCode == "USD" && req.InvoiceNumber == "INV-001"
		}),
		domain.PartyA,
	).Return(expected, nil).Once()

	body, _ := json.Marshal(validCreateIncomeBody())
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/incomes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(domain.PartyA))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.IncomeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(expected.TransactionID, got.TransactionID)
	suite.True(got.Computed.NetAmount.Equal(decimal.NewFromInt(1000)))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *IncomeHandlerTestSuite) TestCreateIncome_NoToken() {
	body, _ := json.Marshal(validCreateIncomeBody())
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/incomes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "CreateIncome", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *IncomeHandlerTestSuite) TestCreateIncome_InvalidResponsibleParty() {
	payload := validCreateIncomeBody()
	payload["responsibleParty"] = "PARTY_C"

	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/incomes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(domain.PartyA))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "CreateIncome", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *IncomeHandlerTestSuite) TestGetIncome_NotFound() {
	txnID := uuid.NewString()
	suite.mockLedger.On("GetIncome", mock.Anything, txnID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/incomes/"+txnID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(domain.PartyB))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IncomeHandlerTestSuite) TestUpdateIncome_MissingFxRateMapsToBadRequest() {
	txnID := uuid.NewString()
	payload := validCreateIncomeBody()
	payload["currencyCode"] = "ARS"

	suite.mockLedger.On("UpdateIncome", mock.Anything, txnID, mock.Anything, domain.PartyB).
		Return(nil, apperrors.ErrMissingFxRate).Once()

	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/incomes/"+txnID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(domain.PartyB))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IncomeHandlerTestSuite) TestDeleteIncome_Success() {
	txnID := uuid.NewString()
	suite.mockLedger.On("DeleteIncome", mock.Anything, txnID, domain.PartyA).
		Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/incomes/"+txnID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(domain.PartyA))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func TestIncomeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(IncomeHandlerTestSuite))
}
