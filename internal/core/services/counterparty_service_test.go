package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/splitbooks/splitbooks_app/internal/apperrors"
	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/internal/core/services"
	"github.com/splitbooks/splitbooks_app/internal/dto"
)

type CounterpartyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDocumentRepository
	service  portssvc.CounterpartySvcFacade
}

func (suite *CounterpartyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDocumentRepository)
	suite.service = services.NewCounterpartyService(suite.mockRepo)
}

func (suite *CounterpartyServiceTestSuite) TestCreateCounterparty_Success() {
	ctx := context.Background()
	doc := domain.NewDocument("Alice", "Bruno")

	var saved *domain.Document
	suite.mockRepo.On("Load", ctx).Return(doc, nil).Once()
	suite.mockRepo.On("Save", ctx, mock.AnythingOfType("*domain.Document")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Document) }).
		Return(nil).Once()

	cp, err := suite.service.CreateCounterparty(ctx, dto.CreateCounterpartyRequest{Name: "  Acme Corp  "}, domain.PartyA)

	suite.Require().NoError(err)
	suite.Require().NotNil(cp)
	suite.Equal("Acme Corp", cp.Name)
	suite.NotEmpty(cp.CounterpartyID)

	suite.Require().NotNil(saved)
	suite.Len(saved.Meta.Counterparties, 1)
	suite.Require().Len(saved.ChangeLog, 1)
	suite.Equal(domain.ActionCounterpartyCreated, saved.ChangeLog[0].Action)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CounterpartyServiceTestSuite) TestCreateCounterparty_DuplicateNameCaseInsensitive() {
	ctx := context.Background()
	doc := domain.NewDocument("Alice", "Bruno")
	doc.Meta.Counterparties = []domain.Counterparty{
		{CounterpartyID: uuid.NewString(), Name: "Acme Corp"},
	}

	suite.mockRepo.On("Load", ctx).Return(doc, nil).Once()

	cp, err := suite.service.CreateCounterparty(ctx, dto.CreateCounterpartyRequest{Name: "acme corp"}, domain.PartyB)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(cp)
	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *CounterpartyServiceTestSuite) TestCreateCounterparty_BlankName() {
	ctx := context.Background()

	cp, err := suite.service.CreateCounterparty(ctx, dto.CreateCounterpartyRequest{Name: "   "}, domain.PartyA)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(cp)
}

func (suite *CounterpartyServiceTestSuite) TestDeleteCounterparty_InUse() {
	ctx := context.Background()
	cpID := uuid.NewString()
	doc := domain.NewDocument("Alice", "Bruno")
	doc.Meta.Counterparties = []domain.Counterparty{{CounterpartyID: cpID, Name: "Acme Corp"}}
	doc.IncomeTransactions = []domain.IncomeTransaction{
		{Transaction: domain.Transaction{TransactionID: uuid.NewString(), Kind: domain.Income}, CounterpartyID: cpID},
	}

	suite.mockRepo.On("Load", ctx).Return(doc, nil).Once()

	err := suite.service.DeleteCounterparty(ctx, cpID, domain.PartyA)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCounterpartyInUse)
	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *CounterpartyServiceTestSuite) TestDeleteCounterparty_Success() {
	ctx := context.Background()
	cpID := uuid.NewString()
	doc := domain.NewDocument("Alice", "Bruno")
	doc.Meta.Counterparties = []domain.Counterparty{{CounterpartyID: cpID, Name: "Acme Corp"}}

	var saved *domain.Document
	suite.mockRepo.On("Load", ctx).Return(doc, nil).Once()
	suite.mockRepo.On("Save", ctx, mock.AnythingOfType("*domain.Document")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Document) }).
		Return(nil).Once()

	err := suite.service.DeleteCounterparty(ctx, cpID, domain.PartyB)

	suite.Require().NoError(err)
	suite.Require().NotNil(saved)
	suite.Empty(saved.Meta.Counterparties)
	suite.Equal(domain.ActionCounterpartyDeleted, saved.ChangeLog[len(saved.ChangeLog)-1].Action)
}

func (suite *CounterpartyServiceTestSuite) TestDeleteCounterparty_NotFound() {
	ctx := context.Background()
	doc := domain.NewDocument("Alice", "Bruno")

	suite.mockRepo.On("Load", ctx).Return(doc, nil).Once()

	err := suite.service.DeleteCounterparty(ctx, uuid.NewString(), domain.PartyA)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCounterpartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CounterpartyServiceTestSuite))
}
