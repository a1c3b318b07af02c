package services_test

import (
	"context"
	"testing"

	"github.com/cliniccore/clinic_ledger_app/internal/apperrors"
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	portssvc "github.com/cliniccore/clinic_ledger_app/internal/core/ports/services"
	"github.com/cliniccore/clinic_ledger_app/internal/core/services"
	"github.com/cliniccore/clinic_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CollectionRepository ---
type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) SaveDueCollection(ctx context.Context, collection domain.DueCollection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

func (m *MockCollectionRepository) ListDueCollections(ctx context.Context) ([]domain.DueCollection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DueCollection), args.Error(1)
}

func (m *MockCollectionRepository) SaveCompanyCollection(ctx context.Context, collection domain.CompanyCollection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

func (m *MockCollectionRepository) ListCompanyCollections(ctx context.Context) ([]domain.CompanyCollection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyCollection), args.Error(1)
}

// --- Test Suite ---
type CollectionServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockCollectionRepository
	mockInvoiceRepo *MockInvoiceRepository
	service         portssvc.CollectionSvcFacade
}

func (suite *CollectionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCollectionRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewCollectionService(suite.mockRepo, suite.mockInvoiceRepo)
}

// --- Test Cases ---

func (suite *CollectionServiceTestSuite) TestRecordDueCollection_Success() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		InvoiceID: "LAB-1001",
		Status:    domain.StatusDue,
		DueAmount: decimal.RequireFromString("300"),
	}
	req := dto.RecordDueCollectionRequest{
		InvoiceID:       "LAB-1001",
		CollectionDate:  "2025-03-05",
		AmountCollected: decimal.RequireFromString("200"),
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "LAB-1001").Return(invoice, nil).Once()
	suite.mockRepo.On("SaveDueCollection", ctx, mock.MatchedBy(func(c domain.DueCollection) bool {
		return c.InvoiceID == "LAB-1001" && c.AmountCollected.Equal(decimal.RequireFromString("200"))
	})).Return(nil).Once()

	collection, err := suite.service.RecordDueCollection(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(collection)
	suite.NotEmpty(collection.CollectionID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *CollectionServiceTestSuite) TestRecordDueCollection_ExceedsDue() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		InvoiceID: "LAB-1001",
		Status:    domain.StatusDue,
		DueAmount: decimal.RequireFromString("300"),
	}
	req := dto.RecordDueCollectionRequest{
		InvoiceID:       "LAB-1001",
		CollectionDate:  "2025-03-05",
		AmountCollected: decimal.RequireFromString("400"),
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "LAB-1001").Return(invoice, nil).Once()

	collection, err := suite.service.RecordDueCollection(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(collection)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDueCollection")
}

func (suite *CollectionServiceTestSuite) TestRecordDueCollection_VoidedInvoice() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		InvoiceID: "LAB-1001",
		Status:    domain.StatusCancelled,
		DueAmount: decimal.RequireFromString("300"),
	}
	req := dto.RecordDueCollectionRequest{
		InvoiceID:       "LAB-1001",
		CollectionDate:  "2025-03-05",
		AmountCollected: decimal.RequireFromString("100"),
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "LAB-1001").Return(invoice, nil).Once()

	collection, err := suite.service.RecordDueCollection(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(collection)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDueCollection")
}

func (suite *CollectionServiceTestSuite) TestRecordCompanyCollection_Success() {
	ctx := context.Background()
	req := dto.RecordCompanyCollectionRequest{
		CompanyName: "Medico Supplies Ltd",
		Date:        "2025-03-05",
		Amount:      decimal.RequireFromString("1500"),
	}

	suite.mockRepo.On("SaveCompanyCollection", ctx, mock.MatchedBy(func(c domain.CompanyCollection) bool {
		return c.CompanyName == "Medico Supplies Ltd" && c.Amount.Equal(decimal.RequireFromString("1500"))
	})).Return(nil).Once()

	collection, err := suite.service.RecordCompanyCollection(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(collection)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCollectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionServiceTestSuite))
}
