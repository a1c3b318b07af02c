package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/apperrors"
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	portssvc "github.com/cliniccore/clinic_ledger_app/internal/core/ports/services"
	"github.com/cliniccore/clinic_ledger_app/internal/core/services"
	"github.com/cliniccore/clinic_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, kind *domain.InvoiceKind, from, to time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, kind, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, invoiceID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvoiceRepository
	service  portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.service = services.NewInvoiceService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		Kind:        domain.KindLab,
		InvoiceDate: "2025-02-10",
		Items: []dto.CreateInvoiceLineItemRequest{
			{Name: "USG of whole abdomen", Price: decimal.RequireFromString("800"), Quantity: 1, PassThroughFee: decimal.RequireFromString("100")},
		},
		Total:          decimal.RequireFromString("800"),
		PaidAmount:     decimal.RequireFromString("500"),
		CommissionPaid: decimal.RequireFromString("50"),
	}

	suite.mockRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return strings.HasPrefix(inv.InvoiceID, "LAB-") &&
			inv.Status == domain.StatusDue &&
			inv.DueAmount.Equal(decimal.RequireFromString("300")) &&
			inv.CreatedBy == creatorUserID
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.True(strings.HasPrefix(invoice.InvoiceID, "LAB-"))
	suite.Equal(domain.StatusDue, invoice.Status)
	suite.True(invoice.DueAmount.Equal(decimal.RequireFromString("300")))
	suite.Len(invoice.Items, 1)
	suite.Equal(invoice.InvoiceID, invoice.Items[0].InvoiceID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_FullyPaidGetsPaidStatus() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		Kind:        domain.KindIndoorClinic,
		InvoiceDate: "2025-02-10",
		Total:       decimal.RequireFromString("2000"),
		Discount:    decimal.RequireFromString("200"),
		PaidAmount:  decimal.RequireFromString("1800"),
	}

	suite.mockRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return strings.HasPrefix(inv.InvoiceID, "CLN-") && inv.Status == domain.StatusPaid && inv.DueAmount.IsZero()
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, invoice.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NegativeTotal() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		Kind:        domain.KindLab,
		InvoiceDate: "2025-02-10",
		Total:       decimal.RequireFromString("-10"),
	}

	invoice, err := suite.service.CreateInvoice(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_SaveError() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		Kind:        domain.KindPharmacySale,
		InvoiceDate: "2025-02-10",
		Total:       decimal.RequireFromString("100"),
		PaidAmount:  decimal.RequireFromString("100"),
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(expectedErr).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCancelInvoice_Success() {
	ctx := context.Background()
	invoiceID := "LAB-1234"
	existing := &domain.Invoice{InvoiceID: invoiceID, Status: domain.StatusDue}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateInvoiceStatus", ctx, invoiceID, domain.StatusCancelled, "tester", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.CancelInvoice(ctx, invoiceID, "tester")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCancelInvoice_AlreadyVoided() {
	ctx := context.Background()
	invoiceID := "LAB-1234"
	existing := &domain.Invoice{InvoiceID: invoiceID, Status: domain.StatusCancelled}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()

	err := suite.service.CancelInvoice(ctx, invoiceID, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoiceStatus")
}

func (suite *InvoiceServiceTestSuite) TestCancelInvoice_NotFound() {
	ctx := context.Background()
	invoiceID := "LAB-missing"

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.CancelInvoice(ctx, invoiceID, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListInvoices", ctx, (*domain.InvoiceKind)(nil), time.Time{}, time.Time{}).Return(nil, nil).Once()

	invoices, err := suite.service.ListInvoices(ctx, nil, time.Time{}, time.Time{})

	suite.Require().NoError(err)
	suite.NotNil(invoices)
	suite.Empty(invoices)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
