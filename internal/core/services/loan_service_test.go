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

// --- Mock LoanRepository ---
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) SaveRepayment(ctx context.Context, repayment domain.Repayment) error {
	args := m.Called(ctx, repayment)
	return args.Error(0)
}

func (m *MockLoanRepository) ListRepayments(ctx context.Context) ([]domain.Repayment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repayment), args.Error(1)
}

// --- Test Suite ---
type LoanServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLoanRepository
	service  portssvc.LoanSvcFacade
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLoanRepository)
	suite.service = services.NewLoanService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *LoanServiceTestSuite) TestCreateLoan_Success() {
	ctx := context.Background()
	req := dto.CreateLoanRequest{
		Source: "City Bank",
		Amount: decimal.RequireFromString("10000"),
		Date:   "2025-01-15",
	}

	suite.mockRepo.On("SaveLoan", ctx, mock.MatchedBy(func(l domain.Loan) bool {
		return l.Source == "City Bank" && l.Amount.Equal(decimal.RequireFromString("10000"))
	})).Return(nil).Once()

	loan, err := suite.service.CreateLoan(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(loan)
	suite.NotEmpty(loan.LoanID)
	suite.Equal("tester", loan.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestCreateLoan_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateLoanRequest{
		Source: "City Bank",
		Amount: decimal.Zero,
		Date:   "2025-01-15",
	}

	loan, err := suite.service.CreateLoan(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveLoan")
}

func (suite *LoanServiceTestSuite) TestRecordRepayment_LoanMissing() {
	ctx := context.Background()
	req := dto.RecordRepaymentRequest{
		LoanID: "missing",
		Amount: decimal.RequireFromString("500"),
		Date:   "2025-02-01",
	}

	suite.mockRepo.On("SaveRepayment", ctx, mock.AnythingOfType("domain.Repayment")).Return(apperrors.ErrNotFound).Once()

	repayment, err := suite.service.RecordRepayment(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(repayment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestOutstanding_NeverClamps() {
	ctx := context.Background()
	loans := []domain.Loan{
		{LoanID: "l1", Amount: decimal.RequireFromString("10000")},
	}
	repayments := []domain.Repayment{
		{RepaymentID: "r1", LoanID: "l1", Amount: decimal.RequireFromString("7000")},
		{RepaymentID: "r2", LoanID: "l1", Amount: decimal.RequireFromString("5000")},
	}

	suite.mockRepo.On("ListLoans", ctx).Return(loans, nil).Once()
	suite.mockRepo.On("ListRepayments", ctx).Return(repayments, nil).Once()

	borrowed, repaid, outstanding, err := suite.service.Outstanding(ctx)

	suite.Require().NoError(err)
	suite.True(borrowed.Equal(decimal.RequireFromString("10000")))
	suite.True(repaid.Equal(decimal.RequireFromString("12000")))
	// Overpayment stays visible as a negative position.
	suite.True(outstanding.Equal(decimal.RequireFromString("-2000")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
