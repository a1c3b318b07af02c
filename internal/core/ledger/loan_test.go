package ledger_test

import (
	"testing"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoanOutstanding(t *testing.T) {
	loans := []domain.Loan{
		{LoanID: "LN-1", Amount: dec("10000")},
		{LoanID: "LN-2", Amount: dec("5000")},
	}
	repayments := []domain.Repayment{
		{LoanID: "LN-1", Amount: dec("3000")},
		{LoanID: "LN-2", Amount: dec("1000")},
	}

	assertDecimal(t, "11000", ledger.LoanOutstanding(loans, repayments))
}

func TestLoanOutstanding_EmptyHistory(t *testing.T) {
	assert.True(t, ledger.LoanOutstanding(nil, nil).IsZero())
}

func TestLoanOutstanding_OverRepaymentVisible(t *testing.T) {
	loans := []domain.Loan{{LoanID: "LN-1", Amount: dec("1000")}}
	repayments := []domain.Repayment{{LoanID: "LN-1", Amount: dec("1500")}}

	// No clamp: over-repayment stays visible as a negative figure.
	assertDecimal(t, "-500", ledger.LoanOutstanding(loans, repayments))
}

func TestPeriodRepayments(t *testing.T) {
	repayments := []domain.Repayment{
		{LoanID: "LN-1", Amount: dec("1000"), Date: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{LoanID: "LN-1", Amount: dec("1000"), Date: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{LoanID: "LN-1", Amount: dec("500")}, // zero date excluded
	}

	p, err := ledger.NewPeriod(ledger.PeriodMonth, time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assertDecimal(t, "1000", ledger.PeriodRepayments(repayments, p))
}
