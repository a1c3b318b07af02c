package ledger_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func march2025() time.Time {
	return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
}

// fixtureSnapshot builds a snapshot spanning February and March 2025
// with activity in every ledger.
func fixtureSnapshot() ledger.Snapshot {
	march := func(day int) time.Time {
		return time.Date(2025, time.March, day, 10, 0, 0, 0, time.UTC)
	}
	feb := func(day int) time.Time {
		return time.Date(2025, time.February, day, 10, 0, 0, 0, time.UTC)
	}

	return ledger.Snapshot{
		Invoices: []domain.Invoice{
			{
				InvoiceID:   "LAB-1001",
				Kind:        domain.KindLab,
				InvoiceDate: march(3),
				Total:       dec("1000"),
				PaidAmount:  dec("800"),
				Status:      domain.StatusPaid,
				Items: []domain.InvoiceLineItem{
					{Name: "USG of whole abdomen", Price: dec("1000"), Quantity: 1, PassThroughFee: dec("100")},
				},
				CommissionPaid: dec("50"),
			},
			{
				InvoiceID:   "LAB-1002",
				Kind:        domain.KindLab,
				InvoiceDate: march(5),
				Total:       dec("400"),
				PaidAmount:  dec("400"),
				Status:      domain.StatusPaid,
				Items: []domain.InvoiceLineItem{
					{Name: "CBC", Price: dec("400"), Quantity: 1},
				},
			},
			{
				// Cancelled: must contribute zero everywhere.
				InvoiceID:   "LAB-1003",
				Kind:        domain.KindLab,
				InvoiceDate: march(6),
				Total:       dec("5000"),
				PaidAmount:  dec("5000"),
				Status:      domain.StatusCancelled,
				Items: []domain.InvoiceLineItem{
					{Name: "ECG", Price: dec("5000"), Quantity: 1},
				},
				CommissionPaid: dec("500"),
			},
			{
				InvoiceID:   "CLN-2001",
				Kind:        domain.KindIndoorClinic,
				InvoiceDate: march(4),
				Total:       dec("2000"),
				PaidAmount:  dec("2000"),
				Status:      domain.StatusPaid,
				Items: []domain.InvoiceLineItem{
					{Name: "Admission Fee", Price: dec("500"), Quantity: 1, IsClinicFund: true},
					{Name: "NVD charge", ServiceGroup: "Delivery", Price: dec("1500"), Quantity: 1, IsClinicFund: true},
				},
			},
			{
				// Missing date: excluded from every period.
				InvoiceID:  "CLN-2002",
				Kind:       domain.KindIndoorClinic,
				Total:      dec("900"),
				PaidAmount: dec("900"),
				Status:     domain.StatusPaid,
			},
			{
				InvoiceID:   "PHS-3001",
				Kind:        domain.KindPharmacySale,
				InvoiceDate: march(7),
				Total:       dec("300"),
				PaidAmount:  dec("300"),
				Status:      domain.StatusPaid,
			},
			{
				InvoiceID:   "PHP-4001",
				Kind:        domain.KindPharmacyPurchase,
				InvoiceDate: march(8),
				Total:       dec("250"),
				PaidAmount:  dec("250"),
				Status:      domain.StatusPosted,
			},
			{
				// Prior-period activity, only visible to carry-forward.
				InvoiceID:   "LAB-0900",
				Kind:        domain.KindLab,
				InvoiceDate: feb(20),
				Total:       dec("600"),
				PaidAmount:  dec("600"),
				Status:      domain.StatusPaid,
				Items: []domain.InvoiceLineItem{
					{Name: "X-Ray chest", Price: dec("600"), Quantity: 1},
				},
			},
		},
		Expenses: domain.ExpenseBook{
			"2025-03-05": {
				{Category: "Stuff salary", SubCategory: "Rahim", PaidAmount: dec("1200")},
				{Category: "Clinic development", PaidAmount: dec("300")},
			},
			"2025-02-15": {
				{Category: "Generator", PaidAmount: dec("400")},
			},
			"not-a-date": {
				{Category: "Generator", PaidAmount: dec("9999")},
			},
		},
		DueCollections: []domain.DueCollection{
			{InvoiceID: "LAB-0800", CollectionDate: time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), AmountCollected: dec("150")},
			{InvoiceID: "CLN-0800", CollectionDate: time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC), AmountCollected: dec("250")},
			{InvoiceID: "LAB-0801", CollectionDate: time.Date(2025, time.January, 9, 0, 0, 0, 0, time.UTC), AmountCollected: dec("500")},
		},
		CompanyCollections: []domain.CompanyCollection{
			{CompanyName: "Acme Health", Date: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), Amount: dec("700")},
		},
		Loans: []domain.Loan{
			{LoanID: "LN-1", Source: "City Bank", Amount: dec("10000"), Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
		},
		Repayments: []domain.Repayment{
			{LoanID: "LN-1", Amount: dec("1000"), Date: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)},
			{LoanID: "LN-1", Amount: dec("1000"), Date: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestAggregate_DiagnosticLedger(t *testing.T) {
	p, err := ledger.NewPeriod(ledger.PeriodMonth, march2025())
	require.NoError(t, err)

	b := ledger.Aggregate(fixtureSnapshot(), ledger.LedgerDiagnostic, p)

	// LAB-1001 nets 650 into usg, LAB-1002 400 into pathology,
	// cancelled LAB-1003 contributes nothing.
	assertDecimal(t, "650", b.Collection[ledger.TagUSG])
	assertDecimal(t, "400", b.Collection[ledger.TagPathology])
	_, hasECG := b.Collection[ledger.TagECG]
	assert.False(t, hasECG)

	// Only the LAB- prefixed in-period due recovery counts.
	assertDecimal(t, "150", b.DueRecovery)

	// Diagnostic ledger carries no expense book and no loans.
	assert.Empty(t, b.Expense)
	assertDecimal(t, "0", b.LoanRepayment)

	assertDecimal(t, "1200", b.TotalCollection())
	assertDecimal(t, "1200", b.NetBalance())
}

func TestAggregate_ClinicLedger(t *testing.T) {
	p, err := ledger.NewPeriod(ledger.PeriodMonth, march2025())
	require.NoError(t, err)

	b := ledger.Aggregate(fixtureSnapshot(), ledger.LedgerClinic, p)

	// CLN-2001: 2000 paid, no deductions, split 500/1500 by billed share.
	assertDecimal(t, "500", b.Collection[ledger.TagAdmission])
	assertDecimal(t, "1500", b.Collection[ledger.TagNVD])
	assertDecimal(t, "250", b.DueRecovery)

	assertDecimal(t, "1200", b.Expense[ledger.ExpStuffSalary])
	assertDecimal(t, "300", b.Expense[ledger.ExpClinicDev])
	assertDecimal(t, "1000", b.LoanRepayment)

	assertDecimal(t, "2250", b.TotalCollection())
	assertDecimal(t, "2500", b.TotalExpense())
	assertDecimal(t, "-250", b.NetBalance())
}

func TestAggregate_CombinedLedger(t *testing.T) {
	p, err := ledger.NewPeriod(ledger.PeriodMonth, march2025())
	require.NoError(t, err)

	b := ledger.Aggregate(fixtureSnapshot(), ledger.LedgerCombined, p)

	assertDecimal(t, "300", b.Collection[ledger.TagPharmacy])
	assertDecimal(t, "700", b.Collection[ledger.TagCompany])
	assertDecimal(t, "400", b.DueRecovery)
	assertDecimal(t, "250", b.Expense[ledger.ExpPharmacyPurchase])

	// Reconciliation: bucket sums plus due recovery equal the total.
	sum := b.DueRecovery
	for _, amount := range b.Collection {
		sum = sum.Add(amount)
	}
	assert.True(t, sum.Equal(b.TotalCollection()))
}

func TestAggregate_Idempotent(t *testing.T) {
	snap := fixtureSnapshot()
	p, err := ledger.NewPeriod(ledger.PeriodMonth, march2025())
	require.NoError(t, err)

	first := ledger.Aggregate(snap, ledger.LedgerCombined, p)
	second := ledger.Aggregate(snap, ledger.LedgerCombined, p)

	assert.True(t, reflect.DeepEqual(first, second))
}

func TestAggregate_EmptySnapshot(t *testing.T) {
	p, err := ledger.NewPeriod(ledger.PeriodDay, march2025())
	require.NoError(t, err)

	b := ledger.Aggregate(ledger.Snapshot{}, ledger.LedgerCombined, p)
	assert.True(t, b.TotalCollection().Equal(decimal.Zero))
	assert.True(t, b.TotalExpense().Equal(decimal.Zero))
}
