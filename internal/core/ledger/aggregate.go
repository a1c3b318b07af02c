package ledger

import (
	"strings"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerKind selects which slice of the institution a report covers.
type LedgerKind string

const (
	// LedgerDiagnostic covers the diagnostic lab: lab invoices and
	// lab-due recoveries.
	LedgerDiagnostic LedgerKind = "diagnostic"
	// LedgerClinic covers the indoor clinic: clinic invoices,
	// clinic-due recoveries, the expense book and loan installments.
	LedgerClinic LedgerKind = "clinic"
	// LedgerCombined is the whole institution: both of the above plus
	// pharmacy flows and company collections.
	LedgerCombined LedgerKind = "combined"
)

// Invoice ID prefixes. Due collections reference invoices only by ID,
// so the prefix is what attributes a recovery to a ledger.
const (
	PrefixLab    = "LAB-"
	PrefixClinic = "CLN-"
)

// ParseLedgerKind validates a ledger selector from the API surface.
func ParseLedgerKind(s string) (LedgerKind, bool) {
	switch LedgerKind(strings.ToLower(strings.TrimSpace(s))) {
	case LedgerDiagnostic:
		return LedgerDiagnostic, true
	case LedgerClinic:
		return LedgerClinic, true
	case LedgerCombined, "":
		return LedgerCombined, true
	default:
		return "", false
	}
}

func (l LedgerKind) coversInvoiceKind(kind domain.InvoiceKind) bool {
	switch l {
	case LedgerDiagnostic:
		return kind == domain.KindLab
	case LedgerClinic:
		return kind == domain.KindIndoorClinic
	case LedgerCombined:
		return kind == domain.KindLab || kind == domain.KindIndoorClinic || kind == domain.KindPharmacySale
	default:
		return false
	}
}

func (l LedgerKind) coversDue(invoiceID string) bool {
	switch l {
	case LedgerDiagnostic:
		return strings.HasPrefix(invoiceID, PrefixLab)
	case LedgerClinic:
		return strings.HasPrefix(invoiceID, PrefixClinic)
	case LedgerCombined:
		return strings.HasPrefix(invoiceID, PrefixLab) || strings.HasPrefix(invoiceID, PrefixClinic)
	default:
		return false
	}
}

// coversExpenseBook: cash expenses are recorded institution-wide and
// settle from the clinic ledger.
func (l LedgerKind) coversExpenseBook() bool {
	return l == LedgerClinic || l == LedgerCombined
}

func (l LedgerKind) coversLoans() bool {
	return l == LedgerClinic || l == LedgerCombined
}

// Buckets holds one period's category-bucketed sums for a ledger.
type Buckets struct {
	Collection    map[CategoryTag]decimal.Decimal
	DueRecovery   decimal.Decimal
	Expense       map[string]decimal.Decimal
	LoanRepayment decimal.Decimal
}

// TotalCollection reconciles to the sum of every collection bucket plus
// the period's due recovery.
func (b Buckets) TotalCollection() decimal.Decimal {
	total := b.DueRecovery
	for _, amount := range b.Collection {
		total = total.Add(amount)
	}
	return total
}

// TotalExpense is the sum of every expense bucket plus the period's
// loan installments.
func (b Buckets) TotalExpense() decimal.Decimal {
	total := b.LoanRepayment
	for _, amount := range b.Expense {
		total = total.Add(amount)
	}
	return total
}

// NetBalance is collection minus expense for the period.
func (b Buckets) NetBalance() decimal.Decimal {
	return b.TotalCollection().Sub(b.TotalExpense())
}

// Aggregate walks the snapshot once and accumulates the period's
// category-bucketed collection and expense sums for the given ledger.
// It is idempotent: the same snapshot and window always produce the
// same buckets.
func Aggregate(snap Snapshot, kind LedgerKind, p Period) Buckets {
	buckets := Buckets{
		Collection: make(map[CategoryTag]decimal.Decimal),
		Expense:    make(map[string]decimal.Decimal),
	}

	for _, inv := range snap.Invoices {
		if !p.Contains(inv.InvoiceDate) || inv.IsVoided() {
			continue
		}
		if inv.Kind == domain.KindPharmacyPurchase {
			// Purchases are cash out, not revenue.
			if kind == LedgerCombined {
				buckets.Expense[ExpPharmacyPurchase] = buckets.Expense[ExpPharmacyPurchase].Add(amountOrZero(inv.PaidAmount))
			}
			continue
		}
		if !kind.coversInvoiceKind(inv.Kind) {
			continue
		}
		for tag, amount := range CategorizedNet(inv) {
			buckets.Collection[tag] = buckets.Collection[tag].Add(amount)
		}
	}

	for _, due := range snap.DueCollections {
		if !p.Contains(due.CollectionDate) || !kind.coversDue(due.InvoiceID) {
			continue
		}
		buckets.DueRecovery = buckets.DueRecovery.Add(amountOrZero(due.AmountCollected))
	}

	if kind == LedgerCombined {
		for _, cc := range snap.CompanyCollections {
			if !p.Contains(cc.Date) {
				continue
			}
			buckets.Collection[TagCompany] = buckets.Collection[TagCompany].Add(amountOrZero(cc.Amount))
		}
	}

	if kind.coversExpenseBook() {
		loc := p.End.Location()
		for key, items := range snap.Expenses {
			date, ok := parseExpenseDate(key, loc)
			if !ok || !p.Contains(date) {
				continue
			}
			for _, item := range items {
				category := NormalizeExpenseCategory(item.Category)
				buckets.Expense[category] = buckets.Expense[category].Add(amountOrZero(item.PaidAmount))
			}
		}
	}

	if kind.coversLoans() {
		buckets.LoanRepayment = PeriodRepayments(snap.Repayments, p)
	}

	return buckets
}
