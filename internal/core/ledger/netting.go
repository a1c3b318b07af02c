package ledger

import (
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// amountOrZero floors negative (or unset) amounts to zero. Input
// validation is a collaborator concern; the engine just refuses to let
// bad amounts poison a sum.
func amountOrZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// lineAmount is the billed amount of one line: price times quantity,
// with quantity treated as at least one.
func lineAmount(item domain.InvoiceLineItem) decimal.Decimal {
	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}
	return amountOrZero(item.Price).Mul(decimal.NewFromInt(qty))
}

// PassThroughFees sums the per-line charges owed to third parties, e.g.
// a radiologist's exam fee baked into a lab invoice's gross price.
func PassThroughFees(inv domain.Invoice) decimal.Decimal {
	total := decimal.Zero
	for _, item := range inv.Items {
		total = total.Add(amountOrZero(item.PassThroughFee))
	}
	return total
}

// NetCommission computes the net institutional cash of one invoice:
// paid amount minus pass-through fees minus the commission actually
// disbursed. The agreed-but-unpaid SpecialCommission never reduces
// recognized revenue. Cancelled and Returned invoices net to zero.
func NetCommission(inv domain.Invoice) decimal.Decimal {
	if inv.IsVoided() {
		return decimal.Zero
	}
	paid := amountOrZero(inv.PaidAmount)
	return paid.Sub(PassThroughFees(inv)).Sub(amountOrZero(inv.CommissionPaid))
}

// CategorizedNet distributes an invoice's net institutional cash across
// its category buckets. Deductions (fees and paid commission) are
// allocated proportionally to each bucket's share of the billed total,
// so an invoice spanning several categories never has one category
// absorb the entire deduction.
//
// A voided invoice yields an empty map. When no line classifies or the
// billed total is not positive, the whole net lands in the kind's
// catch-all bucket.
func CategorizedNet(inv domain.Invoice) map[CategoryTag]decimal.Decimal {
	out := make(map[CategoryTag]decimal.Decimal)
	if inv.IsVoided() {
		return out
	}

	net := NetCommission(inv)

	gross := make(map[CategoryTag]decimal.Decimal)
	for _, item := range inv.Items {
		tag, ok := ClassifyLine(inv.Kind, item)
		if !ok {
			continue
		}
		gross[tag] = gross[tag].Add(lineAmount(item))
	}

	totalBilled := amountOrZero(inv.Total)
	if len(gross) == 0 || !totalBilled.IsPositive() {
		if !net.IsZero() {
			out[fallbackTag(inv.Kind)] = net
		}
		return out
	}

	for tag, g := range gross {
		out[tag] = net.Mul(g).Div(totalBilled)
	}
	return out
}
