package mapping

import (
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice.
// A zero InvoiceDate maps to NULL so unresolved dates stay unresolved.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	var date *time.Time
	if !d.InvoiceDate.IsZero() {
		dd := d.InvoiceDate
		date = &dd
	}
	return models.Invoice{
		InvoiceID:         d.InvoiceID,
		Kind:              string(d.Kind),
		InvoiceDate:       date,
		Total:             d.Total,
		Discount:          d.Discount,
		PaidAmount:        d.PaidAmount,
		DueAmount:         d.DueAmount,
		Status:            string(d.Status),
		CommissionPaid:    d.CommissionPaid,
		SpecialCommission: d.SpecialCommission,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice (plus its line items) to a
// domain Invoice.
func ToDomainInvoice(m models.Invoice, lines []models.InvoiceLineItem) domain.Invoice {
	var date time.Time
	if m.InvoiceDate != nil {
		date = *m.InvoiceDate
	}
	return domain.Invoice{
		InvoiceID:         m.InvoiceID,
		Kind:              domain.InvoiceKind(m.Kind),
		InvoiceDate:       date,
		Items:             ToDomainLineItemSlice(lines),
		Total:             m.Total,
		Discount:          m.Discount,
		PaidAmount:        m.PaidAmount,
		DueAmount:         m.DueAmount,
		Status:            domain.InvoiceStatus(m.Status),
		CommissionPaid:    m.CommissionPaid,
		SpecialCommission: m.SpecialCommission,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLineItem converts a domain InvoiceLineItem to a model row.
func ToModelLineItem(d domain.InvoiceLineItem, position int) models.InvoiceLineItem {
	return models.InvoiceLineItem{
		LineItemID:     d.LineItemID,
		InvoiceID:      d.InvoiceID,
		Name:           d.Name,
		ServiceGroup:   d.ServiceGroup,
		Price:          d.Price,
		Quantity:       d.Quantity,
		PassThroughFee: d.PassThroughFee,
		IsClinicFund:   d.IsClinicFund,
		Position:       position,
	}
}

// ToDomainLineItem converts a model line item row to a domain line item.
func ToDomainLineItem(m models.InvoiceLineItem) domain.InvoiceLineItem {
	return domain.InvoiceLineItem{
		LineItemID:     m.LineItemID,
		InvoiceID:      m.InvoiceID,
		Name:           m.Name,
		ServiceGroup:   m.ServiceGroup,
		Price:          m.Price,
		Quantity:       m.Quantity,
		PassThroughFee: m.PassThroughFee,
		IsClinicFund:   m.IsClinicFund,
	}
}

// ToDomainLineItemSlice converts a slice of model line items to domain
// line items, preserving order.
func ToDomainLineItemSlice(ms []models.InvoiceLineItem) []domain.InvoiceLineItem {
	ds := make([]domain.InvoiceLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
