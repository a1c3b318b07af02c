package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind identifies which business line an invoice belongs to.
type InvoiceKind string

const (
	KindLab              InvoiceKind = "LAB"
	KindIndoorClinic     InvoiceKind = "INDOOR_CLINIC"
	KindPharmacySale     InvoiceKind = "PHARMACY_SALE"
	KindPharmacyPurchase InvoiceKind = "PHARMACY_PURCHASE"
)

// InvoiceStatus is the operator-visible state of an invoice.
type InvoiceStatus string

const (
	StatusPaid        InvoiceStatus = "PAID"
	StatusDue         InvoiceStatus = "DUE"
	StatusCancelled   InvoiceStatus = "CANCELLED"
	StatusPending     InvoiceStatus = "PENDING"
	StatusReportReady InvoiceStatus = "REPORT_READY"
	StatusReturned    InvoiceStatus = "RETURNED"
	StatusPosted      InvoiceStatus = "POSTED"
)

// Invoice represents one billed visit/sale. Line items carry the
// category-relevant names; commission fields record referral payouts.
type Invoice struct {
	InvoiceID         string          `json:"invoiceID"` // Prefixed: LAB-xxxx, CLN-xxxx, ...
	Kind              InvoiceKind     `json:"kind"`
	InvoiceDate       time.Time       `json:"invoiceDate"` // Zero value means date unresolved
	Items             []InvoiceLineItem `json:"items"`
	Total             decimal.Decimal `json:"total"`
	Discount          decimal.Decimal `json:"discount"`
	PaidAmount        decimal.Decimal `json:"paidAmount"`
	DueAmount         decimal.Decimal `json:"dueAmount"` // netPayable - paidAmount
	Status            InvoiceStatus   `json:"status"`
	CommissionPaid    decimal.Decimal `json:"commissionPaid"`    // Cash actually disbursed as referral commission
	SpecialCommission decimal.Decimal `json:"specialCommission"` // Agreed rate only, never netted
	AuditFields
}

// IsVoided reports whether the invoice must contribute zero to every
// revenue, commission and fee bucket.
func (i Invoice) IsVoided() bool {
	return i.Status == StatusCancelled || i.Status == StatusReturned
}

// InvoiceLineItem is one service/test line on an invoice.
type InvoiceLineItem struct {
	LineItemID     string          `json:"lineItemID"`
	InvoiceID      string          `json:"invoiceID"`
	Name           string          `json:"name"`         // Free-text service/test name
	ServiceGroup   string          `json:"serviceGroup"` // Broader grouping, e.g. "Conservative treatment", "Operation theatre"
	Price          decimal.Decimal `json:"price"`
	Quantity       int64           `json:"quantity"`
	PassThroughFee decimal.Decimal `json:"passThroughFee"` // Owed to a third party (e.g. radiologist exam fee)
	IsClinicFund   bool            `json:"isClinicFund"`   // True when the line is institutional revenue
}
