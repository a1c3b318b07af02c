package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the database representation of an invoice row.
type Invoice struct {
	InvoiceID         string          `json:"invoiceID"`
	Kind              string          `json:"kind"`
	InvoiceDate       *time.Time      `json:"invoiceDate"` // NULL when the date is unresolvable
	Total             decimal.Decimal `json:"total"`
	Discount          decimal.Decimal `json:"discount"`
	PaidAmount        decimal.Decimal `json:"paidAmount"`
	DueAmount         decimal.Decimal `json:"dueAmount"`
	Status            string          `json:"status"`
	CommissionPaid    decimal.Decimal `json:"commissionPaid"`
	SpecialCommission decimal.Decimal `json:"specialCommission"`
	AuditFields
}

// InvoiceLineItem is the database representation of a line item row.
type InvoiceLineItem struct {
	LineItemID     string          `json:"lineItemID"`
	InvoiceID      string          `json:"invoiceID"`
	Name           string          `json:"name"`
	ServiceGroup   string          `json:"serviceGroup"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int64           `json:"quantity"`
	PassThroughFee decimal.Decimal `json:"passThroughFee"`
	IsClinicFund   bool            `json:"isClinicFund"`
	Position       int             `json:"position"` // Preserves line order
}
