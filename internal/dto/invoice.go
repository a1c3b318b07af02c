package dto

import (
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceLineItemRequest is one service/test line on a new invoice.
type CreateInvoiceLineItemRequest struct {
	Name           string          `json:"name" binding:"required"`
	ServiceGroup   string          `json:"serviceGroup"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	Quantity       int64           `json:"quantity"`
	PassThroughFee decimal.Decimal `json:"passThroughFee"`
	IsClinicFund   bool            `json:"isClinicFund"`
}

// CreateInvoiceRequest defines the payload for creating an invoice.
type CreateInvoiceRequest struct {
	Kind              domain.InvoiceKind             `json:"kind" binding:"required,oneof=LAB INDOOR_CLINIC PHARMACY_SALE PHARMACY_PURCHASE"`
	InvoiceDate       string                         `json:"invoiceDate" binding:"required,datetime=2006-01-02"`
	Items             []CreateInvoiceLineItemRequest `json:"items" binding:"dive"`
	Total             decimal.Decimal                `json:"total" binding:"required"`
	Discount          decimal.Decimal                `json:"discount"`
	PaidAmount        decimal.Decimal                `json:"paidAmount"`
	CommissionPaid    decimal.Decimal                `json:"commissionPaid"`
	SpecialCommission decimal.Decimal                `json:"specialCommission"`
}

// InvoiceLineItemResponse defines the data returned for a line item.
type InvoiceLineItemResponse struct {
	LineItemID     string          `json:"lineItemID"`
	Name           string          `json:"name"`
	ServiceGroup   string          `json:"serviceGroup"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int64           `json:"quantity"`
	PassThroughFee decimal.Decimal `json:"passThroughFee"`
	IsClinicFund   bool            `json:"isClinicFund"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID         string                    `json:"invoiceID"`
	Kind              string                    `json:"kind"`
	InvoiceDate       string                    `json:"invoiceDate"`
	Items             []InvoiceLineItemResponse `json:"items"`
	Total             decimal.Decimal           `json:"total"`
	Discount          decimal.Decimal           `json:"discount"`
	PaidAmount        decimal.Decimal           `json:"paidAmount"`
	DueAmount         decimal.Decimal           `json:"dueAmount"`
	Status            string                    `json:"status"`
	CommissionPaid    decimal.Decimal           `json:"commissionPaid"`
	SpecialCommission decimal.Decimal           `json:"specialCommission"`
	CreatedAt         time.Time                 `json:"createdAt"`
}

// ToInvoiceResponse converts a domain.Invoice to an InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceLineItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceLineItemResponse{
			LineItemID:     item.LineItemID,
			Name:           item.Name,
			ServiceGroup:   item.ServiceGroup,
			Price:          item.Price,
			Quantity:       item.Quantity,
			PassThroughFee: item.PassThroughFee,
			IsClinicFund:   item.IsClinicFund,
		}
	}

	dateStr := ""
	if !inv.InvoiceDate.IsZero() {
		dateStr = inv.InvoiceDate.Format("2006-01-02")
	}

	return InvoiceResponse{
		InvoiceID:         inv.InvoiceID,
		Kind:              string(inv.Kind),
		InvoiceDate:       dateStr,
		Items:             items,
		Total:             inv.Total,
		Discount:          inv.Discount,
		PaidAmount:        inv.PaidAmount,
		DueAmount:         inv.DueAmount,
		Status:            string(inv.Status),
		CommissionPaid:    inv.CommissionPaid,
		SpecialCommission: inv.SpecialCommission,
		CreatedAt:         inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain invoices.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}
