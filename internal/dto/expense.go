package dto

import (
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseItemRequest is one expense line under a calendar date.
type ExpenseItemRequest struct {
	Category    string          `json:"category" binding:"required"`
	SubCategory string          `json:"subCategory"`
	BillAmount  decimal.Decimal `json:"billAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount" binding:"required"`
}

// RecordExpensesRequest defines the payload for recording expense items
// under one calendar date.
type RecordExpensesRequest struct {
	Date  string               `json:"date" binding:"required,datetime=2006-01-02"`
	Items []ExpenseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ExpenseItemResponse defines the data returned for an expense item.
type ExpenseItemResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	BillAmount  decimal.Decimal `json:"billAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
}

// ExpenseBookResponse is the date-keyed expense listing.
type ExpenseBookResponse struct {
	Expenses map[string][]ExpenseItemResponse `json:"expenses"`
}

// ToExpenseBookResponse converts a domain.ExpenseBook to its DTO.
func ToExpenseBookResponse(book domain.ExpenseBook) ExpenseBookResponse {
	out := ExpenseBookResponse{Expenses: make(map[string][]ExpenseItemResponse, len(book))}
	for date, items := range book {
		responses := make([]ExpenseItemResponse, len(items))
		for i, item := range items {
			responses[i] = ExpenseItemResponse{
				ExpenseID:   item.ExpenseID,
				Category:    item.Category,
				SubCategory: item.SubCategory,
				BillAmount:  item.BillAmount,
				PaidAmount:  item.PaidAmount,
			}
		}
		out.Expenses[date] = responses
	}
	return out
}
