package dto

import (
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateShareholderRequest defines the payload for registering a
// shareholder. Shares may be fractional (e.g. 4.5).
type CreateShareholderRequest struct {
	Name   string          `json:"name" binding:"required"`
	Shares decimal.Decimal `json:"shares" binding:"required,dpositive"`
}

// ShareholderResponse defines the data returned for a shareholder.
type ShareholderResponse struct {
	ShareholderID string          `json:"shareholderID"`
	Name          string          `json:"name"`
	Shares        decimal.Decimal `json:"shares"`
}

// ToShareholderResponse converts a domain.Shareholder to its DTO.
func ToShareholderResponse(sh *domain.Shareholder) ShareholderResponse {
	return ShareholderResponse{
		ShareholderID: sh.ShareholderID,
		Name:          sh.Name,
		Shares:        sh.Shares,
	}
}

// ToShareholderResponses converts a slice of domain shareholders.
func ToShareholderResponses(shareholders []domain.Shareholder) []ShareholderResponse {
	responses := make([]ShareholderResponse, len(shareholders))
	for i := range shareholders {
		responses[i] = ToShareholderResponse(&shareholders[i])
	}
	return responses
}
