package models

import "github.com/shopspring/decimal"

// Shareholder is the database representation of a shareholder row.
type Shareholder struct {
	ShareholderID string          `json:"shareholderID"`
	Name          string          `json:"name"`
	Shares        decimal.Decimal `json:"shares"`
	AuditFields
}
