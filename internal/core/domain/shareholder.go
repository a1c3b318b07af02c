package domain

import "github.com/shopspring/decimal"

// Shareholder owns a (possibly fractional) number of shares in the
// institution. Share counts drive profit distribution.
type Shareholder struct {
	ShareholderID string          `json:"shareholderID"`
	Name          string          `json:"name"`
	Shares        decimal.Decimal `json:"shares"` // Positive, may be fractional (e.g. 4.5)
	AuditFields
}
