package mapping

import (
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/models"
)

// ToModelShareholder converts a domain Shareholder to a model Shareholder
func ToModelShareholder(d domain.Shareholder) models.Shareholder {
	return models.Shareholder{
		ShareholderID: d.ShareholderID,
		Name:          d.Name,
		Shares:        d.Shares,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShareholder converts a model Shareholder to a domain Shareholder
func ToDomainShareholder(m models.Shareholder) domain.Shareholder {
	return domain.Shareholder{
		ShareholderID: m.ShareholderID,
		Name:          m.Name,
		Shares:        m.Shares,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainShareholderSlice converts model Shareholders to domain Shareholders
func ToDomainShareholderSlice(ms []models.Shareholder) []domain.Shareholder {
	ds := make([]domain.Shareholder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShareholder(m)
	}
	return ds
}
