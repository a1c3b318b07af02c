package mapping

import (
	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/models"
)

// ToModelDueCollection converts a domain DueCollection to a model DueCollection
func ToModelDueCollection(d domain.DueCollection) models.DueCollection {
	return models.DueCollection{
		CollectionID:    d.CollectionID,
		InvoiceID:       d.InvoiceID,
		CollectionDate:  d.CollectionDate,
		AmountCollected: d.AmountCollected,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDueCollection converts a model DueCollection to a domain DueCollection
func ToDomainDueCollection(m models.DueCollection) domain.DueCollection {
	return domain.DueCollection{
		CollectionID:    m.CollectionID,
		InvoiceID:       m.InvoiceID,
		CollectionDate:  m.CollectionDate,
		AmountCollected: m.AmountCollected,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDueCollectionSlice converts model due collections to domain ones
func ToDomainDueCollectionSlice(ms []models.DueCollection) []domain.DueCollection {
	ds := make([]domain.DueCollection, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDueCollection(m)
	}
	return ds
}

// ToModelCompanyCollection converts a domain CompanyCollection to a model one
func ToModelCompanyCollection(d domain.CompanyCollection) models.CompanyCollection {
	return models.CompanyCollection{
		CollectionID: d.CollectionID,
		CompanyName:  d.CompanyName,
		Date:         d.Date,
		Amount:       d.Amount,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompanyCollection converts a model CompanyCollection to a domain one
func ToDomainCompanyCollection(m models.CompanyCollection) domain.CompanyCollection {
	return domain.CompanyCollection{
		CollectionID: m.CollectionID,
		CompanyName:  m.CompanyName,
		Date:         m.Date,
		Amount:       m.Amount,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCompanyCollectionSlice converts model company collections to domain ones
func ToDomainCompanyCollectionSlice(ms []models.CompanyCollection) []domain.CompanyCollection {
	ds := make([]domain.CompanyCollection, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompanyCollection(m)
	}
	return ds
}
