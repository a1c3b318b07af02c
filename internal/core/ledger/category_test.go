package ledger_test

import (
	"testing"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ledger"
	"github.com/stretchr/testify/assert"
)

func TestClassifyClinicItem(t *testing.T) {
	tests := []struct {
		name    string
		item    domain.InvoiceLineItem
		wantTag ledger.CategoryTag
		wantOK  bool
	}{
		{
			name:   "non-fund line is excluded",
			item:   domain.InvoiceLineItem{Name: "Admission Fee", IsClinicFund: false},
			wantOK: false,
		},
		{
			name:    "admission fee keyword",
			item:    domain.InvoiceLineItem{Name: "Admission Fee", IsClinicFund: true},
			wantTag: ledger.TagAdmission,
			wantOK:  true,
		},
		{
			name:    "oxygen keyword",
			item:    domain.InvoiceLineItem{Name: "Oxygen supply 2hr", IsClinicFund: true},
			wantTag: ledger.TagOxygen,
			wantOK:  true,
		},
		{
			name:    "nebulization matches oxygen rule",
			item:    domain.InvoiceLineItem{Name: "Nebulization", IsClinicFund: true},
			wantTag: ledger.TagOxygen,
			wantOK:  true,
		},
		{
			name:    "dressing keyword",
			item:    domain.InvoiceLineItem{Name: "Wound Dressing", IsClinicFund: true},
			wantTag: ledger.TagDressing,
			wantOK:  true,
		},
		{
			name:    "conservative group without keyword match",
			item:    domain.InvoiceLineItem{Name: "Bed charge", ServiceGroup: "Conservative treatment", IsClinicFund: true},
			wantTag: ledger.TagConservative,
			wantOK:  true,
		},
		{
			name:    "keyword wins over conservative group",
			item:    domain.InvoiceLineItem{Name: "Oxygen", ServiceGroup: "Conservative treatment", IsClinicFund: true},
			wantTag: ledger.TagOxygen,
			wantOK:  true,
		},
		{
			name:    "lscs in theatre group",
			item:    domain.InvoiceLineItem{Name: "LSCS package", ServiceGroup: "Operation theatre", IsClinicFund: true},
			wantTag: ledger.TagLSCS,
			wantOK:  true,
		},
		{
			name:    "lucs spelling variant",
			item:    domain.InvoiceLineItem{Name: "LUCS", ServiceGroup: "Operation theatre", IsClinicFund: true},
			wantTag: ledger.TagLSCS,
			wantOK:  true,
		},
		{
			name:    "gallbladder operation",
			item:    domain.InvoiceLineItem{Name: "Gallbladder removal", ServiceGroup: "Operation theatre", IsClinicFund: true},
			wantTag: ledger.TagGBOT,
			wantOK:  true,
		},
		{
			name:    "normal vaginal delivery",
			item:    domain.InvoiceLineItem{Name: "NVD charge", ServiceGroup: "Delivery", IsClinicFund: true},
			wantTag: ledger.TagNVD,
			wantOK:  true,
		},
		{
			name:    "d&c procedure",
			item:    domain.InvoiceLineItem{Name: "D&C", ServiceGroup: "Operation theatre", IsClinicFund: true},
			wantTag: ledger.TagDC,
			wantOK:  true,
		},
		{
			name:    "unmatched theatre line falls to others_ot",
			item:    domain.InvoiceLineItem{Name: "Appendectomy", ServiceGroup: "Operation theatre", IsClinicFund: true},
			wantTag: ledger.TagOthersOT,
			wantOK:  true,
		},
		{
			name:    "fund-flagged line with no match falls to others",
			item:    domain.InvoiceLineItem{Name: "Misc service", ServiceGroup: "General", IsClinicFund: true},
			wantTag: ledger.TagOthers,
			wantOK:  true,
		},
		{
			name:    "physiotherapy group is not a theatre group",
			item:    domain.InvoiceLineItem{Name: "Physiotherapy session", ServiceGroup: "Physiotherapy", IsClinicFund: true},
			wantTag: ledger.TagOthers,
			wantOK:  true,
		},
		{
			name:    "group named Other is not a theatre group",
			item:    domain.InvoiceLineItem{Name: "Misc service", ServiceGroup: "Other", IsClinicFund: true},
			wantTag: ledger.TagOthers,
			wantOK:  true,
		},
		{
			name:    "standalone OT abbreviation is a theatre group",
			item:    domain.InvoiceLineItem{Name: "Appendectomy", ServiceGroup: "OT", IsClinicFund: true},
			wantTag: ledger.TagOthersOT,
			wantOK:  true,
		},
		{
			name:    "dotted O.T. abbreviation is a theatre group",
			item:    domain.InvoiceLineItem{Name: "Appendectomy", ServiceGroup: "Major O.T.", IsClinicFund: true},
			wantTag: ledger.TagOthersOT,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, ok := ledger.ClassifyClinicItem(tt.item)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantTag, tag)
			}
		})
	}
}

func TestClassifyTestName(t *testing.T) {
	tests := []struct {
		name string
		want ledger.CategoryTag
	}{
		{"USG of whole abdomen", ledger.TagUSG},
		{"Ultrasonogram (pregnancy profile)", ledger.TagUSG},
		{"X-Ray chest P/A view", ledger.TagXRay},
		{"Xray left hand", ledger.TagXRay},
		{"ECG", ledger.TagECG},
		{"Serum TSH", ledger.TagHormone},
		{"T3 T4 TSH panel", ledger.TagHormone},
		{"Hormone assay", ledger.TagHormone},
		{"CBC with ESR", ledger.TagPathology},
		{"", ledger.TagPathology},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.ClassifyTestName(tt.name))
		})
	}
}

func TestNormalizeExpenseCategory(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Stuff salary", ledger.ExpStuffSalary},
		{"Staff salary", ledger.ExpStuffSalary},
		{"Clinic development", ledger.ExpClinicDev},
		{"Clinic_Dev", ledger.ExpClinicDev},
		{"  House rent  ", ledger.ExpHouseRent},
		{"Rent", ledger.ExpHouseRent},
		{"Generator", ledger.ExpGenerator},
		{"Pharmacy purchase", ledger.ExpPharmacyPurchase},
		{"Loan repayment", ledger.ExpLoanRepayment},
		{"Loan installment", ledger.ExpLoanRepayment},
		{"no such category", ledger.ExpOthers},
		{"", ledger.ExpOthers},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.NormalizeExpenseCategory(tt.label))
		})
	}
}
