// Package ledger implements the financial reconciliation engine: category
// classification, commission netting, period aggregation, carry-forward,
// the loan ledger, profit distribution and statement composition.
//
// Every function in this package is a pure transformation of an immutable
// Snapshot. Nothing here reads or writes storage, retains references
// between calls, or mutates its inputs.
package ledger

import (
	"strings"

	"github.com/cliniccore/clinic_ledger_app/internal/core/domain"
)

// CategoryTag is a revenue category bucket key.
type CategoryTag string

// Clinic-fund revenue tags.
const (
	TagAdmission    CategoryTag = "admission"
	TagOxygen       CategoryTag = "oxygen"
	TagDressing     CategoryTag = "dressing"
	TagConservative CategoryTag = "conservative"
	TagLSCS         CategoryTag = "lscs"
	TagGBOT         CategoryTag = "gb_ot"
	TagNVD          CategoryTag = "nvd"
	TagDC           CategoryTag = "dc"
	TagOthersOT     CategoryTag = "others_ot"
	TagOthers       CategoryTag = "others"
)

// Diagnostic test tags.
const (
	TagUSG       CategoryTag = "usg"
	TagXRay      CategoryTag = "xray"
	TagECG       CategoryTag = "ecg"
	TagHormone   CategoryTag = "hormone"
	TagPathology CategoryTag = "pathology"
)

// Synthetic buckets that do not come from line-item classification.
const (
	TagPharmacy CategoryTag = "pharmacy"
	TagCompany  CategoryTag = "company"
)

// categoryRule pairs a predicate with the tag it resolves to. Rules are
// evaluated in slice order; the first match wins.
type categoryRule struct {
	matches func(name string) bool
	tag     CategoryTag
}

// containsAny builds a case-insensitive substring predicate over the
// given keywords. Service and test names are free text, so keyword
// containment is the only workable matching strategy.
func containsAny(keywords ...string) func(string) bool {
	return func(name string) bool {
		lower := strings.ToLower(name)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
}

// clinicKeywordRules classify fund-flagged clinic lines by name alone.
var clinicKeywordRules = []categoryRule{
	{containsAny("admission fee", "admission"), TagAdmission},
	{containsAny("oxygen", "o2", "nebuliz"), TagOxygen},
	{containsAny("dressing"), TagDressing},
}

// otRules classify lines whose service group denotes an operating
// theatre or delivery context.
var otRules = []categoryRule{
	{containsAny("lscs", "lucs"), TagLSCS},
	{containsAny("gallbladder", "gb"), TagGBOT},
	{containsAny("nvd"), TagNVD},
	{containsAny("d&c"), TagDC},
}

// diagnosticRules classify diagnostic test names.
var diagnosticRules = []categoryRule{
	{containsAny("usg", "ultra"), TagUSG},
	{containsAny("x-ray", "xray"), TagXRay},
	{containsAny("ecg"), TagECG},
	{containsAny("hormone", "tsh", "t3", "t4"), TagHormone},
}

var isConservativeGroup = containsAny("conservative")

var theatreGroupKeywords = containsAny("operation", "theatre", "delivery", "surger")

// isTheatreGroup reports whether a service group denotes an operating
// theatre or delivery context. The "OT" abbreviation only counts as a
// standalone word, so groups like "Physiotherapy" or "Other" never
// route into the theatre branch.
func isTheatreGroup(group string) bool {
	if theatreGroupKeywords(group) {
		return true
	}
	for _, word := range strings.Fields(strings.ToLower(group)) {
		if word == "ot" || word == "o.t." || word == "o.t" {
			return true
		}
	}
	return false
}

// ClassifyClinicItem resolves a clinic line item to a revenue category.
// Lines without the institutional-fund flag carry no institutional
// revenue and are excluded (ok == false). Everything else resolves to
// exactly one tag; there is no failure path.
func ClassifyClinicItem(item domain.InvoiceLineItem) (CategoryTag, bool) {
	if !item.IsClinicFund {
		return "", false
	}
	for _, rule := range clinicKeywordRules {
		if rule.matches(item.Name) {
			return rule.tag, true
		}
	}
	if isConservativeGroup(item.ServiceGroup) {
		return TagConservative, true
	}
	if isTheatreGroup(item.ServiceGroup) {
		for _, rule := range otRules {
			if rule.matches(item.Name) {
				return rule.tag, true
			}
		}
		return TagOthersOT, true
	}
	return TagOthers, true
}

// ClassifyTestName resolves a diagnostic test name to a category.
// Unmatched names fall into the pathology catch-all.
func ClassifyTestName(name string) CategoryTag {
	for _, rule := range diagnosticRules {
		if rule.matches(name) {
			return rule.tag
		}
	}
	return TagPathology
}

// ClassifyLine dispatches on the invoice kind. ok == false means the
// line contributes nothing to any collection bucket (pass-through clinic
// lines and pharmacy purchases, which are expenses).
func ClassifyLine(kind domain.InvoiceKind, item domain.InvoiceLineItem) (CategoryTag, bool) {
	switch kind {
	case domain.KindLab:
		return ClassifyTestName(item.Name), true
	case domain.KindIndoorClinic:
		return ClassifyClinicItem(item)
	case domain.KindPharmacySale:
		return TagPharmacy, true
	default:
		return "", false
	}
}

// fallbackTag is the catch-all bucket per invoice kind, used when no
// line classifies or ratios cannot be formed.
func fallbackTag(kind domain.InvoiceKind) CategoryTag {
	switch kind {
	case domain.KindLab:
		return TagPathology
	case domain.KindPharmacySale:
		return TagPharmacy
	default:
		return TagOthers
	}
}

// Canonical expense category keys.
const (
	ExpStuffSalary      = "Stuff salary"
	ExpDoctorPayment    = "Doctor payment"
	ExpGenerator        = "Generator"
	ExpElectricity      = "Electricity"
	ExpHouseRent        = "House rent"
	ExpClinicDev        = "Clinic_Dev"
	ExpMedicinePurchase = "Medicine purchase"
	ExpEquipment        = "Equipment"
	ExpStationery       = "Stationery"
	ExpEntertainment    = "Entertainment"
	ExpConveyance       = "Conveyance"
	ExpPharmacyPurchase = "Pharmacy purchase"
	ExpLoanRepayment    = "Loan repayment"
	ExpOthers           = "Others"
)

// canonicalExpenseCategories is the closed set of bucket keys.
var canonicalExpenseCategories = map[string]struct{}{
	ExpStuffSalary:      {},
	ExpDoctorPayment:    {},
	ExpGenerator:        {},
	ExpElectricity:      {},
	ExpHouseRent:        {},
	ExpClinicDev:        {},
	ExpMedicinePurchase: {},
	ExpEquipment:        {},
	ExpStationery:       {},
	ExpEntertainment:    {},
	ExpConveyance:       {},
	ExpPharmacyPurchase: {},
	ExpLoanRepayment:    {},
	ExpOthers:           {},
}

// expenseSynonyms maps known label variants (lowercased) to their
// canonical key. Consulted before bucket lookup so stored labels never
// need migrating.
var expenseSynonyms = map[string]string{
	"clinic development": ExpClinicDev,
	"clinic dev":         ExpClinicDev,
	"staff salary":       ExpStuffSalary,
	"salary":             ExpStuffSalary,
	"rent":               ExpHouseRent,
	"house rent":         ExpHouseRent,
	"current bill":       ExpElectricity,
	"electric bill":      ExpElectricity,
	"generator bill":     ExpGenerator,
	"medicine":           ExpMedicinePurchase,
	"doctor fee":         ExpDoctorPayment,
	"loan installment":   ExpLoanRepayment,
}

// NormalizeExpenseCategory maps a stored expense label to its canonical
// bucket key. Unknown labels resolve to Others; this is a total function.
func NormalizeExpenseCategory(label string) string {
	trimmed := strings.TrimSpace(label)
	if _, ok := canonicalExpenseCategories[trimmed]; ok {
		return trimmed
	}
	if canonical, ok := expenseSynonyms[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return ExpOthers
}
