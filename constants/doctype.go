package constants

import "strings"

// DocType classifies a recognized accounting document.
type DocType string

const (
	DocTypeUPD       DocType = "upd" // universal transfer document (invoice + delivery note)
	DocTypeReceipt   DocType = "receipt"
	DocTypeAct       DocType = "act"
	DocTypeCashOrder DocType = "cash_order"
	DocTypeOther     DocType = "other"
	DocTypeUnknown   DocType = "unknown"
)

// DocTypes holds the allowed values for the doc_type field.
var DocTypes = []string{
	string(DocTypeUPD),
	string(DocTypeReceipt),
	string(DocTypeAct),
	string(DocTypeCashOrder),
	string(DocTypeOther),
	string(DocTypeUnknown),
}

// ParseDocType canonicalizes an extractor-reported document type.
// Anything unrecognized maps to unknown rather than failing.
func ParseDocType(s string) DocType {
	switch DocType(strings.ToLower(strings.TrimSpace(s))) {
	case DocTypeUPD:
		return DocTypeUPD
	case DocTypeReceipt:
		return DocTypeReceipt
	case DocTypeAct:
		return DocTypeAct
	case DocTypeCashOrder:
		return DocTypeCashOrder
	case DocTypeOther:
		return DocTypeOther
	default:
		return DocTypeUnknown
	}
}

// VATBearing reports whether per-line sums carry VAT on top of net prices.
// Receipt prices are already VAT-inclusive, so the arithmetic corrector
// must not re-apply the rate there.
func (t DocType) VATBearing() bool {
	switch t {
	case DocTypeUPD, DocTypeAct, DocTypeOther:
		return true
	default:
		return false
	}
}

// CatalogType distinguishes the two resolution targets of the mapping engine.
type CatalogType string

const (
	CatalogProduct  CatalogType = "product"
	CatalogSupplier CatalogType = "supplier"
)

// CatalogTypes holds the allowed values for the catalog_type field.
var CatalogTypes = []string{string(CatalogProduct), string(CatalogSupplier)}

// MappingSource records how a learned mapping came to exist.
type MappingSource string

const (
	MappingSourceAuto   MappingSource = "auto"   // accepted fuzzy catalog match
	MappingSourceManual MappingSource = "manual" // human answer to an escalation
	MappingSourceSheet  MappingSource = "sheet"  // imported from a filled ledger workbook
)

// MappingSources holds the allowed values for the source field.
var MappingSources = []string{
	string(MappingSourceAuto),
	string(MappingSourceManual),
	string(MappingSourceSheet),
}
