package entity

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/paradize/restodocs/constants"
)

// FlexString decodes a JSON string, number, or null into a plain string.
// The vision model is inconsistent about quoting numbers and document ids,
// so every field that should be a string tolerates a bare number too.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	// bare number (or any other scalar): keep the raw text
	*f = FlexString(b)
	return nil
}

func (f FlexString) String() string { return string(f) }

// RawParty is the wire shape of a document party (supplier or buyer).
type RawParty struct {
	Name FlexString `json:"name"`
	INN  FlexString `json:"inn"`
}

// RawLineItem is one untrusted table row as reported by the extractor.
type RawLineItem struct {
	Name    FlexString `json:"name"`
	Unit    FlexString `json:"unit"`
	Qty     FlexString `json:"qty"`
	Price   FlexString `json:"price"`
	Sum     FlexString `json:"sum"`
	VATRate FlexString `json:"vat_rate"`
}

// RawQuality carries the extractor's self-assessment.
type RawQuality struct {
	ConfidenceScore float64  `json:"confidence_score"`
	Warnings        []string `json:"warnings"`
}

// RawExtraction is the extractor's output for one photographed page.
// Everything in it is untrusted input: produced once, never mutated,
// consumed only by the normalizer.
type RawExtraction struct {
	DocType      string        `json:"doc_type"`
	HasQR        bool          `json:"has_qr"`
	DocNumber    FlexString    `json:"doc_number"`
	Date         FlexString    `json:"date"`
	Supplier     RawParty      `json:"supplier"`
	Buyer        *RawParty     `json:"buyer"`
	Items        []RawLineItem `json:"items"`
	TotalAmount  FlexString    `json:"total_amount"`
	PageNumber   int           `json:"page_number"`
	TotalPages   int           `json:"total_pages"`
	GroupKey     FlexString    `json:"group_key"`
	QualityCheck RawQuality    `json:"quality_check"`
}

// Party is a normalized document party. INN is digits-only when present.
type Party struct {
	Name *string `json:"name,omitempty"`
	INN  *string `json:"inn,omitempty"`
}

// LineItem is one canonical table row. Name stays verbatim from the source
// document; resolution fills the catalog fields later.
type LineItem struct {
	Name           string           `json:"name"`
	NameNormalized *string          `json:"name_normalized,omitempty"`
	Unit           *string          `json:"unit,omitempty"`
	Qty            *decimal.Decimal `json:"qty,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"` // net-of-VAT unit price
	Sum            *decimal.Decimal `json:"sum,omitempty"`   // VAT-inclusive line total; authoritative
	VATRate        *string          `json:"vat_rate,omitempty"`

	// filled by the entity resolver
	ProductID       *string `json:"product_id,omitempty"`
	ProductName     *string `json:"product_name_resolved,omitempty"`
	DestinationType *string `json:"destination_type,omitempty"`
}

// Extraction is one normalized, validated page. The validator appends to
// Warnings/Errors and sets NeedsReview; no other stage mutates it.
type Extraction struct {
	DocType     constants.DocType
	HasQR       bool
	DocNumber   *string
	Date        *string
	Supplier    Party
	Buyer       *Party
	Items       []LineItem
	TotalAmount *decimal.Decimal
	PageNumber  int
	TotalPages  int
	GroupKey    *string
	Confidence  int
	Warnings    []string
	Errors      []string
	NeedsReview bool
}
