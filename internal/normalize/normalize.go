// Package normalize coerces untrusted extractor output into the canonical
// typed shape. It is total and pure: every input produces an Extraction,
// never an error — the worst a broken field can become is a null.
package normalize

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
	"github.com/paradize/restodocs/internal/extract"
)

// Normalize converts one raw page extraction into canonical form.
func Normalize(raw entity.RawExtraction) entity.Extraction {
	ext := entity.Extraction{
		DocType:     constants.ParseDocType(raw.DocType),
		HasQR:       raw.HasQR,
		DocNumber:   CleanString(raw.DocNumber.String()),
		Date:        CleanString(raw.Date.String()),
		Supplier:    normalizeParty(raw.Supplier),
		TotalAmount: ParseDecimal(raw.TotalAmount.String()),
		PageNumber:  raw.PageNumber,
		TotalPages:  raw.TotalPages,
		GroupKey:    CleanString(raw.GroupKey.String()),
		Confidence:  clampConfidence(raw.QualityCheck.ConfidenceScore),
		Warnings:    append([]string(nil), raw.QualityCheck.Warnings...),
	}
	if ext.PageNumber <= 0 {
		ext.PageNumber = 1
	}
	if ext.TotalPages <= 0 {
		ext.TotalPages = 1
	}

	if raw.Buyer != nil {
		buyer := normalizeParty(*raw.Buyer)
		if buyer.Name != nil || buyer.INN != nil {
			ext.Buyer = &buyer
		}
	}

	ext.Items = make([]entity.LineItem, 0, len(raw.Items))
	for _, it := range raw.Items {
		name := strings.TrimSpace(it.Name.String())
		if name == "" {
			continue
		}
		ext.Items = append(ext.Items, entity.LineItem{
			Name:           name,
			NameNormalized: strPtr(NormalizeName(name)),
			Unit:           CleanString(it.Unit.String()),
			Qty:            ParseDecimal(it.Qty.String()),
			Price:          ParseDecimal(it.Price.String()),
			Sum:            ParseDecimal(it.Sum.String()),
			VATRate:        CleanString(it.VATRate.String()),
		})
	}

	// The synthesized group key is the primary key multi-page grouping
	// depends on. If the extractor misses the INN on some page of a
	// document, grouping degrades to the INN+date heuristic pass.
	if ext.GroupKey == nil {
		if key, ok := SynthesizeGroupKey(ext.Supplier.INN, ext.DocNumber, ext.Date); ok {
			ext.GroupKey = &key
		}
	}

	return ext
}

// SynthesizeGroupKey builds the canonical {inn}_{doc_number}_{date} key.
// All three parts are required; a partial key would collide too easily.
func SynthesizeGroupKey(inn, docNumber, date *string) (string, bool) {
	if inn == nil || docNumber == nil || date == nil {
		return "", false
	}
	return fmt.Sprintf("%s_%s_%s", *inn, *docNumber, *date), true
}

// CleanString trims whitespace; an empty result becomes nil.
func CleanString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// CleanINN strips everything but digits; an empty result becomes nil.
func CleanINN(s string) *string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return nil
	}
	out := b.String()
	return &out
}

// ParseDecimal parses a locale-noisy numeric token. Unparsable input is
// nil, never an error.
func ParseDecimal(s string) *decimal.Decimal {
	cleaned := extract.StripNumberNoise(s)
	if cleaned == "" {
		return nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

// NormalizeName lowercases and collapses internal whitespace. This is the
// lookup key of the learned-mapping store.
func NormalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func normalizeParty(p entity.RawParty) entity.Party {
	return entity.Party{
		Name: CleanString(p.Name.String()),
		INN:  CleanINN(p.INN.String()),
	}
}

func clampConfidence(v float64) int {
	if v <= 0 {
		return 0
	}
	if v >= 100 {
		return 100
	}
	return int(math.Round(v))
}

func strPtr(s string) *string { return &s }
