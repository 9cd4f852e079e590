// Package validate enforces the closed accounting invariant on extracted
// documents: for VAT-bearing types, each line's VAT-inclusive sum equals
// qty x price x (1 + rate), rounded half-up to 2 decimals. The extractor is
// systematically prone to reporting the net column as the sum; the single
// most valuable correction here is putting the gross figure back.
package validate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
)

// Config carries the empirically tuned tolerances. They come from observed
// Russian supplier documents; other VAT regimes or currencies may need
// different values, which is why nothing here is hard-coded.
type Config struct {
	LineTolerance   float64 // currency units, per line
	TotalTolerance  float64 // currency units, per document
	ConfidenceFloor int     // 0..100
}

type Validator struct {
	lineTol  decimal.Decimal
	totalTol decimal.Decimal
	floor    int
}

func New(cfg Config) *Validator {
	if cfg.LineTolerance <= 0 {
		cfg.LineTolerance = 0.51
	}
	if cfg.TotalTolerance <= 0 {
		cfg.TotalTolerance = 5.0
	}
	if cfg.ConfidenceFloor <= 0 {
		cfg.ConfidenceFloor = 70
	}
	return &Validator{
		lineTol:  decimal.NewFromFloat(cfg.LineTolerance),
		totalTol: decimal.NewFromFloat(cfg.TotalTolerance),
		floor:    cfg.ConfidenceFloor,
	}
}

// ValidatePage corrects and validates one normalized page in place.
// Warnings inform; Errors are the hard failures that force needs_review.
func (v *Validator) ValidatePage(ext *entity.Extraction) {
	vatBearing := ext.DocType.VATBearing()
	for i := range ext.Items {
		v.validateLine(&ext.Items[i], i, vatBearing, &ext.Warnings)
	}

	v.reconcileTotal(ext)
	v.checkRequiredFields(ext)

	if ext.Confidence < v.floor {
		ext.Warnings = append(ext.Warnings,
			fmt.Sprintf("confidence %d below floor %d", ext.Confidence, v.floor))
		ext.NeedsReview = true
	}
	if len(ext.Errors) > 0 {
		ext.NeedsReview = true
	}
}

func (v *Validator) validateLine(item *entity.LineItem, idx int, vatBearing bool, warnings *[]string) {
	if !vatBearing {
		// receipt prices are already VAT-inclusive; nothing to re-apply
		return
	}
	if item.Qty == nil || item.Price == nil {
		if item.Sum == nil {
			*warnings = append(*warnings, fmt.Sprintf("line %d (%s): no amounts readable", idx+1, item.Name))
		}
		return
	}

	net := item.Qty.Mul(*item.Price).Round(2)

	rate, rateKnown := 0.0, false
	if item.VATRate != nil {
		rate, rateKnown = constants.VATRate(*item.VATRate)
	}

	if !rateKnown {
		if item.Sum == nil {
			// nothing reported and no rate to gross it up with; the net
			// figure is the only defensible value
			item.Sum = &net
			*warnings = append(*warnings, fmt.Sprintf("line %d (%s): sum missing and VAT rate unknown, using qty*price", idx+1, item.Name))
		}
		// known rate absent: trust the reported sum verbatim
		return
	}

	gross := net.Mul(decimal.NewFromFloat(1 + rate)).Round(2)

	if item.Sum == nil {
		item.Sum = &gross
		*warnings = append(*warnings, fmt.Sprintf("line %d (%s): sum missing, computed %s", idx+1, item.Name, gross))
		return
	}

	// the net check runs before the gross-tolerance accept: on tiny lines
	// both bands overlap, and a net-reported sum must still be corrected
	sum := *item.Sum
	switch {
	case sum.Equal(gross):
		// invariant holds exactly
	case rate > 0 && sum.Sub(net).Abs().Cmp(v.lineTol) <= 0:
		// the extractor reported the VAT-exclusive column
		item.Sum = &gross
		*warnings = append(*warnings, fmt.Sprintf("line %d (%s): sum %s was net-of-VAT, corrected to %s", idx+1, item.Name, sum, gross))
	case sum.Sub(gross).Abs().Cmp(v.lineTol) <= 0:
		// within tolerance of the gross figure
	default:
		// off both candidates; do not guess further
		*warnings = append(*warnings, fmt.Sprintf("line %d (%s): sum %s disagrees with computed %s", idx+1, item.Name, sum, gross))
	}
}

// reconcileTotal recomputes the document total from validated lines.
// The sum of corrected lines outranks the extractor's reported figure.
func (v *Validator) reconcileTotal(ext *entity.Extraction) {
	recomputed := decimal.Zero
	counted := 0
	for _, item := range ext.Items {
		if item.Sum != nil {
			recomputed = recomputed.Add(*item.Sum)
			counted++
		}
	}
	if counted == 0 {
		return
	}
	recomputed = recomputed.Round(2)

	switch {
	case ext.TotalAmount == nil:
		ext.TotalAmount = &recomputed
		ext.Warnings = append(ext.Warnings, fmt.Sprintf("total missing, recomputed as %s", recomputed))
	case ext.TotalAmount.Sub(recomputed).Abs().Cmp(v.totalTol) > 0:
		ext.Warnings = append(ext.Warnings,
			fmt.Sprintf("reported total %s replaced by line sum %s", ext.TotalAmount, recomputed))
		ext.TotalAmount = &recomputed
	default:
		ext.TotalAmount = &recomputed
	}
}

func (v *Validator) checkRequiredFields(ext *entity.Extraction) {
	if ext.Supplier.Name == nil {
		ext.Errors = append(ext.Errors, "supplier name missing")
	}
	if ext.Supplier.INN == nil {
		ext.Errors = append(ext.Errors, "supplier INN missing")
	}
	if ext.DocNumber == nil {
		ext.Errors = append(ext.Errors, "document number missing")
	}
	if ext.Date == nil {
		ext.Errors = append(ext.Errors, "document date missing")
	}
	if len(ext.Items) == 0 {
		ext.Errors = append(ext.Errors, "document has no line items")
	}
}
