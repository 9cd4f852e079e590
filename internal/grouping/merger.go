package grouping

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
)

// Merge folds a document group into the single system-of-record document.
// Pure over the group contents: line items concatenate in page order (pages
// of one physical document carry disjoint item sets), the total is
// recomputed from merged lines, and the weakest page's confidence wins.
func Merge(grp *entity.DocumentGroup) *entity.MergedDocument {
	doc := &entity.MergedDocument{
		ID:        uuid.New(),
		GroupKey:  grp.Key,
		PageCount: len(grp.Pages),
		IsMerged:  len(grp.Pages) > 1,
		Status:    constants.StatusRecognized,
	}

	total := decimal.Zero
	first := true
	for _, p := range grp.Pages {
		if doc.DocType == "" || doc.DocType == constants.DocTypeUnknown {
			doc.DocType = p.DocType
		}
		if doc.DocNumber == "" && p.DocNumber != nil {
			doc.DocNumber = *p.DocNumber
		}
		if doc.DocDate == "" && p.Date != nil {
			doc.DocDate = *p.Date
		}
		if doc.Supplier.Name == nil {
			doc.Supplier.Name = p.Supplier.Name
		}
		if doc.Supplier.INN == nil {
			doc.Supplier.INN = p.Supplier.INN
		}
		if doc.Buyer == nil && p.Buyer != nil {
			doc.Buyer = p.Buyer
		}

		doc.Items = append(doc.Items, p.Items...)
		for _, item := range p.Items {
			if item.Sum != nil {
				total = total.Add(*item.Sum)
			}
		}

		if first || p.Confidence < doc.Confidence {
			doc.Confidence = p.Confidence
		}
		first = false

		doc.Warnings = append(doc.Warnings, p.Warnings...)
		doc.Errors = append(doc.Errors, p.Errors...)
		if p.NeedsReview {
			doc.NeedsReview = true
		}
	}
	doc.TotalAmount = total.Round(2)

	// a partial document is never dropped; it goes forward flagged
	if !grp.IsComplete {
		doc.Warnings = append(doc.Warnings,
			fmt.Sprintf("incomplete document: %d of %d pages", len(grp.Pages), grp.TotalPages))
		doc.NeedsReview = true
	}
	if grp.Forced {
		doc.Warnings = append(doc.Warnings, "page grouping was forced; verify the document manually")
		doc.NeedsReview = true
	}

	return doc
}
