package utils

import (
	"time"

	"github.com/shopspring/decimal"

	docflowpb "github.com/paradize/restodocs/gen/proto/docflow/v1"
	"github.com/paradize/restodocs/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func decOrEmpty(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func ToPBLineItem(it *entity.LineItem) *docflowpb.LineItem {
	return &docflowpb.LineItem{
		Name:            it.Name,
		Unit:            strOrEmpty(it.Unit),
		Qty:             decOrEmpty(it.Qty),
		Price:           decOrEmpty(it.Price),
		Sum:             decOrEmpty(it.Sum),
		VatRate:         strOrEmpty(it.VATRate),
		ProductId:       strOrEmpty(it.ProductID),
		ProductName:     strOrEmpty(it.ProductName),
		DestinationType: strOrEmpty(it.DestinationType),
	}
}

func ToPBDocument(d *entity.MergedDocument) *docflowpb.Document {
	items := make([]*docflowpb.LineItem, len(d.Items))
	for i := range d.Items {
		items[i] = ToPBLineItem(&d.Items[i])
	}
	return &docflowpb.Document{
		Id:           d.ID.String(),
		DocType:      string(d.DocType),
		DocNumber:    d.DocNumber,
		DocDate:      d.DocDate,
		SupplierName: strOrEmpty(d.Supplier.Name),
		SupplierInn:  strOrEmpty(d.Supplier.INN),
		Items:        items,
		TotalAmount:  d.TotalAmount.StringFixed(2),
		Confidence:   int32(d.Confidence),
		PageCount:    int32(d.PageCount),
		IsMerged:     d.IsMerged,
		NeedsReview:  d.NeedsReview,
		GroupKey:     d.GroupKey,
		Warnings:     d.Warnings,
		Errors:       d.Errors,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBEscalation(e *entity.EscalationItem) *docflowpb.EscalationRow {
	row := &docflowpb.EscalationRow{
		Id:             e.ID.String(),
		DocumentId:     e.DocumentID.String(),
		RawName:        e.RawName,
		NormalizedName: e.NormalizedName,
		CatalogType:    string(e.CatalogType),
		Resolved:       e.Resolved,
	}
	if e.ResolvedID != nil {
		row.ResolvedId = e.ResolvedID.String()
	}
	row.ResolvedName = strOrEmpty(e.ResolvedName)
	return row
}

func ToPBSubmission(rec *entity.SubmissionRecord) *docflowpb.SubmissionRecord {
	items := make([]*docflowpb.LineItem, len(rec.Items))
	for i := range rec.Items {
		items[i] = ToPBLineItem(&rec.Items[i])
	}
	pb := &docflowpb.SubmissionRecord{
		Id:              rec.ID.String(),
		DocumentId:      rec.DocumentID.String(),
		DocNumber:       rec.DocNumber,
		DestinationType: rec.DestinationType,
		StoreName:       rec.StoreName,
		SupplierName:    rec.SupplierName,
		DocDate:         rec.DocDate.Format("2006-01-02"),
		Items:           items,
		TotalAmount:     rec.TotalAmount.StringFixed(2),
		Status:          string(rec.Status),
		ErrorMessage:    strOrEmpty(rec.ErrorMessage),
		Warnings:        rec.Warnings,
	}
	if rec.StoreID != nil {
		pb.StoreId = rec.StoreID.String()
	}
	if rec.SupplierID != nil {
		pb.SupplierId = rec.SupplierID.String()
	}
	return pb
}

// ParseYMD parses a date-only value at midnight UTC to match DATE semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
