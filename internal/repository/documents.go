package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/gen/ent"
	"github.com/paradize/restodocs/gen/ent/document"
	"github.com/paradize/restodocs/internal/common"
	"github.com/paradize/restodocs/internal/entity"
)

type DocumentRepository interface {
	SaveDocument(ctx context.Context, doc *entity.MergedDocument) error
	GetDocument(ctx context.Context, id uuid.UUID) (*entity.MergedDocument, error)
	ListDocuments(ctx context.Context, status *constants.DocStatus) ([]*entity.MergedDocument, error)
	// AdvanceStatus is a conditional update; false means the row was not in
	// the expected state.
	AdvanceStatus(ctx context.Context, id uuid.UUID, from, to constants.DocStatus) (bool, error)
	// UpdateItems rewrites the line items after manual resolution fills them.
	UpdateItems(ctx context.Context, id uuid.UUID, items []entity.LineItem) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) SaveDocument(ctx context.Context, doc *entity.MergedDocument) error {
	builder := r.client.Document.Create().
		SetID(doc.ID).
		SetDocType(string(doc.DocType)).
		SetDocNumber(doc.DocNumber).
		SetDocDate(doc.DocDate).
		SetNillableSupplierName(doc.Supplier.Name).
		SetNillableSupplierInn(doc.Supplier.INN).
		SetItems(doc.Items).
		SetTotalAmount(doc.TotalAmount.InexactFloat64()).
		SetConfidence(doc.Confidence).
		SetPageCount(doc.PageCount).
		SetIsMerged(doc.IsMerged).
		SetNeedsReview(doc.NeedsReview).
		SetGroupKey(doc.GroupKey).
		SetWarnings(doc.Warnings).
		SetErrors(doc.Errors).
		SetStatus(string(doc.Status))
	if doc.Buyer != nil {
		builder = builder.
			SetNillableBuyerName(doc.Buyer.Name).
			SetNillableBuyerInn(doc.Buyer.INN)
	}
	if _, err := builder.Save(ctx); err != nil {
		r.logger.Error("failed to save document", "document_id", doc.ID, "error", err)
		return err
	}
	return nil
}

func (r *documentRepository) GetDocument(ctx context.Context, id uuid.UUID) (*entity.MergedDocument, error) {
	rec, err := r.client.Document.Query().Where(document.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get document", "document_id", id, "error", err)
		return nil, err
	}
	return toMergedDocument(rec), nil
}

func (r *documentRepository) ListDocuments(ctx context.Context, status *constants.DocStatus) ([]*entity.MergedDocument, error) {
	q := r.client.Document.Query()
	if status != nil {
		q = q.Where(document.Status(string(*status)))
	}
	recs, err := q.Order(document.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, err
	}
	result := make([]*entity.MergedDocument, len(recs))
	for i, rec := range recs {
		result[i] = toMergedDocument(rec)
	}
	return result, nil
}

func (r *documentRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, from, to constants.DocStatus) (bool, error) {
	n, err := r.client.Document.Update().
		Where(document.ID(id), document.Status(string(from))).
		SetStatus(string(to)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to advance document status", "document_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *documentRepository) UpdateItems(ctx context.Context, id uuid.UUID, items []entity.LineItem) error {
	err := r.client.Document.UpdateOneID(id).
		SetItems(items).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update document items", "document_id", id, "error", err)
		return err
	}
	return nil
}

func toMergedDocument(e *ent.Document) *entity.MergedDocument {
	doc := &entity.MergedDocument{
		ID:          e.ID,
		DocType:     constants.DocType(e.DocType),
		DocNumber:   e.DocNumber,
		DocDate:     e.DocDate,
		Supplier:    entity.Party{Name: e.SupplierName, INN: e.SupplierInn},
		Items:       e.Items,
		TotalAmount: decimal.NewFromFloat(e.TotalAmount),
		Confidence:  e.Confidence,
		PageCount:   e.PageCount,
		IsMerged:    e.IsMerged,
		NeedsReview: e.NeedsReview,
		GroupKey:    e.GroupKey,
		Warnings:    e.Warnings,
		Errors:      e.Errors,
		Status:      constants.DocStatus(e.Status),
		CreatedAt:   e.CreatedAt,
	}
	if e.BuyerName != nil || e.BuyerInn != nil {
		doc.Buyer = &entity.Party{Name: e.BuyerName, INN: e.BuyerInn}
	}
	return doc
}
