package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/gen/ent"
	"github.com/paradize/restodocs/gen/ent/submissionrecord"
	"github.com/paradize/restodocs/internal/common"
	"github.com/paradize/restodocs/internal/entity"
)

// SubmissionRepository persists ERP-bound records. GetRecord, Advance and
// SetError satisfy status.Store; Advance is the single conditional update
// the state machine relies on.
type SubmissionRepository interface {
	SaveRecords(ctx context.Context, recs []*entity.SubmissionRecord) error
	GetRecord(ctx context.Context, id uuid.UUID) (*entity.SubmissionRecord, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.SubmissionRecord, error)
	Advance(ctx context.Context, id uuid.UUID, from, to constants.DocStatus) (bool, error)
	SetError(ctx context.Context, id uuid.UUID, message string) error
}

type submissionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSubmissionRepository(client *ent.Client, logger *slog.Logger) SubmissionRepository {
	return &submissionRepository{
		client: client,
		logger: logger,
	}
}

func (r *submissionRepository) SaveRecords(ctx context.Context, recs []*entity.SubmissionRecord) error {
	builders := make([]*ent.SubmissionRecordCreate, len(recs))
	for i, rec := range recs {
		builders[i] = r.client.SubmissionRecord.Create().
			SetID(rec.ID).
			SetDocumentID(rec.DocumentID).
			SetDocNumber(rec.DocNumber).
			SetDestinationType(rec.DestinationType).
			SetNillableStoreID(rec.StoreID).
			SetStoreName(rec.StoreName).
			SetNillableSupplierID(rec.SupplierID).
			SetSupplierName(rec.SupplierName).
			SetDocDate(rec.DocDate).
			SetItems(rec.Items).
			SetTotalAmount(rec.TotalAmount.InexactFloat64()).
			SetStatus(string(rec.Status)).
			SetWarnings(rec.Warnings)
	}
	if _, err := r.client.SubmissionRecord.CreateBulk(builders...).Save(ctx); err != nil {
		r.logger.Error("failed to save submission records", "error", err)
		return err
	}
	return nil
}

func (r *submissionRepository) GetRecord(ctx context.Context, id uuid.UUID) (*entity.SubmissionRecord, error) {
	rec, err := r.client.SubmissionRecord.Query().
		Where(submissionrecord.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get submission record", "record_id", id, "error", err)
		return nil, err
	}
	return toSubmissionRecord(rec), nil
}

func (r *submissionRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.SubmissionRecord, error) {
	recs, err := r.client.SubmissionRecord.Query().
		Where(submissionrecord.DocumentID(documentID)).
		Order(submissionrecord.ByDocNumber()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list submission records", "document_id", documentID, "error", err)
		return nil, err
	}
	result := make([]*entity.SubmissionRecord, len(recs))
	for i, rec := range recs {
		result[i] = toSubmissionRecord(rec)
	}
	return result, nil
}

// Advance moves id from -> to as one conditional update. Zero matched rows
// means a concurrent actor changed the state first.
func (r *submissionRepository) Advance(ctx context.Context, id uuid.UUID, from, to constants.DocStatus) (bool, error) {
	n, err := r.client.SubmissionRecord.Update().
		Where(
			submissionrecord.ID(id),
			submissionrecord.Status(string(from)),
		).
		SetStatus(string(to)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to advance submission record", "record_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *submissionRepository) SetError(ctx context.Context, id uuid.UUID, message string) error {
	err := r.client.SubmissionRecord.UpdateOneID(id).
		SetErrorMessage(message).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to record submission error", "record_id", id, "error", err)
		return err
	}
	return nil
}

func toSubmissionRecord(e *ent.SubmissionRecord) *entity.SubmissionRecord {
	return &entity.SubmissionRecord{
		ID:              e.ID,
		DocumentID:      e.DocumentID,
		DocNumber:       e.DocNumber,
		DestinationType: e.DestinationType,
		StoreID:         e.StoreID,
		StoreName:       e.StoreName,
		SupplierID:      e.SupplierID,
		SupplierName:    e.SupplierName,
		DocDate:         e.DocDate,
		Items:           e.Items,
		TotalAmount:     decimal.NewFromFloat(e.TotalAmount),
		Status:          constants.DocStatus(e.Status),
		ErrorMessage:    e.ErrorMessage,
		Warnings:        e.Warnings,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
