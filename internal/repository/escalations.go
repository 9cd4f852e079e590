package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/gen/ent"
	"github.com/paradize/restodocs/gen/ent/escalationitem"
	"github.com/paradize/restodocs/internal/common"
	"github.com/paradize/restodocs/internal/entity"
)

// EscalationRepository is the persistent human-review ledger. The first two
// methods satisfy resolve.EscalationLedger; the rest serve the review surface.
type EscalationRepository interface {
	Append(ctx context.Context, documentID uuid.UUID, items []entity.EscalationItem) error
	ReadResolutions(ctx context.Context, documentID uuid.UUID) ([]entity.Resolution, error)
	ListOpen(ctx context.Context, documentID *uuid.UUID) ([]*entity.EscalationItem, error)
	ResolveByName(ctx context.Context, documentID uuid.UUID, normalizedName string, catalogType constants.CatalogType, resolvedID uuid.UUID, resolvedName string) error
}

type escalationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewEscalationRepository(client *ent.Client, logger *slog.Logger) EscalationRepository {
	return &escalationRepository{
		client: client,
		logger: logger,
	}
}

// Append adds ledger rows for a document. Existing rows are never
// overwritten; a name already on the ledger for this document is skipped.
func (r *escalationRepository) Append(ctx context.Context, documentID uuid.UUID, items []entity.EscalationItem) error {
	existing, err := r.client.EscalationItem.Query().
		Where(escalationitem.DocumentID(documentID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to read ledger", "document_id", documentID, "error", err)
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e.CatalogType+"/"+e.NormalizedName] = true
	}

	builders := make([]*ent.EscalationItemCreate, 0, len(items))
	for _, item := range items {
		if seen[string(item.CatalogType)+"/"+item.NormalizedName] {
			continue
		}
		b := r.client.EscalationItem.Create().
			SetDocumentID(documentID).
			SetRawName(item.RawName).
			SetNormalizedName(item.NormalizedName).
			SetCatalogType(string(item.CatalogType)).
			SetResolved(item.Resolved).
			SetNillableResolvedID(item.ResolvedID).
			SetNillableResolvedName(item.ResolvedName)
		builders = append(builders, b)
	}
	if len(builders) == 0 {
		return nil
	}
	if _, err := r.client.EscalationItem.CreateBulk(builders...).Save(ctx); err != nil {
		r.logger.Error("failed to append ledger rows", "document_id", documentID, "error", err)
		return err
	}
	return nil
}

// ReadResolutions returns the human answers recorded for a document's
// open rows.
func (r *escalationRepository) ReadResolutions(ctx context.Context, documentID uuid.UUID) ([]entity.Resolution, error) {
	recs, err := r.client.EscalationItem.Query().
		Where(
			escalationitem.DocumentID(documentID),
			escalationitem.Resolved(true),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to read resolutions", "document_id", documentID, "error", err)
		return nil, err
	}
	result := make([]entity.Resolution, 0, len(recs))
	for _, rec := range recs {
		if rec.ResolvedID == nil {
			continue
		}
		res := entity.Resolution{
			RawName:     rec.RawName,
			ResolvedID:  *rec.ResolvedID,
			CatalogType: constants.CatalogType(rec.CatalogType),
		}
		if rec.ResolvedName != nil {
			res.ResolvedName = *rec.ResolvedName
		}
		result = append(result, res)
	}
	return result, nil
}

// ListOpen returns unresolved rows, optionally narrowed to one document.
func (r *escalationRepository) ListOpen(ctx context.Context, documentID *uuid.UUID) ([]*entity.EscalationItem, error) {
	q := r.client.EscalationItem.Query().Where(escalationitem.Resolved(false))
	if documentID != nil {
		q = q.Where(escalationitem.DocumentID(*documentID))
	}
	recs, err := q.Order(escalationitem.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list open escalations", "error", err)
		return nil, err
	}
	result := make([]*entity.EscalationItem, len(recs))
	for i, rec := range recs {
		result[i] = toEscalationItem(rec)
	}
	return result, nil
}

// ResolveByName fills the open rows matching one escalated name.
func (r *escalationRepository) ResolveByName(ctx context.Context, documentID uuid.UUID, normalizedName string, catalogType constants.CatalogType, resolvedID uuid.UUID, resolvedName string) error {
	n, err := r.client.EscalationItem.Update().
		Where(
			escalationitem.DocumentID(documentID),
			escalationitem.NormalizedName(normalizedName),
			escalationitem.CatalogType(string(catalogType)),
			escalationitem.Resolved(false),
		).
		SetResolvedID(resolvedID).
		SetResolvedName(resolvedName).
		SetResolved(true).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to resolve escalation", "document_id", documentID, "name", normalizedName, "error", err)
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func toEscalationItem(e *ent.EscalationItem) *entity.EscalationItem {
	return &entity.EscalationItem{
		ID:             e.ID,
		DocumentID:     e.DocumentID,
		RawName:        e.RawName,
		NormalizedName: e.NormalizedName,
		CatalogType:    constants.CatalogType(e.CatalogType),
		ResolvedID:     e.ResolvedID,
		ResolvedName:   e.ResolvedName,
		Resolved:       e.Resolved,
		CreatedAt:      e.CreatedAt,
	}
}
