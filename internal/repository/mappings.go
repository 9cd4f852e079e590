package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/gen/ent"
	"github.com/paradize/restodocs/gen/ent/mappingentry"
	"github.com/paradize/restodocs/internal/entity"
	"github.com/paradize/restodocs/internal/resolve"
)

// mappingRepository backs the learned-mapping tier of entity resolution.
type mappingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewMappingRepository(client *ent.Client, logger *slog.Logger) resolve.MappingStore {
	return &mappingRepository{
		client: client,
		logger: logger,
	}
}

func (r *mappingRepository) Get(ctx context.Context, rawName string, catalogType constants.CatalogType) (*entity.MappingEntry, error) {
	rec, err := r.client.MappingEntry.Query().
		Where(
			mappingentry.RawName(rawName),
			mappingentry.CatalogType(string(catalogType)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to get mapping", "raw_name", rawName, "error", err)
		return nil, err
	}
	return toMappingEntry(rec), nil
}

func (r *mappingRepository) List(ctx context.Context, catalogType constants.CatalogType) ([]*entity.MappingEntry, error) {
	recs, err := r.client.MappingEntry.Query().
		Where(mappingentry.CatalogType(string(catalogType))).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list mappings", "catalog_type", catalogType, "error", err)
		return nil, err
	}
	result := make([]*entity.MappingEntry, len(recs))
	for i, rec := range recs {
		result[i] = toMappingEntry(rec)
	}
	return result, nil
}

// Upsert is keyed by (raw_name, catalog_type). Last write wins: concurrent
// writers propose the same or a strictly better mapping.
func (r *mappingRepository) Upsert(ctx context.Context, e *entity.MappingEntry) error {
	err := r.client.MappingEntry.Create().
		SetRawName(e.RawName).
		SetCorrectedName(e.CorrectedName).
		SetCatalogID(e.CatalogID).
		SetCatalogType(string(e.CatalogType)).
		SetConfidence(e.Confidence).
		SetSource(string(e.Source)).
		SetUseCount(e.UseCount).
		SetLastUsedAt(e.LastUsedAt).
		OnConflictColumns(mappingentry.FieldRawName, mappingentry.FieldCatalogType).
		Update(func(u *ent.MappingEntryUpsert) {
			u.SetCorrectedName(e.CorrectedName)
			u.SetCatalogID(e.CatalogID)
			u.SetConfidence(e.Confidence)
			u.SetSource(string(e.Source))
			u.SetLastUsedAt(e.LastUsedAt)
		}).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to upsert mapping", "raw_name", e.RawName, "error", err)
		return err
	}
	return nil
}

func (r *mappingRepository) Touch(ctx context.Context, rawName string, catalogType constants.CatalogType) error {
	_, err := r.client.MappingEntry.Update().
		Where(
			mappingentry.RawName(rawName),
			mappingentry.CatalogType(string(catalogType)),
		).
		AddUseCount(1).
		SetLastUsedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to touch mapping", "raw_name", rawName, "error", err)
		return err
	}
	return nil
}

func toMappingEntry(e *ent.MappingEntry) *entity.MappingEntry {
	return &entity.MappingEntry{
		ID:            e.ID,
		RawName:       e.RawName,
		CorrectedName: e.CorrectedName,
		CatalogID:     e.CatalogID,
		CatalogType:   constants.CatalogType(e.CatalogType),
		Confidence:    e.Confidence,
		Source:        constants.MappingSource(e.Source),
		UseCount:      e.UseCount,
		LastUsedAt:    e.LastUsedAt,
		CreatedAt:     e.CreatedAt,
	}
}
