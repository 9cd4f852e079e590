// Package resolve maps free-text product and supplier names from scanned
// documents onto catalog ids. Two tiers — the learned-mapping store, then a
// fuzzy catalog search — with human escalation as the backstop. Every
// accepted catalog match is immediately learned, so resolution accuracy
// compounds with volume.
package resolve

import (
	"context"

	"github.com/google/uuid"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
)

// CatalogEntry is one candidate from the ERP master list.
type CatalogEntry struct {
	ID          uuid.UUID
	Name        string
	INN         string // suppliers only
	Unit        string // products: base measurement unit
	Destination string // products: receiving-unit class (kitchen, bar, ...)
}

// CatalogLookup is the live ERP catalog. Implementations return ranked
// candidates without thresholding; acceptance is this package's decision.
type CatalogLookup interface {
	SearchProducts(ctx context.Context, name string) ([]CatalogEntry, error)
	SearchSuppliers(ctx context.Context, name, inn string) ([]CatalogEntry, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*CatalogEntry, error)
}

// MappingStore persists learned raw-name -> catalog-id correspondences.
type MappingStore interface {
	// Get returns the entry for an exact (case-folded) raw name, nil if absent.
	Get(ctx context.Context, rawName string, catalogType constants.CatalogType) (*entity.MappingEntry, error)
	// List returns all entries of one catalog type for fuzzy scanning.
	List(ctx context.Context, catalogType constants.CatalogType) ([]*entity.MappingEntry, error)
	// Upsert inserts or overwrites by raw_name. Last write wins: concurrent
	// writers propose the same or a strictly better mapping.
	Upsert(ctx context.Context, e *entity.MappingEntry) error
	// Touch bumps use_count and last_used_at on a hit.
	Touch(ctx context.Context, rawName string, catalogType constants.CatalogType) error
}

// EscalationLedger is the human-reviewable worksheet of unresolved names.
// Append never overwrites existing rows and tolerates concurrent appends.
type EscalationLedger interface {
	Append(ctx context.Context, documentID uuid.UUID, items []entity.EscalationItem) error
	ReadResolutions(ctx context.Context, documentID uuid.UUID) ([]entity.Resolution, error)
}
