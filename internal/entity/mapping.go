package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/paradize/restodocs/constants"
)

// MappingEntry is one learned raw-name -> catalog-id correspondence.
// Entries are created on first successful auto-resolution or manual
// correction and only ever updated (use_count, last_used_at) afterwards;
// deletion is manual curation, never automatic.
type MappingEntry struct {
	ID            uuid.UUID
	RawName       string // unique, lowercased key
	CorrectedName string
	CatalogID     uuid.UUID
	CatalogType   constants.CatalogType
	Confidence    int // 0..100 similarity at learn time
	Source        constants.MappingSource
	UseCount      int
	LastUsedAt    time.Time
	CreatedAt     time.Time
}

// EscalationItem is one row of the human-reviewable ledger. Every line item
// of an escalated document is recorded, resolved or not, so the reviewer
// sees the full document context.
type EscalationItem struct {
	ID             uuid.UUID
	DocumentID     uuid.UUID
	RawName        string
	NormalizedName string
	CatalogType    constants.CatalogType
	ResolvedID     *uuid.UUID
	ResolvedName   *string
	Resolved       bool
	CreatedAt      time.Time
}

// Resolution is a human-supplied answer for one escalated name.
type Resolution struct {
	RawName      string
	ResolvedID   uuid.UUID
	ResolvedName string
	CatalogType  constants.CatalogType
}
