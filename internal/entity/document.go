package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paradize/restodocs/constants"
)

// DocumentGroup clusters page extractions that belong to one physical
// document. Built incrementally by the page grouper, consumed once by the
// merger, then discarded; only the merged document persists.
type DocumentGroup struct {
	Key          string
	Pages        []*Extraction
	TotalPages   int
	IsComplete   bool
	MissingPages int
	Forced       bool // pass-2 fallback could not establish the page relationship with confidence
}

// MergedDocument is the system-of-record document assembled from a group.
// Immutable after creation.
type MergedDocument struct {
	ID          uuid.UUID
	DocType     constants.DocType
	DocNumber   string
	DocDate     string // YYYY-MM-DD as read; parsed only at submission time
	Supplier    Party
	Buyer       *Party
	Items       []LineItem
	TotalAmount decimal.Decimal
	Confidence  int // min across constituent pages
	PageCount   int
	IsMerged    bool
	NeedsReview bool
	GroupKey    string
	Warnings    []string
	Errors      []string
	Status      constants.DocStatus
	CreatedAt   time.Time
}
