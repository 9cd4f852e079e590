// Package status drives the submission lifecycle of recognized documents.
// Transitions are forward-only and every advance is a conditional update
// against the expected current state, so two concurrent actors can never
// both move the same record.
package status

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
)

// ErrConflict is returned when a conditional advance finds the record in a
// different state than expected: someone else moved it first.
var ErrConflict = errors.New("submission state changed concurrently")

// Store is the persistence surface the tracker needs. Advance must be a
// single atomic compare-and-set in the backing store, not read-then-write.
type Store interface {
	GetRecord(ctx context.Context, id uuid.UUID) (*entity.SubmissionRecord, error)
	// Advance moves id from -> to and reports whether the row matched.
	Advance(ctx context.Context, id uuid.UUID, from, to constants.DocStatus) (bool, error)
	SetError(ctx context.Context, id uuid.UUID, message string) error
}

// Submitter pushes one record to the external back-office system. The
// receiver deduplicates by document number, so a retried Submit with the
// same record is safe.
type Submitter interface {
	Submit(ctx context.Context, rec *entity.SubmissionRecord) error
}

type Tracker struct {
	Logger    *slog.Logger
	Store     Store
	Submitter Submitter
}

func NewTracker(store Store, submitter Submitter, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{Logger: logger, Store: store, Submitter: submitter}
}

// Advance performs one legal lifecycle step. Illegal transitions are
// rejected before touching the store.
func (t *Tracker) Advance(ctx context.Context, id uuid.UUID, from, to constants.DocStatus) error {
	if !constants.CanTransition(from, to) {
		return fmt.Errorf("transition %s -> %s is not allowed", from, to)
	}
	ok, err := t.Store.Advance(ctx, id, from, to)
	if err != nil {
		return fmt.Errorf("advance %s: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("advance %s from %s: %w", id, from, ErrConflict)
	}
	t.Logger.Info("status.advance", "record_id", id, "from", from, "to", to)
	return nil
}

// Submit pushes a MAPPED record to the external system and, on a successful
// acknowledgment, advances it to IMPORTED. A failed submission records the
// error and leaves the record in MAPPED, so the caller can simply retry.
func (t *Tracker) Submit(ctx context.Context, id uuid.UUID) error {
	rec, err := t.Store.GetRecord(ctx, id)
	if err != nil {
		return fmt.Errorf("load record %s: %w", id, err)
	}
	if rec == nil {
		return fmt.Errorf("record %s not found", id)
	}
	if rec.Status == constants.StatusImported {
		// retry of an already-acknowledged submission; nothing to do
		t.Logger.Info("status.submit.already_imported", "record_id", id)
		return nil
	}
	if rec.Status != constants.StatusMapped {
		return fmt.Errorf("record %s is %s, only MAPPED records can be submitted", id, rec.Status)
	}

	if err := t.Submitter.Submit(ctx, rec); err != nil {
		msg := err.Error()
		if serr := t.Store.SetError(ctx, id, msg); serr != nil {
			t.Logger.Error("status.submit.record_error_failed", "record_id", id, "error", serr)
		}
		t.Logger.Warn("status.submit.failed", "record_id", id, "doc_number", rec.DocNumber, "error", err)
		return fmt.Errorf("submit %s: %w", rec.DocNumber, err)
	}

	ok, err := t.Store.Advance(ctx, id, constants.StatusMapped, constants.StatusImported)
	if err != nil {
		return fmt.Errorf("advance %s: %w", id, err)
	}
	if !ok {
		// a concurrent Submit won the race; the external system deduplicated
		// our push by document number, so the record is simply done
		t.Logger.Info("status.submit.lost_race", "record_id", id)
		return nil
	}
	t.Logger.Info("status.submit.imported", "record_id", id, "doc_number", rec.DocNumber)
	return nil
}

// Cancel moves a record to CANCELLED from any pre-import state.
func (t *Tracker) Cancel(ctx context.Context, id uuid.UUID) error {
	rec, err := t.Store.GetRecord(ctx, id)
	if err != nil {
		return fmt.Errorf("load record %s: %w", id, err)
	}
	if rec == nil {
		return fmt.Errorf("record %s not found", id)
	}
	if rec.Status == constants.StatusCancelled {
		return nil
	}
	if !constants.CanTransition(rec.Status, constants.StatusCancelled) {
		return fmt.Errorf("record %s is %s and cannot be cancelled", id, rec.Status)
	}
	ok, err := t.Store.Advance(ctx, id, rec.Status, constants.StatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel %s: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("cancel %s: %w", id, ErrConflict)
	}
	t.Logger.Info("status.cancel", "record_id", id, "from", rec.Status)
	return nil
}
