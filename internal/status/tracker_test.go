package status

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
)

type memStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entity.SubmissionRecord
}

func newMemStore(recs ...*entity.SubmissionRecord) *memStore {
	s := &memStore{records: make(map[uuid.UUID]*entity.SubmissionRecord)}
	for _, r := range recs {
		s.records[r.ID] = r
	}
	return s
}

func (s *memStore) GetRecord(_ context.Context, id uuid.UUID) (*entity.SubmissionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.records[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (s *memStore) Advance(_ context.Context, id uuid.UUID, from, to constants.DocStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok || r.Status != from {
		return false, nil
	}
	r.Status = to
	return true, nil
}

func (s *memStore) SetError(_ context.Context, id uuid.UUID, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.records[id]; ok {
		r.ErrorMessage = &msg
	}
	return nil
}

func (s *memStore) status(id uuid.UUID) constants.DocStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[id].Status
}

type fakeSubmitter struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeSubmitter) Submit(context.Context, *entity.SubmissionRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func mappedRecord() *entity.SubmissionRecord {
	return &entity.SubmissionRecord{ID: uuid.New(), DocNumber: "УТ-482", Status: constants.StatusMapped}
}

func TestSubmitAdvancesToImported(t *testing.T) {
	rec := mappedRecord()
	store := newMemStore(rec)
	sub := &fakeSubmitter{}
	tr := NewTracker(store, sub, nil)

	if err := tr.Submit(context.Background(), rec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.status(rec.ID); got != constants.StatusImported {
		t.Fatalf("status = %s", got)
	}
	if sub.calls != 1 {
		t.Fatalf("submitter calls = %d", sub.calls)
	}
}

func TestFailedSubmitStaysMapped(t *testing.T) {
	rec := mappedRecord()
	store := newMemStore(rec)
	sub := &fakeSubmitter{err: errors.New("erp timeout")}
	tr := NewTracker(store, sub, nil)

	if err := tr.Submit(context.Background(), rec.ID); err == nil {
		t.Fatal("expected an error")
	}
	if got := store.status(rec.ID); got != constants.StatusMapped {
		t.Fatalf("status = %s, want MAPPED for retry", got)
	}
	stored, _ := store.GetRecord(context.Background(), rec.ID)
	if stored.ErrorMessage == nil {
		t.Fatal("error message not recorded")
	}

	// the record is retryable in place: clear the failure and go again
	sub.err = nil
	if err := tr.Submit(context.Background(), rec.ID); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if got := store.status(rec.ID); got != constants.StatusImported {
		t.Fatalf("status after retry = %s", got)
	}
}

func TestSubmitImportedIsIdempotent(t *testing.T) {
	rec := mappedRecord()
	rec.Status = constants.StatusImported
	store := newMemStore(rec)
	sub := &fakeSubmitter{}
	tr := NewTracker(store, sub, nil)

	if err := tr.Submit(context.Background(), rec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.calls != 0 {
		t.Fatalf("submitter calls = %d, want 0", sub.calls)
	}
}

func TestSubmitRejectsUnmappedRecord(t *testing.T) {
	rec := mappedRecord()
	rec.Status = constants.StatusPendingMapping
	store := newMemStore(rec)
	tr := NewTracker(store, &fakeSubmitter{}, nil)

	if err := tr.Submit(context.Background(), rec.ID); err == nil {
		t.Fatal("expected an error for a PENDING_MAPPING record")
	}
}

func TestConcurrentSubmitsImportOnce(t *testing.T) {
	rec := mappedRecord()
	store := newMemStore(rec)
	sub := &fakeSubmitter{}
	tr := NewTracker(store, sub, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tr.Submit(context.Background(), rec.ID)
		}()
	}
	wg.Wait()

	if got := store.status(rec.ID); got != constants.StatusImported {
		t.Fatalf("status = %s", got)
	}
}

func TestAdvanceRejectsBackwardTransition(t *testing.T) {
	rec := mappedRecord()
	store := newMemStore(rec)
	tr := NewTracker(store, &fakeSubmitter{}, nil)

	err := tr.Advance(context.Background(), rec.ID, constants.StatusMapped, constants.StatusRecognized)
	if err == nil {
		t.Fatal("backward transition must be rejected")
	}
	if got := store.status(rec.ID); got != constants.StatusMapped {
		t.Fatalf("status = %s", got)
	}
}

func TestAdvanceConflictOnStaleState(t *testing.T) {
	rec := mappedRecord()
	rec.Status = constants.StatusRecognized
	store := newMemStore(rec)
	tr := NewTracker(store, &fakeSubmitter{}, nil)

	err := tr.Advance(context.Background(), rec.ID, constants.StatusPendingMapping, constants.StatusMapped)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestCancelFromPreImportStates(t *testing.T) {
	for _, from := range []constants.DocStatus{
		constants.StatusRecognized,
		constants.StatusPendingMapping,
		constants.StatusMapped,
	} {
		rec := mappedRecord()
		rec.Status = from
		store := newMemStore(rec)
		tr := NewTracker(store, &fakeSubmitter{}, nil)

		if err := tr.Cancel(context.Background(), rec.ID); err != nil {
			t.Fatalf("cancel from %s: %v", from, err)
		}
		if got := store.status(rec.ID); got != constants.StatusCancelled {
			t.Fatalf("status = %s", got)
		}
	}
}

func TestCancelImportedRejected(t *testing.T) {
	rec := mappedRecord()
	rec.Status = constants.StatusImported
	store := newMemStore(rec)
	tr := NewTracker(store, &fakeSubmitter{}, nil)

	if err := tr.Cancel(context.Background(), rec.ID); err == nil {
		t.Fatal("cancelling an imported record must fail")
	}
}
