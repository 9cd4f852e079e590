package extract

import (
	"context"
	"testing"
	"time"

	"github.com/paradize/restodocs/internal/entity"
)

type scriptedExtractor struct {
	calls int
	errs  []error
}

func (s *scriptedExtractor) Recognize(context.Context, []byte, DocTypeHint) (entity.RawExtraction, error) {
	err := s.errs[s.calls]
	s.calls++
	if err != nil {
		return entity.RawExtraction{}, err
	}
	return entity.RawExtraction{DocType: "upd", PageNumber: 1, TotalPages: 1}, nil
}

func (s *scriptedExtractor) RecognizeMulti(ctx context.Context, _ [][]byte) (entity.RawExtraction, error) {
	return s.Recognize(ctx, nil, HintNone)
}

func TestRetrierRecoversFromEmptyResponse(t *testing.T) {
	inner := &scriptedExtractor{errs: []error{
		&RecognitionError{Reason: "empty response", Retryable: true},
		nil,
	}}
	r := NewRetrier(inner, 2, time.Millisecond, nil)

	ext, err := r.Recognize(context.Background(), []byte("img"), HintNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ext.DocType != "upd" {
		t.Fatalf("doc_type = %q", ext.DocType)
	}
	if inner.calls != 2 {
		t.Fatalf("calls = %d, want 2", inner.calls)
	}
}

func TestRetrierDoesNotRetryMalformedOutput(t *testing.T) {
	inner := &scriptedExtractor{errs: []error{
		&RecognitionError{Reason: "no JSON object in response"},
		nil,
	}}
	r := NewRetrier(inner, 3, time.Millisecond, nil)

	if _, err := r.Recognize(context.Background(), []byte("img"), HintNone); err == nil {
		t.Fatal("expected error")
	}
	if inner.calls != 1 {
		t.Fatalf("calls = %d, want 1 (no retry)", inner.calls)
	}
}

func TestRetrierGivesUpAfterBoundedAttempts(t *testing.T) {
	inner := &scriptedExtractor{errs: []error{
		&RecognitionError{Reason: "empty response", Retryable: true},
		&RecognitionError{Reason: "empty response", Retryable: true},
		nil, // would succeed, but the budget is 2
	}}
	r := NewRetrier(inner, 2, time.Millisecond, nil)

	if _, err := r.Recognize(context.Background(), []byte("img"), HintNone); err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if inner.calls != 2 {
		t.Fatalf("calls = %d, want 2", inner.calls)
	}
}
