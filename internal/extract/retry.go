package extract

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/paradize/restodocs/internal/entity"
)

// Retrier wraps an Extractor with a bounded retry loop for transient
// failures. Only retryable RecognitionErrors (empty responses) are retried;
// malformed output fails immediately.
type Retrier struct {
	Inner    Extractor
	Attempts int
	Backoff  time.Duration
	Logger   *slog.Logger
}

func NewRetrier(inner Extractor, attempts int, backoff time.Duration, logger *slog.Logger) *Retrier {
	if logger == nil {
		logger = slog.Default()
	}
	if attempts < 1 {
		attempts = 2
	}
	if backoff <= 0 {
		backoff = 2 * time.Second
	}
	return &Retrier{Inner: inner, Attempts: attempts, Backoff: backoff, Logger: logger}
}

func (r *Retrier) Recognize(ctx context.Context, image []byte, hint DocTypeHint) (entity.RawExtraction, error) {
	return r.run(ctx, func() (entity.RawExtraction, error) {
		return r.Inner.Recognize(ctx, image, hint)
	})
}

func (r *Retrier) RecognizeMulti(ctx context.Context, images [][]byte) (entity.RawExtraction, error) {
	return r.run(ctx, func() (entity.RawExtraction, error) {
		return r.Inner.RecognizeMulti(ctx, images)
	})
}

func (r *Retrier) run(ctx context.Context, call func() (entity.RawExtraction, error)) (entity.RawExtraction, error) {
	var lastErr error
	for attempt := 1; attempt <= r.Attempts; attempt++ {
		ext, err := call()
		if err == nil {
			return ext, nil
		}
		lastErr = err

		var recErr *RecognitionError
		if !errors.As(err, &recErr) || !recErr.Retryable {
			return ext, err
		}
		if attempt == r.Attempts {
			break
		}

		r.Logger.Warn("extract.retry", "attempt", attempt, "of", r.Attempts, "reason", recErr.Reason)
		select {
		case <-ctx.Done():
			return ext, ctx.Err()
		case <-time.After(r.Backoff):
		}
	}
	return entity.RawExtraction{}, lastErr
}
