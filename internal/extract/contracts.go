// Package extract defines the contract between the pipeline and the vision
// extractor, plus the defensive plumbing around it: lenient JSON recovery,
// wire-contract validation, and bounded retries. The extractor itself is an
// opaque, unreliable upstream; nothing downstream may assume well-formedness.
package extract

import (
	"context"
	"fmt"

	"github.com/paradize/restodocs/internal/entity"
)

// DocTypeHint optionally narrows what the extractor should expect.
type DocTypeHint string

const (
	HintNone    DocTypeHint = ""
	HintInvoice DocTypeHint = "invoice"
	HintReceipt DocTypeHint = "receipt"
	HintAct     DocTypeHint = "act"
)

// Extractor is the opaque recognition capability.
type Extractor interface {
	// Recognize extracts one page. The result is untrusted and must pass
	// through the normalizer and validator before any business logic.
	Recognize(ctx context.Context, image []byte, hint DocTypeHint) (entity.RawExtraction, error)

	// RecognizeMulti extracts a pre-known multi-page batch in one call.
	RecognizeMulti(ctx context.Context, images [][]byte) (entity.RawExtraction, error)
}

// RecognitionError is the typed failure of a recognition attempt.
// Retryable marks transient failures (empty model response); malformed
// output is not retryable — the model would return the same thing again.
type RecognitionError struct {
	Reason    string
	Retryable bool
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognition failed: %s", e.Reason)
}
