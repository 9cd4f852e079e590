package entity

// OCROutcome classifies the terminal result of one submitted photo.
type OCROutcome string

const (
	OCROK         OCROutcome = "ok"         // extraction normalized and validated
	OCRIncomplete OCROutcome = "incomplete" // page landed in a short multi-page group
	OCRRejected   OCROutcome = "rejected"   // quality gate refused the image
	OCRError      OCROutcome = "error"      // extractor failed after retries
)

// OCRResult is the one-per-photo terminal outcome. Every photo that enters
// the pipeline produces exactly one of these; nothing is silently dropped.
type OCRResult struct {
	Index      int // position within the submitted batch
	Outcome    OCROutcome
	Issues     []string
	Extraction *Extraction // set when Outcome is OCROK or OCRIncomplete
}
