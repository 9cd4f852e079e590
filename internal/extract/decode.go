package extract

import (
	"encoding/json"
	"strings"

	"github.com/paradize/restodocs/internal/entity"
)

// DecodeRawExtraction turns raw model output into a RawExtraction.
// It tolerates fenced/prose-wrapped JSON and defaults the paging fields.
// An empty response is a retryable RecognitionError; structurally broken
// output is not (the model would produce the same thing again).
func DecodeRawExtraction(raw []byte) (entity.RawExtraction, error) {
	var ext entity.RawExtraction

	if strings.TrimSpace(string(raw)) == "" {
		return ext, &RecognitionError{Reason: "empty response", Retryable: true}
	}

	block, ok := ExtractJSONObject(raw)
	if !ok {
		return ext, &RecognitionError{Reason: "no JSON object in response"}
	}

	if err := ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), block); err != nil {
		return ext, &RecognitionError{Reason: err.Error()}
	}

	if err := json.Unmarshal(block, &ext); err != nil {
		return ext, &RecognitionError{Reason: "decode extraction: " + err.Error()}
	}

	if ext.PageNumber <= 0 {
		ext.PageNumber = 1
	}
	if ext.TotalPages <= 0 {
		ext.TotalPages = 1
	}
	return ext, nil
}
