package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	reCodeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	// digit groups separated by spaces, underscores, or comma-thousands
	// inside a JSON number position, e.g. 1 234,56 / 12,345.67 / 1_000
	reSpacedNumber = regexp.MustCompile(`(\d)[ _\x{00a0}](\d)`)
	// a lone comma splitting a nonzero 1-3 digit group from exactly 3
	// digits is a thousands separator: 1,500 / 12,345 — but not 0,500
	reCommaThousands = regexp.MustCompile(`^-?[1-9]\d{0,2},\d{3}$`)
)

// ExtractJSONObject recovers a JSON object from model output that may be
// wrapped in code fences or prose. Returns the best-effort substring; the
// caller decides whether it actually unmarshals.
func ExtractJSONObject(raw []byte) ([]byte, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return nil, false
	}

	if m := reCodeFence.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
	}

	// fast path: the whole thing is already an object
	if strings.HasPrefix(s, "{") && json.Valid([]byte(s)) {
		return []byte(s), true
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return nil, false
	}
	candidate := s[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return nil, false
	}
	return []byte(candidate), true
}

// StripNumberNoise normalizes one numeric token from the extractor:
// collapses digit-group separators and converts comma decimals to dots.
// It does not parse; unparsable text passes through for the normalizer to
// reject into a null.
func StripNumberNoise(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	for reSpacedNumber.MatchString(s) {
		s = reSpacedNumber.ReplaceAllString(s, "$1$2")
	}

	comma := strings.Count(s, ",")
	dot := strings.Count(s, ".")
	switch {
	case comma > 0 && dot > 0:
		// 12,345.67 — commas are thousands separators
		if strings.LastIndex(s, ".") > strings.LastIndex(s, ",") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			// 12.345,67 — European style
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		}
	case comma == 1:
		if reCommaThousands.MatchString(s) {
			s = strings.Replace(s, ",", "", 1)
		} else {
			// any other single comma is a decimal separator: 1234,56
			s = strings.Replace(s, ",", ".", 1)
		}
	case comma > 1:
		// multiple commas can only be thousands separators
		s = strings.ReplaceAll(s, ",", "")
	}
	return s
}
