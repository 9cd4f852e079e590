package extract

import (
	"errors"
	"testing"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"fence without language", "```\n{\"a\":1}\n```", `{"a":1}`, true},
		{"prose wrapped", `Here is the result: {"a":1} hope it helps`, `{"a":1}`, true},
		{"nested braces", `note {"a":{"b":2}} end`, `{"a":{"b":2}}`, true},
		{"empty", "", "", false},
		{"no object", "sorry, the image is unreadable", "", false},
		{"broken json", `{"a":`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject([]byte(tt.in))
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && string(got) != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripNumberNoise(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1234.56", "1234.56"},
		{"1234,56", "1234.56"},
		{"1 234,56", "1234.56"},
		{"12 345 678,90", "12345678.90"},
		{"12,345.67", "12345.67"},
		{"12.345,67", "12345.67"},
		{"1_000_000", "1000000"},
		{"1,234,567", "1234567"},
		{"1,500", "1500"}, // thousands group, not 1.5
		{"12,345", "12345"},
		{"0,500", "0.500"}, // leading zero can only be a decimal
		{"1,5", "1.5"},
		{"1,5000", "1.5000"},
		{"", ""},
		{"  42  ", "42"},
		{"n/a", "n/a"}, // unparsable text passes through untouched
	}

	for _, tt := range tests {
		if got := StripNumberNoise(tt.in); got != tt.want {
			t.Errorf("StripNumberNoise(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeRawExtraction(t *testing.T) {
	t.Run("defaults paging fields", func(t *testing.T) {
		ext, err := DecodeRawExtraction([]byte(`{"doc_type":"upd","items":[]}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ext.PageNumber != 1 || ext.TotalPages != 1 {
			t.Fatalf("paging defaults = %d/%d, want 1/1", ext.PageNumber, ext.TotalPages)
		}
	})

	t.Run("empty response is retryable", func(t *testing.T) {
		_, err := DecodeRawExtraction([]byte("   "))
		var recErr *RecognitionError
		if !errors.As(err, &recErr) || !recErr.Retryable {
			t.Fatalf("want retryable RecognitionError, got %v", err)
		}
	})

	t.Run("prose without JSON is terminal", func(t *testing.T) {
		_, err := DecodeRawExtraction([]byte("cannot read this image"))
		var recErr *RecognitionError
		if !errors.As(err, &recErr) {
			t.Fatalf("want RecognitionError, got %v", err)
		}
		if recErr.Retryable {
			t.Fatal("malformed output must not be retried")
		}
	})

	t.Run("numeric doc_number tolerated", func(t *testing.T) {
		ext, err := DecodeRawExtraction([]byte(`{"doc_type":"upd","doc_number":12345,"items":[{"name":"Молоко","qty":"2","sum":"1 234,56"}]}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ext.DocNumber.String() != "12345" {
			t.Fatalf("doc_number = %q, want 12345", ext.DocNumber)
		}
		if ext.Items[0].Sum.String() != "1 234,56" {
			t.Fatalf("sum kept verbatim for normalizer, got %q", ext.Items[0].Sum)
		}
	})

	t.Run("schema violation rejected", func(t *testing.T) {
		_, err := DecodeRawExtraction([]byte(`{"doc_type":"upd","items":[{"unit":"kg"}]}`))
		var recErr *RecognitionError
		if !errors.As(err, &recErr) {
			t.Fatalf("want RecognitionError for item without name, got %v", err)
		}
	})
}
