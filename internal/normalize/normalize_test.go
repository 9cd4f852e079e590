package normalize

import (
	"testing"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
)

func TestCleanINN(t *testing.T) {
	tests := []struct {
		in   string
		want string // "" means nil
	}{
		{"7707083893", "7707083893"},
		{"ИНН 7707083893", "7707083893"},
		{"77-07-08-38-93", "7707083893"},
		{"  ", ""},
		{"нет", ""},
	}
	for _, tt := range tests {
		got := CleanINN(tt.in)
		if tt.want == "" {
			if got != nil {
				t.Errorf("CleanINN(%q) = %q, want nil", tt.in, *got)
			}
			continue
		}
		if got == nil || *got != tt.want {
			t.Errorf("CleanINN(%q) = %v, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string // "" means nil
	}{
		{"1234.56", "1234.56"},
		{"1 234,56", "1234.56"},
		{"12,345.67", "12345.67"},
		{"0", "0"},
		{"", ""},
		{"abc", ""},
	}
	for _, tt := range tests {
		got := ParseDecimal(tt.in)
		if tt.want == "" {
			if got != nil {
				t.Errorf("ParseDecimal(%q) = %s, want nil", tt.in, got)
			}
			continue
		}
		if got == nil || got.String() != tt.want {
			t.Errorf("ParseDecimal(%q) = %v, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSynthesizesGroupKey(t *testing.T) {
	raw := entity.RawExtraction{
		DocType:   "upd",
		DocNumber: "УТ-1",
		Date:      "2026-01-01",
		Supplier:  entity.RawParty{Name: "ООО Ромашка", INN: "ИНН 7707083893"},
		Items:     []entity.RawLineItem{{Name: "Молоко", Qty: "2", Price: "100", Sum: "240", VATRate: "20%"}},
	}

	ext := Normalize(raw)
	if ext.GroupKey == nil {
		t.Fatal("group key not synthesized")
	}
	if *ext.GroupKey != "7707083893_УТ-1_2026-01-01" {
		t.Fatalf("group key = %q", *ext.GroupKey)
	}
	if ext.PageNumber != 1 || ext.TotalPages != 1 {
		t.Fatalf("paging = %d/%d", ext.PageNumber, ext.TotalPages)
	}
}

func TestNormalizeNoGroupKeyWithoutINN(t *testing.T) {
	raw := entity.RawExtraction{
		DocType:   "upd",
		DocNumber: "УТ-1",
		Date:      "2026-01-01",
		Supplier:  entity.RawParty{Name: "ООО Ромашка"},
	}
	if ext := Normalize(raw); ext.GroupKey != nil {
		t.Fatalf("group key = %q, want nil (INN missing)", *ext.GroupKey)
	}
}

func TestNormalizeExplicitGroupKeyWins(t *testing.T) {
	raw := entity.RawExtraction{
		DocType:  "upd",
		GroupKey: "explicit_key",
		Supplier: entity.RawParty{INN: "7707083893"},
	}
	ext := Normalize(raw)
	if ext.GroupKey == nil || *ext.GroupKey != "explicit_key" {
		t.Fatalf("group key = %v, want explicit_key", ext.GroupKey)
	}
}

func TestNormalizeItems(t *testing.T) {
	raw := entity.RawExtraction{
		DocType: "act",
		Items: []entity.RawLineItem{
			{Name: "  Сыр  Гауда ", Unit: "кг", Qty: "1,5", Price: "1 000,00", Sum: "1 800,00", VATRate: "20%"},
			{Name: "", Qty: "1"}, // nameless rows are extractor noise
			{Name: "Хлеб", Qty: "junk", Sum: ""},
		},
	}

	ext := Normalize(raw)
	if len(ext.Items) != 2 {
		t.Fatalf("items = %d, want 2 (nameless row dropped)", len(ext.Items))
	}

	first := ext.Items[0]
	if first.Name != "Сыр  Гауда" {
		t.Errorf("name must stay verbatim (trimmed only), got %q", first.Name)
	}
	if first.NameNormalized == nil || *first.NameNormalized != "сыр гауда" {
		t.Errorf("name_normalized = %v", first.NameNormalized)
	}
	if first.Qty == nil || first.Qty.String() != "1.5" {
		t.Errorf("qty = %v", first.Qty)
	}
	if first.Sum == nil || first.Sum.String() != "1800" {
		t.Errorf("sum = %v", first.Sum)
	}

	second := ext.Items[1]
	if second.Qty != nil {
		t.Errorf("unparsable qty must be nil, got %s", second.Qty)
	}
	if second.Sum != nil {
		t.Errorf("empty sum must be nil, got %s", second.Sum)
	}
}

func TestNormalizeDocType(t *testing.T) {
	ext := Normalize(entity.RawExtraction{DocType: "UPD"})
	if ext.DocType != constants.DocTypeUPD {
		t.Fatalf("doc_type = %q", ext.DocType)
	}
	ext = Normalize(entity.RawExtraction{DocType: "счёт-фактура"})
	if ext.DocType != constants.DocTypeUnknown {
		t.Fatalf("doc_type = %q, want unknown", ext.DocType)
	}
}
