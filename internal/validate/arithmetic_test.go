package validate

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strp(s string) *string { return &s }

// completePage returns a page that passes every required-field check.
func completePage(docType constants.DocType, items []entity.LineItem) entity.Extraction {
	return entity.Extraction{
		DocType:    docType,
		DocNumber:  strp("УТ-1"),
		Date:       strp("2026-01-01"),
		Supplier:   entity.Party{Name: strp("ООО Ромашка"), INN: strp("7707083893")},
		Items:      items,
		PageNumber: 1,
		TotalPages: 1,
		Confidence: 95,
	}
}

func TestNetSumCorrectedToGross(t *testing.T) {
	// extractor reported qty*price (net) in the sum column on all lines
	items := []entity.LineItem{
		{Name: "Молоко", Qty: dec("10"), Price: dec("50"), Sum: dec("500"), VATRate: strp("20%")},
		{Name: "Сыр", Qty: dec("2"), Price: dec("700"), Sum: dec("1400"), VATRate: strp("20%")},
		{Name: "Хлеб", Qty: dec("5"), Price: dec("30"), Sum: dec("150"), VATRate: strp("20%")},
	}
	ext := completePage(constants.DocTypeUPD, items)

	New(Config{}).ValidatePage(&ext)

	wantSums := []string{"600", "1680", "180"}
	for i, want := range wantSums {
		if got := ext.Items[i].Sum.String(); got != want {
			t.Errorf("line %d sum = %s, want %s", i, got, want)
		}
	}
	if ext.TotalAmount.String() != "2460" {
		t.Errorf("total = %s, want 2460", ext.TotalAmount)
	}
	if ext.NeedsReview {
		t.Errorf("needs_review must stay false for corrected-but-consistent document: %v", ext.Errors)
	}
	if len(ext.Warnings) < 3 {
		t.Errorf("each correction must leave a warning, got %v", ext.Warnings)
	}
}

func TestGrossSumLeftAlone(t *testing.T) {
	items := []entity.LineItem{
		{Name: "Молоко", Qty: dec("10"), Price: dec("50"), Sum: dec("600"), VATRate: strp("20%")},
	}
	ext := completePage(constants.DocTypeUPD, items)

	New(Config{}).ValidatePage(&ext)

	if ext.Items[0].Sum.String() != "600" {
		t.Fatalf("sum = %s, want 600 untouched", ext.Items[0].Sum)
	}
	if len(ext.Warnings) != 0 {
		t.Fatalf("no warnings expected, got %v", ext.Warnings)
	}
}

func TestMisreadVATRate22TreatedAs20(t *testing.T) {
	items := []entity.LineItem{
		{Name: "Молоко", Qty: dec("10"), Price: dec("50"), Sum: dec("500"), VATRate: strp("22%")},
	}
	ext := completePage(constants.DocTypeUPD, items)

	New(Config{}).ValidatePage(&ext)

	if ext.Items[0].Sum.String() != "600" {
		t.Fatalf("sum = %s, want 600 (22%% is an OCR misread of 20%%)", ext.Items[0].Sum)
	}
}

func TestTinyLineNetSumStillCorrected(t *testing.T) {
	// net 1.00 and gross 1.20 are both inside the tolerance band of the
	// other; the net check must win so the line still gets grossed up
	items := []entity.LineItem{
		{Name: "Пакет", Qty: dec("1"), Price: dec("1"), Sum: dec("1"), VATRate: strp("20%")},
	}
	ext := completePage(constants.DocTypeUPD, items)

	New(Config{}).ValidatePage(&ext)

	if ext.Items[0].Sum.String() != "1.2" {
		t.Fatalf("sum = %s, want 1.2", ext.Items[0].Sum)
	}
	if len(ext.Warnings) == 0 {
		t.Fatal("net-reported sum must leave a correction warning")
	}
}

func TestTinyLineExactGrossLeftAlone(t *testing.T) {
	items := []entity.LineItem{
		{Name: "Пакет", Qty: dec("1"), Price: dec("1"), Sum: dec("1.20"), VATRate: strp("20%")},
	}
	ext := completePage(constants.DocTypeUPD, items)

	New(Config{}).ValidatePage(&ext)

	if ext.Items[0].Sum.String() != "1.2" {
		t.Fatalf("sum = %s, want 1.2 untouched", ext.Items[0].Sum)
	}
	if len(ext.Warnings) != 0 {
		t.Fatalf("exact gross must not warn, got %v", ext.Warnings)
	}
}

func TestUnreconcilableSumKeptWithWarning(t *testing.T) {
	items := []entity.LineItem{
		{Name: "Молоко", Qty: dec("10"), Price: dec("50"), Sum: dec("570"), VATRate: strp("20%")},
	}
	ext := completePage(constants.DocTypeUPD, items)

	New(Config{}).ValidatePage(&ext)

	if ext.Items[0].Sum.String() != "570" {
		t.Fatalf("sum = %s, want 570 (no guessing beyond the two candidates)", ext.Items[0].Sum)
	}
	found := false
	for _, w := range ext.Warnings {
		if strings.Contains(w, "disagrees") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a discrepancy warning, got %v", ext.Warnings)
	}
}

func TestUnknownRateTrustsSumVerbatim(t *testing.T) {
	items := []entity.LineItem{
		{Name: "Молоко", Qty: dec("10"), Price: dec("50"), Sum: dec("513"), VATRate: strp("18%")},
	}
	ext := completePage(constants.DocTypeUPD, items)

	New(Config{}).ValidatePage(&ext)

	if ext.Items[0].Sum.String() != "513" {
		t.Fatalf("sum = %s, want 513 verbatim for unknown rate", ext.Items[0].Sum)
	}
}

func TestMissingSumComputed(t *testing.T) {
	items := []entity.LineItem{
		{Name: "Молоко", Qty: dec("3"), Price: dec("100.10"), VATRate: strp("10%")},
	}
	ext := completePage(constants.DocTypeUPD, items)

	New(Config{}).ValidatePage(&ext)

	if ext.Items[0].Sum == nil || ext.Items[0].Sum.String() != "330.33" {
		t.Fatalf("sum = %v, want 330.33", ext.Items[0].Sum)
	}
	if len(ext.Warnings) == 0 {
		t.Fatal("filling a missing sum must warn")
	}
}

func TestReceiptExemptFromVATCorrection(t *testing.T) {
	// receipt prices are VAT-inclusive; 500 must not become 600
	items := []entity.LineItem{
		{Name: "Кофе", Qty: dec("10"), Price: dec("50"), Sum: dec("500"), VATRate: strp("20%")},
	}
	ext := completePage(constants.DocTypeReceipt, items)

	New(Config{}).ValidatePage(&ext)

	if ext.Items[0].Sum.String() != "500" {
		t.Fatalf("sum = %s, want 500 (receipts exempt)", ext.Items[0].Sum)
	}
}

func TestMissingINNForcesReview(t *testing.T) {
	items := []entity.LineItem{
		{Name: "Молоко", Qty: dec("10"), Price: dec("50"), Sum: dec("600"), VATRate: strp("20%")},
	}
	ext := completePage(constants.DocTypeUPD, items)
	ext.Supplier.INN = nil
	ext.Confidence = 99

	New(Config{}).ValidatePage(&ext)

	if !ext.NeedsReview {
		t.Fatal("missing supplier INN is a hard error regardless of confidence")
	}
	if len(ext.Errors) == 0 {
		t.Fatal("expected a hard error entry")
	}
}

func TestZeroItemsForcesReview(t *testing.T) {
	ext := completePage(constants.DocTypeUPD, nil)
	New(Config{}).ValidatePage(&ext)
	if !ext.NeedsReview {
		t.Fatal("zero line items is a hard error")
	}
}

func TestLowConfidenceForcesReview(t *testing.T) {
	items := []entity.LineItem{
		{Name: "Молоко", Qty: dec("10"), Price: dec("50"), Sum: dec("600"), VATRate: strp("20%")},
	}
	ext := completePage(constants.DocTypeUPD, items)
	ext.Confidence = 40

	New(Config{}).ValidatePage(&ext)

	if !ext.NeedsReview {
		t.Fatal("confidence below floor must force review even with clean arithmetic")
	}
	if len(ext.Errors) != 0 {
		t.Fatalf("low confidence is not a hard error: %v", ext.Errors)
	}
}

func TestReportedTotalOverriddenBeyondTolerance(t *testing.T) {
	items := []entity.LineItem{
		{Name: "Молоко", Qty: dec("10"), Price: dec("50"), Sum: dec("600"), VATRate: strp("20%")},
	}
	ext := completePage(constants.DocTypeUPD, items)
	ext.TotalAmount = dec("660") // off by 60, way past the +/-5 band

	New(Config{}).ValidatePage(&ext)

	if ext.TotalAmount.String() != "600" {
		t.Fatalf("total = %s, want recomputed 600", ext.TotalAmount)
	}
}

func TestReportedTotalWithinToleranceStillNormalized(t *testing.T) {
	items := []entity.LineItem{
		{Name: "Молоко", Qty: dec("10"), Price: dec("50"), Sum: dec("600"), VATRate: strp("20%")},
	}
	ext := completePage(constants.DocTypeUPD, items)
	ext.TotalAmount = dec("602.50") // rounding drift inside the band

	New(Config{}).ValidatePage(&ext)

	if ext.TotalAmount.String() != "600" {
		t.Fatalf("total = %s, want 600", ext.TotalAmount)
	}
	for _, w := range ext.Warnings {
		if strings.Contains(w, "replaced") {
			t.Fatalf("in-tolerance drift must not warn: %v", ext.Warnings)
		}
	}
}
