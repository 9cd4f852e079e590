package constants

import "strings"

// VATExempt is the literal the extractor reports for VAT-free lines.
const VATExempt = "без НДС"

// vatRates maps extractor-reported rate strings to decimal rates.
// "22%" is kept as an alias for 20%: the vision model reads the narrow
// column badly and 22 is its single most common misread of 20.
var vatRates = map[string]float64{
	"10%":     0.10,
	"20%":     0.20,
	"22%":     0.20,
	"5%":      0.05,
	"7%":      0.07,
	VATExempt: 0.00,
	"0%":      0.00,
}

// VATRate resolves an extractor-reported VAT string to a decimal rate.
// ok is false for anything outside the known table; callers must then
// trust the reported sum verbatim instead of correcting it.
func VATRate(s string) (float64, bool) {
	key := strings.TrimSpace(s)
	if key == "" {
		return 0, false
	}
	if rate, ok := vatRates[key]; ok {
		return rate, true
	}
	// tolerate "20 %", "НДС 20%" style noise
	key = strings.ReplaceAll(key, " ", "")
	key = strings.TrimPrefix(strings.ToLower(key), "ндс")
	if rate, ok := vatRates[key]; ok {
		return rate, true
	}
	return 0, false
}
