package resolve

import (
	"math"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// TokenSortRatio scores two names 0..100, insensitive to word order and
// case. OCR'd names routinely permute words ("Молоко 3.2% Простоквашино"
// vs "Простоквашино молоко 3,2%"), so both sides are tokenized, sorted,
// and rejoined before the edit-distance similarity.
func TokenSortRatio(a, b string) int {
	na, nb := tokenSort(a), tokenSort(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 100
	}
	sim := levenshtein.Similarity(na, nb, levenshtein.NewParams())
	return int(math.Round(sim * 100))
}

func tokenSort(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	sort.Strings(fields)
	return strings.Join(fields, " ")
}
