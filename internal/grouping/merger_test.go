package grouping

import (
	"math/rand"
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

func itemsPage(pageNum, totalPages, confidence int, sums ...string) *entity.Extraction {
	p := &entity.Extraction{
		DocType:    constants.DocTypeUPD,
		PageNumber: pageNum,
		TotalPages: totalPages,
		DocNumber:  strp("УТ-9"),
		Date:       strp("2026-03-01"),
		Supplier:   entity.Party{Name: strp("ООО Ромашка"), INN: strp("7707083893")},
		Confidence: confidence,
	}
	for _, s := range sums {
		p.Items = append(p.Items, entity.LineItem{
			Name: "позиция " + s,
			Sum:  dec(s),
			Qty:  dec("1"),
		})
	}
	return p
}

func TestMergeConcatenatesAndRecomputes(t *testing.T) {
	grp := &entity.DocumentGroup{
		Key:        "7707083893_УТ-9_2026-03-01",
		Pages:      []*entity.Extraction{itemsPage(1, 2, 90, "100.10", "200.20"), itemsPage(2, 2, 75, "300.30")},
		TotalPages: 2,
		IsComplete: true,
	}

	doc := Merge(grp)

	if len(doc.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(doc.Items))
	}
	if doc.TotalAmount.String() != "600.6" {
		t.Fatalf("total = %s, want 600.6", doc.TotalAmount)
	}
	if doc.Confidence != 75 {
		t.Fatalf("confidence = %d, want weakest page 75", doc.Confidence)
	}
	if !doc.IsMerged {
		t.Fatal("multi-page group must set is_merged")
	}
	if doc.NeedsReview {
		t.Fatal("complete, clean group must not need review")
	}
	if doc.PageCount != 2 {
		t.Fatalf("page_count = %d", doc.PageCount)
	}
}

func TestMergeTotalIndependentOfPageOrder(t *testing.T) {
	pages := []*entity.Extraction{
		itemsPage(1, 3, 90, "10.01", "20.02"),
		itemsPage(2, 3, 90, "30.03"),
		itemsPage(3, 3, 90, "40.04", "50.05"),
	}

	rng := rand.New(rand.NewSource(3))
	var want string
	for trial := 0; trial < 10; trial++ {
		shuffled := append([]*entity.Extraction(nil), pages...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		groups := NewGrouper(nil).Group(shuffled)
		if len(groups) != 1 {
			t.Fatalf("trial %d: groups = %d", trial, len(groups))
		}
		doc := Merge(groups[0])

		// merged total always equals the sum over merged line items
		lineSum := decimal.Zero
		for _, item := range doc.Items {
			lineSum = lineSum.Add(*item.Sum)
		}
		if !doc.TotalAmount.Equal(lineSum.Round(2)) {
			t.Fatalf("trial %d: total %s != line sum %s", trial, doc.TotalAmount, lineSum)
		}
		if want == "" {
			want = doc.TotalAmount.String()
		} else if doc.TotalAmount.String() != want {
			t.Fatalf("trial %d: total %s, want %s", trial, doc.TotalAmount, want)
		}
	}
}

func TestMergeSinglePagePassthrough(t *testing.T) {
	grp := &entity.DocumentGroup{
		Key:        "solo_1",
		Pages:      []*entity.Extraction{itemsPage(1, 1, 88, "500")},
		TotalPages: 1,
		IsComplete: true,
	}

	doc := Merge(grp)
	if doc.IsMerged {
		t.Fatal("single-page group must not claim is_merged")
	}
	if doc.TotalAmount.String() != "500" {
		t.Fatalf("total = %s", doc.TotalAmount)
	}
}

func TestMergeIncompleteGroupFlagged(t *testing.T) {
	grp := &entity.DocumentGroup{
		Key:          "7707083893_УТ-9_2026-03-01",
		Pages:        []*entity.Extraction{itemsPage(1, 3, 90, "100")},
		TotalPages:   3,
		IsComplete:   false,
		MissingPages: 2,
	}

	doc := Merge(grp)

	if !doc.NeedsReview {
		t.Fatal("incomplete document must need review")
	}
	found := false
	for _, w := range doc.Warnings {
		if strings.Contains(w, "1 of 3 pages") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an N-of-M warning, got %v", doc.Warnings)
	}
}

func TestMergePropagatesPageWarningsAndReview(t *testing.T) {
	p1 := itemsPage(1, 2, 90, "100")
	p1.Warnings = []string{"line 1: sum corrected"}
	p2 := itemsPage(2, 2, 90, "200")
	p2.NeedsReview = true

	grp := &entity.DocumentGroup{
		Key:        "7707083893_УТ-9_2026-03-01",
		Pages:      []*entity.Extraction{p1, p2},
		TotalPages: 2,
		IsComplete: true,
	}

	doc := Merge(grp)
	if !doc.NeedsReview {
		t.Fatal("page-level needs_review must propagate")
	}
	if len(doc.Warnings) == 0 || doc.Warnings[0] != "line 1: sum corrected" {
		t.Fatalf("warnings = %v", doc.Warnings)
	}
}
