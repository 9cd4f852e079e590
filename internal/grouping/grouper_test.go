package grouping

import (
	"math/rand"
	"testing"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
)

func strp(s string) *string { return &s }

func page(key *string, pageNum, totalPages int, inn, date string) *entity.Extraction {
	p := &entity.Extraction{
		DocType:    constants.DocTypeUPD,
		PageNumber: pageNum,
		TotalPages: totalPages,
		Date:       strp(date),
		Supplier:   entity.Party{Name: strp("ООО Ромашка"), INN: strp(inn)},
		Confidence: 90,
	}
	p.GroupKey = key
	return p
}

func TestOrphanAttachedByINNAndDate(t *testing.T) {
	p1 := page(strp("123456_УТ-1_2026-01-01"), 1, 2, "123456", "2026-01-01")
	p2 := page(nil, 2, 2, "123456", "2026-01-01") // no key: extractor missed it

	groups := NewGrouper(nil).Group([]*entity.Extraction{p1, p2})

	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	grp := groups[0]
	if len(grp.Pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(grp.Pages))
	}
	if !grp.IsComplete {
		t.Fatal("2 of 2 pages present; group must be complete")
	}
	if grp.Forced {
		t.Fatal("INN+date match is not a forced grouping")
	}
}

func TestUnmatchedOrphanBecomesForcedSingleton(t *testing.T) {
	p1 := page(strp("123456_УТ-1_2026-01-01"), 1, 1, "123456", "2026-01-01")
	p2 := page(nil, 3, 4, "999999", "2026-02-02") // nothing to match

	groups := NewGrouper(nil).Group([]*entity.Extraction{p1, p2})

	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	var forced *entity.DocumentGroup
	for _, g := range groups {
		if g.Forced {
			forced = g
		}
	}
	if forced == nil {
		t.Fatal("expected a forced singleton group")
	}
	if forced.IsComplete {
		t.Fatal("3-of-4 singleton cannot be complete")
	}
	if forced.MissingPages != 3 {
		t.Fatalf("missing = %d, want 3", forced.MissingPages)
	}
}

func TestStandalonePagesStaySeparate(t *testing.T) {
	// two keyless single-page documents from the same supplier and day:
	// each gets its own synthesized group
	p1 := page(nil, 1, 1, "123456", "2026-01-01")
	p2 := page(nil, 1, 1, "123456", "2026-01-01")

	groups := NewGrouper(nil).Group([]*entity.Extraction{p1, p2})

	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Key == groups[1].Key {
		t.Fatalf("synthesized keys must be unique, both are %q", groups[0].Key)
	}
}

func TestCompletenessUsesMaxDeclaredPages(t *testing.T) {
	key := strp("123456_УТ-1_2026-01-01")
	p1 := page(key, 1, 1, "123456", "2026-01-01") // under-reports the count
	p2 := page(key, 2, 3, "123456", "2026-01-01")

	groups := NewGrouper(nil).Group([]*entity.Extraction{p1, p2})

	grp := groups[0]
	if grp.TotalPages != 3 {
		t.Fatalf("total_pages = %d, want max declared 3", grp.TotalPages)
	}
	if grp.IsComplete {
		t.Fatal("2 of 3 pages cannot be complete")
	}
	if grp.MissingPages != 1 {
		t.Fatalf("missing = %d, want 1", grp.MissingPages)
	}
}

func TestGroupingDeterministicUnderShuffle(t *testing.T) {
	keyA := strp("111_A-1_2026-01-01")
	keyB := strp("222_B-7_2026-01-02")
	pages := []*entity.Extraction{
		page(keyA, 1, 3, "111", "2026-01-01"),
		page(keyA, 2, 3, "111", "2026-01-01"),
		page(keyA, 3, 3, "111", "2026-01-01"),
		page(keyB, 1, 2, "222", "2026-01-02"),
		page(nil, 2, 2, "222", "2026-01-02"), // orphan of B
	}

	reference := partition(NewGrouper(nil).Group(pages))

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		shuffled := append([]*entity.Extraction(nil), pages...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := partition(NewGrouper(nil).Group(shuffled))
		if len(got) != len(reference) {
			t.Fatalf("trial %d: %d groups, want %d", trial, len(got), len(reference))
		}
		for key, n := range reference {
			if got[key] != n {
				t.Fatalf("trial %d: group %q has %d pages, want %d", trial, key, got[key], n)
			}
		}
	}
}

// partition summarizes a grouping result as key -> page count.
func partition(groups []*entity.DocumentGroup) map[string]int {
	out := make(map[string]int, len(groups))
	for _, g := range groups {
		out[g.Key] = len(g.Pages)
	}
	return out
}

func TestPagesSortedByPageNumber(t *testing.T) {
	key := strp("123456_УТ-1_2026-01-01")
	p3 := page(key, 3, 3, "123456", "2026-01-01")
	p1 := page(key, 1, 3, "123456", "2026-01-01")
	p2 := page(key, 2, 3, "123456", "2026-01-01")

	groups := NewGrouper(nil).Group([]*entity.Extraction{p3, p1, p2})

	grp := groups[0]
	for i, want := range []int{1, 2, 3} {
		if grp.Pages[i].PageNumber != want {
			t.Fatalf("page order %v", []int{grp.Pages[0].PageNumber, grp.Pages[1].PageNumber, grp.Pages[2].PageNumber})
		}
	}
}
