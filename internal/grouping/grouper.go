// Package grouping reassembles logical documents from an unordered batch of
// per-page extractions, then folds each group into one merged document.
package grouping

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/paradize/restodocs/internal/entity"
)

// Grouper clusters pages by group key, with an INN+date fallback pass for
// pages that arrived without one. State lives only for the duration of one
// batch; nothing is persisted here.
type Grouper struct {
	Logger *slog.Logger
}

func NewGrouper(logger *slog.Logger) *Grouper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Grouper{Logger: logger}
}

// Group partitions a batch of normalized pages into document groups.
// Two passes: keyed (or first) pages anchor groups; keyless continuation
// pages are matched by exact supplier INN + date, or forced into singleton
// groups as a last resort. The resulting partition depends only on page
// content, not on upload order.
func (g *Grouper) Group(pages []*entity.Extraction) []*entity.DocumentGroup {
	groups := make(map[string]*entity.DocumentGroup)
	var keys []string
	var orphans []*entity.Extraction

	attach := func(key string, p *entity.Extraction) *entity.DocumentGroup {
		grp, ok := groups[key]
		if !ok {
			grp = &entity.DocumentGroup{Key: key}
			groups[key] = grp
			keys = append(keys, key)
		}
		grp.Pages = append(grp.Pages, p)
		return grp
	}

	// pass 1: anchor every page that can be placed with confidence
	for _, p := range pages {
		switch {
		case p.GroupKey != nil:
			attach(*p.GroupKey, p)
		case p.PageNumber <= 1:
			attach(g.soloKey(groups, p), p)
		default:
			// a continuation page without a key cannot be placed yet
			orphans = append(orphans, p)
		}
	}

	// pass 2: INN+date heuristic. This can merge two distinct same-day
	// documents from one supplier when neither carries page markers; a
	// known, accepted grouping error in the source workflow.
	sort.SliceStable(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, o := range orphans {
		var target *entity.DocumentGroup
		for _, key := range keys {
			if matchesINNDate(groups[key], o) {
				target = groups[key]
				break
			}
		}
		if target != nil {
			target.Pages = append(target.Pages, o)
			continue
		}
		grp := attach(g.soloKey(groups, o), o)
		grp.Forced = true
		g.Logger.Warn("grouping.forced_singleton",
			"page_number", o.PageNumber, "total_pages", o.TotalPages)
	}

	// finalize: order pages, declare completeness
	sort.SliceStable(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]*entity.DocumentGroup, 0, len(keys))
	for _, key := range keys {
		grp := groups[key]
		sort.SliceStable(grp.Pages, func(i, j int) bool {
			return grp.Pages[i].PageNumber < grp.Pages[j].PageNumber
		})
		// any page may under-report the page count; trust the max claim
		grp.TotalPages = len(grp.Pages)
		for _, p := range grp.Pages {
			if p.TotalPages > grp.TotalPages {
				grp.TotalPages = p.TotalPages
			}
		}
		grp.IsComplete = len(grp.Pages) >= grp.TotalPages
		if !grp.IsComplete {
			grp.MissingPages = grp.TotalPages - len(grp.Pages)
		}
		out = append(out, grp)
	}
	return out
}

// matchesINNDate reports whether the orphan shares supplier INN and date
// with any already-grouped page. Both fields must be present and equal.
func matchesINNDate(grp *entity.DocumentGroup, o *entity.Extraction) bool {
	if o.Supplier.INN == nil || o.Date == nil {
		return false
	}
	for _, p := range grp.Pages {
		if p.Supplier.INN != nil && p.Date != nil &&
			*p.Supplier.INN == *o.Supplier.INN && *p.Date == *o.Date {
			return true
		}
	}
	return false
}

// soloKey synthesizes a unique key for a standalone page from whatever
// identifying parts it has, suffixed on collision so two distinct
// single-page documents never share a group.
func (g *Grouper) soloKey(existing map[string]*entity.DocumentGroup, p *entity.Extraction) string {
	parts := []string{"solo"}
	if p.Supplier.INN != nil {
		parts = append(parts, *p.Supplier.INN)
	}
	if p.DocNumber != nil {
		parts = append(parts, *p.DocNumber)
	}
	if p.Date != nil {
		parts = append(parts, *p.Date)
	}
	base := strings.Join(parts, "_")
	key := base
	for n := 2; ; n++ {
		if _, taken := existing[key]; !taken {
			return key
		}
		key = fmt.Sprintf("%s_%d", base, n)
	}
}
