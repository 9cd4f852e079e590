package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/common"
	"github.com/paradize/restodocs/internal/entity"
	"github.com/paradize/restodocs/internal/normalize"
)

// Config holds the similarity acceptance thresholds (0..100).
type Config struct {
	MappingThreshold         int // tier 1 fuzzy, products and suppliers
	ProductCatalogThreshold  int
	SupplierCatalogThreshold int
}

// Match is a successful resolution with its provenance.
type Match struct {
	CatalogID  uuid.UUID
	Name       string
	Confidence int
	Tier       string // mapping-exact | mapping-fuzzy | catalog | inn
}

type Resolver struct {
	Logger   *slog.Logger
	Cfg      Config
	Mappings MappingStore
	Catalog  CatalogLookup
	Ledger   EscalationLedger
}

func NewResolver(cfg Config, mappings MappingStore, catalog CatalogLookup, ledger EscalationLedger, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MappingThreshold <= 0 {
		cfg.MappingThreshold = 85
	}
	if cfg.ProductCatalogThreshold <= 0 {
		cfg.ProductCatalogThreshold = 80
	}
	if cfg.SupplierCatalogThreshold <= 0 {
		cfg.SupplierCatalogThreshold = 85
	}
	return &Resolver{Logger: logger, Cfg: cfg, Mappings: mappings, Catalog: catalog, Ledger: ledger}
}

// ResolveProduct resolves one raw product name. A nil Match (with nil
// error) means both tiers missed and the name needs escalation.
func (r *Resolver) ResolveProduct(ctx context.Context, rawName string) (*Match, error) {
	key := normalize.NormalizeName(rawName)
	if key == "" {
		return nil, nil
	}

	// tier 1: learned mappings, exact then fuzzy
	if m, err := r.lookupLearned(ctx, key, constants.CatalogProduct, r.Cfg.MappingThreshold); err != nil {
		return nil, err
	} else if m != nil {
		return m, nil
	}

	// tier 2: live catalog, fuzzy; accepted matches are learned on the spot
	candidates, err := r.Catalog.SearchProducts(ctx, rawName)
	if err != nil {
		return nil, fmt.Errorf("catalog product search: %w", err)
	}
	best, score := bestCandidate(key, candidates)
	if best == nil || score < r.Cfg.ProductCatalogThreshold {
		r.Logger.Info("resolve.product.miss", "raw_name", rawName, "best_score", score)
		return nil, nil
	}

	if err := r.learn(ctx, key, *best, constants.CatalogProduct, score); err != nil {
		return nil, err
	}
	r.Logger.Info("resolve.catalog.hit", "raw_name", rawName, "matched", best.Name, "score", score)
	return &Match{CatalogID: best.ID, Name: best.Name, Confidence: score, Tier: "catalog"}, nil
}

// ResolveSupplier resolves a supplier by name and (preferably) INN. The
// INN short-circuits name similarity wherever it is available: identifier
// digits survive OCR far better than names do.
func (r *Resolver) ResolveSupplier(ctx context.Context, name, inn string) (*Match, error) {
	// a malformed identifier must not short-circuit name matching
	if inn != "" && common.INN("inn", inn) != nil {
		r.Logger.Warn("resolve.supplier.bad_inn", "name", name, "inn", inn)
		inn = ""
	}

	key := normalize.NormalizeName(name)
	if key == "" && inn == "" {
		return nil, nil
	}

	if key != "" {
		if m, err := r.lookupLearned(ctx, key, constants.CatalogSupplier, r.Cfg.MappingThreshold); err != nil {
			return nil, err
		} else if m != nil {
			return m, nil
		}
	}

	candidates, err := r.Catalog.SearchSuppliers(ctx, name, inn)
	if err != nil {
		return nil, fmt.Errorf("catalog supplier search: %w", err)
	}

	// INN equality beats any name score
	if inn != "" {
		for _, c := range candidates {
			if c.INN == inn {
				if key != "" {
					if err := r.learn(ctx, key, c, constants.CatalogSupplier, 100); err != nil {
						return nil, err
					}
				}
				r.Logger.Info("resolve.supplier.inn_hit", "inn", inn, "matched", c.Name)
				return &Match{CatalogID: c.ID, Name: c.Name, Confidence: 100, Tier: "inn"}, nil
			}
		}
	}

	best, score := bestCandidate(key, candidates)
	if best == nil || score < r.Cfg.SupplierCatalogThreshold {
		r.Logger.Info("resolve.supplier.miss", "name", name, "inn", inn, "best_score", score)
		return nil, nil
	}
	if err := r.learn(ctx, key, *best, constants.CatalogSupplier, score); err != nil {
		return nil, err
	}
	return &Match{CatalogID: best.ID, Name: best.Name, Confidence: score, Tier: "catalog"}, nil
}

// DocumentResolution is the outcome of resolving one merged document.
type DocumentResolution struct {
	Supplier   *Match
	Unresolved int // items that fell through both tiers
}

// ResolveDocument resolves every line item and the supplier in place.
// When anything stays unresolved, ALL items are written to the escalation
// ledger — the reviewer needs the whole document, not just the gaps.
// Collaborator failures abort this document only; its state is unchanged
// and the whole document is safe to retry.
func (r *Resolver) ResolveDocument(ctx context.Context, doc *entity.MergedDocument) (*DocumentResolution, error) {
	res := &DocumentResolution{}

	ledgerRows := make([]entity.EscalationItem, 0, len(doc.Items)+1)
	for i := range doc.Items {
		item := &doc.Items[i]
		m, err := r.ResolveProduct(ctx, item.Name)
		if err != nil {
			return nil, err
		}
		row := entity.EscalationItem{
			DocumentID:     doc.ID,
			RawName:        item.Name,
			NormalizedName: normalize.NormalizeName(item.Name),
			CatalogType:    constants.CatalogProduct,
		}
		if m != nil {
			id := m.CatalogID.String()
			item.ProductID = &id
			item.ProductName = &m.Name
			r.fillDestination(ctx, item, m.CatalogID)
			row.ResolvedID = &m.CatalogID
			row.ResolvedName = &m.Name
			row.Resolved = true
		} else {
			res.Unresolved++
		}
		ledgerRows = append(ledgerRows, row)
	}

	supName, supINN := "", ""
	if doc.Supplier.Name != nil {
		supName = *doc.Supplier.Name
	}
	if doc.Supplier.INN != nil {
		supINN = *doc.Supplier.INN
	}
	sup, err := r.ResolveSupplier(ctx, supName, supINN)
	if err != nil {
		return nil, err
	}
	res.Supplier = sup
	if sup == nil && supName != "" {
		res.Unresolved++
		ledgerRows = append(ledgerRows, entity.EscalationItem{
			DocumentID:     doc.ID,
			RawName:        supName,
			NormalizedName: normalize.NormalizeName(supName),
			CatalogType:    constants.CatalogSupplier,
		})
	}

	if res.Unresolved > 0 {
		if err := r.Ledger.Append(ctx, doc.ID, ledgerRows); err != nil {
			return nil, fmt.Errorf("escalation append: %w", err)
		}
		r.Logger.Info("resolve.document.escalated", "document_id", doc.ID, "unresolved", res.Unresolved)
	}
	return res, nil
}

// ApplyResolutions persists human-supplied answers as learned mappings and
// fills the matching line items. Returns how many items are still open.
// Answers are keyed by catalog type plus normalized name, so a product and
// a supplier sharing one raw name never collide.
func (r *Resolver) ApplyResolutions(ctx context.Context, doc *entity.MergedDocument, resolutions []entity.Resolution, source constants.MappingSource) (int, error) {
	byKey := make(map[string]entity.Resolution, len(resolutions))
	for _, res := range resolutions {
		if res.CatalogType == "" {
			res.CatalogType = constants.CatalogProduct
		}
		byKey[resolutionKey(res.CatalogType, normalize.NormalizeName(res.RawName))] = res
	}

	now := time.Now()
	for _, res := range byKey {
		entry := &entity.MappingEntry{
			RawName:       normalize.NormalizeName(res.RawName),
			CorrectedName: res.ResolvedName,
			CatalogID:     res.ResolvedID,
			CatalogType:   res.CatalogType,
			Confidence:    100,
			Source:        source,
			UseCount:      1,
			LastUsedAt:    now,
		}
		if err := r.Mappings.Upsert(ctx, entry); err != nil {
			return 0, fmt.Errorf("persist manual mapping: %w", err)
		}
	}

	open := 0
	for i := range doc.Items {
		item := &doc.Items[i]
		if item.ProductID != nil {
			continue
		}
		res, ok := byKey[resolutionKey(constants.CatalogProduct, normalize.NormalizeName(item.Name))]
		if !ok {
			open++
			continue
		}
		id := res.ResolvedID.String()
		item.ProductID = &id
		item.ProductName = &res.ResolvedName
		r.fillDestination(ctx, item, res.ResolvedID)
	}
	return open, nil
}

func resolutionKey(ct constants.CatalogType, normalizedName string) string {
	return string(ct) + "/" + normalizedName
}

func (r *Resolver) lookupLearned(ctx context.Context, key string, ct constants.CatalogType, threshold int) (*Match, error) {
	entry, err := r.Mappings.Get(ctx, key, ct)
	if err != nil {
		return nil, fmt.Errorf("mapping get: %w", err)
	}
	if entry != nil {
		if err := r.Mappings.Touch(ctx, entry.RawName, ct); err != nil {
			return nil, fmt.Errorf("mapping touch: %w", err)
		}
		return &Match{CatalogID: entry.CatalogID, Name: entry.CorrectedName, Confidence: 100, Tier: "mapping-exact"}, nil
	}

	entries, err := r.Mappings.List(ctx, ct)
	if err != nil {
		return nil, fmt.Errorf("mapping list: %w", err)
	}
	var best *entity.MappingEntry
	bestScore := 0
	for _, e := range entries {
		if score := TokenSortRatio(key, e.RawName); score > bestScore {
			best, bestScore = e, score
		}
	}
	if best == nil || bestScore < threshold {
		return nil, nil
	}
	if err := r.Mappings.Touch(ctx, best.RawName, ct); err != nil {
		return nil, fmt.Errorf("mapping touch: %w", err)
	}
	return &Match{CatalogID: best.CatalogID, Name: best.CorrectedName, Confidence: bestScore, Tier: "mapping-fuzzy"}, nil
}

func (r *Resolver) learn(ctx context.Context, key string, c CatalogEntry, ct constants.CatalogType, score int) error {
	entry := &entity.MappingEntry{
		RawName:       key,
		CorrectedName: c.Name,
		CatalogID:     c.ID,
		CatalogType:   ct,
		Confidence:    score,
		Source:        constants.MappingSourceAuto,
		UseCount:      1,
		LastUsedAt:    time.Now(),
	}
	if err := r.Mappings.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("learn mapping: %w", err)
	}
	return nil
}

// fillDestination completes unit and destination from the catalog record.
// Best-effort: a lookup failure leaves the fields empty rather than
// failing the resolution that already succeeded.
func (r *Resolver) fillDestination(ctx context.Context, item *entity.LineItem, id uuid.UUID) {
	c, err := r.Catalog.GetProduct(ctx, id)
	if err != nil || c == nil {
		return
	}
	if item.Unit == nil && c.Unit != "" {
		unit := c.Unit
		item.Unit = &unit
	}
	if c.Destination != "" {
		dest := c.Destination
		item.DestinationType = &dest
	}
}

func bestCandidate(key string, candidates []CatalogEntry) (*CatalogEntry, int) {
	var best *CatalogEntry
	bestScore := 0
	for i := range candidates {
		if score := TokenSortRatio(key, candidates[i].Name); score > bestScore {
			best, bestScore = &candidates[i], score
		}
	}
	return best, bestScore
}
