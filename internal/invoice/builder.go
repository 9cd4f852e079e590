// Package invoice turns a resolved document into submission-ready records,
// one per destination type. The builder never fails on partial data: items
// and fields it cannot place degrade to warnings, and the caller decides
// whether the result is clean enough for automatic submission.
package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
	"github.com/paradize/restodocs/internal/resolve"
)

// Store is one receiving unit of the requesting department.
type Store struct {
	ID   uuid.UUID
	Name string
}

// StoreDirectory maps destination types to their receiving stores.
type StoreDirectory interface {
	ListStores(ctx context.Context) (map[string]Store, error)
}

// BuildResult carries the emitted records plus everything that did not make
// it in. Dropped lists the raw names of unresolved items left out of every
// record; the partition union plus Dropped always equals the input items.
type BuildResult struct {
	Records  []*entity.SubmissionRecord
	Dropped  []string
	Warnings []string
}

type Builder struct {
	Logger   *slog.Logger
	Resolver *resolve.Resolver
	Catalog  resolve.CatalogLookup
	// DefaultDestination receives resolved items whose catalog record
	// carries no receiving-unit class. Empty means such items are dropped.
	DefaultDestination string
}

func NewBuilder(resolver *resolve.Resolver, catalog resolve.CatalogLookup, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{Logger: logger, Resolver: resolver, Catalog: catalog}
}

var dateLayouts = []string{"02.01.2006", "2006-01-02", "02.01.06", "02/01/2006"}

// Build partitions the document's line items by destination type and emits
// one record per non-empty partition, keyed to the stores in destinations.
func (b *Builder) Build(ctx context.Context, doc *entity.MergedDocument, destinations map[string]Store) (*BuildResult, error) {
	res := &BuildResult{}

	parts := make(map[string][]entity.LineItem)
	for _, item := range doc.Items {
		if item.ProductID == nil {
			res.Dropped = append(res.Dropped, item.Name)
			res.Warnings = append(res.Warnings, fmt.Sprintf("позиция %q не сопоставлена с каталогом и не включена в накладную", item.Name))
			continue
		}
		dest := b.destinationFor(ctx, &item)
		if dest == "" {
			dest = b.DefaultDestination
		}
		if dest == "" {
			res.Dropped = append(res.Dropped, item.Name)
			res.Warnings = append(res.Warnings, fmt.Sprintf("позиция %q без типа подразделения и не включена в накладную", item.Name))
			continue
		}
		parts[dest] = append(parts[dest], item)
	}

	if len(parts) == 0 {
		res.Warnings = append(res.Warnings, "накладная не сформирована: ни одна позиция не сопоставлена с каталогом")
		b.Logger.Warn("invoice.build.empty", "document_id", doc.ID, "dropped", len(res.Dropped))
		return res, nil
	}

	supplierID, supplierName, supWarnings := b.resolveSupplier(ctx, doc)
	res.Warnings = append(res.Warnings, supWarnings...)

	docDate, dateWarn := parseDocDate(doc.DocDate)
	if dateWarn != "" {
		res.Warnings = append(res.Warnings, dateWarn)
	}

	dests := make([]string, 0, len(parts))
	for d := range parts {
		dests = append(dests, d)
	}
	sort.Strings(dests)

	split := len(dests) > 1
	for _, dest := range dests {
		items := parts[dest]
		store, known := destinations[dest]
		recWarnings := make([]string, 0, len(res.Warnings)+1)
		recWarnings = append(recWarnings, res.Warnings...)
		if !known {
			recWarnings = append(recWarnings, fmt.Sprintf("подразделение %q не настроено, склад не определён", dest))
		}

		total := decimal.Zero
		for i := range items {
			b.fillUnit(ctx, &items[i])
			if items[i].Sum != nil {
				total = total.Add(*items[i].Sum)
			}
		}

		rec := &entity.SubmissionRecord{
			ID:              uuid.New(),
			DocumentID:      doc.ID,
			DocNumber:       docNumber(doc.DocNumber, dest, split),
			DestinationType: dest,
			StoreName:       store.Name,
			SupplierName:    supplierName,
			DocDate:         docDate,
			Items:           items,
			TotalAmount:     total.Round(2),
			Status:          constants.StatusMapped,
			Warnings:        recWarnings,
			CreatedAt:       time.Now(),
		}
		if known {
			id := store.ID
			rec.StoreID = &id
		}
		if supplierID != nil {
			id := *supplierID
			rec.SupplierID = &id
		}
		res.Records = append(res.Records, rec)
	}

	b.Logger.Info("invoice.build.done",
		"document_id", doc.ID,
		"records", len(res.Records),
		"dropped", len(res.Dropped))
	return res, nil
}

// destinationFor prefers the destination already stamped on the item and
// falls back to the catalog record it resolved to.
func (b *Builder) destinationFor(ctx context.Context, item *entity.LineItem) string {
	if item.DestinationType != nil && *item.DestinationType != "" {
		return *item.DestinationType
	}
	id, err := uuid.Parse(*item.ProductID)
	if err != nil {
		return ""
	}
	c, err := b.Catalog.GetProduct(ctx, id)
	if err != nil || c == nil {
		return ""
	}
	if c.Destination != "" {
		dest := c.Destination
		item.DestinationType = &dest
	}
	return c.Destination
}

func (b *Builder) fillUnit(ctx context.Context, item *entity.LineItem) {
	if item.Unit != nil && *item.Unit != "" {
		return
	}
	id, err := uuid.Parse(*item.ProductID)
	if err != nil {
		return
	}
	c, err := b.Catalog.GetProduct(ctx, id)
	if err != nil || c == nil || c.Unit == "" {
		return
	}
	unit := c.Unit
	item.Unit = &unit
}

// resolveSupplier tries the document's own resolution first, then the
// learned-mapping / catalog tiers via the resolver. Each fallback step is a
// visible warning so reviewers can see how the supplier was determined.
func (b *Builder) resolveSupplier(ctx context.Context, doc *entity.MergedDocument) (*uuid.UUID, string, []string) {
	var warnings []string

	name, inn := "", ""
	if doc.Supplier.Name != nil {
		name = *doc.Supplier.Name
	}
	if doc.Supplier.INN != nil {
		inn = *doc.Supplier.INN
	}
	if name == "" && inn == "" {
		return nil, "", []string{"поставщик не распознан в документе"}
	}

	m, err := b.Resolver.ResolveSupplier(ctx, name, inn)
	if err != nil {
		b.Logger.Warn("invoice.supplier.error", "document_id", doc.ID, "error", err)
		return nil, name, []string{fmt.Sprintf("поиск поставщика %q завершился ошибкой, накладная без привязки", name)}
	}
	if m == nil {
		return nil, name, []string{fmt.Sprintf("поставщик %q не найден в справочнике", name)}
	}
	switch m.Tier {
	case "catalog":
		warnings = append(warnings, fmt.Sprintf("поставщик %q сопоставлен по справочнику как %q (%d%%)", name, m.Name, m.Confidence))
	case "mapping-fuzzy":
		warnings = append(warnings, fmt.Sprintf("поставщик %q сопоставлен по накопленным соответствиям как %q", name, m.Name))
	}
	id := m.CatalogID
	return &id, m.Name, warnings
}

func docNumber(base, dest string, split bool) string {
	if base == "" {
		base = "б/н"
	}
	if !split {
		return base
	}
	return base + "-" + dest
}

func parseDocDate(s string) (time.Time, string) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, ""
		}
	}
	today := time.Now().Truncate(24 * time.Hour)
	return today, fmt.Sprintf("дата документа %q не распознана, подставлена текущая", s)
}
