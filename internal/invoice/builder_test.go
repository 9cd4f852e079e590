package invoice

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
	"github.com/paradize/restodocs/internal/resolve"
)

type fakeCatalog struct {
	products  map[uuid.UUID]resolve.CatalogEntry
	suppliers []resolve.CatalogEntry
}

func (c *fakeCatalog) SearchProducts(context.Context, string) ([]resolve.CatalogEntry, error) {
	var out []resolve.CatalogEntry
	for _, p := range c.products {
		out = append(out, p)
	}
	return out, nil
}

func (c *fakeCatalog) SearchSuppliers(context.Context, string, string) ([]resolve.CatalogEntry, error) {
	return c.suppliers, nil
}

func (c *fakeCatalog) GetProduct(_ context.Context, id uuid.UUID) (*resolve.CatalogEntry, error) {
	if p, ok := c.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

type nullMappings struct{}

func (nullMappings) Get(context.Context, string, constants.CatalogType) (*entity.MappingEntry, error) {
	return nil, nil
}
func (nullMappings) List(context.Context, constants.CatalogType) ([]*entity.MappingEntry, error) {
	return nil, nil
}
func (nullMappings) Upsert(context.Context, *entity.MappingEntry) error { return nil }
func (nullMappings) Touch(context.Context, string, constants.CatalogType) error {
	return nil
}

type nullLedger struct{}

func (nullLedger) Append(context.Context, uuid.UUID, []entity.EscalationItem) error { return nil }
func (nullLedger) ReadResolutions(context.Context, uuid.UUID) ([]entity.Resolution, error) {
	return nil, nil
}

func newTestBuilder(catalog *fakeCatalog) *Builder {
	r := resolve.NewResolver(resolve.Config{}, nullMappings{}, catalog, nullLedger{}, nil)
	return NewBuilder(r, catalog, nil)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strp(s string) *string { return &s }

func resolvedItem(name, dest, sum string, products map[uuid.UUID]resolve.CatalogEntry) entity.LineItem {
	id := uuid.New()
	products[id] = resolve.CatalogEntry{ID: id, Name: name, Unit: "шт", Destination: dest}
	pid := id.String()
	return entity.LineItem{Name: name, ProductID: &pid, ProductName: &name, DestinationType: &dest, Sum: dec(sum)}
}

func TestBuildSplitsByDestination(t *testing.T) {
	supplierID := uuid.New()
	catalog := &fakeCatalog{
		products:  map[uuid.UUID]resolve.CatalogEntry{},
		suppliers: []resolve.CatalogEntry{{ID: supplierID, Name: "ООО Ромашка", INN: "7707083893"}},
	}
	doc := &entity.MergedDocument{
		ID:        uuid.New(),
		DocNumber: "УТ-482",
		DocDate:   "15.03.2025",
		Supplier:  entity.Party{Name: strp("ООО Ромашка"), INN: strp("7707083893")},
		Items: []entity.LineItem{
			resolvedItem("Молоко 3.2%", "кухня", "120.00", catalog.products),
			resolvedItem("Сироп гренадин", "бар", "310.50", catalog.products),
			resolvedItem("Мука пшеничная", "кухня", "89.90", catalog.products),
		},
	}
	kitchen, bar := uuid.New(), uuid.New()

	res, err := newTestBuilder(catalog).Build(context.Background(), doc, map[string]Store{
		"кухня": {ID: kitchen, Name: "Склад кухни"},
		"бар":   {ID: bar, Name: "Склад бара"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(res.Records))
	}

	byDest := map[string]*entity.SubmissionRecord{}
	for _, rec := range res.Records {
		byDest[rec.DestinationType] = rec
	}
	k, b := byDest["кухня"], byDest["бар"]
	if k == nil || b == nil {
		t.Fatalf("destinations = %v", byDest)
	}
	if k.DocNumber != "УТ-482-кухня" || b.DocNumber != "УТ-482-бар" {
		t.Fatalf("doc numbers = %q, %q", k.DocNumber, b.DocNumber)
	}
	if len(k.Items) != 2 || len(b.Items) != 1 {
		t.Fatalf("item split = %d/%d", len(k.Items), len(b.Items))
	}
	if !k.TotalAmount.Equal(decimal.RequireFromString("209.90")) {
		t.Fatalf("kitchen total = %s", k.TotalAmount)
	}
	if k.StoreID == nil || *k.StoreID != kitchen || k.StoreName != "Склад кухни" {
		t.Fatalf("kitchen store = %v %q", k.StoreID, k.StoreName)
	}
	if k.SupplierID == nil || *k.SupplierID != supplierID {
		t.Fatalf("supplier = %v", k.SupplierID)
	}
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if !k.DocDate.Equal(want) {
		t.Fatalf("date = %s", k.DocDate)
	}
	if k.Status != constants.StatusMapped {
		t.Fatalf("status = %s", k.Status)
	}
}

func TestBuildSingleDestinationKeepsBaseNumber(t *testing.T) {
	catalog := &fakeCatalog{products: map[uuid.UUID]resolve.CatalogEntry{}}
	doc := &entity.MergedDocument{
		ID:        uuid.New(),
		DocNumber: "УТ-9",
		DocDate:   "01.02.2025",
		Items: []entity.LineItem{
			resolvedItem("Молоко 3.2%", "кухня", "120.00", catalog.products),
		},
	}
	res, err := newTestBuilder(catalog).Build(context.Background(), doc, map[string]Store{
		"кухня": {ID: uuid.New(), Name: "Склад кухни"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Records) != 1 || res.Records[0].DocNumber != "УТ-9" {
		t.Fatalf("records = %+v", res.Records)
	}
}

func TestBuildDropsUnresolvedWithWarning(t *testing.T) {
	catalog := &fakeCatalog{products: map[uuid.UUID]resolve.CatalogEntry{}}
	doc := &entity.MergedDocument{
		ID:      uuid.New(),
		DocDate: "01.02.2025",
		Items: []entity.LineItem{
			resolvedItem("Молоко 3.2%", "кухня", "120.00", catalog.products),
			{Name: "Загадочный ингредиент", Sum: dec("55.00")},
		},
	}
	res, err := newTestBuilder(catalog).Build(context.Background(), doc, map[string]Store{
		"кухня": {ID: uuid.New(), Name: "Склад кухни"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("records = %d", len(res.Records))
	}
	// no item vanishes unaccounted: emitted + dropped == input
	if got := len(res.Records[0].Items) + len(res.Dropped); got != len(doc.Items) {
		t.Fatalf("accounted items = %d, want %d", got, len(doc.Items))
	}
	if len(res.Dropped) != 1 || res.Dropped[0] != "Загадочный ингредиент" {
		t.Fatalf("dropped = %v", res.Dropped)
	}
	if !hasWarning(res.Warnings, "не сопоставлена") {
		t.Fatalf("warnings = %v", res.Warnings)
	}
	// the dropped sum stays out of the record total
	if !res.Records[0].TotalAmount.Equal(decimal.RequireFromString("120.00")) {
		t.Fatalf("total = %s", res.Records[0].TotalAmount)
	}
}

func TestBuildAllUnresolvedSkipsDocument(t *testing.T) {
	catalog := &fakeCatalog{products: map[uuid.UUID]resolve.CatalogEntry{}}
	doc := &entity.MergedDocument{
		ID:    uuid.New(),
		Items: []entity.LineItem{{Name: "Загадочный ингредиент"}},
	}
	res, err := newTestBuilder(catalog).Build(context.Background(), doc, map[string]Store{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Records) != 0 {
		t.Fatalf("records = %d, want 0", len(res.Records))
	}
	if !hasWarning(res.Warnings, "не сформирована") {
		t.Fatalf("warnings = %v", res.Warnings)
	}
}

func TestBuildUnparsableDateFallsBackToToday(t *testing.T) {
	catalog := &fakeCatalog{products: map[uuid.UUID]resolve.CatalogEntry{}}
	doc := &entity.MergedDocument{
		ID:      uuid.New(),
		DocDate: "марта 15",
		Items: []entity.LineItem{
			resolvedItem("Молоко 3.2%", "кухня", "120.00", catalog.products),
		},
	}
	res, err := newTestBuilder(catalog).Build(context.Background(), doc, map[string]Store{
		"кухня": {ID: uuid.New(), Name: "Склад кухни"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := res.Records[0]
	if time.Since(rec.DocDate) > 48*time.Hour || rec.DocDate.After(time.Now()) {
		t.Fatalf("fallback date = %s", rec.DocDate)
	}
	if !hasWarning(rec.Warnings, "не распознана") {
		t.Fatalf("warnings = %v", rec.Warnings)
	}
}

func TestBuildFillsUnitAndDestinationFromCatalog(t *testing.T) {
	catalog := &fakeCatalog{products: map[uuid.UUID]resolve.CatalogEntry{}}
	id := uuid.New()
	catalog.products[id] = resolve.CatalogEntry{ID: id, Name: "Мука пшеничная", Unit: "кг", Destination: "кухня"}
	pid := id.String()
	doc := &entity.MergedDocument{
		ID:      uuid.New(),
		DocDate: "01.02.2025",
		Items: []entity.LineItem{
			// resolved earlier but destination and unit never stamped
			{Name: "Мука пшеничная", ProductID: &pid, Sum: dec("89.90")},
		},
	}
	res, err := newTestBuilder(catalog).Build(context.Background(), doc, map[string]Store{
		"кухня": {ID: uuid.New(), Name: "Склад кухни"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Records) != 1 || res.Records[0].DestinationType != "кухня" {
		t.Fatalf("records = %+v", res.Records)
	}
	item := res.Records[0].Items[0]
	if item.Unit == nil || *item.Unit != "кг" {
		t.Fatalf("unit = %v", item.Unit)
	}
}

func TestBuildUnknownStoreWarns(t *testing.T) {
	catalog := &fakeCatalog{products: map[uuid.UUID]resolve.CatalogEntry{}}
	doc := &entity.MergedDocument{
		ID:      uuid.New(),
		DocDate: "01.02.2025",
		Items: []entity.LineItem{
			resolvedItem("Сироп гренадин", "бар", "310.50", catalog.products),
		},
	}
	res, err := newTestBuilder(catalog).Build(context.Background(), doc, map[string]Store{
		"кухня": {ID: uuid.New(), Name: "Склад кухни"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := res.Records[0]
	if rec.StoreID != nil {
		t.Fatalf("store id = %v, want nil", rec.StoreID)
	}
	if !hasWarning(rec.Warnings, "не настроено") {
		t.Fatalf("warnings = %v", rec.Warnings)
	}
}

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}
