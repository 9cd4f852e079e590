package resolve

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
)

// --- fakes ---

type memMappings struct {
	entries map[string]*entity.MappingEntry // key: type + "/" + raw_name
}

func newMemMappings() *memMappings {
	return &memMappings{entries: make(map[string]*entity.MappingEntry)}
}

func (m *memMappings) key(raw string, ct constants.CatalogType) string {
	return string(ct) + "/" + raw
}

func (m *memMappings) Get(_ context.Context, raw string, ct constants.CatalogType) (*entity.MappingEntry, error) {
	return m.entries[m.key(raw, ct)], nil
}

func (m *memMappings) List(_ context.Context, ct constants.CatalogType) ([]*entity.MappingEntry, error) {
	var out []*entity.MappingEntry
	for _, e := range m.entries {
		if e.CatalogType == ct {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memMappings) Upsert(_ context.Context, e *entity.MappingEntry) error {
	m.entries[m.key(e.RawName, e.CatalogType)] = e
	return nil
}

func (m *memMappings) Touch(_ context.Context, raw string, ct constants.CatalogType) error {
	if e := m.entries[m.key(raw, ct)]; e != nil {
		e.UseCount++
	}
	return nil
}

type memCatalog struct {
	products        []CatalogEntry
	suppliers       []CatalogEntry
	productSearches int
}

func (c *memCatalog) SearchProducts(context.Context, string) ([]CatalogEntry, error) {
	c.productSearches++
	return c.products, nil
}

func (c *memCatalog) SearchSuppliers(context.Context, string, string) ([]CatalogEntry, error) {
	return c.suppliers, nil
}

func (c *memCatalog) GetProduct(_ context.Context, id uuid.UUID) (*CatalogEntry, error) {
	for i := range c.products {
		if c.products[i].ID == id {
			return &c.products[i], nil
		}
	}
	return nil, nil
}

type memLedger struct {
	appends [][]entity.EscalationItem
}

func (l *memLedger) Append(_ context.Context, _ uuid.UUID, items []entity.EscalationItem) error {
	l.appends = append(l.appends, items)
	return nil
}

func (l *memLedger) ReadResolutions(context.Context, uuid.UUID) ([]entity.Resolution, error) {
	return nil, nil
}

func newResolver(m *memMappings, c *memCatalog, l *memLedger) *Resolver {
	return NewResolver(Config{}, m, c, l, nil)
}

// --- tests ---

func TestLearnedMappingSkipsCatalog(t *testing.T) {
	want := uuid.New()
	mappings := newMemMappings()
	_ = mappings.Upsert(context.Background(), &entity.MappingEntry{
		RawName:       "молоко",
		CorrectedName: "Молоко 3.2%",
		CatalogID:     want,
		CatalogType:   constants.CatalogProduct,
	})
	catalog := &memCatalog{}
	r := newResolver(mappings, catalog, &memLedger{})

	m, err := r.ResolveProduct(context.Background(), "Молоко")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil || m.CatalogID != want {
		t.Fatalf("match = %+v, want catalog id %s", m, want)
	}
	if catalog.productSearches != 0 {
		t.Fatalf("catalog searched %d times; learned tier must short-circuit", catalog.productSearches)
	}
	if m.Tier != "mapping-exact" {
		t.Fatalf("tier = %s", m.Tier)
	}
}

func TestFuzzyLearnedMappingIgnoresWordOrder(t *testing.T) {
	want := uuid.New()
	mappings := newMemMappings()
	_ = mappings.Upsert(context.Background(), &entity.MappingEntry{
		RawName:       "простоквашино молоко 3,2%",
		CorrectedName: "Молоко Простоквашино 3,2%",
		CatalogID:     want,
		CatalogType:   constants.CatalogProduct,
	})
	catalog := &memCatalog{}
	r := newResolver(mappings, catalog, &memLedger{})

	m, err := r.ResolveProduct(context.Background(), "Молоко Простоквашино 3,2%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil || m.CatalogID != want {
		t.Fatalf("match = %+v", m)
	}
	if m.Tier != "mapping-fuzzy" {
		t.Fatalf("tier = %s", m.Tier)
	}
	if catalog.productSearches != 0 {
		t.Fatal("catalog must not be consulted on a tier-1 hit")
	}
}

func TestCatalogHitIsLearned(t *testing.T) {
	id := uuid.New()
	catalog := &memCatalog{products: []CatalogEntry{
		{ID: id, Name: "Сыр Гауда 45%", Unit: "кг", Destination: "кухня"},
		{ID: uuid.New(), Name: "Хлеб Бородинский"},
	}}
	mappings := newMemMappings()
	r := newResolver(mappings, catalog, &memLedger{})

	m1, err := r.ResolveProduct(context.Background(), "сыр гауда 45%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m1 == nil || m1.CatalogID != id || m1.Tier != "catalog" {
		t.Fatalf("first resolution = %+v", m1)
	}

	// the feedback loop: the second call must hit the learned tier
	m2, err := r.ResolveProduct(context.Background(), "сыр гауда 45%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m2 == nil || m2.CatalogID != m1.CatalogID {
		t.Fatalf("resolution not idempotent: %+v vs %+v", m1, m2)
	}
	if m2.Tier != "mapping-exact" {
		t.Fatalf("second call tier = %s, want mapping-exact", m2.Tier)
	}
	if catalog.productSearches != 1 {
		t.Fatalf("catalog searched %d times, want 1", catalog.productSearches)
	}

	entry, _ := mappings.Get(context.Background(), "сыр гауда 45%", constants.CatalogProduct)
	if entry == nil || entry.Source != constants.MappingSourceAuto {
		t.Fatalf("learned entry = %+v", entry)
	}
}

func TestUnrelatedNameMisses(t *testing.T) {
	catalog := &memCatalog{products: []CatalogEntry{
		{ID: uuid.New(), Name: "Сыр Гауда 45%"},
	}}
	r := newResolver(newMemMappings(), catalog, &memLedger{})

	m, err := r.ResolveProduct(context.Background(), "Салфетки бумажные белые")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Fatalf("expected a miss, got %+v", m)
	}
}

func TestSupplierINNShortCircuit(t *testing.T) {
	id := uuid.New()
	catalog := &memCatalog{suppliers: []CatalogEntry{
		{ID: id, Name: `ООО "Торговый Дом Ромашка"`, INN: "7707083893"},
	}}
	r := newResolver(newMemMappings(), catalog, &memLedger{})

	// OCR mangled the name beyond recognition; the INN carries the match
	m, err := r.ResolveSupplier(context.Background(), "ООО ТД Рмшк", "7707083893")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil || m.CatalogID != id {
		t.Fatalf("match = %+v", m)
	}
	if m.Tier != "inn" || m.Confidence != 100 {
		t.Fatalf("tier = %s, confidence = %d", m.Tier, m.Confidence)
	}
}

func TestResolveDocumentEscalatesWithFullContext(t *testing.T) {
	knownID := uuid.New()
	catalog := &memCatalog{
		products:  []CatalogEntry{{ID: knownID, Name: "Молоко 3.2%", Destination: "кухня"}},
		suppliers: []CatalogEntry{{ID: uuid.New(), Name: "ООО Ромашка", INN: "7707083893"}},
	}
	ledger := &memLedger{}
	r := newResolver(newMemMappings(), catalog, ledger)

	doc := &entity.MergedDocument{
		ID:       uuid.New(),
		Supplier: entity.Party{Name: strp("ООО Ромашка"), INN: strp("7707083893")},
		Items: []entity.LineItem{
			{Name: "Молоко 3.2%"},
			{Name: "Загадочный ингредиент"},
		},
	}

	res, err := r.ResolveDocument(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Unresolved != 1 {
		t.Fatalf("unresolved = %d, want 1", res.Unresolved)
	}
	if res.Supplier == nil {
		t.Fatal("supplier should resolve via INN")
	}
	if doc.Items[0].ProductID == nil {
		t.Fatal("resolved item must carry its catalog id")
	}
	if doc.Items[0].DestinationType == nil || *doc.Items[0].DestinationType != "кухня" {
		t.Fatalf("destination = %v", doc.Items[0].DestinationType)
	}
	if doc.Items[1].ProductID != nil {
		t.Fatal("unresolved item must stay empty")
	}

	// the ledger gets every item, resolved ones included, for context
	if len(ledger.appends) != 1 {
		t.Fatalf("ledger appends = %d", len(ledger.appends))
	}
	rows := ledger.appends[0]
	if len(rows) != 2 {
		t.Fatalf("ledger rows = %d, want 2", len(rows))
	}
	if !rows[0].Resolved || rows[1].Resolved {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestApplyResolutionsFillsAndLearns(t *testing.T) {
	mappings := newMemMappings()
	catalog := &memCatalog{}
	r := newResolver(mappings, catalog, &memLedger{})

	resolvedID := uuid.New()
	doc := &entity.MergedDocument{
		ID:    uuid.New(),
		Items: []entity.LineItem{{Name: "Загадочный ингредиент"}},
	}

	open, err := r.ApplyResolutions(context.Background(), doc, []entity.Resolution{
		{RawName: "Загадочный ингредиент", ResolvedID: resolvedID, ResolvedName: "Ингредиент №1", CatalogType: constants.CatalogProduct},
	}, constants.MappingSourceManual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open != 0 {
		t.Fatalf("open = %d, want 0", open)
	}
	if doc.Items[0].ProductID == nil || *doc.Items[0].ProductID != resolvedID.String() {
		t.Fatalf("item = %+v", doc.Items[0])
	}

	// the manual answer is now a learned mapping for future documents
	m, err := r.ResolveProduct(context.Background(), "загадочный ингредиент")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil || m.CatalogID != resolvedID {
		t.Fatalf("match = %+v", m)
	}
	if m.Tier != "mapping-exact" {
		t.Fatalf("tier = %s", m.Tier)
	}
}

func TestApplyResolutionsKeepsCatalogTypesApart(t *testing.T) {
	// one raw name answered as both a product and a supplier in one call;
	// neither answer may overwrite the other
	mappings := newMemMappings()
	r := newResolver(mappings, &memCatalog{}, &memLedger{})

	productID, supplierID := uuid.New(), uuid.New()
	doc := &entity.MergedDocument{
		ID:    uuid.New(),
		Items: []entity.LineItem{{Name: "Ромашка"}},
	}

	open, err := r.ApplyResolutions(context.Background(), doc, []entity.Resolution{
		{RawName: "Ромашка", ResolvedID: productID, ResolvedName: "Чай Ромашка", CatalogType: constants.CatalogProduct},
		{RawName: "Ромашка", ResolvedID: supplierID, ResolvedName: "ООО Ромашка", CatalogType: constants.CatalogSupplier},
	}, constants.MappingSourceManual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open != 0 {
		t.Fatalf("open = %d, want 0", open)
	}
	if doc.Items[0].ProductID == nil || *doc.Items[0].ProductID != productID.String() {
		t.Fatalf("item filled with %v, want product id %s", doc.Items[0].ProductID, productID)
	}

	p, err := r.ResolveProduct(context.Background(), "ромашка")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || p.CatalogID != productID {
		t.Fatalf("product match = %+v, want %s", p, productID)
	}
	s, err := r.ResolveSupplier(context.Background(), "ромашка", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s == nil || s.CatalogID != supplierID {
		t.Fatalf("supplier match = %+v, want %s", s, supplierID)
	}
}

func strp(s string) *string { return &s }
