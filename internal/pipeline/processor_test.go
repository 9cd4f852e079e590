package pipeline

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/common"
	"github.com/paradize/restodocs/internal/entity"
	"github.com/paradize/restodocs/internal/extract"
	"github.com/paradize/restodocs/internal/grouping"
	"github.com/paradize/restodocs/internal/quality"
	"github.com/paradize/restodocs/internal/resolve"
	"github.com/paradize/restodocs/internal/validate"
)

// sharpPNG renders a checkerboard that sails through the quality gate.
// Distinct sizes give each photo a distinct encoded length, which the fake
// extractor uses to tell photos apart.
func sharpPNG(t *testing.T, side int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			c := uint8(40)
			if (x/4+y/4)%2 == 0 {
				c = 230
			}
			img.SetGray(x, y, color.Gray{Y: c})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 20, 20))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// fakeExtractor maps encoded photo length to a scripted response.
type fakeExtractor struct {
	mu        sync.Mutex
	responses map[int]entity.RawExtraction
	failLens  map[int]bool
	calls     int
}

func (f *fakeExtractor) Recognize(_ context.Context, img []byte, _ extract.DocTypeHint) (entity.RawExtraction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failLens[len(img)] {
		return entity.RawExtraction{}, &extract.RecognitionError{Reason: "empty model response", Retryable: true}
	}
	raw, ok := f.responses[len(img)]
	if !ok {
		return entity.RawExtraction{}, &extract.RecognitionError{Reason: "unscripted photo"}
	}
	return raw, nil
}

func (f *fakeExtractor) RecognizeMulti(_ context.Context, _ [][]byte) (entity.RawExtraction, error) {
	return entity.RawExtraction{}, &extract.RecognitionError{Reason: "not scripted"}
}

type memDocs struct {
	mu   sync.Mutex
	docs []*entity.MergedDocument
}

func (m *memDocs) SaveDocument(_ context.Context, doc *entity.MergedDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, doc)
	return nil
}

type nullMappings struct{}

func (nullMappings) Get(context.Context, string, constants.CatalogType) (*entity.MappingEntry, error) {
	return nil, nil
}
func (nullMappings) List(context.Context, constants.CatalogType) ([]*entity.MappingEntry, error) {
	return nil, nil
}
func (nullMappings) Upsert(context.Context, *entity.MappingEntry) error         { return nil }
func (nullMappings) Touch(context.Context, string, constants.CatalogType) error { return nil }

type fakeCatalog struct {
	products  []resolve.CatalogEntry
	suppliers []resolve.CatalogEntry
}

func (c *fakeCatalog) SearchProducts(context.Context, string) ([]resolve.CatalogEntry, error) {
	return c.products, nil
}
func (c *fakeCatalog) SearchSuppliers(context.Context, string, string) ([]resolve.CatalogEntry, error) {
	return c.suppliers, nil
}
func (c *fakeCatalog) GetProduct(_ context.Context, id uuid.UUID) (*resolve.CatalogEntry, error) {
	for i := range c.products {
		if c.products[i].ID == id {
			return &c.products[i], nil
		}
	}
	return nil, nil
}

type memLedger struct {
	mu      sync.Mutex
	appends int
}

func (l *memLedger) Append(context.Context, uuid.UUID, []entity.EscalationItem) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.appends++
	return nil
}
func (l *memLedger) ReadResolutions(context.Context, uuid.UUID) ([]entity.Resolution, error) {
	return nil, nil
}

func newTestProcessor(ex extract.Extractor, catalog *fakeCatalog, docs *memDocs) *Processor {
	gate := quality.NewGate(common.QualityConfig{})
	validator := validate.New(validate.Config{})
	grouper := grouping.NewGrouper(nil)
	resolver := resolve.NewResolver(resolve.Config{}, nullMappings{}, catalog, &memLedger{}, nil)
	return NewProcessor(gate, ex, validator, grouper, resolver, docs, nil)
}

func rawPage(groupKey string, page, total int, items ...entity.RawLineItem) entity.RawExtraction {
	return entity.RawExtraction{
		DocType:      "upd",
		DocNumber:    "482",
		Date:         "15.03.2025",
		Supplier:     entity.RawParty{Name: "ООО Ромашка", INN: "7707083893"},
		Items:        items,
		GroupKey:     entity.FlexString(groupKey),
		PageNumber:   page,
		TotalPages:   total,
		QualityCheck: entity.RawQuality{ConfidenceScore: 92},
	}
}

func milk() entity.RawLineItem {
	return entity.RawLineItem{Name: "Молоко 3.2%", Qty: "10", Price: "100", Sum: "1200.00", VATRate: "20%"}
}

func TestProcessBatchOneResultPerPhoto(t *testing.T) {
	good := sharpPNG(t, 600)
	failing := sharpPNG(t, 640)
	rejected := tinyPNG(t)

	catalog := &fakeCatalog{
		products:  []resolve.CatalogEntry{{ID: uuid.New(), Name: "Молоко 3.2%", Destination: "кухня"}},
		suppliers: []resolve.CatalogEntry{{ID: uuid.New(), Name: "ООО Ромашка", INN: "7707083893"}},
	}
	ex := &fakeExtractor{
		responses: map[int]entity.RawExtraction{
			len(good): rawPage("7707083893_482_15.03.2025", 1, 1, milk()),
		},
		failLens: map[int]bool{len(failing): true},
	}
	docs := &memDocs{}
	p := newTestProcessor(ex, catalog, docs)

	res, err := p.ProcessBatch(context.Background(), [][]byte{good, rejected, failing})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Results) != 3 {
		t.Fatalf("results = %d, want one per photo", len(res.Results))
	}
	if res.Results[0].Outcome != entity.OCROK {
		t.Fatalf("photo 0 = %s (%v)", res.Results[0].Outcome, res.Results[0].Issues)
	}
	if res.Results[1].Outcome != entity.OCRRejected {
		t.Fatalf("photo 1 = %s", res.Results[1].Outcome)
	}
	if res.Results[2].Outcome != entity.OCRError {
		t.Fatalf("photo 2 = %s", res.Results[2].Outcome)
	}

	if len(res.Documents) != 1 {
		t.Fatalf("documents = %d", len(res.Documents))
	}
	doc := res.Documents[0]
	if doc.Status != constants.StatusMapped {
		t.Fatalf("status = %s", doc.Status)
	}
	if len(docs.docs) != 1 {
		t.Fatalf("persisted documents = %d", len(docs.docs))
	}
}

func TestProcessBatchMergesMultiPageGroup(t *testing.T) {
	p1 := sharpPNG(t, 600)
	p2 := sharpPNG(t, 640)
	key := "7707083893_482_15.03.2025"

	catalog := &fakeCatalog{
		products:  []resolve.CatalogEntry{{ID: uuid.New(), Name: "Молоко 3.2%", Destination: "кухня"}},
		suppliers: []resolve.CatalogEntry{{ID: uuid.New(), Name: "ООО Ромашка", INN: "7707083893"}},
	}
	ex := &fakeExtractor{responses: map[int]entity.RawExtraction{
		len(p1): rawPage(key, 1, 2, milk()),
		len(p2): rawPage(key, 2, 2, milk()),
	}}
	docs := &memDocs{}
	p := newTestProcessor(ex, catalog, docs)

	res, err := p.ProcessBatch(context.Background(), [][]byte{p2, p1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Documents) != 1 {
		t.Fatalf("documents = %d, want one merged", len(res.Documents))
	}
	doc := res.Documents[0]
	if doc.PageCount != 2 || !doc.IsMerged {
		t.Fatalf("doc = pages %d merged %v", doc.PageCount, doc.IsMerged)
	}
	if len(doc.Items) != 2 {
		t.Fatalf("items = %d", len(doc.Items))
	}
}

func TestProcessBatchShortGroupMarksPhotosIncomplete(t *testing.T) {
	good := sharpPNG(t, 600)
	key := "7707083893_482_15.03.2025"

	catalog := &fakeCatalog{
		products:  []resolve.CatalogEntry{{ID: uuid.New(), Name: "Молоко 3.2%", Destination: "кухня"}},
		suppliers: []resolve.CatalogEntry{{ID: uuid.New(), Name: "ООО Ромашка", INN: "7707083893"}},
	}
	// page 1 of a declared 2-page document; page 2 never arrives
	ex := &fakeExtractor{responses: map[int]entity.RawExtraction{
		len(good): rawPage(key, 1, 2, milk()),
	}}
	docs := &memDocs{}
	p := newTestProcessor(ex, catalog, docs)

	res, err := p.ProcessBatch(context.Background(), [][]byte{good})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Results[0].Outcome != entity.OCRIncomplete {
		t.Fatalf("outcome = %s, want incomplete", res.Results[0].Outcome)
	}
	if len(res.Results[0].Issues) == 0 {
		t.Fatal("missing-page issue not reported")
	}
	if res.Results[0].Extraction == nil {
		t.Fatal("extraction must survive the downgrade")
	}

	// the partial document is still assembled, flagged for review
	if len(res.Documents) != 1 {
		t.Fatalf("documents = %d, want the partial document persisted", len(res.Documents))
	}
	if !res.Documents[0].NeedsReview {
		t.Fatal("partial document must need review")
	}
	if len(docs.docs) != 1 {
		t.Fatalf("persisted documents = %d", len(docs.docs))
	}
}

func TestProcessBatchEscalationHoldsDocument(t *testing.T) {
	good := sharpPNG(t, 600)

	// catalog knows the supplier but not the product
	catalog := &fakeCatalog{
		suppliers: []resolve.CatalogEntry{{ID: uuid.New(), Name: "ООО Ромашка", INN: "7707083893"}},
	}
	ex := &fakeExtractor{responses: map[int]entity.RawExtraction{
		len(good): rawPage("7707083893_482_15.03.2025", 1, 1, milk()),
	}}
	docs := &memDocs{}
	p := newTestProcessor(ex, catalog, docs)

	res, err := p.ProcessBatch(context.Background(), [][]byte{good})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Documents) != 1 {
		t.Fatalf("documents = %d", len(res.Documents))
	}
	if res.Documents[0].Status != constants.StatusPendingMapping {
		t.Fatalf("status = %s, want PENDING_MAPPING", res.Documents[0].Status)
	}
}

func TestProcessBatchAllRejectedYieldsNoDocuments(t *testing.T) {
	docs := &memDocs{}
	p := newTestProcessor(&fakeExtractor{}, &fakeCatalog{}, docs)

	res, err := p.ProcessBatch(context.Background(), [][]byte{tinyPNG(t), []byte("not an image")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Results) != 2 || len(res.Documents) != 0 {
		t.Fatalf("results = %d, documents = %d", len(res.Results), len(res.Documents))
	}
	for _, r := range res.Results {
		if r.Outcome != entity.OCRRejected {
			t.Fatalf("outcome = %s", r.Outcome)
		}
	}
}
