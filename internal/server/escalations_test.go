package server

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/paradize/restodocs/constants"
	docflowpb "github.com/paradize/restodocs/gen/proto/docflow/v1"
	"github.com/paradize/restodocs/internal/common"
	"github.com/paradize/restodocs/internal/entity"
	"github.com/paradize/restodocs/internal/normalize"
	"github.com/paradize/restodocs/internal/resolve"
)

// --- fakes ---

type memDocs struct {
	docs map[uuid.UUID]*entity.MergedDocument
}

func newMemDocs() *memDocs {
	return &memDocs{docs: make(map[uuid.UUID]*entity.MergedDocument)}
}

func (m *memDocs) SaveDocument(_ context.Context, doc *entity.MergedDocument) error {
	m.docs[doc.ID] = doc
	return nil
}

func (m *memDocs) GetDocument(_ context.Context, id uuid.UUID) (*entity.MergedDocument, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return doc, nil
}

func (m *memDocs) ListDocuments(_ context.Context, status *constants.DocStatus) ([]*entity.MergedDocument, error) {
	var out []*entity.MergedDocument
	for _, doc := range m.docs {
		if status == nil || doc.Status == *status {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *memDocs) AdvanceStatus(_ context.Context, id uuid.UUID, from, to constants.DocStatus) (bool, error) {
	doc, ok := m.docs[id]
	if !ok || doc.Status != from {
		return false, nil
	}
	doc.Status = to
	return true, nil
}

func (m *memDocs) UpdateItems(_ context.Context, id uuid.UUID, items []entity.LineItem) error {
	m.docs[id].Items = items
	return nil
}

type memLedgerRows struct {
	rows []*entity.EscalationItem
}

func (l *memLedgerRows) Append(_ context.Context, documentID uuid.UUID, items []entity.EscalationItem) error {
	for i := range items {
		row := items[i]
		row.DocumentID = documentID
		l.rows = append(l.rows, &row)
	}
	return nil
}

func (l *memLedgerRows) ReadResolutions(context.Context, uuid.UUID) ([]entity.Resolution, error) {
	return nil, nil
}

func (l *memLedgerRows) ListOpen(_ context.Context, documentID *uuid.UUID) ([]*entity.EscalationItem, error) {
	var out []*entity.EscalationItem
	for _, row := range l.rows {
		if row.Resolved {
			continue
		}
		if documentID != nil && row.DocumentID != *documentID {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (l *memLedgerRows) ResolveByName(_ context.Context, documentID uuid.UUID, normalizedName string, catalogType constants.CatalogType, resolvedID uuid.UUID, resolvedName string) error {
	found := false
	for _, row := range l.rows {
		if row.DocumentID != documentID || row.Resolved {
			continue
		}
		if row.NormalizedName != normalizedName || row.CatalogType != catalogType {
			continue
		}
		id := resolvedID
		name := resolvedName
		row.Resolved = true
		row.ResolvedID = &id
		row.ResolvedName = &name
		found = true
	}
	if !found {
		return common.ErrNotFound
	}
	return nil
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

type nullCatalog struct{}

func (nullCatalog) SearchProducts(context.Context, string) ([]resolve.CatalogEntry, error) {
	return nil, nil
}
func (nullCatalog) SearchSuppliers(context.Context, string, string) ([]resolve.CatalogEntry, error) {
	return nil, nil
}
func (nullCatalog) GetProduct(context.Context, uuid.UUID) (*resolve.CatalogEntry, error) {
	return nil, nil
}

func newLedgerService(docs *memDocs, ledger *memLedgerRows) *DocflowService {
	resolver := resolve.NewResolver(resolve.Config{}, nullMappings{}, nullCatalog{}, ledger, nil)
	return NewDocflowService(docs, ledger, nil, resolver, nil, nil, nil, nil, nil)
}

// --- tests ---

func TestResolveEscalationsWaitsForSupplierRow(t *testing.T) {
	// every line item is already resolved; only the supplier row is open.
	// The document must stay PENDING_MAPPING until that row is answered.
	docs := newMemDocs()
	ledger := &memLedgerRows{}
	svc := newLedgerService(docs, ledger)
	ctx := context.Background()

	productID := uuid.New().String()
	doc := &entity.MergedDocument{
		ID:     uuid.New(),
		Status: constants.StatusPendingMapping,
		Items: []entity.LineItem{
			{Name: "Молоко 3.2%", ProductID: &productID},
		},
	}
	if err := docs.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	supplierName := "ООО Ромашка"
	if err := ledger.Append(ctx, doc.ID, []entity.EscalationItem{{
		RawName:        supplierName,
		NormalizedName: normalize.NormalizeName(supplierName),
		CatalogType:    constants.CatalogSupplier,
	}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// an unrelated answer closes nothing; the supplier row keeps the hold
	resp, err := svc.ResolveEscalations(ctx, &docflowpb.ResolveEscalationsRequest{
		DocumentId: doc.ID.String(),
		Resolutions: []*docflowpb.ResolutionInput{{
			RawName:     "Сметана",
			CatalogType: string(constants.CatalogProduct),
			CatalogId:   uuid.New().String(),
			CatalogName: "Сметана 20%",
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetDocumentStatus() != string(constants.StatusPendingMapping) {
		t.Fatalf("status = %s, want PENDING_MAPPING while the supplier row is open", resp.GetDocumentStatus())
	}
	if docs.docs[doc.ID].Status != constants.StatusPendingMapping {
		t.Fatalf("persisted status = %s, want PENDING_MAPPING", docs.docs[doc.ID].Status)
	}

	// answering the supplier empties the ledger and releases the document
	resp, err = svc.ResolveEscalations(ctx, &docflowpb.ResolveEscalationsRequest{
		DocumentId: doc.ID.String(),
		Resolutions: []*docflowpb.ResolutionInput{{
			RawName:     supplierName,
			CatalogType: string(constants.CatalogSupplier),
			CatalogId:   uuid.New().String(),
			CatalogName: supplierName,
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetDocumentStatus() != string(constants.StatusMapped) {
		t.Fatalf("status = %s, want MAPPED after the ledger is worked off", resp.GetDocumentStatus())
	}
	if docs.docs[doc.ID].Status != constants.StatusMapped {
		t.Fatalf("persisted status = %s, want MAPPED", docs.docs[doc.ID].Status)
	}

	open, err := ledger.ListOpen(ctx, &doc.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(open) != 0 {
		t.Fatalf("open rows = %d, want 0", len(open))
	}
}
