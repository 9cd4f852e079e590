package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
)

type fakeLedger struct {
	items []*entity.EscalationItem
}

func (f *fakeLedger) ListOpen(context.Context, *uuid.UUID) ([]*entity.EscalationItem, error) {
	return f.items, nil
}

func TestLedgerRoundTrip(t *testing.T) {
	docID := uuid.New()
	ledger := &fakeLedger{items: []*entity.EscalationItem{
		{DocumentID: docID, RawName: "Загадочный ингредиент", NormalizedName: "загадочный ингредиент", CatalogType: constants.CatalogProduct},
		{DocumentID: docID, RawName: "ООО Неизвестный", NormalizedName: "ооо неизвестный", CatalogType: constants.CatalogSupplier},
	}}
	svc := NewService(ledger, nil)

	data, err := svc.ExportLedgerXLSX(context.Background(), &docID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	// the reviewer fills the catalog columns of the first row only
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	resolvedID := uuid.New()
	_ = f.SetCellValue(ledgerSheet, "E2", resolvedID.String())
	_ = f.SetCellValue(ledgerSheet, "F2", "Ингредиент №1")
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	resolutions, warnings, err := svc.ImportLedgerXLSX(buf.Bytes())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v", warnings)
	}
	if len(resolutions) != 1 {
		t.Fatalf("resolutions = %d, want 1 (second row still open)", len(resolutions))
	}
	got := resolutions[0]
	if got.DocumentID != docID {
		t.Fatalf("document id = %s", got.DocumentID)
	}
	if got.Resolution.ResolvedID != resolvedID || got.Resolution.ResolvedName != "Ингредиент №1" {
		t.Fatalf("resolution = %+v", got.Resolution)
	}
	if got.Resolution.RawName != "Загадочный ингредиент" {
		t.Fatalf("raw name = %q", got.Resolution.RawName)
	}
	if got.Resolution.CatalogType != constants.CatalogProduct {
		t.Fatalf("catalog type = %s", got.Resolution.CatalogType)
	}
}

func TestImportReportsMalformedRows(t *testing.T) {
	svc := NewService(&fakeLedger{}, nil)

	f := excelize.NewFile()
	if idx, _ := f.GetSheetIndex(ledgerSheet); idx == -1 {
		_, _ = f.NewSheet(ledgerSheet)
	}
	for i, h := range ledgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(ledgerSheet, cell, h)
	}
	_ = f.SetCellValue(ledgerSheet, "A2", uuid.New().String())
	_ = f.SetCellValue(ledgerSheet, "B2", "Позиция")
	_ = f.SetCellValue(ledgerSheet, "D2", "product")
	_ = f.SetCellValue(ledgerSheet, "E2", "not-a-uuid")
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	resolutions, warnings, err := svc.ImportLedgerXLSX(buf.Bytes())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(resolutions) != 0 {
		t.Fatalf("resolutions = %d", len(resolutions))
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v", warnings)
	}
}
