// Package export renders the escalation ledger as an XLSX worksheet and
// reads the filled worksheet back. The workbook is the offline half of the
// human-escalation loop: a reviewer downloads open rows, fills the catalog
// columns in a spreadsheet editor, and uploads the file back.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/entity"
)

const ledgerSheet = "Mappings"

// LedgerSource lists the open escalation rows to be exported.
type LedgerSource interface {
	ListOpen(ctx context.Context, documentID *uuid.UUID) ([]*entity.EscalationItem, error)
}

// Service is a tiny façade over the ledger that produces and consumes XLSX bytes.
type Service struct {
	ledger LedgerSource
	logger *slog.Logger
}

func NewService(ledger LedgerSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ledger: ledger, logger: logger}
}

var ledgerHeaders = []string{
	"Document ID",
	"Raw Name",
	"Normalized Name",
	"Catalog Type",
	"Catalog ID",
	"Catalog Name",
}

// ExportLedgerXLSX returns a workbook of open ledger rows. The last two
// columns are empty; the reviewer fills them.
func (s *Service) ExportLedgerXLSX(ctx context.Context, documentID *uuid.UUID) ([]byte, error) {
	start := time.Now()

	items, err := s.ledger.ListOpen(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(ledgerSheet); index == -1 {
		if _, err := f.NewSheet(ledgerSheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(ledgerSheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range ledgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(ledgerSheet, cell, h)
	}

	row := 2
	for _, item := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(ledgerSheet, cell, v)
		}
		write(1, item.DocumentID.String())
		write(2, item.RawName)
		write(3, item.NormalizedName)
		write(4, string(item.CatalogType))
		row++
	}

	_ = f.SetColWidth(ledgerSheet, "A", "A", 38) // document id
	_ = f.SetColWidth(ledgerSheet, "B", "C", 40) // names
	_ = f.SetColWidth(ledgerSheet, "D", "D", 12) // type
	_ = f.SetColWidth(ledgerSheet, "E", "E", 38) // catalog id
	_ = f.SetColWidth(ledgerSheet, "F", "F", 40) // catalog name

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.ledger.ok",
		"rows", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// SheetResolution is one filled workbook row, tied back to its document.
type SheetResolution struct {
	DocumentID uuid.UUID
	Resolution entity.Resolution
}

// ImportLedgerXLSX reads a filled workbook back. Rows with an empty
// Catalog ID are still open and skipped; malformed rows are reported as
// warnings, never as a failure — a half-filled sheet is a normal upload.
func (s *Service) ImportLedgerXLSX(data []byte) ([]SheetResolution, []string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("xlsx open: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(ledgerSheet)
	if err != nil {
		return nil, nil, fmt.Errorf("sheet %q: %w", ledgerSheet, err)
	}

	var (
		resolutions []SheetResolution
		warnings    []string
	)
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		cell := func(col int) string {
			if col < len(row) {
				return strings.TrimSpace(row[col])
			}
			return ""
		}
		catalogID := cell(4)
		if catalogID == "" {
			continue
		}
		docID, err := uuid.Parse(cell(0))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("row %d: bad document id %q", i+1, cell(0)))
			continue
		}
		resolvedID, err := uuid.Parse(catalogID)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("row %d: bad catalog id %q", i+1, catalogID))
			continue
		}
		ct := constants.CatalogType(cell(3))
		if ct != constants.CatalogProduct && ct != constants.CatalogSupplier {
			warnings = append(warnings, fmt.Sprintf("row %d: unknown catalog type %q", i+1, cell(3)))
			continue
		}
		resolutions = append(resolutions, SheetResolution{
			DocumentID: docID,
			Resolution: entity.Resolution{
				RawName:      cell(1),
				ResolvedID:   resolvedID,
				ResolvedName: cell(5),
				CatalogType:  ct,
			},
		})
	}

	s.logger.Info("export.ledger.import",
		"resolved", len(resolutions),
		"skipped", len(warnings),
	)
	return resolutions, warnings, nil
}
