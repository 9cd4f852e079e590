package server

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/paradize/restodocs/constants"
	docflowpb "github.com/paradize/restodocs/gen/proto/docflow/v1"
	"github.com/paradize/restodocs/internal/common"
	"github.com/paradize/restodocs/internal/entity"
	"github.com/paradize/restodocs/internal/normalize"
	"github.com/paradize/restodocs/internal/utils"
)

func (s *DocflowService) ListEscalations(ctx context.Context, req *docflowpb.ListEscalationsRequest) (*docflowpb.ListEscalationsResponse, error) {
	var docID *uuid.UUID
	if raw := strings.TrimSpace(req.GetDocumentId()); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, grpcstatus.Error(codes.InvalidArgument, "document_id must be a UUID")
		}
		docID = &id
	}

	items, err := s.escalations.ListOpen(ctx, docID)
	if err != nil {
		s.logger.Error("failed to list escalations", "error", err)
		return nil, grpcstatus.Errorf(codes.Internal, "list escalations: %v", err)
	}
	out := make([]*docflowpb.EscalationRow, 0, len(items))
	for _, item := range items {
		out = append(out, utils.ToPBEscalation(item))
	}
	return &docflowpb.ListEscalationsResponse{Items: out}, nil
}

func (s *DocflowService) ResolveEscalations(ctx context.Context, req *docflowpb.ResolveEscalationsRequest) (*docflowpb.ResolveEscalationsResponse, error) {
	docID, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, grpcstatus.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	if len(req.GetResolutions()) == 0 {
		return nil, grpcstatus.Error(codes.InvalidArgument, "at least one resolution is required")
	}

	resolutions := make([]entity.Resolution, 0, len(req.GetResolutions()))
	for _, in := range req.GetResolutions() {
		catalogID, err := uuid.Parse(strings.TrimSpace(in.GetCatalogId()))
		if err != nil {
			return nil, grpcstatus.Errorf(codes.InvalidArgument, "catalog_id for %q must be a UUID", in.GetRawName())
		}
		ct := constants.CatalogType(strings.TrimSpace(in.GetCatalogType()))
		if ct != constants.CatalogProduct && ct != constants.CatalogSupplier {
			return nil, grpcstatus.Errorf(codes.InvalidArgument, "unknown catalog type %q", in.GetCatalogType())
		}
		resolutions = append(resolutions, entity.Resolution{
			RawName:      in.GetRawName(),
			ResolvedID:   catalogID,
			ResolvedName: in.GetCatalogName(),
			CatalogType:  ct,
		})
	}

	open, docStatus, err := s.applyResolutions(ctx, docID, resolutions, constants.MappingSourceManual)
	if err != nil {
		return nil, err
	}
	return &docflowpb.ResolveEscalationsResponse{
		OpenItems:      int32(open),
		DocumentStatus: string(docStatus),
	}, nil
}

func (s *DocflowService) ExportLedger(ctx context.Context, req *docflowpb.ExportLedgerRequest) (*docflowpb.ExportLedgerResponse, error) {
	var docID *uuid.UUID
	if raw := strings.TrimSpace(req.GetDocumentId()); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, grpcstatus.Error(codes.InvalidArgument, "document_id must be a UUID")
		}
		docID = &id
	}
	data, err := s.exporter.ExportLedgerXLSX(ctx, docID)
	if err != nil {
		s.logger.Error("failed to export ledger", "error", err)
		return nil, grpcstatus.Errorf(codes.Internal, "export ledger: %v", err)
	}
	return &docflowpb.ExportLedgerResponse{Xlsx: data}, nil
}

func (s *DocflowService) ImportLedger(ctx context.Context, req *docflowpb.ImportLedgerRequest) (*docflowpb.ImportLedgerResponse, error) {
	if len(req.GetXlsx()) == 0 {
		return nil, grpcstatus.Error(codes.InvalidArgument, "xlsx payload is required")
	}
	rows, warnings, err := s.exporter.ImportLedgerXLSX(req.GetXlsx())
	if err != nil {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "read workbook: %v", err)
	}

	byDoc := make(map[uuid.UUID][]entity.Resolution)
	for _, row := range rows {
		byDoc[row.DocumentID] = append(byDoc[row.DocumentID], row.Resolution)
	}

	applied := 0
	for docID, resolutions := range byDoc {
		if _, _, err := s.applyResolutions(ctx, docID, resolutions, constants.MappingSourceSheet); err != nil {
			s.logger.Error("failed to apply sheet resolutions", "document_id", docID, "error", err)
			warnings = append(warnings, "document "+docID.String()+": not applied")
			continue
		}
		applied += len(resolutions)
	}
	return &docflowpb.ImportLedgerResponse{
		Applied:  int32(applied),
		Warnings: warnings,
	}, nil
}

// applyResolutions persists human answers as mappings, fills the document's
// items, closes the matching ledger rows, and advances the document when the
// ledger is fully worked off.
func (s *DocflowService) applyResolutions(ctx context.Context, docID uuid.UUID, resolutions []entity.Resolution, source constants.MappingSource) (int, constants.DocStatus, error) {
	doc, err := s.documents.GetDocument(ctx, docID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, "", grpcstatus.Errorf(codes.NotFound, "document %s not found", docID)
		}
		return 0, "", grpcstatus.Errorf(codes.Internal, "get document: %v", err)
	}

	open, err := s.resolver.ApplyResolutions(ctx, doc, resolutions, source)
	if err != nil {
		s.logger.Error("failed to apply resolutions", "document_id", docID, "error", err)
		return 0, "", grpcstatus.Errorf(codes.Internal, "apply resolutions: %v", err)
	}
	if err := s.documents.UpdateItems(ctx, docID, doc.Items); err != nil {
		return 0, "", grpcstatus.Errorf(codes.Internal, "update document: %v", err)
	}

	for _, res := range resolutions {
		err := s.escalations.ResolveByName(ctx, docID, normalize.NormalizeName(res.RawName), res.CatalogType, res.ResolvedID, res.ResolvedName)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return 0, "", grpcstatus.Errorf(codes.Internal, "close ledger row: %v", err)
		}
	}

	docStatus := doc.Status
	if open == 0 && doc.Status == constants.StatusPendingMapping {
		// the advance needs the whole ledger worked off, supplier rows
		// included — items alone do not cover the supplier escalation
		stillOpen, err := s.escalations.ListOpen(ctx, &docID)
		if err != nil {
			return 0, "", grpcstatus.Errorf(codes.Internal, "scan ledger: %v", err)
		}
		if len(stillOpen) == 0 {
			ok, err := s.documents.AdvanceStatus(ctx, docID, constants.StatusPendingMapping, constants.StatusMapped)
			if err != nil {
				return 0, "", grpcstatus.Errorf(codes.Internal, "advance document: %v", err)
			}
			if ok {
				docStatus = constants.StatusMapped
				s.logger.Info("escalations.document_mapped", "document_id", docID)
			}
		}
	}
	return open, docStatus, nil
}
