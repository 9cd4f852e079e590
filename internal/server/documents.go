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
	"github.com/paradize/restodocs/internal/utils"
)

func (s *DocflowService) ListDocuments(ctx context.Context, req *docflowpb.ListDocumentsRequest) (*docflowpb.ListDocumentsResponse, error) {
	var filter *constants.DocStatus
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		ds := constants.DocStatus(strings.ToUpper(st))
		valid := false
		for _, v := range constants.DocStatuses {
			if v == string(ds) {
				valid = true
				break
			}
		}
		if !valid {
			return nil, grpcstatus.Errorf(codes.InvalidArgument, "unknown status %q", st)
		}
		filter = &ds
	}

	docs, err := s.documents.ListDocuments(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list documents", "error", err)
		return nil, grpcstatus.Errorf(codes.Internal, "list documents: %v", err)
	}

	out := make([]*docflowpb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.ToPBDocument(d))
	}
	return &docflowpb.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocflowService) GetDocument(ctx context.Context, req *docflowpb.GetDocumentRequest) (*docflowpb.GetDocumentResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, grpcstatus.Error(codes.InvalidArgument, "document_id must be a UUID")
	}
	doc, err := s.documents.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, grpcstatus.Errorf(codes.NotFound, "document %s not found", id)
		}
		s.logger.Error("failed to get document", "document_id", id, "error", err)
		return nil, grpcstatus.Errorf(codes.Internal, "get document: %v", err)
	}
	return &docflowpb.GetDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}
