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
	"github.com/paradize/restodocs/internal/status"
	"github.com/paradize/restodocs/internal/utils"
)

// BuildInvoices turns a fully mapped document into ERP-ready submission
// records, one per destination type. Calling it again for the same document
// returns the records built the first time.
func (s *DocflowService) BuildInvoices(ctx context.Context, req *docflowpb.BuildInvoicesRequest) (*docflowpb.BuildInvoicesResponse, error) {
	v := common.NewValidator()
	v.Field("document_id", req.GetDocumentId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	id := uuid.MustParse(strings.TrimSpace(req.GetDocumentId()))

	existing, err := s.submissions.ListByDocument(ctx, id)
	if err != nil {
		s.logger.Error("failed to list submission records", "document_id", id, "error", err)
		return nil, grpcstatus.Errorf(codes.Internal, "list submissions: %v", err)
	}
	if len(existing) > 0 {
		return &docflowpb.BuildInvoicesResponse{Records: toPBSubmissions(existing)}, nil
	}

	doc, err := s.documents.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, grpcstatus.Errorf(codes.NotFound, "document %s not found", id)
		}
		return nil, grpcstatus.Errorf(codes.Internal, "get document: %v", err)
	}
	if doc.Status != constants.StatusMapped {
		return nil, grpcstatus.Errorf(codes.FailedPrecondition,
			"document %s is %s, invoices are built from %s", id, doc.Status, constants.StatusMapped)
	}

	stores, err := s.stores.ListStores(ctx)
	if err != nil {
		s.logger.Error("failed to list stores", "error", err)
		return nil, grpcstatus.Errorf(codes.Unavailable, "list stores: %v", err)
	}

	res, err := s.builder.Build(ctx, doc, stores)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "build invoices: %v", err)
	}
	if len(res.Records) > 0 {
		if err := s.submissions.SaveRecords(ctx, res.Records); err != nil {
			return nil, grpcstatus.Errorf(codes.Internal, "save submission records: %v", err)
		}
	}
	return &docflowpb.BuildInvoicesResponse{
		Records:  toPBSubmissions(res.Records),
		Dropped:  res.Dropped,
		Warnings: res.Warnings,
	}, nil
}

func (s *DocflowService) ListSubmissions(ctx context.Context, req *docflowpb.ListSubmissionsRequest) (*docflowpb.ListSubmissionsResponse, error) {
	v := common.NewValidator()
	v.Field("document_id", req.GetDocumentId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	id := uuid.MustParse(strings.TrimSpace(req.GetDocumentId()))

	recs, err := s.submissions.ListByDocument(ctx, id)
	if err != nil {
		s.logger.Error("failed to list submission records", "document_id", id, "error", err)
		return nil, grpcstatus.Errorf(codes.Internal, "list submissions: %v", err)
	}
	return &docflowpb.ListSubmissionsResponse{Records: toPBSubmissions(recs)}, nil
}

func toPBSubmissions(recs []*entity.SubmissionRecord) []*docflowpb.SubmissionRecord {
	out := make([]*docflowpb.SubmissionRecord, len(recs))
	for i, rec := range recs {
		out[i] = utils.ToPBSubmission(rec)
	}
	return out
}

func (s *DocflowService) SubmitDocument(ctx context.Context, req *docflowpb.SubmitDocumentRequest) (*docflowpb.SubmitDocumentResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetRecordId()))
	if err != nil {
		return nil, grpcstatus.Error(codes.InvalidArgument, "record_id must be a UUID")
	}
	if err := s.tracker.Submit(ctx, id); err != nil {
		if errors.Is(err, status.ErrConflict) {
			return nil, grpcstatus.Errorf(codes.Aborted, "record %s changed concurrently", id)
		}
		s.logger.Error("failed to submit record", "record_id", id, "error", err)
		return nil, grpcstatus.Errorf(codes.FailedPrecondition, "submit: %v", err)
	}
	return &docflowpb.SubmitDocumentResponse{Status: string(constants.StatusImported)}, nil
}

func (s *DocflowService) CancelDocument(ctx context.Context, req *docflowpb.CancelDocumentRequest) (*docflowpb.CancelDocumentResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetRecordId()))
	if err != nil {
		return nil, grpcstatus.Error(codes.InvalidArgument, "record_id must be a UUID")
	}
	if err := s.tracker.Cancel(ctx, id); err != nil {
		if errors.Is(err, status.ErrConflict) {
			return nil, grpcstatus.Errorf(codes.Aborted, "record %s changed concurrently", id)
		}
		s.logger.Error("failed to cancel record", "record_id", id, "error", err)
		return nil, grpcstatus.Errorf(codes.FailedPrecondition, "cancel: %v", err)
	}
	return &docflowpb.CancelDocumentResponse{Status: string(constants.StatusCancelled)}, nil
}
