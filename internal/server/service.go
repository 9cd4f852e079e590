package server

import (
	"log/slog"

	docflowpb "github.com/paradize/restodocs/gen/proto/docflow/v1"
	"github.com/paradize/restodocs/internal/export"
	"github.com/paradize/restodocs/internal/invoice"
	"github.com/paradize/restodocs/internal/repository"
	"github.com/paradize/restodocs/internal/resolve"
	"github.com/paradize/restodocs/internal/status"
)

// DocflowService is the back-office review surface: browsing recognized
// documents, working the escalation ledger, and driving submissions.
type DocflowService struct {
	docflowpb.UnimplementedDocflowServiceServer
	documents   repository.DocumentRepository
	escalations repository.EscalationRepository
	submissions repository.SubmissionRepository
	resolver    *resolve.Resolver
	builder     *invoice.Builder
	stores      invoice.StoreDirectory
	tracker     *status.Tracker
	exporter    *export.Service
	logger      *slog.Logger
}

func NewDocflowService(
	documents repository.DocumentRepository,
	escalations repository.EscalationRepository,
	submissions repository.SubmissionRepository,
	resolver *resolve.Resolver,
	builder *invoice.Builder,
	stores invoice.StoreDirectory,
	tracker *status.Tracker,
	exporter *export.Service,
	logger *slog.Logger,
) *DocflowService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocflowService{
		documents:   documents,
		escalations: escalations,
		submissions: submissions,
		resolver:    resolver,
		builder:     builder,
		stores:      stores,
		tracker:     tracker,
		exporter:    exporter,
		logger:      logger,
	}
}
