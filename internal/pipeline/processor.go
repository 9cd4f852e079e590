// Package pipeline coordinates the full document flow: per-photo quality
// gate, recognition, normalization and arithmetic validation run fanned out
// across the batch; grouping, merging and entity resolution run once the
// whole batch is in. The grouper is the synchronization point — it needs
// every page before it can decide document boundaries.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/internal/common"
	"github.com/paradize/restodocs/internal/entity"
	"github.com/paradize/restodocs/internal/extract"
	"github.com/paradize/restodocs/internal/grouping"
	"github.com/paradize/restodocs/internal/normalize"
	"github.com/paradize/restodocs/internal/quality"
	"github.com/paradize/restodocs/internal/resolve"
	"github.com/paradize/restodocs/internal/validate"
)

// DocumentStore persists merged documents at the end of a batch run.
type DocumentStore interface {
	SaveDocument(ctx context.Context, doc *entity.MergedDocument) error
}

// BatchResult is the outcome of one uploaded photo batch. Results carries
// exactly one entry per submitted photo; Documents holds the merged,
// resolved documents assembled from the photos that passed.
type BatchResult struct {
	Results   []entity.OCRResult
	Documents []*entity.MergedDocument
}

type Processor struct {
	Logger    *slog.Logger
	Gate      *quality.Gate
	Extractor extract.Extractor
	Validator *validate.Validator
	Grouper   *grouping.Grouper
	Resolver  *resolve.Resolver
	Documents DocumentStore
	// Concurrency bounds the per-photo fan-out; <=0 means 4.
	Concurrency int
}

func NewProcessor(gate *quality.Gate, extractor extract.Extractor, validator *validate.Validator, grouper *grouping.Grouper, resolver *resolve.Resolver, documents DocumentStore, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:    logger,
		Gate:      gate,
		Extractor: extractor,
		Validator: validator,
		Grouper:   grouper,
		Resolver:  resolver,
		Documents: documents,
	}
}

// ProcessBatch runs the whole flow for one uploaded batch. Per-photo
// failures (bad quality, recognition errors) become OCRResult entries and
// never abort the batch; only infrastructure failures — resolution or
// persistence — return an error.
func (p *Processor) ProcessBatch(ctx context.Context, photos [][]byte) (*BatchResult, error) {
	res := &BatchResult{Results: make([]entity.OCRResult, len(photos))}
	ctx = common.WithBatchID(ctx, uuid.NewString())
	p.Logger.Info("pipeline.batch.start", "batch_id", common.BatchIDFromContext(ctx), "photos", len(photos))

	limit := p.Concurrency
	if limit <= 0 {
		limit = 4
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range photos {
		i := i
		g.Go(func() error {
			res.Results[i] = p.processPhoto(gctx, i, photos[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var pages []*entity.Extraction
	pageIdx := make(map[*entity.Extraction]int)
	for i := range res.Results {
		if res.Results[i].Outcome == entity.OCROK {
			pages = append(pages, res.Results[i].Extraction)
			pageIdx[res.Results[i].Extraction] = i
		}
	}
	if len(pages) == 0 {
		p.Logger.Warn("pipeline.batch.no_pages", "photos", len(photos))
		return res, nil
	}

	for _, grp := range p.Grouper.Group(pages) {
		if !grp.IsComplete {
			// the merged document is still produced (flagged for review);
			// the per-photo verdict downgrades so callers see the gap
			issue := fmt.Sprintf("document has %d of %d pages", len(grp.Pages), grp.TotalPages)
			for _, page := range grp.Pages {
				i := pageIdx[page]
				res.Results[i].Outcome = entity.OCRIncomplete
				res.Results[i].Issues = append(res.Results[i].Issues, issue)
			}
		}
		doc := grouping.Merge(grp)
		resolution, err := p.Resolver.ResolveDocument(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("resolve document %s: %w", doc.ID, err)
		}
		if resolution.Unresolved > 0 {
			doc.Status = constants.StatusPendingMapping
		} else {
			doc.Status = constants.StatusMapped
		}
		if err := p.Documents.SaveDocument(ctx, doc); err != nil {
			return nil, fmt.Errorf("save document %s: %w", doc.ID, err)
		}
		p.Logger.Info("pipeline.document.done",
			"batch_id", common.BatchIDFromContext(ctx),
			"document_id", doc.ID,
			"group_key", doc.GroupKey,
			"pages", doc.PageCount,
			"status", doc.Status,
			"needs_review", doc.NeedsReview)
		res.Documents = append(res.Documents, doc)
	}
	return res, nil
}

// processPhoto is the pure per-photo stage: gate, recognize, normalize,
// validate. Always returns a terminal OCRResult.
func (p *Processor) processPhoto(ctx context.Context, idx int, data []byte) entity.OCRResult {
	report := p.Gate.Validate(data)
	if !report.IsGood {
		p.Logger.Info("pipeline.photo.rejected", "index", idx, "issues", report.Issues)
		return entity.OCRResult{Index: idx, Outcome: entity.OCRRejected, Issues: report.Issues}
	}

	raw, err := p.Extractor.Recognize(ctx, data, extract.HintNone)
	if err != nil {
		p.Logger.Warn("pipeline.photo.recognition_failed", "index", idx, "error", err)
		return entity.OCRResult{Index: idx, Outcome: entity.OCRError, Issues: []string{err.Error()}}
	}

	ext := normalize.Normalize(raw)
	p.Validator.ValidatePage(&ext)
	return entity.OCRResult{Index: idx, Outcome: entity.OCROK, Extraction: &ext}
}
