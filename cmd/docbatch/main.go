package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paradize/restodocs/gen/ent"
	"github.com/paradize/restodocs/internal/common"
	"github.com/paradize/restodocs/internal/entity"
	"github.com/paradize/restodocs/internal/erp"
	"github.com/paradize/restodocs/internal/export"
	"github.com/paradize/restodocs/internal/extract"
	"github.com/paradize/restodocs/internal/extract/vision"
	"github.com/paradize/restodocs/internal/grouping"
	"github.com/paradize/restodocs/internal/pipeline"
	"github.com/paradize/restodocs/internal/quality"
	repo "github.com/paradize/restodocs/internal/repository"
	"github.com/paradize/restodocs/internal/resolve"
	"github.com/paradize/restodocs/internal/validate"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir   = flag.String("dir", "", "directory of document photos to process (required)")
		out   = flag.String("out", "", "ledger XLSX output path (optional, defaults to parent directory)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "mappings.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	if cfg.Vision.APIKey == "" {
		printError("Error: VISION_API_KEY env var is required\n")
		os.Exit(2)
	}

	db, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.close(logger)

	documentsRepo := repo.NewDocumentRepository(db.client, logger)
	mappingsRepo := repo.NewMappingRepository(db.client, logger)
	escalationsRepo := repo.NewEscalationRepository(db.client, logger)

	var catalog resolve.CatalogLookup
	if cfg.ERP.BaseURL != "" {
		catalog = erp.NewClient(erp.Config{
			BaseURL: cfg.ERP.BaseURL,
			APIKey:  cfg.ERP.APIKey,
			Timeout: cfg.ERP.Timeout,
		}, logger)
	} else {
		logger.Warn("ERP_BASE_URL not configured, catalog matching disabled; all names will escalate")
		catalog = emptyCatalog{}
	}

	resolver := resolve.NewResolver(resolve.Config{
		MappingThreshold:         cfg.Resolver.MappingThreshold,
		ProductCatalogThreshold:  cfg.Resolver.ProductCatalogThreshold,
		SupplierCatalogThreshold: cfg.Resolver.SupplierCatalogThreshold,
	}, mappingsRepo, catalog, escalationsRepo, logger)

	visionClient := vision.NewClient(vision.Config{
		BaseURL: cfg.Vision.BaseURL,
		Model:   cfg.Vision.Model,
		APIKey:  cfg.Vision.APIKey,
		Timeout: cfg.Vision.Timeout,
	}, logger)
	retrier := extract.NewRetrier(visionClient, cfg.Vision.RetryAttempts, 0, logger)

	processor := pipeline.NewProcessor(
		quality.NewGate(cfg.Quality),
		retrier,
		validate.New(validate.Config{
			LineTolerance:   cfg.Pipeline.LineTolerance,
			TotalTolerance:  cfg.Pipeline.TotalTolerance,
			ConfidenceFloor: cfg.Pipeline.ConfidenceFloor,
		}),
		grouping.NewGrouper(logger),
		resolver,
		documentsRepo,
		logger,
	)

	photos, names, err := readPhotos(*dir)
	if err != nil {
		logger.Error("failed to read photo directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(photos) == 0 {
		printError("Error: no photos (.jpg/.jpeg/.png) found in %s\n", *dir)
		os.Exit(1)
	}
	logger.Info("starting batch", "dir", *dir, "photos", len(photos))

	result, err := processor.ProcessBatch(ctx, photos)
	if err != nil {
		logger.Error("batch processing failed", "error", err)
		os.Exit(1)
	}

	ok, incomplete, rejected, failed := 0, 0, 0, 0
	for _, r := range result.Results {
		switch r.Outcome {
		case entity.OCROK:
			ok++
		case entity.OCRIncomplete:
			incomplete++
			logger.Warn("photo from incomplete document", "file", names[r.Index], "issues", r.Issues)
		case entity.OCRRejected:
			rejected++
			logger.Warn("photo rejected", "file", names[r.Index], "issues", r.Issues)
		default:
			failed++
			logger.Warn("photo failed", "file", names[r.Index], "issues", r.Issues)
		}
	}
	logger.Info("batch finished",
		"photos", len(photos),
		"recognized", ok,
		"incomplete", incomplete,
		"rejected", rejected,
		"failed", failed,
		"documents", len(result.Documents),
	)
	for _, doc := range result.Documents {
		logger.Info("document",
			"document_id", doc.ID,
			"doc_type", doc.DocType,
			"doc_number", doc.DocNumber,
			"pages", doc.PageCount,
			"total", doc.TotalAmount.StringFixed(2),
			"status", doc.Status,
			"needs_review", doc.NeedsReview,
		)
	}

	// write the open-names worksheet for offline curation
	open, err := escalationsRepo.ListOpen(ctx, nil)
	if err != nil {
		logger.Error("failed to list open escalations", "error", err)
		os.Exit(1)
	}
	if len(open) > 0 {
		exporter := export.NewService(escalationsRepo, logger)
		data, err := exporter.ExportLedgerXLSX(ctx, nil)
		if err != nil {
			logger.Error("failed to export ledger", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			logger.Error("failed to write ledger file", "path", *out, "error", err)
			os.Exit(1)
		}
		logger.Info("ledger written", "path", *out, "open_names", len(open))
	}
}

// readPhotos loads the directory's image files in name order, so page
// numbering in filenames translates into a stable processing order.
func readPhotos(dir string) ([][]byte, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if photoExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	photos := make([][]byte, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, err
		}
		photos = append(photos, data)
	}
	return photos, names, nil
}

// dbHandle owns whichever backing store the run selected.
type dbHandle struct {
	client *ent.Client
	pool   *pgxpool.Pool
}

func (h *dbHandle) close(logger *slog.Logger) {
	if h.pool != nil {
		repo.Close(h.client, h.pool, logger)
		return
	}
	if err := h.client.Close(); err != nil {
		logger.Error("failed to close ent client", "error", err)
	}
}

func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*dbHandle, error) {
	if inmem {
		client, err := repo.OpenSQLite(ctx, repo.InMemoryDSN, logger)
		if err != nil {
			return nil, err
		}
		return &dbHandle{client: client}, nil
	}
	client, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &dbHandle{client: client, pool: pool}, nil
}

// emptyCatalog stands in when no ERP connection is configured.
type emptyCatalog struct{}

func (emptyCatalog) SearchProducts(context.Context, string) ([]resolve.CatalogEntry, error) {
	return nil, nil
}
func (emptyCatalog) SearchSuppliers(context.Context, string, string) ([]resolve.CatalogEntry, error) {
	return nil, nil
}
func (emptyCatalog) GetProduct(context.Context, uuid.UUID) (*resolve.CatalogEntry, error) {
	return nil, nil
}
