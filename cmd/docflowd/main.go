package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	docflowpb "github.com/paradize/restodocs/gen/proto/docflow/v1"
	"github.com/paradize/restodocs/internal/common"
	"github.com/paradize/restodocs/internal/erp"
	"github.com/paradize/restodocs/internal/export"
	"github.com/paradize/restodocs/internal/invoice"
	repo "github.com/paradize/restodocs/internal/repository"
	"github.com/paradize/restodocs/internal/resolve"
	svc "github.com/paradize/restodocs/internal/server"
	"github.com/paradize/restodocs/internal/status"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	documentsRepo := repo.NewDocumentRepository(entc, logger)
	mappingsRepo := repo.NewMappingRepository(entc, logger)
	escalationsRepo := repo.NewEscalationRepository(entc, logger)
	submissionsRepo := repo.NewSubmissionRepository(entc, logger)

	erpClient := erp.NewClient(erp.Config{
		BaseURL: cfg.ERP.BaseURL,
		APIKey:  cfg.ERP.APIKey,
		Timeout: cfg.ERP.Timeout,
	}, logger)

	resolver := resolve.NewResolver(resolve.Config{
		MappingThreshold:         cfg.Resolver.MappingThreshold,
		ProductCatalogThreshold:  cfg.Resolver.ProductCatalogThreshold,
		SupplierCatalogThreshold: cfg.Resolver.SupplierCatalogThreshold,
	}, mappingsRepo, erpClient, escalationsRepo, logger)

	builder := invoice.NewBuilder(resolver, erpClient, logger)
	tracker := status.NewTracker(submissionsRepo, erpClient, logger)
	exporter := export.NewService(escalationsRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.LoggingInterceptor(logger)))

	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	docflowpb.RegisterDocflowServiceServer(grpcServer, svc.NewDocflowService(
		documentsRepo,
		escalationsRepo,
		submissionsRepo,
		resolver,
		builder,
		erpClient,
		tracker,
		exporter,
		logger,
	))

	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
