package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/paradize/restodocs/internal/common"
)

// LoggingInterceptor tags every unary call with a request id and logs the
// method, elapsed time and outcome.
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = common.WithRequestID(ctx, uuid.NewString())
		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("grpc.request.failed",
				"request_id", common.RequestIDFromContext(ctx),
				"method", info.FullMethod,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
			return resp, err
		}
		logger.Info("grpc.request.ok",
			"request_id", common.RequestIDFromContext(ctx),
			"method", info.FullMethod,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}
