package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// caseScoped is implemented by request messages that address one case.
type caseScoped interface {
	GetCaseID() string
}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call.
// It logs the procedure name, the case it addresses, duration, and any error
// codes/messages. Client errors are logged at WARN, the rest at ERROR.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			logger := slog.With("procedure", req.Spec().Procedure)
			if m, ok := req.Any().(caseScoped); ok && m.GetCaseID() != "" {
				logger = logger.With("case_id", m.GetCaseID())
			}

			resp, err := next(ctx, req)

			duration := time.Since(start).Milliseconds()
			if err == nil {
				logger.Info("RPC ok", "duration_ms", duration)
				return resp, nil
			}

			var connectErr *connect.Error
			if !errors.As(err, &connectErr) {
				logger.Error("RPC error", "error", err, "duration_ms", duration)
				return resp, err
			}
			level := slog.LevelWarn
			switch connectErr.Code() {
			case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable:
				level = slog.LevelError
			}
			logger.Log(ctx, level, "RPC error",
				"code", connectErr.Code(),
				"error", connectErr.Message(),
				"duration_ms", duration,
			)
			return resp, err
		}
	}
}
