package bootstrap

import (
	"context"
	"log/slog"
)

// stoppable is anything that drains in-flight work on shutdown.
type stoppable interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops the HTTP server, waiting for in-flight requests
// until ctx expires. Errors are logged rather than returned.
func GracefulShutdown(ctx context.Context, srv stoppable) {
	slog.Info(LogMsgShuttingDownServer)

	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
