package bootstrap

import (
	"log/slog"

	"needboard/internal/handler/middleware"
	"needboard/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger derives the application slog.Logger from the log config; the
// middleware owns the handler setup so request logs and app logs share it.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
