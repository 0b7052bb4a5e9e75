package utils

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

type ContextKey int

const (
	ContextKeyLogger ContextKey = iota
)

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// LoggerFromContext never returns nil: code paths created outside of the
// request middleware still get a usable logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}
