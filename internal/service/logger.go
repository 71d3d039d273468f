package service

import (
	"context"

	"github.com/rs/zerolog"
)

// loggerFrom prefers the request-scoped logger attached to ctx by the
// context middleware and falls back to the service logger.
func loggerFrom(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}
