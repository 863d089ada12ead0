package commands

import (
	"context"
	"log/slog"

	"courier/internal/core/ports"
)

// publishEvent sends a domain event after a successful commit. Publication is
// best-effort: a nil publisher disables it, failures are logged and never
// returned to the caller.
func publishEvent(ctx context.Context, logger *slog.Logger, publisher ports.EventPublisher, event ports.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "event publication failed",
			slog.String("event", event.Name),
			slog.String("key", event.Key),
			slog.Any("error", err))
	}
}

// invalidateTracking drops the cached tracking entry for a barcode after a
// mutation. Best-effort: a nil cache disables it, failures are logged.
func invalidateTracking(ctx context.Context, logger *slog.Logger, cache ports.TrackingCache, barcode string) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, barcode); err != nil {
		logger.WarnContext(ctx, "tracking cache invalidation failed",
			slog.String("barcode", barcode),
			slog.Any("error", err))
	}
}
