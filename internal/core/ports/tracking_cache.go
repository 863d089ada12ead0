package ports

import (
	"context"
)

// TrackingCache caches public tracking responses keyed by barcode.
// A cache miss is signaled by (nil, nil); infrastructure errors are returned
// as errors and treated as misses by callers.
type TrackingCache interface {
	// Get returns the cached tracking payload for the barcode, nil on miss.
	Get(ctx context.Context, barcode string) ([]byte, error)

	// Set stores the tracking payload under the barcode with the configured TTL.
	Set(ctx context.Context, barcode string, payload []byte) error

	// Invalidate drops the cached entry for the barcode.
	Invalidate(ctx context.Context, barcode string) error
}
