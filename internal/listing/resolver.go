package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/cnk-ceneka/cnk/internal/property"
)

// DefaultScanLimit is how many records the resolver scans for an id.
const DefaultScanLimit = 100

// ErrNotFound is returned when no scanned record has the requested id.
var ErrNotFound = errors.New("property not found")

// Resolver finds a single property by id.
//
// The catalog has no single-property endpoint, so Resolve loads the first
// page of scanLimit records and searches it. Properties beyond that page
// cannot be resolved.
type Resolver struct {
	src       Source
	scanLimit int
}

// NewResolver creates a resolver scanning scanLimit records.
func NewResolver(src Source, scanLimit int) *Resolver {
	if scanLimit <= 0 {
		scanLimit = DefaultScanLimit
	}
	return &Resolver{src: src, scanLimit: scanLimit}
}

// Resolve returns the property with the given id, normalized for the detail
// view with every coded field resolved.
func (r *Resolver) Resolve(ctx context.Context, id int64) (*property.Property, error) {
	resp, err := r.src.ListProperties(ctx, 1, r.scanLimit)
	if err != nil {
		return nil, fmt.Errorf("resolving property %d: %w", id, err)
	}

	for _, raw := range resp.Data {
		if raw.ID == id {
			return property.Normalize(raw, property.DetailOptions), nil
		}
	}
	return nil, fmt.Errorf("property %d: %w", id, ErrNotFound)
}
