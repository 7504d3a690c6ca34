// Package listing pages through the property catalog and resolves single
// properties for the detail view.
package listing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cnk-ceneka/cnk/internal/catalog"
	"github.com/cnk-ceneka/cnk/internal/property"
)

// DefaultPageSize is the number of cards per listing page.
const DefaultPageSize = 9

// Source is the part of the catalog client the listing needs.
type Source interface {
	ListProperties(ctx context.Context, page, limit int) (*catalog.ListResponse, error)
}

// Variant selects which records a page shows and how pages are counted.
type Variant string

const (
	// VariantAvailable shows only records for sale and derives the page
	// count from pagination.total.
	VariantAvailable Variant = "available"
	// VariantAll shows every record and trusts pagination.pages.
	VariantAll Variant = "all"
)

// ParseVariant maps a config value to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantAvailable, "":
		return VariantAvailable, nil
	case VariantAll:
		return VariantAll, nil
	default:
		return "", fmt.Errorf("unknown listing variant %q (want available or all)", s)
	}
}

// Page is one fetched listing page.
type Page struct {
	Number     int                  `json:"page"`
	Size       int                  `json:"pageSize"`
	Properties []*property.Property `json:"properties"`
	TotalPages int                  `json:"totalPages"`
	Total      int                  `json:"total"`
}

// Fetcher loads listing pages.
type Fetcher struct {
	src     Source
	variant Variant
}

// NewFetcher creates a fetcher over src.
func NewFetcher(src Source, variant Variant) *Fetcher {
	if variant == "" {
		variant = VariantAvailable
	}
	return &Fetcher{src: src, variant: variant}
}

// Variant returns the configured variant.
func (f *Fetcher) Variant() Variant {
	return f.variant
}

// Fetch loads page number page. It does not check page against the total;
// callers clamp with ClampPage. On error no partial page is returned.
func (f *Fetcher) Fetch(ctx context.Context, page, size int) (*Page, error) {
	if size <= 0 {
		size = DefaultPageSize
	}

	resp, err := f.src.ListProperties(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", page, err)
	}

	records := resp.Data
	totalPages := TotalPages(resp.Pagination.Total, size)

	switch f.variant {
	case VariantAll:
		if resp.Pagination.Pages != nil && *resp.Pagination.Pages > 0 {
			totalPages = *resp.Pagination.Pages
		}
	default:
		records = available(records)
	}

	slog.Debug("listing page fetched",
		"page", page,
		"variant", f.variant,
		"records", len(resp.Data),
		"shown", len(records),
		"total_pages", totalPages,
	)

	return &Page{
		Number:     page,
		Size:       size,
		Properties: property.NormalizeAll(records, property.ListOptions),
		TotalPages: totalPages,
		Total:      resp.Pagination.Total,
	}, nil
}

func available(records []property.RawRecord) []property.RawRecord {
	out := make([]property.RawRecord, 0, len(records))
	for _, r := range records {
		if r.Available() {
			out = append(out, r)
		}
	}
	return out
}

// TotalPages is ceil(total/size), never less than 1.
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// ClampPage limits page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
