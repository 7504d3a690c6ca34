// Package gallery loads the home page photo carousel.
package gallery

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"

	"github.com/cnk-ceneka/cnk/internal/catalog"
)

// Dictionary keys of the fallback notices.
const (
	MessageUnavailable = "galeria-respaldo"
	MessageRateLimited = "galeria-limite"
	messageRetryAfter  = "reintentar-despues"
)

// DefaultCacheTTL is how long a successful image list is reused.
const DefaultCacheTTL = 10 * time.Minute

// FallbackTTL is how long a fallback result is reused before the service
// is tried again. It never exceeds the fetcher's cache TTL.
const FallbackTTL = 30 * time.Second

// FallbackImages are shown when the gallery service cannot be used.
var FallbackImages = []string{
	"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
}

// Source is the part of the catalog client the gallery needs. Retries
// happen inside the source.
type Source interface {
	GalleryImages(ctx context.Context) (*catalog.GalleryResponse, error)
}

// Result is what the carousel shows.
type Result struct {
	Images   []string `json:"images"`
	Fallback bool     `json:"fallback"`
	// MessageKey names the notice to show, empty on success.
	MessageKey string `json:"messageKey,omitempty"`
	RetryAt    string `json:"retryAt,omitempty"`
}

// Message renders the notice with the translate function t.
func (r Result) Message(t func(string) string) string {
	if r.MessageKey == "" {
		return ""
	}
	msg := t(r.MessageKey)
	if r.RetryAt != "" {
		msg += " " + t(messageRetryAfter) + " " + r.RetryAt + "."
	}
	return msg
}

const cacheKey = "gallery"

// Fetcher loads gallery images, falling back to FallbackImages.
// Concurrent callers share one request and its retry ladder.
type Fetcher struct {
	src         Source
	cache       *ttlcache.Cache[string, Result]
	fallbackTTL time.Duration
	group       singleflight.Group
}

// NewFetcher creates a fetcher. A ttl of zero disables caching.
func NewFetcher(src Source, ttl time.Duration) *Fetcher {
	f := &Fetcher{src: src, fallbackTTL: min(ttl, FallbackTTL)}
	if ttl > 0 {
		f.cache = ttlcache.New(
			ttlcache.WithTTL[string, Result](ttl),
			ttlcache.WithDisableTouchOnHit[string, Result](),
		)
	}
	return f
}

// Fetch never fails: every error becomes a fallback result.
func (f *Fetcher) Fetch(ctx context.Context) Result {
	if f.cache != nil {
		if item := f.cache.Get(cacheKey); item != nil {
			return item.Value().clone()
		}
	}

	v, _, _ := f.group.Do(cacheKey, func() (any, error) {
		res, cancelled := f.load(ctx)
		if f.cache != nil && !cancelled {
			ttl := ttlcache.DefaultTTL
			if res.Fallback {
				ttl = f.fallbackTTL
			}
			f.cache.Set(cacheKey, res, ttl)
		}
		return res, nil
	})
	return v.(Result).clone()
}

// load asks the source once. cancelled reports a fallback caused by the
// caller's context rather than by the service.
func (f *Fetcher) load(ctx context.Context) (res Result, cancelled bool) {
	resp, err := f.src.GalleryImages(ctx)
	if err != nil {
		var rl *catalog.RateLimitError
		if errors.As(err, &rl) {
			slog.Warn("gallery rate limited, using fallback images", "retry_at", rl.RetryAt)
			return fallback(MessageRateLimited, rl.RetryAt), false
		}
		slog.Warn("gallery unavailable, using fallback images", "error", err)
		return fallback(MessageUnavailable, ""), ctx.Err() != nil
	}

	images := urls(resp)
	if !resp.Success || len(images) == 0 {
		slog.Warn("gallery returned no images, using fallback images", "success", resp.Success)
		return fallback(MessageUnavailable, ""), false
	}
	return Result{Images: images}, false
}

// Unavailable is the fallback shown when the service did not answer in time.
func Unavailable() Result {
	return fallback(MessageUnavailable, "")
}

func urls(resp *catalog.GalleryResponse) []string {
	out := make([]string, 0, len(resp.Data))
	for _, img := range resp.Data {
		if u := strings.TrimSpace(img.SecureURL); u != "" {
			out = append(out, u)
		}
	}
	return out
}

func fallback(key, retryAt string) Result {
	return Result{
		Images:     clone(FallbackImages),
		Fallback:   true,
		MessageKey: key,
		RetryAt:    retryAt,
	}
}

func (r Result) clone() Result {
	r.Images = clone(r.Images)
	return r
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
