package middleware

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

// CachedPromHandler wraps promhttp.HandlerFor with a caching layer.
//
// Prometheus scrapes /metrics frequently; each scrape gathers and serializes
// every registered metric. With per-road gauges for every configured city the
// exposition is large enough to be worth precomputing. The handler refreshes
// the exposition at a fixed interval and serves the cached bytes to all
// scrapers.
type CachedPromHandler struct {
	mu    sync.RWMutex  // Guards concurrent access to cache
	cache []byte        // Holds the precomputed metrics exposition
	ttl   time.Duration // Refresh interval for the cache
	h     http.Handler  // Underlying promhttp handler used for actual gathering
}

// NewCachedPromHandler creates a CachedPromHandler and starts its refresh
// loop. The ttl should be at most the scrape interval; the context stops the
// loop on shutdown.
func NewCachedPromHandler(ctx context.Context, gatherer prometheus.Gatherer, ttl time.Duration) *CachedPromHandler {
	c := &CachedPromHandler{
		ttl: ttl,
		h:   promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
	}

	go c.refreshLoop(ctx)
	return c
}

func (c *CachedPromHandler) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var buf bytes.Buffer
			rec := &responseRecorder{buf: &buf}
			c.h.ServeHTTP(rec, nil)

			c.mu.Lock()
			c.cache = buf.Bytes()
			c.mu.Unlock()
		}
	}
}

// ServeHTTP serves the cached exposition. Right after startup, before the
// first refresh, it falls back to the live promhttp handler.
func (c *CachedPromHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.cache) == 0 {
		c.h.ServeHTTP(w, r)
		return
	}
	// Use the Prometheus-provided constant for the text exposition format
	// (version=0.0.4) instead of hardcoding the content type.
	w.Header().Set("Content-Type", string(expfmt.NewFormat(expfmt.TypeTextPlain)))
	_, _ = w.Write(c.cache)
}

// responseRecorder is a minimal http.ResponseWriter that captures the
// promhttp output into a buffer for caching. Status codes are ignored since
// a successful gather is always 200 OK.
type responseRecorder struct {
	buf *bytes.Buffer
}

func (rr *responseRecorder) Write(b []byte) (int, error) { return rr.buf.Write(b) }
func (rr *responseRecorder) Header() http.Header         { return http.Header{} }
func (rr *responseRecorder) WriteHeader(statusCode int)  {}
