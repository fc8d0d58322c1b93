package app

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charleschyna/movesmart-ke-system-sub001/internal/metrics"
)

// latencyTrackingRoundTripper wraps another RoundTripper to measure the
// latency of each outgoing provider request and export it to Prometheus,
// labeled by URL, method, and response status.
type latencyTrackingRoundTripper struct {
	next http.RoundTripper
}

// RoundTrip implements the http.RoundTripper interface.
func (rt *latencyTrackingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := rt.next.RoundTrip(req)
	duration := time.Since(start).Seconds()

	// Default to "error" if the request failed or response is nil
	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	// Normalized URL label (scheme + host + path); query params carry the
	// provider key and must never reach a metric label.
	safeURL := req.URL.Scheme + "://" + req.URL.Host + req.URL.Path

	metrics.OutgoingLatency.WithLabelValues(
		safeURL,
		req.Method,
		status,
	).Observe(duration)

	return resp, err
}

// NewPooledClient returns an HTTP client tuned for polling provider APIs
// every 30 seconds.
//
// Connection reuse matters here: each collection pass issues one flow request
// per sampling point plus an incident request per city against the same
// provider host, so idle keep-alive connections avoid repeated TCP/TLS
// handshakes between passes.
//
//   - MaxIdleConns 100 / MaxIdleConnsPerHost 10: the provider is a single
//     host, so the per-host pool is what actually bounds churn.
//   - IdleConnTimeout 90s: longer than the 30s collection interval so
//     connections survive between passes.
//   - DialContext timeout 5s, TLS handshake 5s: fail fast on an unreachable
//     provider instead of stalling the whole pass.
//   - Client timeout 10s: total request budget; a timed-out point is treated
//     like any other failed point.
//
// The transport is wrapped with latencyTrackingRoundTripper so all provider
// calls are measured.
func NewPooledClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	instrumentedTransport := &latencyTrackingRoundTripper{next: transport}

	client := &http.Client{
		Transport: instrumentedTransport,
		Timeout:   10 * time.Second,
	}
	return client
}
