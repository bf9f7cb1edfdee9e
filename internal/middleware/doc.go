// Package middleware provides HTTP middleware for the video player API.
//
// Logger writes one access line per request in W3C Extended Log Format and
// tags each request with an X-Request-ID. Metrics records Prometheus request
// counters and latencies keyed by the matched route template.
package middleware
