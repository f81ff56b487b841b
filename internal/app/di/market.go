// Package di provides dependency injection factories for creating application
// components.
package di

import (
	"research_backend/internal/feature/bars/adapters/upstream"
	infrahttp "research_backend/internal/platform/http"
)

// NewUpstreamClient creates a fully configured upstream market-data client
// with its tuned HTTP client.
func NewUpstreamClient() *upstream.Client {
	cfg := upstream.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return upstream.NewClient(cfg, httpClient)
}
