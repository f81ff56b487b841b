// Package http provides the outbound HTTP client used for external calls.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates a configured HTTP client for external API calls.
//
// Settings:
//   - Proxy: honored from environment variables (HTTP_PROXY etc.)
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - Dialer.KeepAlive: how long reusable TCP connections are kept
//   - MaxIdleConns: 100 to avoid exhaustion under load
//   - IdleConnTimeout: idle connection lifetime
//   - TLSHandshakeTimeout: cap on the HTTPS handshake
//   - Client.Timeout: whole-request timeout, supplied by the caller
//
// Note: http.DefaultClient has no timeout; always use a client built here for
// outbound calls.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
