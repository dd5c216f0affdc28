// Package transport builds the HTTP clients shared by provider adapters.
// Every outbound call is bounded: image generation is slow, so the
// request budget is generous, but nothing may hang indefinitely.
package transport

import (
	"net"
	"net/http"
	"time"
)

const (
	// GenerateTimeout bounds a full generation round-trip.
	GenerateTimeout = 120 * time.Second
	// ProbeTimeout bounds lightweight key-validation probes.
	ProbeTimeout = 30 * time.Second
	// connectTimeout bounds TCP connection establishment.
	connectTimeout = 30 * time.Second
)

// NewClient returns an HTTP client with the given overall timeout and a
// bounded connect phase.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext:         (&net.Dialer{Timeout: connectTimeout}).DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}
