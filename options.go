package steamgriddb

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction.
//
// Options apply in order after the Config, so a later option can override
// an earlier one. They must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPClient replaces the underlying http.Client, for custom
// transports, proxies or test instrumentation. The client must be
// non-nil.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request (including connection, TLS handshake, redirects, and reading
// the response). The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithBaseURL points the client at a different catalog endpoint, such as
// a test server. The URL must be absolute.
func WithBaseURL(rawURL string) Option {
	return func(c *Client) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("base url: %w", err)
		}
		if !u.IsAbs() {
			return fmt.Errorf("base url %q must be absolute", rawURL)
		}
		c.cfg.BaseURL = rawURL
		return nil
	}
}

// WithHeader attaches one header to every request. A configured API key
// still wins an Authorization conflict.
func WithHeader(key, value string) Option {
	return func(c *Client) error {
		if key == "" {
			return fmt.Errorf("header key must not be empty")
		}
		if c.cfg.Headers == nil {
			c.cfg.Headers = make(map[string]string)
		}
		c.cfg.Headers[key] = value
		return nil
	}
}

// WithUserAgent replaces the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.cfg.UserAgent = ua
		return nil
	}
}

// WithLogger replaces the client's logger. The default is the process
// global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = l
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is dumped to the logger when enabled is true. Applying the option more
// than once wraps the transport a single time.
//
// Do not enable this option in production environments: dumps include
// headers and full bodies, the Authorization header among them.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		if _, ok := c.http.Transport.(*debugTransport); ok {
			return nil
		}
		c.http.Transport = &debugTransport{base: c.http.Transport, log: c.log}
		return nil
	}
}
