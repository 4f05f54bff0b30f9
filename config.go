package steamgriddb

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultBaseURL is the production endpoint of the catalog API.
const DefaultBaseURL = "https://www.steamgriddb.com/api/v2"

// envPrefix namespaces environment-driven configuration,
// e.g. STEAMGRIDDB_API_KEY and STEAMGRIDDB_TIMEOUT.
const envPrefix = "STEAMGRIDDB"

// Config collects everything a Client needs. The zero value is valid and
// targets the production catalog without credentials.
type Config struct {
	// APIKey authenticates requests as a bearer token. Leave empty for
	// unauthenticated use; the catalog rejects calls that need auth.
	APIKey string `envconfig:"API_KEY"`

	// BaseURL overrides the production endpoint, mainly for tests and
	// proxies. A trailing slash is tolerated.
	BaseURL string `envconfig:"BASE_URL"`

	// Headers are attached to every request. A configured APIKey takes
	// precedence over an Authorization entry here.
	Headers map[string]string `envconfig:"HEADERS"`

	// UserAgent, when set, replaces the default User-Agent header.
	UserAgent string `envconfig:"USER_AGENT"`

	// Timeout bounds one HTTP request end to end, connection setup and
	// body included. Zero leaves the transport's behavior in place.
	Timeout time.Duration `envconfig:"TIMEOUT"`

	// Debug dumps every request and response to the logger.
	Debug bool `envconfig:"DEBUG"`
}

// ConfigFromEnv reads a Config from STEAMGRIDDB_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
