// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework side (ports, TLS, log level); everything specific to the member
// directory lives here.
type AppConfig struct {
	// Member dataset
	DataSource string // embedded, file, mongo or postgres
	DataFile   string // JSON or YAML file (file source)

	// MongoDB (mongo source)
	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	// Postgres (postgres source)
	PostgresDSN string

	// Presentation
	SiteName        string
	Tagline         string
	BioPreviewChars int // featured card bio length in runes

	// Per-IP rate limiting; RateLimitRPS 0 disables it
	RateLimitRPS   int
	RateLimitBurst int

	// OpenTelemetry export; blank endpoint disables it
	OTelEndpoint string
	OTelInsecure bool

	// Timeouts
	TimeoutPing     time.Duration
	TimeoutLoad     time.Duration
	TimeoutShutdown time.Duration
}
