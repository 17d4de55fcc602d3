// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	memberstore "github.com/dalemusser/freelancehub/internal/app/store/members"
	"github.com/dalemusser/freelancehub/internal/app/system/membercard"
	"github.com/dalemusser/freelancehub/internal/app/system/timeouts"
	"github.com/dalemusser/freelancehub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for FreelanceHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: data_source, mongo_uri, etc.
//   - Environment variables: FREELANCEHUB_DATA_SOURCE, FREELANCEHUB_MONGO_URI, etc.
//   - Command-line flags: --data_source, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "data_source", Default: memberstore.SourceEmbedded, Desc: "Member dataset: 'embedded', 'file', 'mongo' or 'postgres'"},
	{Name: "data_file", Default: "", Desc: "Path to a JSON or YAML member file (data_source=file)"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (data_source=mongo)"},
	{Name: "mongo_database", Default: "freelancehub", Desc: "MongoDB database name"},
	{Name: "mongo_collection", Default: "members", Desc: "MongoDB collection holding member documents"},

	{Name: "postgres_dsn", Default: "", Desc: "Postgres connection string (data_source=postgres)"},

	{Name: "site_name", Default: viewdata.DefaultSiteName, Desc: "Site name shown in the header"},
	{Name: "site_tagline", Default: viewdata.DefaultTagline, Desc: "Hero line on the directory page"},
	{Name: "bio_preview_chars", Default: membercard.DefaultPreviewLimit, Desc: "Featured card biography length in characters"},

	{Name: "rate_limit_rps", Default: 20, Desc: "Requests per second per client IP (0 disables)"},
	{Name: "rate_limit_burst", Default: 40, Desc: "Burst size per client IP"},

	{Name: "otel_endpoint", Default: "", Desc: "OTLP/HTTP collector host:port (blank disables tracing)"},
	{Name: "otel_insecure", Default: false, Desc: "Use plain HTTP for the OTLP exporter"},

	{Name: "timeout_ping", Default: "2s", Desc: "Health check database ping timeout"},
	{Name: "timeout_load", Default: "30s", Desc: "Dataset connect and load timeout"},
	{Name: "timeout_shutdown", Default: "10s", Desc: "Database disconnect timeout"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, FREELANCEHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "FREELANCEHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DataSource: strings.ToLower(strings.TrimSpace(appValues.String("data_source"))),
		DataFile:   appValues.String("data_file"),

		MongoURI:        appValues.String("mongo_uri"),
		MongoDatabase:   appValues.String("mongo_database"),
		MongoCollection: appValues.String("mongo_collection"),

		PostgresDSN: appValues.String("postgres_dsn"),

		SiteName:        appValues.String("site_name"),
		Tagline:         appValues.String("site_tagline"),
		BioPreviewChars: appValues.Int("bio_preview_chars"),

		RateLimitRPS:   appValues.Int("rate_limit_rps"),
		RateLimitBurst: appValues.Int("rate_limit_burst"),

		OTelEndpoint: appValues.String("otel_endpoint"),
		OTelInsecure: appValues.Bool("otel_insecure"),

		TimeoutPing:     appValues.Duration("timeout_ping", timeouts.DefaultPing),
		TimeoutLoad:     appValues.Duration("timeout_load", timeouts.DefaultLoad),
		TimeoutShutdown: appValues.Duration("timeout_shutdown", timeouts.DefaultShutdown),
	}

	timeouts.Configure(timeouts.Config{
		Ping:     appCfg.TimeoutPing,
		Load:     appCfg.TimeoutLoad,
		Shutdown: appCfg.TimeoutShutdown,
	})
	logger.Info("timeouts configured",
		zap.Duration("ping", timeouts.Ping()),
		zap.Duration("load", timeouts.Load()),
		zap.Duration("shutdown", timeouts.Shutdown()),
	)

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Each data source is checked for the settings it needs so that a typo
// fails fast instead of at first connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAppConfig(appCfg); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}
	return nil
}

func validateAppConfig(appCfg AppConfig) error {
	switch appCfg.DataSource {
	case memberstore.SourceEmbedded:
	case memberstore.SourceFile:
		if strings.TrimSpace(appCfg.DataFile) == "" {
			return errors.New("data_source=file requires data_file")
		}
	case memberstore.SourceMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" || appCfg.MongoCollection == "" {
			return errors.New("data_source=mongo requires mongo_database and mongo_collection")
		}
	case memberstore.SourcePostgres:
		if appCfg.PostgresDSN == "" {
			return errors.New("data_source=postgres requires postgres_dsn")
		}
		if _, err := pgxpool.ParseConfig(appCfg.PostgresDSN); err != nil {
			return fmt.Errorf("invalid postgres_dsn: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", memberstore.ErrUnknownSource, appCfg.DataSource)
	}

	if appCfg.BioPreviewChars < 0 {
		return fmt.Errorf("bio_preview_chars must not be negative (got %d)", appCfg.BioPreviewChars)
	}
	if appCfg.RateLimitRPS < 0 || appCfg.RateLimitBurst < 0 {
		return errors.New("rate_limit_rps and rate_limit_burst must not be negative")
	}
	if appCfg.TimeoutPing < 0 || appCfg.TimeoutLoad < 0 || appCfg.TimeoutShutdown < 0 {
		return errors.New("timeout_ping, timeout_load and timeout_shutdown must not be negative")
	}
	return nil
}
