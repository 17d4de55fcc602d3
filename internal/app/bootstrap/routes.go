// internal/app/bootstrap/routes.go
package bootstrap

import (
	"errors"
	"net/http"
	"time"

	cardsfeature "github.com/dalemusser/freelancehub/internal/app/features/cards"
	directoryfeature "github.com/dalemusser/freelancehub/internal/app/features/directory"
	errorsfeature "github.com/dalemusser/freelancehub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/freelancehub/internal/app/features/health"
	profilefeature "github.com/dalemusser/freelancehub/internal/app/features/profile"
	memberstore "github.com/dalemusser/freelancehub/internal/app/store/members"
	"github.com/dalemusser/freelancehub/internal/app/system/ratelimit"
	"github.com/dalemusser/freelancehub/internal/app/system/requestid"
	"github.com/dalemusser/freelancehub/internal/app/system/tracing"
	"github.com/dalemusser/freelancehub/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed, so the member dataset is already loaded.
// BuildHandler boots the template engine and mounts the feature routers:
// directory, profile, card activation, health and static assets.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	store := deps.Members()
	if store == nil {
		return nil, errors.New("build handler: member dataset not loaded")
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	limiter := ratelimit.New(float64(appCfg.RateLimitRPS), appCfg.RateLimitBurst)
	if limiter.Enabled() {
		deps.state.sweeper = workers.NewLimiterSweep(limiter, logger, time.Minute)
		deps.state.sweeper.Start()
	}

	return newRouter(routerDeps{
		Members:      store,
		DB:           databasePinger(deps),
		Counters:     deps.state.counters,
		Limiter:      limiter,
		PreviewLimit: appCfg.BioPreviewChars,
	}, logger), nil
}

// routerDeps is everything the router needs once the dataset is loaded.
type routerDeps struct {
	Members      *memberstore.Store
	DB           healthfeature.Pinger
	Counters     *tracing.Counters
	Limiter      *ratelimit.Limiter
	PreviewLimit int
}

func newRouter(d routerDeps, logger *zap.Logger) chi.Router {
	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()
	r.Use(requestid.Middleware(logger))
	r.Use(tracing.Middleware)
	if d.Limiter != nil {
		r.Use(d.Limiter.Middleware(logger))
	}

	// Set before mounting so subrouters inherit them.
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(d.Members, d.DB, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	profileHandler := profilefeature.NewHandler(d.Members, d.Counters, errLog, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler))

	cardsHandler := cardsfeature.NewHandler(d.Members, d.Counters, errLog, logger)
	r.Mount("/cards", cardsfeature.Routes(cardsHandler))

	directoryHandler := directoryfeature.NewHandler(d.Members, d.PreviewLimit, logger)
	r.Mount("/", directoryfeature.Routes(directoryHandler))

	return r
}

// databasePinger returns the health check target for the active source.
func databasePinger(deps DBDeps) healthfeature.Pinger {
	switch {
	case deps.MongoClient != nil:
		return healthfeature.MongoPinger{Client: deps.MongoClient}
	case deps.PGPool != nil:
		return deps.PGPool
	}
	return nil
}
