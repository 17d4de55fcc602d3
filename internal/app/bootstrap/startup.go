// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/freelancehub/internal/app/resources"
	memberstore "github.com/dalemusser/freelancehub/internal/app/store/members"
	"github.com/dalemusser/freelancehub/internal/app/system/timeouts"
	"github.com/dalemusser/freelancehub/internal/app/system/tracing"
	"github.com/dalemusser/freelancehub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It loads
// shared templates and site settings and reads the member dataset. The
// dataset is never reloaded.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.SetSite(appCfg.SiteName, appCfg.Tagline)

	if deps.state == nil || deps.Source == nil {
		return errors.New("startup: ConnectDB did not select a member source")
	}

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Load(), logger, "load members")
	defer cancel()

	store, err := memberstore.Open(ctx, deps.Source)
	if err != nil {
		logger.Error("member dataset load failed",
			zap.String("source", deps.Source.Name()),
			zap.Error(err),
		)
		return err
	}
	deps.state.members = store

	counters, err := tracing.NewCounters()
	if err != nil {
		logger.Warn("metric instruments unavailable", zap.Error(err))
	}
	deps.state.counters = counters

	logger.Info("member dataset loaded",
		zap.String("source", store.Source()),
		zap.Int("members", store.Len()),
	)
	return nil
}
