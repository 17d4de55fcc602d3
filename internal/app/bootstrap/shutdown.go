// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/freelancehub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cleanly tears down DB connections and other resources.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Shutdown())
	defer cancel()

	var errs []error

	if deps.state != nil && deps.state.sweeper != nil {
		deps.state.sweeper.Stop()
	}
	if deps.MongoClient != nil {
		logger.Info("disconnecting MongoDB client")
		if err := deps.MongoClient.Disconnect(ctx); err != nil {
			logger.Error("MongoDB disconnect failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	if deps.PGPool != nil {
		logger.Info("closing Postgres pool")
		deps.PGPool.Close()
	}
	if deps.state != nil && deps.state.shutdownTracing != nil {
		if err := deps.state.shutdownTracing(ctx); err != nil {
			logger.Error("tracer provider shutdown failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
