// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	memberstore "github.com/dalemusser/freelancehub/internal/app/store/members"
	"github.com/dalemusser/freelancehub/internal/app/system/indexes"
	"github.com/dalemusser/freelancehub/internal/app/system/timeouts"
	"github.com/dalemusser/freelancehub/internal/app/system/tracing"
	"github.com/dalemusser/freelancehub/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB starts tracing, connects to the database behind the configured
// data source (if any) and selects the member source. The dataset itself is
// loaded in Startup once the schema exists.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	deps := DBDeps{state: &appState{}}

	shutdown, err := tracing.Setup(ctx, tracing.Config{
		ServiceName: appName,
		Endpoint:    appCfg.OTelEndpoint,
		Insecure:    appCfg.OTelInsecure,
	}, logger)
	if err != nil {
		return deps, err
	}
	deps.state.shutdownTracing = shutdown

	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Load(), logger, "connect data source")
	defer cancel()

	switch appCfg.DataSource {
	case memberstore.SourceMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
		if err != nil {
			return deps, fmt.Errorf("connect mongo: %w", err)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return deps, fmt.Errorf("ping mongo: %w", err)
		}
		deps.MongoClient = client
		deps.MongoDatabase = client.Database(appCfg.MongoDatabase)
		logger.Info("connected to MongoDB",
			zap.String("database", appCfg.MongoDatabase),
			zap.String("collection", appCfg.MongoCollection),
		)

	case memberstore.SourcePostgres:
		pool, err := pgxpool.New(ctx, appCfg.PostgresDSN)
		if err != nil {
			return deps, fmt.Errorf("open postgres pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return deps, fmt.Errorf("ping postgres: %w", err)
		}
		deps.PGPool = pool
		logger.Info("connected to Postgres")
	}

	src, err := memberSource(appCfg, deps)
	if err != nil {
		return deps, err
	}
	deps.Source = src
	return deps, nil
}

// memberSource picks the Source for the configured data_source.
func memberSource(appCfg AppConfig, deps DBDeps) (memberstore.Source, error) {
	switch appCfg.DataSource {
	case memberstore.SourceEmbedded:
		return memberstore.EmbeddedSource{}, nil
	case memberstore.SourceFile:
		return memberstore.FileSource{Path: appCfg.DataFile}, nil
	case memberstore.SourceMongo:
		if deps.MongoDatabase == nil {
			return nil, fmt.Errorf("%s source: no database", memberstore.SourceMongo)
		}
		return memberstore.NewMongoSource(deps.MongoDatabase, appCfg.MongoCollection), nil
	case memberstore.SourcePostgres:
		if deps.PGPool == nil {
			return nil, fmt.Errorf("%s source: no pool", memberstore.SourcePostgres)
		}
		return memberstore.PostgresSource{Pool: deps.PGPool}, nil
	}
	return nil, fmt.Errorf("%w: %q", memberstore.ErrUnknownSource, appCfg.DataSource)
}

// EnsureSchema creates the Mongo collection, validator and indexes or the
// Postgres tables the member source reads from. Embedded and file sources
// need nothing.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Load(), logger, "ensure schema")
	defer cancel()

	switch {
	case deps.MongoDatabase != nil:
		if err := validators.EnsureMembers(ctx, deps.MongoDatabase, appCfg.MongoCollection, logger); err != nil {
			logger.Error("ensure mongo validator failed", zap.Error(err))
			return err
		}
		if err := indexes.EnsureMembers(ctx, deps.MongoDatabase.Collection(appCfg.MongoCollection), logger); err != nil {
			logger.Error("ensure mongo indexes failed", zap.Error(err))
			return err
		}
		logger.Info("mongo indexes ensured", zap.String("collection", appCfg.MongoCollection))
	case deps.PGPool != nil:
		if err := memberstore.EnsurePostgresSchema(ctx, deps.PGPool); err != nil {
			logger.Error("ensure postgres schema failed", zap.Error(err))
			return err
		}
		logger.Info("postgres schema ensured")
	}
	return nil
}
