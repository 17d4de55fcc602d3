// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	memberstore "github.com/dalemusser/freelancehub/internal/app/store/members"
	"github.com/dalemusser/freelancehub/internal/app/system/tracing"
	"github.com/dalemusser/freelancehub/internal/app/system/workers"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// Clients are set in ConnectDB. The member store is loaded in Startup,
// after EnsureSchema, and reaches BuildHandler through the shared state
// pointer because WAFFLE passes DBDeps by value.
type DBDeps struct {
	MongoClient   *mongo.Client   // nil unless data_source=mongo
	MongoDatabase *mongo.Database // nil unless data_source=mongo
	PGPool        *pgxpool.Pool   // nil unless data_source=postgres

	Source memberstore.Source

	state *appState
}

// appState is filled in by later lifecycle hooks.
type appState struct {
	members         *memberstore.Store
	counters        *tracing.Counters
	shutdownTracing tracing.ShutdownFunc
	sweeper         *workers.LimiterSweep
}

// Members returns the loaded member store, or nil before Startup.
func (d DBDeps) Members() *memberstore.Store {
	if d.state == nil {
		return nil
	}
	return d.state.members
}
