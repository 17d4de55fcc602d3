// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/freelancehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Dataset reports where the member collection came from and its size.
type Dataset interface {
	Source() string
	Len() int
}

// Pinger checks that a backing database is reachable.
// *pgxpool.Pool satisfies it directly.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MongoPinger pings a Mongo deployment's primary.
type MongoPinger struct {
	Client *mongo.Client
}

func (p MongoPinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, readpref.Primary())
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Data Dataset
	DB   Pinger // nil when the dataset is embedded or file based
	Log  *zap.Logger
}

// NewHandler constructs a health Handler. db may be nil.
func NewHandler(data Dataset, db Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		Data: data,
		DB:   db,
		Log:  logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Source   string `json:"source"`
	Members  int    `json:"members"`
	Database string `json:"database,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "source":"mongo", "members":12, "database":"connected" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…" }
//
// The database field is omitted for embedded and file sources.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:  "ok",
		Source:  h.Data.Source(),
		Members: h.Data.Len(),
	}

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
		defer cancel()

		if err := h.DB.Ping(ctx); err != nil {
			h.Log.Error("health-check: database ping failed",
				zap.String("source", resp.Source),
				zap.Error(err),
			)
			w.WriteHeader(http.StatusServiceUnavailable)
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Message = "Database unavailable"
			resp.Error = err.Error()
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		resp.Database = "connected"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
