package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/freelancehub/internal/app/features/health"
	"github.com/dalemusser/freelancehub/internal/testutil"
	"go.uber.org/zap"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestServe_EmbeddedDataset(t *testing.T) {
	store := testutil.NewStore(t, testutil.SampleMembers())
	handler := health.NewHandler(store, nil, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", ct)
	}

	body := decode(t, rec)
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", body["status"])
	}
	if body["source"] != "test" {
		t.Errorf("expected source 'test', got %v", body["source"])
	}
	if body["members"] != float64(3) {
		t.Errorf("expected 3 members, got %v", body["members"])
	}
	if _, ok := body["database"]; ok {
		t.Error("database field should be omitted without a backing database")
	}
}

func TestServe_DatabaseConnected(t *testing.T) {
	store := testutil.NewStore(t, testutil.ScenarioMembers())
	var pinged bool
	handler := health.NewHandler(store, pingFunc(func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("expected ping context to carry a deadline")
		}
		pinged = true
		return nil
	}), zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if !pinged {
		t.Fatal("expected database ping")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if body := decode(t, rec); body["database"] != "connected" {
		t.Errorf("expected database 'connected', got %v", body["database"])
	}
}

func TestServe_DatabaseDown(t *testing.T) {
	store := testutil.NewStore(t, testutil.ScenarioMembers())
	handler := health.NewHandler(store, pingFunc(func(context.Context) error {
		return errors.New("connection refused")
	}), zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	body := decode(t, rec)
	if body["status"] != "error" {
		t.Errorf("expected status 'error', got %v", body["status"])
	}
	if body["database"] != "disconnected" {
		t.Errorf("expected database 'disconnected', got %v", body["database"])
	}
	if body["error"] != "connection refused" {
		t.Errorf("expected error message, got %v", body["error"])
	}
}
