package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddleware_MintsID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var seen string
	h := Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile/p1", nil))

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected a UUID in context, got %q", seen)
	}
	if got := rec.Header().Get(Header); got != seen {
		t.Errorf("response header %q does not match context id %q", got, seen)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 access log line, got %d", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("status field = %v", fields["status"])
	}
	if fields["path"] != "/profile/p1" {
		t.Errorf("path field = %v", fields["path"])
	}
}

func TestMiddleware_ReusesValidIncomingID(t *testing.T) {
	in := uuid.NewString()
	var seen string
	h := Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(Header, in)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != in {
		t.Errorf("expected incoming id %q, got %q", in, seen)
	}
}

func TestMiddleware_ReplacesGarbageID(t *testing.T) {
	var seen string
	h := Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(Header, "<script>")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen == "<script>" {
		t.Error("malformed incoming id should be replaced")
	}
}

func TestFromContext_Empty(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := FromContext(r.Context()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}
