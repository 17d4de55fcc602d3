package errors_test

import (
	"errors"
	"net/http"
	"testing"

	uierrors "github.com/dalemusser/freelancehub/internal/app/features/errors"
	"github.com/dalemusser/freelancehub/internal/app/system/requestid"
	"github.com/dalemusser/freelancehub/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNotFound(t *testing.T) {
	testutil.UseTemplates(t, uierrors.FS)
	h := uierrors.NewHandler()

	rec := testutil.NewRecorder()
	h.NotFound(rec, testutil.NewRequest(http.MethodGet, "/nope"))

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Page not found")
	rec.AssertContains(t, `href="/">Go back<`)
}

func TestMethodNotAllowed(t *testing.T) {
	testutil.UseTemplates(t, uierrors.FS)
	h := uierrors.NewHandler()

	rec := testutil.NewRecorder()
	h.MethodNotAllowed(rec, testutil.NewRequest(http.MethodPost, "/"))

	rec.AssertStatus(t, http.StatusMethodNotAllowed)
}

func TestErrorLogger_LogServerError(t *testing.T) {
	testutil.UseTemplates(t, uierrors.FS)
	core, logs := observer.New(zap.InfoLevel)
	errLog := uierrors.NewErrorLogger(zap.New(core))

	req := testutil.NewRequest(http.MethodGet, "/profile/p1")
	req = req.WithContext(requestid.WithID(req.Context(), "req-1"))
	rec := testutil.NewRecorder()
	errLog.LogServerError(rec, req, "member lookup failed", errors.New("boom"), "Unable to load this profile.", "/")

	rec.AssertStatus(t, http.StatusInternalServerError)
	rec.AssertContains(t, "Unable to load this profile.")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Level != zap.ErrorLevel {
		t.Errorf("expected error level, got %v", entry.Level)
	}
	if entry.ContextMap()["request_id"] != "req-1" {
		t.Errorf("request_id = %v", entry.ContextMap()["request_id"])
	}
}

func TestErrorLogger_LogBadRequest(t *testing.T) {
	testutil.UseTemplates(t, uierrors.FS)
	core, logs := observer.New(zap.InfoLevel)
	errLog := uierrors.NewErrorLogger(zap.New(core))

	rec := testutil.NewRecorder()
	errLog.LogBadRequest(rec, testutil.NewRequest(http.MethodGet, "/"), "bad input", errors.New("nope"), "Invalid request.", "")

	rec.AssertStatus(t, http.StatusBadRequest)
	if logs.Len() != 1 || logs.All()[0].Level != zap.WarnLevel {
		t.Error("expected one warn entry")
	}
}
