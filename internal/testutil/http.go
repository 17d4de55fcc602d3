package testutil

import (
	"html/template"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/freelancehub/internal/app/resources"
	"github.com/dalemusser/freelancehub/internal/app/system/render"
)

// UseTemplates parses the shared templates plus each feature FS with
// html/template and routes render calls through them for the rest of the
// test. Template execution errors fail the test.
func UseTemplates(t *testing.T, feature ...fs.FS) {
	t.Helper()

	tmpl := template.New("")
	for _, fsys := range append([]fs.FS{resources.FS}, feature...) {
		var err error
		tmpl, err = tmpl.ParseFS(fsys, "templates/*.gohtml")
		if err != nil {
			t.Fatalf("parse templates: %v", err)
		}
	}

	restore := render.Use(func(w http.ResponseWriter, r *http.Request, name string, data any) {
		if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
			t.Errorf("execute %s: %v", name, err)
		}
	})
	t.Cleanup(restore)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}

// AssertNotContains checks that the response body lacks s.
func (r *ResponseRecorder) AssertNotContains(t interface{ Errorf(string, ...any) }, s string) {
	if strings.Contains(r.Body.String(), s) {
		t.Errorf("response body unexpectedly contains %q", s)
	}
}
