package navigation_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/freelancehub/internal/app/system/navigation"
)

func TestDirectoryPath(t *testing.T) {
	cases := map[string]string{
		"":             "/",
		"All":          "/",
		"Data":         "/?expertise=Data",
		"UI/UX Design": "/?expertise=UI%2FUX+Design",
	}
	for tag, want := range cases {
		if got := navigation.DirectoryPath(tag); got != want {
			t.Errorf("DirectoryPath(%q): got %q, want %q", tag, got, want)
		}
	}
}

func TestProfilePath(t *testing.T) {
	if got := navigation.ProfilePath("42"); got != "/profile/42" {
		t.Errorf("got %q", got)
	}
	if got := navigation.ProfilePath("a b"); got != "/profile/a%20b" {
		t.Errorf("got %q", got)
	}
}

func TestWithReturn(t *testing.T) {
	if got := navigation.WithReturn("/profile/1", "/"); got != "/profile/1" {
		t.Errorf("root return should be dropped, got %q", got)
	}
	if got := navigation.WithReturn("/profile/1", ""); got != "/profile/1" {
		t.Errorf("empty return should be dropped, got %q", got)
	}
	if got := navigation.WithReturn("/profile/1", "/?expertise=Data"); got != "/profile/1?return=%2F%3Fexpertise%3DData" {
		t.Errorf("got %q", got)
	}
	if got := navigation.WithReturn("/x?a=1", "/?expertise=Data"); got != "/x?a=1&return=%2F%3Fexpertise%3DData" {
		t.Errorf("got %q", got)
	}
}

func TestCardClickPath(t *testing.T) {
	got := navigation.CardClickPath("7", "compact", "contact", "/")
	if got != "/cards/7/click?mode=compact&target=contact" {
		t.Errorf("got %q", got)
	}
	got = navigation.CardClickPath("7", "featured", "body", "/?expertise=Web")
	if got != "/cards/7/click?mode=featured&return=%2F%3Fexpertise%3DWeb&target=body" {
		t.Errorf("got %q", got)
	}
}

func TestSafeBackURL_Fallback(t *testing.T) {
	req := httptest.NewRequest("GET", "/profile/1", nil)
	if got := navigation.SafeBackURL(req, "/"); got != "/" {
		t.Errorf("got %q", got)
	}
}

func TestSafeBackURL_RejectsExternal(t *testing.T) {
	req := httptest.NewRequest("GET", "/profile/1?return=https%3A%2F%2Fevil.example.com", nil)
	if got := navigation.SafeBackURL(req, "/"); got != "/" {
		t.Errorf("external return must be rejected, got %q", got)
	}
}

func TestSafeBackURL_RejectsProtocolRelative(t *testing.T) {
	req := httptest.NewRequest("GET", "/profile/1?return=%2F%2Fevil.example.com", nil)
	if got := navigation.SafeBackURL(req, "/"); got != "/" {
		t.Errorf("protocol-relative return must be rejected, got %q", got)
	}
}
