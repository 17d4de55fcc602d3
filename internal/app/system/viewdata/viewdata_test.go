package viewdata

import (
	"net/http/httptest"
	"testing"
)

func TestNewBaseVM_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/profile/p1", nil)
	vm := NewBaseVM(r, "Ada Lovelace", "/")

	if vm.SiteName != DefaultSiteName {
		t.Errorf("SiteName = %q, want %q", vm.SiteName, DefaultSiteName)
	}
	if vm.Title != "Ada Lovelace" {
		t.Errorf("Title = %q", vm.Title)
	}
	if vm.BackURL != "/" {
		t.Errorf("BackURL = %q, want /", vm.BackURL)
	}
	if vm.Year < 2024 {
		t.Errorf("Year = %d", vm.Year)
	}
}

func TestNewBaseVM_ReturnParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/profile/p1?return=%2F%3Fexpertise%3DData", nil)
	vm := NewBaseVM(r, "", "/")
	if vm.BackURL != "/?expertise=Data" {
		t.Errorf("BackURL = %q, want /?expertise=Data", vm.BackURL)
	}

	r = httptest.NewRequest("GET", "/profile/p1?return=https%3A%2F%2Fevil.example", nil)
	vm = NewBaseVM(r, "", "/")
	if vm.BackURL != "/" {
		t.Errorf("external return should fall back, got %q", vm.BackURL)
	}
}

func TestSetSite(t *testing.T) {
	t.Cleanup(func() { SetSite(DefaultSiteName, DefaultTagline) })

	SetSite("DevBoard", "")
	name, line := Site()
	if name != "DevBoard" {
		t.Errorf("name = %q", name)
	}
	if line != DefaultTagline {
		t.Errorf("empty tagline should keep default, got %q", line)
	}
}
