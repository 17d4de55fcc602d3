// Package render writes HTML pages through the template engine.
package render

import (
	"net/http"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Func executes the named template with data into w.
type Func func(w http.ResponseWriter, r *http.Request, name string, data any)

var (
	mu      sync.RWMutex
	current Func = engine
)

func engine(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

// Use swaps the renderer and returns a function restoring the previous one.
// Tests use it to execute templates without booting the engine.
func Use(f Func) (restore func()) {
	mu.Lock()
	prev := current
	current = f
	mu.Unlock()
	return func() {
		mu.Lock()
		current = prev
		mu.Unlock()
	}
}

// Page renders name with a 200 status.
func Page(w http.ResponseWriter, r *http.Request, name string, data any) {
	Status(w, r, http.StatusOK, name, data)
}

// Status renders name with the given status code.
func Status(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	mu.RLock()
	f := current
	mu.RUnlock()

	if status != http.StatusOK {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
	}
	f(w, r, name, data)
}
