// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/freelancehub/internal/app/system/render"
	"github.com/dalemusser/freelancehub/internal/app/system/viewdata"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Heading string
	Message string
}

// RenderNotFound shows the generic "not found" page with a message.
// If backURL is empty, it resolves a safe back URL with "/" as fallback.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderError(w, r, http.StatusNotFound, "Page not found", msg, backURL)
}

// RenderBadRequest shows the error page with a 400.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderError(w, r, http.StatusBadRequest, "Bad request", msg, backURL)
}

// RenderServerError shows the error page with a 500.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderError(w, r, http.StatusInternalServerError, "Something went wrong", msg, backURL)
}

func renderError(w http.ResponseWriter, r *http.Request, status int, heading, msg, backURL string) {
	base := viewdata.NewBaseVM(r, heading, "/")
	if backURL != "" {
		base.BackURL = backURL
	}
	base.ShowBack = true

	render.Status(w, r, status, "error_page", pageData{
		BaseVM:  base,
		Heading: heading,
		Message: msg,
	})
}
