package navigation

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// PathParam returns the decoded value of a chi URL parameter.
//
// chi matches against r.URL.RawPath when the request path carries escapes
// the default encoding would not produce (e.g. "%2F" from ProfilePath), and
// then the parameter arrives still escaped. Otherwise it is already decoded
// and must not be unescaped a second time.
func PathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if dec, err := url.PathUnescape(v); err == nil {
		return dec
	}
	return v
}
