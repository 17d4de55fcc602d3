// Package navigation builds the app's internal URLs and resolves safe
// return targets.
//
// The app has two screens: the directory at "/" and a profile per member at
// "/profile/{id}". A profile link carries the directory URL it came from in
// a "return" parameter so the back control restores the active filter.
package navigation

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/freelancehub/internal/app/system/expertise"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// RootPath is the directory view.
const RootPath = "/"

// DirectoryPath returns the directory URL with tag selected.
func DirectoryPath(tag string) string {
	if tag == "" || tag == expertise.All {
		return RootPath
	}
	return RootPath + "?expertise=" + url.QueryEscape(tag)
}

// ProfilePath returns the profile URL for a member id.
func ProfilePath(id string) string {
	return "/profile/" + url.PathEscape(id)
}

// WithReturn appends a return parameter to path unless ret is the root.
func WithReturn(path, ret string) string {
	if ret == "" || ret == RootPath {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "return=" + url.QueryEscape(ret)
}

// CardClickPath returns the server-side activation URL for a card element.
func CardClickPath(id, mode, target, ret string) string {
	v := url.Values{}
	v.Set("mode", mode)
	v.Set("target", target)
	if ret != "" && ret != RootPath {
		v.Set("return", ret)
	}
	return "/cards/" + url.PathEscape(id) + "/click?" + v.Encode()
}

// SafeBackURL returns the request's return parameter when it is a safe
// local path under the directory, otherwise fallback.
func SafeBackURL(r *http.Request, fallback string) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" || !strings.HasPrefix(ret, RootPath) || strings.HasPrefix(ret, "//") || strings.HasPrefix(ret, "/cards/") {
		return fallback
	}
	return ret
}
