// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"sync"
	"time"

	"github.com/dalemusser/freelancehub/internal/app/system/navigation"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// DefaultSiteName is used until SetSite is called.
const DefaultSiteName = "FreelanceHub"

// DefaultTagline is the hero line under the site name.
const DefaultTagline = "Find the right developer for your next project."

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/"),
//	}
type BaseVM struct {
	SiteName string
	Tagline  string
	Year     int

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
	ShowBack    bool // render the header's back control
}

var (
	siteMu   sync.RWMutex
	siteName = DefaultSiteName
	tagline  = DefaultTagline
)

// SetSite overrides the site name and tagline. Empty values keep the
// current ones. Call this once at startup from bootstrap.
func SetSite(name, line string) {
	siteMu.Lock()
	defer siteMu.Unlock()
	if name != "" {
		siteName = name
	}
	if line != "" {
		tagline = line
	}
}

// Site returns the configured site name and tagline.
func Site() (string, string) {
	siteMu.RLock()
	defer siteMu.RUnlock()
	return siteName, tagline
}

// NewBaseVM creates a populated BaseVM for a page.
//
// BackURL is the request's "return" parameter when it is a safe directory
// URL, otherwise backDefault.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	name, line := Site()
	return BaseVM{
		SiteName:    name,
		Tagline:     line,
		Year:        time.Now().Year(),
		Title:       title,
		BackURL:     navigation.SafeBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
}
