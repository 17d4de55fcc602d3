// internal/app/features/directory/directory.go
package directory

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/freelancehub/internal/app/system/expertise"
	"github.com/dalemusser/freelancehub/internal/app/system/membercard"
	"github.com/dalemusser/freelancehub/internal/app/system/navigation"
	"github.com/dalemusser/freelancehub/internal/app/system/render"
	"github.com/dalemusser/freelancehub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// ServeDirectory renders the tag bar, the count line and the cards of every
// member matching the selected expertise.
//
// GET /?expertise=<tag>&layout=<featured|compact>
func (h *Handler) ServeDirectory(w http.ResponseWriter, r *http.Request) {
	active := expertise.Normalize(query.Get(r, "expertise"))
	mode := membercard.ParseMode(query.Get(r, "layout"))

	all := h.Members.All()
	visible := expertise.Filter(all, active)
	here := directoryURL(active, mode)

	cards := make([]membercard.Card, 0, len(visible))
	for i, m := range visible {
		cards = append(cards, membercard.Build(m, mode, i, membercard.Options{
			PreviewLimit: h.PreviewLimit,
			ReturnURL:    here,
		}))
	}

	h.Log.Debug("directory rendered",
		zap.String("expertise", active),
		zap.String("layout", string(mode)),
		zap.Int("visible", len(visible)),
		zap.Int("total", len(all)),
	)

	render.Page(w, r, "directory", directoryData{
		BaseVM:       viewdata.NewBaseVM(r, "", navigation.RootPath),
		Filters:      filterLinks(expertise.Universe(all), active, mode),
		ActiveTag:    active,
		CountText:    CountText(len(visible)),
		Cards:        cards,
		Empty:        len(visible) == 0,
		EmptyMessage: EmptyMessage,
		Layouts:      layoutLinks(active, mode),
	})
}

// CountText is the "Showing N developer(s)" line. Only exactly one is
// singular.
func CountText(n int) string {
	if n == 1 {
		return "Showing 1 developer"
	}
	return fmt.Sprintf("Showing %d developers", n)
}

func filterLinks(universe []string, active string, mode membercard.Mode) []filterLink {
	links := make([]filterLink, 0, len(universe))
	for _, tag := range universe {
		links = append(links, filterLink{
			Tag:    tag,
			URL:    directoryURL(tag, mode),
			Active: tag == active,
		})
	}
	return links
}

func layoutLinks(active string, mode membercard.Mode) []layoutLink {
	return []layoutLink{
		{Label: "Featured", URL: directoryURL(active, membercard.Featured), Active: mode == membercard.Featured},
		{Label: "Compact", URL: directoryURL(active, membercard.Compact), Active: mode == membercard.Compact},
	}
}

// directoryURL is the directory with tag selected; compact layout is kept
// as a query parameter, featured is the default and stays implicit.
func directoryURL(tag string, mode membercard.Mode) string {
	p := navigation.DirectoryPath(tag)
	if mode != membercard.Compact {
		return p
	}
	if strings.Contains(p, "?") {
		return p + "&layout=compact"
	}
	return p + "?layout=compact"
}
