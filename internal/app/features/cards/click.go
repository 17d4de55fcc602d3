// internal/app/features/cards/click.go
package cards

import (
	"errors"
	"net/http"
	"strings"

	memberstore "github.com/dalemusser/freelancehub/internal/app/store/members"
	"github.com/dalemusser/freelancehub/internal/app/system/membercard"
	"github.com/dalemusser/freelancehub/internal/app/system/navigation"
	"github.com/dalemusser/freelancehub/internal/app/system/uievent"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// effects records what the card's click handlers asked for. Each effect is
// turned into a redirect the browser follows. An empty address or URL
// records nothing, so the click counts as having no effect.
type effects struct {
	locations []string
}

func (e *effects) Navigate(path string)  { e.add(path) }
func (e *effects) OpenURL(rawURL string) { e.add(rawURL) }
func (e *effects) ComposeMail(address string) {
	if strings.TrimSpace(address) == "" {
		return
	}
	e.add(membercard.MailtoURL(address))
}

func (e *effects) add(location string) {
	if strings.TrimSpace(location) == "" {
		return
	}
	e.locations = append(e.locations, location)
}

var errNoEffect = errors.New("card target has no action")

// ServeClick dispatches a click on one element of a member card through the
// card's event tree and redirects to whatever the handlers requested.
//
// GET /cards/{id}/click?target=<node>&mode=<featured|compact>&return=<url>
func (h *Handler) ServeClick(w http.ResponseWriter, r *http.Request) {
	id := navigation.PathParam(r, "id")
	target := query.Get(r, "target")
	mode := membercard.ParseMode(query.Get(r, "mode"))
	ret := navigation.SafeBackURL(r, navigation.RootPath)

	m, err := h.Members.GetByID(id)
	if errors.Is(err, memberstore.ErrNotFound) {
		// The profile route renders the not-found page.
		http.Redirect(w, r, navigation.ProfilePath(id), http.StatusSeeOther)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "member lookup failed", err, "Unable to open this card.", ret)
		return
	}

	fx := &effects{}
	root := membercard.Tree(m, mode, fx, fx, ret)
	ev, err := uievent.Click(root, target)
	if errors.Is(err, uievent.ErrUnknownTarget) {
		h.Log.Info("card click on unknown target",
			zap.String("id", id),
			zap.String("target", target),
			zap.String("mode", string(mode)),
		)
		h.ErrLog.LogBadRequest(w, r, "card click on unknown target", err, "That part of the card cannot be clicked.", ret)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "card click failed", err, "Unable to open this card.", ret)
		return
	}
	if len(fx.locations) == 0 {
		h.ErrLog.LogBadRequest(w, r, "card click had no effect", errNoEffect, "This card has nothing to open there.", ret)
		return
	}

	h.Counters.CardClicked(r.Context(), target)
	h.Log.Debug("card click",
		zap.String("id", id),
		zap.String("target", target),
		zap.Strings("handled", ev.Handled()),
		zap.Bool("stopped", ev.Stopped()),
	)
	http.Redirect(w, r, fx.locations[0], http.StatusSeeOther)
}
