package membercard

import (
	"github.com/dalemusser/freelancehub/internal/app/system/navigation"
	"github.com/dalemusser/freelancehub/internal/app/system/uievent"
	"github.com/dalemusser/freelancehub/internal/domain/models"
)

// Event-tree node ids. They double as data-card-action values in markup.
const (
	NodeCard        = "card"
	NodeBody        = "body"
	NodeViewProfile = "view-profile"
	NodeContact     = "contact"
	NodePortfolio   = "portfolio"
)

// Navigator moves the visitor to another location inside the app.
type Navigator interface {
	Navigate(path string)
}

// Shell performs fire-and-forget actions outside the app.
type Shell interface {
	ComposeMail(address string)
	OpenURL(rawURL string)
}

// MailtoURL returns the mail composer URL for address.
func MailtoURL(address string) string {
	return "mailto:" + address
}

// Tree builds the click-handling tree of a card.
//
// The card root navigates to the profile. In compact mode the Contact and
// Portfolio handlers stop propagation, so a click on either reaches the
// shell and never the navigator. In featured mode every child bubbles to
// the root.
func Tree(m models.Member, mode Mode, nav Navigator, shell Shell, returnURL string) *uievent.Node {
	profile := navigation.WithReturn(navigation.ProfilePath(m.ID), returnURL)

	root := uievent.NewNode(NodeCard, func(e *uievent.Event) {
		nav.Navigate(profile)
	})
	root.Append(uievent.NewNode(NodeBody, nil))

	if mode == Compact {
		email, portfolio := m.Email, m.Portfolio
		root.Append(
			uievent.NewNode(NodeContact, func(e *uievent.Event) {
				e.StopPropagation()
				shell.ComposeMail(email)
			}),
			uievent.NewNode(NodePortfolio, func(e *uievent.Event) {
				e.StopPropagation()
				shell.OpenURL(portfolio)
			}),
		)
		return root
	}

	root.Append(uievent.NewNode(NodeViewProfile, nil))
	return root
}
