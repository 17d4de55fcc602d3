// Package membercard builds the member card shown in the directory.
//
// A card has two mutually exclusive modes. Featured cards summarise a member
// and carry a "view full profile" affordance; the whole surface navigates to
// the profile. Compact cards show the full tag list and two actions, Contact
// and Portfolio, which must never trigger the card's own navigation.
package membercard

import (
	"strings"

	"github.com/dalemusser/freelancehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/freelancehub/internal/app/system/navigation"
	"github.com/dalemusser/freelancehub/internal/domain/models"
)

// Mode selects the card layout.
type Mode string

const (
	Featured Mode = "featured"
	Compact  Mode = "compact"
)

// ParseMode maps a query value to a Mode, defaulting to Featured.
func ParseMode(s string) Mode {
	if Mode(strings.ToLower(strings.TrimSpace(s))) == Compact {
		return Compact
	}
	return Featured
}

const (
	// MaxFeaturedTags is how many expertise tags a featured card shows.
	MaxFeaturedTags = 3
	// DefaultPreviewLimit is the featured biography length in runes.
	DefaultPreviewLimit = 160

	staggerMS = 100
)

// Options tune Build. The zero value is usable.
type Options struct {
	PreviewLimit int    // runes of biography in featured mode; 0 means DefaultPreviewLimit
	ReturnURL    string // directory URL the card was rendered on
}

// Action is a button that leaves the card (mail composer, external link).
type Action struct {
	Label     string
	Node      string // event-tree node id
	Href      string // server-side activation URL
	NewWindow bool
}

// Card is the view model consumed by the member_card template.
type Card struct {
	ID        string
	Mode      Mode
	Name      string
	Photo     string
	Education string
	Available bool

	HasBio     bool
	BioPreview string

	Expertise     []string
	HiddenTags    int // tags left out in featured mode
	TechStackLine string

	// ProfileURL is where the card surface navigates.
	ProfileURL string
	// BodyHref is the no-script activation URL for the card surface.
	BodyHref string

	ShowViewProfile bool
	Actions         []Action
	// Targets of the compact actions, read by the card script.
	Email     string
	Portfolio string

	AnimationDelayMS int
}

// IsFeatured reports whether the card renders in featured mode.
func (c Card) IsFeatured() bool { return c.Mode == Featured }

// IsCompact reports whether the card renders in compact mode.
func (c Card) IsCompact() bool { return c.Mode == Compact }

// Build is a pure function of the member, mode and index. index only feeds
// the staggered animation delay.
func Build(m models.Member, mode Mode, index int, opts Options) Card {
	if mode != Compact {
		mode = Featured
	}
	limit := opts.PreviewLimit
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}

	c := Card{
		ID:               m.ID,
		Mode:             mode,
		Name:             m.Name,
		Photo:            m.Photo,
		Education:        m.Education,
		Available:        m.Available,
		TechStackLine:    TechStackLine(m.TechStack),
		ProfileURL:       navigation.WithReturn(navigation.ProfilePath(m.ID), opts.ReturnURL),
		BodyHref:         navigation.CardClickPath(m.ID, string(mode), NodeBody, opts.ReturnURL),
		AnimationDelayMS: index * staggerMS,
	}

	switch mode {
	case Featured:
		c.Expertise, c.HiddenTags = firstTags(m.Expertise, MaxFeaturedTags)
		if m.HasBio() {
			c.HasBio = true
			c.BioPreview = htmlsanitize.Preview(*m.Bio, limit)
		}
		c.ShowViewProfile = true
	case Compact:
		c.Expertise = append([]string(nil), m.Expertise...)
		c.Email = m.Email
		c.Portfolio = m.Portfolio
		c.Actions = []Action{
			{
				Label: "Contact",
				Node:  NodeContact,
				Href:  navigation.CardClickPath(m.ID, string(mode), NodeContact, opts.ReturnURL),
			},
			{
				Label:     "Portfolio",
				Node:      NodePortfolio,
				Href:      navigation.CardClickPath(m.ID, string(mode), NodePortfolio, opts.ReturnURL),
				NewWindow: true,
			},
		}
	}
	return c
}

// TechStackLine joins a tech stack for display.
func TechStackLine(stack []string) string {
	return strings.Join(stack, ", ")
}

func firstTags(tags []string, max int) ([]string, int) {
	if len(tags) <= max {
		return append([]string(nil), tags...), 0
	}
	return append([]string(nil), tags[:max]...), len(tags) - max
}
