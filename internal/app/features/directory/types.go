// internal/app/features/directory/types.go
package directory

import (
	"github.com/dalemusser/freelancehub/internal/app/system/membercard"
	"github.com/dalemusser/freelancehub/internal/app/system/viewdata"
)

// EmptyMessage replaces the card list when no member matches the filter.
const EmptyMessage = "No developers found in this category."

// filterLink is one entry of the tag bar.
type filterLink struct {
	Tag    string
	URL    string
	Active bool
}

// layoutLink switches between featured and compact cards.
type layoutLink struct {
	Label  string
	URL    string
	Active bool
}

// directoryData is the view model for the directory page.
type directoryData struct {
	viewdata.BaseVM

	Filters      []filterLink
	ActiveTag    string
	CountText    string
	Cards        []membercard.Card
	Empty        bool
	EmptyMessage string
	Layouts      []layoutLink
}
