// internal/app/features/profile/types.go
package profile

import (
	"html/template"

	"github.com/dalemusser/freelancehub/internal/app/system/viewdata"
)

// NoProjectsMessage is shown when a member lists no past work.
const NoProjectsMessage = "No past projects listed."

// workItem is one rendered work history entry.
type workItem struct {
	ProjectName string
	Company     string
	Duration    string
	Description template.HTML
	Link        string
}

// profileData is the view model for a found member.
type profileData struct {
	viewdata.BaseVM

	ID            string
	Name          string
	Photo         string
	Education     string
	Available     bool
	HasBio        bool
	Bio           template.HTML
	Expertise     []string
	TechStackLine string
	MailtoURL     string
	Portfolio     string

	WorkHistory       []workItem
	NoProjectsMessage string
}

// notFoundData is the view model for an unknown member id.
type notFoundData struct {
	viewdata.BaseVM
	RequestedID string
	HomeURL     string
}
