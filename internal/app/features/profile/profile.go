// internal/app/features/profile/profile.go
package profile

import (
	"errors"
	"net/http"

	memberstore "github.com/dalemusser/freelancehub/internal/app/store/members"
	"github.com/dalemusser/freelancehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/freelancehub/internal/app/system/membercard"
	"github.com/dalemusser/freelancehub/internal/app/system/navigation"
	"github.com/dalemusser/freelancehub/internal/app/system/render"
	"github.com/dalemusser/freelancehub/internal/app/system/viewdata"
	"github.com/dalemusser/freelancehub/internal/domain/models"
	"go.uber.org/zap"
)

// ServeProfile renders one member's full profile, or the not-found page
// when the id matches nobody.
//
// GET /profile/{id}?return=<directory url>
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	id := navigation.PathParam(r, "id")

	m, err := h.Members.GetByID(id)
	if errors.Is(err, memberstore.ErrNotFound) {
		h.Log.Info("profile not found", zap.String("id", id))
		h.Counters.ProfileMissed(r.Context())
		h.renderNotFound(w, r, id)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "member lookup failed", err, "Unable to load this profile.", navigation.RootPath)
		return
	}

	h.Counters.ProfileViewed(r.Context())
	render.Page(w, r, "profile", buildProfile(r, m))
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request, id string) {
	base := viewdata.NewBaseVM(r, "Member not found", navigation.RootPath)
	render.Status(w, r, http.StatusNotFound, "profile_not_found", notFoundData{
		BaseVM:      base,
		RequestedID: id,
		HomeURL:     navigation.RootPath,
	})
}

func buildProfile(r *http.Request, m models.Member) profileData {
	base := viewdata.NewBaseVM(r, m.Name, navigation.RootPath)
	base.ShowBack = true

	data := profileData{
		BaseVM:            base,
		ID:                m.ID,
		Name:              m.Name,
		Photo:             m.Photo,
		Education:         m.Education,
		Available:         m.Available,
		Expertise:         m.Expertise,
		TechStackLine:     membercard.TechStackLine(m.TechStack),
		MailtoURL:         membercard.MailtoURL(m.Email),
		Portfolio:         m.Portfolio,
		NoProjectsMessage: NoProjectsMessage,
	}
	if m.HasBio() {
		data.HasBio = true
		data.Bio = htmlsanitize.RichText(*m.Bio)
	}
	for _, e := range m.WorkHistory {
		data.WorkHistory = append(data.WorkHistory, workItem{
			ProjectName: e.ProjectName,
			Company:     e.Company,
			Duration:    e.Duration,
			Description: htmlsanitize.RichText(e.Description),
			Link:        e.Link,
		})
	}
	return data
}
