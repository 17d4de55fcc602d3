// internal/domain/models/member.go
package models

import "strings"

// Member is one person listed in the directory.
//
// Members are loaded once at startup and never mutated afterwards. ID is the
// stable key used by the profile route (/profile/{id}) and must be unique
// within the collection.
type Member struct {
	ID          string             `bson:"id" json:"id" yaml:"id"`
	Name        string             `bson:"name" json:"name" yaml:"name"`
	Photo       string             `bson:"photo" json:"photo" yaml:"photo"`
	Expertise   []string           `bson:"expertise" json:"expertise" yaml:"expertise"` // display order
	TechStack   []string           `bson:"tech_stack" json:"techStack" yaml:"techStack"`
	Portfolio   string             `bson:"portfolio" json:"portfolio" yaml:"portfolio"`
	Education   string             `bson:"education" json:"education" yaml:"education"`
	Email       string             `bson:"email" json:"email" yaml:"email"`
	Available   bool               `bson:"available" json:"available" yaml:"available"`
	Bio         *string            `bson:"bio,omitempty" json:"bio,omitempty" yaml:"bio,omitempty"` // nil means no biography
	WorkHistory []WorkHistoryEntry `bson:"work_history" json:"workHistory" yaml:"workHistory"`
}

// WorkHistoryEntry is a past project shown on the profile page.
type WorkHistoryEntry struct {
	ProjectName string `bson:"project_name" json:"projectName" yaml:"projectName"`
	Company     string `bson:"company" json:"company" yaml:"company"`
	Duration    string `bson:"duration" json:"duration" yaml:"duration"`
	Description string `bson:"description" json:"description" yaml:"description"`
	Link        string `bson:"link" json:"link" yaml:"link"`
}

// HasBio reports whether the member carries a non-blank biography.
func (m Member) HasBio() bool {
	return m.Bio != nil && strings.TrimSpace(*m.Bio) != ""
}

// Clone returns a deep copy so callers cannot mutate shared slices.
func (m Member) Clone() Member {
	out := m
	out.Expertise = cloneStrings(m.Expertise)
	out.TechStack = cloneStrings(m.TechStack)
	if m.Bio != nil {
		v := *m.Bio
		out.Bio = &v
	}
	if m.WorkHistory != nil {
		out.WorkHistory = make([]WorkHistoryEntry, len(m.WorkHistory))
		copy(out.WorkHistory, m.WorkHistory)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
