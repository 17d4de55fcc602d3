package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	memberstore "github.com/dalemusser/freelancehub/internal/app/store/members"
	"github.com/dalemusser/freelancehub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestContext returns a context with a timeout suitable for DB-backed tests.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string { return &s }

// ScenarioMembers returns the two-member collection used in filter
// scenarios: a knows Web and Data, b knows Data.
func ScenarioMembers() []models.Member {
	return []models.Member{
		{
			ID:        "a",
			Name:      "Alex Rivera",
			Expertise: []string{"Web", "Data"},
			TechStack: []string{"Go", "React"},
			Email:     "alex@example.com",
			Portfolio: "https://example.com/alex",
		},
		{
			ID:        "b",
			Name:      "Blair Okafor",
			Expertise: []string{"Data"},
			TechStack: []string{"Python"},
			Email:     "blair@example.com",
			Portfolio: "https://example.com/blair",
		},
	}
}

// SampleMembers returns a richer collection. The first member, p1, has a
// bio and two work history entries; p2 has no bio; p3 has an empty work
// history and is unavailable.
func SampleMembers() []models.Member {
	return []models.Member{
		{
			ID:        "p1",
			Name:      "Ada Lovelace",
			Photo:     "https://example.com/ada.jpg",
			Expertise: []string{"Backend", "Data", "Math", "Writing"},
			TechStack: []string{"Go", "Postgres", "Kafka"},
			Portfolio: "https://ada.example.com",
			Education: "Self-taught",
			Email:     "ada@example.com",
			Available: true,
			Bio:       StrPtr("<p>Writes the <strong>first</strong> programs for engines that do not exist yet.</p>"),
			WorkHistory: []models.WorkHistoryEntry{
				{
					ProjectName: "Analytical Engine Notes",
					Company:     "Babbage & Co",
					Duration:    "1842 - 1843",
					Description: "Translated and annotated the engine paper.",
					Link:        "https://example.com/notes",
				},
				{
					ProjectName: "Bernoulli Numbers",
					Company:     "Independent",
					Duration:    "1843",
					Description: "Program computing Bernoulli numbers.",
					Link:        "https://example.com/bernoulli",
				},
			},
		},
		{
			ID:        "p2",
			Name:      "Linus Ek",
			Photo:     "https://example.com/linus.jpg",
			Expertise: []string{"Frontend"},
			TechStack: []string{"TypeScript", "Svelte"},
			Portfolio: "https://linus.example.com",
			Education: "KTH",
			Email:     "linus@example.com",
			Available: true,
			WorkHistory: []models.WorkHistoryEntry{
				{ProjectName: "Shop UI", Company: "Nordic Retail", Duration: "2 years", Description: "Storefront rebuild.", Link: "https://example.com/shop"},
			},
		},
		{
			ID:        "p3",
			Name:      "Mei Sato",
			Photo:     "https://example.com/mei.jpg",
			Expertise: []string{"Data", "DevOps"},
			TechStack: []string{"Python", "Terraform"},
			Portfolio: "https://mei.example.com",
			Education: "University of Tokyo",
			Email:     "mei@example.com",
			Available: false,
			Bio:       StrPtr("Keeps pipelines green."),
		},
	}
}

// NewStore builds a memberstore.Store or fails the test.
func NewStore(t testing.TB, members []models.Member) *memberstore.Store {
	t.Helper()
	store, err := memberstore.New("test", members)
	if err != nil {
		t.Fatalf("memberstore.New: %v", err)
	}
	return store
}
