package expertise_test

import (
	"slices"
	"sort"
	"testing"

	"github.com/dalemusser/freelancehub/internal/app/system/expertise"
	"github.com/dalemusser/freelancehub/internal/domain/models"
	"github.com/dalemusser/freelancehub/internal/testutil"
	"pgregory.net/rapid"
)

func ids(ms []models.Member) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestFilter_Scenario(t *testing.T) {
	members := testutil.ScenarioMembers()

	cases := []struct {
		tag  string
		want []string
	}{
		{"Data", []string{"a", "b"}},
		{"Web", []string{"a"}},
		{expertise.All, []string{"a", "b"}},
		{"", []string{"a", "b"}},
		{"Mobile", []string{}},
		{"data", []string{}}, // exact match only
	}
	for _, tc := range cases {
		got := ids(expertise.Filter(members, tc.tag))
		if !slices.Equal(got, tc.want) {
			t.Errorf("Filter(%q): got %v, want %v", tc.tag, got, tc.want)
		}
	}
}

func TestUniverse_Scenario(t *testing.T) {
	got := expertise.Universe(testutil.ScenarioMembers())
	want := []string{"All", "Data", "Web"}
	if !slices.Equal(got, want) {
		t.Errorf("Universe: got %v, want %v", got, want)
	}
}

func TestUniverse_Empty(t *testing.T) {
	got := expertise.Universe(nil)
	if !slices.Equal(got, []string{"All"}) {
		t.Errorf("Universe(nil): got %v", got)
	}
}

func TestUniverse_KeepsNearDuplicates(t *testing.T) {
	members := []models.Member{
		{ID: "1", Expertise: []string{"Web", "web", "Web "}},
	}
	got := expertise.Universe(members)
	want := []string{"All", "Web", "Web ", "web"}
	if !slices.Equal(got, want) {
		t.Errorf("Universe: got %v, want %v", got, want)
	}
}

func TestUniverse_LiteralAllTagListedOnce(t *testing.T) {
	members := []models.Member{{ID: "1", Expertise: []string{"All", "Data"}}}
	got := expertise.Universe(members)
	if !slices.Equal(got, []string{"All", "Data"}) {
		t.Errorf("Universe: got %v", got)
	}
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	members := testutil.ScenarioMembers()
	got := expertise.Filter(members, expertise.All)
	got[0] = models.Member{ID: "changed"}
	if members[0].ID != "a" {
		t.Error("Filter(All) returned the caller's backing array")
	}
}

func TestNormalize(t *testing.T) {
	if expertise.Normalize("") != expertise.All {
		t.Error("empty tag should normalize to All")
	}
	if expertise.Normalize("Web") != "Web" {
		t.Error("non-empty tag should be unchanged")
	}
}

// genMembers draws a collection with unique ids and tags from a small
// alphabet so overlaps are common.
func genMembers(t *rapid.T) []models.Member {
	tag := rapid.SampledFrom([]string{"Web", "Data", "Mobile", "DevOps", "UI/UX", "web", "Go"})
	n := rapid.IntRange(0, 12).Draw(t, "n")
	members := make([]models.Member, n)
	for i := range members {
		members[i] = models.Member{
			ID:        string(rune('a' + i)),
			Expertise: rapid.SliceOfN(tag, 0, 5).Draw(t, "expertise"),
		}
	}
	return members
}

func TestFilter_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		members := genMembers(t)
		tag := rapid.SampledFrom(expertise.Universe(members)).Draw(t, "tag")

		got := expertise.Filter(members, tag)

		var want []string
		for _, m := range members {
			if tag == expertise.All || slices.Contains(m.Expertise, tag) {
				want = append(want, m.ID)
			}
		}
		if !slices.Equal(ids(got), want) {
			t.Fatalf("Filter(%q): got %v, want %v", tag, ids(got), want)
		}
		if tag == expertise.All && len(got) != len(members) {
			t.Fatalf("Filter(All) size %d, want %d", len(got), len(members))
		}
	})
}

func TestUniverse_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		members := genMembers(t)
		got := expertise.Universe(members)

		if len(got) == 0 || got[0] != expertise.All {
			t.Fatalf("Universe must start with All: %v", got)
		}
		rest := got[1:]
		if !sort.StringsAreSorted(rest) {
			t.Fatalf("tags not sorted: %v", rest)
		}

		distinct := map[string]bool{}
		for _, m := range members {
			for _, tag := range m.Expertise {
				distinct[tag] = true
			}
		}
		if len(rest) != len(distinct) {
			t.Fatalf("got %d tags, want %d distinct: %v", len(rest), len(distinct), rest)
		}
		for _, tag := range rest {
			if !distinct[tag] {
				t.Fatalf("unexpected tag %q", tag)
			}
		}

		// Order of input must not matter.
		reversed := slices.Clone(members)
		slices.Reverse(reversed)
		if !slices.Equal(expertise.Universe(reversed), got) {
			t.Fatal("Universe depends on input order")
		}
	})
}
