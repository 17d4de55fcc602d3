// internal/app/store/members/memberstore.go
package memberstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dalemusser/freelancehub/internal/domain/models"
)

var (
	// ErrNotFound is returned when no member carries the requested id.
	ErrNotFound = errors.New("member not found")
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate member id")
	// ErrEmptyID is returned when a record has a blank id.
	ErrEmptyID = errors.New("member id is required")
)

// Store is the read-only member collection shared by every handler.
//
// It is built once at startup and never mutated, so it is safe for
// concurrent use without locking. Accessors hand out copies.
type Store struct {
	source  string
	members []models.Member
	byID    map[string]int
}

// New validates the records and builds a Store that preserves their order.
// source names where the records came from (for logging and /health).
func New(source string, members []models.Member) (*Store, error) {
	s := &Store{
		source:  source,
		members: make([]models.Member, 0, len(members)),
		byID:    make(map[string]int, len(members)),
	}
	for i, m := range members {
		if strings.TrimSpace(m.ID) == "" {
			return nil, fmt.Errorf("record %d (%q): %w", i, m.Name, ErrEmptyID)
		}
		if _, dup := s.byID[m.ID]; dup {
			return nil, fmt.Errorf("record %d: %w: %q", i, ErrDuplicateID, m.ID)
		}
		s.byID[m.ID] = len(s.members)
		s.members = append(s.members, m.Clone())
	}
	return s, nil
}

// Source returns the name of the data source the store was loaded from.
func (s *Store) Source() string { return s.source }

// Len returns the number of members.
func (s *Store) Len() int { return len(s.members) }

// All returns every member in source order.
func (s *Store) All() []models.Member {
	out := make([]models.Member, len(s.members))
	for i, m := range s.members {
		out[i] = m.Clone()
	}
	return out
}

// GetByID looks a member up by exact id match.
// Returns ErrNotFound when the id is unknown.
func (s *Store) GetByID(id string) (models.Member, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Member{}, ErrNotFound
	}
	return s.members[i].Clone(), nil
}
