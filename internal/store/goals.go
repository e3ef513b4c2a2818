package store

import (
	"github.com/google/uuid"

	"grana/internal/model"
)

// Goals returns the persisted goal set. No order is guaranteed beyond
// what was written.
func (s *Store) Goals(userID string) []model.Goal {
	var goals []model.Goal
	s.read(colGoals, &goals)

	if userID == "" {
		return goals
	}
	var out []model.Goal
	for _, g := range goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out
}

// SetGoal replaces any goal occupying the same (category, period) slot
// with the incoming one, so duplicate active goals cannot exist. The
// stored goal gets a fresh id.
func (s *Store) SetGoal(g model.Goal) (model.Goal, error) {
	g.ID = uuid.NewString()

	goals := s.Goals("")
	kept := goals[:0]
	for _, existing := range goals {
		if existing.Key() != g.Key() {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, g)

	if err := s.write(colGoals, kept); err != nil {
		return model.Goal{}, err
	}
	return g, nil
}
