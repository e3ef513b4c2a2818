package store

import "grana/internal/model"

// Categories returns the persisted catalog, falling back to the fixed
// default set when none exists. The fallback is not written back; the
// catalog stays read-mostly reference data.
func (s *Store) Categories() []model.Category {
	var cats []model.Category
	if s.read(colCategories, &cats) && len(cats) > 0 {
		return cats
	}
	return model.DefaultCategories()
}

// SaveCategories replaces the persisted catalog.
func (s *Store) SaveCategories(cats []model.Category) error {
	return s.write(colCategories, cats)
}
