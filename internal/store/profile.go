package store

import (
	"errors"
	"unicode/utf8"

	"grana/internal/model"
)

// XPPerLevel is the XP span of one level: level = xp/XPPerLevel + 1.
const XPPerLevel = 500

// MinPasswordLen is the registration stub's password floor.
const MinPasswordLen = 6

// Validation errors for the local registration stub.
var (
	ErrNameRequired     = errors.New("nome é obrigatório")
	ErrPasswordTooShort = errors.New("senha deve ter no mínimo 6 caracteres")
)

// LevelFor derives the level a given XP total corresponds to.
func LevelFor(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// Profile returns the single local profile, creating and persisting the
// default one on first access.
func (s *Store) Profile() (model.UserProfile, error) {
	var u model.UserProfile
	if s.read(colUser, &u) {
		return u, nil
	}

	u = model.DefaultProfile()
	if err := s.write(colUser, u); err != nil {
		return model.UserProfile{}, err
	}
	return u, nil
}

// SaveProfile commits the profile. Level is re-derived from XP on every
// write so the stored value can never drift from the invariant.
func (s *Store) SaveProfile(u model.UserProfile) error {
	if u.XP < 0 {
		u.XP = 0
	}
	if u.Streak < 0 {
		u.Streak = 0
	}
	u.Level = LevelFor(u.XP)
	return s.write(colUser, u)
}

// Register is the local auth stub: it validates the input, then updates
// the single profile's identity fields. Nothing is written on a
// validation failure.
func (s *Store) Register(name, email, password string) (model.UserProfile, error) {
	if name == "" {
		return model.UserProfile{}, ErrNameRequired
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return model.UserProfile{}, ErrPasswordTooShort
	}

	u, err := s.Profile()
	if err != nil {
		return model.UserProfile{}, err
	}
	u.Name = name
	if email != "" {
		u.Email = email
	}
	if err := s.SaveProfile(u); err != nil {
		return model.UserProfile{}, err
	}
	return u, nil
}

// MarkTutorialSeen records that the dashboard walkthrough was shown.
// Calling it again is a no-op.
func (s *Store) MarkTutorialSeen() error {
	u, err := s.Profile()
	if err != nil {
		return err
	}
	if u.SeenTutorial {
		return nil
	}
	u.SeenTutorial = true
	return s.SaveProfile(u)
}

// Login is the local auth stub: it just returns the current profile.
func (s *Store) Login() (model.UserProfile, error) {
	return s.Profile()
}
