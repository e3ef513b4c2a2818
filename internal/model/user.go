// Package model defines the grana domain types and static catalogs.
package model

// UserStatus indicates whether an account is usable.
type UserStatus string

// User statuses.
const (
	StatusActive  UserStatus = "ACTIVE"
	StatusPending UserStatus = "PENDING"
)

// LocalUserID identifies the single local profile.
const LocalUserID = "local_user"

// UserProfile holds the single local user's identity and gamification
// state. Exactly one profile exists; it is created on first access.
type UserProfile struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Status       UserStatus `json:"status"`
	Onboarded    bool       `json:"onboarded"`
	SeenTutorial bool       `json:"seen_tutorial"`

	XP      int      `json:"xp"`
	Level   int      `json:"level"`
	Streak  int      `json:"streak"`
	LastLog Date     `json:"last_log"`
	Badges  []string `json:"badges"`
}

// DefaultProfile returns the profile created on first access.
func DefaultProfile() UserProfile {
	return UserProfile{
		ID:     LocalUserID,
		Name:   "Visitante",
		Status: StatusActive,
		Level:  1,
	}
}

// HasBadge reports whether the badge id is already unlocked.
func (u UserProfile) HasBadge(id string) bool {
	for _, b := range u.Badges {
		if b == id {
			return true
		}
	}
	return false
}
