package model

// Badge ids. The catalog is static, compiled-in reference data; a
// profile references badges purely by id membership.
const (
	BadgeFirstLog   = "first_log"
	BadgeStreak3    = "streak_3"
	BadgeStreak7    = "streak_7"
	BadgeSmartSaver = "smart_saver"
	BadgeXPMaster   = "xp_master"
)

// Badge describes one achievement in the static catalog.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
}

// Badges is the full achievement catalog, in display order.
var Badges = []Badge{
	{ID: BadgeFirstLog, Name: "Primeiro Passo", Description: "Registrou o primeiro gasto", Icon: "Flag", Color: "#3B82F6"},
	{ID: BadgeStreak3, Name: "No Foco", Description: "3 dias seguidos de registros", Icon: "Flame", Color: "#F59E0B"},
	{ID: BadgeStreak7, Name: "Hábito de Aço", Description: "7 dias seguidos de registros", Icon: "Zap", Color: "#8B5CF6"},
	{ID: BadgeSmartSaver, Name: "Economista", Description: "Manteve o gasto dentro da meta", Icon: "PiggyBank", Color: "#10B981"},
	{ID: BadgeXPMaster, Name: "Level Up", Description: "Atingiu o nível 5", Icon: "Trophy", Color: "#EC4899"},
}

// BadgeByID looks up a catalog entry.
func BadgeByID(id string) (Badge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
