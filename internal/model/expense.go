package model

// Expense is one logged spend. Immutable once created, except for
// deletion from the ledger.
type Expense struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Value       float64 `json:"value"`
	CategoryID  string  `json:"category_id"`
	Description string  `json:"description"`
	Date        Date    `json:"date"`
}

// Category is read-mostly reference data for grouping expenses.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	IsDefault bool   `json:"is_default"`
}

// DefaultCategories returns the fixed seed catalog used when none is
// persisted.
func DefaultCategories() []Category {
	return []Category{
		{ID: "cat_1", Name: "Alimentação", Color: "#EF4444", IsDefault: true},
		{ID: "cat_2", Name: "Contas", Color: "#F59E0B", IsDefault: true},
		{ID: "cat_3", Name: "Transporte", Color: "#3B82F6", IsDefault: true},
		{ID: "cat_4", Name: "Lazer", Color: "#8B5CF6", IsDefault: true},
		{ID: "cat_5", Name: "Compras", Color: "#EC4899", IsDefault: true},
		{ID: "cat_6", Name: "Saúde", Color: "#10B981", IsDefault: true},
		{ID: "cat_7", Name: "Outros", Color: "#6B7280", IsDefault: true},
	}
}

// CategoryName resolves a category id to its display name, falling back
// to "Desconhecido" for ids not in the catalog.
func CategoryName(cats []Category, id string) string {
	for _, c := range cats {
		if c.ID == id {
			return c.Name
		}
	}
	return "Desconhecido"
}
