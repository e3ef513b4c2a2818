package store

// Collection names. Each holds one JSON document.
const (
	colUser       = "user"
	colExpenses   = "expenses"
	colGoals      = "goals"
	colCategories = "categories"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS collections (
    name       TEXT PRIMARY KEY,
    data       TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`
