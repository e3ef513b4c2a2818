package analytics

import (
	"fmt"
	"math"

	"grana/internal/model"
)

// topCategoryShare is the spend share (in whole percent, after rounding)
// above which a category earns a warning tip.
const topCategoryShare = 40

// GenerateTips derives the smart-tip feed from the full ledger. An empty
// ledger yields a single getting-started tip; otherwise the dominant
// category may produce a warning, and a total-spend summary always
// closes the feed. Tips are ephemeral: callers recompute on every view.
func GenerateTips(expenses []model.Expense, cats []model.Category) []model.SmartTip {
	if len(expenses) == 0 {
		return []model.SmartTip{{
			ID:      "1",
			Title:   "Comece agora",
			Message: "Adicione seu primeiro gasto para receber insights.",
			Type:    model.TipInfo,
		}}
	}

	total := SumValues(expenses)

	// Accumulate per-category totals in first-appearance order so ties
	// resolve deterministically to the earliest-logged category.
	totals := make(map[string]float64)
	var order []string
	for _, e := range expenses {
		if _, seen := totals[e.CategoryID]; !seen {
			order = append(order, e.CategoryID)
		}
		totals[e.CategoryID] += e.Value
	}

	topID := order[0]
	for _, id := range order[1:] {
		if totals[id] > totals[topID] {
			topID = id
		}
	}

	var tips []model.SmartTip
	percent := int(math.Round(totals[topID] / total * 100))
	if percent > topCategoryShare {
		tips = append(tips, model.SmartTip{
			ID:      "warn_1",
			Title:   "Alerta de Gasto",
			Message: fmt.Sprintf("%s consumiu %d%% do seu dinheiro.", model.CategoryName(cats, topID), percent),
			Type:    model.TipWarning,
		})
	}

	tips = append(tips, model.SmartTip{
		ID:      "info_1",
		Title:   "Resumo",
		Message: fmt.Sprintf("Você já gastou R$ %.2f no total.", total),
		Type:    model.TipInfo,
	})

	return tips
}
