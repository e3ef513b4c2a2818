package analytics

import (
	"strings"
	"testing"

	"grana/internal/model"
)

func TestGenerateTipsEmptyLedger(t *testing.T) {
	tips := GenerateTips(nil, model.DefaultCategories())
	if len(tips) != 1 {
		t.Fatalf("tip count = %d, want 1", len(tips))
	}
	if tips[0].Type != model.TipInfo || tips[0].Title != "Comece agora" {
		t.Errorf("got %q/%s, want getting-started info tip", tips[0].Title, tips[0].Type)
	}
}

func TestGenerateTipsDominantCategoryWarning(t *testing.T) {
	cats := model.DefaultCategories()
	expenses := []model.Expense{
		{Value: 100, CategoryID: "cat_1"},
	}

	tips := GenerateTips(expenses, cats)
	if len(tips) != 2 {
		t.Fatalf("tip count = %d, want 2", len(tips))
	}
	if tips[0].Type != model.TipWarning {
		t.Fatalf("first tip type = %s, want warning", tips[0].Type)
	}
	if !strings.Contains(tips[0].Message, "Alimentação") || !strings.Contains(tips[0].Message, "100%") {
		t.Errorf("warning message = %q", tips[0].Message)
	}
	if tips[1].Message != "Você já gastou R$ 100.00 no total." {
		t.Errorf("summary message = %q", tips[1].Message)
	}
}

func TestGenerateTipsNoWarningAtOrBelowThreshold(t *testing.T) {
	cats := model.DefaultCategories()
	// Top share is exactly 40% after rounding, which does not trip the alert.
	expenses := []model.Expense{
		{Value: 40, CategoryID: "cat_1"},
		{Value: 30, CategoryID: "cat_2"},
		{Value: 30, CategoryID: "cat_3"},
	}

	tips := GenerateTips(expenses, cats)
	if len(tips) != 1 {
		t.Fatalf("tip count = %d, want 1", len(tips))
	}
	if tips[0].Type != model.TipInfo {
		t.Errorf("tip type = %s, want info", tips[0].Type)
	}
}

func TestGenerateTipsTieKeepsFirstLogged(t *testing.T) {
	cats := model.DefaultCategories()
	expenses := []model.Expense{
		{Value: 50, CategoryID: "cat_4"},
		{Value: 50, CategoryID: "cat_2"},
	}

	tips := GenerateTips(expenses, cats)
	if tips[0].Type != model.TipWarning {
		t.Fatalf("first tip type = %s, want warning", tips[0].Type)
	}
	if !strings.Contains(tips[0].Message, "Lazer") {
		t.Errorf("tie should keep the earlier-logged category, got %q", tips[0].Message)
	}
}

func TestGenerateTipsUnknownCategoryName(t *testing.T) {
	tips := GenerateTips([]model.Expense{{Value: 10, CategoryID: "ghost"}}, model.DefaultCategories())
	if !strings.Contains(tips[0].Message, "Desconhecido") {
		t.Errorf("message = %q, want unknown-category fallback", tips[0].Message)
	}
}
