package reports

import (
	"testing"
	"time"

	"renotrack/internal/models"
)

func projectExpense(projectID string, category models.ExpenseCategory, amount float64) models.Expense {
	return models.Expense{
		RenovationProjectID: &projectID,
		Category:            category,
		Amount:              amount,
	}
}

func TestBudgetUtilizationPercent(t *testing.T) {
	tests := []struct {
		name     string
		budget   float64
		total    float64
		expected float64
	}{
		{"half used", 100000, 50000, 50},
		{"exactly at budget", 100000, 100000, 100},
		{"over budget", 100000, 125000, 125},
		{"zero budget", 0, 50000, 0},
		{"zero budget zero spend", 0, 0, 0},
		{"nothing spent", 100000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetUtilizationPercent(tt.budget, tt.total)
			if got != tt.expected {
				t.Errorf("expected %.2f%%, got %.2f%%", tt.expected, got)
			}
		})
	}
}

func TestNewBudgetUtilization(t *testing.T) {
	project := &models.RenovationProject{Budget: 100000}
	project.ID = "proj-1"

	expenses := []models.Expense{
		projectExpense("proj-1", models.ExpenseCategoryMaterials, 30000),
		projectExpense("proj-1", models.ExpenseCategoryLabor, 20000),
		projectExpense("proj-2", models.ExpenseCategoryLabor, 99999),
		{Category: models.ExpenseCategoryService, Amount: 500}, // no project link
	}

	util := NewBudgetUtilization(project, expenses)

	if util.TotalExpenses != 50000 {
		t.Errorf("expected total 50000, got %f", util.TotalExpenses)
	}
	if util.PercentUsed != 50 {
		t.Errorf("expected 50%% used, got %f", util.PercentUsed)
	}
}

func TestExpensesByCategory(t *testing.T) {
	expenses := []models.Expense{
		projectExpense("proj-1", models.ExpenseCategoryMaterials, 10000),
		projectExpense("proj-1", models.ExpenseCategoryMaterials, 5000),
		projectExpense("proj-1", models.ExpenseCategoryFoundation, 40000),
		projectExpense("proj-2", models.ExpenseCategoryLabor, 7000),
	}

	breakdown := ExpensesByCategory("proj-1", expenses)

	// Every category appears, including zeroes.
	if len(breakdown) != len(models.AllExpenseCategories) {
		t.Fatalf("expected %d categories, got %d", len(models.AllExpenseCategories), len(breakdown))
	}
	if breakdown[models.ExpenseCategoryMaterials] != 15000 {
		t.Errorf("expected materials 15000, got %f", breakdown[models.ExpenseCategoryMaterials])
	}
	if breakdown[models.ExpenseCategoryFoundation] != 40000 {
		t.Errorf("expected foundation 40000, got %f", breakdown[models.ExpenseCategoryFoundation])
	}
	if breakdown[models.ExpenseCategoryLabor] != 0 {
		t.Errorf("other project's labor should not count, got %f", breakdown[models.ExpenseCategoryLabor])
	}

	// The per-category breakdown always sums to the project total.
	var sum float64
	for _, amount := range breakdown {
		sum += amount
	}
	if sum != TotalExpenses("proj-1", expenses) {
		t.Errorf("breakdown sum %f does not match total %f", sum, TotalExpenses("proj-1", expenses))
	}
}

func TestNewAssetSummary(t *testing.T) {
	asset := &models.Asset{Name: "บ้านเดี่ยว บางนา"}
	asset.ID = "asset-1"

	assetID := asset.ID
	otherID := "asset-2"

	incomes := []models.Income{
		{AssetID: assetID, Source: "ค่าเช่า", Amount: 12000},
		{AssetID: assetID, Source: "ค่าเช่า", Amount: 12000},
		{AssetID: assetID, Source: "เงินมัดจำ", Amount: 24000},
		{AssetID: otherID, Source: "ค่าเช่า", Amount: 99999},
	}
	expenses := []models.Expense{
		{AssetID: &assetID, Category: models.ExpenseCategoryService, Amount: 3000},
		{AssetID: &assetID, Category: models.ExpenseCategoryElectricity, Amount: 1500},
		{AssetID: &otherID, Category: models.ExpenseCategoryLabor, Amount: 88888},
		{Category: models.ExpenseCategoryMaterials, Amount: 77777}, // unlinked
	}

	summary := NewAssetSummary(asset, incomes, expenses)

	if summary.TotalIncome != 48000 {
		t.Errorf("expected income 48000, got %f", summary.TotalIncome)
	}
	if summary.TotalExpenses != 4500 {
		t.Errorf("expected expenses 4500, got %f", summary.TotalExpenses)
	}
	if summary.Profit != 43500 {
		t.Errorf("expected profit 43500, got %f", summary.Profit)
	}
	if summary.IncomeBySource["ค่าเช่า"] != 24000 {
		t.Errorf("expected rent income 24000, got %f", summary.IncomeBySource["ค่าเช่า"])
	}

	// Asset-level breakdown only carries categories with spend.
	if _, ok := summary.ExpensesByCategory[models.ExpenseCategoryMaterials]; ok {
		t.Error("categories without spend should not appear in the asset breakdown")
	}
}

func TestAssetSummariesSortedByProfit(t *testing.T) {
	assets := make([]models.Asset, 3)
	for i, id := range []string{"a", "b", "c"} {
		assets[i].ID = id
		assets[i].Name = id
	}

	incomes := []models.Income{
		{AssetID: "a", Source: "ค่าเช่า", Amount: 100},
		{AssetID: "b", Source: "ค่าเช่า", Amount: 500},
		{AssetID: "c", Source: "ค่าเช่า", Amount: 300},
	}

	summaries := AssetSummaries(assets, incomes, nil)

	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}
	got := []string{summaries[0].AssetID, summaries[1].AssetID, summaries[2].AssetID}
	want := []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected asset %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSortByProfitStable(t *testing.T) {
	summaries := []AssetSummary{
		{AssetID: "first", Profit: 100},
		{AssetID: "second", Profit: 100},
	}

	SortByProfit(summaries)

	if summaries[0].AssetID != "first" || summaries[1].AssetID != "second" {
		t.Error("equal profits should keep their original order")
	}
}

func TestMonthlySeries(t *testing.T) {
	jan15 := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.Local)
	jan31 := time.Date(2025, time.January, 31, 23, 59, 59, 0, time.Local)
	feb1 := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.Local)
	dec31 := time.Date(2024, time.December, 31, 23, 0, 0, 0, time.Local)

	incomes := []models.Income{
		{AssetID: "a", Amount: 12000, Date: jan15},
		{AssetID: "a", Amount: 1000, Date: jan31},
		{AssetID: "a", Amount: 9999, Date: dec31}, // previous year
	}
	expenses := []models.Expense{
		{Amount: 4000, Date: feb1},
	}

	series := MonthlySeries(2025, incomes, expenses)

	if len(series) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(series))
	}
	if series[0].Income != 13000 {
		t.Errorf("expected January income 13000, got %f", series[0].Income)
	}
	if series[0].Expenses != 0 {
		t.Errorf("expected January expenses 0, got %f", series[0].Expenses)
	}
	if series[1].Expenses != 4000 {
		t.Errorf("first instant of February belongs to February, got %f", series[1].Expenses)
	}
	if series[1].Profit != -4000 {
		t.Errorf("expected February profit -4000, got %f", series[1].Profit)
	}
	for m := 2; m < 12; m++ {
		if series[m].Income != 0 || series[m].Expenses != 0 {
			t.Errorf("month %d should be empty", m+1)
		}
	}
}

func TestChartScaleMax(t *testing.T) {
	series := []MonthBucket{
		{Income: 500, Expenses: 800},
		{Income: 1200, Expenses: 300},
	}
	if max := ChartScaleMax(series); max != 1200 {
		t.Errorf("expected 1200, got %f", max)
	}

	// A flat year never produces a zero-height scale.
	if max := ChartScaleMax(make([]MonthBucket, 12)); max != 1 {
		t.Errorf("expected floor of 1, got %f", max)
	}
}
