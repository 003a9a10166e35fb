// Package reports implements the financial aggregation engine. Every
// function is pure: it computes results from the record slices it is given
// and keeps no state, so callers can recompute on every read without
// worrying about stale derived data.
package reports

import (
	"sort"
	"time"

	"renotrack/internal/models"
)

// BudgetUtilization summarizes spending against a project's budget.
// PercentUsed is not clamped; values above 100 are valid.
type BudgetUtilization struct {
	ProjectID     string  `json:"project_id"`
	Budget        float64 `json:"budget"`
	TotalExpenses float64 `json:"total_expenses"`
	PercentUsed   float64 `json:"percent_used"`
}

// AssetSummary is the per-asset profit/loss view.
type AssetSummary struct {
	AssetID            string                             `json:"asset_id"`
	AssetName          string                             `json:"asset_name"`
	TotalIncome        float64                            `json:"total_income"`
	TotalExpenses      float64                            `json:"total_expenses"`
	Profit             float64                            `json:"profit"`
	IncomeBySource     map[string]float64                 `json:"income_by_source"`
	ExpensesByCategory map[models.ExpenseCategory]float64 `json:"expenses_by_category"`
}

// MonthBucket holds the income/expense/profit totals for one calendar month.
type MonthBucket struct {
	Month    int     `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// TotalExpenses sums the amounts of all expenses linked to the project.
func TotalExpenses(projectID string, expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		if e.RenovationProjectID != nil && *e.RenovationProjectID == projectID {
			total += e.Amount
		}
	}
	return total
}

// BudgetUtilizationPercent returns spending as a percentage of budget.
// A zero budget yields 0, never NaN or Inf.
func BudgetUtilizationPercent(budget, totalExpenses float64) float64 {
	if budget == 0 {
		return 0
	}
	return totalExpenses / budget * 100
}

// NewBudgetUtilization computes the utilization figures for one project.
func NewBudgetUtilization(project *models.RenovationProject, expenses []models.Expense) BudgetUtilization {
	total := TotalExpenses(project.ID, expenses)
	return BudgetUtilization{
		ProjectID:     project.ID,
		Budget:        project.Budget,
		TotalExpenses: total,
		PercentUsed:   BudgetUtilizationPercent(project.Budget, total),
	}
}

// ExpensesByCategory sums the project's expenses per category. Every known
// category appears in the result, defaulted to 0, so the breakdown always
// covers the full enum.
func ExpensesByCategory(projectID string, expenses []models.Expense) map[models.ExpenseCategory]float64 {
	breakdown := make(map[models.ExpenseCategory]float64, len(models.AllExpenseCategories))
	for _, category := range models.AllExpenseCategories {
		breakdown[category] = 0
	}
	for _, e := range expenses {
		if e.RenovationProjectID != nil && *e.RenovationProjectID == projectID {
			breakdown[e.Category] += e.Amount
		}
	}
	return breakdown
}

// NewAssetSummary computes income, expenses and profit for one asset.
// Unlike the project-level breakdown, ExpensesByCategory here only carries
// categories with a non-zero amount.
func NewAssetSummary(asset *models.Asset, incomes []models.Income, expenses []models.Expense) AssetSummary {
	summary := AssetSummary{
		AssetID:            asset.ID,
		AssetName:          asset.Name,
		IncomeBySource:     make(map[string]float64),
		ExpensesByCategory: make(map[models.ExpenseCategory]float64),
	}

	for _, income := range incomes {
		if income.AssetID != asset.ID {
			continue
		}
		summary.TotalIncome += income.Amount
		summary.IncomeBySource[income.Source] += income.Amount
	}

	for _, expense := range expenses {
		if expense.AssetID == nil || *expense.AssetID != asset.ID {
			continue
		}
		summary.TotalExpenses += expense.Amount
		summary.ExpensesByCategory[expense.Category] += expense.Amount
	}

	summary.Profit = summary.TotalIncome - summary.TotalExpenses
	return summary
}

// AssetSummaries computes a summary per asset, sorted by profit descending.
func AssetSummaries(assets []models.Asset, incomes []models.Income, expenses []models.Expense) []AssetSummary {
	summaries := make([]AssetSummary, 0, len(assets))
	for i := range assets {
		summaries = append(summaries, NewAssetSummary(&assets[i], incomes, expenses))
	}
	SortByProfit(summaries)
	return summaries
}

// SortByProfit orders summaries by profit, highest first. The sort is
// stable: ties keep their original order.
func SortByProfit(summaries []AssetSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Profit > summaries[j].Profit
	})
}

// MonthlySeries buckets income and expenses into the 12 calendar months of
// the given year. Month boundaries are calendar start/end of month in local
// time, inclusive on both ends.
func MonthlySeries(year int, incomes []models.Income, expenses []models.Expense) []MonthBucket {
	series := make([]MonthBucket, 12)
	for m := 0; m < 12; m++ {
		start := time.Date(year, time.Month(m+1), 1, 0, 0, 0, 0, time.Local)
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

		bucket := MonthBucket{Month: m + 1}
		for _, income := range incomes {
			if inRange(income.Date, start, end) {
				bucket.Income += income.Amount
			}
		}
		for _, expense := range expenses {
			if inRange(expense.Date, start, end) {
				bucket.Expenses += expense.Amount
			}
		}
		bucket.Profit = bucket.Income - bucket.Expenses
		series[m] = bucket
	}
	return series
}

// ChartScaleMax returns the largest income or expense value across the
// series, floored at 1 so a flat year never produces a zero-height scale.
func ChartScaleMax(series []MonthBucket) float64 {
	max := 1.0
	for _, bucket := range series {
		if bucket.Income > max {
			max = bucket.Income
		}
		if bucket.Expenses > max {
			max = bucket.Expenses
		}
	}
	return max
}

func inRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}
