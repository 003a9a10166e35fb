package services_test

import (
	"testing"

	"renotrack/internal/models"
	"renotrack/internal/services"
	"renotrack/internal/testutil"
)

func TestGetProjectBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	assetService := services.NewAssetService(db)
	reportService := services.NewReportService(db, assetService)

	user := testutil.CreateTestUser(t, db)
	asset := testutil.CreateTestAsset(t, db, user.ID)
	project := testutil.CreateTestProject(t, db, user.ID, asset.ID) // budget 100000

	testutil.CreateTestExpense(t, db, user.ID, project, models.ExpenseCategoryMaterials, 30000)
	testutil.CreateTestExpense(t, db, user.ID, project, models.ExpenseCategoryLabor, 20000)

	report, err := reportService.GetProjectBudget(user.ID, project.ID)
	testutil.AssertNoError(t, err)

	if report.Utilization.TotalExpenses != 50000 {
		t.Errorf("expected total 50000, got %f", report.Utilization.TotalExpenses)
	}
	if report.Utilization.PercentUsed != 50 {
		t.Errorf("expected 50%% used, got %f", report.Utilization.PercentUsed)
	}
	if report.ByCategory[models.ExpenseCategoryMaterials] != 30000 {
		t.Errorf("expected materials 30000, got %f", report.ByCategory[models.ExpenseCategoryMaterials])
	}
	if len(report.ByCategory) != len(models.AllExpenseCategories) {
		t.Errorf("breakdown must cover the whole category enum, got %d entries", len(report.ByCategory))
	}

	_, err = reportService.GetProjectBudget(user.ID, "00000000-0000-0000-0000-000000000000")
	testutil.AssertAppError(t, err, "PROJECT_NOT_FOUND")
}

func TestGetAssetSummaries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	assetService := services.NewAssetService(db)
	reportService := services.NewReportService(db, assetService)

	user := testutil.CreateTestUser(t, db)
	lowProfit := testutil.CreateTestAsset(t, db, user.ID)
	highProfit := testutil.CreateTestAsset(t, db, user.ID)

	testutil.CreateTestIncome(t, db, user.ID, lowProfit.ID, 1000)
	testutil.CreateTestIncome(t, db, user.ID, highProfit.ID, 50000)
	testutil.CreateTestAssetExpense(t, db, user.ID, highProfit.ID, models.ExpenseCategoryService, 5000)

	summaries, err := reportService.GetAssetSummaries(user.ID)
	testutil.AssertNoError(t, err)

	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].AssetID != highProfit.ID {
		t.Error("summaries must be ordered by profit, highest first")
	}
	if summaries[0].Profit != 45000 {
		t.Errorf("expected profit 45000, got %f", summaries[0].Profit)
	}

	// Records from other users never leak into a summary.
	stranger := testutil.CreateTestUser(t, db)
	strangerSummaries, err := reportService.GetAssetSummaries(stranger.ID)
	testutil.AssertNoError(t, err)
	if len(strangerSummaries) != 0 {
		t.Errorf("expected no summaries for a stranger, got %d", len(strangerSummaries))
	}
}

func TestGetAssetSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	assetService := services.NewAssetService(db)
	reportService := services.NewReportService(db, assetService)

	user := testutil.CreateTestUser(t, db)
	asset := testutil.CreateTestAsset(t, db, user.ID)
	project := testutil.CreateTestProject(t, db, user.ID, asset.ID)

	testutil.CreateTestIncome(t, db, user.ID, asset.ID, 12000)
	testutil.CreateTestExpense(t, db, user.ID, project, models.ExpenseCategoryMaterials, 4000)

	summary, err := reportService.GetAssetSummary(user.ID, asset.ID)
	testutil.AssertNoError(t, err)

	// Project expenses roll up into the asset through the denormalized link.
	if summary.TotalExpenses != 4000 {
		t.Errorf("expected expenses 4000, got %f", summary.TotalExpenses)
	}
	if summary.Profit != 8000 {
		t.Errorf("expected profit 8000, got %f", summary.Profit)
	}
}

func TestGetMonthlyReport(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	assetService := services.NewAssetService(db)
	reportService := services.NewReportService(db, assetService)

	user := testutil.CreateTestUser(t, db)
	asset := testutil.CreateTestAsset(t, db, user.ID)
	testutil.CreateTestIncome(t, db, user.ID, asset.ID, 12000)

	report, err := reportService.GetMonthlyReport(user.ID, 1999)
	testutil.AssertNoError(t, err)

	if len(report.Series) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(report.Series))
	}
	for _, bucket := range report.Series {
		if bucket.Income != 0 || bucket.Expenses != 0 {
			t.Errorf("month %d of an empty year should be zero", bucket.Month)
		}
	}
	// An empty year still yields a usable chart scale.
	if report.ScaleMax != 1 {
		t.Errorf("expected scale floor 1, got %f", report.ScaleMax)
	}
}
