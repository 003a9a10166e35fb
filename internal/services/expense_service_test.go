package services_test

import (
	"testing"
	"time"

	"renotrack/internal/models"
	"renotrack/internal/pagination"
	"renotrack/internal/services"
	"renotrack/internal/testutil"
)

func TestCreateExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	assetService := services.NewAssetService(db)
	expenseService := services.NewExpenseService(db, assetService)

	user := testutil.CreateTestUser(t, db)
	asset := testutil.CreateTestAsset(t, db, user.ID)
	project := testutil.CreateTestProject(t, db, user.ID, asset.ID)

	t.Run("project expense denormalizes the asset", func(t *testing.T) {
		expense, err := expenseService.CreateExpense(user.ID, services.CreateExpenseInput{
			RenovationProjectID: &project.ID,
			Category:            models.ExpenseCategoryMaterials,
			Amount:              15000,
		})
		testutil.AssertNoError(t, err)
		if expense.AssetID == nil || *expense.AssetID != asset.ID {
			t.Error("expense should carry the project's asset reference")
		}
		if expense.Date.IsZero() {
			t.Error("missing date should default to now")
		}
	})

	t.Run("direct asset expense", func(t *testing.T) {
		expense, err := expenseService.CreateExpense(user.ID, services.CreateExpenseInput{
			AssetID:  &asset.ID,
			Category: models.ExpenseCategoryElectricity,
			Amount:   900,
		})
		testutil.AssertNoError(t, err)
		if expense.RenovationProjectID != nil {
			t.Error("direct asset expense must not carry a project")
		}
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := expenseService.CreateExpense(user.ID, services.CreateExpenseInput{
			AssetID:  &asset.ID,
			Category: models.ExpenseCategoryLabor,
			Amount:   -500,
		})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		_, err := expenseService.CreateExpense(user.ID, services.CreateExpenseInput{
			AssetID:  &asset.ID,
			Category: models.ExpenseCategory("snacks"),
			Amount:   100,
		})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("other user's project invisible", func(t *testing.T) {
		stranger := testutil.CreateTestUser(t, db)
		_, err := expenseService.CreateExpense(stranger.ID, services.CreateExpenseInput{
			RenovationProjectID: &project.ID,
			Category:            models.ExpenseCategoryMaterials,
			Amount:              100,
		})
		testutil.AssertAppError(t, err, "PROJECT_NOT_FOUND")
	})
}

func TestGetExpensesFiltering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	assetService := services.NewAssetService(db)
	expenseService := services.NewExpenseService(db, assetService)

	user := testutil.CreateTestUser(t, db)
	asset := testutil.CreateTestAsset(t, db, user.ID)
	other := testutil.CreateTestAsset(t, db, user.ID)
	project := testutil.CreateTestProject(t, db, user.ID, asset.ID)

	testutil.CreateTestExpense(t, db, user.ID, project, models.ExpenseCategoryMaterials, 1000)
	testutil.CreateTestExpense(t, db, user.ID, project, models.ExpenseCategoryLabor, 2000)
	testutil.CreateTestAssetExpense(t, db, user.ID, other.ID, models.ExpenseCategoryService, 3000)

	page := pagination.PageRequest{Page: 1, PageSize: 10}

	t.Run("by project", func(t *testing.T) {
		result, err := expenseService.GetExpenses(user.ID, page, services.ExpenseFilter{ProjectID: &project.ID})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Errorf("expected 2 project expenses, got %d", result.TotalItems)
		}
	})

	t.Run("by asset", func(t *testing.T) {
		result, err := expenseService.GetExpenses(user.ID, page, services.ExpenseFilter{AssetID: &other.ID})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Errorf("expected 1 asset expense, got %d", result.TotalItems)
		}
	})

	t.Run("by category", func(t *testing.T) {
		labor := models.ExpenseCategoryLabor
		result, err := expenseService.GetExpenses(user.ID, page, services.ExpenseFilter{Category: &labor})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Errorf("expected 1 labor expense, got %d", result.TotalItems)
		}
	})

	t.Run("date range excludes everything in the past", func(t *testing.T) {
		future := time.Now().Add(24 * time.Hour)
		result, err := expenseService.GetExpenses(user.ID, page, services.ExpenseFilter{FromDate: &future})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 0 {
			t.Errorf("expected no future expenses, got %d", result.TotalItems)
		}
	})
}

func TestUpdateAndDeleteExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	assetService := services.NewAssetService(db)
	expenseService := services.NewExpenseService(db, assetService)

	user := testutil.CreateTestUser(t, db)
	asset := testutil.CreateTestAsset(t, db, user.ID)
	project := testutil.CreateTestProject(t, db, user.ID, asset.ID)
	expense := testutil.CreateTestExpense(t, db, user.ID, project, models.ExpenseCategoryMaterials, 1000)

	amount := 2500.0
	updated, err := expenseService.UpdateExpense(user.ID, expense.ID, services.UpdateExpenseInput{Amount: &amount})
	testutil.AssertNoError(t, err)
	if updated.Amount != 2500 {
		t.Errorf("expected 2500, got %f", updated.Amount)
	}

	negative := -1.0
	_, err = expenseService.UpdateExpense(user.ID, expense.ID, services.UpdateExpenseInput{Amount: &negative})
	testutil.AssertAppError(t, err, "VALIDATION_ERROR")

	testutil.AssertNoError(t, expenseService.DeleteExpense(user.ID, expense.ID))

	_, err = expenseService.GetExpenseByID(user.ID, expense.ID)
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}
