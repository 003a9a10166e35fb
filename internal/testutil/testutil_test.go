package testutil_test

import (
	"testing"

	"renotrack/internal/errors"
	"renotrack/internal/models"
	"renotrack/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "assets", "asset_images", "renovation_projects", "expenses", "incomes"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have a non-empty ID")
	}

	asset := testutil.CreateTestAsset(t, db, user.ID)
	if asset.PropertyType != models.PropertyTypeLand {
		t.Errorf("expected land asset, got %s", asset.PropertyType)
	}

	project := testutil.CreateTestProject(t, db, user.ID, asset.ID)
	if project.Status != models.ProjectStatusPlanned {
		t.Errorf("expected planned project, got %s", project.Status)
	}

	construction := testutil.CreateTestConstructionProject(t, db, user.ID, asset.ID, models.PropertyTypeHouse)
	if !construction.TransformsAsset() {
		t.Error("construction project with a target type should transform its asset")
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, project, models.ExpenseCategoryMaterials, 5000)
	if expense.AssetID == nil || *expense.AssetID != asset.ID {
		t.Error("project expense should carry the project's asset reference")
	}

	income := testutil.CreateTestIncome(t, db, user.ID, asset.ID, 12000)
	if income.Amount != 12000 {
		t.Errorf("expected amount 12000, got %f", income.Amount)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrAssetNotFound, "custom message")
	testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
