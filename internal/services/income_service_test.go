package services_test

import (
	"testing"

	"renotrack/internal/pagination"
	"renotrack/internal/services"
	"renotrack/internal/testutil"
)

func TestCreateIncome(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	assetService := services.NewAssetService(db)
	incomeService := services.NewIncomeService(db, assetService)

	user := testutil.CreateTestUser(t, db)
	asset := testutil.CreateTestAsset(t, db, user.ID)

	t.Run("records against the asset", func(t *testing.T) {
		income, err := incomeService.CreateIncome(user.ID, services.CreateIncomeInput{
			AssetID: asset.ID,
			Source:  "ค่าเช่า",
			Amount:  12000,
		})
		testutil.AssertNoError(t, err)
		if income.Date.IsZero() {
			t.Error("missing date should default to now")
		}
	})

	t.Run("arbitrary source is valid", func(t *testing.T) {
		_, err := incomeService.CreateIncome(user.ID, services.CreateIncomeInput{
			AssetID: asset.ID,
			Source:  "ค่าที่จอดรถ",
			Amount:  500,
		})
		testutil.AssertNoError(t, err)
	})

	t.Run("empty source rejected", func(t *testing.T) {
		_, err := incomeService.CreateIncome(user.ID, services.CreateIncomeInput{
			AssetID: asset.ID,
			Amount:  500,
		})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("other user's asset invisible", func(t *testing.T) {
		stranger := testutil.CreateTestUser(t, db)
		_, err := incomeService.CreateIncome(stranger.ID, services.CreateIncomeInput{
			AssetID: asset.ID,
			Source:  "ค่าเช่า",
			Amount:  100,
		})
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})
}

func TestGetIncomeFiltering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	assetService := services.NewAssetService(db)
	incomeService := services.NewIncomeService(db, assetService)

	user := testutil.CreateTestUser(t, db)
	first := testutil.CreateTestAsset(t, db, user.ID)
	second := testutil.CreateTestAsset(t, db, user.ID)

	testutil.CreateTestIncome(t, db, user.ID, first.ID, 12000)
	testutil.CreateTestIncome(t, db, user.ID, first.ID, 12000)
	testutil.CreateTestIncome(t, db, user.ID, second.ID, 50000)

	page := pagination.PageRequest{Page: 1, PageSize: 10}

	result, err := incomeService.GetIncome(user.ID, page, services.IncomeFilter{AssetID: &first.ID})
	testutil.AssertNoError(t, err)
	if result.TotalItems != 2 {
		t.Errorf("expected 2 records for the first asset, got %d", result.TotalItems)
	}

	source := "ค่าเช่า"
	result, err = incomeService.GetIncome(user.ID, page, services.IncomeFilter{Source: &source})
	testutil.AssertNoError(t, err)
	if result.TotalItems != 3 {
		t.Errorf("expected 3 rent records, got %d", result.TotalItems)
	}
}

func TestUpdateAndDeleteIncome(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	assetService := services.NewAssetService(db)
	incomeService := services.NewIncomeService(db, assetService)

	user := testutil.CreateTestUser(t, db)
	asset := testutil.CreateTestAsset(t, db, user.ID)
	income := testutil.CreateTestIncome(t, db, user.ID, asset.ID, 12000)

	amount := 15000.0
	updated, err := incomeService.UpdateIncome(user.ID, income.ID, services.UpdateIncomeInput{Amount: &amount})
	testutil.AssertNoError(t, err)
	if updated.Amount != 15000 {
		t.Errorf("expected 15000, got %f", updated.Amount)
	}

	testutil.AssertNoError(t, incomeService.DeleteIncome(user.ID, income.ID))

	_, err = incomeService.GetIncomeByID(user.ID, income.ID)
	testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
}
