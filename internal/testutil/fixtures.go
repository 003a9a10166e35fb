package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"renotrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAsset creates a land asset in developing status.
func CreateTestAsset(t *testing.T, db *gorm.DB, userID string) *models.Asset {
	t.Helper()
	return CreateTestAssetWithType(t, db, userID, models.PropertyTypeLand)
}

// CreateTestAssetWithType creates an asset of the given property type.
func CreateTestAssetWithType(t *testing.T, db *gorm.DB, userID string, propertyType models.PropertyType) *models.Asset {
	t.Helper()

	n := nextID()
	asset := &models.Asset{
		UserID:          userID,
		TitleDeedNumber: fmt.Sprintf("TD-%05d", n),
		Name:            fmt.Sprintf("Test Asset %d", n),
		PropertyType:    propertyType,
		Status:          models.AssetStatusDeveloping,
		PurchasePrice:   1000000,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestProject creates a renovation project in planned status.
func CreateTestProject(t *testing.T, db *gorm.DB, userID, assetID string) *models.RenovationProject {
	t.Helper()

	project := &models.RenovationProject{
		UserID:      userID,
		AssetID:     assetID,
		Name:        fmt.Sprintf("Test Project %d", nextID()),
		StartDate:   time.Now(),
		Budget:      100000,
		Status:      models.ProjectStatusPlanned,
		ProjectType: models.ProjectTypeRenovation,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

// CreateTestConstructionProject creates a new_construction project targeting
// the given property type.
func CreateTestConstructionProject(t *testing.T, db *gorm.DB, userID, assetID string, target models.PropertyType) *models.RenovationProject {
	t.Helper()

	project := &models.RenovationProject{
		UserID:             userID,
		AssetID:            assetID,
		Name:               fmt.Sprintf("Test Construction %d", nextID()),
		StartDate:          time.Now(),
		Budget:             2000000,
		Status:             models.ProjectStatusInProgress,
		ProjectType:        models.ProjectTypeNewConstruction,
		TargetPropertyType: &target,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test construction project: %v", err)
	}
	return project
}

// CreateTestExpense creates an expense of the given category and amount
// against a project, denormalizing the asset reference like the service does.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, project *models.RenovationProject, category models.ExpenseCategory, amount float64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:              userID,
		AssetID:             &project.AssetID,
		RenovationProjectID: &project.ID,
		Category:            category,
		Amount:              amount,
		Date:                time.Now(),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestAssetExpense creates an expense tied directly to an asset.
func CreateTestAssetExpense(t *testing.T, db *gorm.DB, userID, assetID string, category models.ExpenseCategory, amount float64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		AssetID:  &assetID,
		Category: category,
		Amount:   amount,
		Date:     time.Now(),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test asset expense: %v", err)
	}
	return expense
}

// CreateTestIncome creates an income record against an asset.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID, assetID string, amount float64) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID:  userID,
		AssetID: assetID,
		Source:  "ค่าเช่า",
		Amount:  amount,
		Date:    time.Now(),
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}
