package models

import "time"

// ExpenseCategory represents the cost type of an expense entry.
type ExpenseCategory string

// General categories apply to any asset or project.
const (
	ExpenseCategoryMaterials   ExpenseCategory = "materials"
	ExpenseCategoryLabor       ExpenseCategory = "labor"
	ExpenseCategoryService     ExpenseCategory = "service"
	ExpenseCategoryElectricity ExpenseCategory = "electricity"
)

// Construction-only categories are typically used on new_construction projects.
const (
	ExpenseCategoryLandFilling    ExpenseCategory = "land_filling"
	ExpenseCategoryBuildingPermit ExpenseCategory = "building_permit"
	ExpenseCategoryFoundation     ExpenseCategory = "foundation"
	ExpenseCategoryArchitectFee   ExpenseCategory = "architect_fee"
)

// AllExpenseCategories lists every expense category, general group first.
var AllExpenseCategories = []ExpenseCategory{
	ExpenseCategoryMaterials,
	ExpenseCategoryLabor,
	ExpenseCategoryService,
	ExpenseCategoryElectricity,
	ExpenseCategoryLandFilling,
	ExpenseCategoryBuildingPermit,
	ExpenseCategoryFoundation,
	ExpenseCategoryArchitectFee,
}

// IsValid reports whether c is a known expense category.
func (c ExpenseCategory) IsValid() bool {
	for _, category := range AllExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsConstructionOnly reports whether c belongs to the construction-only group.
func (c ExpenseCategory) IsConstructionOnly() bool {
	switch c {
	case ExpenseCategoryLandFilling, ExpenseCategoryBuildingPermit,
		ExpenseCategoryFoundation, ExpenseCategoryArchitectFee:
		return true
	}
	return false
}

// Expense represents a cost entry, optionally tied to a renovation project.
// AssetID is denormalized from the owning project so per-asset reporting
// does not need a join.
type Expense struct {
	Base
	UserID              string          `gorm:"type:uuid;not null;index" json:"user_id"`
	AssetID             *string         `gorm:"type:uuid;index" json:"asset_id,omitempty"`
	RenovationProjectID *string         `gorm:"type:uuid;index" json:"renovation_project_id,omitempty"`
	Category            ExpenseCategory `gorm:"not null" json:"category"`
	Amount              float64         `gorm:"not null" json:"amount"`
	Date                time.Time       `gorm:"not null" json:"date"`
	Description         string          `json:"description,omitempty"`
	Vendor              string          `json:"vendor,omitempty"`
}
