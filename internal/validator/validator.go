// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"renotrack/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("property_type", validatePropertyType)
		_ = v.RegisterValidation("asset_status", validateAssetStatus)
		_ = v.RegisterValidation("project_status", validateProjectStatus)
		_ = v.RegisterValidation("project_type", validateProjectType)
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
	}
}

func validatePropertyType(fl validator.FieldLevel) bool {
	return models.PropertyType(fl.Field().String()).IsValid()
}

func validateAssetStatus(fl validator.FieldLevel) bool {
	return models.AssetStatus(fl.Field().String()).IsValid()
}

func validateProjectStatus(fl validator.FieldLevel) bool {
	return models.ProjectStatus(fl.Field().String()).IsValid()
}

func validateProjectType(fl validator.FieldLevel) bool {
	return models.ProjectType(fl.Field().String()).IsValid()
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.ExpenseCategory(fl.Field().String()).IsValid()
}
