package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "renotrack/internal/errors"
	"renotrack/internal/models"
	"renotrack/internal/pagination"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db           *gorm.DB
	assetService AssetServicer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, assetService AssetServicer) ExpenseServicer {
	return &expenseService{db: db, assetService: assetService}
}

// CreateExpense records a cost entry. When the expense belongs to a
// project, the owning asset is denormalized onto the row so per-asset
// reports never need a join.
func (s *expenseService) CreateExpense(userID string, input CreateExpenseInput) (*models.Expense, error) {
	if input.Amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if !input.Category.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown expense category")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	assetID := input.AssetID
	if input.RenovationProjectID != nil {
		var project models.RenovationProject
		if err := s.db.Where("id = ? AND user_id = ?", *input.RenovationProjectID, userID).
			First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProjectNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		assetID = &project.AssetID
	} else if assetID != nil {
		if _, err := s.assetService.GetAssetByID(userID, *assetID); err != nil {
			return nil, err
		}
	}

	expense := &models.Expense{
		UserID:              userID,
		AssetID:             assetID,
		RenovationProjectID: input.RenovationProjectID,
		Category:            input.Category,
		Amount:              input.Amount,
		Date:                date,
		Description:         input.Description,
		Vendor:              input.Vendor,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetExpenses retrieves a paginated, filtered list of the user's expenses.
func (s *expenseService) GetExpenses(userID string, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	base = applyExpenseFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("date DESC").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpenseByID returns an expense by ID if it belongs to the user.
func (s *expenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense edits an expense. Reports pick up the change on their next
// read; there is no cached derived state to invalidate.
func (s *expenseService) UpdateExpense(userID, expenseID string, input UpdateExpenseInput) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown expense category")
		}
		updates["category"] = *input.Category
	}
	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
		}
		updates["amount"] = *input.Amount
	}
	if input.Date != nil {
		updates["date"] = *input.Date
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Vendor != nil {
		updates["vendor"] = *input.Vendor
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return expense, nil
}

// DeleteExpense soft-deletes an expense.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// applyExpenseFilters adds WHERE clauses for any filter fields that are set.
func applyExpenseFilters(db *gorm.DB, filter ExpenseFilter) *gorm.DB {
	if filter.AssetID != nil {
		db = db.Where("asset_id = ?", *filter.AssetID)
	}
	if filter.ProjectID != nil {
		db = db.Where("renovation_project_id = ?", *filter.ProjectID)
	}
	if filter.Category != nil {
		db = db.Where("category = ?", *filter.Category)
	}
	if filter.FromDate != nil {
		db = db.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		db = db.Where("date <= ?", *filter.ToDate)
	}
	return db
}
