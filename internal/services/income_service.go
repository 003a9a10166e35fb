package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "renotrack/internal/errors"
	"renotrack/internal/models"
	"renotrack/internal/pagination"
)

// incomeService handles income-related business logic.
type incomeService struct {
	db           *gorm.DB
	assetService AssetServicer
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB, assetService AssetServicer) IncomeServicer {
	return &incomeService{db: db, assetService: assetService}
}

// CreateIncome records a revenue entry against an asset.
func (s *incomeService) CreateIncome(userID string, input CreateIncomeInput) (*models.Income, error) {
	if input.Amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if input.Source == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "income source is required")
	}

	if _, err := s.assetService.GetAssetByID(userID, input.AssetID); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	income := &models.Income{
		UserID:      userID,
		AssetID:     input.AssetID,
		Source:      input.Source,
		Amount:      input.Amount,
		Date:        date,
		Description: input.Description,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return income, nil
}

// GetIncome retrieves a paginated, filtered list of the user's income records.
func (s *incomeService) GetIncome(userID string, page pagination.PageRequest, filter IncomeFilter) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	base := s.db.Model(&models.Income{}).Where("user_id = ?", userID)
	if filter.AssetID != nil {
		base = base.Where("asset_id = ?", *filter.AssetID)
	}
	if filter.Source != nil {
		base = base.Where("source = ?", *filter.Source)
	}
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var income []models.Income
	if err := base.Order("date DESC").Scopes(pagination.Paginate(page)).Find(&income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(income, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetIncomeByID returns an income record by ID if it belongs to the user.
func (s *incomeService) GetIncomeByID(userID, incomeID string) (*models.Income, error) {
	var income models.Income
	if err := s.db.Where("id = ? AND user_id = ?", incomeID, userID).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// UpdateIncome edits an income record.
func (s *incomeService) UpdateIncome(userID, incomeID string, input UpdateIncomeInput) (*models.Income, error) {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Source != nil && *input.Source != "" {
		updates["source"] = *input.Source
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

	if len(updates) > 0 {
		if err := s.db.Model(income).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return income, nil
}

// DeleteIncome soft-deletes an income record.
func (s *incomeService) DeleteIncome(userID, incomeID string) error {
	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
