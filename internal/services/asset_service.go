package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "renotrack/internal/errors"
	"renotrack/internal/listing"
	"renotrack/internal/models"
)

// assetService handles asset-related business logic.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// CreateAsset registers a new asset for the user.
func (s *assetService) CreateAsset(userID string, input CreateAssetInput) (*models.Asset, error) {
	if input.TitleDeedNumber == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title deed number is required")
	}
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "asset name is required")
	}
	if input.PurchasePrice < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "purchase price must not be negative")
	}

	// The title deed number is the business key; one deed, one asset.
	var count int64
	if err := s.db.Model(&models.Asset{}).
		Where("user_id = ? AND title_deed_number = ?", userID, input.TitleDeedNumber).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateDeed
	}

	status := input.Status
	if status == "" {
		status = models.AssetStatusDeveloping
	}

	asset := &models.Asset{
		UserID:           userID,
		TitleDeedNumber:  input.TitleDeedNumber,
		Name:             input.Name,
		PropertyType:     input.PropertyType,
		Status:           status,
		PurchasePrice:    input.PurchasePrice,
		AppraisedValue:   input.AppraisedValue,
		MortgageBank:     input.MortgageBank,
		MonthlyPayment:   input.MonthlyPayment,
		MortgageMonths:   input.MortgageMonths,
		InsuranceDueDate: input.InsuranceDueDate,
		TaxDueDate:       input.TaxDueDate,
		TenantName:       input.TenantName,
		TenantContact:    input.TenantContact,
		Notes:            input.Notes,
	}

	if err := s.db.Create(asset).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return asset, nil
}

// ListAssets loads the user's assets and runs the filter/paginate engine
// over the snapshot. Status tab counts always reflect the full collection.
func (s *assetService) ListAssets(userID string, req AssetListRequest) (*listing.Result, error) {
	var assets []models.Asset
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := listing.FilterAndPaginate(assets, req.StatusFilter, req.Query, req.Page, req.PageSize)
	return &result, nil
}

// GetAssetByID returns an asset by ID if it belongs to the user.
func (s *assetService) GetAssetByID(userID, assetID string) (*models.Asset, error) {
	var asset models.Asset
	if err := s.db.Where("id = ? AND user_id = ?", assetID, userID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}

// UpdateAsset applies a partial edit. Tenant fields are cleared whenever the
// asset ends up in any status other than rented.
func (s *assetService) UpdateAsset(userID, assetID string, input UpdateAssetInput) (*models.Asset, error) {
	asset, err := s.GetAssetByID(userID, assetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Name != nil && *input.Name != "" {
		updates["name"] = *input.Name
	}
	if input.PropertyType != nil {
		updates["property_type"] = *input.PropertyType
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.PurchasePrice != nil {
		updates["purchase_price"] = *input.PurchasePrice
	}
	if input.AppraisedValue != nil {
		updates["appraised_value"] = *input.AppraisedValue
	}
	if input.MortgageBank != nil {
		updates["mortgage_bank"] = *input.MortgageBank
	}
	if input.MonthlyPayment != nil {
		updates["monthly_payment"] = *input.MonthlyPayment
	}
	if input.MortgageMonths != nil {
		updates["mortgage_months"] = *input.MortgageMonths
	}
	if input.InsuranceDueDate != nil {
		updates["insurance_due_date"] = *input.InsuranceDueDate
	}
	if input.TaxDueDate != nil {
		updates["tax_due_date"] = *input.TaxDueDate
	}
	if input.TenantName != nil {
		updates["tenant_name"] = *input.TenantName
	}
	if input.TenantContact != nil {
		updates["tenant_contact"] = *input.TenantContact
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	// Tenant data is only meaningful while rented.
	finalStatus := asset.Status
	if input.Status != nil {
		finalStatus = *input.Status
	}
	if finalStatus != models.AssetStatusRented {
		updates["tenant_name"] = ""
		updates["tenant_contact"] = ""
	}

	if len(updates) > 0 {
		if err := s.db.Model(asset).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return asset, nil
}

// AddImage attaches image metadata to an asset.
func (s *assetService) AddImage(userID, assetID, url, caption string, isCover bool) (*models.AssetImage, error) {
	if url == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "image url is required")
	}

	if _, err := s.GetAssetByID(userID, assetID); err != nil {
		return nil, err
	}

	image := &models.AssetImage{
		UserID:  userID,
		AssetID: assetID,
		URL:     url,
		Caption: caption,
		IsCover: isCover,
	}

	if isCover {
		// Only one cover image per asset.
		if err := s.db.Model(&models.AssetImage{}).
			Where("asset_id = ? AND is_cover = ?", assetID, true).
			Update("is_cover", false).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	if err := s.db.Create(image).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return image, nil
}

// GetAssetImages lists the image metadata attached to an asset.
func (s *assetService) GetAssetImages(userID, assetID string) ([]models.AssetImage, error) {
	if _, err := s.GetAssetByID(userID, assetID); err != nil {
		return nil, err
	}

	var images []models.AssetImage
	if err := s.db.Where("asset_id = ?", assetID).Order("created_at").Find(&images).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return images, nil
}

// RemoveImage detaches an image from an asset.
func (s *assetService) RemoveImage(userID, assetID, imageID string) error {
	var image models.AssetImage
	if err := s.db.Where("id = ? AND asset_id = ? AND user_id = ?", imageID, assetID, userID).
		First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrImageNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&image).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
