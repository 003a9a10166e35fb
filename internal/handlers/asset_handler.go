package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "renotrack/internal/errors"
	"renotrack/internal/listing"
	"renotrack/internal/models"
	"renotrack/internal/services"
)

// AssetHandler handles asset-related requests.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateAssetRequest represents the request payload for registering an asset.
type CreateAssetRequest struct {
	TitleDeedNumber  string     `json:"title_deed_number" binding:"required,min=1,max=100"`
	Name             string     `json:"name" binding:"required,min=1,max=200"`
	PropertyType     string     `json:"property_type" binding:"required,property_type"`
	Status           string     `json:"status" binding:"omitempty,asset_status"`
	PurchasePrice    float64    `json:"purchase_price" binding:"gte=0"`
	AppraisedValue   *float64   `json:"appraised_value" binding:"omitempty,gte=0"`
	MortgageBank     string     `json:"mortgage_bank" binding:"max=100"`
	MonthlyPayment   *float64   `json:"monthly_payment" binding:"omitempty,gte=0"`
	MortgageMonths   *int       `json:"mortgage_months" binding:"omitempty,gt=0"`
	InsuranceDueDate *time.Time `json:"insurance_due_date"`
	TaxDueDate       *time.Time `json:"tax_due_date"`
	TenantName       string     `json:"tenant_name" binding:"max=200"`
	TenantContact    string     `json:"tenant_contact" binding:"max=200"`
	Notes            string     `json:"notes" binding:"max=2000"`
}

// UpdateAssetRequest represents the request payload for editing an asset.
type UpdateAssetRequest struct {
	Name             *string    `json:"name" binding:"omitempty,min=1,max=200"`
	PropertyType     *string    `json:"property_type" binding:"omitempty,property_type"`
	Status           *string    `json:"status" binding:"omitempty,asset_status"`
	PurchasePrice    *float64   `json:"purchase_price" binding:"omitempty,gte=0"`
	AppraisedValue   *float64   `json:"appraised_value" binding:"omitempty,gte=0"`
	MortgageBank     *string    `json:"mortgage_bank" binding:"omitempty,max=100"`
	MonthlyPayment   *float64   `json:"monthly_payment" binding:"omitempty,gte=0"`
	MortgageMonths   *int       `json:"mortgage_months" binding:"omitempty,gt=0"`
	InsuranceDueDate *time.Time `json:"insurance_due_date"`
	TaxDueDate       *time.Time `json:"tax_due_date"`
	TenantName       *string    `json:"tenant_name" binding:"omitempty,max=200"`
	TenantContact    *string    `json:"tenant_contact" binding:"omitempty,max=200"`
	Notes            *string    `json:"notes" binding:"omitempty,max=2000"`
}

// AddImageRequest represents the request payload for attaching an image.
type AddImageRequest struct {
	URL     string `json:"url" binding:"required,max=2000"`
	Caption string `json:"caption" binding:"max=500"`
	IsCover bool   `json:"is_cover"`
}

// CreateAsset handles registering a new asset.
// @Summary     Register an asset
// @Description Register a new real-estate asset
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     201 {object} models.Asset "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate title deed number"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.CreateAsset(userID, services.CreateAssetInput{
		TitleDeedNumber:  req.TitleDeedNumber,
		Name:             req.Name,
		PropertyType:     models.PropertyType(req.PropertyType),
		Status:           models.AssetStatus(req.Status),
		PurchasePrice:    req.PurchasePrice,
		AppraisedValue:   req.AppraisedValue,
		MortgageBank:     req.MortgageBank,
		MonthlyPayment:   req.MonthlyPayment,
		MortgageMonths:   req.MortgageMonths,
		InsuranceDueDate: req.InsuranceDueDate,
		TaxDueDate:       req.TaxDueDate,
		TenantName:       req.TenantName,
		TenantContact:    req.TenantContact,
		Notes:            req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// GetAssets handles the filtered, paginated asset list.
// @Summary     List assets
// @Description Get a filtered, paginated list of assets with status tab counts
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       status    query string false "Status filter (default all)"
// @Param       q         query string false "Search by name or title deed number"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20)"
// @Success     200 {object} listing.Result "Filtered asset page"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) GetAssets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query struct {
		Status   string `form:"status" binding:"omitempty"`
		Q        string `form:"q"`
		Page     int    `form:"page" binding:"omitempty,min=1"`
		PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	status := query.Status
	if status == "" {
		status = listing.StatusFilterAll
	}
	if status != listing.StatusFilterAll && !models.AssetStatus(status).IsValid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown status filter"))
		return
	}

	result, err := h.assetService.ListAssets(userID, services.AssetListRequest{
		StatusFilter: status,
		Query:        query.Q,
		Page:         query.Page,
		PageSize:     query.PageSize,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAsset handles retrieving a specific asset.
// @Summary     Get asset by ID
// @Description Get a specific asset by ID
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Success     200 {object} models.Asset "Asset details"
// @Failure     400 {object} ErrorResponse "Invalid asset ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.GetAssetByID(userID, assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// UpdateAsset handles editing an asset.
// @Summary     Update asset
// @Description Update an existing asset; tenant fields are cleared when the status is not rented
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Asset ID"
// @Param       request body UpdateAssetRequest true "Updated asset details"
// @Success     200 {object} models.Asset "Updated asset"
// @Failure     400 {object} ErrorResponse "Invalid input or asset ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.UpdateAssetInput{
		Name:             req.Name,
		PurchasePrice:    req.PurchasePrice,
		AppraisedValue:   req.AppraisedValue,
		MortgageBank:     req.MortgageBank,
		MonthlyPayment:   req.MonthlyPayment,
		MortgageMonths:   req.MortgageMonths,
		InsuranceDueDate: req.InsuranceDueDate,
		TaxDueDate:       req.TaxDueDate,
		TenantName:       req.TenantName,
		TenantContact:    req.TenantContact,
		Notes:            req.Notes,
	}
	if req.PropertyType != nil {
		pt := models.PropertyType(*req.PropertyType)
		input.PropertyType = &pt
	}
	if req.Status != nil {
		st := models.AssetStatus(*req.Status)
		input.Status = &st
	}

	asset, err := h.assetService.UpdateAsset(userID, assetID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// AddImage handles attaching image metadata to an asset.
// @Summary     Attach an image
// @Description Attach image metadata to an asset
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string          true "Asset ID"
// @Param       request body AddImageRequest true "Image metadata"
// @Success     201 {object} models.AssetImage "Image attached"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id}/images [post]
func (h *AssetHandler) AddImage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	image, err := h.assetService.AddImage(userID, assetID, req.URL, req.Caption, req.IsCover)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image": image})
}

// GetImages handles listing an asset's images.
// @Summary     List asset images
// @Description List image metadata attached to an asset
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Success     200 {object} map[string]interface{} "Images"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id}/images [get]
func (h *AssetHandler) GetImages(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	images, err := h.assetService.GetAssetImages(userID, assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

// RemoveImage handles detaching an image from an asset.
// @Summary     Remove asset image
// @Description Detach an image from an asset
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string true "Asset ID"
// @Param       imageID path string true "Image ID"
// @Success     200 {object} MessageResponse "Image removed"
// @Failure     404 {object} ErrorResponse "Asset or image not found"
// @Router      /assets/{id}/images/{imageID} [delete]
func (h *AssetHandler) RemoveImage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	imageID, err := parsePathID(c, "imageID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.RemoveImage(userID, assetID, imageID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image removed successfully"})
}
