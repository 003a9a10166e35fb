package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "renotrack/internal/errors"
	"renotrack/internal/models"
	"renotrack/internal/services"
)

// ProjectHandler handles renovation project requests.
type ProjectHandler struct {
	projectService services.ProjectServicer
	reportService  services.ReportServicer
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService services.ProjectServicer, reportService services.ReportServicer) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, reportService: reportService}
}

// CreateProjectRequest represents the request payload for opening a project.
type CreateProjectRequest struct {
	AssetID            string     `json:"asset_id" binding:"required,uuid"`
	Name               string     `json:"name" binding:"required,min=1,max=200"`
	Description        string     `json:"description" binding:"max=2000"`
	StartDate          *time.Time `json:"start_date"`
	Budget             float64    `json:"budget" binding:"gte=0"`
	Status             string     `json:"status" binding:"omitempty,project_status"`
	ProjectType        string     `json:"project_type" binding:"required,project_type"`
	TargetPropertyType *string    `json:"target_property_type" binding:"omitempty,property_type"`
}

// UpdateProjectRequest represents the request payload for editing a project.
type UpdateProjectRequest struct {
	Name               *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Description        *string    `json:"description" binding:"omitempty,max=2000"`
	StartDate          *time.Time `json:"start_date"`
	Budget             *float64   `json:"budget" binding:"omitempty,gte=0"`
	TargetPropertyType *string    `json:"target_property_type" binding:"omitempty,property_type"`
}

// AdvanceProjectRequest represents the request payload for a status move.
type AdvanceProjectRequest struct {
	Status string `json:"status" binding:"required,project_status"`
}

// CompleteProjectRequest captures the confirmation step's choices.
type CompleteProjectRequest struct {
	ApplyAssetUpdate bool   `json:"apply_asset_update"`
	RenameAsset      bool   `json:"rename_asset"`
	NewName          string `json:"new_name" binding:"max=200"`
}

// CreateProject handles opening a new project.
// @Summary     Create a project
// @Description Open a renovation or new-construction project against an asset
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateProjectRequest true "Project details"
// @Success     201 {object} models.RenovationProject "Project created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.CreateProjectInput{
		AssetID:     req.AssetID,
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		Status:      models.ProjectStatus(req.Status),
		ProjectType: models.ProjectType(req.ProjectType),
	}
	if req.StartDate != nil {
		input.StartDate = *req.StartDate
	}
	if req.TargetPropertyType != nil {
		pt := models.PropertyType(*req.TargetPropertyType)
		input.TargetPropertyType = &pt
	}

	project, err := h.projectService.CreateProject(userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// GetAssetProjects handles listing the projects opened against an asset.
// @Summary     List projects for an asset
// @Description Get all renovation projects for a specific asset, newest first
// @Tags        projects
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Success     200 {object} map[string]interface{} "Projects"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id}/projects [get]
func (h *ProjectHandler) GetAssetProjects(c *gin.Context) {
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

	projects, err := h.projectService.GetAssetProjects(userID, assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProject handles retrieving a specific project.
// @Summary     Get project by ID
// @Description Get a specific renovation project by ID
// @Tags        projects
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Project ID"
// @Success     200 {object} models.RenovationProject "Project details"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	project, err := h.projectService.GetProjectByID(userID, projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// UpdateProject handles editing a project's details.
// @Summary     Update project
// @Description Update a project's descriptive fields; status moves use the advance and complete endpoints
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Project ID"
// @Param       request body UpdateProjectRequest true "Updated project details"
// @Success     200 {object} models.RenovationProject "Updated project"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		Budget:      req.Budget,
	}
	if req.TargetPropertyType != nil {
		pt := models.PropertyType(*req.TargetPropertyType)
		input.TargetPropertyType = &pt
	}

	project, err := h.projectService.UpdateProject(userID, projectID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// AdvanceProject handles a plain lifecycle move.
// @Summary     Advance project status
// @Description Move a project through its lifecycle; illegal transitions are rejected before any write
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Project ID"
// @Param       request body AdvanceProjectRequest true "Target status"
// @Success     200 {object} models.RenovationProject "Updated project"
// @Failure     400 {object} ErrorResponse "Illegal transition"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{id}/advance [post]
func (h *ProjectHandler) AdvanceProject(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AdvanceProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	project, err := h.projectService.AdvanceProject(userID, projectID, models.ProjectStatus(req.Status))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// GetCompletionPreview handles the pre-completion confirmation data.
// @Summary     Preview project completion
// @Description Get the confirmation step for completing a project, including the suggested asset name
// @Tags        projects
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Project ID"
// @Success     200 {object} services.CompletionPreview "Completion preview"
// @Failure     400 {object} ErrorResponse "Project cannot be completed"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{id}/completion-preview [get]
func (h *ProjectHandler) GetCompletionPreview(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	preview, err := h.projectService.CompletionPreview(userID, projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preview": preview})
}

// CompleteProject handles completion with the optional asset transformation.
//
// A partial failure (project completed, asset update failed) is never
// reported as success: the response carries the PARTIAL_FAILURE code plus
// the completed project, so the client can re-offer the asset update.
// @Summary     Complete project
// @Description Mark a project completed, optionally transforming the linked asset
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true "Project ID"
// @Param       request body CompleteProjectRequest true "Completion choices"
// @Success     200 {object} services.CompletionResult "Completed project and updated asset"
// @Failure     400 {object} ErrorResponse "Illegal transition"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     500 {object} ErrorResponse "Asset update failed after project completion"
// @Router      /projects/{id}/complete [post]
func (h *ProjectHandler) CompleteProject(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CompleteProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.projectService.CompleteProject(userID, projectID, services.CompletionOptions{
		ApplyAssetUpdate: req.ApplyAssetUpdate,
		RenameAsset:      req.RenameAsset,
		NewName:          req.NewName,
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == "PARTIAL_FAILURE" && result != nil {
			// Both halves' outcomes, separately: the project IS completed.
			c.JSON(appErr.StatusCode, gin.H{
				"error": gin.H{
					"code":    appErr.Code,
					"message": appErr.Message,
				},
				"project": result.Project,
			})
			return
		}
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProjectBudget handles the budget utilization report for a project.
// @Summary     Get project budget report
// @Description Get budget utilization and per-category expense breakdown for a project
// @Tags        projects
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Project ID"
// @Success     200 {object} services.ProjectBudgetReport "Budget report"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Router      /projects/{id}/budget [get]
func (h *ProjectHandler) GetProjectBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.GetProjectBudget(userID, projectID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
