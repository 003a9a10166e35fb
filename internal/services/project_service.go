package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "renotrack/internal/errors"
	"renotrack/internal/models"
)

// projectService handles the renovation project lifecycle.
type projectService struct {
	db           *gorm.DB
	assetService AssetServicer
}

// NewProjectService creates a new ProjectServicer.
func NewProjectService(db *gorm.DB, assetService AssetServicer) ProjectServicer {
	return &projectService{db: db, assetService: assetService}
}

// CreateProject opens a new renovation or construction project against an asset.
func (s *projectService) CreateProject(userID string, input CreateProjectInput) (*models.RenovationProject, error) {
	if input.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "project name is required")
	}
	if input.Budget < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget must not be negative")
	}

	status := input.Status
	if status == "" {
		status = models.ProjectStatusPlanned
	}
	// Projects start planned or already in progress, never terminal.
	if status != models.ProjectStatusPlanned && status != models.ProjectStatusInProgress {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "a new project must be planned or in_progress")
	}

	if input.TargetPropertyType != nil && input.ProjectType != models.ProjectTypeNewConstruction {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target property type is only valid on new_construction projects")
	}

	// Verify the asset exists and belongs to the user.
	if _, err := s.assetService.GetAssetByID(userID, input.AssetID); err != nil {
		return nil, err
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}

	project := &models.RenovationProject{
		UserID:             userID,
		AssetID:            input.AssetID,
		Name:               input.Name,
		Description:        input.Description,
		StartDate:          startDate,
		Budget:             input.Budget,
		Status:             status,
		ProjectType:        input.ProjectType,
		TargetPropertyType: input.TargetPropertyType,
	}

	if err := s.db.Create(project).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return project, nil
}

// GetAssetProjects lists all projects against one asset, newest first.
func (s *projectService) GetAssetProjects(userID, assetID string) ([]models.RenovationProject, error) {
	if _, err := s.assetService.GetAssetByID(userID, assetID); err != nil {
		return nil, err
	}

	var projects []models.RenovationProject
	if err := s.db.Where("user_id = ? AND asset_id = ?", userID, assetID).
		Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return projects, nil
}

// GetProjectByID returns a project by ID if it belongs to the user.
func (s *projectService) GetProjectByID(userID, projectID string) (*models.RenovationProject, error) {
	var project models.RenovationProject
	if err := s.db.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &project, nil
}

// UpdateProject edits a project's descriptive fields. Lifecycle moves go
// through AdvanceProject or CompleteProject.
func (s *projectService) UpdateProject(userID, projectID string, input UpdateProjectInput) (*models.RenovationProject, error) {
	project, err := s.GetProjectByID(userID, projectID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Name != nil && *input.Name != "" {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.StartDate != nil {
		updates["start_date"] = *input.StartDate
	}
	if input.Budget != nil {
		if *input.Budget < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget must not be negative")
		}
		updates["budget"] = *input.Budget
	}
	if input.TargetPropertyType != nil {
		if project.ProjectType != models.ProjectTypeNewConstruction {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target property type is only valid on new_construction projects")
		}
		updates["target_property_type"] = *input.TargetPropertyType
	}

	if len(updates) > 0 {
		if err := s.db.Model(project).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return project, nil
}

// AdvanceProject moves a project to the target status, enforcing the
// transition table before any write. Entering completed stamps end_date
// with today's date; every non-completed status keeps end_date empty.
func (s *projectService) AdvanceProject(userID, projectID string, target models.ProjectStatus) (*models.RenovationProject, error) {
	project, err := s.GetProjectByID(userID, projectID)
	if err != nil {
		return nil, err
	}

	if !target.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown project status")
	}
	if !project.Status.CanTransitionTo(target) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidTransition,
			"cannot move project from "+string(project.Status)+" to "+string(target))
	}

	updates := map[string]interface{}{"status": target}
	if target == models.ProjectStatusCompleted {
		now := time.Now()
		updates["end_date"] = now
		project.EndDate = &now
	} else {
		updates["end_date"] = nil
		project.EndDate = nil
	}

	if err := s.db.Model(project).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	project.Status = target
	return project, nil
}

// CompletionPreview describes the confirmation step the UI should show
// before completing the project. Only a new_construction project with a
// target property type requires confirmation; everything else completes as
// a plain status update.
func (s *projectService) CompletionPreview(userID, projectID string) (*CompletionPreview, error) {
	project, err := s.GetProjectByID(userID, projectID)
	if err != nil {
		return nil, err
	}

	if !project.Status.CanTransitionTo(models.ProjectStatusCompleted) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidTransition,
			"cannot complete a project in status "+string(project.Status))
	}

	if !project.TransformsAsset() {
		return &CompletionPreview{RequiresConfirmation: false}, nil
	}

	asset, err := s.assetService.GetAssetByID(userID, project.AssetID)
	if err != nil {
		return nil, err
	}

	return &CompletionPreview{
		RequiresConfirmation: true,
		SuggestedName:        SuggestAssetName(asset.Name, project.Name, *project.TargetPropertyType),
		TargetPropertyType:   project.TargetPropertyType,
	}, nil
}

// CompleteProject marks the project completed and, when requested, applies
// the asset transformation as a second independent write.
//
// The two writes are deliberately not wrapped in a transaction: the project
// write happens first, and if the asset write then fails the project stays
// completed and ErrPartialCompletion is returned alongside the completed
// project. Re-running the asset update is safe — it is a plain overwrite.
func (s *projectService) CompleteProject(userID, projectID string, opts CompletionOptions) (*CompletionResult, error) {
	project, err := s.GetProjectByID(userID, projectID)
	if err != nil {
		return nil, err
	}

	// Illegal transitions are rejected locally, before any write.
	if !project.Status.CanTransitionTo(models.ProjectStatusCompleted) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidTransition,
			"cannot complete a project in status "+string(project.Status))
	}

	// First write: the project itself.
	now := time.Now()
	if err := s.db.Model(project).Updates(map[string]interface{}{
		"status":   models.ProjectStatusCompleted,
		"end_date": now,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	project.Status = models.ProjectStatusCompleted
	project.EndDate = &now

	result := &CompletionResult{Project: project}

	// "Complete without updating the asset" is a first-class decision, and
	// renovation projects never touch the asset.
	if !opts.ApplyAssetUpdate || !project.TransformsAsset() {
		return result, nil
	}

	// Second write: transform the asset. Failure from here on is a partial
	// failure — the project status change above is not rolled back.
	asset, err := s.assetService.GetAssetByID(userID, project.AssetID)
	if err != nil {
		return result, apperrors.Wrap(apperrors.ErrPartialCompletion, err)
	}

	target := *project.TargetPropertyType
	update := UpdateAssetInput{
		PropertyType: &target,
		Status:       assetStatusPtr(models.AssetStatusReadyForSale),
	}
	if opts.RenameAsset {
		if name := strings.TrimSpace(opts.NewName); name != "" {
			update.Name = &name
		}
	}

	updated, err := s.assetService.UpdateAsset(userID, asset.ID, update)
	if err != nil {
		return result, apperrors.Wrap(apperrors.ErrPartialCompletion, err)
	}

	result.Asset = updated
	return result, nil
}

// nameTokens are tried in order against the asset name; longer phrases
// first so "vacant land" is replaced whole.
var nameTokens = []string{"ที่ดินเปล่า", "ที่ดิน"}

// SuggestAssetName proposes a post-construction name for an asset by
// substituting every occurrence of the land token in its current name with
// the label of the target property type. "Land" is matched
// case-insensitively. When no token occurs, the suggestion falls back to
// "{label} - {project name}".
func SuggestAssetName(assetName, projectName string, target models.PropertyType) string {
	label := target.Label()

	for _, token := range nameTokens {
		if strings.Contains(assetName, token) {
			return strings.ReplaceAll(assetName, token, label)
		}
	}

	if strings.Contains(strings.ToLower(assetName), "land") {
		var b strings.Builder
		rest := assetName
		for {
			idx := strings.Index(strings.ToLower(rest), "land")
			if idx < 0 {
				b.WriteString(rest)
				break
			}
			b.WriteString(rest[:idx])
			b.WriteString(label)
			rest = rest[idx+len("land"):]
		}
		return b.String()
	}

	return label + " - " + projectName
}

func assetStatusPtr(s models.AssetStatus) *models.AssetStatus {
	return &s
}
