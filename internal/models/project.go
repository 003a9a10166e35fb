package models

import "time"

// ProjectStatus represents the lifecycle state of a renovation project.
type ProjectStatus string

const (
	ProjectStatusPlanned    ProjectStatus = "planned"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// IsValid reports whether s is a known project status.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanned, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed out of s.
func (s ProjectStatus) IsTerminal() bool {
	return s == ProjectStatusCompleted || s == ProjectStatusCancelled
}

// CanTransitionTo reports whether the status may move to target.
// Projects only move forward: planned -> in_progress -> completed, with
// cancellation possible from planned or in_progress. Completed and
// cancelled are terminal.
func (s ProjectStatus) CanTransitionTo(target ProjectStatus) bool {
	switch s {
	case ProjectStatusPlanned:
		return target == ProjectStatusInProgress ||
			target == ProjectStatusCompleted ||
			target == ProjectStatusCancelled
	case ProjectStatusInProgress:
		return target == ProjectStatusCompleted ||
			target == ProjectStatusCancelled
	}
	return false
}

// ProjectType distinguishes renovation work from new construction.
type ProjectType string

const (
	ProjectTypeRenovation      ProjectType = "renovation"
	ProjectTypeNewConstruction ProjectType = "new_construction"
)

// IsValid reports whether t is a known project type.
func (t ProjectType) IsValid() bool {
	return t == ProjectTypeRenovation || t == ProjectTypeNewConstruction
}

// RenovationProject represents a bounded unit of renovation or construction
// work against a single asset, with its own budget and lifecycle.
type RenovationProject struct {
	Base
	UserID      string        `gorm:"type:uuid;not null;index" json:"user_id"`
	AssetID     string        `gorm:"type:uuid;not null;index" json:"asset_id"`
	Name        string        `gorm:"not null" json:"name"`
	Description string        `json:"description,omitempty"`
	StartDate   time.Time     `gorm:"not null" json:"start_date"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	Budget      float64       `gorm:"not null" json:"budget"`
	Status      ProjectStatus `gorm:"not null;default:'planned'" json:"status"`
	ProjectType ProjectType   `gorm:"not null;default:'renovation'" json:"project_type"`

	// TargetPropertyType is set only on new_construction projects that
	// intend to transform the asset on completion.
	TargetPropertyType *PropertyType `json:"target_property_type,omitempty"`

	// Relationships
	Asset    Asset     `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	Expenses []Expense `gorm:"foreignKey:RenovationProjectID" json:"expenses,omitempty"`
}

// TransformsAsset reports whether completing the project should offer the
// asset transformation step.
func (p *RenovationProject) TransformsAsset() bool {
	return p.ProjectType == ProjectTypeNewConstruction && p.TargetPropertyType != nil
}
