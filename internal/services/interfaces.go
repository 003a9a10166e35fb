package services

import (
	"time"

	"renotrack/internal/listing"
	"renotrack/internal/models"
	"renotrack/internal/pagination"
	"renotrack/internal/reports"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CreateAssetInput holds the fields for registering a new asset.
type CreateAssetInput struct {
	TitleDeedNumber  string
	Name             string
	PropertyType     models.PropertyType
	Status           models.AssetStatus
	PurchasePrice    float64
	AppraisedValue   *float64
	MortgageBank     string
	MonthlyPayment   *float64
	MortgageMonths   *int
	InsuranceDueDate *time.Time
	TaxDueDate       *time.Time
	TenantName       string
	TenantContact    string
	Notes            string
}

// UpdateAssetInput holds optional fields for editing an asset. Nil pointers
// leave the stored value unchanged.
type UpdateAssetInput struct {
	Name             *string
	PropertyType     *models.PropertyType
	Status           *models.AssetStatus
	PurchasePrice    *float64
	AppraisedValue   *float64
	MortgageBank     *string
	MonthlyPayment   *float64
	MortgageMonths   *int
	InsuranceDueDate *time.Time
	TaxDueDate       *time.Time
	TenantName       *string
	TenantContact    *string
	Notes            *string
}

// AssetListRequest carries the view parameters for the asset list.
type AssetListRequest struct {
	StatusFilter string
	Query        string
	Page         int
	PageSize     int
}

// AssetServicer defines the contract for asset-related business logic.
type AssetServicer interface {
	CreateAsset(userID string, input CreateAssetInput) (*models.Asset, error)
	ListAssets(userID string, req AssetListRequest) (*listing.Result, error)
	GetAssetByID(userID, assetID string) (*models.Asset, error)
	UpdateAsset(userID, assetID string, input UpdateAssetInput) (*models.Asset, error)
	AddImage(userID, assetID, url, caption string, isCover bool) (*models.AssetImage, error)
	GetAssetImages(userID, assetID string) ([]models.AssetImage, error)
	RemoveImage(userID, assetID, imageID string) error
}

// CreateProjectInput holds the fields for opening a renovation project.
type CreateProjectInput struct {
	AssetID            string
	Name               string
	Description        string
	StartDate          time.Time
	Budget             float64
	Status             models.ProjectStatus
	ProjectType        models.ProjectType
	TargetPropertyType *models.PropertyType
}

// UpdateProjectInput holds optional fields for editing a project's details.
// Status is not updatable here; lifecycle moves go through AdvanceProject
// or CompleteProject.
type UpdateProjectInput struct {
	Name               *string
	Description        *string
	StartDate          *time.Time
	Budget             *float64
	TargetPropertyType *models.PropertyType
}

// CompletionPreview describes the confirmation step offered before
// completing a project that can transform its asset.
type CompletionPreview struct {
	RequiresConfirmation bool                 `json:"requires_confirmation"`
	SuggestedName        string               `json:"suggested_name,omitempty"`
	TargetPropertyType   *models.PropertyType `json:"target_property_type,omitempty"`
}

// CompletionOptions captures the user's choices in the completion
// confirmation step. ApplyAssetUpdate false means "complete without
// updating the asset" — a first-class path, not an error.
type CompletionOptions struct {
	ApplyAssetUpdate bool
	RenameAsset      bool
	NewName          string
}

// CompletionResult carries both halves of the completion side effect.
// Asset is nil when no asset update was requested or applicable.
type CompletionResult struct {
	Project *models.RenovationProject `json:"project"`
	Asset   *models.Asset             `json:"asset,omitempty"`
}

// ProjectServicer defines the contract for the project lifecycle.
type ProjectServicer interface {
	CreateProject(userID string, input CreateProjectInput) (*models.RenovationProject, error)
	GetAssetProjects(userID, assetID string) ([]models.RenovationProject, error)
	GetProjectByID(userID, projectID string) (*models.RenovationProject, error)
	UpdateProject(userID, projectID string, input UpdateProjectInput) (*models.RenovationProject, error)
	AdvanceProject(userID, projectID string, target models.ProjectStatus) (*models.RenovationProject, error)
	CompletionPreview(userID, projectID string) (*CompletionPreview, error)
	CompleteProject(userID, projectID string, opts CompletionOptions) (*CompletionResult, error)
}

// CreateExpenseInput holds the fields for recording an expense.
type CreateExpenseInput struct {
	AssetID             *string
	RenovationProjectID *string
	Category            models.ExpenseCategory
	Amount              float64
	Date                time.Time
	Description         string
	Vendor              string
}

// UpdateExpenseInput holds optional fields for editing an expense.
type UpdateExpenseInput struct {
	Category    *models.ExpenseCategory
	Amount      *float64
	Date        *time.Time
	Description *string
	Vendor      *string
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	AssetID   *string
	ProjectID *string
	Category  *models.ExpenseCategory
	FromDate  *time.Time
	ToDate    *time.Time
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID string, input CreateExpenseInput) (*models.Expense, error)
	GetExpenses(userID string, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, input UpdateExpenseInput) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
}

// CreateIncomeInput holds the fields for recording income.
type CreateIncomeInput struct {
	AssetID     string
	Source      string
	Amount      float64
	Date        time.Time
	Description string
}

// UpdateIncomeInput holds optional fields for editing an income record.
type UpdateIncomeInput struct {
	Source      *string
	Amount      *float64
	Date        *time.Time
	Description *string
}

// IncomeFilter holds optional filter parameters for listing income records.
type IncomeFilter struct {
	AssetID  *string
	Source   *string
	FromDate *time.Time
	ToDate   *time.Time
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	CreateIncome(userID string, input CreateIncomeInput) (*models.Income, error)
	GetIncome(userID string, page pagination.PageRequest, filter IncomeFilter) (*pagination.PageResponse[models.Income], error)
	GetIncomeByID(userID, incomeID string) (*models.Income, error)
	UpdateIncome(userID, incomeID string, input UpdateIncomeInput) (*models.Income, error)
	DeleteIncome(userID, incomeID string) error
}

// ProjectBudgetReport combines budget utilization with the full per-category
// breakdown for one project.
type ProjectBudgetReport struct {
	Utilization reports.BudgetUtilization          `json:"utilization"`
	ByCategory  map[models.ExpenseCategory]float64 `json:"by_category"`
}

// MonthlyReport is the 12-month income/expense series for one year.
type MonthlyReport struct {
	Year     int                   `json:"year"`
	Series   []reports.MonthBucket `json:"series"`
	ScaleMax float64               `json:"scale_max"`
}

// ReportServicer defines the contract for derived financial reporting.
// Reports are recomputed from the stored records on every call.
type ReportServicer interface {
	GetProjectBudget(userID, projectID string) (*ProjectBudgetReport, error)
	GetAssetSummary(userID, assetID string) (*reports.AssetSummary, error)
	GetAssetSummaries(userID string) ([]reports.AssetSummary, error)
	GetMonthlyReport(userID string, year int) (*MonthlyReport, error)
}
