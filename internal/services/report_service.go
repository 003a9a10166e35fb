package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "renotrack/internal/errors"
	"renotrack/internal/models"
	"renotrack/internal/reports"
)

// reportService loads record snapshots and feeds them to the pure
// aggregation functions in the reports package. Nothing is cached: every
// call recomputes from the current rows, so reports can never go stale.
type reportService struct {
	db           *gorm.DB
	assetService AssetServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, assetService AssetServicer) ReportServicer {
	return &reportService{db: db, assetService: assetService}
}

// GetProjectBudget returns budget utilization and the full per-category
// breakdown for one project.
func (s *reportService) GetProjectBudget(userID, projectID string) (*ProjectBudgetReport, error) {
	var project models.RenovationProject
	if err := s.db.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND renovation_project_id = ?", userID, projectID).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &ProjectBudgetReport{
		Utilization: reports.NewBudgetUtilization(&project, expenses),
		ByCategory:  reports.ExpensesByCategory(projectID, expenses),
	}, nil
}

// GetAssetSummary returns the profit/loss summary for one asset.
func (s *reportService) GetAssetSummary(userID, assetID string) (*reports.AssetSummary, error) {
	asset, err := s.assetService.GetAssetByID(userID, assetID)
	if err != nil {
		return nil, err
	}

	incomes, expenses, err := s.loadRecords(userID)
	if err != nil {
		return nil, err
	}

	summary := reports.NewAssetSummary(asset, incomes, expenses)
	return &summary, nil
}

// GetAssetSummaries returns a summary per asset, ordered by profit with the
// highest profit first.
func (s *reportService) GetAssetSummaries(userID string) ([]reports.AssetSummary, error) {
	var assets []models.Asset
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	incomes, expenses, err := s.loadRecords(userID)
	if err != nil {
		return nil, err
	}

	return reports.AssetSummaries(assets, incomes, expenses), nil
}

// GetMonthlyReport returns the 12-month income/expense series for a year.
func (s *reportService) GetMonthlyReport(userID string, year int) (*MonthlyReport, error) {
	incomes, expenses, err := s.loadRecords(userID)
	if err != nil {
		return nil, err
	}

	series := reports.MonthlySeries(year, incomes, expenses)
	return &MonthlyReport{
		Year:     year,
		Series:   series,
		ScaleMax: reports.ChartScaleMax(series),
	}, nil
}

func (s *reportService) loadRecords(userID string) ([]models.Income, []models.Expense, error) {
	var incomes []models.Income
	if err := s.db.Where("user_id = ?", userID).Find(&incomes).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return incomes, expenses, nil
}
