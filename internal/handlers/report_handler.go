package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "renotrack/internal/errors"
	"renotrack/internal/services"
)

// ReportHandler handles derived financial reporting requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetAssetSummary handles the per-asset financial summary.
// @Summary     Get asset financial summary
// @Description Get total expenses, income, profit/loss, and category breakdown for one asset
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Success     200 {object} reports.AssetSummary "Asset summary"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id}/summary [get]
func (h *ReportHandler) GetAssetSummary(c *gin.Context) {
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

	summary, err := h.reportService.GetAssetSummary(userID, assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetAssetSummaries handles the portfolio-wide summary list.
// @Summary     List asset financial summaries
// @Description Get per-asset financial summaries for the whole portfolio, sorted by profit descending
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Asset summaries"
// @Router      /reports/assets [get]
func (h *ReportHandler) GetAssetSummaries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summaries, err := h.reportService.GetAssetSummaries(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

// GetMonthlyReport handles the 12-month income/expense series.
// @Summary     Get monthly income/expense report
// @Description Get the 12-month income and expense series for a calendar year (defaults to the current year)
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       year query int false "Calendar year"
// @Success     200 {object} services.MonthlyReport "Monthly report"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year := time.Now().Year()
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1970 || parsed > 9999 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be a four-digit year"))
			return
		}
		year = parsed
	}

	report, err := h.reportService.GetMonthlyReport(userID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
