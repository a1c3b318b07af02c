package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/cliniccore/clinic_ledger_app/internal/apperrors"
	"github.com/cliniccore/clinic_ledger_app/internal/core/ledger"
	portssvc "github.com/cliniccore/clinic_ledger_app/internal/core/ports/services"
	"github.com/cliniccore/clinic_ledger_app/internal/dto"
	"github.com/cliniccore/clinic_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// reportingHandler handles HTTP requests related to financial statements.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/statement", h.getStatement)
		reports.POST("/profit-distribution", h.distributeProfit)
	}
}

// getStatement godoc
// @Summary Get a period financial statement
// @Description Assembles a day/month/year statement for the diagnostic, clinic or combined ledger
// @Tags reports
// @Produce  json
// @Param   ledger query string false "Ledger" Enums(diagnostic, clinic, combined) default(combined)
// @Param   period query string true "Period type" Enums(day, month, year)
// @Param   date query string true "Reference date inside the period (2006-01-02)"
// @Param   distributed query string false "Profit already distributed for this period"
// @Param   inventoryValue query string false "Current pharmacy inventory valuation"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to compose statement"
// @Router /reports/statement [get]
func (h *reportingHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kind, ok := ledger.ParseLedgerKind(c.Query("ledger"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown ledger: " + c.Query("ledger")})
		return
	}

	pt, err := ledger.ParsePeriodType(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ref, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'date', expected 2006-01-02"})
		return
	}

	distributed, ok := parseDecimalQuery(c, "distributed")
	if !ok {
		return
	}
	inventoryValue, ok := parseDecimalQuery(c, "inventoryValue")
	if !ok {
		return
	}

	statement, err := h.reportingService.PeriodStatement(c.Request.Context(), kind, pt, ref, distributed, inventoryValue)
	if err != nil {
		logger.Error("Failed to compose statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compose statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
}

// distributeProfit godoc
// @Summary Distribute profit across shareholders
// @Description Allocates a manager-chosen amount proportional to share counts
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   distribution body dto.DistributeProfitRequest true "Distribution amount"
// @Success 200 {object} dto.DistributionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to distribute profit"
// @Router /reports/profit-distribution [post]
func (h *reportingHandler) distributeProfit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DistributeProfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DistributeProfit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	shareholders, payouts, err := h.reportingService.DistributeProfit(c.Request.Context(), req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to distribute profit in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to distribute profit"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDistributionResponse(req.Amount, shareholders, payouts))
}

// parseDecimalQuery reads an optional decimal query parameter, defaulting
// to zero. It writes a 400 response and returns ok=false when malformed.
func parseDecimalQuery(c *gin.Context, name string) (decimal.Decimal, bool) {
	raw := c.Query(name)
	if raw == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid '" + name + "' amount"})
		return decimal.Zero, false
	}
	return d, true
}
