package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cliniccore/clinic_ledger_app/internal/apperrors"
	portssvc "github.com/cliniccore/clinic_ledger_app/internal/core/ports/services"
	"github.com/cliniccore/clinic_ledger_app/internal/dto"
	"github.com/cliniccore/clinic_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// shareholderHandler handles HTTP requests related to shareholders.
type shareholderHandler struct {
	shareholderService portssvc.ShareholderSvcFacade
}

// newShareholderHandler creates a new shareholderHandler.
func newShareholderHandler(ss portssvc.ShareholderSvcFacade) *shareholderHandler {
	return &shareholderHandler{shareholderService: ss}
}

// registerShareholderRoutes registers routes related to shareholders.
func registerShareholderRoutes(rg *gin.RouterGroup, shareholderService portssvc.ShareholderSvcFacade) {
	h := newShareholderHandler(shareholderService)

	shareholders := rg.Group("/shareholders")
	{
		shareholders.POST("", h.createShareholder)
		shareholders.GET("", h.listShareholders)
	}
}

// createShareholder godoc
// @Summary Register a shareholder
// @Description Registers a shareholder with a possibly fractional share count
// @Tags shareholders
// @Accept  json
// @Produce  json
// @Param   shareholder body dto.CreateShareholderRequest true "Shareholder details"
// @Success 201 {object} dto.ShareholderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to register shareholder"
// @Router /shareholders [post]
func (h *shareholderHandler) createShareholder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateShareholder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	shareholder, err := h.shareholderService.CreateShareholder(c.Request.Context(), req, operatorFromRequest(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to register shareholder in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register shareholder"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToShareholderResponse(shareholder))
}

// listShareholders godoc
// @Summary List shareholders
// @Description Lists all registered shareholders
// @Tags shareholders
// @Produce  json
// @Success 200 {array} dto.ShareholderResponse
// @Failure 500 {object} map[string]string "Failed to list shareholders"
// @Router /shareholders [get]
func (h *shareholderHandler) listShareholders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	shareholders, err := h.shareholderService.ListShareholders(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list shareholders from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shareholders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShareholderResponses(shareholders))
}
