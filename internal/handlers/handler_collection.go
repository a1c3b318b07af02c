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

// collectionHandler handles HTTP requests related to collections.
type collectionHandler struct {
	collectionService portssvc.CollectionSvcFacade
}

// newCollectionHandler creates a new collectionHandler.
func newCollectionHandler(cs portssvc.CollectionSvcFacade) *collectionHandler {
	return &collectionHandler{collectionService: cs}
}

// registerCollectionRoutes registers routes related to collections.
func registerCollectionRoutes(rg *gin.RouterGroup, collectionService portssvc.CollectionSvcFacade) {
	h := newCollectionHandler(collectionService)

	collections := rg.Group("/collections")
	{
		collections.POST("/due", h.recordDueCollection)
		collections.POST("/company", h.recordCompanyCollection)
	}
}

// recordDueCollection godoc
// @Summary Record a due recovery
// @Description Records a cash recovery against an earlier invoice's due balance
// @Tags collections
// @Accept  json
// @Produce  json
// @Param   collection body dto.RecordDueCollectionRequest true "Due recovery details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to record due collection"
// @Router /collections/due [post]
func (h *collectionHandler) recordDueCollection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordDueCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordDueCollection", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	collection, err := h.collectionService.RecordDueCollection(c.Request.Context(), req, operatorFromRequest(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record due collection in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record due collection"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"collectionID": collection.CollectionID})
}

// recordCompanyCollection godoc
// @Summary Record a company receipt
// @Description Records a direct cash receipt from an external company
// @Tags collections
// @Accept  json
// @Produce  json
// @Param   collection body dto.RecordCompanyCollectionRequest true "Company receipt details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record company collection"
// @Router /collections/company [post]
func (h *collectionHandler) recordCompanyCollection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordCompanyCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordCompanyCollection", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	collection, err := h.collectionService.RecordCompanyCollection(c.Request.Context(), req, operatorFromRequest(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record company collection in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record company collection"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"collectionID": collection.CollectionID})
}
