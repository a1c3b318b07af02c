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

// expenseHandler handles HTTP requests related to the expense book.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers routes related to expenses.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.recordExpenses)
		expenses.GET("", h.listExpenses)
	}
}

// recordExpenses godoc
// @Summary Record expense items
// @Description Appends expense items under one calendar date
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expenses body dto.RecordExpensesRequest true "Expense items for one date"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record expenses"
// @Router /expenses [post]
func (h *expenseHandler) recordExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordExpenses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	items, err := h.expenseService.RecordExpenses(c.Request.Context(), req, operatorFromRequest(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record expenses in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expenses"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"date": req.Date, "recorded": len(items)})
}

// listExpenses godoc
// @Summary List the expense book
// @Description Lists recorded expenses keyed by date, optionally restricted to a [from, to) range
// @Tags expenses
// @Produce  json
// @Param   from query string false "Start date (inclusive, 2006-01-02)"
// @Param   to query string false "End date (exclusive, 2006-01-02)"
// @Success 200 {object} dto.ExpenseBookResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	book, err := h.expenseService.ListExpenses(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to list expenses from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseBookResponse(book))
}
