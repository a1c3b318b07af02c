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

// loanHandler handles HTTP requests related to the loan ledger.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

// newLoanHandler creates a new loanHandler.
func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.POST("", h.createLoan)
		loans.GET("", h.listLoans)
		loans.POST("/repayments", h.recordRepayment)
		loans.GET("/outstanding", h.getOutstanding)
	}
}

// createLoan godoc
// @Summary Record a loan
// @Description Records a borrowed amount in the loan ledger
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record loan"
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loan, err := h.loanService.CreateLoan(c.Request.Context(), req, operatorFromRequest(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record loan in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record loan"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// listLoans godoc
// @Summary List loans
// @Description Lists all loans in the loan ledger
// @Tags loans
// @Produce  json
// @Success 200 {array} dto.LoanResponse
// @Failure 500 {object} map[string]string "Failed to list loans"
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loans, err := h.loanService.ListLoans(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list loans from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list loans"})
		return
	}

	responses := make([]dto.LoanResponse, len(loans))
	for i := range loans {
		responses[i] = dto.ToLoanResponse(&loans[i])
	}
	c.JSON(http.StatusOK, responses)
}

// recordRepayment godoc
// @Summary Record a loan repayment
// @Description Records a cash installment against an existing loan
// @Tags loans
// @Accept  json
// @Produce  json
// @Param   repayment body dto.RecordRepaymentRequest true "Repayment details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Loan not found"
// @Failure 500 {object} map[string]string "Failed to record repayment"
// @Router /loans/repayments [post]
func (h *loanHandler) recordRepayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordRepaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordRepayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	repayment, err := h.loanService.RecordRepayment(c.Request.Context(), req, operatorFromRequest(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Loan not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record repayment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record repayment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"repaymentID": repayment.RepaymentID})
}

// getOutstanding godoc
// @Summary Get the loan ledger position
// @Description Returns total borrowed, total repaid and the outstanding balance. Overpayment shows as a negative outstanding.
// @Tags loans
// @Produce  json
// @Success 200 {object} dto.LoanOutstandingResponse
// @Failure 500 {object} map[string]string "Failed to compute outstanding"
// @Router /loans/outstanding [get]
func (h *loanHandler) getOutstanding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	borrowed, repaid, outstanding, err := h.loanService.Outstanding(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute loan outstanding", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute outstanding"})
		return
	}

	c.JSON(http.StatusOK, dto.LoanOutstandingResponse{
		TotalBorrowed: borrowed,
		TotalRepaid:   repaid,
		Outstanding:   outstanding,
	})
}
