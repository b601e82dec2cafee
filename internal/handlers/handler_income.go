package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitbooks/splitbooks_app/internal/apperrors"
	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/internal/dto"
	"github.com/splitbooks/splitbooks_app/internal/middleware"
)

// incomeHandler handles HTTP requests for income transactions.
type incomeHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newIncomeHandler(ls portssvc.LedgerSvcFacade) *incomeHandler {
	return &incomeHandler{ledgerService: ls}
}

// registerIncomeRoutes registers routes related to income transactions.
func registerIncomeRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newIncomeHandler(ledgerService)

	incomes := rg.Group("/incomes")
	{
		incomes.POST("", h.createIncome)
		incomes.GET("", h.listIncomes)
		incomes.GET("/:id", h.getIncome)
		incomes.PUT("/:id", h.updateIncome)
		incomes.DELETE("/:id", h.deleteIncome)
	}
}

// createIncome godoc
// @Summary Create an income transaction
// @Description Validates and stores a new income row, returning it with derived values
// @Tags incomes
// @Accept json
// @Produce json
// @Param income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /incomes [post]
func (h *incomeHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetPartyFromContext(c)
	if !ok {
		logger.Error("Authenticated party not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.ledgerService.CreateIncome(c.Request.Context(), req, actor)
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to create income")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// listIncomes godoc
// @Summary List income transactions
// @Description Retrieves all income rows with derived net amounts and shares
// @Tags incomes
// @Produce json
// @Success 200 {array} dto.IncomeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /incomes [get]
func (h *incomeHandler) listIncomes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	list, err := h.ledgerService.ListIncomes(c.Request.Context())
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to list incomes")
		return
	}

	c.JSON(http.StatusOK, list)
}

// getIncome godoc
// @Summary Get an income transaction
// @Tags incomes
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.IncomeResponse
// @Failure 404 {object} ErrorResponse "Income not found"
// @Security BearerAuth
// @Router /incomes/{id} [get]
func (h *incomeHandler) getIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.ledgerService.GetIncome(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to get income")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateIncome godoc
// @Summary Update an income transaction
// @Description Replaces an income row wholesale with the submitted values
// @Tags incomes
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param income body dto.UpdateIncomeRequest true "Income details"
// @Success 200 {object} dto.IncomeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Income not found"
// @Security BearerAuth
// @Router /incomes/{id} [put]
func (h *incomeHandler) updateIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetPartyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.ledgerService.UpdateIncome(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to update income")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// deleteIncome godoc
// @Summary Delete an income transaction
// @Tags incomes
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Income not found"
// @Security BearerAuth
// @Router /incomes/{id} [delete]
func (h *incomeHandler) deleteIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetPartyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.ledgerService.DeleteIncome(c.Request.Context(), c.Param("id"), actor); err != nil {
		handleLedgerError(c, logger, err, "Failed to delete income")
		return
	}

	c.Status(http.StatusNoContent)
}

// handleLedgerError maps service errors onto HTTP statuses shared by the
// transaction handlers.
func handleLedgerError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrMissingFxRate):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrCounterpartyInUse):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
