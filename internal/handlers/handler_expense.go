package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/internal/dto"
	"github.com/splitbooks/splitbooks_app/internal/middleware"
)

// expenseHandler handles HTTP requests for expense transactions.
type expenseHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newExpenseHandler(ls portssvc.LedgerSvcFacade) *expenseHandler {
	return &expenseHandler{ledgerService: ls}
}

// registerExpenseRoutes registers routes related to expense transactions.
func registerExpenseRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newExpenseHandler(ledgerService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:id", h.getExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// createExpense godoc
// @Summary Create an expense transaction
// @Description Validates and stores a new expense row, returning it with derived values
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetPartyFromContext(c)
	if !ok {
		logger.Error("Authenticated party not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.ledgerService.CreateExpense(c.Request.Context(), req, actor)
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// listExpenses godoc
// @Summary List expense transactions
// @Tags expenses
// @Produce json
// @Success 200 {array} dto.ExpenseResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	list, err := h.ledgerService.ListExpenses(c.Request.Context())
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, list)
}

// getExpense godoc
// @Summary Get an expense transaction
// @Tags expenses
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.ledgerService.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to get expense")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateExpense godoc
// @Summary Update an expense transaction
// @Description Replaces an expense row wholesale with the submitted values
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param expense body dto.UpdateExpenseRequest true "Expense details"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetPartyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.ledgerService.UpdateExpense(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to update expense")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// deleteExpense godoc
// @Summary Delete an expense transaction
// @Tags expenses
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetPartyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.ledgerService.DeleteExpense(c.Request.Context(), c.Param("id"), actor); err != nil {
		handleLedgerError(c, logger, err, "Failed to delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}
