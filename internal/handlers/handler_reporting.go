package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/internal/dto"
	"github.com/splitbooks/splitbooks_app/internal/middleware"
)

// reportingHandler serves the derived views: summary, monthly series and
// debt balance.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/monthly", h.getMonthlySeries)
		reports.GET("/debt", h.getDebtBalance)
	}
}

// getSummary godoc
// @Summary Get aggregate totals for the current party
// @Description Aggregates the filtered transaction set; the debt balance in the response always covers the whole ledger
// @Tags reports
// @Produce json
// @Param period query string false "Period preset" Enums(LAST_6_MONTHS, LAST_12_MONTHS, YEAR_TO_DATE, ALL_TIME)
// @Param from query string false "Start date (YYYY-MM-DD), overrides the preset"
// @Param to query string false "End date (YYYY-MM-DD), overrides the preset"
// @Param counterpartyID query string false "Restrict income rows to one counterparty"
// @Param responsibleParty query string false "Restrict to one party's transactions" Enums(PARTY_A, PARTY_B)
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for GetSummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	currentParty, ok := middleware.GetPartyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.reportingService.GetSummary(c.Request.Context(), query, currentParty)
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getMonthlySeries godoc
// @Summary Get the monthly net series
// @Description Buckets the filtered set by calendar month, ascending; empty months are omitted
// @Tags reports
// @Produce json
// @Param period query string false "Period preset" Enums(LAST_6_MONTHS, LAST_12_MONTHS, YEAR_TO_DATE, ALL_TIME)
// @Param from query string false "Start date (YYYY-MM-DD), overrides the preset"
// @Param to query string false "End date (YYYY-MM-DD), overrides the preset"
// @Param counterpartyID query string false "Restrict income rows to one counterparty"
// @Param responsibleParty query string false "Restrict to one party's transactions" Enums(PARTY_A, PARTY_B)
// @Success 200 {object} dto.MonthlySeriesResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlySeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for GetMonthlySeries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	resp, err := h.reportingService.GetMonthlySeries(c.Request.Context(), query)
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to compute monthly series")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getDebtBalance godoc
// @Summary Get the running debt balance
// @Description Recomputes the net obligation over the full transaction set; positive means Party B owes Party A
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DebtBalanceResponse
// @Security BearerAuth
// @Router /reports/debt [get]
func (h *reportingHandler) getDebtBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.reportingService.GetDebtBalance(c.Request.Context())
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to compute debt balance")
		return
	}

	c.JSON(http.StatusOK, resp)
}
