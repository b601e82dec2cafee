package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/internal/dto"
	"github.com/splitbooks/splitbooks_app/internal/middleware"
)

// counterpartyHandler handles HTTP requests for the client registry.
type counterpartyHandler struct {
	counterpartyService portssvc.CounterpartySvcFacade
}

func newCounterpartyHandler(cs portssvc.CounterpartySvcFacade) *counterpartyHandler {
	return &counterpartyHandler{counterpartyService: cs}
}

// registerCounterpartyRoutes registers routes related to counterparties.
func registerCounterpartyRoutes(rg *gin.RouterGroup, counterpartyService portssvc.CounterpartySvcFacade) {
	h := newCounterpartyHandler(counterpartyService)

	counterparties := rg.Group("/counterparties")
	{
		counterparties.POST("", h.createCounterparty)
		counterparties.GET("", h.listCounterparties)
		counterparties.DELETE("/:id", h.deleteCounterparty)
	}
}

// createCounterparty godoc
// @Summary Register a counterparty
// @Description Adds a client to the registry; names are unique case-insensitively
// @Tags counterparties
// @Accept json
// @Produce json
// @Param counterparty body dto.CreateCounterpartyRequest true "Counterparty details"
// @Success 201 {object} dto.CounterpartyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Name already registered"
// @Security BearerAuth
// @Router /counterparties [post]
func (h *counterpartyHandler) createCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCounterparty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetPartyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cp, err := h.counterpartyService.CreateCounterparty(c.Request.Context(), req, actor)
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to create counterparty")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCounterpartyResponse(cp))
}

// listCounterparties godoc
// @Summary List counterparties
// @Tags counterparties
// @Produce json
// @Success 200 {array} dto.CounterpartyResponse
// @Security BearerAuth
// @Router /counterparties [get]
func (h *counterpartyHandler) listCounterparties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	list, err := h.counterpartyService.ListCounterparties(c.Request.Context())
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to list counterparties")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCounterpartyResponse(list))
}

// deleteCounterparty godoc
// @Summary Delete a counterparty
// @Description Removes a client; fails while income rows still reference it
// @Tags counterparties
// @Param id path string true "Counterparty ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Counterparty not found"
// @Failure 409 {object} ErrorResponse "Counterparty still referenced"
// @Security BearerAuth
// @Router /counterparties/{id} [delete]
func (h *counterpartyHandler) deleteCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetPartyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.counterpartyService.DeleteCounterparty(c.Request.Context(), c.Param("id"), actor); err != nil {
		handleLedgerError(c, logger, err, "Failed to delete counterparty")
		return
	}

	c.Status(http.StatusNoContent)
}
