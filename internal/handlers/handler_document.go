package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	portssvc "github.com/splitbooks/splitbooks_app/internal/core/ports/services"
	"github.com/splitbooks/splitbooks_app/internal/dto"
	"github.com/splitbooks/splitbooks_app/internal/middleware"
)

// documentHandler handles whole-document operations and the audit trail.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

// registerDocumentRoutes registers routes related to the ledger document.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	document := rg.Group("/document")
	{
		document.GET("/export", h.exportDocument)
		document.POST("/import", h.importDocument)
		document.PUT("/logo", h.updateLogo)
		document.PUT("/settings", h.updateSettings)
		document.GET("/changelog", h.getChangeLog)
	}
}

// exportDocument godoc
// @Summary Export the full ledger document
// @Description Returns the whole document as a JSON download; importing it back restores identical state
// @Tags document
// @Produce json
// @Success 200 {object} domain.Document
// @Security BearerAuth
// @Router /document/export [get]
func (h *documentHandler) exportDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	export, err := h.documentService.Export(c.Request.Context())
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to export document")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.JSON(http.StatusOK, export.Document)
}

// importDocument godoc
// @Summary Import a ledger document
// @Description Validates the uploaded document and replaces the stored one verbatim
// @Tags document
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Document failed validation"
// @Security BearerAuth
// @Router /document/import [post]
func (h *documentHandler) importDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var doc domain.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		logger.Warn("Failed to bind JSON for ImportDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document format: " + err.Error()})
		return
	}

	if err := h.documentService.Import(c.Request.Context(), &doc); err != nil {
		handleLedgerError(c, logger, err, "Failed to import document")
		return
	}

	c.Status(http.StatusNoContent)
}

// updateLogo godoc
// @Summary Update the ledger logo
// @Tags document
// @Accept json
// @Param logo body dto.UpdateLogoRequest true "Logo payload (base64 data URL, empty clears)"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /document/logo [put]
func (h *documentHandler) updateLogo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLogo", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetPartyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.documentService.UpdateLogo(c.Request.Context(), req, actor); err != nil {
		handleLedgerError(c, logger, err, "Failed to update logo")
		return
	}

	c.Status(http.StatusNoContent)
}

// updateSettings godoc
// @Summary Update persisted preferences
// @Tags document
// @Accept json
// @Param settings body dto.UpdateSettingsRequest true "Settings"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid settings"
// @Security BearerAuth
// @Router /document/settings [put]
func (h *documentHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetPartyFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.documentService.UpdateSettings(c.Request.Context(), req, actor); err != nil {
		handleLedgerError(c, logger, err, "Failed to update settings")
		return
	}

	c.Status(http.StatusNoContent)
}

// getChangeLog godoc
// @Summary Get the audit trail
// @Description Returns the append-only change log, most recent first
// @Tags document
// @Produce json
// @Success 200 {array} dto.ChangeLogEntryResponse
// @Security BearerAuth
// @Router /document/changelog [get]
func (h *documentHandler) getChangeLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.documentService.GetChangeLog(c.Request.Context())
	if err != nil {
		handleLedgerError(c, logger, err, "Failed to get change log")
		return
	}

	c.JSON(http.StatusOK, entries)
}
