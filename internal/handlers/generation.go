package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyralearn/workshop-backend/internal/services"
)

type GenerationHandler struct {
	workshopService services.WorkshopService
	exportService   services.ExportService
}

func NewGenerationHandler(workshopService services.WorkshopService, exportService services.ExportService) *GenerationHandler {
	return &GenerationHandler{workshopService: workshopService, exportService: exportService}
}

// Generate runs the full pipeline synchronously and returns the
// synthesized document. A newer call for the same session supersedes
// this one; the superseded caller gets 409.
func (gh *GenerationHandler) Generate(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	doc, err := gh.workshopService.Generate(c.Request.Context(), sessionID)
	if err != nil {
		status, code := statusFor(err)
		RespondError(c, status, code, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": doc})
}

func (gh *GenerationHandler) Document(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	doc, err := gh.workshopService.Document(sessionID)
	if err != nil {
		status, code := statusFor(err)
		RespondError(c, status, code, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": doc})
}

// ExportResource streams one resource as a text attachment.
func (gh *GenerationHandler) ExportResource(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	exp, err := gh.exportService.Resource(sessionID, c.Param("slug"))
	if err != nil {
		status, code := statusFor(err)
		RespondError(c, status, code, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exp.Filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(exp.Content))
}

func (gh *GenerationHandler) ExportDocument(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	exp, err := gh.exportService.FullDocument(sessionID)
	if err != nil {
		status, code := statusFor(err)
		RespondError(c, status, code, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exp.Filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(exp.Content))
}
