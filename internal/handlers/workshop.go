package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lyralearn/workshop-backend/internal/catalog"
	"github.com/lyralearn/workshop-backend/internal/gateway"
	"github.com/lyralearn/workshop-backend/internal/services"
)

type WorkshopHandler struct {
	catalog *catalog.Catalog
}

func NewWorkshopHandler(cat *catalog.Catalog) *WorkshopHandler {
	return &WorkshopHandler{catalog: cat}
}

func (wh *WorkshopHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"workshops": wh.catalog.Workshops()})
}

func (wh *WorkshopHandler) Get(c *gin.Context) {
	w, ok := wh.catalog.Workshop(c.Param("workshopID"))
	if !ok {
		RespondError(c, http.StatusNotFound, "workshop_not_found", errors.New("workshop not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"workshop": w, "character": wh.catalog.Character(w.Character)})
}

// statusFor maps service errors to HTTP statuses shared by the session
// and generation handlers.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound, "session_not_found"
	case errors.Is(err, services.ErrWorkshopNotFound):
		return http.StatusNotFound, "workshop_not_found"
	case errors.Is(err, services.ErrNoDocument):
		return http.StatusNotFound, "no_document"
	case errors.Is(err, services.ErrEmptyInput):
		return http.StatusConflict, "selections_incomplete"
	case errors.Is(err, services.ErrSuperseded):
		return http.StatusConflict, "superseded"
	case isGatewayFailure(err):
		return http.StatusBadGateway, "generation_failed"
	default:
		return http.StatusBadRequest, "bad_request"
	}
}

// isGatewayFailure reports whether err came out of the content gateway,
// so the caller is told the upstream failed rather than blamed.
func isGatewayFailure(err error) bool {
	var httpErr *gateway.HTTPError
	return errors.As(err, &httpErr) || errors.Is(err, gateway.ErrEmptyCompletion)
}
