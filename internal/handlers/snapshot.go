package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	redisclient "github.com/lyralearn/workshop-backend/internal/clients/redis"
	"github.com/lyralearn/workshop-backend/internal/services"
)

type SnapshotHandler struct {
	snapshotService services.SnapshotService
}

func NewSnapshotHandler(snapshotService services.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

func (sh *SnapshotHandler) Save(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	snap, err := sh.snapshotService.Save(c.Request.Context(), sessionID)
	if err != nil {
		status, code := statusFor(err)
		RespondError(c, status, code, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot": snap})
}

func (sh *SnapshotHandler) Load(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	snap, err := sh.snapshotService.Load(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, redisclient.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "snapshot_not_found", err)
			return
		}
		status, code := statusFor(err)
		RespondError(c, status, code, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshot": snap})
}
