package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lyralearn/workshop-backend/internal/services"
)

type SessionHandler struct {
	workshopService services.WorkshopService
}

func NewSessionHandler(workshopService services.WorkshopService) *SessionHandler {
	return &SessionHandler{workshopService: workshopService}
}

type createSessionRequest struct {
	WorkshopID string `json:"workshop_id" binding:"required"`
}

func (sh *SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	view, err := sh.workshopService.CreateSession(c.Request.Context(), req.WorkshopID)
	if err != nil {
		status, code := statusFor(err)
		RespondError(c, status, code, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": view})
}

func (sh *SessionHandler) Get(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	view, err := sh.workshopService.GetSession(sessionID)
	if err != nil {
		status, code := statusFor(err)
		RespondError(c, status, code, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

// ApplySelection mutates one category's answer. A rejected mutation is
// a normal 200 with rejected=true: the client shows the previous state
// and no error toast.
func (sh *SessionHandler) ApplySelection(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var upd services.SelectionUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	res, err := sh.workshopService.ApplySelection(c.Request.Context(), sessionID, c.Param("categoryID"), upd)
	if err != nil {
		status, code := statusFor(err)
		RespondError(c, status, code, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res})
}

type moveCardRequest struct {
	CardID  string `json:"card_id" binding:"required"`
	ToIndex *int   `json:"to_index" binding:"required"`
}

func (sh *SessionHandler) MoveCard(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var req moveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	res, err := sh.workshopService.MoveCard(c.Request.Context(), sessionID, c.Param("categoryID"), req.CardID, *req.ToIndex)
	if err != nil {
		status, code := statusFor(err)
		RespondError(c, status, code, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res})
}

func (sh *SessionHandler) Preview(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	preview, err := sh.workshopService.Preview(sessionID)
	if err != nil {
		status, code := statusFor(err)
		RespondError(c, status, code, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preview": preview})
}

func (sh *SessionHandler) Reset(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	if err := sh.workshopService.Reset(sessionID); err != nil {
		status, code := statusFor(err)
		RespondError(c, status, code, err)
		return
	}
	view, err := sh.workshopService.GetSession(sessionID)
	if err != nil {
		status, code := statusFor(err)
		RespondError(c, status, code, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": view})
}

func sessionIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("sessionID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_session_id", errors.New("invalid session id"))
		return uuid.Nil, false
	}
	return id, true
}
