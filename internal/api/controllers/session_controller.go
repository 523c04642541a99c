package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// StartSession godoc
// @Summary Start a planning session
// @Description Open a new planning session and return its id
// @Tags Session
// @Produce json
// @Success 200 {object} response_models.SessionStartedResponse
// @Router /sessions [post]
func (s *SessionController) StartSession(c *gin.Context) {
	started := s.sessionService.StartSession()
	utils.RespondSuccess(c, started, "Session started")
}

// GetSessionView godoc
// @Summary Get the current view of a session
// @Description Fetch form state, loading flag, latest result or error, and the itinerary
// @Tags Session
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.SessionView
// @Failure 404 {object} utils.APIResponse
// @Router /sessions/{sessionId}/view [get]
func (s *SessionController) GetSessionView(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	view, err := s.sessionService.GetSessionView(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Session view fetched successfully")
}
