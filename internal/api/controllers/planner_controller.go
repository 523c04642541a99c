package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripscout/internal/models/request_models"
	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// SubmitCriteria godoc
// @Summary Submit trip criteria
// @Description Run one exchange with the recommendation service for the submitted criteria
// @Tags Planner
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param criteria body request_models.Criteria true "Trip criteria"
// @Success 200 {object} response_models.SessionView
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /sessions/{sessionId}/recommendations [post]
func (p *PlannerController) SubmitCriteria(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var criteria request_models.Criteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	view, err := p.plannerService.SubmitCriteria(c.Request.Context(), sessionID, criteria)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Recommendations fetched successfully")
}
