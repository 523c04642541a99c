package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripscout/internal/models/request_models"
	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// AddToItinerary godoc
// @Summary Keep a recommended destination
// @Description Add a destination from the current result to the session's itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param entry body request_models.AddItineraryEntryRequest true "Destination name"
// @Success 200 {array} response_models.Destination
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /sessions/{sessionId}/itinerary [post]
func (i *ItineraryController) AddToItinerary(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req request_models.AddItineraryEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination name is required")
		return
	}

	items, err := i.itineraryService.AddDestination(sessionID, req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Destination added to itinerary")
}

// RemoveFromItinerary godoc
// @Summary Drop a kept destination
// @Tags Itinerary
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param name path string true "Destination name"
// @Success 200 {array} response_models.Destination
// @Failure 404 {object} utils.APIResponse
// @Router /sessions/{sessionId}/itinerary/{name} [delete]
func (i *ItineraryController) RemoveFromItinerary(c *gin.Context) {
	sessionID := c.Param("sessionId")
	name := c.Param("name")
	if sessionID == "" || name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID and destination name are required")
		return
	}

	items, err := i.itineraryService.RemoveDestination(sessionID, name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Destination removed from itinerary")
}

// ClearItinerary godoc
// @Summary Clear the itinerary
// @Tags Itinerary
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {array} response_models.Destination
// @Failure 404 {object} utils.APIResponse
// @Router /sessions/{sessionId}/itinerary [delete]
func (i *ItineraryController) ClearItinerary(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	items, err := i.itineraryService.ClearItinerary(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Itinerary cleared")
}

// ListItinerary godoc
// @Summary List kept destinations
// @Tags Itinerary
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {array} response_models.Destination
// @Failure 404 {object} utils.APIResponse
// @Router /sessions/{sessionId}/itinerary [get]
func (i *ItineraryController) ListItinerary(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	items, err := i.itineraryService.ListItinerary(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Itinerary fetched successfully")
}
