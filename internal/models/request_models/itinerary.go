package request_models

type AddItineraryEntryRequest struct {
	Name string `json:"name" binding:"required"`
}
