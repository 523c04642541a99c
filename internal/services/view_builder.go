package services

import (
	"tripscout/internal/models/response_models"
	"tripscout/internal/repositories"
	"tripscout/pkg/utils"
)

// buildSessionView projects a session snapshot into what the page renders.
// Destinations and events keep the order the service returned them in;
// descriptions are cut down for card display here, never in the stored data.
func buildSessionView(snap repositories.SessionSnapshot) response_models.SessionView {
	view := response_models.SessionView{
		SessionID: snap.ID,
		Form:      snap.Form,
		Loading:   snap.Loading,
		Error:     snap.Error,
		Itinerary: snap.Itinerary,
	}
	if view.Itinerary == nil {
		view.Itinerary = []response_models.Destination{}
	}

	if snap.Result == nil {
		return view
	}

	kept := make(map[string]bool, len(snap.Itinerary))
	for _, d := range snap.Itinerary {
		kept[d.Name] = true
	}

	result := response_models.ResultView{
		Weather:         snap.Result.Weather,
		WeatherForecast: snap.Result.WeatherForecast,
		Destinations:    make([]response_models.DestinationView, 0, len(snap.Result.Destinations)),
		Events:          snap.Result.Events,
	}
	for _, d := range snap.Result.Destinations {
		result.Destinations = append(result.Destinations, response_models.DestinationView{
			Name:            d.Name,
			Category:        d.Category,
			TravelTime:      d.TravelTime,
			Rating:          d.Rating,
			BestSeason:      d.BestSeason,
			SeasonalWarning: d.SeasonalWarning,
			Description:     utils.TruncateDescription(d.Description, utils.DefaultDescriptionLimit),
			InItinerary:     kept[d.Name],
		})
	}
	if result.Events == nil {
		result.Events = []response_models.Event{}
	}

	view.Result = &result
	return view
}
