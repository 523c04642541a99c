package response_models

import "tripscout/internal/models/request_models"

// SessionView is everything the page renders for one planning session:
// the current form values, the loading flag, and at most one of the error
// message or the latest result.
type SessionView struct {
	SessionID string                  `json:"session_id"`
	Form      request_models.Criteria `json:"form"`
	Loading   bool                    `json:"loading"`
	Error     string                  `json:"error,omitempty"`
	Result    *ResultView             `json:"result,omitempty"`
	Itinerary []Destination           `json:"itinerary"`
}

type ResultView struct {
	Weather         Weather           `json:"weather"`
	WeatherForecast []ForecastDay     `json:"weather_forecast,omitempty"`
	Destinations    []DestinationView `json:"destinations"`
	Events          []Event           `json:"events"`
}

// DestinationView is a Destination with presentation formatting applied,
// currently just the description cut down for card display.
type DestinationView struct {
	Name            string   `json:"name"`
	Category        string   `json:"category,omitempty"`
	TravelTime      string   `json:"travel_time,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	BestSeason      string   `json:"best_season,omitempty"`
	SeasonalWarning string   `json:"seasonal_warning,omitempty"`
	Description     string   `json:"description,omitempty"`
	InItinerary     bool     `json:"in_itinerary"`
}

type SessionStartedResponse struct {
	SessionID string `json:"session_id"`
	ExpiresAt int64  `json:"expires_at"`
}
