package response_models

// RecommendationResult is the full bundle returned by the recommendation
// service for one submitted set of criteria. It is kept exactly as decoded,
// with no client-side reshaping or filtering.
type RecommendationResult struct {
	Weather         Weather       `json:"weather"`
	WeatherForecast []ForecastDay `json:"weather_forecast,omitempty"`
	Destinations    []Destination `json:"destinations"`
	Events          []Event       `json:"events"`
}

type Weather struct {
	Description string  `json:"description"`
	Temp        float64 `json:"temp"`
	IconURL     string  `json:"icon_url,omitempty"`
}

type ForecastDay struct {
	Date        string  `json:"date"`
	AvgTemp     float64 `json:"avg_temp"`
	Description string  `json:"description"`
}

// Destination name is unique within one result and is the key used for
// itinerary dedup and removal.
type Destination struct {
	Name            string   `json:"name"`
	Category        string   `json:"category,omitempty"`
	TravelTime      string   `json:"travel_time,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	BestSeason      string   `json:"best_season,omitempty"`
	SeasonalWarning string   `json:"seasonal_warning,omitempty"`
	Description     string   `json:"description,omitempty"`
}

type Event struct {
	Name string `json:"name"`
	Date string `json:"date,omitempty"`
	URL  string `json:"url,omitempty"`
}
