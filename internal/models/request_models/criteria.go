package request_models

// Preference tags accepted by the recommendation service.
const (
	PreferenceTemple     = "temple"
	PreferenceFood       = "food"
	PreferenceTrekking   = "trekking"
	PreferenceShopping   = "shopping"
	PreferenceHistorical = "historical"
	PreferenceNature     = "nature"
	PreferenceAdventure  = "adventure"
	PreferenceBeach      = "beach"
	PreferenceNightlife  = "nightlife"
	PreferenceWellness   = "wellness"
	PreferenceFamily     = "family"
)

const (
	TravelModeDriving = "driving"
	TravelModeWalking = "walking"
	TravelModeTransit = "transit"
)

const (
	SortByScore  = "score"
	SortByRating = "rating"
)

// Criteria carries the trip form exactly as the user filled it in. The
// recommendation service is the authority on validation, so nothing beyond
// the required city is checked here and out-of-vocabulary values pass
// through untouched.
type Criteria struct {
	City        string   `json:"city" binding:"required"`
	Preferences []string `json:"preferences"`
	TravelMode  string   `json:"travel_mode"`
	SortBy      string   `json:"sort_by,omitempty"`
	MinRating   *float64 `json:"min_rating,omitempty"`
	MaxDistance *float64 `json:"max_distance,omitempty"`
}
