package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"

	"tripscout/internal/models/request_models"
	"tripscout/internal/models/response_models"
	"tripscout/pkg/utils"
)

type RecommenderClientInterface interface {
	FetchRecommendations(ctx context.Context, criteria request_models.Criteria) (*response_models.RecommendationResult, error)
}

// HTTPRecommenderClient performs the one POST exchange against the external
// recommendation service. The criteria go on the wire exactly as submitted;
// the response body is decoded and returned as-is. Every kind of failure
// collapses into utils.ErrExchangeFailed. No retries and no client timeout,
// matching the behavior the page always had; the caller's context is the
// only way an exchange ends early.
type HTTPRecommenderClient struct {
	HTTP     *http.Client
	Endpoint string
}

func NewHTTPRecommenderClient(endpoint string) *HTTPRecommenderClient {
	return &HTTPRecommenderClient{
		HTTP:     &http.Client{},
		Endpoint: endpoint,
	}
}

func (c *HTTPRecommenderClient) FetchRecommendations(ctx context.Context, criteria request_models.Criteria) (*response_models.RecommendationResult, error) {
	body, err := json.Marshal(criteria)
	if err != nil {
		log.Printf("Error marshaling criteria: %v", err)
		return nil, utils.ErrExchangeFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("Error building recommendation request: %v", err)
		return nil, utils.ErrExchangeFailed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("Recommendation exchange transport error: %v", err)
		return nil, utils.ErrExchangeFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		log.Printf("Recommendation service returned status: %s", resp.Status)
		return nil, utils.ErrExchangeFailed
	}

	var result response_models.RecommendationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("Error decoding recommendation response: %v", err)
		return nil, utils.ErrExchangeFailed
	}

	return &result, nil
}
