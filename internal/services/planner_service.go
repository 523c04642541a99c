package services

import (
	"context"

	"tripscout/internal/models/request_models"
	"tripscout/internal/models/response_models"
	"tripscout/internal/repositories"
	"tripscout/pkg/utils"
)

type PlannerServiceInterface interface {
	SubmitCriteria(ctx context.Context, sessionID string, criteria request_models.Criteria) (response_models.SessionView, error)
}

type PlannerService struct {
	sessions repositories.SessionRepository
	client   RecommenderClientInterface
}

func NewPlannerService(sessions repositories.SessionRepository, client RecommenderClientInterface) PlannerServiceInterface {
	return &PlannerService{
		sessions: sessions,
		client:   client,
	}
}

// SubmitCriteria runs one exchange for the session: loading with no visible
// result or error while in flight, then exactly one of result or error set.
// Overlapping submits on the same session are not guarded; the exchange that
// completes last overwrites the state.
func (p *PlannerService) SubmitCriteria(ctx context.Context, sessionID string, criteria request_models.Criteria) (response_models.SessionView, error) {
	if err := p.sessions.BeginSubmit(sessionID, criteria); err != nil {
		return response_models.SessionView{}, utils.ErrSessionNotFound
	}

	result, err := p.client.FetchRecommendations(ctx, criteria)
	if err != nil {
		if err := p.sessions.CompleteSubmitFailure(sessionID, utils.ExchangeFailedMessage); err != nil {
			return response_models.SessionView{}, utils.ErrSessionNotFound
		}
		return response_models.SessionView{}, utils.ErrExchangeFailed
	}

	if err := p.sessions.CompleteSubmitSuccess(sessionID, result); err != nil {
		return response_models.SessionView{}, utils.ErrSessionNotFound
	}

	snap, err := p.sessions.Snapshot(sessionID)
	if err != nil {
		return response_models.SessionView{}, utils.ErrSessionNotFound
	}

	return buildSessionView(snap), nil
}
