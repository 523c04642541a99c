package services

import (
	"tripscout/internal/models/response_models"
	"tripscout/internal/repositories"
	"tripscout/pkg/utils"
)

type SessionServiceInterface interface {
	StartSession() response_models.SessionStartedResponse
	GetSessionView(sessionID string) (response_models.SessionView, error)
}

type SessionService struct {
	sessions repositories.SessionRepository
}

func NewSessionService(sessions repositories.SessionRepository) SessionServiceInterface {
	return &SessionService{
		sessions: sessions,
	}
}

func (s *SessionService) StartSession() response_models.SessionStartedResponse {
	id, expiresAt := s.sessions.Create()
	return response_models.SessionStartedResponse{
		SessionID: id,
		ExpiresAt: expiresAt.Unix(),
	}
}

func (s *SessionService) GetSessionView(sessionID string) (response_models.SessionView, error) {
	snap, err := s.sessions.Snapshot(sessionID)
	if err != nil {
		return response_models.SessionView{}, utils.ErrSessionNotFound
	}
	return buildSessionView(snap), nil
}
