package services

import (
	"tripscout/internal/models/response_models"
	"tripscout/internal/repositories"
	"tripscout/pkg/utils"
)

type ItineraryServiceInterface interface {
	AddDestination(sessionID string, name string) ([]response_models.Destination, error)
	RemoveDestination(sessionID string, name string) ([]response_models.Destination, error)
	ClearItinerary(sessionID string) ([]response_models.Destination, error)
	ListItinerary(sessionID string) ([]response_models.Destination, error)
}

type ItineraryService struct {
	sessions repositories.SessionRepository
}

func NewItineraryService(sessions repositories.SessionRepository) ItineraryServiceInterface {
	return &ItineraryService{
		sessions: sessions,
	}
}

// AddDestination keeps a destination from the session's current result.
// The user can only act on a card that is actually displayed, so the name
// must match a destination in the latest result. Adding a name that is
// already kept is a no-op.
func (i *ItineraryService) AddDestination(sessionID string, name string) ([]response_models.Destination, error) {
	snap, err := i.sessions.Snapshot(sessionID)
	if err != nil {
		return nil, utils.ErrSessionNotFound
	}
	if snap.Result == nil {
		return nil, utils.ErrDestinationNotFound
	}

	var found *response_models.Destination
	for idx := range snap.Result.Destinations {
		if snap.Result.Destinations[idx].Name == name {
			found = &snap.Result.Destinations[idx]
			break
		}
	}
	if found == nil {
		return nil, utils.ErrDestinationNotFound
	}

	list, err := i.sessions.Itinerary(sessionID)
	if err != nil {
		return nil, utils.ErrSessionNotFound
	}
	list.Add(*found)
	return list.Items(), nil
}

func (i *ItineraryService) RemoveDestination(sessionID string, name string) ([]response_models.Destination, error) {
	list, err := i.sessions.Itinerary(sessionID)
	if err != nil {
		return nil, utils.ErrSessionNotFound
	}
	list.Remove(name)
	return list.Items(), nil
}

func (i *ItineraryService) ClearItinerary(sessionID string) ([]response_models.Destination, error) {
	list, err := i.sessions.Itinerary(sessionID)
	if err != nil {
		return nil, utils.ErrSessionNotFound
	}
	list.Clear()
	return list.Items(), nil
}

func (i *ItineraryService) ListItinerary(sessionID string) ([]response_models.Destination, error) {
	list, err := i.sessions.Itinerary(sessionID)
	if err != nil {
		return nil, utils.ErrSessionNotFound
	}
	return list.Items(), nil
}
