package repositories

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripscout/internal/models/request_models"
	"tripscout/internal/models/response_models"
)

// ErrSessionExpired covers both unknown ids and ids past their TTL; the
// service layer maps it to the not-found sentinel.
var ErrSessionExpired = errors.New("session missing or expired")

// SessionSnapshot is a consistent read of one session's view state. The
// result pointer is shared but the result bundle is replaced wholesale on
// each exchange and never mutated in place.
type SessionSnapshot struct {
	ID        string
	Form      request_models.Criteria
	Loading   bool
	Error     string
	Result    *response_models.RecommendationResult
	Itinerary []response_models.Destination
}

type SessionRepository interface {
	// Create opens a new session and returns its id and expiry.
	Create() (string, time.Time)

	// BeginSubmit records the submitted criteria and moves the session to
	// loading with no error and no result visible.
	BeginSubmit(id string, criteria request_models.Criteria) error

	// CompleteSubmitSuccess ends loading with the decoded result. The last
	// exchange to complete wins; an earlier completion is overwritten.
	CompleteSubmitSuccess(id string, result *response_models.RecommendationResult) error

	// CompleteSubmitFailure ends loading with the generic error message.
	CompleteSubmitFailure(id string, message string) error

	Snapshot(id string) (SessionSnapshot, error)

	// Itinerary returns the session's itinerary list for direct mutation.
	Itinerary(id string) (*ItineraryList, error)
}

type sessionEntry struct {
	form      request_models.Criteria
	loading   bool
	errMsg    string
	result    *response_models.RecommendationResult
	itinerary *ItineraryList
	expiresAt time.Time
}

// InMemorySessionRepository keeps sessions in a TTL map. A session models
// one open planner page; nothing survives its expiry.
type InMemorySessionRepository struct {
	mu   sync.RWMutex
	data map[string]*sessionEntry
	ttl  time.Duration
}

func NewInMemorySessionRepository(ttl time.Duration) *InMemorySessionRepository {
	return &InMemorySessionRepository{
		data: make(map[string]*sessionEntry),
		ttl:  ttl,
	}
}

func (r *InMemorySessionRepository) Create() (string, time.Time) {
	id := uuid.New().String()
	expiresAt := time.Now().Add(r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[id] = &sessionEntry{
		itinerary: NewItineraryList(),
		expiresAt: expiresAt,
	}
	return id, expiresAt
}

// get treats expired entries as missing. Callers holding the write lock
// clean them up; read paths leave them for the next writer.
func (r *InMemorySessionRepository) get(id string) (*sessionEntry, bool) {
	e, ok := r.data[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e, true
}

func (r *InMemorySessionRepository) BeginSubmit(id string, criteria request_models.Criteria) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.get(id)
	if !ok {
		delete(r.data, id)
		return ErrSessionExpired
	}
	e.form = criteria
	e.loading = true
	e.errMsg = ""
	e.result = nil
	return nil
}

func (r *InMemorySessionRepository) CompleteSubmitSuccess(id string, result *response_models.RecommendationResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.get(id)
	if !ok {
		delete(r.data, id)
		return ErrSessionExpired
	}
	e.loading = false
	e.errMsg = ""
	e.result = result
	return nil
}

func (r *InMemorySessionRepository) CompleteSubmitFailure(id string, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.get(id)
	if !ok {
		delete(r.data, id)
		return ErrSessionExpired
	}
	e.loading = false
	e.errMsg = message
	e.result = nil
	return nil
}

func (r *InMemorySessionRepository) Snapshot(id string) (SessionSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.get(id)
	if !ok {
		return SessionSnapshot{}, ErrSessionExpired
	}
	return SessionSnapshot{
		ID:        id,
		Form:      e.form,
		Loading:   e.loading,
		Error:     e.errMsg,
		Result:    e.result,
		Itinerary: e.itinerary.Items(),
	}, nil
}

func (r *InMemorySessionRepository) Itinerary(id string) (*ItineraryList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.get(id)
	if !ok {
		return nil, ErrSessionExpired
	}
	return e.itinerary, nil
}
