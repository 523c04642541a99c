package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripscout/internal/repositories"
	"tripscout/internal/services"
	"tripscout/pkg/utils"
)

func newTestRouter(recommenderURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	sessions := repositories.NewInMemorySessionRepository(time.Minute)
	client := services.NewHTTPRecommenderClient(recommenderURL)
	sessionController := NewSessionController(services.NewSessionService(sessions))
	plannerController := NewPlannerController(services.NewPlannerService(sessions, client))
	itineraryController := NewItineraryController(services.NewItineraryService(sessions))

	r := gin.New()
	group := r.Group("/sessions")
	group.POST("", sessionController.StartSession)
	group.GET("/:sessionId/view", sessionController.GetSessionView)
	group.POST("/:sessionId/recommendations", plannerController.SubmitCriteria)
	group.GET("/:sessionId/itinerary", itineraryController.ListItinerary)
	group.POST("/:sessionId/itinerary", itineraryController.AddToItinerary)
	group.DELETE("/:sessionId/itinerary", itineraryController.ClearItinerary)
	group.DELETE("/:sessionId/itinerary/:name", itineraryController.RemoveFromItinerary)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func startSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, envelope := doJSON(t, r, http.MethodPost, "/sessions", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := envelope.Data.(map[string]interface{})
	return data["session_id"].(string)
}

const stubServiceBody = `{
	"weather": {"description": "clear sky", "temp": 31.2},
	"destinations": [
		{"name": "Shaniwar Wada", "category": "historical", "travel_time": "15 mins", "rating": 4.6},
		{"name": "Parvati Hill", "category": "temple", "travel_time": "22 mins"}
	],
	"events": [{"name": "Ganesh Festival", "date": "2026-09-14", "url": "https://events.example/ganesh"}]
}`

func TestSubmitEndToEndSuccess(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(stubServiceBody))
	}))
	defer stub.Close()

	r := newTestRouter(stub.URL)
	id := startSession(t, r)

	w, envelope := doJSON(t, r, http.MethodPost, "/sessions/"+id+"/recommendations",
		`{"city": "Pune", "preferences": ["temple", "food"], "travel_mode": "driving"}`)
	require.Equal(t, http.StatusOK, w.Code)

	view := envelope.Data.(map[string]interface{})
	assert.Equal(t, false, view["loading"])
	assert.Nil(t, view["error"])
	require.NotNil(t, view["result"])

	result := view["result"].(map[string]interface{})
	destinations := result["destinations"].([]interface{})
	require.Len(t, destinations, 2)
	assert.Equal(t, "Shaniwar Wada", destinations[0].(map[string]interface{})["name"])
	assert.Equal(t, "Parvati Hill", destinations[1].(map[string]interface{})["name"])
	events := result["events"].([]interface{})
	require.Len(t, events, 1)
	assert.Equal(t, "Ganesh Festival", events[0].(map[string]interface{})["name"])
}

func TestSubmitEndToEndFailure(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	defer stub.Close()

	r := newTestRouter(stub.URL)
	id := startSession(t, r)

	w, envelope := doJSON(t, r, http.MethodPost, "/sessions/"+id+"/recommendations",
		`{"city": "Pune", "preferences": ["temple"], "travel_mode": "driving"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, utils.ExchangeFailedMessage, envelope.Message)

	// the session view now shows the generic error and no result
	w, envelope = doJSON(t, r, http.MethodGet, "/sessions/"+id+"/view", "")
	require.Equal(t, http.StatusOK, w.Code)
	view := envelope.Data.(map[string]interface{})
	assert.Equal(t, false, view["loading"])
	assert.Equal(t, utils.ExchangeFailedMessage, view["error"])
	assert.Nil(t, view["result"])
}

func TestSubmitRequiresCity(t *testing.T) {
	r := newTestRouter("http://unused.invalid")
	id := startSession(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/sessions/"+id+"/recommendations",
		`{"preferences": ["temple"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestItineraryRoundTrip(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(stubServiceBody))
	}))
	defer stub.Close()

	r := newTestRouter(stub.URL)
	id := startSession(t, r)
	_, _ = doJSON(t, r, http.MethodPost, "/sessions/"+id+"/recommendations",
		`{"city": "Pune", "preferences": ["temple"], "travel_mode": "driving"}`)

	w, envelope := doJSON(t, r, http.MethodPost, "/sessions/"+id+"/itinerary", `{"name": "Parvati Hill"}`)
	require.Equal(t, http.StatusOK, w.Code)
	items := envelope.Data.([]interface{})
	require.Len(t, items, 1)

	// duplicate add is a no-op
	_, envelope = doJSON(t, r, http.MethodPost, "/sessions/"+id+"/itinerary", `{"name": "Parvati Hill"}`)
	items = envelope.Data.([]interface{})
	assert.Len(t, items, 1)

	// a name not shown on any card is refused
	w, _ = doJSON(t, r, http.MethodPost, "/sessions/"+id+"/itinerary", `{"name": "Taj Mahal"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, envelope = doJSON(t, r, http.MethodDelete, "/sessions/"+id+"/itinerary/Parvati%20Hill", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, envelope.Data)
}

func TestViewOfUnknownSessionIs404(t *testing.T) {
	r := newTestRouter("http://unused.invalid")
	w, _ := doJSON(t, r, http.MethodGet, "/sessions/does-not-exist/view", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
