package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shenikar/abhaya_command_center/internal/dashboard"
	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/shenikar/abhaya_command_center/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	delhi    = models.Coordinates{Lat: 28.6139, Lng: 77.209}
	apiKeyHd = map[string]string{"X-API-Key": testAPIKey}
)

func testView(mutate ...func(*dashboard.State)) *dashboard.View {
	state := dashboard.NewState("s-1", delhi, time.Now())
	for _, m := range mutate {
		m(state)
	}
	subjects := []models.Subject{
		{ID: "ABH001", Name: "John Smith", SafetyScore: 92, Status: models.StatusSafe},
		{ID: "ABH003", Name: "Mike Wilson", SafetyScore: 45, Status: models.StatusHighRisk},
	}
	view := dashboard.BuildView(state, subjects, []models.Alert{{ID: 1, Message: "SOS Alert: Tourist ABH003"}})
	return &view
}

func errSessionNotFound(id string) error {
	return fmt.Errorf("service: could not load session: session %s: %w", id, service.ErrSessionNotFound)
}

func TestDashboardRoutes_RequireAPIKey(t *testing.T) {
	deps, router := newTestHandler(t, testAPIKey)

	deps.dashboard.EXPECT().CreateSession(gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/dashboard/sessions", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, "POST", "/api/v1/dashboard/sessions", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestDashboardRoutes_AcceptBearerAndQueryKey(t *testing.T) {
	deps, router := newTestHandler(t, testAPIKey)

	deps.dashboard.EXPECT().GetView(gomock.Any(), "s-1").Return(testView(), nil).Times(2)

	w := makeRequest(router, "GET", "/api/v1/dashboard/sessions/s-1", nil, map[string]string{"Authorization": "Bearer " + testAPIKey})
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "GET", "/api/v1/dashboard/sessions/s-1?api_key="+testAPIKey, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateSession_Success(t *testing.T) {
	deps, router := newTestHandler(t, testAPIKey)

	deps.dashboard.EXPECT().CreateSession(gomock.Any()).Return(testView(), nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/dashboard/sessions", nil, apiKeyHd)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ViewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "s-1", resp.SessionID)
	assert.Equal(t, "none", resp.Overlay)
	assert.Equal(t, "all", resp.Filter)
	assert.Equal(t, CoordinatesDTO{Lat: 28.6139, Lng: 77.209}, resp.MapLocation)
	assert.Len(t, resp.Subjects, 2)
	assert.Equal(t, []string{"SOS Alert: Tourist ABH003"}, resp.Alerts)
	assert.Equal(t, StatsDTO{Total: 2, Safe: 1, Caution: 0, HighRisk: 1}, resp.Stats)
	assert.Equal(t, 1, resp.FilterCounts["high-risk"])
}

func TestCreateSession_ServiceError(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.dashboard.EXPECT().CreateSession(gomock.Any()).Return(nil, errors.New("redis down")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/dashboard/sessions", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetView_SessionNotFound(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.dashboard.EXPECT().GetView(gomock.Any(), "gone").Return(nil, errSessionNotFound("gone")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard/sessions/gone", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"session not found"}`, w.Body.String())
}

func TestSetFilter_Success(t *testing.T) {
	deps, router := newTestHandler(t)
	view := testView(func(s *dashboard.State) { s.SetFilter(dashboard.FilterHighRisk) })

	deps.dashboard.EXPECT().SetFilter(gomock.Any(), "s-1", dashboard.FilterHighRisk).Return(view, nil).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/dashboard/sessions/s-1/filter", jsonBody(t, FilterRequest{Filter: "high-risk"}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ViewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Subjects, 1)
	assert.Equal(t, "ABH003", resp.Subjects[0].ID)
}

func TestSetFilter_ValidationError(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.dashboard.EXPECT().SetFilter(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "PUT", "/api/v1/dashboard/sessions/s-1/filter", jsonBody(t, FilterRequest{Filter: "solo-female"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Filter' failed on the 'oneof' tag")
}

func TestSetFilter_InvalidJSON(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.dashboard.EXPECT().SetFilter(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "PUT", "/api/v1/dashboard/sessions/s-1/filter", bytes.NewBufferString(`{"filter":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSetSearchTerm_Success(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.dashboard.EXPECT().SetSearchTerm(gomock.Any(), "s-1", "mike").Return(testView(), nil).Times(1)

	w := makeRequest(router, "PUT", "/api/v1/dashboard/sessions/s-1/search-term", jsonBody(t, SearchTermRequest{Term: "mike"}))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOpenOverlay_Success(t *testing.T) {
	deps, router := newTestHandler(t)
	view := testView(func(s *dashboard.State) { s.Open(dashboard.OverlayTracking) })

	deps.dashboard.EXPECT().OpenOverlay(gomock.Any(), "s-1", dashboard.OverlayTracking).Return(view, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/dashboard/sessions/s-1/overlay", jsonBody(t, OverlayRequest{Overlay: "tracking"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"overlay":"tracking"`)
}

func TestOpenOverlay_UnknownOverlay(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.dashboard.EXPECT().OpenOverlay(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/dashboard/sessions/s-1/overlay", jsonBody(t, OverlayRequest{Overlay: "chatbot"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCloseOverlay(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.dashboard.EXPECT().CloseOverlay(gomock.Any(), "s-1", dashboard.OverlayChat).Return(testView(), nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/dashboard/sessions/s-1/overlay/chat", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "DELETE", "/api/v1/dashboard/sessions/s-1/overlay/none", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOutsideAndLogoClick(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.dashboard.EXPECT().OutsideClick(gomock.Any(), "s-1").Return(testView(), nil).Times(1)
	deps.dashboard.EXPECT().LogoClick(gomock.Any(), "s-1").Return(testView(), nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/dashboard/sessions/s-1/outside-click", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"overlay":"none"`)

	w = makeRequest(router, "POST", "/api/v1/dashboard/sessions/s-1/logo-click", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitSearch_RequiresQuery(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.dashboard.EXPECT().SubmitSearch(gomock.Any(), "s-1", "police station").Return(testView(), nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/dashboard/sessions/s-1/search", jsonBody(t, SearchQueryRequest{Query: "police station"}))
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "POST", "/api/v1/dashboard/sessions/s-1/search", jsonBody(t, SearchQueryRequest{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectSearchResult_PassesCoordinates(t *testing.T) {
	deps, router := newTestHandler(t)
	target := models.Coordinates{Lat: 1, Lng: 2}

	deps.dashboard.EXPECT().
		SelectSearchResult(gomock.Any(), "s-1", dashboard.SearchResult{Name: "AIIMS", Coordinates: &target}).
		Return(testView(func(s *dashboard.State) { s.MoveMap(target) }), nil).
		Times(1)
	deps.dashboard.EXPECT().
		SelectSearchResult(gomock.Any(), "s-1", dashboard.SearchResult{Name: "somewhere"}).
		Return(testView(), nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/dashboard/sessions/s-1/search/select", bytes.NewBufferString(`{"name":"AIIMS","coordinates":{"lat":1,"lng":2}}`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"map_location":{"lat":1,"lng":2}`)

	w = makeRequest(router, "POST", "/api/v1/dashboard/sessions/s-1/search/select", bytes.NewBufferString(`{"name":"somewhere"}`))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMoveMap_Validation(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.dashboard.EXPECT().MoveMap(gomock.Any(), "s-1", models.Coordinates{Lat: 0, Lng: 77.2}).Return(testView(), nil).Times(1)

	// Нулевая широта допустима
	w := makeRequest(router, "PUT", "/api/v1/dashboard/sessions/s-1/location", bytes.NewBufferString(`{"lat":0,"lng":77.2}`))
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "PUT", "/api/v1/dashboard/sessions/s-1/location", bytes.NewBufferString(`{"lng":77.2}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "PUT", "/api/v1/dashboard/sessions/s-1/location", bytes.NewBufferString(`{"lat":10,"lng":200}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBriefing(t *testing.T) {
	deps, router := newTestHandler(t)
	briefing := &models.Briefing{
		Location: delhi,
		Weather:  &models.WeatherReport{Temperature: 28, Condition: "Partly Cloudy", Alerts: []string{}},
	}

	deps.dashboard.EXPECT().Briefing(gomock.Any(), "s-1", "Delhi").Return(briefing, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dashboard/sessions/s-1/briefing?location=Delhi", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp BriefingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 28, resp.Weather.Temperature)
	assert.NotNil(t, resp.News)
	assert.Empty(t, resp.News)
}

func TestSelectSubject(t *testing.T) {
	deps, router := newTestHandler(t)
	subject := &models.Subject{ID: "ABH003", Name: "Mike Wilson", SafetyScore: 45, Status: models.StatusHighRisk}

	deps.dashboard.EXPECT().SelectSubject(gomock.Any(), "s-1", "ABH003").Return(subject, nil).Times(1)
	deps.dashboard.EXPECT().
		SelectSubject(gomock.Any(), "s-1", "ABH999").
		Return(nil, fmt.Errorf("service: subject ABH999: %w", service.ErrSubjectNotFound)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/dashboard/sessions/s-1/subjects/ABH003/select", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp SubjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Mike Wilson", resp.Name)
	assert.Equal(t, "high-risk", resp.Status)

	w = makeRequest(router, "POST", "/api/v1/dashboard/sessions/s-1/subjects/ABH999/select", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"subject not found"}`, w.Body.String())
}

func TestLogout(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.dashboard.EXPECT().Logout(gomock.Any(), "s-1").Return(nil).Times(1)
	deps.dashboard.EXPECT().Logout(gomock.Any(), "gone").Return(errSessionNotFound("gone")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/dashboard/sessions/s-1/logout", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, "POST", "/api/v1/dashboard/sessions/gone/logout", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStreamSubjects_UpgradesWithQueryKey(t *testing.T) {
	deps, router := newTestHandler(t, testAPIKey)
	srv := httptest.NewServer(router)
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/dashboard/stream"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(url+"?api_key="+testAPIKey, nil)
	require.NoError(t, err)
	defer conn.Close()

	assert.Eventually(t, func() bool { return deps.hub.count() == 1 }, 2*time.Second, 10*time.Millisecond)
}
