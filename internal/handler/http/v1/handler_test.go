package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/abhaya_command_center/internal/config"
	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/shenikar/abhaya_command_center/internal/service"
	"github.com/shenikar/abhaya_command_center/internal/service/mocks"
	"github.com/shenikar/abhaya_command_center/internal/upstream"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"googlemaps.github.io/maps"
)

const testAPIKey = "test-api-key"

// stubHub запоминает принятые websocket-подключения
type stubHub struct {
	mu    sync.Mutex
	conns []*websocket.Conn
}

func (h *stubHub) Serve(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns = append(h.conns, conn)
}

func (h *stubHub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

type testDeps struct {
	lookup    *mocks.MockLookupService
	dashboard *mocks.MockDashboardService
	hub       *stubHub
}

// newTestHandler создает Handler с мокированными сервисами и настроенным роутером
func newTestHandler(t *testing.T, apiKeys ...string) (testDeps, *gin.Engine) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		lookup:    mocks.NewMockLookupService(ctrl),
		dashboard: mocks.NewMockDashboardService(ctrl),
		hub:       &stubHub{},
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{APIKeys: apiKeys}

	handler := NewHandler(deps.lookup, deps.dashboard, deps.hub, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return deps, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestNearbyPlaces_Success(t *testing.T) {
	deps, router := newTestHandler(t)
	location := models.Coordinates{Lat: 28.6139, Lng: 77.209}
	places := []maps.PlacesSearchResult{{Name: "AIIMS", PlaceID: "p1"}}

	deps.lookup.EXPECT().
		NearbyPlaces(gomock.Any(), location, 2000.0, "hospital").
		Return(places, nil).
		Times(1)

	body := jsonBody(t, PlacesRequest{Location: CoordinatesDTO{Lat: 28.6139, Lng: 77.209}, Radius: 2000, Type: "hospital"})
	w := makeRequest(router, "POST", "/api/v1/maps/places", body)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp PlacesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
	require.Len(t, resp.Places, 1)
	assert.Equal(t, "AIIMS", resp.Places[0].Name)
}

func TestNearbyPlaces_UndecodableBody(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.lookup.EXPECT().NearbyPlaces(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/maps/places", bytes.NewBufferString(`{"location":`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"places":[]}`, w.Body.String())
}

func TestNearbyPlaces_NotConfigured(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.lookup.EXPECT().
		NearbyPlaces(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]maps.PlacesSearchResult{}, service.ErrMapsNotConfigured).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/maps/places", bytes.NewBufferString(`{"location":{"lat":1,"lng":2},"radius":5000,"type":"police"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error":"Google Maps API not configured","places":[]}`, w.Body.String())
}

func TestNearbyPlaces_UpstreamFailureGivesEmptyList(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.lookup.EXPECT().
		NearbyPlaces(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/maps/places", bytes.NewBufferString(`{"location":{"lat":1,"lng":2},"radius":5000,"type":"police"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"places":[]}`, w.Body.String())
}

func TestSearchPlaces_Success(t *testing.T) {
	deps, router := newTestHandler(t)
	results := []maps.PlacesSearchResult{{Name: "Red Fort"}, {Name: "Red Fort Metro"}}

	deps.lookup.EXPECT().
		SearchPlaces(gomock.Any(), "Red Fort", models.Coordinates{Lat: 28.6, Lng: 77.2}).
		Return(results, nil).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/maps/search", bytes.NewBufferString(`{"query":"Red Fort","location":{"lat":28.6,"lng":77.2}}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Results, 2)
}

func TestSearchPlaces_NotConfiguredAndBadBody(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.lookup.EXPECT().
		SearchPlaces(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]maps.PlacesSearchResult{}, service.ErrMapsNotConfigured).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/maps/search", bytes.NewBufferString(`{"query":"x","location":{"lat":0,"lng":0}}`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error":"Google Maps API not configured","results":[]}`, w.Body.String())

	w = makeRequest(router, "POST", "/api/v1/maps/search", bytes.NewBufferString(`not json`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[]}`, w.Body.String())
}

func TestGetNews_MissingLocation(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.lookup.EXPECT().News(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/news", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing location"}`, w.Body.String())
}

func TestGetNews_Success(t *testing.T) {
	deps, router := newTestHandler(t)
	items := []models.NewsItem{
		{Title: "Paris Tourism Update: New Safety Guidelines", Source: "Local Tourism Board"},
		{Title: "Travel Alert: Paris Weather Conditions", Source: "Weather Department"},
	}

	deps.lookup.EXPECT().News(gomock.Any(), "Paris").Return(items, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/news?location=Paris", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.NewsItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	for _, item := range resp {
		assert.Contains(t, item.Title, "Paris")
	}
}

func TestGetNews_ServiceError(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.lookup.EXPECT().News(gomock.Any(), "Delhi").Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/news?location=Delhi", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch news data"}`, w.Body.String())
}

func TestGetWeather_MissingCoordinates(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.lookup.EXPECT().Weather(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	for _, url := range []string{"/api/v1/weather?lng=77.2", "/api/v1/weather?lat=28.6", "/api/v1/weather"} {
		w := makeRequest(router, "GET", url, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
		assert.JSONEq(t, `{"error":"Missing coordinates"}`, w.Body.String(), url)
	}
}

func TestGetWeather_UncheckedCoordinatesReachProvider(t *testing.T) {
	deps, router := newTestHandler(t)
	report := &models.WeatherReport{Condition: "Partly Cloudy", Alerts: []string{}}

	gomock.InOrder(
		deps.lookup.EXPECT().Weather(gomock.Any(), models.Coordinates{Lat: 0, Lng: 77.2}).Return(report, nil),
		deps.lookup.EXPECT().Weather(gomock.Any(), models.Coordinates{Lat: 95, Lng: 10}).Return(report, nil),
	)

	for _, url := range []string{"/api/v1/weather?lat=abc&lng=77.2", "/api/v1/weather?lat=95&lng=10"} {
		w := makeRequest(router, "GET", url, nil)
		assert.Equal(t, http.StatusOK, w.Code, url)
	}
}

func TestGetWeather_NonNumericGetsStaticReportWithoutKey(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	lookup := service.NewLookupService(nil, upstream.NewMockNewsProvider(), upstream.NewStaticWeatherProvider(), logger)
	handler := NewHandler(lookup, nil, &stubHub{}, logger, &config.Config{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))

	w := makeRequest(router, "GET", "/api/v1/weather?lat=abc&lng=1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"temperature":28,"condition":"Partly Cloudy","humidity":65,"windSpeed":12,"alerts":["High UV Index","Air Quality Moderate"]}`, w.Body.String())
}

func TestGetWeather_Success(t *testing.T) {
	deps, router := newTestHandler(t)
	report := &models.WeatherReport{
		Temperature: 28,
		Condition:   "Partly Cloudy",
		Humidity:    65,
		WindSpeed:   12,
		Alerts:      []string{"High UV Index", "Air Quality Moderate"},
	}

	deps.lookup.EXPECT().
		Weather(gomock.Any(), models.Coordinates{Lat: 28.6139, Lng: 77.209}).
		Return(report, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/weather?lat=28.6139&lng=77.209", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"temperature":28,"condition":"Partly Cloudy","humidity":65,"windSpeed":12,"alerts":["High UV Index","Air Quality Moderate"]}`, w.Body.String())
}

func TestGetWeather_ServiceError(t *testing.T) {
	deps, router := newTestHandler(t)

	deps.lookup.EXPECT().Weather(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/weather?lat=1&lng=2", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch weather data"}`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
