package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/shenikar/abhaya_command_center/internal/config"
	"github.com/shenikar/abhaya_command_center/internal/service"
	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

// StreamHub принимает websocket-подключения для живой ленты ростера
type StreamHub interface {
	Serve(conn *websocket.Conn)
}

type Handler struct {
	lookupService    service.LookupService
	dashboardService service.DashboardService
	hub              StreamHub
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
	upgrader         websocket.Upgrader
}

func NewHandler(lookupService service.LookupService, dashboardService service.DashboardService, hub StreamHub, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		lookupService:    lookupService,
		dashboardService: dashboardService,
		hub:              hub,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Дашборд встраивается в родительское приложение на другом origin
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// @Summary Find places near a point
// @Description Nearby search through Google Places. Returns at most 5 places. Upstream failures give an empty list.
// @Tags Maps
// @Accept json
// @Produce json
// @Param request body PlacesRequest true "Nearby search request"
// @Success 200 {object} PlacesResponse
// @Router /maps/places [post]
func (h *Handler) nearbyPlaces(c *gin.Context) {
	var input PlacesRequest
	log := h.logger.WithField("method", "nearbyPlaces")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusOK, PlacesResponse{Places: []maps.PlacesSearchResult{}})
		return
	}

	places, err := h.lookupService.NearbyPlaces(c.Request.Context(), DTOToCoordinates(input.Location), input.Radius, input.Type)
	if errors.Is(err, service.ErrMapsNotConfigured) {
		c.JSON(http.StatusOK, PlacesResponse{Error: err.Error(), Places: []maps.PlacesSearchResult{}})
		return
	}
	if err != nil || places == nil {
		places = []maps.PlacesSearchResult{}
	}
	c.JSON(http.StatusOK, PlacesResponse{Places: places})
}

// @Summary Text search for places
// @Description Text search through Google Places within 5 km of the location. Upstream failures give an empty list.
// @Tags Maps
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Text search request"
// @Success 200 {object} SearchResponse
// @Router /maps/search [post]
func (h *Handler) searchPlaces(c *gin.Context) {
	var input SearchRequest
	log := h.logger.WithField("method", "searchPlaces")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusOK, SearchResponse{Results: []maps.PlacesSearchResult{}})
		return
	}

	results, err := h.lookupService.SearchPlaces(c.Request.Context(), input.Query, DTOToCoordinates(input.Location))
	if errors.Is(err, service.ErrMapsNotConfigured) {
		c.JSON(http.StatusOK, SearchResponse{Error: err.Error(), Results: []maps.PlacesSearchResult{}})
		return
	}
	if err != nil || results == nil {
		results = []maps.PlacesSearchResult{}
	}
	c.JSON(http.StatusOK, SearchResponse{Results: results})
}

// @Summary Get local news
// @Description News for a location. Mock items when NEWS_API_KEY is not set.
// @Tags Lookup
// @Produce json
// @Param location query string true "Location label"
// @Success 200 {array} models.NewsItem
// @Failure 400 {object} map[string]string "Missing location"
// @Failure 500 {object} map[string]string "Failed to fetch news data"
// @Router /news [get]
func (h *Handler) getNews(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing location"})
		return
	}
	log := h.logger.WithField("method", "getNews").WithField("location", location)

	items, err := h.lookupService.News(c.Request.Context(), location)
	if err != nil {
		log.WithError(err).Error("Failed to fetch news from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news data"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Get current weather
// @Description Weather for a point. Static mock when WEATHER_API_KEY is not set.
// @Tags Lookup
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} models.WeatherReport
// @Failure 400 {object} map[string]string "Missing coordinates"
// @Failure 500 {object} map[string]string "Failed to fetch weather data"
// @Router /weather [get]
func (h *Handler) getWeather(c *gin.Context) {
	latRaw, lngRaw := c.Query("lat"), c.Query("lng")
	if latRaw == "" || lngRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing coordinates"})
		return
	}

	// Кроме наличия параметров ничего не проверяется: нечисловое значение
	// превращается в 0, мок-провайдеры координаты не используют
	lat, latErr := strconv.ParseFloat(latRaw, 64)
	lng, lngErr := strconv.ParseFloat(lngRaw, 64)
	log := h.logger.WithField("method", "getWeather").WithField("lat", latRaw).WithField("lng", lngRaw)
	if latErr != nil || lngErr != nil {
		log.Debug("Coordinates are not numeric, passing zero values to the provider")
	}

	report, err := h.lookupService.Weather(c.Request.Context(), DTOToCoordinates(CoordinatesDTO{Lat: lat, Lng: lng}))
	if err != nil {
		log.WithError(err).Error("Failed to fetch weather from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weather data"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
