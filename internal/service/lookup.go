package service

//go:generate mockgen -source=lookup.go -destination=mocks/lookup_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/abhaya_command_center/internal/metrics"
	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

// MaxNearbyPlaces - сколько мест отдает nearby-поиск
const MaxNearbyPlaces = 5

// ErrMapsNotConfigured - ключ Google Maps не задан, это штатный режим
var ErrMapsNotConfigured = errors.New("Google Maps API not configured")

// PlacesClient определяет контракт клиента Google Places
type PlacesClient interface {
	NearbySearch(ctx context.Context, location models.Coordinates, radius float64, placeType string) ([]maps.PlacesSearchResult, error)
	TextSearch(ctx context.Context, query string, location models.Coordinates) ([]maps.PlacesSearchResult, error)
}

// NewsProvider определяет контракт источника новостей (заглушка или реальный API)
type NewsProvider interface {
	FetchNews(ctx context.Context, location string) ([]models.NewsItem, error)
}

// WeatherProvider определяет контракт источника погоды (заглушка или реальный API)
type WeatherProvider interface {
	FetchWeather(ctx context.Context, coords models.Coordinates) (*models.WeatherReport, error)
}

// LookupService определяет контракт прокси к внешним API
type LookupService interface {
	NearbyPlaces(ctx context.Context, location models.Coordinates, radius float64, placeType string) ([]maps.PlacesSearchResult, error)
	SearchPlaces(ctx context.Context, query string, location models.Coordinates) ([]maps.PlacesSearchResult, error)
	News(ctx context.Context, location string) ([]models.NewsItem, error)
	Weather(ctx context.Context, coords models.Coordinates) (*models.WeatherReport, error)
}

type lookupService struct {
	places  PlacesClient
	news    NewsProvider
	weather WeatherProvider
	logger  *logrus.Logger
}

// NewLookupService создает сервис. places == nil означает, что ключ Google Maps не задан.
func NewLookupService(places PlacesClient, news NewsProvider, weather WeatherProvider, logger *logrus.Logger) LookupService {
	return &lookupService{
		places:  places,
		news:    news,
		weather: weather,
		logger:  logger,
	}
}

// NearbyPlaces возвращает не более MaxNearbyPlaces мест. Ошибки провайдера
// поглощаются: вызывающий получает пустой список.
func (s *lookupService) NearbyPlaces(ctx context.Context, location models.Coordinates, radius float64, placeType string) ([]maps.PlacesSearchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "lookup",
		"method":  "NearbyPlaces",
		"type":    placeType,
	})

	if s.places == nil {
		log.Debug("Google Maps key is not configured")
		metrics.DegradedResponses.WithLabelValues("places", "not_configured").Inc()
		return []maps.PlacesSearchResult{}, ErrMapsNotConfigured
	}

	results, err := s.places.NearbySearch(ctx, location, radius, placeType)
	if err != nil {
		log.WithError(err).Error("Places API error")
		metrics.DegradedResponses.WithLabelValues("places", "upstream_failure").Inc()
		return []maps.PlacesSearchResult{}, nil
	}

	if len(results) > MaxNearbyPlaces {
		results = results[:MaxNearbyPlaces]
	}
	if results == nil {
		results = []maps.PlacesSearchResult{}
	}
	log.WithField("count", len(results)).Info("Nearby places fetched")
	return results, nil
}

// SearchPlaces возвращает результаты текстового поиска без изменений
func (s *lookupService) SearchPlaces(ctx context.Context, query string, location models.Coordinates) ([]maps.PlacesSearchResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "lookup",
		"method":  "SearchPlaces",
		"query":   query,
	})

	if s.places == nil {
		log.Debug("Google Maps key is not configured")
		metrics.DegradedResponses.WithLabelValues("search", "not_configured").Inc()
		return []maps.PlacesSearchResult{}, ErrMapsNotConfigured
	}

	results, err := s.places.TextSearch(ctx, query, location)
	if err != nil {
		log.WithError(err).Error("Search API error")
		metrics.DegradedResponses.WithLabelValues("search", "upstream_failure").Inc()
		return []maps.PlacesSearchResult{}, nil
	}
	if len(results) == 0 {
		return []maps.PlacesSearchResult{}, nil
	}

	log.WithField("count", len(results)).Info("Text search completed")
	return results, nil
}

// News возвращает новости для локации от выбранного провайдера
func (s *lookupService) News(ctx context.Context, location string) ([]models.NewsItem, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "lookup",
		"method":   "News",
		"location": location,
	})

	items, err := s.news.FetchNews(ctx, location)
	if err != nil {
		log.WithError(err).Error("News API error")
		return nil, fmt.Errorf("service: could not fetch news: %w", err)
	}
	if items == nil {
		items = []models.NewsItem{}
	}
	return items, nil
}

// Weather возвращает сводку погоды для координат от выбранного провайдера
func (s *lookupService) Weather(ctx context.Context, coords models.Coordinates) (*models.WeatherReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "lookup",
		"method":  "Weather",
		"lat":     coords.Lat,
		"lng":     coords.Lng,
	})

	report, err := s.weather.FetchWeather(ctx, coords)
	if err != nil {
		log.WithError(err).Error("Weather API error")
		return nil, fmt.Errorf("service: could not fetch weather: %w", err)
	}
	if report.Alerts == nil {
		report.Alerts = []string{}
	}
	return report, nil
}
