package upstream

import (
	"github.com/shenikar/abhaya_command_center/internal/config"
	"github.com/shenikar/abhaya_command_center/internal/service"
	"github.com/sirupsen/logrus"
)

// WeatherProviderRandom включает случайную заглушку погоды, когда ключа нет
const WeatherProviderRandom = "random"

// NewNewsProvider выбирает источник новостей по конфигурации
func NewNewsProvider(cfg *config.Config, logger *logrus.Logger) service.NewsProvider {
	if cfg.NewsAPIKey == "" {
		logger.Info("NEWS_API_KEY is not set, using mock news provider")
		return NewMockNewsProvider()
	}
	return NewNewsAPIProvider(cfg.NewsAPIKey, cfg.UpstreamTimeout, logger)
}

// NewWeatherProvider выбирает источник погоды по конфигурации
func NewWeatherProvider(cfg *config.Config, logger *logrus.Logger) service.WeatherProvider {
	switch {
	case cfg.WeatherAPIKey != "":
		return NewOpenWeatherMapProvider(cfg.WeatherAPIKey, cfg.UpstreamTimeout, logger)
	case cfg.WeatherProvider == WeatherProviderRandom:
		logger.Info("WEATHER_API_KEY is not set, using random weather provider")
		return NewRandomWeatherProvider(nil)
	default:
		logger.Info("WEATHER_API_KEY is not set, using static weather provider")
		return NewStaticWeatherProvider()
	}
}

// NewPlacesClient возвращает nil без ключа: сервис отвечает "not configured"
func NewPlacesClient(cfg *config.Config, logger *logrus.Logger) (service.PlacesClient, error) {
	if cfg.GoogleMapsAPIKey == "" {
		logger.Warn("GOOGLE_MAPS_API_KEY is not set, places and search are disabled")
		return nil, nil
	}
	client, err := NewGooglePlacesClient(cfg.GoogleMapsAPIKey, "", cfg.UpstreamTimeout, logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}
