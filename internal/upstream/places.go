package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

// TextSearchRadiusMeters - фиксированный радиус текстового поиска
const TextSearchRadiusMeters = 5000

// GooglePlacesClient - клиент Google Places (nearby search и text search)
type GooglePlacesClient struct {
	client  *maps.Client
	breaker *breaker[[]maps.PlacesSearchResult]
}

// NewGooglePlacesClient создает клиент Places. baseURL пустой для боевого API.
func NewGooglePlacesClient(apiKey, baseURL string, timeout time.Duration, logger *logrus.Logger) (*GooglePlacesClient, error) {
	opts := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if baseURL != "" {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GooglePlacesClient{
		client:  client,
		breaker: newBreaker[[]maps.PlacesSearchResult]("google_places", logger),
	}, nil
}

// NearbySearch ищет места заданного типа в радиусе от точки
func (c *GooglePlacesClient) NearbySearch(ctx context.Context, location models.Coordinates, radius float64, placeType string) ([]maps.PlacesSearchResult, error) {
	req := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: location.Lat, Lng: location.Lng},
		Type:     maps.PlaceType(placeType),
	}
	if radius > 0 {
		req.Radius = uint(radius)
	}

	return c.breaker.execute(func() ([]maps.PlacesSearchResult, error) {
		resp, err := c.client.NearbySearch(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("places nearby search: %w", err)
		}
		return resp.Results, nil
	})
}

// TextSearch выполняет текстовый поиск вокруг точки
func (c *GooglePlacesClient) TextSearch(ctx context.Context, query string, location models.Coordinates) ([]maps.PlacesSearchResult, error) {
	req := &maps.TextSearchRequest{
		Query:    query,
		Location: &maps.LatLng{Lat: location.Lat, Lng: location.Lng},
		Radius:   TextSearchRadiusMeters,
	}

	return c.breaker.execute(func() ([]maps.PlacesSearchResult, error) {
		resp, err := c.client.TextSearch(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("places text search: %w", err)
		}
		return resp.Results, nil
	})
}
