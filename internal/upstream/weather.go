package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/sirupsen/logrus"
)

const openWeatherMapBaseURL = "https://api.openweathermap.org"

// StaticWeatherProvider всегда возвращает одну и ту же сводку
type StaticWeatherProvider struct{}

func NewStaticWeatherProvider() *StaticWeatherProvider {
	return &StaticWeatherProvider{}
}

func (StaticWeatherProvider) FetchWeather(context.Context, models.Coordinates) (*models.WeatherReport, error) {
	return &models.WeatherReport{
		Temperature: 28,
		Condition:   "Partly Cloudy",
		Humidity:    65,
		WindSpeed:   12,
		Alerts:      []string{"High UV Index", "Air Quality Moderate"},
	}, nil
}

var randomConditions = []string{"Sunny", "Partly Cloudy", "Cloudy", "Light Rain"}

// RandomWeatherProvider генерирует правдоподобную случайную сводку
type RandomWeatherProvider struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomWeatherProvider(rnd *rand.Rand) *RandomWeatherProvider {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &RandomWeatherProvider{rnd: rnd}
}

func (p *RandomWeatherProvider) FetchWeather(context.Context, models.Coordinates) (*models.WeatherReport, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	report := &models.WeatherReport{
		Temperature: p.rnd.IntN(15) + 20, // 20-34 °C
		Condition:   randomConditions[p.rnd.IntN(len(randomConditions))],
		Humidity:    p.rnd.IntN(40) + 40, // 40-79 %
		WindSpeed:   p.rnd.IntN(20) + 5,  // 5-24 km/h
		Alerts:      []string{},
	}
	if p.rnd.Float64() > 0.5 {
		report.Alerts = append(report.Alerts, "High UV Index")
	}
	return report, nil
}

// OpenWeatherMapProvider - текущая погода из OpenWeatherMap (/data/2.5/weather)
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	breaker    *breaker[*models.WeatherReport]
}

func NewOpenWeatherMapProvider(apiKey string, timeout time.Duration, logger *logrus.Logger) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:     apiKey,
		baseURL:    openWeatherMapBaseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    newBreaker[*models.WeatherReport]("openweathermap", logger),
	}
}

type openWeatherMapResponse struct {
	Weather []struct {
		ID   int    `json:"id"`
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // м/с при units=metric
	} `json:"wind"`
	Message string `json:"message"`
}

func (p *OpenWeatherMapProvider) FetchWeather(ctx context.Context, coords models.Coordinates) (*models.WeatherReport, error) {
	return p.breaker.execute(func() (*models.WeatherReport, error) {
		return p.fetch(ctx, coords)
	})
}

func (p *OpenWeatherMapProvider) fetch(ctx context.Context, coords models.Coordinates) (*models.WeatherReport, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coords.Lng, 'f', -1, 64))
	params.Set("units", "metric")
	params.Set("appid", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/data/2.5/weather?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call OpenWeatherMap: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenWeatherMap response: %w", err)
	}

	var result openWeatherMapResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse OpenWeatherMap response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenWeatherMap error (status %d): %s", resp.StatusCode, result.Message)
	}

	report := &models.WeatherReport{
		Temperature: int(math.Round(result.Main.Temp)),
		Humidity:    int(math.Round(result.Main.Humidity)),
		WindSpeed:   int(math.Round(result.Wind.Speed * 3.6)), // км/ч
	}
	if len(result.Weather) > 0 {
		report.Condition = result.Weather[0].Main
	}
	report.Alerts = weatherAdvisories(report, result)
	return report, nil
}

// weatherAdvisories выводит предупреждения из текущих условий:
// у эндпоинта current weather нет собственного списка алертов
func weatherAdvisories(report *models.WeatherReport, raw openWeatherMapResponse) []string {
	alerts := []string{}
	for _, w := range raw.Weather {
		// 2xx - гроза, 781 - торнадо
		if (w.ID >= 200 && w.ID < 300) || w.ID == 781 {
			alerts = append(alerts, w.Main+" Warning")
			break
		}
	}
	if report.Temperature >= 40 {
		alerts = append(alerts, "Extreme Heat")
	}
	if report.WindSpeed >= 50 {
		alerts = append(alerts, "Strong Wind")
	}
	return alerts
}
