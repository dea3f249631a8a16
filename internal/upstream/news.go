package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/sirupsen/logrus"
)

const newsAPIBaseURL = "https://newsapi.org"

// MockNewsProvider возвращает две заглушки, привязанные к запрошенной локации
type MockNewsProvider struct {
	now func() time.Time
}

func NewMockNewsProvider() *MockNewsProvider {
	return &MockNewsProvider{now: time.Now}
}

func (p *MockNewsProvider) FetchNews(_ context.Context, location string) ([]models.NewsItem, error) {
	publishedAt := p.now().UTC().Format(time.RFC3339)
	return []models.NewsItem{
		{
			Title:       fmt.Sprintf("%s Tourism Update: New Safety Guidelines", location),
			Description: "Local authorities announce enhanced safety measures for tourists",
			URL:         "#",
			PublishedAt: publishedAt,
			Source:      "Local Tourism Board",
		},
		{
			Title:       fmt.Sprintf("Travel Alert: %s Weather Conditions", location),
			Description: "Current weather conditions and travel recommendations",
			URL:         "#",
			PublishedAt: publishedAt,
			Source:      "Weather Department",
		},
	}, nil
}

// NewsAPIProvider - провайдер новостей поверх NewsAPI (/v2/everything)
type NewsAPIProvider struct {
	apiKey     string
	baseURL    string
	pageSize   int
	httpClient *http.Client
	breaker    *breaker[[]models.NewsItem]
}

func NewNewsAPIProvider(apiKey string, timeout time.Duration, logger *logrus.Logger) *NewsAPIProvider {
	return &NewsAPIProvider{
		apiKey:     apiKey,
		baseURL:    newsAPIBaseURL,
		pageSize:   5,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    newBreaker[[]models.NewsItem]("newsapi", logger),
	}
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

func (p *NewsAPIProvider) FetchNews(ctx context.Context, location string) ([]models.NewsItem, error) {
	return p.breaker.execute(func() ([]models.NewsItem, error) {
		return p.fetch(ctx, location)
	})
}

func (p *NewsAPIProvider) fetch(ctx context.Context, location string) ([]models.NewsItem, error) {
	params := url.Values{}
	params.Set("q", location+" tourism safety")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprintf("%d", p.pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v2/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create news request: %w", err)
	}
	req.Header.Set("X-Api-Key", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call NewsAPI: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read NewsAPI response: %w", err)
	}

	var result newsAPIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse NewsAPI response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || result.Status != "ok" {
		return nil, fmt.Errorf("NewsAPI error (status %d): %s %s", resp.StatusCode, result.Code, result.Message)
	}

	items := make([]models.NewsItem, 0, len(result.Articles))
	for _, a := range result.Articles {
		items = append(items, models.NewsItem{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
		})
	}
	return items, nil
}
