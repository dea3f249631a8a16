package v1

import (
	"github.com/shenikar/abhaya_command_center/internal/models"
	"googlemaps.github.io/maps"
)

// CoordinatesDTO - точка на карте
// @Description Точка на карте
type CoordinatesDTO struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// PlacesRequest DTO для поиска мест рядом с точкой
// @Description DTO для поиска мест рядом с точкой
type PlacesRequest struct {
	Location CoordinatesDTO `json:"location"`
	Radius   float64        `json:"radius"`
	Type     string         `json:"type"`
}

// PlacesResponse DTO для ответа nearby-поиска
// @Description DTO для ответа nearby-поиска
type PlacesResponse struct {
	Error  string                    `json:"error,omitempty"`
	Places []maps.PlacesSearchResult `json:"places"`
}

// SearchRequest DTO для текстового поиска
// @Description DTO для текстового поиска
type SearchRequest struct {
	Query    string         `json:"query"`
	Location CoordinatesDTO `json:"location"`
}

// SearchResponse DTO для ответа текстового поиска
// @Description DTO для ответа текстового поиска
type SearchResponse struct {
	Error   string                    `json:"error,omitempty"`
	Results []maps.PlacesSearchResult `json:"results"`
}

// FilterRequest DTO для смены фильтра ростера
// @Description DTO для смены фильтра ростера
type FilterRequest struct {
	Filter string `json:"filter" validate:"required,oneof=all high-risk solo-flag low-score alerts"`
}

// SearchTermRequest DTO для строки поиска по ростеру
// @Description DTO для строки поиска по ростеру
type SearchTermRequest struct {
	Term string `json:"term" validate:"max=100"`
}

// OverlayRequest DTO для открытия оверлея
// @Description DTO для открытия оверлея
type OverlayRequest struct {
	Overlay string `json:"overlay" validate:"required,oneof=chat settings search tracking"`
}

// SearchQueryRequest DTO для поиска по карте
// @Description DTO для поиска по карте
type SearchQueryRequest struct {
	Query string `json:"query" validate:"required,max=255"`
}

// SelectSearchResultRequest DTO для выбора результата поиска.
// Без coordinates карта остается на месте.
// @Description DTO для выбора результата поиска
type SelectSearchResultRequest struct {
	Name        string          `json:"name" validate:"max=255"`
	Coordinates *CoordinatesDTO `json:"coordinates,omitempty"`
}

// MoveMapRequest DTO для перемещения карты
// @Description DTO для перемещения карты
type MoveMapRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// SubjectResponse DTO туриста в ростере
// @Description DTO туриста в ростере
type SubjectResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	SafetyScore int            `json:"safety_score"`
	Status      string         `json:"status"`
	LastUpdate  string         `json:"last_update"`
	SoloFlag    bool           `json:"solo_flag"`
	Coordinates CoordinatesDTO `json:"coordinates"`
}

// StatsDTO - сводные счетчики по ростеру
type StatsDTO struct {
	Total    int `json:"total"`
	Safe     int `json:"safe"`
	Caution  int `json:"caution"`
	HighRisk int `json:"high_risk"`
}

// ViewResponse DTO представления дашборда
// @Description DTO представления дашборда
type ViewResponse struct {
	SessionID    string            `json:"session_id"`
	Overlay      string            `json:"overlay"`
	Filter       string            `json:"filter"`
	SearchTerm   string            `json:"search_term"`
	SearchQuery  string            `json:"search_query"`
	MapLocation  CoordinatesDTO    `json:"map_location"`
	Subjects     []SubjectResponse `json:"subjects"`
	Alerts       []string          `json:"alerts"`
	FilterCounts map[string]int    `json:"filter_counts"`
	Stats        StatsDTO          `json:"stats"`
}

// BriefingResponse DTO сводки по текущей точке карты
// @Description DTO сводки по текущей точке карты
type BriefingResponse struct {
	Location CoordinatesDTO        `json:"location"`
	Weather  *models.WeatherReport `json:"weather,omitempty"`
	News     []models.NewsItem     `json:"news"`
}
