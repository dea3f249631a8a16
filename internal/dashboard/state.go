package dashboard

import (
	"time"

	"github.com/shenikar/abhaya_command_center/internal/models"
)

// State - состояние одной сессии дашборда.
// Все переходы чистые: ошибок нет, только изменение полей.
type State struct {
	SessionID   string             `json:"session_id"`
	Overlay     Overlay            `json:"overlay"`
	Filter      Filter             `json:"filter"`
	SearchTerm  string             `json:"search_term"`
	SearchQuery string             `json:"search_query"`
	MapLocation models.Coordinates `json:"map_location"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// SearchResult - выбранный результат поиска, координаты необязательны
type SearchResult struct {
	Name        string              `json:"name"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
}

func NewState(sessionID string, mapLocation models.Coordinates, now time.Time) *State {
	return &State{
		SessionID:   sessionID,
		Overlay:     OverlayNone,
		Filter:      FilterAll,
		MapLocation: mapLocation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Open открывает панель o. Панель хранится одним полем, поэтому
// остальные панели закрываются автоматически.
func (s *State) Open(o Overlay) {
	s.Overlay = o
}

// Close закрывает панель o, если именно она открыта
func (s *State) Close(o Overlay) {
	if s.Overlay == o {
		s.Overlay = OverlayNone
	}
}

// OutsideClick - клик за пределами корня дашборда
func (s *State) OutsideClick() {
	s.Overlay = OverlayNone
}

// LogoClick - возврат "домой"
func (s *State) LogoClick() {
	s.Overlay = OverlayNone
}

// SubmitSearch - Enter в поисковой строке шапки
func (s *State) SubmitSearch(query string) {
	s.SearchQuery = query
	s.Open(OverlaySearch)
}

// SelectSearchResult переносит карту на координаты результата (если есть) и закрывает поиск
func (s *State) SelectSearchResult(r SearchResult) {
	if r.Coordinates != nil {
		s.MapLocation = *r.Coordinates
	}
	s.Overlay = OverlayNone
}

func (s *State) MoveMap(c models.Coordinates) {
	s.MapLocation = c
}

func (s *State) SetFilter(f Filter) {
	s.Filter = f
}

func (s *State) SetSearchTerm(term string) {
	s.SearchTerm = term
}
