package v1

import (
	"github.com/shenikar/abhaya_command_center/internal/dashboard"
	"github.com/shenikar/abhaya_command_center/internal/models"
)

// DTOToCoordinates преобразует DTO точки в доменную модель
func DTOToCoordinates(dto CoordinatesDTO) models.Coordinates {
	return models.Coordinates{Lat: dto.Lat, Lng: dto.Lng}
}

func coordinatesToDTO(c models.Coordinates) CoordinatesDTO {
	return CoordinatesDTO{Lat: c.Lat, Lng: c.Lng}
}

// DTOToSearchResult преобразует выбранный результат поиска в доменную модель
func DTOToSearchResult(dto SelectSearchResultRequest) dashboard.SearchResult {
	result := dashboard.SearchResult{Name: dto.Name}
	if dto.Coordinates != nil {
		c := DTOToCoordinates(*dto.Coordinates)
		result.Coordinates = &c
	}
	return result
}

// ModelToSubjectResponse преобразует запись туриста в DTO для ответа
func ModelToSubjectResponse(s models.Subject) SubjectResponse {
	return SubjectResponse{
		ID:          s.ID,
		Name:        s.Name,
		Location:    s.Location,
		SafetyScore: s.SafetyScore,
		Status:      string(s.Status),
		LastUpdate:  s.LastUpdate,
		SoloFlag:    s.SoloFlag,
		Coordinates: coordinatesToDTO(s.Coordinates),
	}
}

// ViewToResponse преобразует представление дашборда в DTO для ответа
func ViewToResponse(v *dashboard.View) *ViewResponse {
	subjects := make([]SubjectResponse, len(v.Subjects))
	for i, s := range v.Subjects {
		subjects[i] = ModelToSubjectResponse(s)
	}

	counts := make(map[string]int, len(v.FilterCounts))
	for f, n := range v.FilterCounts {
		counts[string(f)] = n
	}

	alerts := v.Alerts
	if alerts == nil {
		alerts = []string{}
	}

	return &ViewResponse{
		SessionID:    v.SessionID,
		Overlay:      string(v.Overlay),
		Filter:       string(v.Filter),
		SearchTerm:   v.SearchTerm,
		SearchQuery:  v.SearchQuery,
		MapLocation:  coordinatesToDTO(v.MapLocation),
		Subjects:     subjects,
		Alerts:       alerts,
		FilterCounts: counts,
		Stats: StatsDTO{
			Total:    v.Total,
			Safe:     v.Safe,
			Caution:  v.Caution,
			HighRisk: v.HighRisk,
		},
	}
}

// BriefingToResponse преобразует сводку в DTO для ответа
func BriefingToResponse(b *models.Briefing) *BriefingResponse {
	news := b.News
	if news == nil {
		news = []models.NewsItem{}
	}
	return &BriefingResponse{
		Location: coordinatesToDTO(b.Location),
		Weather:  b.Weather,
		News:     news,
	}
}
