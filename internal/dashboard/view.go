package dashboard

import "github.com/shenikar/abhaya_command_center/internal/models"

// View - производное представление дашборда, пересчитывается на каждый запрос
type View struct {
	SessionID    string             `json:"session_id"`
	Overlay      Overlay            `json:"overlay"`
	Filter       Filter             `json:"filter"`
	SearchTerm   string             `json:"search_term"`
	SearchQuery  string             `json:"search_query"`
	MapLocation  models.Coordinates `json:"map_location"`
	Subjects     []models.Subject   `json:"subjects"`
	Alerts       []string           `json:"alerts"`
	FilterCounts map[Filter]int     `json:"filter_counts"`
	Total        int                `json:"total"`
	Safe         int                `json:"safe"`
	Caution      int                `json:"caution"`
	HighRisk     int                `json:"high_risk"`
}

// BuildView собирает представление из состояния сессии и текущего ростера
func BuildView(s *State, subjects []models.Subject, alerts []models.Alert) View {
	v := View{
		SessionID:    s.SessionID,
		Overlay:      s.Overlay,
		Filter:       s.Filter,
		SearchTerm:   s.SearchTerm,
		SearchQuery:  s.SearchQuery,
		MapLocation:  s.MapLocation,
		Subjects:     Visible(subjects, s.SearchTerm, s.Filter),
		Alerts:       make([]string, 0, len(alerts)),
		FilterCounts: make(map[Filter]int, len(Filters)),
		Total:        len(subjects),
	}

	for _, a := range alerts {
		v.Alerts = append(v.Alerts, a.Message)
	}

	// Счетчики фильтров не зависят от строки поиска, как в боковой панели
	for _, f := range Filters {
		v.FilterCounts[f] = 0
	}
	for _, subj := range subjects {
		for _, f := range Filters {
			if f.Matches(subj) {
				v.FilterCounts[f]++
			}
		}
		switch subj.Status {
		case models.StatusSafe:
			v.Safe++
		case models.StatusCaution:
			v.Caution++
		case models.StatusHighRisk:
			v.HighRisk++
		}
	}
	return v
}
