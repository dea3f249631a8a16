package dashboard

import (
	"fmt"
	"strings"

	"github.com/shenikar/abhaya_command_center/internal/models"
)

// Filter - активный фильтр списка туристов
type Filter string

const (
	FilterAll      Filter = "all"
	FilterHighRisk Filter = "high-risk"
	FilterSoloFlag Filter = "solo-flag"
	FilterLowScore Filter = "low-score"
	FilterAlerts   Filter = "alerts"
)

// LowScoreThreshold - порог "низкого" индекса безопасности
const LowScoreThreshold = 70

// Filters перечисляет фильтры в порядке отображения в боковой панели
var Filters = []Filter{FilterAll, FilterHighRisk, FilterSoloFlag, FilterLowScore, FilterAlerts}

func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range Filters {
		if string(f) == s {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("unknown filter %q", s)
}

// Matches проверяет предикат фильтра для туриста
func (f Filter) Matches(s models.Subject) bool {
	switch f {
	case FilterAll:
		return true
	case FilterHighRisk:
		return s.Status == models.StatusHighRisk
	case FilterSoloFlag:
		return s.SoloFlag
	case FilterLowScore:
		return s.SafetyScore < LowScoreThreshold
	case FilterAlerts:
		return s.Status != models.StatusSafe
	}
	return false
}

// MatchesTerm - регистронезависимый поиск подстроки в имени или идентификаторе
func MatchesTerm(s models.Subject, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(s.Name), term) ||
		strings.Contains(strings.ToLower(s.ID), term)
}

// Visible возвращает туристов, прошедших и поиск, и фильтр. Порядок сохраняется.
func Visible(subjects []models.Subject, term string, filter Filter) []models.Subject {
	visible := make([]models.Subject, 0, len(subjects))
	for _, s := range subjects {
		if MatchesTerm(s, term) && filter.Matches(s) {
			visible = append(visible, s)
		}
	}
	return visible
}
