package repository

import (
	"context"

	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/shenikar/abhaya_command_center/internal/service"
)

// StaticRosterRepository отдает фиксированный стартовый ростер.
// Используется, когда DATABASE_URL не задан.
type StaticRosterRepository struct {
	subjects []models.Subject
	alerts   []models.Alert
}

func NewStaticRosterRepository() service.RosterRepository {
	return &StaticRosterRepository{
		subjects: SeedSubjects(),
		alerts:   SeedAlerts(),
	}
}

func (r *StaticRosterRepository) ListSubjects(_ context.Context) ([]models.Subject, error) {
	return append([]models.Subject(nil), r.subjects...), nil
}

func (r *StaticRosterRepository) ListAlerts(_ context.Context) ([]models.Alert, error) {
	return append([]models.Alert(nil), r.alerts...), nil
}

// SeedSubjects - стартовый ростер. Те же записи засевает миграция 000002.
func SeedSubjects() []models.Subject {
	return []models.Subject{
		{
			ID:          "ABH001",
			Name:        "John Smith",
			Location:    "Red Fort",
			SafetyScore: 92,
			Status:      models.StatusSafe,
			LastUpdate:  "2 min ago",
			Coordinates: models.Coordinates{Lat: 28.6562, Lng: 77.241},
		},
		{
			ID:          "ABH002",
			Name:        "Sarah Johnson",
			Location:    "Chandni Chowk",
			SafetyScore: 65,
			Status:      models.StatusCaution,
			LastUpdate:  "5 min ago",
			SoloFlag:    true,
			Coordinates: models.Coordinates{Lat: 28.6506, Lng: 77.2334},
		},
		{
			ID:          "ABH003",
			Name:        "Mike Wilson",
			Location:    "Karol Bagh",
			SafetyScore: 45,
			Status:      models.StatusHighRisk,
			LastUpdate:  "1 min ago",
			Coordinates: models.Coordinates{Lat: 28.6519, Lng: 77.1909},
		},
		{
			ID:          "ABH004",
			Name:        "Emma Davis",
			Location:    "India Gate",
			SafetyScore: 88,
			Status:      models.StatusSafe,
			LastUpdate:  "3 min ago",
			SoloFlag:    true,
			Coordinates: models.Coordinates{Lat: 28.6129, Lng: 77.2295},
		},
	}
}

func SeedAlerts() []models.Alert {
	return []models.Alert{
		{ID: 1, Message: "SOS Alert: Tourist ABH003 - Karol Bagh - 2 min ago"},
		{ID: 2, Message: "Geo-fence: Tourist ABH002 entered high-risk area - 5 min ago"},
		{ID: 3, Message: "Family Alert: Tourist ABH005 reported missing family member - 8 min ago"},
		{ID: 4, Message: "Anomaly: Tourist ABH001 deviated from planned route - 12 min ago"},
	}
}
