package models

import "time"

// SubjectStatus - уровень риска наблюдаемого туриста
type SubjectStatus string

const (
	StatusSafe     SubjectStatus = "safe"
	StatusCaution  SubjectStatus = "caution"
	StatusHighRisk SubjectStatus = "high-risk"
)

// Coordinates - географическая точка
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Subject представляет наблюдаемого туриста
type Subject struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Location    string        `json:"location"`
	SafetyScore int           `json:"safety_score"`
	Status      SubjectStatus `json:"status"`
	LastUpdate  string        `json:"last_update"`
	SoloFlag    bool          `json:"solo_flag"`
	Coordinates Coordinates   `json:"coordinates"`
}

// SubjectUpdate - событие из ленты живых обновлений
type SubjectUpdate struct {
	Subject    Subject   `json:"subject"`
	ReceivedAt time.Time `json:"received_at"`
}

// Alert - строка оповещения для панели алертов
type Alert struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}
