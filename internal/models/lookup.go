package models

// NewsItem - новость для текущей локации
type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Source      string `json:"source"`
}

// WeatherReport - сводка погоды для координат
type WeatherReport struct {
	Temperature int      `json:"temperature"`
	Condition   string   `json:"condition"`
	Humidity    int      `json:"humidity"`
	WindSpeed   int      `json:"windSpeed"`
	Alerts      []string `json:"alerts"`
}

// Briefing - погода и новости для текущей точки карты сессии
type Briefing struct {
	Location Coordinates    `json:"location"`
	Weather  *WeatherReport `json:"weather,omitempty"`
	News     []NewsItem     `json:"news"`
}
