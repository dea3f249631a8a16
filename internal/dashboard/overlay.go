package dashboard

import "fmt"

// Overlay - единственная видимая модальная панель дашборда
type Overlay string

const (
	OverlayNone     Overlay = "none"
	OverlayChat     Overlay = "chat"
	OverlaySettings Overlay = "settings"
	OverlaySearch   Overlay = "search"
	OverlayTracking Overlay = "tracking"
)

// ParseOverlay разбирает имя панели, пустая строка означает отсутствие панели
func ParseOverlay(s string) (Overlay, error) {
	switch o := Overlay(s); o {
	case OverlayNone, OverlayChat, OverlaySettings, OverlaySearch, OverlayTracking:
		return o, nil
	case "":
		return OverlayNone, nil
	}
	return OverlayNone, fmt.Errorf("unknown overlay %q", s)
}
