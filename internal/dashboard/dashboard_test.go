package dashboard

import (
	"testing"
	"time"

	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubjects() []models.Subject {
	return []models.Subject{
		{ID: "ABH001", Name: "John Smith", SafetyScore: 92, Status: models.StatusSafe},
		{ID: "ABH002", Name: "Sarah Johnson", SafetyScore: 65, Status: models.StatusCaution, SoloFlag: true},
		{ID: "ABH003", Name: "Mike Wilson", SafetyScore: 45, Status: models.StatusHighRisk},
		{ID: "ABH004", Name: "Emma Davis", SafetyScore: 88, Status: models.StatusSafe, SoloFlag: true},
	}
}

func ids(subjects []models.Subject) []string {
	out := make([]string, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, s.ID)
	}
	return out
}

func TestVisible_FilterPredicates(t *testing.T) {
	tests := []struct {
		filter   Filter
		expected []string
	}{
		{FilterAll, []string{"ABH001", "ABH002", "ABH003", "ABH004"}},
		{FilterHighRisk, []string{"ABH003"}},
		{FilterSoloFlag, []string{"ABH002", "ABH004"}},
		{FilterLowScore, []string{"ABH002", "ABH003"}},
		{FilterAlerts, []string{"ABH002", "ABH003"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Visible(testSubjects(), "", tt.filter)))
		})
	}
}

func TestVisible_SearchTermIsCaseInsensitive(t *testing.T) {
	subjects := testSubjects()

	assert.Equal(t, []string{"ABH001", "ABH002"}, ids(Visible(subjects, "JOHN", FilterAll)))
	assert.Equal(t, []string{"ABH003"}, ids(Visible(subjects, "abh003", FilterAll)))
	assert.Empty(t, Visible(subjects, "nobody", FilterAll))
}

func TestVisible_IsIntersectionOfSearchAndFilter(t *testing.T) {
	subjects := testSubjects()
	terms := []string{"", "j", "ABH00", "son", "emma", "zzz"}

	for _, term := range terms {
		for _, f := range Filters {
			got := Visible(subjects, term, f)
			var expected []string
			for _, s := range subjects {
				if MatchesTerm(s, term) && f.Matches(s) {
					expected = append(expected, s.ID)
				}
			}
			if expected == nil {
				expected = []string{}
			}
			assert.Equal(t, expected, ids(got), "term=%q filter=%s", term, f)
		}
	}
}

func TestState_OpeningOverlayLeavesExactlyOneOpen(t *testing.T) {
	overlays := []Overlay{OverlayChat, OverlaySettings, OverlaySearch, OverlayTracking}

	for _, first := range overlays {
		for _, second := range overlays {
			s := NewState("s", models.Coordinates{}, time.Now())
			s.Open(first)
			s.Open(second)
			assert.Equal(t, second, s.Overlay)
		}
	}
}

func TestState_OutsideClickAndLogoClickCloseEverything(t *testing.T) {
	for _, o := range []Overlay{OverlayNone, OverlayChat, OverlaySettings, OverlaySearch, OverlayTracking} {
		s := NewState("s", models.Coordinates{}, time.Now())
		s.Open(o)
		s.OutsideClick()
		assert.Equal(t, OverlayNone, s.Overlay)

		s.Open(o)
		s.LogoClick()
		assert.Equal(t, OverlayNone, s.Overlay)
	}
}

func TestState_CloseOnlyAffectsTheNamedOverlay(t *testing.T) {
	s := NewState("s", models.Coordinates{}, time.Now())
	s.Open(OverlayChat)

	s.Close(OverlaySettings)
	assert.Equal(t, OverlayChat, s.Overlay)

	s.Close(OverlayChat)
	assert.Equal(t, OverlayNone, s.Overlay)
}

func TestState_SearchFlow(t *testing.T) {
	start := models.Coordinates{Lat: 28.6139, Lng: 77.209}
	s := NewState("s", start, time.Now())
	s.Open(OverlayChat)

	s.SubmitSearch("police station")
	assert.Equal(t, OverlaySearch, s.Overlay)
	assert.Equal(t, "police station", s.SearchQuery)

	// Результат без координат не двигает карту
	s.SelectSearchResult(SearchResult{Name: "somewhere"})
	assert.Equal(t, OverlayNone, s.Overlay)
	assert.Equal(t, start, s.MapLocation)

	s.SubmitSearch("hospital")
	s.SelectSearchResult(SearchResult{Name: "AIIMS", Coordinates: &models.Coordinates{Lat: 1, Lng: 2}})
	assert.Equal(t, OverlayNone, s.Overlay)
	assert.Equal(t, models.Coordinates{Lat: 1, Lng: 2}, s.MapLocation)
}

func TestParseOverlayAndFilter(t *testing.T) {
	o, err := ParseOverlay("tracking")
	require.NoError(t, err)
	assert.Equal(t, OverlayTracking, o)

	o, err = ParseOverlay("")
	require.NoError(t, err)
	assert.Equal(t, OverlayNone, o)

	_, err = ParseOverlay("chatbot")
	assert.Error(t, err)

	f, err := ParseFilter("solo-flag")
	require.NoError(t, err)
	assert.Equal(t, FilterSoloFlag, f)

	_, err = ParseFilter("solo-female")
	assert.Error(t, err)
}

func TestBuildView(t *testing.T) {
	s := NewState("session-1", models.Coordinates{Lat: 28.6139, Lng: 77.209}, time.Now())
	s.SetFilter(FilterAlerts)
	s.SetSearchTerm("mike")
	alerts := []models.Alert{{ID: 1, Message: "SOS Alert: Tourist ABH003"}}

	v := BuildView(s, testSubjects(), alerts)

	assert.Equal(t, "session-1", v.SessionID)
	assert.Equal(t, []string{"ABH003"}, ids(v.Subjects))
	assert.Equal(t, []string{"SOS Alert: Tourist ABH003"}, v.Alerts)
	assert.Equal(t, 4, v.Total)
	assert.Equal(t, 2, v.Safe)
	assert.Equal(t, 1, v.Caution)
	assert.Equal(t, 1, v.HighRisk)
	assert.Equal(t, map[Filter]int{
		FilterAll:      4,
		FilterHighRisk: 1,
		FilterSoloFlag: 2,
		FilterLowScore: 2,
		FilterAlerts:   2,
	}, v.FilterCounts)
}
