package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Прокси к внешним API, без аутентификации: ими пользуется браузер
	maps := api.Group("/maps")
	{
		maps.POST("/places", h.nearbyPlaces)
		maps.POST("/search", h.searchPlaces)
	}
	api.GET("/news", h.getNews)
	api.GET("/weather", h.getWeather)

	// Сессии дашборда
	dash := api.Group("/dashboard")
	if len(h.cfg.APIKeys) > 0 {
		dash.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		dash.POST("/sessions", h.createSession)
		dash.GET("/sessions/:id", h.getView)
		dash.PUT("/sessions/:id/filter", h.setFilter)
		dash.PUT("/sessions/:id/search-term", h.setSearchTerm)
		dash.POST("/sessions/:id/overlay", h.openOverlay)
		dash.DELETE("/sessions/:id/overlay/:overlay", h.closeOverlay)
		dash.POST("/sessions/:id/outside-click", h.outsideClick)
		dash.POST("/sessions/:id/logo-click", h.logoClick)
		dash.POST("/sessions/:id/search", h.submitSearch)
		dash.POST("/sessions/:id/search/select", h.selectSearchResult)
		dash.PUT("/sessions/:id/location", h.moveMap)
		dash.GET("/sessions/:id/briefing", h.getBriefing)
		dash.POST("/sessions/:id/subjects/:subjectId/select", h.selectSubject)
		dash.POST("/sessions/:id/logout", h.logout)
		dash.GET("/stream", h.streamSubjects)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
