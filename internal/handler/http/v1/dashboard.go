package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/abhaya_command_center/internal/dashboard"
	"github.com/shenikar/abhaya_command_center/internal/service"
	"github.com/sirupsen/logrus"
)

// respondError сводит ошибки сервиса дашборда к HTTP-ответу
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		log.WithError(err).Warn("Session not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrSubjectNotFound):
		log.WithError(err).Warn("Subject not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
	default:
		log.WithError(err).Error("Dashboard service failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindAndValidate разбирает тело запроса и проверяет DTO. false - ответ уже отправлен.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func (h *Handler) sessionLog(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"session_id": c.Param("id"),
	})
}

// @Summary Create a dashboard session
// @Description Opens a new dashboard session with no overlay, the "all" filter and the default map location.
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} ViewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/sessions [post]
func (h *Handler) createSession(c *gin.Context) {
	log := h.logger.WithField("method", "createSession")

	view, err := h.dashboardService.CreateSession(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ViewToResponse(view))
}

// @Summary Get the dashboard view
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} ViewResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /dashboard/sessions/{id} [get]
func (h *Handler) getView(c *gin.Context) {
	log := h.sessionLog(c, "getView")

	view, err := h.dashboardService.GetView(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(view))
}

// @Summary Change the roster filter
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param request body FilterRequest true "Filter"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /dashboard/sessions/{id}/filter [put]
func (h *Handler) setFilter(c *gin.Context) {
	var input FilterRequest
	log := h.sessionLog(c, "setFilter")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	filter, err := dashboard.ParseFilter(input.Filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.dashboardService.SetFilter(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(view))
}

// @Summary Change the roster search term
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param request body SearchTermRequest true "Search term"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /dashboard/sessions/{id}/search-term [put]
func (h *Handler) setSearchTerm(c *gin.Context) {
	var input SearchTermRequest
	log := h.sessionLog(c, "setSearchTerm")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	view, err := h.dashboardService.SetSearchTerm(c.Request.Context(), c.Param("id"), input.Term)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(view))
}

// @Summary Open an overlay
// @Description Opening an overlay closes whichever one is open.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param request body OverlayRequest true "Overlay"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid overlay"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /dashboard/sessions/{id}/overlay [post]
func (h *Handler) openOverlay(c *gin.Context) {
	var input OverlayRequest
	log := h.sessionLog(c, "openOverlay")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	overlay, err := dashboard.ParseOverlay(input.Overlay)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.dashboardService.OpenOverlay(c.Request.Context(), c.Param("id"), overlay)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(view))
}

// @Summary Close an overlay
// @Description Closes the named overlay if it is the open one.
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param overlay path string true "Overlay" Enums(chat, settings, search, tracking)
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid overlay"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /dashboard/sessions/{id}/overlay/{overlay} [delete]
func (h *Handler) closeOverlay(c *gin.Context) {
	log := h.sessionLog(c, "closeOverlay")

	overlay, err := dashboard.ParseOverlay(c.Param("overlay"))
	if err != nil || overlay == dashboard.OverlayNone {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid overlay"})
		return
	}

	view, err := h.dashboardService.CloseOverlay(c.Request.Context(), c.Param("id"), overlay)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(view))
}

// @Summary Click outside overlays
// @Description Closes any open overlay.
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} ViewResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /dashboard/sessions/{id}/outside-click [post]
func (h *Handler) outsideClick(c *gin.Context) {
	log := h.sessionLog(c, "outsideClick")

	view, err := h.dashboardService.OutsideClick(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(view))
}

// @Summary Click the logo
// @Description Returns to the main view and closes any open overlay.
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} ViewResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /dashboard/sessions/{id}/logo-click [post]
func (h *Handler) logoClick(c *gin.Context) {
	log := h.sessionLog(c, "logoClick")

	view, err := h.dashboardService.LogoClick(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(view))
}

// @Summary Submit a map search
// @Description Records the query and opens the search overlay.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param request body SearchQueryRequest true "Query"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /dashboard/sessions/{id}/search [post]
func (h *Handler) submitSearch(c *gin.Context) {
	var input SearchQueryRequest
	log := h.sessionLog(c, "submitSearch")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	view, err := h.dashboardService.SubmitSearch(c.Request.Context(), c.Param("id"), input.Query)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(view))
}

// @Summary Select a search result
// @Description Moves the map to the result coordinates when present and closes the overlay.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param request body SelectSearchResultRequest true "Search result"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /dashboard/sessions/{id}/search/select [post]
func (h *Handler) selectSearchResult(c *gin.Context) {
	var input SelectSearchResultRequest
	log := h.sessionLog(c, "selectSearchResult")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	view, err := h.dashboardService.SelectSearchResult(c.Request.Context(), c.Param("id"), DTOToSearchResult(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(view))
}

// @Summary Move the map
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param request body MoveMapRequest true "Map location"
// @Success 200 {object} ViewResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /dashboard/sessions/{id}/location [put]
func (h *Handler) moveMap(c *gin.Context) {
	var input MoveMapRequest
	log := h.sessionLog(c, "moveMap")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	location := DTOToCoordinates(CoordinatesDTO{Lat: *input.Lat, Lng: *input.Lng})
	view, err := h.dashboardService.MoveMap(c.Request.Context(), c.Param("id"), location)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(view))
}

// @Summary Get a briefing for the map location
// @Description Weather for the session map location and news for the given label. Provider failures leave the part empty.
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param location query string false "Location label for news"
// @Success 200 {object} BriefingResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /dashboard/sessions/{id}/briefing [get]
func (h *Handler) getBriefing(c *gin.Context) {
	log := h.sessionLog(c, "getBriefing")

	briefing, err := h.dashboardService.Briefing(c.Request.Context(), c.Param("id"), c.Query("location"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, BriefingToResponse(briefing))
}

// @Summary Select a subject
// @Description Notifies the parent application with the full subject record.
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param subjectId path string true "Subject ID"
// @Success 200 {object} SubjectResponse
// @Failure 404 {object} map[string]string "Session or subject not found"
// @Router /dashboard/sessions/{id}/subjects/{subjectId}/select [post]
func (h *Handler) selectSubject(c *gin.Context) {
	log := h.sessionLog(c, "selectSubject").WithField("subject_id", c.Param("subjectId"))

	subject, err := h.dashboardService.SelectSubject(c.Request.Context(), c.Param("id"), c.Param("subjectId"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSubjectResponse(*subject))
}

// @Summary Log out
// @Description Notifies the parent application and closes the session.
// @Tags Dashboard
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /dashboard/sessions/{id}/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.sessionLog(c, "logout")

	if err := h.dashboardService.Logout(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Live roster stream
// @Description Websocket stream of subject updates as {type, data} messages.
// @Tags Dashboard
// @Security ApiKeyAuth
// @Success 101 "Switching Protocols"
// @Router /dashboard/stream [get]
func (h *Handler) streamSubjects(c *gin.Context) {
	log := h.logger.WithField("method", "streamSubjects")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrader уже записал ответ с ошибкой
		log.WithError(err).Warn("Failed to upgrade websocket connection")
		return
	}
	h.hub.Serve(conn)
}
