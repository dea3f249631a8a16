package service

//go:generate mockgen -source=dashboard.go -destination=mocks/dashboard_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/abhaya_command_center/internal/dashboard"
	"github.com/shenikar/abhaya_command_center/internal/feed"
	"github.com/shenikar/abhaya_command_center/internal/metrics"
	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/shenikar/abhaya_command_center/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSubjectNotFound = errors.New("subject not found")
)

// RosterRepository определяет контракт источника ростера туристов и оповещений
type RosterRepository interface {
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	ListAlerts(ctx context.Context) ([]models.Alert, error)
}

// SessionStore определяет контракт хранилища сессий дашборда.
// Get возвращает ошибку, оборачивающую ErrSessionNotFound, если сессии нет.
type SessionStore interface {
	Get(ctx context.Context, id string) (*dashboard.State, error)
	Save(ctx context.Context, state *dashboard.State) error
	Delete(ctx context.Context, id string) error
}

// Broadcaster рассылает обновления ростера подключенным браузерам
type Broadcaster interface {
	Broadcast(update models.SubjectUpdate)
}

// DashboardService определяет контракт контроллера дашборда
type DashboardService interface {
	LoadRoster(ctx context.Context) error
	RunFeed(ctx context.Context) error
	ApplyUpdate(update models.SubjectUpdate)

	CreateSession(ctx context.Context) (*dashboard.View, error)
	GetView(ctx context.Context, sessionID string) (*dashboard.View, error)
	SetFilter(ctx context.Context, sessionID string, filter dashboard.Filter) (*dashboard.View, error)
	SetSearchTerm(ctx context.Context, sessionID, term string) (*dashboard.View, error)
	OpenOverlay(ctx context.Context, sessionID string, overlay dashboard.Overlay) (*dashboard.View, error)
	CloseOverlay(ctx context.Context, sessionID string, overlay dashboard.Overlay) (*dashboard.View, error)
	OutsideClick(ctx context.Context, sessionID string) (*dashboard.View, error)
	LogoClick(ctx context.Context, sessionID string) (*dashboard.View, error)
	SubmitSearch(ctx context.Context, sessionID, query string) (*dashboard.View, error)
	SelectSearchResult(ctx context.Context, sessionID string, result dashboard.SearchResult) (*dashboard.View, error)
	MoveMap(ctx context.Context, sessionID string, location models.Coordinates) (*dashboard.View, error)
	SelectSubject(ctx context.Context, sessionID, subjectID string) (*models.Subject, error)
	Logout(ctx context.Context, sessionID string) error
	Briefing(ctx context.Context, sessionID, location string) (*models.Briefing, error)
}

type dashboardService struct {
	roster      RosterRepository
	sessions    SessionStore
	publisher   webhook.EventPublisher
	feed        feed.Feed
	broadcaster Broadcaster
	news        NewsProvider
	weather     WeatherProvider
	logger      *logrus.Logger

	defaultLocation models.Coordinates
	now             func() time.Time

	rosterMu sync.RWMutex
	subjects []models.Subject
	alerts   []models.Alert

	// Переходы одной сессии выполняются строго последовательно
	sessionLocks sync.Map // map[string]*sync.Mutex
}

// DashboardDeps - зависимости контроллера дашборда
type DashboardDeps struct {
	Roster      RosterRepository
	Sessions    SessionStore
	Publisher   webhook.EventPublisher
	Feed        feed.Feed
	Broadcaster Broadcaster
	News        NewsProvider
	Weather     WeatherProvider
}

func NewDashboardService(deps DashboardDeps, defaultLocation models.Coordinates, logger *logrus.Logger) DashboardService {
	return &dashboardService{
		roster:          deps.Roster,
		sessions:        deps.Sessions,
		publisher:       deps.Publisher,
		feed:            deps.Feed,
		broadcaster:     deps.Broadcaster,
		news:            deps.News,
		weather:         deps.Weather,
		logger:          logger,
		defaultLocation: defaultLocation,
		now:             time.Now,
	}
}

// LoadRoster загружает ростер и оповещения из репозитория
func (s *dashboardService) LoadRoster(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "LoadRoster",
	})

	subjects, err := s.roster.ListSubjects(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load subjects from repository")
		return fmt.Errorf("service: could not load subjects: %w", err)
	}
	alerts, err := s.roster.ListAlerts(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load alerts from repository")
		return fmt.Errorf("service: could not load alerts: %w", err)
	}

	s.rosterMu.Lock()
	s.subjects = subjects
	s.alerts = alerts
	s.rosterMu.Unlock()

	log.WithFields(logrus.Fields{
		"subjects": len(subjects),
		"alerts":   len(alerts),
	}).Info("Roster loaded")
	return nil
}

// RunFeed применяет обновления из ленты и рассылает их до завершения ctx
func (s *dashboardService) RunFeed(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "RunFeed",
	})

	updates, err := s.feed.Subscribe(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to subject feed")
		return fmt.Errorf("service: could not subscribe to feed: %w", err)
	}

	log.Info("Subject feed started")
	for update := range updates {
		s.ApplyUpdate(update)
		if s.broadcaster != nil {
			s.broadcaster.Broadcast(update)
		}
	}
	log.Info("Subject feed stopped")
	return nil
}

// ApplyUpdate заменяет запись туриста по id или добавляет новую
func (s *dashboardService) ApplyUpdate(update models.SubjectUpdate) {
	metrics.FeedUpdates.Inc()

	s.rosterMu.Lock()
	defer s.rosterMu.Unlock()
	for i := range s.subjects {
		if s.subjects[i].ID == update.Subject.ID {
			s.subjects[i] = update.Subject
			return
		}
	}
	s.subjects = append(s.subjects, update.Subject)
}

func (s *dashboardService) snapshot() ([]models.Subject, []models.Alert) {
	s.rosterMu.RLock()
	defer s.rosterMu.RUnlock()
	return append([]models.Subject(nil), s.subjects...), append([]models.Alert(nil), s.alerts...)
}

func (s *dashboardService) buildView(state *dashboard.State) *dashboard.View {
	subjects, alerts := s.snapshot()
	view := dashboard.BuildView(state, subjects, alerts)
	return &view
}

// lock захватывает мьютекс сессии. Вызов release(true) дополнительно удаляет
// запись из sessionLocks: для несуществующих и закрытых сессий она не нужна.
func (s *dashboardService) lock(sessionID string) (release func(forget bool)) {
	m, _ := s.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return func(forget bool) {
		mu.Unlock()
		if forget {
			s.sessionLocks.CompareAndDelete(sessionID, mu)
		}
	}
}

// CreateSession открывает новую сессию дашборда с начальным состоянием
func (s *dashboardService) CreateSession(ctx context.Context) (*dashboard.View, error) {
	state := dashboard.NewState(uuid.NewString(), s.defaultLocation, s.now())
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "CreateSession",
		"session_id": state.SessionID,
	})

	if err := s.sessions.Save(ctx, state); err != nil {
		log.WithError(err).Error("Failed to save new session")
		return nil, fmt.Errorf("service: could not create session: %w", err)
	}

	metrics.DashboardSessions.WithLabelValues("created").Inc()
	log.Info("Dashboard session created")
	return s.buildView(state), nil
}

// transition загружает сессию, применяет переход и сохраняет результат
func (s *dashboardService) transition(ctx context.Context, sessionID, method string, fn func(*dashboard.State)) (*dashboard.View, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     method,
		"session_id": sessionID,
	})

	release := s.lock(sessionID)
	forget := false
	defer func() { release(forget) }()

	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			forget = true
			log.Debug("Session not found")
		} else {
			log.WithError(err).Error("Failed to load session")
		}
		return nil, fmt.Errorf("service: could not load session: %w", err)
	}

	if fn != nil {
		fn(state)
		state.UpdatedAt = s.now()
		if err := s.sessions.Save(ctx, state); err != nil {
			log.WithError(err).Error("Failed to save session")
			return nil, fmt.Errorf("service: could not save session: %w", err)
		}
		log.WithField("overlay", state.Overlay).Debug("Session updated")
	}

	return s.buildView(state), nil
}

func (s *dashboardService) GetView(ctx context.Context, sessionID string) (*dashboard.View, error) {
	return s.transition(ctx, sessionID, "GetView", nil)
}

func (s *dashboardService) SetFilter(ctx context.Context, sessionID string, filter dashboard.Filter) (*dashboard.View, error) {
	return s.transition(ctx, sessionID, "SetFilter", func(st *dashboard.State) { st.SetFilter(filter) })
}

func (s *dashboardService) SetSearchTerm(ctx context.Context, sessionID, term string) (*dashboard.View, error) {
	return s.transition(ctx, sessionID, "SetSearchTerm", func(st *dashboard.State) { st.SetSearchTerm(term) })
}

func (s *dashboardService) OpenOverlay(ctx context.Context, sessionID string, overlay dashboard.Overlay) (*dashboard.View, error) {
	return s.transition(ctx, sessionID, "OpenOverlay", func(st *dashboard.State) { st.Open(overlay) })
}

func (s *dashboardService) CloseOverlay(ctx context.Context, sessionID string, overlay dashboard.Overlay) (*dashboard.View, error) {
	return s.transition(ctx, sessionID, "CloseOverlay", func(st *dashboard.State) { st.Close(overlay) })
}

func (s *dashboardService) OutsideClick(ctx context.Context, sessionID string) (*dashboard.View, error) {
	return s.transition(ctx, sessionID, "OutsideClick", func(st *dashboard.State) { st.OutsideClick() })
}

func (s *dashboardService) LogoClick(ctx context.Context, sessionID string) (*dashboard.View, error) {
	return s.transition(ctx, sessionID, "LogoClick", func(st *dashboard.State) { st.LogoClick() })
}

func (s *dashboardService) SubmitSearch(ctx context.Context, sessionID, query string) (*dashboard.View, error) {
	return s.transition(ctx, sessionID, "SubmitSearch", func(st *dashboard.State) { st.SubmitSearch(query) })
}

func (s *dashboardService) SelectSearchResult(ctx context.Context, sessionID string, result dashboard.SearchResult) (*dashboard.View, error) {
	return s.transition(ctx, sessionID, "SelectSearchResult", func(st *dashboard.State) { st.SelectSearchResult(result) })
}

func (s *dashboardService) MoveMap(ctx context.Context, sessionID string, location models.Coordinates) (*dashboard.View, error) {
	return s.transition(ctx, sessionID, "MoveMap", func(st *dashboard.State) { st.MoveMap(location) })
}

// SelectSubject передает полную запись туриста родительскому приложению
func (s *dashboardService) SelectSubject(ctx context.Context, sessionID, subjectID string) (*models.Subject, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "SelectSubject",
		"session_id": sessionID,
		"subject_id": subjectID,
	})

	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		log.WithError(err).Warn("Failed to load session")
		return nil, fmt.Errorf("service: could not load session: %w", err)
	}

	subjects, _ := s.snapshot()
	var selected *models.Subject
	for i := range subjects {
		if subjects[i].ID == subjectID {
			selected = &subjects[i]
			break
		}
	}
	if selected == nil {
		log.Warn("Attempted to select a non-existent subject")
		return nil, fmt.Errorf("service: subject %s: %w", subjectID, ErrSubjectNotFound)
	}

	s.dispatch(ctx, log, webhook.Event{
		Type:      webhook.EventSubjectSelected,
		SessionID: sessionID,
		Subject:   selected,
		Timestamp: s.now(),
	})
	return selected, nil
}

// Logout уведомляет родительское приложение и закрывает сессию
func (s *dashboardService) Logout(ctx context.Context, sessionID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "Logout",
		"session_id": sessionID,
	})

	release := s.lock(sessionID)
	forget := false
	defer func() { release(forget) }()

	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		forget = errors.Is(err, ErrSessionNotFound)
		log.WithError(err).Warn("Failed to load session")
		return fmt.Errorf("service: could not load session: %w", err)
	}

	s.dispatch(ctx, log, webhook.Event{
		Type:      webhook.EventLogout,
		SessionID: sessionID,
		Timestamp: s.now(),
	})

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		log.WithError(err).Error("Failed to delete session")
		return fmt.Errorf("service: could not delete session: %w", err)
	}
	forget = true
	metrics.DashboardSessions.WithLabelValues("logged_out").Inc()

	log.Info("Dashboard session closed")
	return nil
}

// dispatch публикует событие без ожидания результата: ошибка только логируется
func (s *dashboardService) dispatch(ctx context.Context, log *logrus.Entry, event webhook.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event_type", event.Type).Error("Failed to publish dashboard event")
		metrics.DashboardEvents.WithLabelValues(string(event.Type), "publish_failed").Inc()
		return
	}
	metrics.DashboardEvents.WithLabelValues(string(event.Type), "published").Inc()
}

// Briefing запрашивает погоду для точки карты сессии и новости для location.
// Ошибки провайдеров не прерывают сводку: соответствующая часть остается пустой.
// Прерывает ее только отмена ctx вызывающего.
func (s *dashboardService) Briefing(ctx context.Context, sessionID, location string) (*models.Briefing, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "Briefing",
		"session_id": sessionID,
		"location":   location,
	})

	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		log.WithError(err).Warn("Failed to load session")
		return nil, fmt.Errorf("service: could not load session: %w", err)
	}

	briefing := &models.Briefing{Location: state.MapLocation, News: []models.NewsItem{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report, err := s.weather.FetchWeather(gctx, state.MapLocation)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			log.WithError(err).Warn("Weather provider failed, briefing without weather")
			return nil
		}
		briefing.Weather = report
		return nil
	})
	if location != "" {
		g.Go(func() error {
			items, err := s.news.FetchNews(gctx, location)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				log.WithError(err).Warn("News provider failed, briefing without news")
				return nil
			}
			if items != nil {
				briefing.News = items
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("Briefing request cancelled")
		return nil, fmt.Errorf("service: briefing cancelled: %w", err)
	}

	return briefing, nil
}
