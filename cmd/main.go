package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/abhaya_command_center/internal/config"
	"github.com/shenikar/abhaya_command_center/internal/feed"
	v1 "github.com/shenikar/abhaya_command_center/internal/handler/http/v1"
	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/shenikar/abhaya_command_center/internal/repository"
	"github.com/shenikar/abhaya_command_center/internal/service"
	"github.com/shenikar/abhaya_command_center/internal/stream"
	"github.com/shenikar/abhaya_command_center/internal/upstream"
	"github.com/shenikar/abhaya_command_center/internal/webhook"
	"github.com/shenikar/abhaya_command_center/pkg/logger"
	"github.com/shenikar/abhaya_command_center/pkg/postgres"
	redisclient "github.com/shenikar/abhaya_command_center/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/abhaya_command_center/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Abhaya Command Center API
// @version 1.0
// @description Tourist safety command center: map/news/weather proxies and dashboard sessions.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ростер: PostgreSQL, если задан DATABASE_URL, иначе встроенный набор
	roster := repository.NewStaticRosterRepository()
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")
		roster = repository.NewPostgresRosterRepository(dbpool)
	} else {
		log.Info("DATABASE_URL is not set, using built-in roster")
	}

	// Redis опционален: без него сессии, лента и события живут в процессе
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, redisclient.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	} else {
		log.Info("REDIS_ADDR is not set, using in-process sessions and events")
	}

	// Воркер доставки событий родительскому приложению
	eventWorker := webhook.NewEventWorker(redisClient, log, cfg)

	var (
		sessions  service.SessionStore
		publisher webhook.EventPublisher
		subjects  feed.Feed
	)
	if redisClient != nil {
		sessions = repository.NewRedisSessionStore(redisClient, cfg.SessionTTL)
		publisher = webhook.NewRedisEventPublisher(redisClient)
		subjects = feed.NewRedisFeed(redisClient, log)
		eventWorker.Start(ctx)
	} else {
		sessions = repository.NewMemorySessionStore()
		publisher = webhook.NewDirectEventPublisher(eventWorker)
		subjects = feed.NewStaticFeed()
	}

	// Внешние провайдеры
	places, err := upstream.NewPlacesClient(cfg, log)
	if err != nil {
		log.Fatalf("Failed to create Google Places client: %v", err)
	}
	news := upstream.NewNewsProvider(cfg, log)
	weather := upstream.NewWeatherProvider(cfg, log)

	// Хаб живой ленты
	hub := stream.NewHub(log)
	go hub.Run(ctx)

	// Инициализация сервисов
	lookupService := service.NewLookupService(places, news, weather, log)
	dashboardService := service.NewDashboardService(service.DashboardDeps{
		Roster:      roster,
		Sessions:    sessions,
		Publisher:   publisher,
		Feed:        subjects,
		Broadcaster: hub,
		News:        news,
		Weather:     weather,
	}, models.Coordinates{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng}, log)

	if err := dashboardService.LoadRoster(ctx); err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	go func() {
		if err := dashboardService.RunFeed(ctx); err != nil {
			log.WithError(err).Error("Subject feed terminated")
		}
	}()

	// Инициализация хэндлеров
	handler := v1.NewHandler(lookupService, dashboardService, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), logger.GinMiddleware(log))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем ленту, хаб и воркер
	cancel()

	log.Info("Server gracefully stopped")
}
