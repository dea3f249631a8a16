package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/abhaya_command_center/internal/models"
)

const (
	eventQueueKey = "dashboard_events"
)

// EventType - тип колбэка дашборда
type EventType string

const (
	EventSubjectSelected EventType = "subject_selected"
	EventLogout          EventType = "logout"
)

// Event - структура для данных вебхука
type Event struct {
	Type      EventType       `json:"type"`
	SessionID string          `json:"session_id"`
	Subject   *models.Subject `json:"subject,omitempty"` // Полная запись туриста для subject_selected
	Timestamp time.Time       `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий дашборда
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisEventPublisher - реализация EventPublisher, использующая очередь Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dashboard event to Redis: %w", err)
	}
	return nil
}

// DirectEventPublisher доставляет событие сразу, в отдельной горутине.
// Используется, когда Redis не настроен.
type DirectEventPublisher struct {
	worker *EventWorker
}

func NewDirectEventPublisher(worker *EventWorker) *DirectEventPublisher {
	return &DirectEventPublisher{worker: worker}
}

func (p *DirectEventPublisher) Publish(_ context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard event: %w", err)
	}

	// Контекст запроса не передается: доставка переживает HTTP-запрос
	go p.worker.deliver(context.Background(), event, string(payload))
	return nil
}
