package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/abhaya_command_center/internal/config"
	"github.com/shenikar/abhaya_command_center/internal/metrics"
	"github.com/sirupsen/logrus"
)

// EventWorker - структура для обработки и отправки событий дашборда
type EventWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	sleep       func(time.Duration)
}

// NewEventWorker создает новый EventWorker. redisClient может быть nil,
// тогда воркер используется только для прямой доставки.
func NewEventWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *EventWorker {
	return &EventWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		sleep: time.Sleep,
	}
}

// Start запускает горутину для обработки очереди событий
func (w *EventWorker) Start(ctx context.Context) {
	if w.redisClient == nil {
		return
	}
	w.logger.Info("Starting dashboard event worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping dashboard event worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из хвоста очереди, 0 - бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, eventQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, выходим на следующей итерации
					}
					w.logger.WithError(err).Error("Failed to pop dashboard event from Redis")
					w.sleep(w.cfg.WebhookTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event Event
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal dashboard event from Redis")
					continue
				}

				w.deliver(ctx, event, payload)
			}
		}
	}()
}

// deliver отправляет событие на WEBHOOK_URL с экспоненциальной задержкой между попытками
func (w *EventWorker) deliver(ctx context.Context, event Event, rawPayload string) bool {
	log := w.logger.WithField("event_type", event.Type).WithField("session_id", event.SessionID)
	log.Debug("Processing dashboard event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping event delivery.")
		metrics.DashboardEvents.WithLabelValues(string(event.Type), "skipped").Inc()
		return false
	}

	maxRetries := w.cfg.WebhookMaxRetries
	baseDelay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		if w.send(ctx, log, rawPayload) {
			log.Info("Dashboard event delivered successfully.")
			metrics.DashboardEvents.WithLabelValues(string(event.Type), "delivered").Inc()
			return true
		}
		if i == maxRetries-1 {
			break
		}
		log.Warnf("Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
		w.sleep(baseDelay)
		baseDelay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver dashboard event after %d attempts.", maxRetries)
	metrics.DashboardEvents.WithLabelValues(string(event.Type), "failed").Inc()
	return false
}

func (w *EventWorker) send(ctx context.Context, log *logrus.Entry, rawPayload string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		log.WithError(err).Error("Failed to create webhook request")
		return false
	}

	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("Failed to send webhook")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return true
	}
	log.Warnf("Webhook delivery failed with status code %d", resp.StatusCode)
	return false
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
