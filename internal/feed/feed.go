package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/abhaya_command_center/internal/models"
	"github.com/sirupsen/logrus"
)

// SubjectUpdatesChannel - канал Redis pub/sub с обновлениями туристов
const SubjectUpdatesChannel = "subject_updates"

// Feed - источник живых обновлений ростера.
// Канал закрывается, когда ctx завершен или источник остановлен.
type Feed interface {
	Subscribe(ctx context.Context) (<-chan models.SubjectUpdate, error)
}

// StaticFeed не присылает обновлений: ростер остается исходным
type StaticFeed struct{}

func NewStaticFeed() *StaticFeed {
	return &StaticFeed{}
}

func (StaticFeed) Subscribe(ctx context.Context) (<-chan models.SubjectUpdate, error) {
	ch := make(chan models.SubjectUpdate)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

// RedisFeed читает обновления из канала Redis pub/sub
type RedisFeed struct {
	redisClient *redis.Client
	channel     string
	logger      *logrus.Logger
}

func NewRedisFeed(client *redis.Client, logger *logrus.Logger) *RedisFeed {
	return &RedisFeed{
		redisClient: client,
		channel:     SubjectUpdatesChannel,
		logger:      logger,
	}
}

func (f *RedisFeed) Subscribe(ctx context.Context) (<-chan models.SubjectUpdate, error) {
	pubsub := f.redisClient.Subscribe(ctx, f.channel)
	// Receive дожидается подтверждения подписки
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", f.channel, err)
	}

	log := f.logger.WithField("channel", f.channel)
	out := make(chan models.SubjectUpdate)
	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				update, err := decodeUpdate([]byte(msg.Payload))
				if err != nil {
					log.WithError(err).Warn("Skipping malformed subject update")
					continue
				}
				select {
				case out <- update:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func decodeUpdate(payload []byte) (models.SubjectUpdate, error) {
	var update models.SubjectUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		return update, fmt.Errorf("failed to unmarshal subject update: %w", err)
	}
	if update.Subject.ID == "" {
		return update, fmt.Errorf("subject update without id")
	}
	return update, nil
}
