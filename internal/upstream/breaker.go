package upstream

import (
	"errors"
	"time"

	"github.com/shenikar/abhaya_command_center/internal/metrics"
	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
)

// breaker оборачивает вызовы провайдера в circuit breaker и пишет метрики.
// Открытый breaker для вызывающего кода неотличим от ошибки провайдера.
type breaker[T any] struct {
	cb       *gobreaker.CircuitBreaker[T]
	provider string
}

func newBreaker[T any](provider string, logger *logrus.Logger) *breaker[T] {
	log := logger.WithField("circuit_breaker", provider)
	metrics.CircuitBreakerState.WithLabelValues(provider).Set(0)

	cb := gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        provider,
		MaxRequests: 3,                // пробные запросы в half-open
		Interval:    time.Minute,      // окно подсчета в closed
		Timeout:     30 * time.Second, // пауза перед half-open
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= 0.6 {
				log.WithFields(logrus.Fields{
					"failures":     counts.TotalFailures,
					"failure_rate": failureRatio * 100,
				}).Warn("Opening circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"from": from.String(),
				"to":   to.String(),
			}).Info("Circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &breaker[T]{cb: cb, provider: provider}
}

func (b *breaker[T]) execute(fn func() (T, error)) (T, error) {
	start := time.Now()
	result, err := b.cb.Execute(fn)
	metrics.UpstreamDuration.WithLabelValues(b.provider).Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.UpstreamRequests.WithLabelValues(b.provider, "rejected").Inc()
	case err != nil:
		metrics.UpstreamRequests.WithLabelValues(b.provider, "failure").Inc()
	default:
		metrics.UpstreamRequests.WithLabelValues(b.provider, "success").Inc()
	}
	return result, err
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
