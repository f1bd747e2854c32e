package adapter

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/grocy-sync/internal/logger"
	"github.com/MKhiriev/grocy-sync/internal/metrics"
	gobreaker "github.com/sony/gobreaker/v2"
)

const breakerName = "grocy-api"

// newBreaker builds the circuit breaker guarding all Grocy calls. Only
// failures wrapping [ErrNetwork] count against it; a 404 or a validation
// error says nothing about reachability.
func newBreaker(maxFailures uint32, timeout time.Duration, log *logger.Logger) *gobreaker.CircuitBreaker[any] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, ErrNetwork)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info().
				Str("func", "adapter.OnStateChange").
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
}

// execute runs fn through the breaker. A rejected call is reported as
// [ErrNetwork] without touching the network.
func execute[T any](cb *gobreaker.CircuitBreaker[any], fn func() (T, error)) (T, error) {
	var zero T

	result, err := cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%w: %w", ErrNetwork, err)
		}
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
