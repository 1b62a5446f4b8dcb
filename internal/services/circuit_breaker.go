package services

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"escrow-dashboard/internal/config"
	"escrow-dashboard/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

type CircuitBreakerConfig struct {
	Name            string
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:            "escrow_rows",
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// CircuitBreakerConfigFrom maps the breaker settings, keeping defaults for unset values
func CircuitBreakerConfigFrom(name string, cfg config.BreakerConfig) CircuitBreakerConfig {
	out := DefaultCircuitBreakerConfig()
	out.Name = name
	if cfg.MaxFailures > 0 {
		out.MaxFailures = cfg.MaxFailures
	}
	if cfg.ResetTimeout > 0 {
		out.ResetTimeout = cfg.ResetTimeout
	}
	if cfg.HalfOpenRequests > 0 {
		out.HalfOpenMaxSucc = cfg.HalfOpenRequests
	}
	return out
}

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreaker stops calling a failing collaborator for ResetTimeout after
// MaxFailures consecutive failures, then lets trial calls through
type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	metrics           MetricsRecorderInterface
}

func NewCircuitBreaker(config CircuitBreakerConfig, metrics MetricsRecorderInterface) *CircuitBreaker {
	return &CircuitBreaker{
		config:  config,
		state:   StateClosed,
		metrics: metrics,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && time.Since(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.transition(StateHalfOpen)
		return false
	}

	return cb.state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.transition(StateClosed)
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = time.Now()

	switch cb.state {
	case StateHalfOpen:
		cb.transition(StateOpen)
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.transition(StateOpen)
		}
	}
}

// transition must be called with mu held
func (cb *CircuitBreaker) transition(to models.CircuitBreakerState) {
	from := cb.state
	cb.state = to
	cb.halfOpenSuccesses = 0
	if to == StateClosed {
		cb.failures = 0
	}

	if from != to {
		slog.Warn("circuit breaker state changed",
			"breaker", cb.config.Name,
			"from", from.String(),
			"to", to.String())
	}

	if cb.metrics != nil {
		cb.metrics.RecordGauge("row_fetch_breaker_state", float64(to), map[string]string{"breaker": cb.config.Name})
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.transition(StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
