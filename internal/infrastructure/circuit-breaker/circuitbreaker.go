package circuitbreaker

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

const (
	minRequests      = 3
	maxFailureRatio  = 0.6
	openStateTimeout = 30 * time.Second
	halfOpenRequests = 1
)

// CreateCircuitBreaker opens once at least minRequests calls were counted and
// maxFailureRatio of them failed, then lets a single probe call through after
// openStateTimeout.
func CreateCircuitBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: halfOpenRequests,
		Timeout:     openStateTimeout,
		ReadyToTrip: shouldTrip,
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})
}

func shouldTrip(counts gobreaker.Counts) bool {
	if counts.Requests < minRequests {
		return false
	}

	return float64(counts.TotalFailures)/float64(counts.Requests) >= maxFailureRatio
}
