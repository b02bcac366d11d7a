package debugutils

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/config"
)

// simulatedErrorBlueprint represents a blueprint for an error that can be simulated.
type simulatedErrorBlueprint struct {
	Code    string
	Message string
}

var predefinedApplicationErrors = []simulatedErrorBlueprint{
	{Code: apierrors.ErrCodeDatabaseAccess, Message: "Simulated database access error"},
	{Code: apierrors.ErrCodeServiceUnavailable, Message: "Simulated service unavailability"},
	{Code: apierrors.ErrCodeInternalProcessing, Message: "Simulated internal processing error"},
	{Code: apierrors.ErrCodeRequestTimeout, Message: "Simulated request timeout"},
}

const defaultErrorChance = 0.1

// Simulator injects latency and random application errors into the data path
// so degraded dependencies can be exercised locally. The zero value and a nil
// *Simulator do nothing.
type Simulator struct {
	delayEnabled bool
	minDelay     time.Duration
	maxDelay     time.Duration

	errorsEnabled bool
	errorChance   float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator reads the SIMULATE_* settings. Inconsistent delay bounds disable the delay.
func NewSimulator(cfg *config.Config) *Simulator {
	s := &Simulator{
		errorsEnabled: cfg.SimulateRandomErrorEnabled,
		errorChance:   cfg.SimulateOverallErrorChance,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if cfg.SimulateDelayEnabled && cfg.SimulateDelayMinMs >= 0 && cfg.SimulateDelayMaxMs > cfg.SimulateDelayMinMs {
		s.delayEnabled = true
		s.minDelay = time.Duration(cfg.SimulateDelayMinMs) * time.Millisecond
		s.maxDelay = time.Duration(cfg.SimulateDelayMaxMs) * time.Millisecond
	}
	if s.errorChance <= 0 || s.errorChance > 1.0 {
		s.errorChance = defaultErrorChance
	}
	return s
}

// Simulate sleeps for a random delay and may return a simulated application error.
// A cancelled context cuts the delay short and is reported as a timeout.
func (s *Simulator) Simulate(ctx context.Context) *apierrors.AppError {
	if s == nil || (!s.delayEnabled && !s.errorsEnabled) {
		return nil
	}

	if s.delayEnabled {
		timer := time.NewTimer(s.randomDelay())
		select {
		case <-ctx.Done():
			timer.Stop()
			return apierrors.NewApplicationError(apierrors.ErrCodeRequestTimeout, "Request processing timed out", ctx.Err())
		case <-timer.C:
		}
	}

	if !s.errorsEnabled {
		return nil
	}

	s.mu.Lock()
	roll := s.rng.Float64()
	pick := predefinedApplicationErrors[s.rng.Intn(len(predefinedApplicationErrors))]
	s.mu.Unlock()

	if roll >= s.errorChance {
		return nil
	}
	return apierrors.NewApplicationError(pick.Code, fmt.Sprintf("%s from debug utils", pick.Message), nil)
}

func (s *Simulator) randomDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	span := int64(s.maxDelay - s.minDelay)
	return s.minDelay + time.Duration(s.rng.Int63n(span+1))
}
