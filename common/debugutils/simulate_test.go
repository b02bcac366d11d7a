package debugutils

import (
	"context"
	"testing"
	"time"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatorDisabledByDefault(t *testing.T) {
	s := NewSimulator(config.NewConfig())
	for i := 0; i < 100; i++ {
		require.Nil(t, s.Simulate(context.Background()))
	}

	var nilSim *Simulator
	assert.Nil(t, nilSim.Simulate(context.Background()))
}

func TestSimulatorDelayWithinBounds(t *testing.T) {
	s := NewSimulator(config.NewConfig(config.WithSimulatedDelay(5, 10)))

	for i := 0; i < 20; i++ {
		d := s.randomDelay()
		assert.GreaterOrEqual(t, d, 5*time.Millisecond)
		assert.LessOrEqual(t, d, 10*time.Millisecond)
	}

	start := time.Now()
	assert.Nil(t, s.Simulate(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestSimulatorDelayHonoursCancellation(t *testing.T) {
	s := NewSimulator(config.NewConfig(config.WithSimulatedDelay(1000, 2000)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	appErr := s.Simulate(ctx)
	require.NotNil(t, appErr)
	assert.Equal(t, apierrors.ErrCodeRequestTimeout, appErr.Code)
}

func TestSimulatorInvalidBoundsDisableDelay(t *testing.T) {
	s := NewSimulator(config.NewConfig(config.WithSimulatedDelay(10, 5)))
	assert.False(t, s.delayEnabled)
}

func TestSimulatorAlwaysFailsAtFullChance(t *testing.T) {
	cfg := config.NewConfig()
	cfg.SimulateRandomErrorEnabled = true
	cfg.SimulateOverallErrorChance = 1.0
	s := NewSimulator(cfg)

	for i := 0; i < 20; i++ {
		appErr := s.Simulate(context.Background())
		require.NotNil(t, appErr)
		assert.Equal(t, apierrors.CategoryApplication, appErr.Category)
		assert.Contains(t, appErr.Message, "from debug utils")
	}
}
