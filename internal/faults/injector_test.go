package faults

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scmdash/scm-backend/internal/config"
)

func TestInstantProfileNeverFails(t *testing.T) {
	inj := NewInjector(Instant())
	for i := 0; i < 100; i++ {
		require.NoError(t, inj.Before(context.Background(), "inventory", OpCreate))
	}
}

func TestFailureRateOneAlwaysFails(t *testing.T) {
	inj := NewInjector(&Profile{Seed: 7, Default: Rule{FailureRate: 1}})
	err := inj.Before(context.Background(), "customers", OpList)
	assert.ErrorIs(t, err, ErrInjectedFailure)
}

func TestNotFoundOnlyAppliesToLookups(t *testing.T) {
	inj := NewInjector(&Profile{Seed: 7, Default: Rule{NotFoundRate: 1}})

	assert.NoError(t, inj.Before(context.Background(), "suppliers", OpList))
	assert.NoError(t, inj.Before(context.Background(), "suppliers", OpCreate))
	assert.ErrorIs(t, inj.Before(context.Background(), "suppliers", OpUpdate), ErrInjectedNotFound)
	assert.ErrorIs(t, inj.Before(context.Background(), "suppliers", OpDelete), ErrInjectedNotFound)
}

func TestResourceOverride(t *testing.T) {
	inj := NewInjector(&Profile{
		Seed:    1,
		Default: Rule{},
		Resources: map[string]map[Operation]Rule{
			"products": {OpDelete: {FailureRate: 1}},
		},
	})

	assert.NoError(t, inj.Before(context.Background(), "products", OpList))
	assert.NoError(t, inj.Before(context.Background(), "inventory", OpDelete))
	assert.ErrorIs(t, inj.Before(context.Background(), "products", OpDelete), ErrInjectedFailure)
}

func TestLatencyHonoursCancellation(t *testing.T) {
	inj := NewInjector(&Profile{Default: Rule{LatencyMin: time.Hour, LatencyMax: time.Hour}})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := inj.Before(ctx, "orders", OpList)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLatencyIsDrawnWithinBounds(t *testing.T) {
	inj := NewInjector(&Profile{Seed: 42})
	var slept []time.Duration
	inj.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	inj.SetProfile(&Profile{Default: Rule{LatencyMin: 300 * time.Millisecond, LatencyMax: 500 * time.Millisecond}})

	for i := 0; i < 50; i++ {
		require.NoError(t, inj.Before(context.Background(), "inventory", OpList))
	}
	require.Len(t, slept, 50)
	for _, d := range slept {
		assert.GreaterOrEqual(t, d, 300*time.Millisecond)
		assert.LessOrEqual(t, d, 500*time.Millisecond)
	}
}

func TestDisabledProfileSkipsEverything(t *testing.T) {
	inj := NewInjector(&Profile{Disabled: true, Default: Rule{FailureRate: 1}})
	assert.NoError(t, inj.Before(context.Background(), "orders", OpUpdate))
}

func TestParseProfile(t *testing.T) {
	data := []byte(`
seed: 99
default:
  latencyMin: 100ms
  latencyMax: 50ms
  failureRate: 2
resources:
  products:
    create:
      latencyMin: 400ms
      latencyMax: 400ms
      notFoundRate: 0.1
`)
	profile, err := ParseProfile(data)
	require.NoError(t, err)

	assert.Equal(t, int64(99), profile.Seed)
	assert.Equal(t, 100*time.Millisecond, profile.Default.LatencyMax, "max is raised to min")
	assert.Equal(t, 1.0, profile.Default.FailureRate, "rates are clamped")

	rule := profile.RuleFor("products", OpCreate)
	assert.Equal(t, 400*time.Millisecond, rule.LatencyMin)
	assert.Equal(t, 0.1, rule.NotFoundRate)
	assert.Equal(t, profile.Default, profile.RuleFor("products", OpList))
}

func TestDashboardProfileDelays(t *testing.T) {
	p := DashboardProfile()
	assert.Equal(t, 500*time.Millisecond, p.RuleFor("inventory", OpList).LatencyMin)
	assert.Equal(t, 300*time.Millisecond, p.RuleFor("products", OpList).LatencyMin)
	assert.Equal(t, 400*time.Millisecond, p.RuleFor("products", OpUpdate).LatencyMax)
}

func TestFromConfigAppliesRatesEverywhere(t *testing.T) {
	profile, err := FromConfig(config.FaultConfig{
		LatencyMin:  10 * time.Millisecond,
		LatencyMax:  20 * time.Millisecond,
		FailureRate: 0.5,
		NotFound:    2,
		Seed:        3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), profile.Seed)
	assert.Equal(t, 10*time.Millisecond, profile.Default.LatencyMin)
	assert.Equal(t, 0.5, profile.Default.FailureRate)
	assert.Equal(t, 1.0, profile.Default.NotFoundRate)

	products := profile.RuleFor("products", OpCreate)
	assert.Equal(t, 400*time.Millisecond, products.LatencyMin)
	assert.Equal(t, 0.5, products.FailureRate)
}
