// internal/faults/injector.go
package faults

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scmdash/scm-backend/internal/metrics"
)

var (
	// ErrInjectedFailure simulates a backend failure.
	ErrInjectedFailure = errors.New("simulated backend failure")
	// ErrInjectedNotFound simulates the backend losing the record; services
	// resolve it the same way as a genuinely missing identifier.
	ErrInjectedNotFound = errors.New("simulated record not found")
)

// Injector applies a Profile to mock service calls.
type Injector struct {
	mu      sync.Mutex
	profile *Profile
	rng     *rand.Rand
	sleep   func(ctx context.Context, d time.Duration) error
}

func NewInjector(profile *Profile) *Injector {
	if profile == nil {
		profile = Instant()
	}
	profile.Clamp()

	seed := profile.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Injector{
		profile: profile,
		rng:     rand.New(rand.NewSource(seed)),
		sleep:   sleepContext,
	}
}

// SetProfile swaps the active profile at runtime.
func (i *Injector) SetProfile(profile *Profile) {
	profile.Clamp()
	i.mu.Lock()
	defer i.mu.Unlock()
	i.profile = profile
}

func (i *Injector) Profile() Profile {
	i.mu.Lock()
	defer i.mu.Unlock()
	return *i.profile
}

// Before simulates the network round trip of a call: it waits for the
// drawn latency (returning early with ctx.Err() on cancellation) and then
// rolls the configured failure and not-found rates.
func (i *Injector) Before(ctx context.Context, resource string, op Operation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	i.mu.Lock()
	if i.profile.Disabled {
		i.mu.Unlock()
		return nil
	}
	rule := i.profile.RuleFor(resource, op)
	latency := i.drawLatency(rule)
	failRoll := i.rng.Float64()
	notFoundRoll := i.rng.Float64()
	i.mu.Unlock()

	if latency > 0 {
		metrics.SimulatedLatency.WithLabelValues(resource, string(op)).Observe(latency.Seconds())
		if err := i.sleep(ctx, latency); err != nil {
			return err
		}
	}

	if failRoll < rule.FailureRate {
		metrics.FaultsInjected.WithLabelValues(resource, string(op), "failure").Inc()
		logrus.WithFields(logrus.Fields{
			"resource":  resource,
			"operation": op,
		}).Debug("Injected simulated failure")
		return ErrInjectedFailure
	}

	if (op == OpGet || op == OpUpdate || op == OpDelete) && notFoundRoll < rule.NotFoundRate {
		metrics.FaultsInjected.WithLabelValues(resource, string(op), "not_found").Inc()
		return ErrInjectedNotFound
	}

	return nil
}

func (i *Injector) drawLatency(rule Rule) time.Duration {
	if rule.LatencyMax <= rule.LatencyMin {
		return rule.LatencyMin
	}
	spread := int64(rule.LatencyMax - rule.LatencyMin)
	return rule.LatencyMin + time.Duration(i.rng.Int63n(spread+1))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
