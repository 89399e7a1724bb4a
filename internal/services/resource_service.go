// internal/services/resource_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scmdash/scm-backend/internal/faults"
	"github.com/scmdash/scm-backend/internal/metrics"
	"github.com/scmdash/scm-backend/internal/models"
	"github.com/scmdash/scm-backend/internal/store"
	"github.com/scmdash/scm-backend/internal/utils"
)

var ErrInvalidPayload = errors.New("invalid payload")

// Guard brackets a store operation, e.g. to load and persist state kept
// outside the session. fn reports whether it changed the collection.
type Guard interface {
	Do(ctx context.Context, fn func() (changed bool, err error)) error
}

type passthrough struct{}

func (passthrough) Do(_ context.Context, fn func() (bool, error)) error {
	_, err := fn()
	return err
}

// ResourceService is the simulated backend for one resource of one session.
// Every call waits out the injected latency first and may fail with an
// injected error. A missing identifier is not an error: Get and Update
// resolve to nil and Delete to false.
type ResourceService[T models.Record[T], D models.Draft[T], P models.Patch[T]] struct {
	resource string
	records  *store.Collection[T]
	injector *faults.Injector
	ids      IDGenerator
	now      func() time.Time
	touch    func(record *T, now time.Time)
	guard    Guard
}

type resourceOptions[T any] struct {
	touch func(record *T, now time.Time)
	guard Guard
}

func newResourceService[T models.Record[T], D models.Draft[T], P models.Patch[T]](
	resource string,
	records *store.Collection[T],
	deps Deps,
	ids IDGenerator,
	opts resourceOptions[T],
) *ResourceService[T, D, P] {
	guard := opts.guard
	if guard == nil {
		guard = passthrough{}
	}
	return &ResourceService[T, D, P]{
		resource: resource,
		records:  records,
		injector: deps.injector(),
		ids:      ids,
		now:      deps.clock(),
		touch:    opts.touch,
		guard:    guard,
	}
}

func (s *ResourceService[T, D, P]) Resource() string {
	return s.resource
}

func (s *ResourceService[T, D, P]) List(ctx context.Context) ([]T, error) {
	started := time.Now()
	if err := s.injector.Before(ctx, s.resource, faults.OpList); err != nil {
		return nil, s.fail(faults.OpList, started, err)
	}

	var items []T
	err := s.guard.Do(ctx, func() (bool, error) {
		items = s.records.Snapshot()
		return false, nil
	})
	if err != nil {
		return nil, s.fail(faults.OpList, started, err)
	}

	metrics.ObserveCall(s.resource, string(faults.OpList), "ok", started)
	return items, nil
}

func (s *ResourceService[T, D, P]) Get(ctx context.Context, id string) (*T, error) {
	started := time.Now()
	if err := s.injector.Before(ctx, s.resource, faults.OpGet); err != nil {
		if errors.Is(err, faults.ErrInjectedNotFound) {
			metrics.ObserveCall(s.resource, string(faults.OpGet), "not_found", started)
			return nil, nil
		}
		return nil, s.fail(faults.OpGet, started, err)
	}

	var (
		record T
		found  bool
	)
	err := s.guard.Do(ctx, func() (bool, error) {
		record, found = s.records.Find(id)
		return false, nil
	})
	if err != nil {
		return nil, s.fail(faults.OpGet, started, err)
	}
	if !found {
		metrics.ObserveCall(s.resource, string(faults.OpGet), "not_found", started)
		return nil, nil
	}

	metrics.ObserveCall(s.resource, string(faults.OpGet), "ok", started)
	return &record, nil
}

// Create stores a new record with a freshly generated identifier that is
// unique within the collection.
func (s *ResourceService[T, D, P]) Create(ctx context.Context, draft D) (T, error) {
	var created T
	started := time.Now()

	if err := utils.ValidateStruct(draft); err != nil {
		return created, fmt.Errorf("%s create: %w: %v", s.resource, ErrInvalidPayload, err)
	}
	if err := s.injector.Before(ctx, s.resource, faults.OpCreate); err != nil {
		return created, s.fail(faults.OpCreate, started, err)
	}

	err := s.guard.Do(ctx, func() (bool, error) {
		now := s.now()
		created = s.records.Insert(func(size int, taken func(string) bool) T {
			return draft.Build(s.ids.Next(size, taken), now)
		})
		return true, nil
	})
	if err != nil {
		return created, s.fail(faults.OpCreate, started, err)
	}

	s.recordMutation(faults.OpCreate, created.GetID(), started)
	return created, nil
}

// Update shallow-merges the non-nil fields of patch into the record.
func (s *ResourceService[T, D, P]) Update(ctx context.Context, id string, patch P) (*T, error) {
	started := time.Now()

	if err := utils.ValidateStruct(patch); err != nil {
		return nil, fmt.Errorf("%s update: %w: %v", s.resource, ErrInvalidPayload, err)
	}
	if err := s.injector.Before(ctx, s.resource, faults.OpUpdate); err != nil {
		if errors.Is(err, faults.ErrInjectedNotFound) {
			metrics.ObserveCall(s.resource, string(faults.OpUpdate), "not_found", started)
			return nil, nil
		}
		return nil, s.fail(faults.OpUpdate, started, err)
	}

	var (
		updated T
		found   bool
	)
	err := s.guard.Do(ctx, func() (bool, error) {
		now := s.now()
		updated, found = s.records.Modify(id, func(record *T) {
			patch.Apply(record)
			if s.touch != nil {
				s.touch(record, now)
			}
		})
		return found, nil
	})
	if err != nil {
		return nil, s.fail(faults.OpUpdate, started, err)
	}
	if !found {
		metrics.ObserveCall(s.resource, string(faults.OpUpdate), "not_found", started)
		return nil, nil
	}

	s.recordMutation(faults.OpUpdate, id, started)
	return &updated, nil
}

// Delete reports whether a record was removed.
func (s *ResourceService[T, D, P]) Delete(ctx context.Context, id string) (bool, error) {
	started := time.Now()
	if err := s.injector.Before(ctx, s.resource, faults.OpDelete); err != nil {
		if errors.Is(err, faults.ErrInjectedNotFound) {
			metrics.ObserveCall(s.resource, string(faults.OpDelete), "not_found", started)
			return false, nil
		}
		return false, s.fail(faults.OpDelete, started, err)
	}

	var removed bool
	err := s.guard.Do(ctx, func() (bool, error) {
		removed = s.records.Remove(id)
		return removed, nil
	})
	if err != nil {
		return false, s.fail(faults.OpDelete, started, err)
	}
	if !removed {
		metrics.ObserveCall(s.resource, string(faults.OpDelete), "not_found", started)
		return false, nil
	}

	s.recordMutation(faults.OpDelete, id, started)
	return true, nil
}

// Helper functions
func (s *ResourceService[T, D, P]) fail(op faults.Operation, started time.Time, err error) error {
	metrics.ObserveCall(s.resource, string(op), "error", started)
	logrus.WithFields(logrus.Fields{
		"resource":  s.resource,
		"operation": op,
	}).WithError(err).Debug("Mock service call failed")
	return fmt.Errorf("%s %s: %w", s.resource, op, err)
}

func (s *ResourceService[T, D, P]) recordMutation(op faults.Operation, id string, started time.Time) {
	metrics.ObserveCall(s.resource, string(op), "ok", started)
	metrics.StoreSize.WithLabelValues(s.resource).Set(float64(s.records.Len()))
	logrus.WithFields(logrus.Fields{
		"resource":  s.resource,
		"operation": op,
		"id":        id,
	}).Debug("Mock service mutation applied")
}
