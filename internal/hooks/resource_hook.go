// internal/hooks/resource_hook.go
package hooks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/scmdash/scm-backend/internal/models"
	"github.com/scmdash/scm-backend/internal/services"
)

// Service is the mock service a hook drives.
type Service[T models.Record[T], D models.Draft[T], P models.Patch[T]] interface {
	Resource() string
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id string, patch P) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Options struct {
	// RefetchOnMutation reloads the list after every successful mutation
	// instead of relying on the local merge alone.
	RefetchOnMutation bool
}

// MutationError is returned by hook mutations when the service call fails.
type MutationError struct {
	Resource string
	Action   string
	ID       string
	Err      error
}

func (e *MutationError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %v", e.Action, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Action, e.Resource, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// ResourceHook holds the client-side view of one resource: the last fetched
// list, a loading flag and the last error. Mutations go through the service,
// are merged into the local list and announced through the notification feed.
type ResourceHook[T models.Record[T], D models.Draft[T], P models.Patch[T]] struct {
	svc      Service[T, D, P]
	notify   *services.NotificationService
	messages Messages
	opts     Options

	mu         sync.RWMutex
	items      []T
	loading    bool
	err        error
	mounted    bool
	epoch      uint64
	generation uint64
	cancel     context.CancelFunc
}

func NewResourceHook[T models.Record[T], D models.Draft[T], P models.Patch[T]](
	svc Service[T, D, P],
	notify *services.NotificationService,
	opts Options,
) *ResourceHook[T, D, P] {
	if notify == nil {
		notify = services.NewNotificationService("en", services.DefaultFeedSize)
	}
	return &ResourceHook[T, D, P]{
		svc:      svc,
		notify:   notify,
		messages: messagesFor(svc.Resource()),
		opts:     opts,
	}
}

// Mount starts the initial fetch in the background. The returned channel is
// closed once that fetch has resolved or been discarded.
func (h *ResourceHook[T, D, P]) Mount(ctx context.Context) <-chan struct{} {
	ctx, cancel := context.WithCancel(ctx)

	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	h.mounted = true
	h.epoch++
	h.cancel = cancel
	h.loading = true
	h.generation++
	gen := h.generation
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		items, err := h.svc.List(ctx)
		h.applyFetch(gen, items, err)
	}()
	return done
}

// Unmount cancels in-flight calls. Results arriving afterwards are dropped.
func (h *ResourceHook[T, D, P]) Unmount() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.mounted = false
	h.epoch++
	h.generation++
	h.loading = false
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

// Refetch reloads the list synchronously.
func (h *ResourceHook[T, D, P]) Refetch(ctx context.Context) error {
	h.mu.Lock()
	h.loading = true
	h.generation++
	gen := h.generation
	h.mu.Unlock()

	items, err := h.svc.List(ctx)
	h.applyFetch(gen, items, err)
	return err
}

func (h *ResourceHook[T, D, P]) Items() []T {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]T, len(h.items))
	for i, item := range h.items {
		out[i] = item.Clone()
	}
	return out
}

func (h *ResourceHook[T, D, P]) Loading() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loading
}

func (h *ResourceHook[T, D, P]) Err() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.err
}

func (h *ResourceHook[T, D, P]) Mounted() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.mounted
}

// Create adds a record and announces it by name.
func (h *ResourceHook[T, D, P]) Create(ctx context.Context, draft D) (T, error) {
	epoch := h.currentEpoch()

	created, err := h.svc.Create(ctx, draft)
	if err != nil {
		var zero T
		return zero, h.failed(actionAdd, "", err)
	}

	h.merge(epoch, func(items []T) []T { return append(items, created.Clone()) })
	h.notify.Success(h.svc.Resource(), h.messages.CreatedTitle, h.messages.Created, created.DisplayName())
	h.afterMutation(ctx)
	return created, nil
}

// Update applies patch to id. A missing record resolves to nil without a
// notification.
func (h *ResourceHook[T, D, P]) Update(ctx context.Context, id string, patch P) (*T, error) {
	epoch := h.currentEpoch()

	updated, err := h.svc.Update(ctx, id, patch)
	if err != nil {
		return nil, h.failed(actionUpdate, id, err)
	}
	if updated == nil {
		return nil, nil
	}

	record := *updated
	h.merge(epoch, func(items []T) []T {
		for i := range items {
			if items[i].GetID() == id {
				items[i] = record.Clone()
			}
		}
		return items
	})
	h.notify.Success(h.svc.Resource(), h.messages.UpdatedTitle, h.messages.Updated, record.DisplayName())
	h.afterMutation(ctx)
	return updated, nil
}

// Delete removes id and reports whether anything was removed. Only an actual
// removal is announced.
func (h *ResourceHook[T, D, P]) Delete(ctx context.Context, id string) (bool, error) {
	epoch := h.currentEpoch()

	removed, err := h.svc.Delete(ctx, id)
	if err != nil {
		return false, h.failed(actionDelete, id, err)
	}
	if !removed {
		return false, nil
	}

	h.merge(epoch, func(items []T) []T {
		out := items[:0]
		for _, item := range items {
			if item.GetID() != id {
				out = append(out, item)
			}
		}
		return out
	})
	h.notify.Success(h.svc.Resource(), h.messages.DeletedTitle, h.messages.Deleted)
	h.afterMutation(ctx)
	return true, nil
}

// Helper functions
func (h *ResourceHook[T, D, P]) currentEpoch() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.epoch
}

func (h *ResourceHook[T, D, P]) applyFetch(gen uint64, items []T, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if gen != h.generation {
		return
	}
	h.loading = false
	if err != nil {
		if errors.Is(err, context.Canceled) && !h.mounted {
			return
		}
		h.err = err
		return
	}
	h.err = nil
	h.items = items
}

// merge applies fn to the local list unless the hook was unmounted since the
// mutation started.
func (h *ResourceHook[T, D, P]) merge(epoch uint64, fn func([]T) []T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.mounted || epoch != h.epoch {
		return
	}
	h.items = fn(h.items)
}

func (h *ResourceHook[T, D, P]) afterMutation(ctx context.Context) {
	if !h.opts.RefetchOnMutation || !h.Mounted() {
		return
	}
	if err := h.Refetch(ctx); err != nil {
		logrus.WithField("resource", h.svc.Resource()).WithError(err).Warn("Refetch after mutation failed")
	}
}

func (h *ResourceHook[T, D, P]) failed(action, id string, err error) error {
	h.notify.Error(h.svc.Resource(), h.messages.Failed, action)
	logrus.WithFields(logrus.Fields{
		"resource": h.svc.Resource(),
		"action":   action,
		"id":       id,
	}).WithError(err).Error("Mutation failed")
	return &MutationError{Resource: h.svc.Resource(), Action: action, ID: id, Err: err}
}
