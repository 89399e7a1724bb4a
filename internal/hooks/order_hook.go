// internal/hooks/order_hook.go
package hooks

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scmdash/scm-backend/internal/i18n"
	"github.com/scmdash/scm-backend/internal/insights"
	"github.com/scmdash/scm-backend/internal/models"
	"github.com/scmdash/scm-backend/internal/services"
	"github.com/scmdash/scm-backend/internal/store"
)

const ordersResource = "orders"

// OrderHook mutates orders directly in session state. Unlike the other
// resources there is no simulated backend round trip.
type OrderHook struct {
	orders   *store.Collection[models.Order]
	notify   *services.NotificationService
	exporter *services.ExportService
	insights *insights.Client
	now      func() time.Time

	mu         sync.Mutex
	lastNoteID int64
}

type OrderFilter struct {
	Status   models.OrderStatus `form:"status"`
	Priority string             `form:"priority"`
	From     time.Time          `form:"from" time_format:"2006-01-02"`
	To       time.Time          `form:"to" time_format:"2006-01-02"`
}

func NewOrderHook(orders *store.Collection[models.Order], notify *services.NotificationService, exporter *services.ExportService, client *insights.Client, now func() time.Time) *OrderHook {
	if now == nil {
		now = time.Now
	}
	if exporter == nil {
		exporter = services.NewExportServiceWithSink(nil, false)
	}
	return &OrderHook{
		orders:   orders,
		notify:   notify,
		exporter: exporter,
		insights: client,
		now:      now,
	}
}

func (h *OrderHook) Orders() []models.Order {
	return h.orders.Snapshot()
}

// UpdateStatus sets the status of orderID. Any status may follow any other.
// An unknown order is left alone and nothing is announced.
func (h *OrderHook) UpdateStatus(orderID string, status models.OrderStatus) (*models.Order, bool) {
	now := h.now()
	updated, ok := h.orders.Modify(orderID, func(o *models.Order) {
		o.Status = status
		o.UpdatedAt = now
	})
	if !ok {
		return nil, false
	}

	h.notify.Success(ordersResource, i18n.KeySuccess, i18n.KeyOrderStatusUpdated, orderID, status)
	return &updated, true
}

// AddNote appends a note to orderID. Note identifiers are millisecond
// timestamps, bumped so they strictly increase.
func (h *OrderHook) AddNote(orderID, text string) (*models.OrderNote, bool) {
	now := h.now()
	note := models.OrderNote{ID: h.nextNoteID(now), Text: text, Date: now}

	_, ok := h.orders.Modify(orderID, func(o *models.Order) {
		o.Notes = append(o.Notes, note)
	})
	if !ok {
		return nil, false
	}

	h.notify.Success(ordersResource, i18n.KeySuccess, i18n.KeyOrderNoteAdded)
	return &note, true
}

// Filter returns orders matching every non-zero field of f.
func (h *OrderHook) Filter(f OrderFilter) []models.Order {
	all := h.orders.Snapshot()
	out := make([]models.Order, 0, len(all))
	for _, o := range all {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.Priority != "" && !strings.EqualFold(o.Priority, f.Priority) {
			continue
		}
		if !f.From.IsZero() && o.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !o.CreatedAt.Before(f.To.AddDate(0, 0, 1)) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Export renders every order held by the session as CSV.
func (h *OrderHook) Export(ctx context.Context) (*services.ExportResult, error) {
	result, err := h.exporter.Export(ctx, h.orders.Snapshot())
	if err != nil {
		logrus.WithError(err).Error("Order export failed")
		return nil, fmt.Errorf("failed to export orders: %w", err)
	}
	h.notify.Success(ordersResource, i18n.KeySuccess, i18n.KeyOrdersExported)
	return result, nil
}

// Insights analyzes one order. Without a configured insight client the
// result asks for configuration; an unknown order resolves to nil.
func (h *OrderHook) Insights(ctx context.Context, orderID string) (*insights.Result[*insights.OrderAnalysis], error) {
	if h.insights == nil || !h.insights.IsConfigured() {
		h.notify.Error(ordersResource, i18n.KeyInsightsNotConfigured)
		return &insights.Result[*insights.OrderAnalysis]{Prompt: true}, nil
	}

	order, ok := h.orders.Find(orderID)
	if !ok {
		return nil, nil
	}

	result, err := h.insights.AnalyzeOrder(ctx, order)
	if err != nil {
		h.notify.Error(ordersResource, i18n.KeyInsightsFallback)
		logrus.WithField("order_id", orderID).WithError(err).Error("Error getting order insights")
		return nil, err
	}
	return result, nil
}

func (h *OrderHook) nextNoteID(now time.Time) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := now.UnixMilli()
	if id <= h.lastNoteID {
		id = h.lastNoteID + 1
	}
	h.lastNoteID = id
	return id
}
