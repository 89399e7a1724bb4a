// internal/hooks/workspace.go
package hooks

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scmdash/scm-backend/internal/insights"
	"github.com/scmdash/scm-backend/internal/services"
	"github.com/scmdash/scm-backend/internal/store"
)

// Workspace is everything one open dashboard sees: the session's services
// and a mounted hook per resource.
type Workspace struct {
	ID            string
	Services      *services.Suite
	Notifications *services.NotificationService
	Inventory     *InventoryHook
	Customers     *CustomerHook
	Suppliers     *SupplierHook
	Products      *ProductHook
	Shipments     *ShipmentHook
	Orders        *OrderHook
}

func NewWorkspace(session *store.Session, deps services.Deps, exporter *services.ExportService, client *insights.Client, opts Options) *Workspace {
	suite := services.NewSuite(session, deps)
	return &Workspace{
		ID:            session.ID,
		Services:      suite,
		Notifications: suite.Notifications,
		Inventory:     newInventoryHook(suite, opts),
		Customers:     newCustomerHook(suite, opts),
		Suppliers:     newSupplierHook(suite, opts),
		Products:      newProductHook(suite, opts),
		Shipments:     newShipmentHook(suite, opts),
		Orders:        NewOrderHook(session.Orders, suite.Notifications, exporter, client, deps.Now),
	}
}

// Mount starts the initial fetch of every resource hook and returns once all
// of them have resolved.
func (w *Workspace) Mount(ctx context.Context) {
	for _, done := range []<-chan struct{}{
		w.Inventory.Mount(ctx),
		w.Customers.Mount(ctx),
		w.Suppliers.Mount(ctx),
		w.Products.Mount(ctx),
		w.Shipments.Mount(ctx),
	} {
		<-done
	}
}

func (w *Workspace) Unmount() {
	w.Inventory.Unmount()
	w.Customers.Unmount()
	w.Suppliers.Unmount()
	w.Products.Unmount()
	w.Shipments.Unmount()
}

// Manager hands out one workspace per session identifier.
type Manager struct {
	registry *store.Registry
	deps     services.Deps
	exporter *services.ExportService
	insights *insights.Client
	opts     Options

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

func NewManager(registry *store.Registry, deps services.Deps, exporter *services.ExportService, client *insights.Client, opts Options) *Manager {
	m := &Manager{
		registry:   registry,
		deps:       deps,
		exporter:   exporter,
		insights:   client,
		opts:       opts,
		workspaces: make(map[string]*Workspace),
	}
	registry.OnCreate(m.build)
	registry.OnEvict(m.forget)
	return m
}

func (m *Manager) build(session *store.Session) {
	ws := NewWorkspace(session, m.deps, m.exporter, m.insights, m.opts)

	m.mu.Lock()
	m.workspaces[session.ID] = ws
	m.mu.Unlock()

	logrus.WithField("session_id", session.ID).Info("Session workspace created")
}

// Workspace returns the workspace of sessionID, creating and mounting it on
// first use. An empty id selects the default session.
func (m *Manager) Workspace(ctx context.Context, sessionID string) *Workspace {
	session := m.registry.Get(sessionID)

	m.mu.Lock()
	ws, ok := m.workspaces[session.ID]
	if !ok {
		ws = NewWorkspace(session, m.deps, m.exporter, m.insights, m.opts)
		m.workspaces[session.ID] = ws
	}
	m.mu.Unlock()

	if !ws.Inventory.Mounted() {
		ws.Mount(context.WithoutCancel(ctx))
	}
	return ws
}

func (m *Manager) Insights() *insights.Client {
	return m.insights
}

// Drop unmounts and forgets a session.
func (m *Manager) Drop(sessionID string) bool {
	if sessionID == "" {
		sessionID = store.DefaultSessionID
	}
	m.forget(sessionID)
	return m.registry.Drop(sessionID)
}

// forget unmounts the workspace of a session the registry no longer holds.
func (m *Manager) forget(sessionID string) {
	m.mu.Lock()
	ws, ok := m.workspaces[sessionID]
	delete(m.workspaces, sessionID)
	m.mu.Unlock()

	if ok {
		ws.Unmount()
	}
}

// Len reports how many workspaces are live.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workspaces)
}

// Sweep evicts idle sessions every interval until ctx is done.
func (m *Manager) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := m.registry.Sweep(); len(evicted) > 0 {
				logrus.WithField("sessions", len(evicted)).Info("Idle sessions evicted")
			}
		}
	}
}

func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, ws := range m.workspaces {
		ws.Unmount()
		delete(m.workspaces, id)
	}
}
