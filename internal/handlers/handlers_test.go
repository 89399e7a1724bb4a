package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/scmdash/scm-backend/internal/faults"
	"github.com/scmdash/scm-backend/internal/hooks"
	"github.com/scmdash/scm-backend/internal/insights"
	"github.com/scmdash/scm-backend/internal/kvstore"
	"github.com/scmdash/scm-backend/internal/middleware"
	"github.com/scmdash/scm-backend/internal/services"
	"github.com/scmdash/scm-backend/internal/store"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta struct {
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	} `json:"meta"`
}

type HandlersTestSuite struct {
	suite.Suite
	injector *faults.Injector
	manager  *hooks.Manager
	engine   *gin.Engine
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.injector = faults.NewInjector(faults.Instant())
	deps := services.Deps{
		Injector: s.injector,
		Catalog:  services.NewProductCatalog(kvstore.NewMemory(), store.DemoProducts()),
		Now:      func() time.Time { return time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC) },
		IDSeed:   5,
	}
	client, err := insights.NewClient(context.Background(), kvstore.NewMemory(), insights.NewDemoProvider(1), nil)
	s.Require().NoError(err)

	s.manager = hooks.NewManager(store.NewRegistry(store.DemoSeed()), deps, services.NewExportServiceWithSink(nil, false), client, hooks.Options{})
	s.engine = s.newEngine()
}

func (s *HandlersTestSuite) TearDownTest() {
	s.manager.Close()
}

func (s *HandlersTestSuite) newEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Session())

	inventory := r.Group("/inventory")
	inventory.GET("/summary", NewSummaryHandler(s.manager).Inventory)
	NewInventoryHandler(s.manager).Register(inventory)

	NewCustomerHandler(s.manager).Register(r.Group("/customers"))

	products := r.Group("/products")
	products.GET("/categories", NewSummaryHandler(s.manager).ProductCategories)
	NewProductHandler(s.manager).Register(products)

	orders := NewOrderHandler(s.manager)
	r.GET("/orders", orders.List)
	r.GET("/orders/export", orders.Export)
	r.PUT("/orders/:id/status", orders.UpdateStatus)
	r.POST("/orders/:id/notes", orders.AddNote)
	r.GET("/orders/:id/insights", orders.Insights)

	insightsHandler := NewInsightsHandler(s.manager)
	r.POST("/insights/configure", insightsHandler.Configure)
	r.GET("/insights/recommendations", insightsHandler.Recommendations)

	sessions := NewSessionHandler(s.manager)
	r.GET("/notifications", sessions.Notifications)
	r.DELETE("/session", sessions.Reset)
	return r
}

func (s *HandlersTestSuite) do(method, path, session string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (s *HandlersTestSuite) TestListInventoryWithSearch() {
	w, env := s.do(http.MethodGet, "/inventory", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(8, env.Meta.Pagination.Total)

	w, env = s.do(http.MethodGet, "/inventory?search=battery", "", nil)
	s.Equal(http.StatusOK, w.Code)

	var items []map[string]interface{}
	s.Require().NoError(json.Unmarshal(env.Data, &items))
	s.Require().Len(items, 1)
	s.Equal("INV-003", items[0]["id"])
	s.Equal("low_stock", items[0]["status"])
}

func (s *HandlersTestSuite) TestGetMissingReturnsNotFound() {
	w, env := s.do(http.MethodGet, "/inventory/INV-999", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("NOT_FOUND", env.Error.Code)
}

func (s *HandlersTestSuite) TestCreateRejectsInvalidPayload() {
	w, env := s.do(http.MethodPost, "/customers", "", map[string]interface{}{"location": "Austin, TX"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("VALIDATION_ERROR", env.Error.Code)
}

func (s *HandlersTestSuite) TestCreateProductAssignsNextID() {
	w, env := s.do(http.MethodPost, "/products", "", map[string]interface{}{
		"name": "Desk Lamp", "category": "Furniture", "price": 39.5, "stock": 10,
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	var product map[string]interface{}
	s.Require().NoError(json.Unmarshal(env.Data, &product))
	s.Equal("PRD006", product["id"])
	s.Equal("Low Stock", product["status"])

	_, env = s.do(http.MethodGet, "/products/categories", "", nil)
	var categories []string
	s.Require().NoError(json.Unmarshal(env.Data, &categories))
	s.Equal([]string{"Furniture", "Electronics", "Stationery"}, categories)
}

func (s *HandlersTestSuite) TestUpdateReclassifiesInventory() {
	_, env := s.do(http.MethodGet, "/inventory/summary", "", nil)
	var before hooks.InventorySummary
	s.Require().NoError(json.Unmarshal(env.Data, &before))
	s.Equal(2, before.LowStockCount)

	w, env := s.do(http.MethodPut, "/inventory/INV-002", "", map[string]interface{}{"quantity": 200})
	s.Require().Equal(http.StatusOK, w.Code)

	var item map[string]interface{}
	s.Require().NoError(json.Unmarshal(env.Data, &item))
	s.Equal("normal", item["status"])

	_, env = s.do(http.MethodGet, "/inventory/summary", "", nil)
	var after hooks.InventorySummary
	s.Require().NoError(json.Unmarshal(env.Data, &after))
	s.Equal(1, after.LowStockCount)
}

func (s *HandlersTestSuite) TestUpdateMissingReturnsNotFound() {
	w, _ := s.do(http.MethodPut, "/customers/CUS-999", "", map[string]interface{}{"name": "Nobody"})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestDeleteIsIdempotent() {
	w, env := s.do(http.MethodDelete, "/customers/CUS-001", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Data), `"deleted":true`)

	w, env = s.do(http.MethodDelete, "/customers/CUS-001", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Data), `"deleted":false`)
}

func (s *HandlersTestSuite) TestInjectedFailureMapsToServiceUnavailable() {
	s.do(http.MethodGet, "/customers", "", nil)
	s.injector.SetProfile(&faults.Profile{Seed: 1, Default: faults.Rule{FailureRate: 1}})

	w, env := s.do(http.MethodPost, "/customers", "", map[string]interface{}{"name": "Acme", "location": "Austin, TX"})
	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.Equal("Failed to add customer. Please try again.", env.Error.Message)

	s.injector.SetProfile(faults.Instant())
	_, env = s.do(http.MethodGet, "/notifications", "", nil)
	var feed []services.Notification
	s.Require().NoError(json.Unmarshal(env.Data, &feed))
	s.Require().NotEmpty(feed)
	s.Equal(services.LevelError, feed[0].Level)
}

func (s *HandlersTestSuite) TestSessionsAreIsolated() {
	w, _ := s.do(http.MethodPost, "/customers", "alpha", map[string]interface{}{"name": "Acme", "location": "Austin, TX"})
	s.Require().Equal(http.StatusCreated, w.Code)

	_, env := s.do(http.MethodGet, "/customers", "alpha", nil)
	s.Equal(4, env.Meta.Pagination.Total)

	_, env = s.do(http.MethodGet, "/customers", "beta", nil)
	s.Equal(3, env.Meta.Pagination.Total)

	w, _ = s.do(http.MethodDelete, "/session", "alpha", nil)
	s.Equal(http.StatusOK, w.Code)

	_, env = s.do(http.MethodGet, "/customers", "alpha", nil)
	s.Equal(3, env.Meta.Pagination.Total)
}

func (s *HandlersTestSuite) TestOrderStatusAndNotes() {
	w, env := s.do(http.MethodPut, "/orders/ORD-001628/status", "", map[string]interface{}{"status": "teleported"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("VALIDATION_ERROR", env.Error.Code)

	w, _ = s.do(http.MethodPut, "/orders/ORD-001628/status", "", map[string]interface{}{"status": "cancelled"})
	s.Equal(http.StatusOK, w.Code)

	_, env = s.do(http.MethodGet, "/orders?status=cancelled", "", nil)
	s.Equal(1, env.Meta.Pagination.Total)

	w, _ = s.do(http.MethodPost, "/orders/ORD-001628/notes", "", map[string]interface{}{"text": "   "})
	s.Equal(http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPost, "/orders/ORD-001628/notes", "", map[string]interface{}{"text": "Call before delivery"})
	s.Equal(http.StatusCreated, w.Code)

	w, _ = s.do(http.MethodPost, "/orders/ORD-404/notes", "", map[string]interface{}{"text": "Lost"})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestExportOrdersCSV() {
	w, _ := s.do(http.MethodGet, "/orders/export", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("attachment; filename=orders.csv", w.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	s.Equal("ID,Customer,Status,Total,Date", lines[0])
	s.Len(lines, 5)
}

func (s *HandlersTestSuite) TestInsightsRequireConfiguration() {
	w, env := s.do(http.MethodGet, "/orders/ORD-001628/insights", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Data), `"prompt":true`)

	w, _ = s.do(http.MethodPost, "/insights/configure", "", map[string]interface{}{"api_key": " "})
	s.Equal(http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodPost, "/insights/configure", "", map[string]interface{}{"api_key": "sk-test"})
	s.Require().Equal(http.StatusOK, w.Code)

	w, env = s.do(http.MethodGet, "/insights/recommendations", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var result insights.Result[[]insights.Recommendation]
	s.Require().NoError(json.Unmarshal(env.Data, &result))
	s.False(result.Prompt)
	s.NotEmpty(result.Data)
	s.Equal("demo", result.Provider)

	w, _ = s.do(http.MethodGet, "/orders/ORD-404/insights", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
