// internal/insights/client.go
package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scmdash/scm-backend/internal/kvstore"
	"github.com/scmdash/scm-backend/internal/metrics"
	"github.com/scmdash/scm-backend/internal/models"
)

// APIKeyKey is the key/value entry holding the configured credential.
const APIKeyKey = "ml_api_key"

var (
	ErrEmptyAPIKey   = errors.New("api key must not be empty")
	ErrUnknownModel  = errors.New("unknown model")
	ErrNotConfigured = errors.New("insight service not configured")
)

// Result wraps an insight payload. Prompt is set, with no data, when no API
// key is configured and the caller should ask the user for one. Fallback is
// set when the primary provider failed and demo data was substituted.
type Result[T any] struct {
	Data     T      `json:"data"`
	Prompt   bool   `json:"prompt,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// Client gates every insight request on a configured API key.
type Client struct {
	mu       sync.RWMutex
	kv       kvstore.Store
	apiKey   string
	provider Provider
	fallback Provider
	models   []Model
	now      func() time.Time

	// TrainingDuration is how long a model reports "training" after a
	// successful TrainModel call.
	TrainingDuration time.Duration
}

// NewClient restores a previously configured key from kv. fallback may be
// nil, in which case provider failures are returned to the caller.
func NewClient(ctx context.Context, kv kvstore.Store, provider, fallback Provider) (*Client, error) {
	if kv == nil {
		kv = kvstore.NewMemory()
	}
	c := &Client{
		kv:               kv,
		provider:         provider,
		fallback:         fallback,
		models:           defaultModels(),
		now:              time.Now,
		TrainingDuration: 10 * time.Second,
	}

	var key string
	err := kv.Get(ctx, APIKeyKey, &key)
	switch {
	case err == nil:
		c.apiKey = key
		logrus.Info("Insight service initialized from stored API key")
	case errors.Is(err, kvstore.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to load insight api key: %w", err)
	}

	return c, nil
}

// Configure stores a non-empty key and reports whether the client is now
// configured.
func (c *Client) Configure(ctx context.Context, key string) (bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return false, ErrEmptyAPIKey
	}
	if err := c.kv.Set(ctx, APIKeyKey, key); err != nil {
		return false, fmt.Errorf("failed to store insight api key: %w", err)
	}

	c.mu.Lock()
	c.apiKey = key
	c.mu.Unlock()

	logrus.Info("Insight service configured with API key")
	return true, nil
}

func (c *Client) IsConfigured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey != ""
}

func (c *Client) ProviderName() string {
	return c.provider.Name()
}

func (c *Client) Models() []Model {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Model(nil), c.models...)
}

func (c *Client) Recommendations(ctx context.Context, snap Snapshot) (*Result[[]Recommendation], error) {
	return run(ctx, c, "recommendations", func(ctx context.Context, p Provider) ([]Recommendation, error) {
		return p.Recommendations(ctx, snap)
	})
}

func (c *Client) Anomalies(ctx context.Context, snap Snapshot) (*Result[[]Anomaly], error) {
	return run(ctx, c, "anomalies", func(ctx context.Context, p Provider) ([]Anomaly, error) {
		return p.Anomalies(ctx, snap)
	})
}

func (c *Client) Forecasts(ctx context.Context, snap Snapshot) (*Result[[]Forecast], error) {
	return run(ctx, c, "forecasts", func(ctx context.Context, p Provider) ([]Forecast, error) {
		return p.Forecasts(ctx, snap)
	})
}

func (c *Client) AnalyzeShipments(ctx context.Context, shipments []models.Shipment) (*Result[*ShipmentAnalytics], error) {
	return run(ctx, c, "analyze_shipments", func(ctx context.Context, p Provider) (*ShipmentAnalytics, error) {
		return p.AnalyzeShipments(ctx, shipments)
	})
}

func (c *Client) PredictDelay(ctx context.Context, shipmentID string) (*Result[*DelayPrediction], error) {
	return run(ctx, c, "predict_delay", func(ctx context.Context, p Provider) (*DelayPrediction, error) {
		return p.PredictDelay(ctx, shipmentID)
	})
}

func (c *Client) OptimizeRoutes(ctx context.Context, origin, destination string) (*Result[*RouteOptimization], error) {
	return run(ctx, c, "optimize_routes", func(ctx context.Context, p Provider) (*RouteOptimization, error) {
		return p.OptimizeRoutes(ctx, origin, destination)
	})
}

func (c *Client) OptimizeInventory(ctx context.Context, categories, locations []string) (*Result[*InventoryOptimization], error) {
	return run(ctx, c, "optimize_inventory", func(ctx context.Context, p Provider) (*InventoryOptimization, error) {
		return p.OptimizeInventory(ctx, categories, locations)
	})
}

func (c *Client) ForecastDemand(ctx context.Context, productID string, months int) (*Result[*DemandForecast], error) {
	return run(ctx, c, "forecast_demand", func(ctx context.Context, p Provider) (*DemandForecast, error) {
		return p.ForecastDemand(ctx, productID, months)
	})
}

func (c *Client) AnalyzeOrder(ctx context.Context, order models.Order) (*Result[*OrderAnalysis], error) {
	return run(ctx, c, "analyze_order", func(ctx context.Context, p Provider) (*OrderAnalysis, error) {
		return p.AnalyzeOrder(ctx, order)
	})
}

// TrainModel asks the provider to retrain a model. On success the model
// reports "training" until TrainingDuration has elapsed.
func (c *Client) TrainModel(ctx context.Context, modelID string, data json.RawMessage) (*Result[*TrainingResult], error) {
	if !c.hasModel(modelID) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, modelID)
	}

	res, err := run(ctx, c, "train_model", func(ctx context.Context, p Provider) (*TrainingResult, error) {
		return p.TrainModel(ctx, modelID, data)
	})
	if err != nil || res.Prompt || res.Data == nil || !res.Data.Success {
		return res, err
	}

	c.mu.Lock()
	for i := range c.models {
		if c.models[i].ID == modelID {
			c.models[i].Status = ModelTraining
			if res.Data.ExpectedAccuracy > 0 {
				c.models[i].Accuracy = res.Data.ExpectedAccuracy
			}
		}
	}
	c.mu.Unlock()

	time.AfterFunc(c.TrainingDuration, func() { c.finishTraining(modelID) })
	return res, nil
}

// Helper functions
func (c *Client) hasModel(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.models {
		if m.ID == id {
			return true
		}
	}
	return false
}

func (c *Client) finishTraining(modelID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.models {
		if c.models[i].ID == modelID && c.models[i].Status == ModelTraining {
			c.models[i].Status = ModelActive
			c.models[i].LastTrained = c.now().Format("2006-01-02")
			logrus.WithField("model_id", modelID).Info("Model training completed")
		}
	}
}

func run[T any](ctx context.Context, c *Client, kind string, call func(context.Context, Provider) (T, error)) (*Result[T], error) {
	c.mu.RLock()
	key := c.apiKey
	c.mu.RUnlock()

	if key == "" {
		metrics.InsightRequests.WithLabelValues(kind, c.provider.Name(), "prompt").Inc()
		return &Result[T]{Prompt: true}, nil
	}

	ctx = WithAPIKey(ctx, key)
	data, err := call(ctx, c.provider)
	if err == nil {
		metrics.InsightRequests.WithLabelValues(kind, c.provider.Name(), "ok").Inc()
		return &Result[T]{Data: data, Provider: c.provider.Name()}, nil
	}

	if ctx.Err() != nil || c.fallback == nil {
		metrics.InsightRequests.WithLabelValues(kind, c.provider.Name(), "error").Inc()
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	logrus.WithFields(logrus.Fields{
		"kind":     kind,
		"provider": c.provider.Name(),
	}).WithError(err).Warn("Insight request failed, using fallback data")

	data, ferr := call(ctx, c.fallback)
	if ferr != nil {
		metrics.InsightRequests.WithLabelValues(kind, c.provider.Name(), "error").Inc()
		return nil, fmt.Errorf("%s fallback: %w", kind, ferr)
	}
	metrics.InsightRequests.WithLabelValues(kind, c.provider.Name(), "fallback").Inc()
	return &Result[T]{Data: data, Fallback: true, Provider: c.fallback.Name()}, nil
}
