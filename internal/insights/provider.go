// internal/insights/provider.go
package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/scmdash/scm-backend/internal/models"
)

// Provider generates the insight payloads shown on the dashboard.
type Provider interface {
	Name() string
	Recommendations(ctx context.Context, snap Snapshot) ([]Recommendation, error)
	Anomalies(ctx context.Context, snap Snapshot) ([]Anomaly, error)
	Forecasts(ctx context.Context, snap Snapshot) ([]Forecast, error)
	AnalyzeShipments(ctx context.Context, shipments []models.Shipment) (*ShipmentAnalytics, error)
	PredictDelay(ctx context.Context, shipmentID string) (*DelayPrediction, error)
	OptimizeRoutes(ctx context.Context, origin, destination string) (*RouteOptimization, error)
	OptimizeInventory(ctx context.Context, categories, locations []string) (*InventoryOptimization, error)
	ForecastDemand(ctx context.Context, productID string, months int) (*DemandForecast, error)
	AnalyzeOrder(ctx context.Context, order models.Order) (*OrderAnalysis, error)
	TrainModel(ctx context.Context, modelID string, data json.RawMessage) (*TrainingResult, error)
}

type apiKeyContextKey struct{}

// WithAPIKey attaches the credential a remote provider sends as bearer token.
func WithAPIKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, apiKeyContextKey{}, key)
}

func apiKeyFrom(ctx context.Context) string {
	key, _ := ctx.Value(apiKeyContextKey{}).(string)
	return key
}

// StatusError is returned for non-2xx responses from the remote service.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("insight service %s returned status %d", e.Path, e.StatusCode)
}

// RemoteProvider calls an external insight service over HTTP. Each request is
// a JSON POST to <endpoint><path> carrying the API key from the context.
type RemoteProvider struct {
	endpoint string
	client   *http.Client
}

func NewRemoteProvider(endpoint string, timeout time.Duration) *RemoteProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteProvider{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: timeout},
	}
}

func (p *RemoteProvider) Name() string { return "remote" }

func (p *RemoteProvider) Recommendations(ctx context.Context, snap Snapshot) ([]Recommendation, error) {
	var out struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	body := Snapshot{Inventory: snap.Inventory, Orders: snap.Orders, Suppliers: snap.Suppliers}
	if err := p.call(ctx, "/recommendations", body, &out); err != nil {
		return nil, err
	}
	return out.Recommendations, nil
}

func (p *RemoteProvider) Anomalies(ctx context.Context, snap Snapshot) ([]Anomaly, error) {
	var out struct {
		Anomalies []Anomaly `json:"anomalies"`
	}
	body := Snapshot{Inventory: snap.Inventory, Orders: snap.Orders, Shipments: snap.Shipments}
	if err := p.call(ctx, "/anomalies", body, &out); err != nil {
		return nil, err
	}
	return out.Anomalies, nil
}

func (p *RemoteProvider) Forecasts(ctx context.Context, snap Snapshot) ([]Forecast, error) {
	var out struct {
		Forecasts []Forecast `json:"forecasts"`
	}
	if err := p.call(ctx, "/forecasts", snap, &out); err != nil {
		return nil, err
	}
	return out.Forecasts, nil
}

func (p *RemoteProvider) AnalyzeShipments(ctx context.Context, shipments []models.Shipment) (*ShipmentAnalytics, error) {
	var out ShipmentAnalytics
	body := map[string]interface{}{"shipments": shipments}
	if err := p.call(ctx, "/analyze-shipments", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *RemoteProvider) PredictDelay(ctx context.Context, shipmentID string) (*DelayPrediction, error) {
	var out DelayPrediction
	body := map[string]interface{}{"shipment_id": shipmentID}
	if err := p.call(ctx, "/predict-delays", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *RemoteProvider) OptimizeRoutes(ctx context.Context, origin, destination string) (*RouteOptimization, error) {
	var out RouteOptimization
	body := map[string]interface{}{"origin": origin, "destination": destination}
	if err := p.call(ctx, "/optimize-routes", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *RemoteProvider) OptimizeInventory(ctx context.Context, categories, locations []string) (*InventoryOptimization, error) {
	var out InventoryOptimization
	body := map[string]interface{}{"product_categories": categories, "locations": locations}
	if err := p.call(ctx, "/inventory-optimization", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *RemoteProvider) ForecastDemand(ctx context.Context, productID string, months int) (*DemandForecast, error) {
	var out DemandForecast
	body := map[string]interface{}{"product_id": productID, "months": months}
	if err := p.call(ctx, "/demand-forecast", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *RemoteProvider) AnalyzeOrder(ctx context.Context, order models.Order) (*OrderAnalysis, error) {
	var out OrderAnalysis
	if err := p.call(ctx, "/analyze-order", map[string]interface{}{"order": order}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *RemoteProvider) TrainModel(ctx context.Context, modelID string, data json.RawMessage) (*TrainingResult, error) {
	var out TrainingResult
	body := map[string]interface{}{"model_id": modelID, "training_data": data}
	if err := p.call(ctx, "/train-model", body, &out); err != nil {
		return nil, err
	}
	if out.ModelID == "" {
		out.ModelID = modelID
	}
	return &out, nil
}

func (p *RemoteProvider) call(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if key := apiKeyFrom(ctx); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("insight service %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Path: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
