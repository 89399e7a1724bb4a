// internal/insights/types.go
package insights

import "github.com/scmdash/scm-backend/internal/models"

// Snapshot is the supply-chain state handed to the dashboard-wide analyses.
type Snapshot struct {
	Inventory []models.InventoryItem `json:"inventory,omitempty"`
	Orders    []models.Order         `json:"orders,omitempty"`
	Suppliers []models.Supplier      `json:"suppliers,omitempty"`
	Shipments []models.Shipment      `json:"shipments,omitempty"`
}

type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"` // positive or negative
	ImpactValue string `json:"impact_value"`
	ImpactLabel string `json:"impact_label"`
}

type Anomaly struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Severity    string `json:"severity"`
}

type Forecast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Trend       string `json:"trend"` // up or down
	TrendValue  string `json:"trend_value"`
	Timeline    string `json:"timeline"`
}

type NamedValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type CarrierPerformance struct {
	Name           string `json:"name"`
	OnTime         int    `json:"on_time"`
	CostEfficiency int    `json:"cost_efficiency"`
}

type RouteSaving struct {
	Name      string `json:"name"`
	Current   int    `json:"current"`
	Optimized int    `json:"optimized"`
	Savings   int    `json:"savings"`
}

type Emission struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

type RiskFactor struct {
	Factor string `json:"factor"`
	Impact int    `json:"impact"`
}

type RiskAssessment struct {
	HighRiskCount   int          `json:"high_risk_count"`
	MediumRiskCount int          `json:"medium_risk_count"`
	LowRiskCount    int          `json:"low_risk_count"`
	RiskFactors     []RiskFactor `json:"risk_factors"`
}

type ShipmentAnalytics struct {
	TransportModes     []NamedValue         `json:"transport_modes"`
	CarrierPerformance []CarrierPerformance `json:"carrier_performance"`
	RouteOptimization  []RouteSaving        `json:"route_optimization,omitempty"`
	Emissions          []Emission           `json:"emissions,omitempty"`
	RiskAssessment     *RiskAssessment      `json:"risk_assessment,omitempty"`
}

type DelayPrediction struct {
	ShipmentID          string       `json:"shipment_id"`
	DelayProbability    float64      `json:"delay_probability"`
	PredictedDelayHours int          `json:"predicted_delay_hours"`
	Confidence          float64      `json:"confidence"`
	RiskFactors         []RiskFactor `json:"risk_factors"`
	RecommendedActions  []string     `json:"recommended_actions"`
}

type RouteSegment struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Mode     string `json:"mode"`
	Duration int    `json:"duration"`
}

type Route struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Distance  int            `json:"distance"`
	Duration  int            `json:"duration"`
	Cost      int            `json:"cost"`
	Emissions int            `json:"emissions"`
	RiskScore int            `json:"risk_score"`
	Segments  []RouteSegment `json:"segments"`
}

type RouteOptimization struct {
	Routes      []Route `json:"routes"`
	CostSavings struct {
		Amount     int `json:"amount"`
		Percentage int `json:"percentage"`
		Annualized int `json:"annualized"`
	} `json:"cost_savings"`
	TimeSavings struct {
		Hours      int `json:"hours"`
		Percentage int `json:"percentage"`
	} `json:"time_savings"`
	EnvironmentalImpact struct {
		CO2Reduction  int `json:"co2_reduction"`
		CarbonCredits int `json:"carbon_credits"`
	} `json:"environmental_impact"`
}

type StockLevel struct {
	SKU              string `json:"sku"`
	CurrentStock     int    `json:"current_stock"`
	RecommendedStock int    `json:"recommended_stock"`
	SavingsPotential int    `json:"savings_potential,omitempty"`
	StockoutRisk     string `json:"stockout_risk,omitempty"`
	Status           string `json:"status,omitempty"`
}

type InventoryOptimization struct {
	Categories          []string     `json:"categories"`
	Locations           []string     `json:"locations"`
	RecommendedLevels   []StockLevel `json:"recommended_levels"`
	TotalSavings        int          `json:"total_savings"`
	ImplementationSteps []string     `json:"implementation_steps"`
	ImpactAnalysis      struct {
		ServiceLevel          string `json:"service_level"`
		InventoryTurnover     string `json:"inventory_turnover"`
		CarryingCostReduction string `json:"carrying_cost_reduction"`
	} `json:"impact_analysis"`
}

type ForecastPeriod struct {
	Period     string  `json:"period"`
	Demand     int     `json:"demand"`
	Confidence float64 `json:"confidence"`
	Trend      string  `json:"trend"`
}

type SeasonalFactor struct {
	Season string `json:"season"`
	Impact string `json:"impact"`
}

type ExternalFactor struct {
	Factor    string `json:"factor"`
	Impact    string `json:"impact"`
	Direction string `json:"direction"`
}

type DemandForecast struct {
	ProductID       string           `json:"product_id"`
	Periods         []ForecastPeriod `json:"periods"`
	SeasonalFactors []SeasonalFactor `json:"seasonal_factors"`
	ExternalFactors []ExternalFactor `json:"external_factors"`
}

type OrderAnalysis struct {
	OrderID          string   `json:"order_id"`
	RiskLevel        string   `json:"risk_level"`
	DelayProbability float64  `json:"delay_probability"`
	Summary          string   `json:"summary"`
	Recommendations  []string `json:"recommendations"`
}

type TrainingResult struct {
	ModelID          string  `json:"model_id"`
	Success          bool    `json:"success"`
	ExpectedAccuracy float64 `json:"expected_accuracy,omitempty"`
}

type ModelType string

const (
	ModelPredictive       ModelType = "predictive"
	ModelAnomalyDetection ModelType = "anomaly-detection"
	ModelOptimization     ModelType = "optimization"
	ModelNLP              ModelType = "nlp"
)

type ModelStatus string

const (
	ModelActive   ModelStatus = "active"
	ModelTraining ModelStatus = "training"
	ModelInactive ModelStatus = "inactive"
)

type Model struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        ModelType   `json:"type"`
	Accuracy    float64     `json:"accuracy"`
	LastTrained string      `json:"last_trained"`
	Status      ModelStatus `json:"status"`
	Description string      `json:"description"`
}

func defaultModels() []Model {
	return []Model{
		{ID: "model-001", Name: "Shipment Delay Predictor", Type: ModelPredictive, Accuracy: 0.89, LastTrained: "2023-11-15", Status: ModelActive, Description: "Predicts shipment delays based on historical patterns, weather data, and carrier performance."},
		{ID: "model-002", Name: "Inventory Anomaly Detector", Type: ModelAnomalyDetection, Accuracy: 0.92, LastTrained: "2023-12-05", Status: ModelActive, Description: "Identifies unusual patterns in inventory levels and consumption rates."},
		{ID: "model-003", Name: "Route Optimizer", Type: ModelOptimization, Accuracy: 0.85, LastTrained: "2024-01-10", Status: ModelActive, Description: "Optimizes shipping routes for cost, time, and environmental impact."},
		{ID: "model-004", Name: "Document Classifier", Type: ModelNLP, Accuracy: 0.88, LastTrained: "2024-02-20", Status: ModelTraining, Description: "Classifies shipping documents and extracts relevant information."},
	}
}
