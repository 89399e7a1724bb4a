// internal/handlers/insights.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/scmdash/scm-backend/internal/hooks"
	"github.com/scmdash/scm-backend/internal/i18n"
	"github.com/scmdash/scm-backend/internal/insights"
	"github.com/scmdash/scm-backend/internal/utils"
)

const insightsResource = "insights"

type InsightsHandler struct {
	manager *hooks.Manager
}

func NewInsightsHandler(manager *hooks.Manager) *InsightsHandler {
	return &InsightsHandler{manager: manager}
}

type ConfigureInsightsRequest struct {
	APIKey string `json:"api_key" validate:"required,notblank"`
}

type TrainModelRequest struct {
	Data json.RawMessage `json:"data"`
}

type InsightsStatus struct {
	Configured bool   `json:"configured"`
	Provider   string `json:"provider"`
}

func (h *InsightsHandler) workspace(c *gin.Context) *hooks.Workspace {
	return h.manager.Workspace(c.Request.Context(), utils.GetSessionIDFromContext(c))
}

// snapshot collects the session data the dashboard-wide insights work on.
func (h *InsightsHandler) snapshot(ctx context.Context, ws *hooks.Workspace) (insights.Snapshot, error) {
	for _, refetch := range []func(context.Context) error{
		ws.Inventory.Refetch,
		ws.Suppliers.Refetch,
		ws.Shipments.Refetch,
	} {
		if err := refetch(ctx); err != nil {
			return insights.Snapshot{}, err
		}
	}
	return insights.Snapshot{
		Inventory: ws.Inventory.Items(),
		Orders:    ws.Orders.Orders(),
		Suppliers: ws.Suppliers.Items(),
		Shipments: ws.Shipments.Items(),
	}, nil
}

// POST /insights/configure
func (h *InsightsHandler) Configure(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req ConfigureInsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	client := h.manager.Insights()
	configured, err := client.Configure(c.Request.Context(), req.APIKey)
	if err != nil {
		respondInsightError(c, err)
		return
	}

	h.workspace(c).Notifications.Success(insightsResource, i18n.KeySuccess, i18n.KeyInsightsConfigured)
	utils.SuccessResponse(c, InsightsStatus{Configured: configured, Provider: client.ProviderName()})
}

// GET /insights/status
func (h *InsightsHandler) Status(c *gin.Context) {
	client := h.manager.Insights()
	utils.SuccessResponse(c, InsightsStatus{Configured: client.IsConfigured(), Provider: client.ProviderName()})
}

// GET /insights/models
func (h *InsightsHandler) Models(c *gin.Context) {
	utils.SuccessResponse(c, h.manager.Insights().Models())
}

// POST /insights/models/:id/train
func (h *InsightsHandler) TrainModel(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req TrainModelRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
			return
		}
	}

	result, err := h.manager.Insights().TrainModel(c.Request.Context(), c.Param("id"), req.Data)
	respondInsight(c, h.workspace(c), result, err)
}

// GET /insights/recommendations
func (h *InsightsHandler) Recommendations(c *gin.Context) {
	ws := h.workspace(c)
	snap, err := h.snapshot(c.Request.Context(), ws)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result, err := h.manager.Insights().Recommendations(c.Request.Context(), snap)
	respondInsight(c, ws, result, err)
}

// GET /insights/anomalies
func (h *InsightsHandler) Anomalies(c *gin.Context) {
	ws := h.workspace(c)
	snap, err := h.snapshot(c.Request.Context(), ws)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result, err := h.manager.Insights().Anomalies(c.Request.Context(), snap)
	respondInsight(c, ws, result, err)
}

// GET /insights/forecasts
func (h *InsightsHandler) Forecasts(c *gin.Context) {
	ws := h.workspace(c)
	snap, err := h.snapshot(c.Request.Context(), ws)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	result, err := h.manager.Insights().Forecasts(c.Request.Context(), snap)
	respondInsight(c, ws, result, err)
}

// GET /insights/shipments
func (h *InsightsHandler) Shipments(c *gin.Context) {
	ws := h.workspace(c)
	if err := ws.Shipments.Refetch(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	result, err := h.manager.Insights().AnalyzeShipments(c.Request.Context(), ws.Shipments.Items())
	respondInsight(c, ws, result, err)
}

// GET /insights/shipments/:id/delay
func (h *InsightsHandler) PredictDelay(c *gin.Context) {
	result, err := h.manager.Insights().PredictDelay(c.Request.Context(), c.Param("id"))
	respondInsight(c, h.workspace(c), result, err)
}

// GET /insights/routes?origin=&destination=
func (h *InsightsHandler) OptimizeRoutes(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	origin, destination := c.Query("origin"), c.Query("destination")
	if origin == "" || destination == "" {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "route"), "origin and destination are required")
		return
	}

	result, err := h.manager.Insights().OptimizeRoutes(c.Request.Context(), origin, destination)
	respondInsight(c, h.workspace(c), result, err)
}

// GET /insights/inventory?categories=&locations=
func (h *InsightsHandler) OptimizeInventory(c *gin.Context) {
	result, err := h.manager.Insights().OptimizeInventory(c.Request.Context(), splitList(c.Query("categories")), splitList(c.Query("locations")))
	respondInsight(c, h.workspace(c), result, err)
}

// GET /insights/demand/:id?months=
func (h *InsightsHandler) ForecastDemand(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	months, err := strconv.Atoi(c.DefaultQuery("months", "6"))
	if err != nil || months < 1 || months > 24 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "months"), nil)
		return
	}

	result, err := h.manager.Insights().ForecastDemand(c.Request.Context(), c.Param("id"), months)
	respondInsight(c, h.workspace(c), result, err)
}

// respondInsight writes an insight result. An unconfigured client still
// answers 200 with prompt set, after asking the user for a key.
func respondInsight[T any](c *gin.Context, ws *hooks.Workspace, result *insights.Result[T], err error) {
	if err != nil {
		ws.Notifications.Error(insightsResource, i18n.KeyInsightsFallback)
		respondInsightError(c, err)
		return
	}

	switch {
	case result.Prompt:
		ws.Notifications.Error(insightsResource, i18n.KeyInsightsNotConfigured)
	case result.Fallback:
		ws.Notifications.Warning(insightsResource, i18n.KeyInsightsFallback)
	}
	utils.SuccessResponse(c, result)
}

func respondInsightError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, insights.ErrEmptyAPIKey):
		utils.BadRequestResponse(c, "", err.Error())
	case errors.Is(err, insights.ErrUnknownModel):
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded):
		utils.ErrorResponse(c, http.StatusGatewayTimeout, "TIMEOUT", err.Error(), nil)
	default:
		utils.ErrorResponse(c, http.StatusBadGateway, "INSIGHTS_UNAVAILABLE",
			i18n.T(utils.GetLangFromContext(c), i18n.KeyInsightsFallback), err.Error())
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
