// internal/handlers/orders.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scmdash/scm-backend/internal/hooks"
	"github.com/scmdash/scm-backend/internal/i18n"
	"github.com/scmdash/scm-backend/internal/models"
	"github.com/scmdash/scm-backend/internal/utils"
)

type OrderHandler struct {
	manager *hooks.Manager
}

func NewOrderHandler(manager *hooks.Manager) *OrderHandler {
	return &OrderHandler{manager: manager}
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

type AddOrderNoteRequest struct {
	Text string `json:"text" validate:"required,notblank,max=2000"`
}

var orderListSpec = utils.ListSpec[models.Order]{
	SearchText: func(o models.Order) []string { return []string{o.ID, o.Customer.Name, o.Customer.Location} },
	SortFields: map[string]func(a, b models.Order) bool{
		"created_at": func(a, b models.Order) bool { return a.CreatedAt.Before(b.CreatedAt) },
		"total":      func(a, b models.Order) bool { return a.Total < b.Total },
		"status":     func(a, b models.Order) bool { return a.Status < b.Status },
	},
}

func (h *OrderHandler) orders(c *gin.Context) *hooks.OrderHook {
	return h.manager.Workspace(c.Request.Context(), utils.GetSessionIDFromContext(c)).Orders
}

// GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	params := utils.GetPaginationParams(c)

	var filter hooks.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "filter"), err.Error())
		return
	}

	orders := utils.ApplyListParams(h.orders(c).Filter(filter), params, orderListSpec)
	result := utils.CreatePaginationResult(utils.Paginate(orders, params), int64(len(orders)), params)
	utils.PaginatedResponse(c, result)
}

// GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id := c.Param("id")
	for _, o := range h.orders(c).Orders() {
		if o.ID == id {
			utils.SuccessResponse(c, o)
			return
		}
	}
	utils.NotFoundResponse(c, i18n.KeyOrdersNotFound)
}

// PUT /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, ok := h.orders(c).UpdateStatus(c.Param("id"), req.Status)
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyOrdersNotFound)
		return
	}

	utils.SuccessResponse(c, order)
}

// POST /orders/:id/notes
func (h *OrderHandler) AddNote(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req AddOrderNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	note, ok := h.orders(c).AddNote(c.Param("id"), req.Text)
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyOrdersNotFound)
		return
	}

	utils.CreatedResponse(c, note)
}

// GET /orders/export
func (h *OrderHandler) Export(c *gin.Context) {
	result, err := h.orders(c).Export(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	if result.Location != "" {
		c.Header("X-Export-Location", result.Location)
	}
	c.Header("X-Export-Rows", strconv.Itoa(result.Rows))
	c.Header("Content-Disposition", "attachment; filename="+result.Filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", result.Data)
}

// GET /orders/:id/insights
func (h *OrderHandler) Insights(c *gin.Context) {
	result, err := h.orders(c).Insights(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInsightError(c, err)
		return
	}
	if result == nil {
		utils.NotFoundResponse(c, i18n.KeyOrdersNotFound)
		return
	}

	utils.SuccessResponse(c, result)
}
