// internal/handlers/resource.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scmdash/scm-backend/internal/faults"
	"github.com/scmdash/scm-backend/internal/hooks"
	"github.com/scmdash/scm-backend/internal/i18n"
	"github.com/scmdash/scm-backend/internal/models"
	"github.com/scmdash/scm-backend/internal/services"
	"github.com/scmdash/scm-backend/internal/utils"
)

// ResourceHandler serves list/get/create/update/delete for one resource of
// the caller's session workspace.
type ResourceHandler[T models.Record[T], D models.Draft[T], P models.Patch[T]] struct {
	resource string
	manager  *hooks.Manager
	hook     func(*hooks.Workspace) *hooks.ResourceHook[T, D, P]
	getter   func(*hooks.Workspace) func(context.Context, string) (*T, error)
	list     utils.ListSpec[T]
	present  func(T) interface{}
}

func (h *ResourceHandler[T, D, P]) workspace(c *gin.Context) *hooks.Workspace {
	return h.manager.Workspace(c.Request.Context(), utils.GetSessionIDFromContext(c))
}

func (h *ResourceHandler[T, D, P]) render(item T) interface{} {
	if h.present == nil {
		return item
	}
	return h.present(item)
}

func (h *ResourceHandler[T, D, P]) renderAll(items []T) []interface{} {
	out := make([]interface{}, len(items))
	for i, item := range items {
		out[i] = h.render(item)
	}
	return out
}

// GET /{resource}
func (h *ResourceHandler[T, D, P]) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	hook := h.hook(h.workspace(c))

	if err := hook.Refetch(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}

	items := utils.ApplyListParams(hook.Items(), params, h.list)
	page := utils.Paginate(items, params)

	result := utils.CreatePaginationResult(h.renderAll(page), int64(len(items)), params)
	utils.PaginatedResponse(c, result)
}

// GET /{resource}/:id
func (h *ResourceHandler[T, D, P]) Get(c *gin.Context) {
	item, err := h.getter(h.workspace(c))(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if item == nil {
		utils.NotFoundResponse(c, hooks.NotFoundKey(h.resource))
		return
	}

	utils.SuccessResponse(c, h.render(*item))
}

// POST /{resource}
func (h *ResourceHandler[T, D, P]) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req D
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	created, err := h.hook(h.workspace(c)).Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, h.render(created))
}

// PUT /{resource}/:id
func (h *ResourceHandler[T, D, P]) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req P
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	updated, err := h.hook(h.workspace(c)).Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if updated == nil {
		utils.NotFoundResponse(c, hooks.NotFoundKey(h.resource))
		return
	}

	utils.SuccessResponse(c, h.render(*updated))
}

// DELETE /{resource}/:id
func (h *ResourceHandler[T, D, P]) Delete(c *gin.Context) {
	removed, err := h.hook(h.workspace(c)).Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"id":      c.Param("id"),
		"deleted": removed,
	})
}

// Register mounts the CRUD routes on group.
func (h *ResourceHandler[T, D, P]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// respondServiceError maps service and hook failures onto the envelope.
func respondServiceError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, services.ErrInvalidPayload):
		utils.BadRequestResponse(c, "", err.Error())
	case errors.Is(err, faults.ErrInjectedFailure):
		utils.ServiceUnavailableResponse(c, mutationMessage(c, err))
	case errors.Is(err, context.DeadlineExceeded):
		utils.ErrorResponse(c, http.StatusGatewayTimeout, "TIMEOUT", err.Error(), nil)
	case errors.Is(err, context.Canceled):
		utils.ErrorResponse(c, 499, "CANCELLED", err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, "")
	}
}

// mutationMessage is the localized "Failed to ..." text for hook errors.
func mutationMessage(c *gin.Context, err error) string {
	var mutationErr *hooks.MutationError
	if errors.As(err, &mutationErr) {
		return i18n.T(utils.GetLangFromContext(c), hooks.FailedKey(mutationErr.Resource), mutationErr.Action)
	}
	return err.Error()
}
