// internal/handlers/notifications.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scmdash/scm-backend/internal/hooks"
	"github.com/scmdash/scm-backend/internal/utils"
)

// SessionHandler exposes the per-session notification feed and lets a
// client discard its session state.
type SessionHandler struct {
	manager *hooks.Manager
}

func NewSessionHandler(manager *hooks.Manager) *SessionHandler {
	return &SessionHandler{manager: manager}
}

// GET /notifications?limit=
func (h *SessionHandler) Notifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	ws := h.manager.Workspace(c.Request.Context(), utils.GetSessionIDFromContext(c))
	utils.SuccessResponse(c, ws.Notifications.Recent(limit))
}

// DELETE /notifications
func (h *SessionHandler) ClearNotifications(c *gin.Context) {
	ws := h.manager.Workspace(c.Request.Context(), utils.GetSessionIDFromContext(c))
	ws.Notifications.Clear()
	utils.SuccessResponse(c, gin.H{"cleared": true})
}

// DELETE /session
func (h *SessionHandler) Reset(c *gin.Context) {
	id := utils.GetSessionIDFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"session_id": id,
		"reset":      h.manager.Drop(id),
	})
}
