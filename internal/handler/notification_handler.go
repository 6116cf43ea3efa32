package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"novacore/backend/internal/hub"
)

// NotificationHandler streams cart/wishlist events to the session's open
// storefront tabs.
type NotificationHandler struct {
	hub *hub.Hub
}

// NewNotificationHandler wires a notification handler.
func NewNotificationHandler(h *hub.Hub) *NotificationHandler {
	return &NotificationHandler{hub: h}
}

// Stream godoc
// @Summary      Subscribe to storefront notifications
// @Description  Server-sent event stream of cart and wishlist events for the session.
// @Tags         notifications
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200 {string} string "event stream"
// @Failure      401 {object} ErrorResponse
// @Router       /notifications/stream [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	sid, _ := sessionID(c)

	client := make(hub.Client, 16)
	h.hub.Subscribe(sid, client)
	defer h.hub.Unsubscribe(sid, client)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
