package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/server/http/dto"
)

const alertEventName = "order"

// EventsHandler pushes new-order alerts to staff as server-sent events.
type EventsHandler struct {
	facade AlertFacade
}

// NewEventsHandler constructs EventsHandler.
func NewEventsHandler(facade AlertFacade) *EventsHandler {
	return &EventsHandler{facade: facade}
}

// Stream handles GET /api/admin/orders/events.
func (h *EventsHandler) Stream(c *gin.Context) {
	if !h.facade.AlertsEnabled() {
		c.Status(http.StatusNoContent)
		return
	}

	alerts, cancel := h.facade.SubscribeAlerts()
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case alert, ok := <-alerts:
			if !ok {
				return false
			}
			c.SSEvent(alertEventName, dto.AlertEvent{OrderID: alert.OrderID, Title: alert.Title, Body: alert.Body})
			return true
		}
	})
}
