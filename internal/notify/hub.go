// Package notify fans new-order alerts out to connected back office sessions.
package notify

import (
	"log/slog"
	"sync"

	"github.com/polkiloo/storefront/internal/domain/model"
)

const subscriberBuffer = 16

// Hub delivers alerts to every subscriber. Slow subscribers lose alerts rather than block the feed.
type Hub struct {
	enabled bool
	logger  *slog.Logger

	mu     sync.Mutex
	nextID int
	subs   map[int]chan model.OrderAlert
}

// NewHub builds a hub. A disabled hub accepts subscribers but never publishes.
func NewHub(enabled bool, logger *slog.Logger) *Hub {
	return &Hub{enabled: enabled, logger: logger, subs: make(map[int]chan model.OrderAlert)}
}

// Enabled reports whether alerts are published.
func (h *Hub) Enabled() bool {
	return h.enabled
}

// Subscribe registers a listener. The returned cancel func closes the channel.
func (h *Hub) Subscribe() (<-chan model.OrderAlert, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan model.OrderAlert, subscriberBuffer)
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
}

// Publish sends alert to all current subscribers.
func (h *Hub) Publish(alert model.OrderAlert) {
	if !h.enabled {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		select {
		case ch <- alert:
		default:
			h.logger.Warn("dropping order alert for slow subscriber", slog.Int("subscriber", id), slog.String("order", alert.OrderID))
		}
	}
}

// Subscribers returns the number of connected listeners.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
