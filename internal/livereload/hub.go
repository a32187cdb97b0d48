// Package livereload pushes a reload signal to connected browsers whenever
// a static asset changes on disk. It only runs in development.
package livereload

import "log/slog"

// Subscriber is a single connected browser waiting for reload signals.
type Subscriber struct {
	// Send is a buffered channel of outbound signals. The hub writes to
	// it; the websocket write loop drains it.
	Send chan []byte
}

// Hub tracks the set of connected reload subscribers and fans a signal out
// to all of them. It must be driven by a single Run goroutine; all state is
// owned by that loop.
type Hub struct {
	subscribers map[*Subscriber]bool

	// Broadcast carries a signal to every connected subscriber.
	Broadcast chan []byte

	// Register and Unregister add and remove subscribers.
	Register   chan *Subscriber
	Unregister chan *Subscriber
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		Broadcast:   make(chan []byte),
		Register:    make(chan *Subscriber),
		Unregister:  make(chan *Subscriber),
		subscribers: make(map[*Subscriber]bool),
	}
}

// Run processes hub events. It must be started on its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.Register:
			h.subscribers[sub] = true
			slog.Debug("livereload subscriber connected", "total", len(h.subscribers))

		case sub := <-h.Unregister:
			if _, ok := h.subscribers[sub]; ok {
				delete(h.subscribers, sub)
				close(sub.Send)
				slog.Debug("livereload subscriber disconnected", "total", len(h.subscribers))
			}

		case signal := <-h.Broadcast:
			for sub := range h.subscribers {
				select {
				case sub.Send <- signal:
				default:
					// A full buffer means the browser is gone or stuck;
					// drop it rather than block the loop.
					close(sub.Send)
					delete(h.subscribers, sub)
					slog.Warn("dropping slow livereload subscriber", "total", len(h.subscribers))
				}
			}
		}
	}
}
