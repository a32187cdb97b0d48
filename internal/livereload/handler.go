package livereload

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/pubsub"
)

// reloadSignal is the message pushed to browsers; the client script treats
// any frame as a cue to refresh the page.
var reloadSignal = []byte("reload")

// Handler upgrades reload clients to a websocket and feeds them signals
// from the hub.
type Handler struct {
	hub *Hub
}

// NewHandler wires a handler to a running hub and subscribes the hub to
// asset-change events on the bus.
func NewHandler(ctx context.Context, hub *Hub, subscriber pubsub.Subscriber) (*Handler, error) {
	err := subscriber.Subscribe(ctx, pubsub.TopicAssetChanged, func(ctx context.Context, msg pubsub.Message) error {
		slog.Debug("livereload: asset changed", "path", string(msg.Payload))
		hub.Broadcast <- reloadSignal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Handler{hub: hub}, nil
}

// ServeWS handles a reload client connection. It registers the client with
// the hub and writes signals until the client goes away.
func (h *Handler) ServeWS(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// Dev-only endpoint on localhost; origin checks add nothing here.
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Error("livereload: websocket upgrade failed", "error", err)
		return c.String(http.StatusInternalServerError, "Failed to upgrade to WebSocket")
	}

	sub := &Subscriber{Send: make(chan []byte, 8)}
	h.hub.Register <- sub

	go func() {
		defer conn.Close(websocket.StatusNormalClosure, "")
		for signal := range sub.Send {
			if err := conn.Write(c.Request().Context(), websocket.MessageText, signal); err != nil {
				h.hub.Unregister <- sub
				return
			}
		}
	}()

	// Drain reads so close frames are processed; clients never send data.
	go func() {
		for {
			if _, _, err := conn.Read(context.Background()); err != nil {
				h.hub.Unregister <- sub
				return
			}
		}
	}()

	return nil
}
