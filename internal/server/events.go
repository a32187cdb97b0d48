package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/grohubglobal/Dynamic-web-sub000/internal/pubsub"
)

// subscribeEventLog logs domain events from the bus. It gives operators a
// trail of what the dashboard is doing without touching the request path.
func (s *Server) subscribeEventLog(ctx context.Context) {
	err := s.bus.Subscribe(ctx, pubsub.TopicProfileSaved, func(ctx context.Context, msg pubsub.Message) error {
		var event pubsub.ProfileSavedEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			return err
		}
		slog.Info("profile saved",
			"session_id", msg.SessionID,
			"name", event.Name,
			"skills", len(event.Skills),
		)
		return nil
	})
	if err != nil {
		slog.Error("Failed to subscribe to profile events", "error", err)
		os.Exit(1)
	}

	err = s.bus.Subscribe(ctx, pubsub.TopicSettingsChanged, func(ctx context.Context, msg pubsub.Message) error {
		var event pubsub.SettingsChangedEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			return err
		}
		slog.Info("settings changed", "session_id", msg.SessionID, "group", event.Group)
		return nil
	})
	if err != nil {
		slog.Error("Failed to subscribe to settings events", "error", err)
		os.Exit(1)
	}
}
