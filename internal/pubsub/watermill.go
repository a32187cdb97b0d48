package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Metadata keys used to carry our Message fields through watermill.
const (
	metaKeySessionID = "session_id"
	metaKeyTopic     = "topic"
)

// WatermillBridge implements Publisher and Subscriber over watermill's
// in-memory GoChannel. The whole application runs in one process, so an
// in-memory bus is all that is needed.
type WatermillBridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	logger watermill.LoggerAdapter
}

// NewWatermillBridge initializes the in-memory pub/sub bridge.
func NewWatermillBridge() *WatermillBridge {
	logger := watermill.NewStdLogger(false, false)
	goChannel := gochannel.NewGoChannel(gochannel.Config{}, logger)
	return &WatermillBridge{
		pub:    goChannel,
		sub:    goChannel,
		logger: logger,
	}
}

func toWatermill(msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	wmMsg.Metadata.Set(metaKeySessionID, msg.SessionID)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	return wmMsg
}

func fromWatermill(wmMsg *message.Message) Message {
	metadata := make(map[string]string)
	for k, v := range wmMsg.Metadata {
		if k != metaKeySessionID && k != metaKeyTopic {
			metadata[k] = v
		}
	}
	return Message{
		Topic:     wmMsg.Metadata.Get(metaKeyTopic),
		SessionID: wmMsg.Metadata.Get(metaKeySessionID),
		Payload:   wmMsg.Payload,
		Metadata:  metadata,
	}
}

// Publish implements Publisher.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	return wb.pub.Publish(msg.Topic, toWatermill(msg))
}

// Subscribe implements Subscriber. Messages are processed on a background
// goroutine; a handler error nacks the message and is logged.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			if err := handler(ctx, fromWatermill(wmMsg)); err != nil {
				slog.Error("failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
				wmMsg.Nack()
			} else {
				wmMsg.Ack()
			}
		}
		slog.Debug("subscription message loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts the bridge down, ending all subscription loops.
func (wb *WatermillBridge) Close() error {
	return wb.sub.Close()
}
