package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"ai-tutoring-be/internal/pkg/logger"
	"ai-tutoring-be/pkg/events"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
	UsageCounts() map[string]int
}

// consumerService aggregates per-tool usage counts off the event bus, keeping
// accounting out of the request path.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger

	mu     sync.Mutex
	counts map[string]int
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, sysLogger logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    sysLogger,
		counts:    make(map[string]int),
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var event events.ToolExecutedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("usage-consumer", "Failed to unmarshal usage event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.mu.Lock()
	cs.counts[event.ToolName]++
	total := cs.counts[event.ToolName]
	cs.mu.Unlock()

	cs.logger.Info("usage-consumer", "Tool usage recorded", map[string]interface{}{
		"tool_name": event.ToolName,
		"user_id":   event.UserID,
		"intent":    event.Intent,
		"topic":     event.Topic,
		"degraded":  event.Degraded,
		"total":     total,
	})

	msg.Ack()
}

// UsageCounts returns a copy of the per-tool counters.
func (cs *consumerService) UsageCounts() map[string]int {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	out := make(map[string]int, len(cs.counts))
	for tool, n := range cs.counts {
		out[tool] = n
	}
	return out
}
