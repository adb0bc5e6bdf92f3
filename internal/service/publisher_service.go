package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"ai-tutoring-be/pkg/events"
)

type IPublisherService interface {
	PublishToolExecuted(event events.ToolExecutedEvent) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (ps *publisherService) PublishToolExecuted(event events.ToolExecutedEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal tool usage event: %w", err)
	}

	// The event id doubles as the message id so consumers can dedupe
	msg := message.NewMessage(event.EventID, payload)
	return ps.pubSub.Publish(ps.topicName, msg)
}
