package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"hr-assistant-be/internal/dto"
	"hr-assistant-be/internal/pkg/logger"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/events"
	pktNats "hr-assistant-be/pkg/nats"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process query topic and re-emits each
// processed turn on the NATS bus for downstream consumers (analytics,
// notification fan-out).
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.QueryProcessedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid messages never become valid, do not retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.QueryHistoryRepository().FindAll(ctx,
		specification.ByID{ID: payload.HistoryId},
		specification.Limit{N: 1},
	)
	if err != nil {
		cs.logger.Error("consumer", "failed to load history record", map[string]interface{}{
			"error":      err.Error(),
			"history_id": payload.HistoryId,
		})
		msg.Nack() // retriable
		return
	}
	if len(records) == 0 {
		msg.Ack() // record already purged
		return
	}
	record := records[0]

	if cs.eventPublisher != nil {
		evt := events.QueryProcessed(record.Id, record.ConversationId, record.Type, record.Success)
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			cs.logger.Warn("consumer", "failed to publish query processed event", map[string]interface{}{
				"error":      err.Error(),
				"history_id": record.Id,
			})
		}
	}

	msg.Ack()
}
