package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"anugerah-resto/order-svc/internal/domain"
	"anugerah-resto/order-svc/internal/service"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher emits order lifecycle events keyed by order ID so events
// for one order stay on one partition.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

var _ service.OrderPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrder(ctx context.Context, evt domain.OrderEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to encode order event: %w", err)
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.OrderID),
		Value: value,
	})
}
