package service

import (
	"context"
	"encoding/json"
	"log"

	"anugerah-resto/reporting-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Reporting Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.OrderMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessOrder(msg)
	}
}

func (c *Consumer) ProcessOrder(msg domain.OrderMessage) {
	switch msg.Type {
	case "order_completed":
		log.Printf("Recording sale: OrderID=%s, Total=%.2f", msg.OrderID, msg.Total)
		if err := c.Store.RecordSale(msg.Day(), msg.Total, msg.CustomerID); err != nil {
			log.Printf("Error recording sale for order %s: %v", msg.OrderID, err)
		}
	case "order_cancelled":
		log.Printf("Recording cancellation: OrderID=%s", msg.OrderID)
		if err := c.Store.RecordCancellation(msg.Day()); err != nil {
			log.Printf("Error recording cancellation for order %s: %v", msg.OrderID, err)
		}
	}
}
