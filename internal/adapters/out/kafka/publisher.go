// Package kafka implements the notification publisher port on top of a
// Kafka cluster using segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

const writeTimeout = 2 * time.Second

// Publisher writes domain events to Kafka topics. One writer serves all
// topics; the topic is set per message.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewPublisher(brokers []string, logger *slog.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: writer, logger: logger}
}

// Publish serializes payload as JSON and writes it to topic. The write is
// bounded by a short timeout so a slow broker cannot stall a request.
func (p *Publisher) Publish(ctx context.Context, topic string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload for topic %s: %w", topic, err)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write message to topic %s: %w", topic, err)
	}

	p.logger.Debug("published notification", "topic", topic)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
