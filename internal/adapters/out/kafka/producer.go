// Package kafka publishes domain events to a Kafka cluster using a sarama
// synchronous producer. Events about orders and deliveries go to separate
// topics; the event key routes all events of one entity to the same partition
// so consumers see them in order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"courier/internal/core/ports"

	"github.com/IBM/sarama"
)

// Config holds the producer settings.
type Config struct {
	Brokers       []string
	OrderTopic    string
	DeliveryTopic string
}

// Producer implements ports.EventPublisher on top of sarama.SyncProducer.
type Producer struct {
	producer      sarama.SyncProducer
	orderTopic    string
	deliveryTopic string
}

// NewProducer creates a synchronous Kafka producer. SendMessage waits for
// acknowledgement from all in-sync replicas before returning.
func NewProducer(cfg Config) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(cfg.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &Producer{
		producer:      producer,
		orderTopic:    cfg.OrderTopic,
		deliveryTopic: cfg.DeliveryTopic,
	}, nil
}

// Publish serializes the event payload as JSON and sends it to the topic
// matching the event's entity.
func (p *Producer) Publish(_ context.Context, event ports.Event) error {
	data, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.Name, err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topicFor(event.Name),
		Key:   sarama.StringEncoder(event.Key),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("event_type"),
				Value: []byte(event.Name),
			},
			{
				Key:   []byte("timestamp"),
				Value: []byte(time.Now().UTC().Format(time.RFC3339)),
			},
		},
	}

	if _, _, err = p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to send event %s: %w", event.Name, err)
	}

	return nil
}

// Close shuts down the underlying producer.
func (p *Producer) Close() error {
	return p.producer.Close()
}

func (p *Producer) topicFor(eventName string) string {
	if strings.HasPrefix(eventName, "delivery.") {
		return p.deliveryTopic
	}
	return p.orderTopic
}
