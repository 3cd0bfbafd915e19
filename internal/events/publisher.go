package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/config"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

const headerEventType = "event_type"

var (
	eventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Total number of order events written to kafka",
		},
		[]string{"type"},
	)

	eventsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "events",
			Name:      "publish_failures_total",
			Help:      "Total number of order events that could not be written",
		},
		[]string{"type"},
	)
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer MessageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return NewPublisher(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrderEventsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireAll,
	})
}

// NewPublisher wraps an already configured writer. The writer owns the topic.
func NewPublisher(logger *slog.Logger, writer MessageWriter) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: writer,
	}
}

// Publish writes the event keyed by order id, so events of one order keep
// their relative order within a partition.
func (p *kafkaPublisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	data, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.EventType, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(event.EventType)},
		},
	})
	if err != nil {
		eventsFailed.WithLabelValues(event.EventType).Inc()
		return fmt.Errorf("failed to write %s event: %w", event.EventType, err)
	}

	eventsPublished.WithLabelValues(event.EventType).Inc()
	p.logger.Debug("event published",
		slog.String("type", event.EventType),
		slog.String("order_id", event.OrderID),
	)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events. Used when kafka is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, entities.OrderEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
