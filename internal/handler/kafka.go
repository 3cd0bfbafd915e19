package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/config"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/cache"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type StockAdjuster interface {
	ApplyAdjustment(ctx context.Context, adj entities.StockAdjustment) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// storage hiccups are retried, rule violations go straight to the DLQ
var adjustmentRetry = utils.RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     time.Second,
	Multiplier:   2,
	Retryable:    func(err error) bool { return !entities.IsBusiness(err) },
}

// offsets applied by this process, kept long enough to cover a rebalance
const (
	appliedCapacity = 10_000
	appliedTTL      = time.Hour
)

type kafkaHandler struct {
	dlq      MessageWriter
	dlqTopic string
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	adjuster StockAdjuster
	applied  *cache.LRUCache
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, adjuster StockAdjuster) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.StockTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return NewStockConsumer(logger, reader, dlq, cfg.DLQTopic(), adjuster)
}

func NewStockConsumer(logger *slog.Logger, reader MessageReader, dlq MessageWriter, dlqTopic string, adjuster StockAdjuster) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		dlqTopic: dlqTopic,
		validate: validator.New(),
		adjuster: adjuster,
		applied:  cache.NewLRUCache(appliedCapacity, appliedTTL),
	}
}

// Consume applies stock adjustments until ctx is done. A message is committed
// once it has been applied or parked in the DLQ.
func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		key := messageKey(m)
		if _, ok := h.applied.Get(key); ok {
			adjustmentsDuplicate.Inc()
			h.logger.Warn("skipping redelivered adjustment", slog.Int64("offset", m.Offset))
			h.commit(ctx, m)
			continue
		}

		start := time.Now()
		if err := h.handleAdjustment(ctx, m); err != nil {
			adjustmentsFailed.Inc()
			h.logger.Error("failed to handle message",
				slog.Any("error", err),
				slog.Int64("offset", m.Offset),
			)

			// kafka-go retries the write itself
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			adjustmentsDLQ.Inc()
		} else {
			h.applied.Set(key, nil)
		}
		adjustmentDuration.Observe(time.Since(start).Seconds())

		h.commit(ctx, m)
	}
}

func (h *kafkaHandler) commit(ctx context.Context, m kafka.Message) {
	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err), slog.Int64("offset", m.Offset))
	}
}

func messageKey(m kafka.Message) string {
	return fmt.Sprintf("%s/%d/%d", m.Topic, m.Partition, m.Offset)
}

func (h *kafkaHandler) handleAdjustment(ctx context.Context, m kafka.Message) error {
	var msg StockAdjustmentMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal stock adjustment: %w", err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid stock adjustment: %w", err)
	}

	err := utils.Retry(ctx, adjustmentRetry, func(ctx context.Context) error {
		return h.adjuster.ApplyAdjustment(ctx, msg.toEntity())
	})
	if err != nil {
		return err
	}

	adjustmentsProcessed.WithLabelValues(msg.Operation).Inc()
	h.logger.Info("stock adjustment applied",
		slog.String("product_id", msg.ProductID),
		slog.String("operation", msg.Operation),
		slog.Int("quantity", msg.Quantity),
	)
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   h.dlqTopic,
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
