package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/fulfillment-service/internal/handler/mocks"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReader hands out the queued messages, then reports cancellation.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []kafka.Message
	closed    bool
}

func (r *fakeReader) FetchMessage(context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		return kafka.Message{}, context.Canceled
	}
	m := r.queue[0]
	r.queue = r.queue[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

type fakeWriter struct {
	written []kafka.Message
	err     error
	closed  bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaHandler_Consume(t *testing.T) {
	testCases := []struct {
		name          string
		value         string
		mockBehavior  func(adj *mocks.MockStockAdjuster)
		wantDLQ       bool
		wantCommitted bool
	}{
		{
			name:  "add applied",
			value: `{"product_id":"p1","operation":"add","quantity":5}`,
			mockBehavior: func(adj *mocks.MockStockAdjuster) {
				adj.EXPECT().
					ApplyAdjustment(mock.Anything, entities.StockAdjustment{
						ProductID: "p1", Operation: entities.AdjustmentAdd, Quantity: 5,
					}).
					Return(nil).Once()
			},
			wantCommitted: true,
		},
		{
			name:  "set to zero applied",
			value: `{"product_id":"p1","operation":"set","quantity":0}`,
			mockBehavior: func(adj *mocks.MockStockAdjuster) {
				adj.EXPECT().
					ApplyAdjustment(mock.Anything, entities.StockAdjustment{
						ProductID: "p1", Operation: entities.AdjustmentSet, Quantity: 0,
					}).
					Return(nil).Once()
			},
			wantCommitted: true,
		},
		{
			name:          "malformed json",
			value:         `{"product_id":`,
			mockBehavior:  func(adj *mocks.MockStockAdjuster) {},
			wantDLQ:       true,
			wantCommitted: true,
		},
		{
			name:          "unknown operation",
			value:         `{"product_id":"p1","operation":"multiply","quantity":2}`,
			mockBehavior:  func(adj *mocks.MockStockAdjuster) {},
			wantDLQ:       true,
			wantCommitted: true,
		},
		{
			name:  "unknown product is not retried",
			value: `{"product_id":"missing","operation":"add","quantity":1}`,
			mockBehavior: func(adj *mocks.MockStockAdjuster) {
				adj.EXPECT().
					ApplyAdjustment(mock.Anything, mock.Anything).
					Return(entities.NotFound("product", "id", "missing")).Once()
			},
			wantDLQ:       true,
			wantCommitted: true,
		},
		{
			name:  "storage error retried",
			value: `{"product_id":"p1","operation":"add","quantity":1}`,
			mockBehavior: func(adj *mocks.MockStockAdjuster) {
				adj.EXPECT().
					ApplyAdjustment(mock.Anything, mock.Anything).
					Return(errors.New("connection reset")).Once()
				adj.EXPECT().
					ApplyAdjustment(mock.Anything, mock.Anything).
					Return(nil).Once()
			},
			wantCommitted: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			adj := mocks.NewMockStockAdjuster(t)
			tc.mockBehavior(adj)

			msg := kafka.Message{Topic: "stock-adjustments", Key: []byte("p1"), Value: []byte(tc.value), Offset: 7}
			reader := &fakeReader{queue: []kafka.Message{msg}}
			dlq := &fakeWriter{}

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewStockConsumer(logger, reader, dlq, "stock-adjustments-dlq", adj)
			h.Consume(t.Context())

			if tc.wantDLQ {
				require.Len(t, dlq.written, 1)
				assert.Equal(t, "stock-adjustments-dlq", dlq.written[0].Topic)
				assert.Equal(t, tc.value, string(dlq.written[0].Value))
			} else {
				assert.Empty(t, dlq.written)
			}

			if tc.wantCommitted {
				assert.Len(t, reader.committed, 1)
			}
		})
	}
}

func TestKafkaHandler_DLQFailureSkipsCommit(t *testing.T) {
	adj := mocks.NewMockStockAdjuster(t)
	reader := &fakeReader{queue: []kafka.Message{{Value: []byte(`not json`)}}}
	dlq := &fakeWriter{err: errors.New("broker down")}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewStockConsumer(logger, reader, dlq, "stock-adjustments-dlq", adj)
	h.Consume(t.Context())

	assert.Empty(t, reader.committed, "the message must be redelivered")

	require.NoError(t, h.Close())
	assert.True(t, reader.closed)
	assert.True(t, dlq.closed)
}

func TestKafkaHandler_RedeliveredAdjustmentAppliedOnce(t *testing.T) {
	adj := mocks.NewMockStockAdjuster(t)
	adj.EXPECT().
		ApplyAdjustment(mock.Anything, entities.StockAdjustment{
			ProductID: "p1", Operation: entities.AdjustmentAdd, Quantity: 5,
		}).
		Return(nil).Once()

	msg := kafka.Message{
		Topic: "stock-adjustments", Partition: 2, Offset: 41,
		Value: []byte(`{"product_id":"p1","operation":"add","quantity":5}`),
	}
	// same offset again, as after a commit that did not go through
	next := msg
	next.Offset = 42
	reader := &fakeReader{queue: []kafka.Message{msg, msg, next}}
	adj.EXPECT().
		ApplyAdjustment(mock.Anything, mock.Anything).
		Return(nil).Once()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewStockConsumer(logger, reader, &fakeWriter{}, "stock-adjustments-dlq", adj)
	h.Consume(t.Context())

	assert.Len(t, reader.committed, 3, "duplicates are still committed")
	adj.AssertNumberOfCalls(t, "ApplyAdjustment", 2)
}
