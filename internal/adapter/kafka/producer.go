// Package kafka publishes console audit events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"backoffice/internal/core/domain"
	"backoffice/internal/core/port"
)

// ErrClosed is returned by Publish after Close.
var ErrClosed = errors.New("kafka: producer closed")

const EnvelopeVersion = 1

// Envelope wraps every event written to the topic.
type Envelope struct {
	EventID      string       `json:"event_id"`
	EventType    string       `json:"event_type"`
	EventVersion int          `json:"event_version"`
	OccurredAt   time.Time    `json:"occurred_at"`
	Producer     string       `json:"producer"`
	Payload      domain.Event `json:"payload"`
}

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Producer implements port.EventPublisher. Publish only enqueues; a
// background loop started by Start writes the messages.
type Producer struct {
	w        writer
	producer string
	logger   *slog.Logger

	mu     sync.Mutex
	closed bool
	inbox  chan kafkago.Message
	done   chan struct{}
}

var _ port.EventPublisher = (*Producer)(nil)

// NewProducer returns a producer writing to topic on brokers with an
// inbox of buf messages.
func NewProducer(brokers []string, topic, clientID string, buf int, logger *slog.Logger) *Producer {
	return newProducer(&kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}, clientID, buf, logger)
}

func newProducer(w writer, clientID string, buf int, logger *slog.Logger) *Producer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Producer{
		w:        w,
		producer: clientID,
		logger:   logger,
		inbox:    make(chan kafkago.Message, buf),
		done:     make(chan struct{}),
	}
}

// Start runs the write loop until Close is called.
func (p *Producer) Start(ctx context.Context) {
	go func() {
		defer close(p.done)
		for m := range p.inbox {
			if err := p.w.WriteMessages(context.WithoutCancel(ctx), m); err != nil {
				p.logger.Error("kafka write failed", slog.String("key", string(m.Key)), slog.Any("error", err))
			}
		}
		if err := p.w.Close(); err != nil {
			p.logger.Error("kafka writer close failed", slog.Any("error", err))
		}
	}()
}

// Publish enqueues ev. It blocks while the inbox is full until ctx ends.
func (p *Producer) Publish(ctx context.Context, ev domain.Event) error {
	value, err := json.Marshal(Envelope{
		EventID:      ev.ID,
		EventType:    ev.Type,
		EventVersion: EnvelopeVersion,
		OccurredAt:   ev.OccurredAt,
		Producer:     p.producer,
		Payload:      ev,
	})
	if err != nil {
		return err
	}
	msg := kafkago.Message{
		Key:   []byte(ev.Kind + ":" + ev.RecordID),
		Value: value,
		Time:  ev.OccurredAt,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(ev.Type)},
			{Key: "content_type", Value: []byte("application/json")},
		},
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	select {
	case p.inbox <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting events, flushes the inbox and waits for the loop
// to finish. Start must have been called.
func (p *Producer) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.inbox)
	}
	p.mu.Unlock()
	<-p.done
}
