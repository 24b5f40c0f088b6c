package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// RecordEventProducer is the interface handlers depend on, so tests can
// swap in a mock.
type RecordEventProducer interface {
	ProduceRecordEvent(ctx context.Context, event string, payload map[string]interface{})
}

// Producer writes record-change events (client.created, project.archived,
// ticket.updated, ...) to a Kafka topic. Best-effort: failures are logged
// and never block the API.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer creates a producer. With no brokers or an empty topic every
// method is a no-op.
func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 || topic == "" {
		return &Producer{}
	}
	return &Producer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// ProduceRecordEvent sends one event. The payload carries the record ids
// and the fields downstream consumers index.
func (p *Producer) ProduceRecordEvent(ctx context.Context, event string, payload map[string]interface{}) {
	if p.writer == nil {
		return
	}
	msg := map[string]interface{}{"event": event}
	for k, v := range payload {
		msg[k] = v
	}
	body, err := json.Marshal(msg)
	if err != nil {
		log.Printf("kafka: marshal record event: %v", err)
		return
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: body}); err != nil {
		log.Printf("kafka: write record event: %v", err)
	}
}

// ProduceAsync fires ProduceRecordEvent in a goroutine with its own
// timeout so API responses never wait on the broker.
func (p *Producer) ProduceAsync(event string, payload map[string]interface{}) {
	if p.writer == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		p.ProduceRecordEvent(ctx, event, payload)
	}()
}

// Close closes the writer.
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
