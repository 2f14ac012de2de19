package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/internal/metrics"
	"github.com/chainsafe/bridge-tracker/pkg/config"
)

// KafkaPublisher writes events to a single topic keyed by identity, so all
// events of one identity land on the same partition in order.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
}

// ProducerConfig returns the sarama configuration used for the event stream.
func ProducerConfig(clientID string) *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	return cfg
}

// NewKafkaPublisher dials the configured brokers.
func NewKafkaPublisher(cfg *config.KafkaConfig, logger *zap.Logger) (*KafkaPublisher, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, ProducerConfig(cfg.ClientID))
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewKafkaPublisherWithProducer(producer, cfg.Topic, logger), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer.
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, logger: logger}
}

// Publish sends events as one batch.
func (p *KafkaPublisher) Publish(ctx context.Context, events []Event) error {
	if len(events) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msgs := make([]*sarama.ProducerMessage, 0, len(events))
	for i := range events {
		data, err := json.Marshal(&events[i])
		if err != nil {
			return fmt.Errorf("failed to encode event %s: %w", events[i].ID, err)
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(events[i].NetworkType + ":" + events[i].Address),
			Value: sarama.ByteEncoder(data),
			Headers: []sarama.RecordHeader{
				{Key: []byte("event_type"), Value: []byte(events[i].Type)},
				{Key: []byte("event_id"), Value: []byte(events[i].ID)},
			},
		})
	}

	if err := p.producer.SendMessages(msgs); err != nil {
		metrics.ErrorsTotal.WithLabelValues("notify", "publish").Inc()
		p.logger.Error("Failed to publish transfer events",
			zap.Int("count", len(msgs)),
			zap.Error(err))
		return fmt.Errorf("failed to publish events: %w", err)
	}

	p.logger.Debug("Published transfer events", zap.Int("count", len(msgs)), zap.String("topic", p.topic))
	return nil
}

// Close flushes and closes the producer.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
