// Package publish emits one Kafka event per completed decision so
// downstream consumers (alerting, dashboards) can react without polling the
// ledger. Publishing is best-effort: the ledger remains the durable record.
package publish

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
	"github.com/danielpatrickdp/launchgate/internal/decision"
)

// #region event

// DecisionEvent is the wire payload for one completed pipeline run.
type DecisionEvent struct {
	GameID     string           `json:"game_id"`
	SessionID  string           `json:"session_id"`
	Decision   decision.Verdict `json:"decision"`
	Source     string           `json:"source"`
	RiskScore  *float64         `json:"risk_score"`
	Confidence float64          `json:"confidence"`
	LedgerID   string           `json:"ledger_id,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// #endregion event

// #region publisher

// Publisher sends decision events to a Kafka topic.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher connects a sync producer to the given brokers.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_8_0_0

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return &Publisher{producer: producer, topic: topic}, nil
}

// NewPublisherWithProducer wires an injected producer. Used for testing.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

// Close shuts down the producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}

// #endregion publisher

// #region publish

// PublishDecision sends one event keyed by game id, so per-game ordering is
// preserved across partitions.
func (p *Publisher) PublishDecision(event DecisionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal decision event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.GameID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send decision event: %w", err)
	}

	log.Printf("[KAFKA] published decision game=%s decision=%s partition=%d offset=%d",
		event.GameID, event.Decision, partition, offset)
	return nil
}

// #endregion publish
