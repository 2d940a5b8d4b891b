package publish

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/danielpatrickdp/launchgate/internal/decision"
)

func TestPublishDecision(t *testing.T) {
	mock := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(raw []byte) error {
		var event DecisionEvent
		return json.Unmarshal(raw, &event)
	})

	p := NewPublisherWithProducer(mock, "launchgate.decisions")
	defer p.Close()

	risk := 80.0
	err := p.PublishDecision(DecisionEvent{
		GameID:     "game-1",
		SessionID:  "s1",
		Decision:   decision.VerdictKill,
		Source:     "MODEL",
		RiskScore:  &risk,
		Confidence: 0.8,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("PublishDecision: %v", err)
	}
}

func TestPublishDecision_SendFailure(t *testing.T) {
	mock := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherWithProducer(mock, "launchgate.decisions")
	defer p.Close()

	err := p.PublishDecision(DecisionEvent{GameID: "game-1", Decision: decision.VerdictGo})
	if err == nil {
		t.Error("expected send failure to propagate")
	}
}
