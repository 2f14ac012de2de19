package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/IBM/sarama/mocks"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

var testIdentity = transfer.Identity{
	Address:     "0x52908400098527886e0f7030069857d2e4169ee7",
	NetworkType: transfer.Testnet,
}

func testRecord(status transfer.Status) transfer.Record {
	return transfer.Record{
		Kind:               transfer.Withdrawal,
		Amount:             "42",
		OriginChainID:      421614,
		DestinationChainID: 13746,
		DestinationHash:    "0xabababababababababababababababababababababababababababababababab",
		Status:             status,
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, ProducerConfig("test"))
	r := testRecord("")
	checker := func(want EventType) mocks.ValueChecker {
		return func(val []byte) error {
			var ev Event
			if err := json.Unmarshal(val, &ev); err != nil {
				return err
			}
			if ev.Type != want || ev.ID == "" || ev.Key != r.Key() {
				return fmt.Errorf("unexpected event %+v", ev)
			}
			return nil
		}
	}
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(checker(EventObserved))
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(checker(EventStatusChanged))

	pub := NewKafkaPublisherWithProducer(producer, "bridge.transfers", zap.NewNop())
	now := time.Unix(1_700_000_000, 0)
	events := []Event{
		NewEvent(EventObserved, testIdentity, testRecord(transfer.StatusSubmitted), "", now),
		NewEvent(EventStatusChanged, testIdentity, testRecord(transfer.StatusClaimable), transfer.StatusUnconfirmed, now),
	}
	if events[0].ID == events[1].ID {
		t.Fatal("event ids must be unique")
	}

	if err := pub.Publish(context.Background(), events); err != nil {
		t.Fatalf("Publish() failed: %v", err)
	}
	if err := pub.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
}

func TestKafkaPublisher_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, ProducerConfig("test"))
	producer.ExpectSendMessageAndFail(errors.New("broker down"))

	pub := NewKafkaPublisherWithProducer(producer, "bridge.transfers", zap.NewNop())
	ev := NewEvent(EventObserved, testIdentity, testRecord(transfer.StatusSubmitted), "", time.Now())
	if err := pub.Publish(context.Background(), []Event{ev}); err == nil {
		t.Fatal("expected publish error")
	}
	_ = pub.Close()
}

func TestKafkaPublisher_EmptyBatch(t *testing.T) {
	producer := mocks.NewSyncProducer(t, ProducerConfig("test"))
	pub := NewKafkaPublisherWithProducer(producer, "bridge.transfers", zap.NewNop())
	if err := pub.Publish(context.Background(), nil); err != nil {
		t.Fatalf("Publish(nil) failed: %v", err)
	}
	if err := pub.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
}
