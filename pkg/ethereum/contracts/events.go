package contracts

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrEventSignature is returned when a log does not carry the expected event.
var ErrEventSignature = errors.New("event signature mismatch")

// L2ToL1Tx is the withdrawal message emitted by ArbSys on the child chain.
type L2ToL1Tx struct {
	Caller      common.Address
	Destination common.Address
	Hash        *big.Int
	Position    *big.Int
	ArbBlockNum *big.Int
	EthBlockNum *big.Int
	Timestamp   *big.Int
	Callvalue   *big.Int
	Data        []byte
	Raw         types.Log
}

// InboxMessageDelivered is emitted by the Inbox on the parent chain for every
// deposit message.
type InboxMessageDelivered struct {
	MessageNum *big.Int
	Data       []byte
	Raw        types.Log
}

// SendRootUpdated is emitted by the Outbox when a new child-chain state is confirmed.
type SendRootUpdated struct {
	OutputRoot  [32]byte
	L2BlockHash [32]byte
	Raw         types.Log
}

// L2ToL1TxTopic is the topic0 of the ArbSys withdrawal event.
func L2ToL1TxTopic() common.Hash { return arbSysABI.Events["L2ToL1Tx"].ID }

// SendRootUpdatedTopic is the topic0 of the Outbox confirmation event.
func SendRootUpdatedTopic() common.Hash { return outboxABI.Events["SendRootUpdated"].ID }

// InboxMessageDeliveredTopic is the topic0 of the Inbox delivery event.
func InboxMessageDeliveredTopic() common.Hash { return inboxABI.Events["InboxMessageDelivered"].ID }

// ParseL2ToL1Tx decodes a withdrawal message log.
func ParseL2ToL1Tx(log types.Log) (*L2ToL1Tx, error) {
	out := new(L2ToL1Tx)
	if err := unpackLog(arbSysABI, out, "L2ToL1Tx", log); err != nil {
		return nil, err
	}
	out.Raw = log
	return out, nil
}

// ParseInboxMessageDelivered decodes a deposit delivery log.
func ParseInboxMessageDelivered(log types.Log) (*InboxMessageDelivered, error) {
	out := new(InboxMessageDelivered)
	if err := unpackLog(inboxABI, out, "InboxMessageDelivered", log); err != nil {
		return nil, err
	}
	out.Raw = log
	return out, nil
}

// ParseSendRootUpdated decodes an outbox confirmation log.
func ParseSendRootUpdated(log types.Log) (*SendRootUpdated, error) {
	out := new(SendRootUpdated)
	if err := unpackLog(outboxABI, out, "SendRootUpdated", log); err != nil {
		return nil, err
	}
	out.Raw = log
	return out, nil
}

// FindL2ToL1Tx returns the first withdrawal message in logs emitted by arbSys.
func FindL2ToL1Tx(logs []*types.Log, arbSys common.Address) (*L2ToL1Tx, bool) {
	topic := L2ToL1TxTopic()
	for _, l := range logs {
		if l == nil || l.Address != arbSys || len(l.Topics) == 0 || l.Topics[0] != topic {
			continue
		}
		if ev, err := ParseL2ToL1Tx(*l); err == nil {
			return ev, true
		}
	}
	return nil, false
}

// FindInboxMessageDelivered returns the first delivery log emitted by inbox.
func FindInboxMessageDelivered(logs []*types.Log, inbox common.Address) (*InboxMessageDelivered, bool) {
	topic := InboxMessageDeliveredTopic()
	for _, l := range logs {
		if l == nil || l.Address != inbox || len(l.Topics) == 0 || l.Topics[0] != topic {
			continue
		}
		if ev, err := ParseInboxMessageDelivered(*l); err == nil {
			return ev, true
		}
	}
	return nil, false
}

// SendCountFromHeader reads the outbox send count a Nitro child header
// carries in the first 8 bytes of its mix digest.
func SendCountFromHeader(h *types.Header) uint64 {
	return binary.BigEndian.Uint64(h.MixDigest[:8])
}

func unpackLog(parsed *abi.ABI, out any, event string, log types.Log) error {
	ev, ok := parsed.Events[event]
	if !ok {
		return fmt.Errorf("unknown event %s", event)
	}
	if len(log.Topics) == 0 || log.Topics[0] != ev.ID {
		return ErrEventSignature
	}
	if len(log.Data) > 0 {
		if err := parsed.UnpackIntoInterface(out, event, log.Data); err != nil {
			return fmt.Errorf("failed to unpack %s data: %w", event, err)
		}
	}
	var indexed abi.Arguments
	for _, arg := range ev.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if err := abi.ParseTopics(out, indexed, log.Topics[1:]); err != nil {
		return fmt.Errorf("failed to parse %s topics: %w", event, err)
	}
	return nil
}
