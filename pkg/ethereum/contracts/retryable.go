package contracts

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// Inbox message kinds that produce a child-chain transaction.
const (
	KindSubmitRetryable uint8 = 9
	KindEthDeposit      uint8 = 12
)

// Typed transaction prefixes Nitro uses for parent-to-child messages.
const (
	depositTxType         = 0x64
	submitRetryableTxType = 0x69
)

// ArbRetryableTxAddress is the precompile that schedules retryable redemptions.
var ArbRetryableTxAddress = common.HexToAddress("0x000000000000000000000000000000000000006E")

// ErrMalformedMessage is returned when inbox message data has the wrong layout.
var ErrMalformedMessage = errors.New("malformed inbox message data")

// MessageDelivered is the Bridge's header for one inbox message.
type MessageDelivered struct {
	MessageIndex    *big.Int
	BeforeInboxAcc  [32]byte
	Inbox           common.Address
	Kind            uint8
	Sender          common.Address
	MessageDataHash [32]byte
	BaseFeeL1       *big.Int
	Timestamp       uint64
	Raw             types.Log
}

// RedeemScheduled is emitted on the child chain when a ticket's automatic
// redemption is queued.
type RedeemScheduled struct {
	TicketId            [32]byte
	RetryTxHash         [32]byte
	SequenceNum         uint64
	DonatedGas          uint64
	GasDonor            common.Address
	MaxRefund           *big.Int
	SubmissionFeeRefund *big.Int
	Raw                 types.Log
}

// RetryableTicket is the payload of a submit-retryable inbox message.
type RetryableTicket struct {
	To                  common.Address
	CallValue           *big.Int
	Deposit             *big.Int
	MaxSubmissionFee    *big.Int
	ExcessFeeRefundAddr common.Address
	CallValueRefundAddr common.Address
	GasLimit            uint64
	MaxFeePerGas        *big.Int
	Data                []byte
}

// EthDeposit is the payload of a native deposit inbox message.
type EthDeposit struct {
	To    common.Address
	Value *big.Int
}

// MessageDeliveredTopic is the topic0 of the Bridge delivery event.
func MessageDeliveredTopic() common.Hash { return bridgeABI.Events["MessageDelivered"].ID }

// RedeemScheduledTopic is the topic0 of the ArbRetryableTx redeem event.
func RedeemScheduledTopic() common.Hash { return arbRetryableTxABI.Events["RedeemScheduled"].ID }

// ParseMessageDelivered decodes a Bridge delivery log.
func ParseMessageDelivered(log types.Log) (*MessageDelivered, error) {
	out := new(MessageDelivered)
	if err := unpackLog(bridgeABI, out, "MessageDelivered", log); err != nil {
		return nil, err
	}
	out.Raw = log
	return out, nil
}

// ParseRedeemScheduled decodes a redeem scheduling log.
func ParseRedeemScheduled(log types.Log) (*RedeemScheduled, error) {
	out := new(RedeemScheduled)
	if err := unpackLog(arbRetryableTxABI, out, "RedeemScheduled", log); err != nil {
		return nil, err
	}
	out.Raw = log
	return out, nil
}

// FindMessageDelivered returns the delivery header bridge logged for messageNum.
func FindMessageDelivered(logs []*types.Log, bridge common.Address, messageNum *big.Int) (*MessageDelivered, bool) {
	topic := MessageDeliveredTopic()
	for _, l := range logs {
		if l == nil || l.Address != bridge || len(l.Topics) < 2 || l.Topics[0] != topic {
			continue
		}
		if l.Topics[1].Big().Cmp(messageNum) != 0 {
			continue
		}
		if ev, err := ParseMessageDelivered(*l); err == nil {
			return ev, true
		}
	}
	return nil, false
}

// FindRedeemScheduled returns the redemption scheduled for ticket, if any.
func FindRedeemScheduled(logs []*types.Log, ticket common.Hash) (*RedeemScheduled, bool) {
	topic := RedeemScheduledTopic()
	for _, l := range logs {
		if l == nil || l.Address != ArbRetryableTxAddress || len(l.Topics) < 2 || l.Topics[0] != topic {
			continue
		}
		if l.Topics[1] != ticket {
			continue
		}
		if ev, err := ParseRedeemScheduled(*l); err == nil {
			return ev, true
		}
	}
	return nil, false
}

// ParseRetryableTicket decodes the packed submit-retryable payload: nine
// 32-byte words followed by the call data.
func ParseRetryableTicket(data []byte) (*RetryableTicket, error) {
	const head = 9 * 32
	if len(data) < head {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedMessage, len(data))
	}
	word := func(i int) []byte { return data[i*32 : (i+1)*32] }

	gas := new(big.Int).SetBytes(word(6))
	size := new(big.Int).SetBytes(word(8))
	if !gas.IsUint64() || !size.IsUint64() || size.Uint64() != uint64(len(data)-head) {
		return nil, fmt.Errorf("%w: bad gas limit or data length", ErrMalformedMessage)
	}

	return &RetryableTicket{
		To:                  common.BytesToAddress(word(0)),
		CallValue:           new(big.Int).SetBytes(word(1)),
		Deposit:             new(big.Int).SetBytes(word(2)),
		MaxSubmissionFee:    new(big.Int).SetBytes(word(3)),
		ExcessFeeRefundAddr: common.BytesToAddress(word(4)),
		CallValueRefundAddr: common.BytesToAddress(word(5)),
		GasLimit:            gas.Uint64(),
		MaxFeePerGas:        new(big.Int).SetBytes(word(7)),
		Data:                common.CopyBytes(data[head:]),
	}, nil
}

// ParseEthDeposit decodes the packed native deposit payload: the recipient
// followed by a 32-byte amount.
func ParseEthDeposit(data []byte) (*EthDeposit, error) {
	if len(data) != common.AddressLength+32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedMessage, len(data))
	}
	return &EthDeposit{
		To:    common.BytesToAddress(data[:common.AddressLength]),
		Value: new(big.Int).SetBytes(data[common.AddressLength:]),
	}, nil
}

type submitRetryableTx struct {
	ChainID          *big.Int
	RequestID        common.Hash
	From             common.Address
	L1BaseFee        *big.Int
	DepositValue     *big.Int
	GasFeeCap        *big.Int
	Gas              uint64
	RetryTo          *common.Address `rlp:"nil"`
	RetryValue       *big.Int
	Beneficiary      common.Address
	MaxSubmissionFee *big.Int
	FeeRefundAddr    common.Address
	RetryData        []byte
}

type depositTx struct {
	ChainID     *big.Int
	L1RequestID common.Hash
	From        common.Address
	To          common.Address
	Value       *big.Int
}

// RetryableTicketID is the child-chain hash of the ticket creation
// transaction for a submit-retryable message.
func RetryableTicketID(childChainID uint64, header *MessageDelivered, ticket *RetryableTicket) (common.Hash, error) {
	var retryTo *common.Address
	if ticket.To != (common.Address{}) {
		to := ticket.To
		retryTo = &to
	}
	return typedHash(submitRetryableTxType, &submitRetryableTx{
		ChainID:          new(big.Int).SetUint64(childChainID),
		RequestID:        common.BigToHash(header.MessageIndex),
		From:             header.Sender,
		L1BaseFee:        header.BaseFeeL1,
		DepositValue:     ticket.Deposit,
		GasFeeCap:        ticket.MaxFeePerGas,
		Gas:              ticket.GasLimit,
		RetryTo:          retryTo,
		RetryValue:       ticket.CallValue,
		Beneficiary:      ticket.CallValueRefundAddr,
		MaxSubmissionFee: ticket.MaxSubmissionFee,
		FeeRefundAddr:    ticket.ExcessFeeRefundAddr,
		RetryData:        ticket.Data,
	})
}

// EthDepositTxID is the child-chain hash of the transaction crediting a
// native deposit.
func EthDepositTxID(childChainID uint64, header *MessageDelivered, deposit *EthDeposit) (common.Hash, error) {
	return typedHash(depositTxType, &depositTx{
		ChainID:     new(big.Int).SetUint64(childChainID),
		L1RequestID: common.BigToHash(header.MessageIndex),
		From:        header.Sender,
		To:          deposit.To,
		Value:       deposit.Value,
	})
}

func typedHash(txType byte, payload any) (common.Hash, error) {
	enc, err := rlp.EncodeToBytes(payload)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to encode child transaction: %w", err)
	}
	return crypto.Keccak256Hash([]byte{txType}, enc), nil
}
