package contracts

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

var bridgeAddr = common.HexToAddress("0x38f918D0E9F1b721EDaA41302E399fa1B79333a9")

func word(v int64) []byte { return common.LeftPadBytes(big.NewInt(v).Bytes(), 32) }

func ticketPayload(to common.Address, data []byte) []byte {
	var out []byte
	for _, w := range [][]byte{
		common.LeftPadBytes(to.Bytes(), 32),
		word(5),
		word(1_000_000),
		word(2_000),
		common.LeftPadBytes(caller.Bytes(), 32),
		common.LeftPadBytes(dest.Bytes(), 32),
		word(100_000),
		word(100_000_000),
		word(int64(len(data))),
	} {
		out = append(out, w...)
	}
	return append(out, data...)
}

func deliveredLog(t *testing.T, num int64, kind uint8) *types.Log {
	t.Helper()
	ev := bridgeABI.Events["MessageDelivered"]
	data, err := ev.Inputs.NonIndexed().Pack(inboxAddr, kind, caller, [32]byte{0x01}, big.NewInt(7), uint64(1700000000))
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	return &types.Log{
		Address: bridgeAddr,
		Topics:  []common.Hash{ev.ID, common.BigToHash(big.NewInt(num)), {}},
		Data:    data,
	}
}

func TestFindMessageDelivered(t *testing.T) {
	logs := []*types.Log{deliveredLog(t, 98, KindEthDeposit), deliveredLog(t, 99, KindSubmitRetryable)}

	header, ok := FindMessageDelivered(logs, bridgeAddr, big.NewInt(99))
	if !ok {
		t.Fatal("expected delivery header")
	}
	if header.Kind != KindSubmitRetryable || header.Sender != caller || header.BaseFeeL1.Int64() != 7 || header.MessageIndex.Int64() != 99 {
		t.Fatalf("unexpected header: %+v", header)
	}
	if _, ok := FindMessageDelivered(logs, inboxAddr, big.NewInt(99)); ok {
		t.Fatal("logs from another emitter must be ignored")
	}
}

func TestParseRetryableTicket(t *testing.T) {
	ticket, err := ParseRetryableTicket(ticketPayload(dest, []byte{0xca, 0xfe}))
	if err != nil {
		t.Fatalf("ParseRetryableTicket() failed: %v", err)
	}
	if ticket.To != dest || ticket.CallValue.Int64() != 5 || ticket.Deposit.Int64() != 1_000_000 {
		t.Fatalf("unexpected ticket: %+v", ticket)
	}
	if ticket.ExcessFeeRefundAddr != caller || ticket.CallValueRefundAddr != dest || ticket.GasLimit != 100_000 {
		t.Fatalf("unexpected refund fields: %+v", ticket)
	}
	if string(ticket.Data) != "\xca\xfe" {
		t.Fatalf("data = %x", ticket.Data)
	}

	short := ticketPayload(dest, []byte{0xca, 0xfe})
	if _, err := ParseRetryableTicket(short[:len(short)-1]); !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("expected malformed error for a truncated payload, got %v", err)
	}
	if _, err := ParseRetryableTicket(make([]byte, 64)); !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("expected malformed error for a short payload, got %v", err)
	}
}

func TestParseEthDeposit(t *testing.T) {
	dep, err := ParseEthDeposit(append(dest.Bytes(), word(1_000_000_000)...))
	if err != nil {
		t.Fatalf("ParseEthDeposit() failed: %v", err)
	}
	if dep.To != dest || dep.Value.Int64() != 1_000_000_000 {
		t.Fatalf("unexpected deposit: %+v", dep)
	}
	if _, err := ParseEthDeposit(dest.Bytes()); !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("expected malformed error, got %v", err)
	}
}

func TestRetryableTicketID(t *testing.T) {
	header := &MessageDelivered{MessageIndex: big.NewInt(99), Sender: caller, BaseFeeL1: big.NewInt(7)}
	ticket, err := ParseRetryableTicket(ticketPayload(dest, []byte{0xca, 0xfe}))
	if err != nil {
		t.Fatalf("ParseRetryableTicket() failed: %v", err)
	}

	got, err := RetryableTicketID(13746, header, ticket)
	if err != nil {
		t.Fatalf("RetryableTicketID() failed: %v", err)
	}

	enc, err := rlp.EncodeToBytes([]any{
		big.NewInt(13746),
		common.BigToHash(big.NewInt(99)),
		caller,
		big.NewInt(7),
		big.NewInt(1_000_000),
		big.NewInt(100_000_000),
		uint64(100_000),
		dest,
		big.NewInt(5),
		dest,
		big.NewInt(2_000),
		caller,
		[]byte{0xca, 0xfe},
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if want := crypto.Keccak256Hash([]byte{0x69}, enc); got != want {
		t.Fatalf("ticket id = %s, want %s", got, want)
	}

	// a contract-creating ticket encodes an empty destination
	create, err := ParseRetryableTicket(ticketPayload(common.Address{}, nil))
	if err != nil {
		t.Fatalf("ParseRetryableTicket() failed: %v", err)
	}
	withNil, err := RetryableTicketID(13746, header, create)
	if err != nil {
		t.Fatalf("RetryableTicketID() failed: %v", err)
	}
	enc, _ = rlp.EncodeToBytes([]any{
		big.NewInt(13746), common.BigToHash(big.NewInt(99)), caller, big.NewInt(7), big.NewInt(1_000_000),
		big.NewInt(100_000_000), uint64(100_000), []byte{}, big.NewInt(5), dest, big.NewInt(2_000), caller, []byte{},
	})
	if want := crypto.Keccak256Hash([]byte{0x69}, enc); withNil != want {
		t.Fatalf("creation ticket id = %s, want %s", withNil, want)
	}
}

func TestEthDepositTxID(t *testing.T) {
	header := &MessageDelivered{MessageIndex: big.NewInt(12), Sender: caller, BaseFeeL1: big.NewInt(7)}
	got, err := EthDepositTxID(13746, header, &EthDeposit{To: dest, Value: big.NewInt(1_000)})
	if err != nil {
		t.Fatalf("EthDepositTxID() failed: %v", err)
	}
	enc, _ := rlp.EncodeToBytes([]any{big.NewInt(13746), common.BigToHash(big.NewInt(12)), caller, dest, big.NewInt(1_000)})
	if want := crypto.Keccak256Hash([]byte{0x64}, enc); got != want {
		t.Fatalf("deposit tx id = %s, want %s", got, want)
	}
}

func TestFindRedeemScheduled(t *testing.T) {
	ticket := crypto.Keccak256Hash([]byte("ticket"))
	retry := crypto.Keccak256Hash([]byte("retry"))
	ev := arbRetryableTxABI.Events["RedeemScheduled"]
	data, err := ev.Inputs.NonIndexed().Pack(uint64(21_000), dest, big.NewInt(1), big.NewInt(2))
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	log := &types.Log{
		Address: ArbRetryableTxAddress,
		Topics:  []common.Hash{ev.ID, ticket, retry, common.BigToHash(big.NewInt(0))},
		Data:    data,
	}

	got, ok := FindRedeemScheduled([]*types.Log{log}, ticket)
	if !ok {
		t.Fatal("expected redeem event")
	}
	if common.Hash(got.RetryTxHash) != retry || got.DonatedGas != 21_000 || got.GasDonor != dest {
		t.Fatalf("unexpected redeem event: %+v", got)
	}
	if _, ok := FindRedeemScheduled([]*types.Log{log}, retry); ok {
		t.Fatal("redeem for another ticket must not match")
	}
}
