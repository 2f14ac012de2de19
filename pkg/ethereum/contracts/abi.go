// Package contracts holds the rollup contract ABIs the tracker talks to and
// typed helpers to encode calls and decode events.
package contracts

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// ArbSysMetaData is the ArbSys precompile subset used to locate withdrawal messages.
var ArbSysMetaData = &bind.MetaData{
	ABI: `[
	{"anonymous":false,"name":"L2ToL1Tx","type":"event","inputs":[
		{"indexed":false,"name":"caller","type":"address"},
		{"indexed":true,"name":"destination","type":"address"},
		{"indexed":true,"name":"hash","type":"uint256"},
		{"indexed":true,"name":"position","type":"uint256"},
		{"indexed":false,"name":"arbBlockNum","type":"uint256"},
		{"indexed":false,"name":"ethBlockNum","type":"uint256"},
		{"indexed":false,"name":"timestamp","type":"uint256"},
		{"indexed":false,"name":"callvalue","type":"uint256"},
		{"indexed":false,"name":"data","type":"bytes"}]}
]`,
}

// OutboxMetaData is the parent-chain Outbox subset used to resolve and execute
// withdrawal messages.
var OutboxMetaData = &bind.MetaData{
	ABI: `[
	{"name":"isSpent","type":"function","stateMutability":"view",
	 "inputs":[{"name":"index","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"name":"executeTransaction","type":"function","stateMutability":"nonpayable",
	 "inputs":[
		{"name":"proof","type":"bytes32[]"},
		{"name":"index","type":"uint256"},
		{"name":"l2Sender","type":"address"},
		{"name":"to","type":"address"},
		{"name":"l2Block","type":"uint256"},
		{"name":"l1Block","type":"uint256"},
		{"name":"l2Timestamp","type":"uint256"},
		{"name":"value","type":"uint256"},
		{"name":"data","type":"bytes"}],
	 "outputs":[]},
	{"anonymous":false,"name":"SendRootUpdated","type":"event","inputs":[
		{"indexed":true,"name":"outputRoot","type":"bytes32"},
		{"indexed":true,"name":"l2BlockHash","type":"bytes32"}]},
	{"name":"AlreadySpent","type":"error","inputs":[{"name":"index","type":"uint256"}]},
	{"name":"UnknownRoot","type":"error","inputs":[{"name":"root","type":"bytes32"}]},
	{"name":"BadPostUpgradeInit","type":"error","inputs":[]},
	{"name":"ProofTooLong","type":"error","inputs":[{"name":"proofLength","type":"uint256"}]},
	{"name":"PathNotMinimal","type":"error","inputs":[{"name":"index","type":"uint256"},{"name":"maxIndex","type":"uint256"}]}
]`,
}

// NodeInterfaceMetaData is the NodeInterface virtual contract subset used for
// fee estimation and outbox proofs.
var NodeInterfaceMetaData = &bind.MetaData{
	ABI: `[
	{"name":"gasEstimateComponents","type":"function","stateMutability":"payable",
	 "inputs":[
		{"name":"to","type":"address"},
		{"name":"contractCreation","type":"bool"},
		{"name":"data","type":"bytes"}],
	 "outputs":[
		{"name":"gasEstimate","type":"uint64"},
		{"name":"gasEstimateForL1","type":"uint64"},
		{"name":"baseFee","type":"uint256"},
		{"name":"l1BaseFeeEstimate","type":"uint256"}]},
	{"name":"constructOutboxProof","type":"function","stateMutability":"view",
	 "inputs":[{"name":"size","type":"uint64"},{"name":"leaf","type":"uint64"}],
	 "outputs":[
		{"name":"send","type":"bytes32"},
		{"name":"root","type":"bytes32"},
		{"name":"proof","type":"bytes32[]"}]}
]`,
}

// InboxMetaData is the parent-chain Inbox subset used to correlate deposits.
var InboxMetaData = &bind.MetaData{
	ABI: `[
	{"anonymous":false,"name":"InboxMessageDelivered","type":"event","inputs":[
		{"indexed":true,"name":"messageNum","type":"uint256"},
		{"indexed":false,"name":"data","type":"bytes"}]}
]`,
}

// BridgeMetaData is the parent-chain Bridge subset recording the header of
// every delivered message.
var BridgeMetaData = &bind.MetaData{
	ABI: `[
	{"anonymous":false,"name":"MessageDelivered","type":"event","inputs":[
		{"indexed":true,"name":"messageIndex","type":"uint256"},
		{"indexed":true,"name":"beforeInboxAcc","type":"bytes32"},
		{"indexed":false,"name":"inbox","type":"address"},
		{"indexed":false,"name":"kind","type":"uint8"},
		{"indexed":false,"name":"sender","type":"address"},
		{"indexed":false,"name":"messageDataHash","type":"bytes32"},
		{"indexed":false,"name":"baseFeeL1","type":"uint256"},
		{"indexed":false,"name":"timestamp","type":"uint64"}]}
]`,
}

// ArbRetryableTxMetaData is the ArbRetryableTx precompile subset used to
// follow a retryable ticket to its redemption.
var ArbRetryableTxMetaData = &bind.MetaData{
	ABI: `[
	{"anonymous":false,"name":"RedeemScheduled","type":"event","inputs":[
		{"indexed":true,"name":"ticketId","type":"bytes32"},
		{"indexed":true,"name":"retryTxHash","type":"bytes32"},
		{"indexed":true,"name":"sequenceNum","type":"uint64"},
		{"indexed":false,"name":"donatedGas","type":"uint64"},
		{"indexed":false,"name":"gasDonor","type":"address"},
		{"indexed":false,"name":"maxRefund","type":"uint256"},
		{"indexed":false,"name":"submissionFeeRefund","type":"uint256"}]}
]`,
}

var (
	arbSysABI         = mustABI(ArbSysMetaData)
	outboxABI         = mustABI(OutboxMetaData)
	nodeInterfaceABI  = mustABI(NodeInterfaceMetaData)
	inboxABI          = mustABI(InboxMetaData)
	bridgeABI         = mustABI(BridgeMetaData)
	arbRetryableTxABI = mustABI(ArbRetryableTxMetaData)
)

func mustABI(md *bind.MetaData) *abi.ABI {
	parsed, err := md.GetAbi()
	if err != nil {
		panic(fmt.Sprintf("invalid embedded abi: %v", err))
	}
	return parsed
}

// OutboxABI exposes the parsed outbox ABI for bound contract calls and revert decoding.
func OutboxABI() *abi.ABI { return outboxABI }

// NodeInterfaceABI exposes the parsed NodeInterface ABI.
func NodeInterfaceABI() *abi.ABI { return nodeInterfaceABI }

// ArbSysABI exposes the parsed ArbSys ABI.
func ArbSysABI() *abi.ABI { return arbSysABI }

// InboxABI exposes the parsed Inbox ABI.
func InboxABI() *abi.ABI { return inboxABI }

// BridgeABI exposes the parsed Bridge ABI.
func BridgeABI() *abi.ABI { return bridgeABI }

// ArbRetryableTxABI exposes the parsed ArbRetryableTx ABI.
func ArbRetryableTxABI() *abi.ABI { return arbRetryableTxABI }
