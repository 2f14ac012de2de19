package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/bridge-tracker/pkg/app/errors"
	"github.com/chainsafe/bridge-tracker/pkg/auth"
	"github.com/chainsafe/bridge-tracker/pkg/ethereum"
	"github.com/chainsafe/bridge-tracker/pkg/fees"
	"github.com/chainsafe/bridge-tracker/pkg/notify"
	"github.com/chainsafe/bridge-tracker/pkg/poller"
	"github.com/chainsafe/bridge-tracker/pkg/recordstore"
	"github.com/chainsafe/bridge-tracker/pkg/status"
	"github.com/chainsafe/bridge-tracker/pkg/tracker"
	"github.com/chainsafe/bridge-tracker/pkg/tracker/service/mocks"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

const (
	testAddress = "0x52908400098527886E0F7030069857D2E4169EE7"
	withdrawKey = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	depositKey  = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

var (
	testID  = transfer.Identity{Address: testAddress, NetworkType: transfer.Testnet}
	testNow = time.Unix(1_700_000_000, 0)
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events []notify.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type fixture struct {
	svc       Service
	sessions  *mocks.Sessions
	executor  *mocks.Executor
	estimator *mocks.FeeEstimator
	store     recordstore.Store
	publisher *recordingPublisher
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	f := &fixture{
		sessions:  mocks.NewSessions(t),
		executor:  mocks.NewExecutor(t),
		estimator: mocks.NewFeeEstimator(t),
		store:     recordstore.NewMemoryStore(),
		publisher: &recordingPublisher{},
	}
	if opts.Executor == nil {
		opts.Executor = f.executor
	}
	opts.Publisher = f.publisher
	f.svc = NewService(f.sessions, f.store, poller.NewKeyLocks(), f.estimator, opts, zap.NewNop())
	f.svc.(*trackerService).now = func() time.Time { return testNow }
	return f
}

func withdrawal() transfer.Record {
	return transfer.Record{
		Kind:                 transfer.Withdrawal,
		Amount:               "5",
		OriginChainID:        421614,
		DestinationChainID:   13746,
		DestinationHash:      withdrawKey,
		DestinationTimestamp: transfer.Int64(testNow.Unix() - 3600),
		Status:               transfer.StatusClaimable,
		StatusRank:           2,
		ClaimableTimestamp:   transfer.Int64(testNow.Unix() - 60),
		IsNewlyObserved:      true,
	}
}

func deposit() transfer.Record {
	return transfer.Record{
		Kind:                transfer.Deposit,
		Amount:              "7",
		OriginChainID:       421614,
		DestinationChainID:  13746,
		OriginHash:          depositKey,
		OriginTimestamp:     transfer.Int64(testNow.Unix() - 7200),
		Status:              transfer.StatusCompleted,
		StatusRank:          3,
		CompletionTimestamp: transfer.Int64(testNow.Unix() - 7000),
		IsNewlyObserved:     true,
	}
}

func snapshotWith(records ...transfer.Record) *poller.Snapshot {
	snap := &poller.Snapshot{Identity: testID, At: testNow}
	for _, r := range records {
		snap.Transfers = append(snap.Transfers, poller.Transfer{
			Record:     r,
			Derivation: status.Derivation{Status: r.Status, Rank: status.Rank(r.Status)},
		})
	}
	return snap
}

func requireCategory(t *testing.T, err error, cat apperrors.Category) *apperrors.ServiceError {
	t.Helper()
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if svcErr.Category != cat {
		t.Fatalf("category = %s, want %s", svcErr.Category, cat)
	}
	return svcErr
}

func TestSelectSession_NormalizesIdentity(t *testing.T) {
	f := newFixture(t, Options{})
	f.sessions.EXPECT().Select("s1", testID).Return(uint64(4)).Once()

	resp, err := f.svc.SelectSession(context.Background(), "s1", &tracker.SelectRequest{
		Address:     strings.ToLower(testAddress),
		NetworkType: "testnet",
	})
	if err != nil {
		t.Fatalf("SelectSession() failed: %v", err)
	}
	if resp.Identity != testID || resp.Generation != 4 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestSelectSession_RejectsInvalidInput(t *testing.T) {
	f := newFixture(t, Options{})

	cases := map[string]struct {
		session string
		req     tracker.SelectRequest
	}{
		"empty session":   {"", tracker.SelectRequest{Address: testAddress, NetworkType: "testnet"}},
		"bad address":     {"s1", tracker.SelectRequest{Address: "0x123", NetworkType: "testnet"}},
		"unknown network": {"s1", tracker.SelectRequest{Address: testAddress, NetworkType: "devnet"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.SelectSession(context.Background(), tc.session, &tc.req)
			requireCategory(t, err, apperrors.CategoryDataError)
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	f.sessions.EXPECT().Snapshot("s1").Return(nil, true).Once()
	resp, err := f.svc.SessionTransfers(ctx, "s1")
	if err != nil {
		t.Fatalf("SessionTransfers() failed: %v", err)
	}
	if !resp.Pending {
		t.Fatal("expected pending before the first cycle")
	}

	f.sessions.EXPECT().Snapshot("s2").Return(nil, false).Once()
	_, err = f.svc.SessionTransfers(ctx, "s2")
	requireCategory(t, err, apperrors.CategoryResourceNotFound)

	f.sessions.EXPECT().Stop("s1").Return(true).Once()
	if err := f.svc.StopSession(ctx, "s1"); err != nil {
		t.Fatalf("StopSession() failed: %v", err)
	}
	f.sessions.EXPECT().Stop("s1").Return(false).Once()
	requireCategory(t, f.svc.StopSession(ctx, "s1"), apperrors.CategoryResourceNotFound)
}

func TestTransfers_MapsUpstreamFailure(t *testing.T) {
	f := newFixture(t, Options{})
	f.sessions.EXPECT().RunOnce(mock.Anything, testID).
		Return(nil, transfer.NewNetworkError("history feed", errors.New("502"))).Once()

	_, err := f.svc.Transfers(context.Background(), "testnet", testAddress)
	requireCategory(t, err, apperrors.CategoryDependencyFailure)
}

func TestNotificationsAndMarkSeen(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	if err := f.store.PutMany(ctx, testID, []transfer.Record{withdrawal(), deposit()}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	resp, err := f.svc.Notifications(ctx, "testnet", testAddress)
	if err != nil {
		t.Fatalf("Notifications() failed: %v", err)
	}
	if len(resp.Notifications) != 2 || resp.Unseen != 2 {
		t.Fatalf("unexpected notifications %+v", resp)
	}
	if resp.Notifications[0].Key != withdrawKey {
		t.Fatalf("claimable notification must come first, got %s", resp.Notifications[0].Key)
	}

	seen, err := f.svc.MarkSeen(ctx, "testnet", testAddress)
	if err != nil {
		t.Fatalf("MarkSeen() failed: %v", err)
	}
	if seen.Updated != 2 {
		t.Fatalf("updated = %d, want 2", seen.Updated)
	}

	resp, _ = f.svc.Notifications(ctx, "testnet", testAddress)
	if resp.Unseen != 0 {
		t.Fatalf("unseen = %d after MarkSeen", resp.Unseen)
	}

	seen, _ = f.svc.MarkSeen(ctx, "testnet", testAddress)
	if seen.Updated != 0 {
		t.Fatalf("second MarkSeen updated %d records", seen.Updated)
	}
}

func TestClaim_RecordsExecution(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	stored := withdrawal()
	stored.Seen = true
	if err := f.store.PutMany(ctx, testID, []transfer.Record{stored}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	txHash := common.HexToHash("0x01")
	f.sessions.EXPECT().RunOnce(mock.Anything, testID).Return(snapshotWith(withdrawal(), deposit()), nil).Once()
	f.executor.EXPECT().
		Execute(mock.Anything, mock.MatchedBy(func(r *transfer.Record) bool { return r.Key() == withdrawKey }), transfer.StatusClaimable).
		Return(&ethereum.ClaimResult{TxHash: txHash, BlockNumber: 10, GasUsed: 90_000}, nil).Once()

	_, err := f.svc.Claim(ctx, "testnet", testAddress, "0x1234")
	requireCategory(t, err, apperrors.CategoryDataError)

	resp, err := f.svc.Claim(ctx, "testnet", testAddress, withdrawKey)
	if err != nil {
		t.Fatalf("Claim() failed: %v", err)
	}
	if resp.Status != transfer.StatusExecuted || resp.TxHash != txHash.Hex() || resp.CompletionTimestamp != testNow.Unix() {
		t.Fatalf("unexpected response %+v", resp)
	}

	records, _ := f.store.Get(ctx, testID)
	if len(records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(records))
	}
	got := records[0]
	if got.Status != transfer.StatusExecuted || got.CompletionTimestamp == nil || !got.Seen {
		t.Fatalf("stored record not updated: %+v", got)
	}
	if got.OriginHash != txHash.Hex() || got.OriginTimestamp == nil || *got.OriginTimestamp != testNow.Unix() {
		t.Fatalf("claim leg not recorded: hash=%q ts=%v", got.OriginHash, got.OriginTimestamp)
	}
	if got.Key() != withdrawKey {
		t.Fatalf("claim changed the record key to %s", got.Key())
	}

	if len(f.publisher.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(f.publisher.events))
	}
	ev := f.publisher.events[0]
	if ev.Type != notify.EventStatusChanged || ev.PreviousStatus != transfer.StatusClaimable || ev.Status != transfer.StatusExecuted {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestClaim_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.svc.(*trackerService).opts.Executor = nil
		_, err := f.svc.Claim(ctx, "testnet", testAddress, withdrawKey)
		requireCategory(t, err, apperrors.CategoryNotSupported)
	})

	t.Run("unknown transfer", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.sessions.EXPECT().RunOnce(mock.Anything, testID).Return(snapshotWith(deposit()), nil).Once()
		_, err := f.svc.Claim(ctx, "testnet", testAddress, withdrawKey)
		requireCategory(t, err, apperrors.CategoryResourceNotFound)
	})

	t.Run("revert class", func(t *testing.T) {
		f := newFixture(t, Options{})
		f.sessions.EXPECT().RunOnce(mock.Anything, testID).Return(snapshotWith(withdrawal()), nil).Once()
		f.executor.EXPECT().Execute(mock.Anything, mock.Anything, transfer.StatusClaimable).
			Return(nil, &transfer.ExecutionError{Class: transfer.AlreadyExecuted, Reason: "ALREADY_SPENT"}).Once()

		_, err := f.svc.Claim(ctx, "testnet", testAddress, withdrawKey)
		svcErr := requireCategory(t, err, apperrors.CategoryDataConflict)
		if svcErr.Class != string(transfer.AlreadyExecuted) {
			t.Fatalf("class = %q", svcErr.Class)
		}
		if len(f.publisher.events) != 0 {
			t.Fatal("no event expected for a failed claim")
		}
	})
}

func TestEstimateFee_MapsErrors(t *testing.T) {
	f := newFixture(t, Options{})
	req := &fees.Request{ChainID: 13746, To: common.HexToAddress(testAddress)}

	f.estimator.EXPECT().Estimate(mock.Anything, *req).
		Return(nil, errors.Join(fees.ErrFeeUnavailable, errors.New("rpc down"))).Once()
	_, err := f.svc.EstimateFee(context.Background(), req)
	requireCategory(t, err, apperrors.CategoryRecovering)

	f.estimator.EXPECT().Estimate(mock.Anything, fees.Request{}).
		Return(nil, transfer.NewValidationError("chainId", "0", errors.New("required"))).Once()
	_, err = f.svc.EstimateFee(context.Background(), &fees.Request{})
	requireCategory(t, err, apperrors.CategoryDataError)
}

func TestIssueToken(t *testing.T) {
	tokens, err := auth.NewTokenIssuer([]byte(strings.Repeat("k", 32)), "bridge-tracker", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() failed: %v", err)
	}
	f := newFixture(t, Options{Tokens: tokens, TokenIssuer: "bridge-tracker"})

	key, _ := crypto.GenerateKey()
	addr := crypto.PubkeyToAddress(key.PublicKey).Hex()
	msg := auth.LoginMessage("bridge-tracker", addr, testNow.Add(-time.Minute))
	sig, _ := auth.SignEIP191(msg, key)

	resp, err := f.svc.IssueToken(context.Background(), &tracker.TokenRequest{Message: msg, Signature: sig})
	if err != nil {
		t.Fatalf("IssueToken() failed: %v", err)
	}
	if !strings.EqualFold(resp.Address, addr) {
		t.Fatalf("address = %s, want %s", resp.Address, addr)
	}
	subject, err := tokens.Verify(resp.Token)
	if err != nil || !strings.EqualFold(subject, addr) {
		t.Fatalf("issued token does not verify: %s %v", subject, err)
	}

	other, _ := crypto.GenerateKey()
	forged, _ := auth.SignEIP191(msg, other)
	_, err = f.svc.IssueToken(context.Background(), &tracker.TokenRequest{Message: msg, Signature: forged})
	requireCategory(t, err, apperrors.CategoryUnauthorized)
}

func TestIssueToken_Disabled(t *testing.T) {
	f := newFixture(t, Options{})
	_, err := f.svc.IssueToken(context.Background(), &tracker.TokenRequest{Message: "m", Signature: "s"})
	requireCategory(t, err, apperrors.CategoryNotSupported)
}

func TestToServiceError(t *testing.T) {
	cases := map[string]struct {
		err  error
		want apperrors.Category
	}{
		"validation":    {transfer.NewValidationError("f", "v", errors.New("bad")), apperrors.CategoryDataError},
		"network":       {transfer.NewNetworkError("rpc", errors.New("down")), apperrors.CategoryDependencyFailure},
		"chain state":   {&transfer.ChainStateError{ChainID: 1, Reason: "no outbox"}, apperrors.CategoryRecovering},
		"execution":     {&transfer.ExecutionError{Class: transfer.GenericRevert}, apperrors.CategoryDataConflict},
		"fee":           {fees.ErrFeeUnavailable, apperrors.CategoryRecovering},
		"deadline":      {context.DeadlineExceeded, apperrors.CategoryConnectionTimeout},
		"unknown":       {errors.New("boom"), apperrors.CategoryGeneralError},
		"already typed": {apperrors.ForbiddenError(nil, "no"), apperrors.CategoryForbidden},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			requireCategory(t, toServiceError(tc.err), tc.want)
		})
	}
}
