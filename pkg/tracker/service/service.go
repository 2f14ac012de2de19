package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

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
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

const maxSessionIDLength = 128

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrTransferNotFound = errors.New("transfer not found")
	ErrClaimsDisabled   = errors.New("claim signer not configured")
	ErrAuthDisabled     = errors.New("authentication not enabled")
)

// Sessions runs the pollers behind client sessions.
//
//go:generate mockery --name Sessions --output mocks --outpkg mocks --filename mock_sessions.go --with-expecter
type Sessions interface {
	Select(session string, id transfer.Identity) uint64
	Snapshot(session string) (*poller.Snapshot, bool)
	Stop(session string) bool
	RunOnce(ctx context.Context, id transfer.Identity) (*poller.Snapshot, error)
}

// Executor claims claimable withdrawals.
//
//go:generate mockery --name Executor --output mocks --outpkg mocks --filename mock_executor.go --with-expecter
type Executor interface {
	Execute(ctx context.Context, rec *transfer.Record, derived transfer.Status) (*ethereum.ClaimResult, error)
}

// FeeEstimator prices retryable tickets.
//
//go:generate mockery --name FeeEstimator --output mocks --outpkg mocks --filename mock_fee_estimator.go --with-expecter
type FeeEstimator interface {
	Estimate(ctx context.Context, req fees.Request) (*fees.Breakdown, error)
}

// Service defines the interface for the transfer tracking API
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	SelectSession(ctx context.Context, session string, req *tracker.SelectRequest) (*tracker.SessionResponse, error)
	StopSession(ctx context.Context, session string) error
	SessionTransfers(ctx context.Context, session string) (*tracker.TransfersResponse, error)
	Transfers(ctx context.Context, networkType, address string) (*tracker.TransfersResponse, error)
	Notifications(ctx context.Context, networkType, address string) (*tracker.NotificationsResponse, error)
	MarkSeen(ctx context.Context, networkType, address string) (*tracker.MarkSeenResponse, error)
	Claim(ctx context.Context, networkType, address, hash string) (*tracker.ClaimResponse, error)
	EstimateFee(ctx context.Context, req *fees.Request) (*fees.Breakdown, error)
	IssueToken(ctx context.Context, req *tracker.TokenRequest) (*tracker.TokenResponse, error)
}

// Options holds the optional collaborators of the service.
type Options struct {
	// Executor is nil when no claim signer is configured.
	Executor Executor
	// Tokens is nil when authentication is disabled.
	Tokens      *auth.TokenIssuer
	TokenIssuer string
	LoginMaxAge time.Duration
	Publisher   notify.Publisher
}

type trackerService struct {
	sessions  Sessions
	store     recordstore.Store
	locks     *poller.KeyLocks
	estimator FeeEstimator
	opts      Options
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new tracker service
func NewService(
	sessions Sessions,
	store recordstore.Store,
	locks *poller.KeyLocks,
	estimator FeeEstimator,
	opts Options,
	logger *zap.Logger,
) Service {
	if opts.Publisher == nil {
		opts.Publisher = notify.Nop{}
	}
	if opts.LoginMaxAge <= 0 {
		opts.LoginMaxAge = 5 * time.Minute
	}
	return &trackerService{
		sessions:  sessions,
		store:     store,
		locks:     locks,
		estimator: estimator,
		opts:      opts,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *trackerService) SelectSession(_ context.Context, session string, req *tracker.SelectRequest) (*tracker.SessionResponse, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}
	id, err := transfer.NewIdentity(req.Address, req.NetworkType)
	if err != nil {
		return nil, toServiceError(err)
	}

	gen := s.sessions.Select(session, id)
	return &tracker.SessionResponse{Session: session, Identity: id, Generation: gen}, nil
}

func (s *trackerService) StopSession(_ context.Context, session string) error {
	if err := validateSession(session); err != nil {
		return err
	}
	if !s.sessions.Stop(session) {
		return apperrors.ResourceNotFoundError(ErrSessionNotFound, "session not found")
	}
	return nil
}

func (s *trackerService) SessionTransfers(_ context.Context, session string) (*tracker.TransfersResponse, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}
	snap, ok := s.sessions.Snapshot(session)
	if !ok {
		return nil, apperrors.ResourceNotFoundError(ErrSessionNotFound, "session not found")
	}
	return &tracker.TransfersResponse{Pending: snap == nil, Snapshot: snap}, nil
}

func (s *trackerService) Transfers(ctx context.Context, networkType, address string) (*tracker.TransfersResponse, error) {
	id, err := transfer.NewIdentity(address, networkType)
	if err != nil {
		return nil, toServiceError(err)
	}
	snap, err := s.sessions.RunOnce(ctx, id)
	if err != nil {
		return nil, toServiceError(err)
	}
	return &tracker.TransfersResponse{Snapshot: snap}, nil
}

func (s *trackerService) Notifications(ctx context.Context, networkType, address string) (*tracker.NotificationsResponse, error) {
	id, err := transfer.NewIdentity(address, networkType)
	if err != nil {
		return nil, toServiceError(err)
	}
	records, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, toServiceError(err)
	}

	list := tracker.Notifications(records, s.now().Unix())
	return &tracker.NotificationsResponse{Notifications: list, Unseen: tracker.UnseenCount(list)}, nil
}

func (s *trackerService) MarkSeen(ctx context.Context, networkType, address string) (*tracker.MarkSeenResponse, error) {
	id, err := transfer.NewIdentity(address, networkType)
	if err != nil {
		return nil, toServiceError(err)
	}

	unlock := s.locks.Lock(id.StoreKey())
	defer unlock()

	records, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, toServiceError(err)
	}
	changed := tracker.MarkSeen(records)
	if err := s.store.PutMany(ctx, id, changed); err != nil {
		return nil, toServiceError(err)
	}
	return &tracker.MarkSeenResponse{Updated: len(changed)}, nil
}

// Claim refreshes the identity's statuses, executes the withdrawal when it is
// claimable and records the completion.
func (s *trackerService) Claim(ctx context.Context, networkType, address, hash string) (*tracker.ClaimResponse, error) {
	if s.opts.Executor == nil {
		return nil, apperrors.NotSupportedError(ErrClaimsDisabled, "claims are not enabled")
	}
	id, err := transfer.NewIdentity(address, networkType)
	if err != nil {
		return nil, toServiceError(err)
	}
	if err := transfer.ValidateTxHash("hash", hash); err != nil {
		return nil, toServiceError(err)
	}
	key := strings.ToLower(hash)

	snap, err := s.sessions.RunOnce(ctx, id)
	if err != nil {
		return nil, toServiceError(err)
	}
	var target *poller.Transfer
	for i := range snap.Transfers {
		if snap.Transfers[i].Key() == key {
			target = &snap.Transfers[i]
			break
		}
	}
	if target == nil {
		return nil, apperrors.ResourceNotFoundError(ErrTransferNotFound, "transfer not found")
	}

	rec := target.Record.Clone()
	result, err := s.opts.Executor.Execute(ctx, &rec, target.Derivation.Status)
	if err != nil {
		return nil, toServiceError(err)
	}

	now := s.now()
	prev := rec.Status
	// the claim is the parent-chain leg of the withdrawal
	rec.OriginHash = result.TxHash.Hex()
	rec.OriginTimestamp = transfer.Int64(now.Unix())
	status.Apply(&rec, transfer.StatusExecuted, now)
	if err := s.persist(ctx, id, rec); err != nil {
		// the claim is mined; the next poll will observe it on chain
		s.logger.Error("Failed to record executed withdrawal",
			zap.String("key", key),
			zap.String("tx_hash", result.TxHash.Hex()),
			zap.Error(err))
	}
	if err := s.opts.Publisher.Publish(ctx, []notify.Event{
		notify.NewEvent(notify.EventStatusChanged, id, rec, prev, now),
	}); err != nil {
		s.logger.Warn("Failed to publish claim event", zap.String("key", key), zap.Error(err))
	}

	return &tracker.ClaimResponse{
		Key:                 key,
		TxHash:              result.TxHash.Hex(),
		BlockNumber:         result.BlockNumber,
		GasUsed:             result.GasUsed,
		Status:              rec.Status,
		CompletionTimestamp: *rec.CompletionTimestamp,
	}, nil
}

func (s *trackerService) persist(ctx context.Context, id transfer.Identity, rec transfer.Record) error {
	unlock := s.locks.Lock(id.StoreKey())
	defer unlock()

	stored, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	for i := range stored {
		if stored[i].Key() == rec.Key() {
			rec.Seen = stored[i].Seen
			rec.IsNewlyObserved = stored[i].IsNewlyObserved
			break
		}
	}
	return s.store.PutMany(ctx, id, []transfer.Record{rec})
}

func (s *trackerService) EstimateFee(ctx context.Context, req *fees.Request) (*fees.Breakdown, error) {
	out, err := s.estimator.Estimate(ctx, *req)
	if err != nil {
		return nil, toServiceError(err)
	}
	return out, nil
}

func (s *trackerService) IssueToken(_ context.Context, req *tracker.TokenRequest) (*tracker.TokenResponse, error) {
	if s.opts.Tokens == nil {
		return nil, apperrors.NotSupportedError(ErrAuthDisabled, "authentication is not enabled")
	}
	if req.Message == "" || req.Signature == "" {
		return nil, apperrors.BadRequestError(nil, "message and signature required")
	}

	address, err := auth.VerifyLogin(s.opts.TokenIssuer, req.Message, req.Signature, s.opts.LoginMaxAge, s.now())
	if err != nil {
		return nil, apperrors.UnAuthorizedError(err, "invalid signature")
	}
	token, expires, err := s.opts.Tokens.Issue(address)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return &tracker.TokenResponse{Token: token, Address: address, ExpiresAt: expires.Unix()}, nil
}

func validateSession(session string) error {
	if session == "" || len(session) > maxSessionIDLength {
		return apperrors.BadRequestError(nil, "invalid session id")
	}
	return nil
}

// toServiceError maps the domain error taxonomy onto HTTP categories.
func toServiceError(err error) error {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}
	if errors.Is(err, fees.ErrFeeUnavailable) {
		return apperrors.RecoveringError(err, "fee estimate unavailable")
	}
	if ee, ok := transfer.AsExecution(err); ok {
		return apperrors.ClassifiedConflictError(err, ee.Error(), string(ee.Class))
	}

	var ve *transfer.ValidationError
	switch {
	case errors.As(err, &ve):
		return apperrors.BadRequestError(err, ve.Error())
	case transfer.IsChainState(err):
		return apperrors.RecoveringError(err, "chain state not yet available")
	case transfer.IsNetwork(err):
		return apperrors.DependencyFailureError(err, "upstream unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.TimeoutError(err, "request timed out")
	default:
		return apperrors.GeneralError(fmt.Errorf("tracker: %w", err))
	}
}
