package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/fees"
	"github.com/chainsafe/bridge-tracker/pkg/tracker"
)

const serviceName = "TrackerService"

const signatureDisplaySize = 16

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the tracker Service.
// It logs method exit, duration and errors. Read paths log at debug level.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) finish(method string, start time.Time, err error, debug bool, fields ...zap.Field) {
	fields = append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	}, fields...)

	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	if debug {
		ls.logger.Debug(method+" completed", fields...)
		return
	}
	ls.logger.Info(method+" completed", fields...)
}

// SelectSession wraps the service method with logging
func (ls *logService) SelectSession(
	ctx context.Context,
	session string,
	req *tracker.SelectRequest,
) (resp *tracker.SessionResponse, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("session", session),
			zap.String("address", req.Address),
			zap.String("network_type", req.NetworkType),
		}
		if resp != nil {
			fields = append(fields, zap.Uint64("generation", resp.Generation))
		}
		ls.finish("SelectSession", start, err, false, fields...)
	}()

	return ls.svc.SelectSession(ctx, session, req)
}

// StopSession wraps the service method with logging
func (ls *logService) StopSession(ctx context.Context, session string) (err error) {
	start := time.Now()
	defer func() {
		ls.finish("StopSession", start, err, false, zap.String("session", session))
	}()

	return ls.svc.StopSession(ctx, session)
}

// SessionTransfers wraps the service method with logging
func (ls *logService) SessionTransfers(ctx context.Context, session string) (resp *tracker.TransfersResponse, err error) {
	start := time.Now()
	defer func() {
		ls.finish("SessionTransfers", start, err, true, zap.String("session", session))
	}()

	return ls.svc.SessionTransfers(ctx, session)
}

// Transfers wraps the service method with logging
func (ls *logService) Transfers(ctx context.Context, networkType, address string) (resp *tracker.TransfersResponse, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("network_type", networkType),
			zap.String("address", address),
		}
		if resp != nil && resp.Snapshot != nil {
			fields = append(fields,
				zap.Int("transfers", len(resp.Snapshot.Transfers)),
				zap.Bool("feed_degraded", resp.Snapshot.FeedDegraded))
		}
		ls.finish("Transfers", start, err, true, fields...)
	}()

	return ls.svc.Transfers(ctx, networkType, address)
}

// Notifications wraps the service method with logging
func (ls *logService) Notifications(ctx context.Context, networkType, address string) (resp *tracker.NotificationsResponse, err error) {
	start := time.Now()
	defer func() {
		ls.finish("Notifications", start, err, true,
			zap.String("network_type", networkType),
			zap.String("address", address))
	}()

	return ls.svc.Notifications(ctx, networkType, address)
}

// MarkSeen wraps the service method with logging
func (ls *logService) MarkSeen(ctx context.Context, networkType, address string) (resp *tracker.MarkSeenResponse, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("network_type", networkType),
			zap.String("address", address),
		}
		if resp != nil {
			fields = append(fields, zap.Int("updated", resp.Updated))
		}
		ls.finish("MarkSeen", start, err, false, fields...)
	}()

	return ls.svc.MarkSeen(ctx, networkType, address)
}

// Claim wraps the service method with logging
func (ls *logService) Claim(ctx context.Context, networkType, address, hash string) (resp *tracker.ClaimResponse, err error) {
	start := time.Now()

	ls.logger.Info("Claim started",
		zap.String("service", serviceName),
		zap.String("method", "Claim"),
		zap.String("address", address),
		zap.String("hash", hash),
	)

	defer func() {
		fields := []zap.Field{zap.String("hash", hash)}
		if resp != nil {
			fields = append(fields,
				zap.String("tx_hash", resp.TxHash),
				zap.Uint64("gas_used", resp.GasUsed))
		}
		ls.finish("Claim", start, err, false, fields...)
	}()

	return ls.svc.Claim(ctx, networkType, address, hash)
}

// EstimateFee wraps the service method with logging
func (ls *logService) EstimateFee(ctx context.Context, req *fees.Request) (resp *fees.Breakdown, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.Uint64("chain_id", req.ChainID),
			zap.String("to", req.To.Hex()),
		}
		if resp != nil && resp.Fee != nil {
			fields = append(fields, zap.String("fee", resp.Fee.String()))
		}
		ls.finish("EstimateFee", start, err, true, fields...)
	}()

	return ls.svc.EstimateFee(ctx, req)
}

// IssueToken wraps the service method with logging
func (ls *logService) IssueToken(ctx context.Context, req *tracker.TokenRequest) (resp *tracker.TokenResponse, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.String("signature", redactSignature(req.Signature))}
		if resp != nil {
			fields = append(fields, zap.String("address", resp.Address))
		}
		ls.finish("IssueToken", start, err, false, fields...)
	}()

	return ls.svc.IssueToken(ctx, req)
}

// redactSignature keeps only the head of a signature
func redactSignature(sig string) string {
	if len(sig) <= signatureDisplaySize {
		return sig
	}
	return sig[:signatureDisplaySize] + "..."
}
