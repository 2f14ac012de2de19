// Package tracker implements app.Runner for the bridge tracker process.
package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/bridge-tracker/pkg/app/http"
	"github.com/chainsafe/bridge-tracker/pkg/auth"
	"github.com/chainsafe/bridge-tracker/pkg/chainstatus"
	"github.com/chainsafe/bridge-tracker/pkg/config"
	"github.com/chainsafe/bridge-tracker/pkg/ethereum"
	"github.com/chainsafe/bridge-tracker/pkg/execution"
	"github.com/chainsafe/bridge-tracker/pkg/fees"
	"github.com/chainsafe/bridge-tracker/pkg/historyfeed"
	"github.com/chainsafe/bridge-tracker/pkg/keys"
	"github.com/chainsafe/bridge-tracker/pkg/network"
	"github.com/chainsafe/bridge-tracker/pkg/notify"
	"github.com/chainsafe/bridge-tracker/pkg/pgutil"
	"github.com/chainsafe/bridge-tracker/pkg/poller"
	"github.com/chainsafe/bridge-tracker/pkg/reconcile"
	"github.com/chainsafe/bridge-tracker/pkg/recordstore"
	"github.com/chainsafe/bridge-tracker/pkg/retry"
	"github.com/chainsafe/bridge-tracker/pkg/status"
	trackerservice "github.com/chainsafe/bridge-tracker/pkg/tracker/service"
)

const (
	defaultRequestTimeout = 60 * time.Second
	statusCacheSize       = 10_000
	loginMaxAge           = 5 * time.Minute
)

// Server holds cfg to init the tracker process.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new tracker Server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run starts the pollers and the HTTP API. It blocks until an OS shutdown
// signal is received or a fatal server error occurs.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("tracker config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting bridge tracker",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("store", cfg.Store.Driver),
	)

	networks, err := network.FromConfig(cfg.Networks)
	if err != nil {
		return fmt.Errorf("load networks: %w", err)
	}

	store, closeStore, err := s.openStore(ctx, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	pool, err := ethereum.Dial(ctx, networks, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	policy := retry.FromConfig(cfg.Retry)
	feed, err := historyfeed.NewClient(cfg.HistoryFeed, policy, logger)
	if err != nil {
		return fmt.Errorf("create history feed client: %w", err)
	}

	publisher, err := s.openPublisher(logger)
	if err != nil {
		return err
	}
	defer func() { _ = publisher.Close() }()

	tracker, err := status.NewTracker(statusCacheSize)
	if err != nil {
		return err
	}

	resolver := chainstatus.NewResolver(pool, pool, networks, logger)
	locks := poller.NewKeyLocks()
	cycle := poller.NewCycle(
		reconcile.NewEngine(store, feed, logger),
		resolver,
		status.NewDeriver(networks),
		tracker,
		store,
		locks,
		publisher,
		cfg.Poller.Workers,
		logger,
	)
	manager := poller.NewManager(ctx, cycle, cfg.Poller.Interval, cfg.Poller.CycleTimeout, logger)
	defer manager.StopAll()

	tokens, err := s.tokenIssuer()
	if err != nil {
		return err
	}

	opts := trackerservice.Options{
		Tokens:      tokens,
		TokenIssuer: cfg.Auth.Issuer,
		LoginMaxAge: loginMaxAge,
		Publisher:   publisher,
	}
	if cfg.Signer.Enabled {
		trigger, err := s.newTrigger(pool, resolver, logger)
		if err != nil {
			return err
		}
		opts.Executor = trigger
	}

	estimator := fees.NewEstimator(pool, policy, cfg.Fees.MinGasLimit, logger)
	svc := trackerservice.NewLog(
		trackerservice.NewService(manager, store, locks, estimator, opts, logger),
		logger,
	)

	router := s.setupRouter(svc, tokens, manager, logger)

	// Pollers stop before the deferred store and client closes run.
	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server, manager.StopAll)
}

func (s *Server) openStore(ctx context.Context, logger *zap.Logger) (recordstore.Store, func(), error) {
	cfg := s.cfg
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		return recordstore.NewPGStore(db), func() { _ = db.Close() }, nil
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		logger.Info("Connected to redis", zap.String("addr", cfg.Redis.Addr))
		return recordstore.NewRedisStore(rdb, cfg.Redis.KeyPrefix, cfg.Redis.TTL), func() { _ = rdb.Close() }, nil
	default:
		logger.Warn("Using in-memory record store, records are lost on restart")
		return recordstore.NewMemoryStore(), func() {}, nil
	}
}

func (s *Server) openPublisher(logger *zap.Logger) (notify.Publisher, error) {
	if !s.cfg.Kafka.Enabled {
		return notify.Nop{}, nil
	}
	publisher, err := notify.NewKafkaPublisher(&s.cfg.Kafka, logger)
	if err != nil {
		return nil, fmt.Errorf("create kafka publisher: %w", err)
	}
	logger.Info("Publishing transfer events",
		zap.Strings("brokers", s.cfg.Kafka.Brokers),
		zap.String("topic", s.cfg.Kafka.Topic))
	return publisher, nil
}

func (s *Server) tokenIssuer() (*auth.TokenIssuer, error) {
	if !s.cfg.Auth.Enabled {
		return nil, nil
	}
	key, err := keys.DeriveKey([]byte(s.cfg.Auth.Secret), keys.PurposeAuthToken)
	if err != nil {
		return nil, fmt.Errorf("derive auth key: %w", err)
	}
	return auth.NewTokenIssuer(key, s.cfg.Auth.Issuer, s.cfg.Auth.TokenTTL)
}

func (s *Server) newTrigger(pool *ethereum.Pool, resolver *chainstatus.Resolver, logger *zap.Logger) (*execution.Trigger, error) {
	cfg := s.cfg.Signer
	key, err := keys.LoadSigner(cfg.EncryptedKey, []byte(cfg.MasterSecret))
	if err != nil {
		return nil, fmt.Errorf("load claim signer: %w", err)
	}

	var maxGasPrice *big.Int
	if cfg.MaxGasPrice != "" {
		v, ok := new(big.Int).SetString(cfg.MaxGasPrice, 10)
		if !ok {
			return nil, fmt.Errorf("invalid signer.max_gas_price %q", cfg.MaxGasPrice)
		}
		maxGasPrice = v
	}

	claimer := ethereum.NewClaimer(pool, key, maxGasPrice, cfg.MineTimeout, logger)
	logger.Info("Claim signer loaded", zap.String("address", claimer.Address().Hex()))
	return execution.NewTrigger(resolver, pool, claimer, logger), nil
}

func (s *Server) setupRouter(
	svc trackerservice.Service,
	tokens *auth.TokenIssuer,
	manager *poller.Manager,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultRequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":   "ready",
			"sessions": manager.Sessions(),
		})
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	r.Route("/api/v1", func(r chi.Router) {
		trackerservice.RegisterRoutes(r, svc, tokens, logger)
	})

	return r
}
