package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Store drivers
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config represents the bridge tracker configuration
type Config struct {
	Server      ServerConfig               `yaml:"server"`
	Logging     LoggingConfig              `yaml:"logging"`
	Monitoring  MonitoringConfig           `yaml:"monitoring"`
	HistoryFeed HistoryFeedConfig          `yaml:"history_feed"`
	Retry       RetryConfig                `yaml:"retry"`
	Poller      PollerConfig               `yaml:"poller"`
	Store       StoreConfig                `yaml:"store"`
	Database    DatabaseConfig             `yaml:"database"`
	Redis       RedisConfig                `yaml:"redis"`
	Kafka       KafkaConfig                `yaml:"kafka"`
	Signer      SignerConfig               `yaml:"signer"`
	Auth        AuthConfig                 `yaml:"auth"`
	Fees        FeesConfig                 `yaml:"fees"`
	Networks    map[string][]NetworkConfig `yaml:"networks" validate:"required,min=1,dive,min=1,dive"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled"`
}

// HistoryFeedConfig points at the external transfer indexer
type HistoryFeedConfig struct {
	BaseURL string `yaml:"base_url" validate:"required,url"`
	// NetworkBaseURLs overrides BaseURL per network type (Mainnet, Testnet).
	NetworkBaseURLs map[string]string `yaml:"network_base_urls" validate:"dive,url"`

	PageSize       int           `yaml:"page_size" default:"50" validate:"min=1,max=500"`
	MaxPages       int           `yaml:"max_pages" default:"20" validate:"min=1"`
	RequestTimeout time.Duration `yaml:"request_timeout" default:"10s"`
	UserAgent      string        `yaml:"user_agent" default:"bridge-tracker/1.0"`
}

// RetryConfig controls backoff for network-class errors
type RetryConfig struct {
	MaxRetries uint64        `yaml:"max_retries" default:"3"`
	BaseDelay  time.Duration `yaml:"base_delay" default:"500ms"`
	MaxDelay   time.Duration `yaml:"max_delay" default:"10s"`
	Jitter     float64       `yaml:"jitter" default:"0.5" validate:"min=0,max=1"`
}

// PollerConfig controls the reconciliation schedule
type PollerConfig struct {
	Interval     time.Duration `yaml:"interval" default:"30s"`
	Workers      int           `yaml:"workers" default:"4" validate:"min=1,max=64"`
	CycleTimeout time.Duration `yaml:"cycle_timeout" default:"2m"`
}

// StoreConfig selects the record store backend
type StoreConfig struct {
	Driver string `yaml:"driver" default:"memory" validate:"oneof=memory redis postgres"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"bridge_tracker"`
	SSLMode  string `yaml:"ssl_mode" default:"disable"`

	MaxOpenConns int           `yaml:"max_open_conns" default:"10" validate:"gte=1"`
	ConnTimeout  time.Duration `yaml:"conn_timeout" default:"5s"`
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	Addr      string        `yaml:"addr" default:"localhost:6379"`
	Password  string        `yaml:"password"`
	DB        int           `yaml:"db"`
	KeyPrefix string        `yaml:"key_prefix" default:"tracker:"`
	TTL       time.Duration `yaml:"ttl"`
}

// KafkaConfig contains the notification event stream settings
type KafkaConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Brokers  []string `yaml:"brokers"`
	Topic    string   `yaml:"topic" default:"bridge.transfers"`
	ClientID string   `yaml:"client_id" default:"bridge-tracker"`
}

// SignerConfig holds the encrypted claim signer key
type SignerConfig struct {
	Enabled      bool   `yaml:"enabled"`
	EncryptedKey string `yaml:"encrypted_key"`
	MasterSecret string `yaml:"master_secret"`
	// MaxGasPrice caps the suggested gas price in wei, empty means no cap.
	MaxGasPrice string        `yaml:"max_gas_price" validate:"omitempty,numeric"`
	MineTimeout time.Duration `yaml:"mine_timeout" default:"5m"`
}

// AuthConfig controls bearer tokens for state-changing endpoints
type AuthConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Issuer   string        `yaml:"issuer" default:"bridge-tracker"`
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"token_ttl" default:"1h"`
}

// FeesConfig tunes retryable submission parameters
type FeesConfig struct {
	MinGasLimit uint64 `yaml:"min_gas_limit" default:"300000"`
}

// NetworkConfig describes one chain of the rollup hierarchy
type NetworkConfig struct {
	Name             string               `yaml:"name" validate:"required"`
	ChainID          uint64               `yaml:"chain_id" validate:"required"`
	ParentChainID    uint64               `yaml:"parent_chain_id"`
	RPCURL           string               `yaml:"rpc_url" validate:"required,url"`
	ExplorerURL      string               `yaml:"explorer_url" validate:"omitempty,url"`
	Inbox            string               `yaml:"inbox" validate:"omitempty,eth_addr"`
	Bridge           string               `yaml:"bridge" validate:"omitempty,eth_addr"`
	Outbox           string               `yaml:"outbox" validate:"omitempty,eth_addr"`
	Rollup           string               `yaml:"rollup" validate:"omitempty,eth_addr"`
	ArbSys           string               `yaml:"arb_sys" validate:"omitempty,eth_addr"`
	NodeInterface    string               `yaml:"node_interface" validate:"omitempty,eth_addr"`
	ChallengePeriod  time.Duration        `yaml:"challenge_period" default:"168h"`
	RetryableTimeout time.Duration        `yaml:"retryable_timeout" default:"10m"`
	NativeCurrency   NativeCurrencyConfig `yaml:"native_currency"`
}

// NativeCurrencyConfig describes a chain's gas token
type NativeCurrencyConfig struct {
	Symbol   string `yaml:"symbol" default:"ETH"`
	Decimals int    `yaml:"decimals" default:"18"`
}

// Load loads configuration from file, expanding environment variables
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes, defaults and validates a YAML document
func Parse(raw []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(raw))

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewBufferString(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := setDefaults(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) error {
	if err := defaults.Set(cfg); err != nil {
		return err
	}
	// defaults does not descend into map values
	for name, chains := range cfg.Networks {
		for i := range chains {
			if err := defaults.Set(&chains[i]); err != nil {
				return err
			}
		}
		cfg.Networks[name] = chains
	}
	return nil
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	switch cfg.Store.Driver {
	case StorePostgres:
		if cfg.Database.Host == "" || cfg.Database.User == "" {
			return fmt.Errorf("database.host and database.user are required for the postgres store")
		}
	case StoreRedis:
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis store")
		}
	}
	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required when kafka is enabled")
	}
	if cfg.Signer.Enabled && (cfg.Signer.EncryptedKey == "" || cfg.Signer.MasterSecret == "") {
		return fmt.Errorf("signer.encrypted_key and signer.master_secret are required when the signer is enabled")
	}
	if cfg.Auth.Enabled && cfg.Auth.Secret == "" {
		return fmt.Errorf("auth.secret is required when auth is enabled")
	}
	return nil
}
