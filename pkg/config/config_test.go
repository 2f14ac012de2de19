package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const minimalConfig = `
history_feed:
  base_url: https://indexer.example.com
networks:
  Testnet:
    - name: sepolia
      chain_id: 11155111
      rpc_url: https://sepolia.example.com
    - name: arbitrum-sepolia
      chain_id: 421614
      parent_chain_id: 11155111
      rpc_url: https://arb-sepolia.example.com
      outbox: "0x65f07C7D521164a4d5DaC6eB8Fac8DA067A3B78F"
      challenge_period: 1h
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Retry.MaxRetries != 3 || cfg.Retry.Jitter != 0.5 {
		t.Errorf("retry defaults not applied: %+v", cfg.Retry)
	}
	if cfg.Poller.Interval != 30*time.Second {
		t.Errorf("poller.interval = %s", cfg.Poller.Interval)
	}
	if cfg.Store.Driver != StoreMemory {
		t.Errorf("store.driver = %s", cfg.Store.Driver)
	}
	if cfg.HistoryFeed.PageSize != 50 {
		t.Errorf("history_feed.page_size = %d", cfg.HistoryFeed.PageSize)
	}

	chains := cfg.Networks["Testnet"]
	if len(chains) != 2 {
		t.Fatalf("expected 2 testnet chains, got %d", len(chains))
	}
	if chains[0].ChallengePeriod != 168*time.Hour {
		t.Errorf("default challenge period = %s", chains[0].ChallengePeriod)
	}
	if chains[1].ChallengePeriod != time.Hour {
		t.Errorf("explicit challenge period overwritten: %s", chains[1].ChallengePeriod)
	}
	if chains[1].RetryableTimeout != 10*time.Minute {
		t.Errorf("retryable timeout = %s", chains[1].RetryableTimeout)
	}
	if chains[0].NativeCurrency.Symbol != "ETH" {
		t.Errorf("native currency default = %q", chains[0].NativeCurrency.Symbol)
	}
}

func TestParse_ExpandsEnvironment(t *testing.T) {
	t.Setenv("TRACKER_FEED_URL", "https://feed.internal")
	raw := strings.Replace(minimalConfig, "https://indexer.example.com", "${TRACKER_FEED_URL}", 1)

	cfg, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.HistoryFeed.BaseURL != "https://feed.internal" {
		t.Fatalf("base url = %s", cfg.HistoryFeed.BaseURL)
	}
}

func TestParse_Validation(t *testing.T) {
	cases := map[string]string{
		"missing feed url": strings.Replace(minimalConfig, "base_url: https://indexer.example.com", "page_size: 10", 1),
		"bad outbox":       strings.Replace(minimalConfig, "0x65f07C7D521164a4d5DaC6eB8Fac8DA067A3B78F", "not-an-address", 1),
		"postgres without user": minimalConfig + `
store:
  driver: postgres
`,
		"kafka without brokers": minimalConfig + `
kafka:
  enabled: true
`,
		"unknown field": minimalConfig + `
bogus: true
`,
	}

	for name, raw := range cases {
		if _, err := Parse([]byte(raw)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(minimalConfig), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"}); err != nil {
		t.Fatalf("NewLogger(console) failed: %v", err)
	}
	if _, err := NewLogger(LoggingConfig{Level: "loud", Format: "json"}); err == nil {
		t.Fatal("expected invalid level error")
	}
	if _, err := NewLogger(LoggingConfig{Level: "info", Format: "xml"}); err == nil {
		t.Fatal("expected unknown format error")
	}
}
