package pgutil

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"go.uber.org/zap/zaptest"

	"github.com/chainsafe/bridge-tracker/pkg/config"
)

const (
	testDatabase = "tracker_test"
	testUser     = "tracker"
	testPassword = "tracker"
)

// RequireDocker skips the test when no docker daemon socket answers.
func RequireDocker(t *testing.T) {
	t.Helper()
	if !dockerReachable(dockerSockets()) {
		t.Skip("docker socket not reachable, skipping postgres tests")
	}
}

func dockerSockets() []string {
	return []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	}
}

func dockerReachable(candidates []string) bool {
	for _, sock := range candidates {
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return true
		}
	}
	return false
}

// SetupTestDB starts a postgres testcontainer and returns a connection to it
// along with a cleanup func that closes the connection and stops the container.
// The test is skipped when docker is not available.
func SetupTestDB(t *testing.T) (*bun.DB, func()) {
	t.Helper()
	RequireDocker(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		t.Fatalf("failed to get container port: %v", err)
	}

	cfg := &config.DatabaseConfig{
		Host:         host,
		Port:         port.Int(),
		User:         testUser,
		Password:     testPassword,
		Database:     testDatabase,
		SSLMode:      "disable",
		MaxOpenConns: 4,
	}

	logger := zaptest.NewLogger(t)
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = 100 * time.Millisecond
	db, err := backoff.RetryWithData(func() (*bun.DB, error) {
		return ConnectDB(ctx, cfg, logger)
	}, backoff.WithMaxRetries(expo, 10))
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		t.Fatalf("failed to connect to test database: %v", err)
	}

	cleanup := func() {
		_ = db.Close()
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
	return db, cleanup
}

// AssertTableExists fails the test when the table is missing from the public schema.
func AssertTableExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if !exists(t, db, "SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?", tableName) {
		t.Errorf("table %s does not exist", tableName)
	}
}

// AssertIndexExists fails the test when the index is missing from the public schema.
func AssertIndexExists(t *testing.T, db *bun.DB, indexName string) {
	t.Helper()
	if !exists(t, db, "SELECT 1 FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?", indexName) {
		t.Errorf("index %s does not exist", indexName)
	}
}

// AssertTableNotExists fails the test when the table is still present.
func AssertTableNotExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if exists(t, db, "SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?", tableName) {
		t.Errorf("table %s should not exist but it does", tableName)
	}
}

// AssertRowCount checks the number of rows in a table.
func AssertRowCount(t *testing.T, db *bun.DB, tableName string, expected int) {
	t.Helper()

	var count int
	err := db.NewSelect().
		TableExpr("?", bun.Ident(tableName)).
		ColumnExpr("COUNT(*)").
		Scan(context.Background(), &count)
	if err != nil {
		t.Fatalf("failed to count rows in table %s: %v", tableName, err)
	}
	if count != expected {
		t.Errorf("table %s: expected %d rows, got %d", tableName, expected, count)
	}
}

func exists(t *testing.T, db *bun.DB, query string, arg string) bool {
	t.Helper()

	var ok bool
	err := db.NewSelect().
		ColumnExpr("EXISTS ("+query+")", arg).
		Scan(context.Background(), &ok)
	if err != nil {
		t.Fatalf("exists query failed for %s: %v", arg, err)
	}
	return ok
}
