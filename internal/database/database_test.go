package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/FoodCost_Go/internal/testing/leaktest"
)

var (
	testDBConnString string
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		testDBConnString = connStr
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool("://not a url", 5, time.Minute, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	_, err := Migrate(context.Background(), nil, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownDialect)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "food_cost.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	applied, err := Migrate(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	// Running again is a no-op
	applied, err = Migrate(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Zero(t, applied)

	for _, table := range []string{"ingredients", "recipes", "recipe_items"} {
		var name string
		err := db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestOpenSQLite_ForeignKeysEnabled(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "fk.db"))
	require.NoError(t, err)
	defer db.Close()

	var enabled int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}

func TestMigratePool_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := NewPool(testDBConnString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()
	_, err = MigratePool(ctx, pool)
	require.NoError(t, err)

	applied, err := MigratePool(ctx, pool)
	require.NoError(t, err)
	assert.Zero(t, applied)

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM ingredients").Scan(&count))
}

// TestPool_ConcurrentAccess checks connections and goroutines are released
func TestPool_ConcurrentAccess(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := NewPool(testDBConnString, 10, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			var result int
			if err := pool.QueryRow(context.Background(), "SELECT $1::int", id).Scan(&result); err != nil {
				t.Errorf("worker %d query failed: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "All connections should be released")
	checker.Check(2)
}
