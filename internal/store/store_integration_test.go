package store

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const skipIntegrationTests = "BOOKSTORE_SKIP_INTEGRATION_TESTS"

// KVStoreSuite is a test suite for the PostgreSQL-backed KVStore.
type KVStoreSuite struct {
	suite.Suite
	pgContainer *postgres.PostgresContainer
	dbPool      *pgxpool.Pool
	store       KVStore
	logger      *slog.Logger
	ctx         context.Context
}

// SetupSuite starts a PostgreSQL container, applies the migrations and
// creates the store under test.
func (s *KVStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error
	s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	dbName := "bookstore_db"
	dbUser := "user"
	dbPassword := "password"

	// 1. Start a PostgreSQL container and wait for it to be ready.
	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:17.5-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("5432/tcp"),
		),
	)
	require.NoError(s.T(), err, "Failed to run PostgreSQL container")

	// 2. Get the connection string from the container
	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "Failed to get connection string from container")

	// 3. Create a new pgxpool instance using the connection string
	s.dbPool, err = pgxpool.New(s.ctx, connStr)
	require.NoError(s.T(), err, "Failed to create pgxpool")

	for i := range 10 {
		s.logger.Info("Pinging PostgreSQL database", "attempt", i+1)
		err = s.dbPool.Ping(s.ctx)
		if err == nil {
			break
		}
		time.Sleep(time.Second * 2)
	}
	require.NoError(s.T(), err, "Failed to connect to PostgreSQL after retries")

	// 4. Apply the kv_store migration
	wd, _ := os.Getwd()
	migrationsPath := filepath.Join(wd, "../../migrations")
	sourceURL := "file://" + migrationsPath
	m, err := migrate.New(sourceURL, connStr)
	require.NoError(s.T(), err, "Failed to create migrate instance")
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		_, _ = m.Close()
		require.NoError(s.T(), err, "Failed to apply migrations")
	}
	s.logger.Info("Migrations applied for integration tests")

	s.store = NewPgStore(s.dbPool)
	s.logger.Info("Initialization complete for KVStoreSuite")
}

// TearDownSuite cleans up resources after all tests in the suite have run.
func (s *KVStoreSuite) TearDownSuite() {
	s.logger.Info("Tearing down suite...")
	if s.dbPool != nil {
		s.dbPool.Close()
		s.logger.Info("DB pool closed.")
	}
	if s.pgContainer != nil {
		s.logger.Info("Terminating PostgreSQL container...")
		if err := s.pgContainer.Terminate(s.ctx); err != nil {
			s.logger.Warn("failed to terminate PostgreSQL container", "error", err)
		} else {
			s.logger.Info("PostgreSQL container terminated.")
		}
	}
}

func (s *KVStoreSuite) TestGet_KeyNotFound() {
	var dest map[string]any
	err := s.store.Get(s.ctx, "missing:key", &dest)
	assert.ErrorIs(s.T(), err, ErrKeyNotFound)
}

func (s *KVStoreSuite) TestSetGet_Roundtrip() {
	type cartItem struct {
		BookID   string `json:"bookId"`
		Quantity int32  `json:"quantity"`
	}
	items := []cartItem{{BookID: "3", Quantity: 2}, {BookID: "7", Quantity: 1}}

	err := s.store.Set(s.ctx, "cart:user-roundtrip", items)
	require.NoError(s.T(), err)

	var loaded []cartItem
	err = s.store.Get(s.ctx, "cart:user-roundtrip", &loaded)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), items, loaded)
}

func (s *KVStoreSuite) TestSet_ReplacesWholeValue() {
	err := s.store.Set(s.ctx, "books_initialized", false)
	require.NoError(s.T(), err)
	err = s.store.Set(s.ctx, "books_initialized", true)
	require.NoError(s.T(), err)

	var flag bool
	err = s.store.Get(s.ctx, "books_initialized", &flag)
	require.NoError(s.T(), err)
	assert.True(s.T(), flag)
}

func (s *KVStoreSuite) TestSet_ScalarAndArrayValues() {
	err := s.store.Set(s.ctx, "scalar", 42)
	require.NoError(s.T(), err)

	var n int
	require.NoError(s.T(), s.store.Get(s.ctx, "scalar", &n))
	assert.Equal(s.T(), 42, n)

	err = s.store.Set(s.ctx, "empty:list", []string{})
	require.NoError(s.T(), err)

	var list []string
	require.NoError(s.T(), s.store.Get(s.ctx, "empty:list", &list))
	assert.Empty(s.T(), list)
}

func TestKVStoreSuite(t *testing.T) {
	if os.Getenv(skipIntegrationTests) != "" {
		t.Skipf("Skipping integration tests because %s is set", skipIntegrationTests)
	}
	suite.Run(t, new(KVStoreSuite))
}
