package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/orchid-run/orchid/ent"
)

// newTestClient creates a test database client with CI/local environment
// detection. In CI (when CI_DATABASE_URL is set) it connects to the external
// PostgreSQL service container; locally it spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	var connStr string
	if ciDatabaseURL := os.Getenv("CI_DATABASE_URL"); ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration is enough for tests; production uses the embedded
	// SQL migrations.
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, CreateSearchIndexes(ctx, drv))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		client.Close()
	})
	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.Less(t, health.ResponseTime, int64(1000))
}

func TestFullTextSearchOverRunQueries(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	run1, err := client.Run.Create().
		SetID("run-fts-1").
		SetSeed(42).
		SetQuery("Compare sliding-window and token-bucket rate limiting strategies").
		Save(ctx)
	require.NoError(t, err)

	run2, err := client.Run.Create().
		SetID("run-fts-2").
		SetSeed(42).
		SetQuery("Explain memory pressure in container workloads").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT run_id FROM runs
		WHERE to_tsvector('english', query) @@ to_tsquery('english', $1)`,
		"rate & limiting",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var runID string
		require.NoError(t, rows.Scan(&runID))
		results = append(results, runID)
	}
	require.NoError(t, rows.Err())
	require.Len(t, results, 1)
	assert.Equal(t, run1.ID, results[0])

	rows2, err := client.DB().QueryContext(ctx,
		`SELECT run_id FROM runs
		WHERE to_tsvector('english', query) @@ to_tsquery('english', $1)`,
		"memory",
	)
	require.NoError(t, err)
	defer rows2.Close()

	results = results[:0]
	for rows2.Next() {
		var runID string
		require.NoError(t, rows2.Scan(&runID))
		results = append(results, runID)
	}
	require.NoError(t, rows2.Err())
	require.Len(t, results, 1)
	assert.Equal(t, run2.ID, results[0])
}

func TestRunStepCascade(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	run, err := client.Run.Create().
		SetID("run-cascade").
		SetSeed(42).
		SetQuery("What is 2+2?").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.StepExecution.Create().
		SetStepID(1).
		SetQuestion("What is 2+2?").
		SetRun(run).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, client.Run.DeleteOne(run).Exec(ctx))

	count, err := client.StepExecution.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "steps cascade with their run")
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid config with defaults",
			envVars: map[string]string{"DB_PASSWORD": "test"},
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
		},
		{
			name:        "invalid DB_PORT",
			envVars:     map[string]string{"DB_PORT": "invalid", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name:        "invalid DB_MAX_OPEN_CONNS",
			envVars:     map[string]string{"DB_MAX_OPEN_CONNS": "not_a_number", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name:        "invalid DB_CONN_MAX_LIFETIME",
			envVars:     map[string]string{"DB_CONN_MAX_LIFETIME": "invalid_duration", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:        "missing password",
			envVars:     map[string]string{},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				os.Setenv(key, val)
			}
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.name == "valid config with defaults" {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 10, cfg.MaxIdleConns)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Host: "localhost", Port: 5432, User: "test", Password: "test",
		Database: "test", SSLMode: "disable", MaxOpenConns: 10, MaxIdleConns: 5,
	}
	assert.NoError(t, valid.Validate())

	noPassword := valid
	noPassword.Password = ""
	assert.Error(t, noPassword.Validate())

	idleOverMax := valid
	idleOverMax.MaxIdleConns = 20
	assert.Error(t, idleOverMax.Validate())

	zeroOpen := valid
	zeroOpen.MaxOpenConns = 0
	assert.Error(t, zeroOpen.Validate())
}
