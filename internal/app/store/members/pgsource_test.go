package memberstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	memberstore "github.com/dalemusser/freelancehub/internal/app/store/members"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupPostgres opens a pool pinned to a throwaway schema.
func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("FREELANCEHUB_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("FREELANCEHUB_TEST_POSTGRES_DSN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	schema := "fh_test_" + uuid.NewString()[:8]
	admin, err := pgx.Connect(ctx, dsn)
	require.NoError(t, err)
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = schema
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, _ = admin.Exec(ctx, "DROP SCHEMA "+schema+" CASCADE")
		_ = admin.Close(ctx)
	})
	return pool
}

func TestPostgresSource_Loads(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	require.NoError(t, memberstore.EnsurePostgresSchema(ctx, pool))

	_, err := pool.Exec(ctx, `
		INSERT INTO members (id, position, name, expertise, tech_stack, available, bio) VALUES
			('b', 2, 'Beta', '{Data}', '{}', false, NULL),
			('a', 1, 'Alpha', '{Web,Data}', '{Go}', true, 'Hello');
		INSERT INTO member_work_history (member_id, position, project_name, company) VALUES
			('a', 2, 'Second', 'Acme'),
			('a', 1, 'First', 'Acme');
	`)
	require.NoError(t, err)

	store, err := memberstore.Open(ctx, memberstore.PostgresSource{Pool: pool})
	require.NoError(t, err)

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, []string{"Web", "Data"}, all[0].Expertise)
	assert.True(t, all[0].Available)
	require.NotNil(t, all[0].Bio)
	assert.Equal(t, "Hello", *all[0].Bio)
	require.Len(t, all[0].WorkHistory, 2)
	assert.Equal(t, "First", all[0].WorkHistory[0].ProjectName)
	assert.Equal(t, "Second", all[0].WorkHistory[1].ProjectName)

	assert.Nil(t, all[1].Bio)
	assert.Empty(t, all[1].WorkHistory)
}

func TestPostgresSource_NilPool(t *testing.T) {
	_, err := memberstore.PostgresSource{}.Load(context.Background())
	require.Error(t, err)
}
