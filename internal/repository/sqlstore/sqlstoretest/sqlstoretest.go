// Package sqlstoretest opens migrated in-memory stores for tests.
package sqlstoretest

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/mediflow/mediflow-api/internal/config"
	"github.com/mediflow/mediflow-api/internal/repository/sqlstore"
)

// OpenDB returns a migrated in-memory sqlite database closed with the test.
func OpenDB(t testing.TB) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := sqlstore.NewDB(ctx, config.DatabaseConfig{URL: "sqlite://:memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlstore.Migrate(ctx, db))
	return db
}

// Open returns repositories over a fresh database.
func Open(t testing.TB) *sqlstore.Repositories {
	t.Helper()
	return sqlstore.NewRepositories(OpenDB(t))
}
