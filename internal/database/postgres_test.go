package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr, downErr error }

func (f fakeMigrator) Up() error   { return f.upErr }
func (f fakeMigrator) Down() error { return f.downErr }

func restore() {
	pgxpoolNew = pgxpool.New
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// stubMigrationDeps 讓 migration 流程走到 migrateNewWithInstance 為止
func stubMigrationDeps(m migrateInstance, err error) {
	sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
		return m, err
	}
}

func TestNewPgxPool(t *testing.T) {
	t.Cleanup(restore)
	pgxpoolNew = func(ctx context.Context, url string) (*pgxpool.Pool, error) { return nil, errors.New("bad") }
	_, err := NewPgxPool(context.Background(), "postgresql://localhost/starwars")
	require.Error(t, err)

	var gotURL string
	pgxpoolNew = func(ctx context.Context, url string) (*pgxpool.Pool, error) {
		gotURL = url
		return &pgxpool.Pool{}, nil
	}
	db, err := NewPgxPool(context.Background(), "postgres://localhost/starwars")
	require.NoError(t, err)
	require.NotNil(t, db)
	require.Equal(t, "postgres://localhost/starwars", gotURL)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name()] = true
	}
	require.True(t, names["000001_create_catalog.up.sql"])
	require.True(t, names["000001_create_catalog.down.sql"])
}

func TestRunMigrations(t *testing.T) {
	t.Run("open error", func(t *testing.T) {
		t.Cleanup(restore)
		sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
		require.Error(t, RunMigrations("url"))
	})

	t.Run("driver error", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationDeps(fakeMigrator{}, nil)
		postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
		require.Error(t, RunMigrations("url"))
	})

	t.Run("source error", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationDeps(fakeMigrator{}, nil)
		iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("src") }
		require.Error(t, RunMigrations("url"))
	})

	t.Run("init error", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationDeps(nil, errors.New("mig"))
		require.Error(t, RunMigrations("url"))
	})

	t.Run("up error", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationDeps(fakeMigrator{upErr: errors.New("u")}, nil)
		require.Error(t, RunMigrations("url"))
	})

	t.Run("no change is ok", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationDeps(fakeMigrator{upErr: migrate.ErrNoChange}, nil)
		require.NoError(t, RunMigrations("url"))
	})
}

func TestRollbackAll(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationDeps(fakeMigrator{}, nil)
		require.NoError(t, RollbackAll("url"))
	})

	t.Run("open error", func(t *testing.T) {
		t.Cleanup(restore)
		sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
		require.Error(t, RollbackAll("url"))
	})

	t.Run("no change is ok", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationDeps(fakeMigrator{downErr: migrate.ErrNoChange}, nil)
		require.NoError(t, RollbackAll("url"))
	})

	t.Run("down error", func(t *testing.T) {
		t.Cleanup(restore)
		stubMigrationDeps(fakeMigrator{downErr: errors.New("d")}, nil)
		require.Error(t, RollbackAll("url"))
	})
}
