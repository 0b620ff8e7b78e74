// Package store opens the configured persistence backend, brings its schema
// up to date, and hands back the repos the services depend on.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver for database/sql

	"github.com/pkordes/travel-planner/internal/config"
	"github.com/pkordes/travel-planner/internal/repo"
	"github.com/pkordes/travel-planner/migrations"
)

// Store bundles the repos for one open backend.
type Store struct {
	Accounts    repo.AccountRepo
	Itineraries repo.ItineraryRepo

	close func()
}

// Close releases the underlying pool or file handle.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open connects to the backend selected by cfg.StoreDriver and applies all
// pending migrations. Running it against an existing database is a no-op for
// the schema and never touches existing rows.
func Open(ctx context.Context, cfg config.Config, log *slog.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg.DatabaseURL, log)
	default:
		return openSQLite(ctx, cfg.SQLitePath, log)
	}
}

// SQLiteDSN builds a modernc.org/sqlite DSN for path with foreign keys on.
// SQLite leaves foreign keys off per connection unless asked, and owner_id
// is only enforced when they are on.
func SQLiteDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// OpenSQLiteDB opens (creating if needed) the SQLite file at path and
// migrates it. Exposed for tests and tools that need the raw *sql.DB.
func OpenSQLiteDB(ctx context.Context, path string, log *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("store.OpenSQLiteDB: open: %w", err)
	}
	// One writer at a time; the planner is a single local process.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store.OpenSQLiteDB: ping: %w", err)
	}
	if err := Migrate(ctx, db, goose.DialectSQLite3, migrations.SQLite, log); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func openSQLite(ctx context.Context, path string, log *slog.Logger) (*Store, error) {
	db, err := OpenSQLiteDB(ctx, path, log)
	if err != nil {
		return nil, err
	}
	log.Info("sqlite store ready", "path", path)

	return &Store{
		Accounts:    repo.NewSQLiteAccountRepo(db),
		Itineraries: repo.NewSQLiteItineraryRepo(db),
		close:       func() { _ = db.Close() },
	}, nil
}

func openPostgres(ctx context.Context, dsn string, log *slog.Logger) (*Store, error) {
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("store.openPostgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store.openPostgres: ping: %w", err)
	}

	// goose needs database/sql; borrow a *sql.DB view of the same pool.
	sqlDB := stdlib.OpenDBFromPool(pool)
	err = Migrate(ctx, sqlDB, goose.DialectPostgres, migrations.Postgres, log)
	_ = sqlDB.Close()
	if err != nil {
		pool.Close()
		return nil, err
	}
	log.Info("postgres store ready")

	return &Store{
		Accounts:    repo.NewAccountRepo(pool),
		Itineraries: repo.NewItineraryRepo(pool),
		close:       pool.Close,
	}, nil
}

// Migrate applies every pending migration in fsys and logs each one applied.
func Migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect, fsys fs.FS, log *slog.Logger) error {
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("store.Migrate: create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("store.Migrate: up: %w", err)
	}
	for _, r := range results {
		log.Info("migration applied",
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration_ms", r.Duration.Milliseconds(),
		)
	}
	return nil
}
