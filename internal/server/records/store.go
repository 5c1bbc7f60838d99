package records

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/backoffice/internal/dbx"
	"github.com/dmitrijs2005/backoffice/internal/server/migrations"
)

// Storage backends accepted by Open.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Store is an opened repository together with the database it owns, if any.
type Store struct {
	Repository
	db      *sql.DB
	dialect Dialect
}

// Close releases the database. It is a no-op for the memory backend.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// seams for tests
var (
	sqlOpen        = sql.Open
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.UpContext(ctx, db, dir, opts...)
	}
)

// Open opens the storage backend and brings its schema up to date.
// dsn is ignored for the memory backend.
func Open(ctx context.Context, storage, dsn string) (*Store, error) {
	var driver string
	var dialect Dialect
	switch storage {
	case StorageMemory, "":
		return &Store{Repository: NewMemoryRepository()}, nil
	case StoragePostgres:
		driver, dialect = "pgx", DialectPostgres
	case StorageSQLite:
		driver, dialect = "sqlite", DialectSQLite
	default:
		return nil, fmt.Errorf("unknown storage %q", storage)
	}

	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	return &Store{Repository: NewSQLRepository(db, dialect), db: db, dialect: dialect}, nil
}

// Seed creates every record of data, kinds in name order. On a database
// the whole seed is one transaction: either all records are created or
// none. It returns the number of records created.
func (s *Store) Seed(ctx context.Context, data map[string][]Fields) (int, error) {
	kinds := make([]string, 0, len(data))
	for k := range data {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	seed := func(ctx context.Context, repo Repository) (int, error) {
		n := 0
		for _, kind := range kinds {
			for _, f := range data[kind] {
				if _, err := repo.Create(ctx, kind, f); err != nil {
					return n, fmt.Errorf("seed %s: %w", kind, err)
				}
				n++
			}
		}
		return n, nil
	}

	if s.db == nil {
		return seed(ctx, s.Repository)
	}
	var n int
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		n, err = seed(ctx, NewSQLRepository(tx, s.dialect))
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// RunMigrations applies the embedded migrations of dialect to db.
func RunMigrations(ctx context.Context, db *sql.DB, dialect Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	gooseDialect := "pgx"
	if dialect == DialectSQLite {
		gooseDialect = "sqlite3"
	}
	if err := goose.SetDialect(gooseDialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, string(dialect))
}
