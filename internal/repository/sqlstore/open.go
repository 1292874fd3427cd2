package sqlstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"

	"github.com/lib/pq"
	"modernc.org/sqlite"

	"weddingrsvp/internal/domain"
)

// OpenPostgres opens and pings a postgres pool. The guests table is managed outside this service.
func OpenPostgres(ctx context.Context, url string) (*sql.DB, error) {
	connector, err := pq.NewConnector(url)
	if err != nil {
		return nil, fmt.Errorf("parse postgres url: %w", err)
	}
	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// sqlite's built-in lower() only folds ASCII; ulower folds every Unicode letter.
var registerFuncs = sync.OnceValue(func() error {
	return sqlite.RegisterDeterministicScalarFunction("ulower", 1, unicodeLower)
})

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// OpenSQLite opens a sqlite database at path and creates the guests table if needed.
// ":memory:" is limited to one connection so every operation sees the same database.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if err := registerFuncs(); err != nil {
		return nil, fmt.Errorf("register sqlite functions: %w", err)
	}
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := CreateSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// CreateSchema creates the guests table. Safe to call multiple times.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS guests (
    id TEXT PRIMARY KEY,
    last_name TEXT NOT NULL,
    address TEXT NOT NULL,
    max_attending INTEGER NOT NULL CHECK (max_attending >= 0),
    num_attending INTEGER NOT NULL DEFAULT 0 CHECK (num_attending >= 0 AND num_attending <= max_attending),
    is_attending BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_guests_address ON guests(address);
`

// Seed inserts guests created out-of-band, such as fixtures loaded at startup in development.
// Existing ids are left untouched. Placeholders follow the sqlite dialect.
// Ids travel in the rsvp cookie, so they must be printable ASCII without '"', ';' or a backslash.
func Seed(ctx context.Context, db *sql.DB, guests []domain.Guest) error {
	const insert = `
		INSERT INTO guests (id, last_name, address, max_attending, num_attending, is_attending)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`
	for _, g := range guests {
		if _, err := db.ExecContext(ctx, insert, g.ID, g.LastName, g.Address, g.MaxAttending, g.NumAttending, g.IsAttending); err != nil {
			return fmt.Errorf("seed guest %s: %w", g.ID, err)
		}
	}
	return nil
}
