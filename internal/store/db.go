package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens the attempt database for driver and ensures the schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*SQLStore, error) {
	var drvName, schema string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		schema = schemaSQLite
		if dsn == "" {
			dsn = "voltlearn.db"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		schema = schemaPostgres
		if dsn == "" {
			dsn = "postgres://localhost:5432/voltlearn?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// One writer avoids SQLITE_BUSY from concurrent recorder workers.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &SQLStore{db: db, driver: driver}, nil
}

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS attempts (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    bank_id TEXT NOT NULL,
    score INTEGER NOT NULL,
    total INTEGER NOT NULL,
    percentage INTEGER NOT NULL,
    passed INTEGER NOT NULL,
    completed_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_bank ON attempts(bank_id, completed_at);

CREATE TABLE IF NOT EXISTS attempt_answers (
    attempt_id TEXT NOT NULL,
    question_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    chosen INTEGER NOT NULL,
    correct INTEGER NOT NULL,
    PRIMARY KEY (attempt_id, question_id),
    FOREIGN KEY (attempt_id) REFERENCES attempts(id) ON DELETE CASCADE
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS attempts (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    bank_id TEXT NOT NULL,
    score INTEGER NOT NULL,
    total INTEGER NOT NULL,
    percentage INTEGER NOT NULL,
    passed INTEGER NOT NULL,
    completed_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_bank ON attempts(bank_id, completed_at);

CREATE TABLE IF NOT EXISTS attempt_answers (
    attempt_id TEXT NOT NULL REFERENCES attempts(id) ON DELETE CASCADE,
    question_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    chosen INTEGER NOT NULL,
    correct INTEGER NOT NULL,
    PRIMARY KEY (attempt_id, question_id)
);
`
