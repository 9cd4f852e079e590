package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/paradize/restodocs/gen/ent"
)

// InMemoryDSN keeps one shared in-memory database across all connections of
// the process, which is what the batch CLI needs.
const InMemoryDSN = "file:restodocs?mode=memory&cache=shared&_pragma=foreign_keys(1)"

// OpenSQLite opens a SQLite database (pure-Go driver, no cgo) and migrates
// the schema. Used by the batch CLI for throwaway local runs.
func OpenSQLite(ctx context.Context, dsn string, logger *slog.Logger) (*ent.Client, error) {
	logger.Info("opening sqlite database", "dsn", dsn)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		return nil, err
	}
	// in-memory databases vanish when their last connection closes
	db.SetMaxIdleConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		logger.Error("failed to create sqlite schema", "error", err)
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
