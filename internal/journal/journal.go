// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package journal records what users did with controls (clicks, submits,
// blurs, toggles) in a SQL database. SQLite, PostgreSQL and MySQL are
// supported through bun.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/toeirei/navinput/internal/logging"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	// SQL drivers for the supported database types.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// Recorded actions.
const (
	ActionClick  = "click"
	ActionSubmit = "submit"
	ActionBlur   = "blur"
	ActionToggle = "toggle"
)

// Event is one recorded control action.
type Event struct {
	bun.BaseModel `bun:"table:control_events,alias:ce" json:"-"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	ControlID string    `bun:"control_id,notnull" json:"control_id"`
	Kind      string    `bun:"kind,notnull" json:"kind"`
	Action    string    `bun:"action,notnull" json:"action"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
}

// Journal is an open event journal.
type Journal struct {
	db     *bun.DB
	dbType string
}

// Open connects to the database and creates the events table if needed.
func Open(ctx context.Context, dbType, dsn string) (*Journal, error) {
	driverName := dbType
	// The pgx stdlib registers driver name "pgx"; map "postgres" to that driver.
	if dbType == "postgres" {
		driverName = "pgx"
	}

	switch dbType {
	case "sqlite", "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported database type: '%s'", dbType)
	}

	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// In-memory SQLite databases exist per connection.
	if dbType == "sqlite" && (dsn == ":memory:" || dsn == "file::memory:") {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	j := &Journal{db: createBunDB(sqlDB, dbType), dbType: dbType}
	if err := j.migrate(ctx); err != nil {
		_ = j.Close()
		return nil, fmt.Errorf("failed to prepare journal: %w", err)
	}
	logging.Debugf("journal: opened %s in %s", dbType, time.Since(start))
	return j, nil
}

// createBunDB wraps sqlDB with the bun dialect for dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

func (j *Journal) migrate(ctx context.Context) error {
	_, err := j.db.NewCreateTable().
		Model((*Event)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// Record stores e and fills in its id and timestamp.
func (j *Journal) Record(ctx context.Context, e *Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if _, err := j.db.NewInsert().Model(e).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("record %s/%s: %w", e.ControlID, e.Action, err)
	}
	return nil
}

// List returns up to limit events, newest first. A limit <= 0 returns all.
func (j *Journal) List(ctx context.Context, limit int) ([]Event, error) {
	var events []Event
	q := j.db.NewSelect().Model(&events).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Type returns the database type the journal was opened with.
func (j *Journal) Type() string {
	return j.dbType
}

// Close releases the database.
func (j *Journal) Close() error {
	return j.db.Close()
}
