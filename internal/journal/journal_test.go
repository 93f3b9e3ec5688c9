// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package journal

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/uptrace/bun/dialect"
)

func openMemory(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(context.Background(), "sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestOpenUnsupportedType(t *testing.T) {
	if _, err := Open(context.Background(), "oracle", "x"); err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}

func TestOpenMapsPostgresDriver(t *testing.T) {
	orig := sqlOpenFunc
	defer func() { sqlOpenFunc = orig }()

	var gotDriver string
	sqlOpenFunc = func(driverName, dsn string) (*sql.DB, error) {
		gotDriver = driverName
		return nil, errors.New("no database")
	}

	if _, err := Open(context.Background(), "postgres", "postgres://localhost/none"); err == nil {
		t.Fatal("expected open error")
	}
	if gotDriver != "pgx" {
		t.Fatalf("driver = %q, want pgx", gotDriver)
	}
}

func TestCreateBunDBDialects(t *testing.T) {
	// mysql probes the server version on init, so hand it a live handle
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	cases := map[string]dialect.Name{
		"sqlite":   dialect.SQLite,
		"postgres": dialect.PG,
		"mysql":    dialect.MySQL,
		"unknown":  dialect.SQLite,
	}
	for dbType, want := range cases {
		db := createBunDB(sqlDB, dbType)
		if db == nil {
			t.Fatalf("createBunDB returned nil for %s", dbType)
		}
		if got := db.Dialect().Name(); got != want {
			t.Errorf("%s: dialect = %v, want %v", dbType, got, want)
		}
	}
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	j := openMemory(t)

	if j.Type() != "sqlite" {
		t.Fatalf("Type() = %q", j.Type())
	}

	events := []*Event{
		{ControlID: "remember", Kind: "checkbox", Action: ActionToggle},
		{ControlID: "login", Kind: "button", Action: ActionClick},
		{ControlID: "email", Kind: "email", Action: ActionSubmit},
	}
	for _, e := range events {
		if err := j.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
		if e.ID == 0 {
			t.Fatalf("Record did not assign an id to %s", e.ControlID)
		}
		if e.CreatedAt.IsZero() {
			t.Fatalf("Record did not stamp %s", e.ControlID)
		}
	}

	got, err := j.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List(2) returned %d events", len(got))
	}
	if got[0].ControlID != "email" || got[1].ControlID != "login" {
		t.Fatalf("List order = %s, %s; want newest first", got[0].ControlID, got[1].ControlID)
	}

	all, err := j.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List(0) returned %d events, want 3", len(all))
	}
}

func TestExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	j := openMemory(t)

	for _, id := range []string{"a", "b"} {
		if err := j.Record(ctx, &Event{ControlID: id, Kind: "link", Action: ActionBlur}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	var buf bytes.Buffer
	n, err := j.Export(ctx, &buf)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if n != 2 {
		t.Fatalf("Export wrote %d events, want 2", n)
	}

	events, err := ReadExport(&buf)
	if err != nil {
		t.Fatalf("ReadExport: %v", err)
	}
	if len(events) != 2 || events[0].ControlID != "a" || events[1].Action != ActionBlur {
		t.Fatalf("unexpected export contents: %+v", events)
	}
}

func TestExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	n, err := openMemory(t).Export(context.Background(), &buf)
	if err != nil || n != 0 {
		t.Fatalf("Export = %d, %v", n, err)
	}
	events, err := ReadExport(&buf)
	if err != nil {
		t.Fatalf("ReadExport: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}
