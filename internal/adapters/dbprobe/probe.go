// Package dbprobe reports connectivity for the optional gallery database.
//
// The database is an optional external resource: the probe attempts to
// connect and reports what it finds as human-readable status strings.
// No failure here is ever propagated to the caller.
package dbprobe

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver
	_ "modernc.org/sqlite"             // sqlite driver
)

const (
	// At most this many collection (table) names are reported.
	maxCollections = 10

	// Error messages embedded in the report are truncated to this length.
	maxErrorLen = 50
)

// Report is the diagnostic payload returned by a probe.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Prober attempts to connect to the optional database and reports status.
type Prober interface {
	Probe(ctx context.Context) Report
}

// New returns a Prober for the given DSN. An empty DSN yields a prober
// that reports the database as not configured. A postgres:// or
// postgresql:// DSN selects the pgx driver; anything else is treated as
// a SQLite path.
func New(dsn string) Prober {
	if dsn == "" {
		return unavailableProber{}
	}
	return &sqlProber{
		dsn:    dsn,
		driver: driverFor(dsn),
	}
}

func driverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite"
}

// unavailableProber is used when no DSN is configured.
type unavailableProber struct{}

func (unavailableProber) Probe(_ context.Context) Report {
	return Report{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		DatabaseName:     "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
}

// sqlProber probes a SQL database through database/sql.
type sqlProber struct {
	dsn    string
	driver string
}

// Probe connects, lists up to ten table names, and reports the outcome.
// Every failure degrades to a status string; a panic from a driver is
// recovered and embedded the same way.
func (p *sqlProber) Probe(ctx context.Context) (report Report) {
	report = Report{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "set",
		DatabaseName:     "unknown",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	defer func() {
		if rec := recover(); rec != nil {
			report.Database = "error: " + truncate(fmt.Sprint(rec))
		}
	}()

	db, err := sql.Open(p.driver, p.dsn)
	if err != nil {
		report.Database = "error: " + truncate(err.Error())
		return report
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		report.Database = "error: " + truncate(err.Error())
		return report
	}

	report.ConnectionStatus = "connected"
	report.Database = "available"
	report.DatabaseName = p.databaseName(ctx, db)

	names, err := p.collections(ctx, db)
	if err != nil {
		report.Database = "connected but error: " + truncate(err.Error())
		return report
	}

	report.Collections = names
	report.Database = "connected and working"
	return report
}

func (p *sqlProber) databaseName(ctx context.Context, db *sql.DB) string {
	if p.driver == "pgx" {
		var name string
		if err := db.QueryRowContext(ctx, "SELECT current_database()").Scan(&name); err != nil {
			return "unknown"
		}
		return name
	}
	// SQLite: the DSN is a file path, possibly with a file: scheme.
	return filepath.Base(strings.TrimPrefix(p.dsn, "file:"))
}

func (p *sqlProber) collections(ctx context.Context, db *sql.DB) ([]string, error) {
	query := "SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name LIMIT ?"
	args := []any{maxCollections}
	if p.driver == "pgx" {
		query = "SELECT tablename FROM pg_catalog.pg_tables WHERE schemaname = 'public' ORDER BY tablename LIMIT $1"
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	return names, nil
}

func truncate(msg string) string {
	if len(msg) > maxErrorLen {
		return msg[:maxErrorLen]
	}
	return msg
}
