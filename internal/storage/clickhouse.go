package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"quotemaster/internal/flight"
)

// ClickHouseConfig holds ClickHouse connection settings.
type ClickHouseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
}

// ParseArchive records every parse request in ClickHouse, so unrecognized
// formats can be pulled later when writing new extractors.
type ParseArchive struct {
	conn driver.Conn
}

// OpenParseArchive opens a connection to ClickHouse and ensures the schema.
func OpenParseArchive(ctx context.Context, cfg ClickHouseConfig) (*ParseArchive, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		DialTimeout:     10 * time.Second,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("open clickhouse: %w", err)
	}

	// Test the connection.
	if err := conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}

	a := &ParseArchive{conn: conn}
	if err := a.createSchema(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return a, nil
}

func (a *ParseArchive) Close() error {
	return a.conn.Close()
}

func (a *ParseArchive) createSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS parse_requests (
		timestamp   DateTime64(3),
		format      LowCardinality(String),
		leg_count   UInt16,
		raw_text    String,
		legs_json   String
	)
	ENGINE = MergeTree()
	PARTITION BY toYYYYMM(timestamp)
	ORDER BY (format, timestamp)
	SETTINGS index_granularity = 8192`

	if err := a.conn.Exec(ctx, query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Record archives one parse request with its result.
func (a *ParseArchive) Record(ctx context.Context, format, text string, legs []flight.Leg) error {
	legsJSON, err := json.Marshal(legs)
	if err != nil {
		return fmt.Errorf("marshal legs: %w", err)
	}

	err = a.conn.Exec(ctx, `
		INSERT INTO parse_requests (timestamp, format, leg_count, raw_text, legs_json)
		VALUES (?, ?, ?, ?, ?)
	`, time.Now().UTC(), format, uint16(len(legs)), text, string(legsJSON))
	if err != nil {
		return fmt.Errorf("insert parse request: %w", err)
	}
	return nil
}

// CountByFormat returns archived request counts grouped by detected format.
func (a *ParseArchive) CountByFormat(ctx context.Context) (map[string]uint64, error) {
	rows, err := a.conn.Query(ctx, `SELECT format, count() FROM parse_requests GROUP BY format`)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]uint64)
	for rows.Next() {
		var format string
		var count uint64
		if err := rows.Scan(&format, &count); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		counts[format] = count
	}
	return counts, rows.Err()
}
