package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The DDL is intentionally portable between PostgreSQL (lib/pq) and SQLite
// (modernc.org/sqlite): timestamps are always supplied by the caller, so no
// NOW() defaults appear here.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Topics
CREATE TABLE IF NOT EXISTS topic (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    created_by TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'WAITING' CHECK (status IN ('WAITING', 'OPEN', 'CLOSED')),
    opens_at TIMESTAMP,
    closes_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_topic_status ON topic(status);
CREATE INDEX IF NOT EXISTS idx_topic_created_at ON topic(created_at);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    topic_id TEXT NOT NULL REFERENCES topic(id),
    voter_id TEXT NOT NULL,
    choice TEXT NOT NULL CHECK (choice IN ('YES', 'NO')),
    cast_at TIMESTAMP NOT NULL,
    ip_hash TEXT,
    UNIQUE (topic_id, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_topic_id ON vote(topic_id);
`
