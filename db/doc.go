/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - topic: topic metadata and lifecycle state
  - vote: one vote per voter per topic

# Constraints

The two constraints the whole service leans on:

  - topic.status CHECK limits rows to WAITING, OPEN, or CLOSED; the
    forward-only ordering of those states is enforced by conditional
    updates in the topics package.
  - vote UNIQUE (topic_id, voter_id) makes duplicate casts lose at the
    database, which is what keeps concurrent casts exactly-once.

# Portability

The same DDL and queries run on PostgreSQL and SQLite: $N placeholders bind
positionally on both drivers, timestamps are passed as parameters rather
than generated with NOW(), and no Postgres-only types are used.
*/
package db
