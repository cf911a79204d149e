/*
Package main provides the entry point for the agora voting API server.

Agora is a topic-based voting service: authenticated members raise topics,
a session is opened for each topic, everyone votes YES or NO at most once,
and the tally decides APPROVED, REJECTED, or TIE.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=./agora.db IP_HASH_SALT=... go run .

Or with flags:

	go run . -p 4280 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path or PostgreSQL connection string
  - IP_HASH_SALT (-ip-salt): secret for vote audit IP hashing

Optional settings:

  - PORT (-p): server port (default: 4280)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - SWEEP_INTERVAL (-sweep): background expiry sweep, disabled by default

# Architecture

	handlers   HTTP adapters (topics, sessions, votes, results)
	router     Route definitions using Go 1.22+ routing
	middleware CORS, logging, JSON helpers
	service    VotingService façade over the domain packages
	topics     Topic store and atomic lifecycle transitions
	votes      Vote ledger (exactly-once casting)
	session    Session controller and lazy expiry
	tally      Count aggregation and outcome classification
	identity   Voter identity extraction, audit IP hashing
	models     Request/response and domain types, error taxonomy
	db         Schema creation
	cliparse   Configuration parsing

See package documentation for each component.
*/
package main
