/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: server listen port (default: 4280)
  - DatabaseURL: connection string or sqlite path (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - IPHashSalt: secret for vote audit IP hashing (required)
  - SweepInterval: background expiry sweep, zero disables it

# CLI Flags

	-p       Server port
	-d       Database URL
	-t       Database type
	-sweep   Sweep interval (e.g. 30s)
	-ip-salt IP hash salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SWEEP_INTERVAL → -sweep
	IP_HASH_SALT   → -ip-salt

CLI flags take precedence over environment variables.
*/
package cliparse
