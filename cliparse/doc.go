// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite, postgres or bolt (default: sqlite)
  - DatabaseURL: file path (sqlite, bolt) or connection string (postgres)
  - LogFormat: text or json (default: text on a terminal, json otherwise)
  - LogLevel: debug, info, warn or error (default: info)
  - EnvFile: .env file loaded before reading the environment

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-log-format  Log format
	-log-level   Log level
	-env         Path to a .env file (default: .env, optional)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	LOG_FORMAT    → -log-format
	LOG_LEVEL     → -log-level

CLI flags take precedence over environment variables, and variables
already set in the environment take precedence over the .env file.

# Validation

ParseFlags returns an error if:

  - PORT is not a number or is out of range
  - the database type or log format is unknown
  - postgres is selected without a DATABASE_URL
  - an explicitly given .env file cannot be read
*/
package cliparse
