// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the paddle league server.

The server keeps a small doubles league: five teams, a fixed ten match
schedule, write-once results worth three points a win, and free-form 1 to 5
star ratings for players. State is stored as three JSON snapshots
("teams", "results", "ratings") in a key-value store.

# Starting the Server

With no configuration the server uses a SQLite file in the working directory:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Settings come from flags, then environment variables, then a .env file:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or bolt (default: sqlite)
  - DATABASE_URL (-d): File path or connection string (required for postgres)
  - LOG_FORMAT (-log-format): text or json (default: text on a terminal)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)
  - -env: Path to a .env file (default: .env, optional)

# Architecture

  - league: Teams, schedule, results, ratings and the derived views
  - db: Snapshot stores (SQLite, PostgreSQL, Bolt)
  - handlers: Scoreboard page and JSON API
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request IDs, CORS, logging, JSON helpers
  - models: Request/response types
  - logging: slog setup
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
