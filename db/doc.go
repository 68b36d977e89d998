// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists the league snapshots in a key-value store.

# Backends

Open picks the backend from the configured database type:

  - sqlite (default): modernc.org/sqlite, pure Go, file path as URL
  - postgres: github.com/lib/pq, connection string as URL
  - bolt: github.com/boltdb/bolt, file path as URL

	store, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

# Schema

The SQL backends share one table, created by CreateSchema:

	kv(key TEXT PRIMARY KEY, value TEXT NOT NULL)

Safe to call multiple times - uses IF NOT EXISTS. The bolt backend keeps
the same entries in a single "league" bucket.

# Writes

PutAll upserts every entry in one transaction, so a reader never sees a
partial snapshot.
*/
package db
