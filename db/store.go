// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/gafferdan11/paddleleague/cliparse"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypeBolt     = "bolt"
)

// Store is a durable key -> text store.
type Store interface {
	// Get returns the value stored under key. ok is false if the key has never been written.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// PutAll writes every entry in a single transaction.
	PutAll(ctx context.Context, entries map[string][]byte) error

	Close() error
}

// Open returns the Store selected by cfg.DatabaseType.
func Open(cfg cliparse.Config) (Store, error) {
	switch cfg.DatabaseType {
	case TypeSQLite, "":
		conn, err := sql.Open("sqlite", sqliteDSN(cfg.DatabaseURL))
		if err != nil {
			return nil, &Error{Err: err, Description: "Couldn't open sqlite database"}
		}
		// SQLite allows a single writer
		conn.SetMaxOpenConns(1)
		return newSQLStore(conn, TypeSQLite)
	case TypePostgres:
		conn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, &Error{Err: err, Description: "Couldn't open postgres database"}
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, &Error{Err: err, Description: "Couldn't reach postgres database"}
		}
		return newSQLStore(conn, TypePostgres)
	case TypeBolt:
		s, err := OpenBolt(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
}

func newSQLStore(conn *sql.DB, dialect string) (Store, error) {
	s, err := NewSQLStore(conn, dialect)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func sqliteDSN(url string) string {
	if strings.Contains(url, "?") {
		return url
	}
	return url + "?_pragma=busy_timeout(15000)&_pragma=journal_mode(WAL)"
}

type queryTag uint8

const (
	queryGet queryTag = iota
	queryPut
)

var queryStrings = map[string]map[queryTag]string{
	TypeSQLite: {
		queryGet: `SELECT value FROM kv WHERE key = ?`,
		queryPut: `
			INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
	},
	TypePostgres: {
		queryGet: `SELECT value FROM kv WHERE key = $1`,
		queryPut: `
			INSERT INTO kv (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
	},
}

// SQLStore keeps entries in the kv table of a SQL database.
type SQLStore struct {
	db    *sql.DB
	stmts map[queryTag]*sql.Stmt
}

// NewSQLStore creates the schema on conn and prepares the statements for
// dialect (TypeSQLite or TypePostgres). The store takes ownership of conn.
func NewSQLStore(conn *sql.DB, dialect string) (*SQLStore, error) {
	queries, ok := queryStrings[dialect]
	if !ok {
		conn.Close()
		return nil, fmt.Errorf("unsupported sql dialect %q", dialect)
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	s := &SQLStore{db: conn, stmts: make(map[queryTag]*sql.Stmt, len(queries))}
	for tag, query := range queries {
		stmt, err := conn.Prepare(query)
		if err != nil {
			s.Close()
			return nil, &Error{Err: err, Description: fmt.Sprintf("Couldn't prepare query %d", tag)}
		}
		s.stmts[tag] = stmt
	}

	return s, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.stmts[queryGet].QueryRowContext(ctx, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &Error{Err: err, Description: fmt.Sprintf("Couldn't read %s", key)}
	}
	return []byte(value), true, nil
}

func (s *SQLStore) PutAll(ctx context.Context, entries map[string][]byte) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &Error{Err: err, Description: "Couldn't start transaction"}
	}
	defer func() {
		if err != nil {
			if lErr := tx.Rollback(); lErr != nil {
				err = &Error{Err: lErr, Description: fmt.Sprintf("Couldn't rollback transaction; error causing rollback: %s", err)}
			}
			return
		}
		if lErr := tx.Commit(); lErr != nil {
			err = &Error{Err: lErr, Description: "Couldn't commit transaction"}
		}
	}()

	put := tx.StmtContext(ctx, s.stmts[queryPut])
	for _, key := range sortedKeys(entries) {
		if _, err = put.ExecContext(ctx, key, string(entries[key])); err != nil {
			return &Error{Err: err, Description: fmt.Sprintf("Couldn't write %s", key)}
		}
	}

	return nil
}

func (s *SQLStore) Close() error {
	for _, stmt := range s.stmts {
		stmt.Close()
	}
	return s.db.Close()
}

func sortedKeys(entries map[string][]byte) []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
