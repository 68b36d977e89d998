// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/boltdb/bolt"
)

// BoltStore keeps entries in a single bucket of a BoltDB file.
type BoltStore struct {
	db *bolt.DB
}

var leagueBucket = []byte("league")

// OpenBolt opens (or creates) the BoltDB file at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, &Error{Err: err, Description: "Couldn't open bolt database"}
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(leagueBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, &Error{Err: err, Description: "Couldn't create league Bucket"}
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(leagueBucket)
		if b == nil {
			return &Error{Description: "Database league Bucket was nil"}
		}
		// Values are only valid for the life of the transaction
		if v := b.Get([]byte(key)); v != nil {
			value = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return value, value != nil, nil
}

func (s *BoltStore) PutAll(ctx context.Context, entries map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(leagueBucket)
		if b == nil {
			return &Error{Description: "Database league Bucket was nil"}
		}
		for _, key := range sortedKeys(entries) {
			if err := b.Put([]byte(key), entries[key]); err != nil {
				return &Error{Err: err, Description: fmt.Sprintf("Couldn't write %s", key)}
			}
		}
		return nil
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
