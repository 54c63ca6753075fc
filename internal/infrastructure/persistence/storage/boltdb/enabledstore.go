//go:build linux

// Package boltdb provides a BoltDB-backed adapter for persisting each
// service's enabled bit across daemon restarts and config reloads.
package boltdb

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// bucketEnabled holds one key per service name, mapping to a single byte:
// 1 if enabled, 0 if disabled.
var bucketEnabled = []byte("enabled")

const (
	// openTimeout bounds how long Open waits for the file lock.
	openTimeout = 5 * time.Second
	// filePermissions restricts the database file to owner access.
	filePermissions = 0o600
	// enabledByte and disabledByte are the on-disk encodings of the bit.
	enabledByte  byte = 1
	disabledByte byte = 0
)

// EnabledStore persists the enabled/disabled bit for each known service.
type EnabledStore struct {
	db *bolt.DB
}

// NewEnabledStore opens (creating if absent) a BoltDB file at path and
// ensures its schema is in place.
//
// Params:
//   - path: filesystem path to the BoltDB file.
//
// Returns:
//   - *EnabledStore: the opened store.
//   - error: non-nil if the file could not be opened or the bucket created.
func NewEnabledStore(path string) (*EnabledStore, error) {
	db, err := bolt.Open(path, filePermissions, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open boltdb: %w", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketEnabled)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &EnabledStore{db: db}, nil
}

// SetEnabled persists whether service is enabled.
//
// Params:
//   - service: the service name.
//   - enabled: the value to persist.
//
// Returns:
//   - error: non-nil on a write failure.
func (s *EnabledStore) SetEnabled(service string, enabled bool) error {
	value := disabledByte
	if enabled {
		value = enabledByte
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEnabled).Put([]byte(service), []byte{value})
	})
}

// IsEnabled returns the persisted enabled bit for service, and whether a
// value has ever been persisted for it.
//
// Params:
//   - service: the service name.
//
// Returns:
//   - bool: the persisted value, or false if none was ever set.
//   - bool: whether a value was found.
//   - error: non-nil on a read failure.
func (s *EnabledStore) IsEnabled(service string) (enabled bool, found bool, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketEnabled).Get([]byte(service))
		if v == nil {
			return nil
		}
		found = true
		enabled = len(v) > 0 && v[0] == enabledByte
		return nil
	})
	return enabled, found, err
}

// All returns the persisted enabled bit for every service that has one.
//
// Returns:
//   - map[string]bool: service name to enabled bit.
//   - error: non-nil on a read failure.
func (s *EnabledStore) All() (map[string]bool, error) {
	result := make(map[string]bool)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEnabled).ForEach(func(k, v []byte) error {
			result[string(k)] = len(v) > 0 && v[0] == enabledByte
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Close closes the underlying database file.
//
// Returns:
//   - error: non-nil if the close failed.
func (s *EnabledStore) Close() error {
	return s.db.Close()
}
