// Package storage persists engine options across runs in an embedded
// BadgerDB store. Search state is never persisted; only configuration.
package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys.
const (
	keyOptions     = "options"
	keyFirstLaunch = "first_launch"
)

// Options holds the persisted engine configuration.
type Options struct {
	HashMB       int       `json:"hash_mb"`
	DefaultDepth int       `json:"default_depth"`
	LastUsed     time.Time `json:"last_used"`
}

// DefaultOptions returns the configuration used on a fresh install.
func DefaultOptions() *Options {
	return &Options{
		HashMB:       64,
		DefaultDepth: 0, // unbounded, clock-driven
		LastUsed:     time.Now(),
	}
}

// Storage wraps BadgerDB for persistent option storage.
type Storage struct {
	db *badger.DB
}

// New opens the store in the platform data directory.
func New() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens the store in an explicit directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch reports whether the store has never been initialized.
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete records that initial setup has run.
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SaveOptions stores the engine options.
func (s *Storage) SaveOptions(opts *Options) error {
	opts.LastUsed = time.Now()

	data, err := json.Marshal(opts)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyOptions), data)
	})
}

// LoadOptions loads the engine options, returning defaults when the store
// holds none.
func (s *Storage) LoadOptions() (*Options, error) {
	opts := DefaultOptions()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyOptions))
		if err == badger.ErrKeyNotFound {
			return nil // use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, opts)
		})
	})

	return opts, err
}
