// Package objectstore implements a local encrypted-content cache (§4.6),
// a badger-backed name-keyed byte store grounded on the teacher's
// BadgerStore, trimmed to the single get/put/remove surface this
// library's content cache needs (no transactions or range deletes, since
// there's no FIB/PIT-scale prefix housekeeping here).
package objectstore

import (
	"errors"

	"github.com/dgraph-io/badger/v4"

	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
)

// ErrNotFound is returned when name has no stored entry.
var ErrNotFound = errors.New("objectstore: not found")

// Store is a badger-backed cache of encoded Data packets (or raw
// encrypted-content blobs), keyed by name.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a badger database at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) key(name enc.Name) []byte {
	return []byte(name.String())
}

// Put stores wire under name, replacing any existing entry.
func (s *Store) Put(name enc.Name, wire []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key(name), wire)
	})
}

// Get retrieves the bytes stored under the exact name.
func (s *Store) Get(name enc.Name) ([]byte, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes the entry stored under name, if any.
func (s *Store) Remove(name enc.Name) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(s.key(name))
	})
}
