// Package keystore implements the local key registry (§4.6): a small
// sqlite-backed table of key records, grounded on the teacher's
// sqlite-backed PIB but trimmed to this library's flat record shape
// rather than the full identity/key/certificate hierarchy — there is no
// X.509 here (§1's non-goals).
package keystore

import (
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3"

	enc "github.com/ghsecuritylab/ndn-lite-go/encoding"
	"github.com/ghsecuritylab/ndn-lite-go/ndn"
)

// ErrNotFound is returned when a key record doesn't exist in the registry.
var ErrNotFound = errors.New("keystore: key not found")

// Record is one row of the key registry (§3.1): a key handle description
// independent of any specific crypto backend's in-memory KeyID, so it
// survives process restarts.
type Record struct {
	KeyID                uint32
	KeyName              enc.Name
	SigType              ndn.SigType
	NotBefore            string
	NotAfter             string
	EnableKeyLocator     bool
	EnableValidityPeriod bool
	// Secret holds backend-specific opaque key material (e.g. an ECDSA
	// SEC 1 DER blob, or raw HMAC/AES key bytes); it is round-tripped
	// verbatim, never interpreted by the registry itself.
	Secret []byte
}

// Registry is a sqlite-backed store of Records, keyed by key_id.
type Registry struct {
	db *sql.DB
}

// Open opens (creating if necessary) a sqlite database at path and
// ensures the keys table exists.
func Open(path string) (*Registry, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createKeysTable); err != nil {
		db.Close()
		return nil, err
	}
	return &Registry{db: db}, nil
}

const createKeysTable = `
CREATE TABLE IF NOT EXISTS keys (
	key_id INTEGER PRIMARY KEY,
	key_name BLOB NOT NULL,
	sig_type INTEGER NOT NULL,
	not_before TEXT NOT NULL DEFAULT '',
	not_after TEXT NOT NULL DEFAULT '',
	enable_key_locator INTEGER NOT NULL,
	enable_validity_period INTEGER NOT NULL,
	secret BLOB NOT NULL
)`

// Close closes the underlying database handle.
func (r *Registry) Close() error { return r.db.Close() }

// Put inserts or replaces the record for rec.KeyID.
func (r *Registry) Put(rec Record) error {
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO keys
			(key_id, key_name, sig_type, not_before, not_after, enable_key_locator, enable_validity_period, secret)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.KeyID, []byte(rec.KeyName.String()), rec.SigType, rec.NotBefore, rec.NotAfter,
		boolToInt(rec.EnableKeyLocator), boolToInt(rec.EnableValidityPeriod), rec.Secret,
	)
	return err
}

// Get retrieves the record stored for keyID.
func (r *Registry) Get(keyID uint32) (Record, error) {
	row := r.db.QueryRow(
		`SELECT key_id, key_name, sig_type, not_before, not_after, enable_key_locator, enable_validity_period, secret
		 FROM keys WHERE key_id = ?`, keyID,
	)
	var rec Record
	var nameStr []byte
	var enableKL, enableVP int
	var sigType int
	if err := row.Scan(&rec.KeyID, &nameStr, &sigType, &rec.NotBefore, &rec.NotAfter, &enableKL, &enableVP, &rec.Secret); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	name, err := enc.NameFromStr(string(nameStr))
	if err != nil {
		return Record{}, err
	}
	rec.KeyName = name
	rec.SigType = ndn.SigType(sigType)
	rec.EnableKeyLocator = enableKL != 0
	rec.EnableValidityPeriod = enableVP != 0
	return rec, nil
}

// Delete removes the record for keyID, if any.
func (r *Registry) Delete(keyID uint32) error {
	_, err := r.db.Exec(`DELETE FROM keys WHERE key_id = ?`, keyID)
	return err
}

// List returns every record currently stored, in key_id order.
func (r *Registry) List() ([]Record, error) {
	rows, err := r.db.Query(
		`SELECT key_id, key_name, sig_type, not_before, not_after, enable_key_locator, enable_validity_period, secret
		 FROM keys ORDER BY key_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var nameStr []byte
		var enableKL, enableVP int
		var sigType int
		if err := rows.Scan(&rec.KeyID, &nameStr, &sigType, &rec.NotBefore, &rec.NotAfter, &enableKL, &enableVP, &rec.Secret); err != nil {
			return nil, err
		}
		name, err := enc.NameFromStr(string(nameStr))
		if err != nil {
			return nil, err
		}
		rec.KeyName = name
		rec.SigType = ndn.SigType(sigType)
		rec.EnableKeyLocator = enableKL != 0
		rec.EnableValidityPeriod = enableVP != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
