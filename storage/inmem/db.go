// Package inmemdb holds the process-lifetime in-memory store. It is created
// at startup and dies with the process; there is deliberately no persistence
// here, the durable credential copy lives outside this service.
package inmemdb

import "sync"

type (
	DB struct {
		credentials *credentialTable
	}

	credentialTable struct {
		sync.RWMutex
		table map[string]string // uid -> token
	}
)

func Open() (*DB, error) {
	db := &DB{
		credentials: &credentialTable{table: make(map[string]string)},
	}
	return db, nil
}

// Close clears the store. Tokens are not recoverable afterwards.
func (db *DB) Close() error {
	db.credentials.Lock()
	defer db.credentials.Unlock()
	db.credentials.table = make(map[string]string)
	return nil
}
