// Package store is the persistence gateway: a JSON-file-backed key-value
// store holding the two record collections, the derived transaction
// feed, the activity log and the last imported file name. It is the sole
// point of contact with durable state.
//
// The store assumes a single writer. Concurrent processes writing the
// same data directory overwrite each other last-write-wins; there is no
// versioning or conflict detection.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ledgerdesk/arap/internal/logging"
	"ledgerdesk/arap/internal/models"
)

// Fixed keys. Each key maps to one JSON file in the data directory.
const (
	keyReceivables  = "receivables"
	keyPayables     = "payables"
	keyTransactions = "transactions"
	keyActivity     = "activity"
	keyLastImport   = "last_import"
)

// Store reads and writes the persisted collections.
type Store struct {
	dir string
	log logging.Logger
}

// New opens a store rooted at dir, creating the directory if needed.
func New(dir string, log logging.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data directory %s: %w", dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", key, err)
	}
	s.log.Debug("saved collection", logging.F("key", key))
	return nil
}

// load reads a key into v. It reports false without error when the key
// has never been written.
func (s *Store) load(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("error reading %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("error parsing %s: %w", key, err)
	}
	return true, nil
}

// SaveReceivables persists the receivable collection.
func (s *Store) SaveReceivables(records []models.Receivable) error {
	return s.save(keyReceivables, emptyNotNil(records))
}

// LoadReceivables returns the persisted receivable collection, empty if
// none has been saved yet.
func (s *Store) LoadReceivables() ([]models.Receivable, error) {
	var records []models.Receivable
	if _, err := s.load(keyReceivables, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SavePayables persists the payable collection.
func (s *Store) SavePayables(records []models.Payable) error {
	return s.save(keyPayables, emptyNotNil(records))
}

// LoadPayables returns the persisted payable collection, empty if none
// has been saved yet.
func (s *Store) LoadPayables() ([]models.Payable, error) {
	var records []models.Payable
	if _, err := s.load(keyPayables, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SaveTransactions persists the derived transaction feed.
func (s *Store) SaveTransactions(transactions []models.Transaction) error {
	return s.save(keyTransactions, emptyNotNil(transactions))
}

// LoadTransactions returns the feed as of the last persist.
func (s *Store) LoadTransactions() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if _, err := s.load(keyTransactions, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// SaveActivity persists the recent-activity feed.
func (s *Store) SaveActivity(entries []models.Activity) error {
	return s.save(keyActivity, emptyNotNil(entries))
}

// LoadActivity returns the recent-activity feed.
func (s *Store) LoadActivity() ([]models.Activity, error) {
	var entries []models.Activity
	if _, err := s.load(keyActivity, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SaveLastImportFile remembers the name of the last imported workbook.
func (s *Store) SaveLastImportFile(name string) error {
	return s.save(keyLastImport, name)
}

// LastImportFile returns the remembered workbook name, or "" if no
// import has happened.
func (s *Store) LastImportFile() (string, error) {
	var name string
	if _, err := s.load(keyLastImport, &name); err != nil {
		return "", err
	}
	return name, nil
}

// emptyNotNil keeps nil slices marshaling as [] rather than null.
func emptyNotNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
