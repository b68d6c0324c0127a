// Package repository holds one record collection in memory and mirrors
// it to the persistence gateway after every mutation. Each mutation ends
// by invoking the sync hook, which regenerates and persists the derived
// transaction feed over both collections; records are never persisted
// without re-deriving the feed.
package repository

import (
	"fmt"

	"ledgerdesk/arap/internal/apperrors"
	"ledgerdesk/arap/internal/logging"
	"ledgerdesk/arap/internal/models"
)

// FilterAll selects records regardless of status in FilterByStatus.
const FilterAll = "all"

// Record is the constraint shared by the receivable and payable shapes.
// Mutating accessors return copies; the repository owns the stored values.
type Record[T any] interface {
	RecordID() int
	RecordStatus() models.Status
	WithRecordID(id int) T
	WithStatus(s models.Status) T
}

// Repository is an ordered collection of records of one kind.
type Repository[T Record[T]] struct {
	kind    models.Kind
	records []T
	persist func([]T) error
	sync    func() error
	log     logging.Logger
}

// New builds a repository over an initial collection. persist writes the
// collection to the store; the sync hook is installed separately once
// the owning ledger has both repositories in hand.
func New[T Record[T]](kind models.Kind, initial []T, persist func([]T) error, log logging.Logger) *Repository[T] {
	return &Repository[T]{
		kind:    kind,
		records: append([]T{}, initial...),
		persist: persist,
		sync:    func() error { return nil },
		log:     log.WithField("kind", string(kind)),
	}
}

// SetSyncHook installs the feed re-derivation step run after every
// mutation.
func (r *Repository[T]) SetSyncHook(hook func() error) {
	r.sync = hook
}

// Kind returns the record kind this repository manages.
func (r *Repository[T]) Kind() models.Kind {
	return r.kind
}

// Records returns a copy of the collection in insertion order.
func (r *Repository[T]) Records() []T {
	return append([]T{}, r.records...)
}

// Len returns the collection size.
func (r *Repository[T]) Len() int {
	return len(r.records)
}

// Get returns the record with the given id.
func (r *Repository[T]) Get(id int) (T, error) {
	var zero T
	idx := r.index(id)
	if idx < 0 {
		return zero, &apperrors.NotFoundError{Kind: string(r.kind), ID: id}
	}
	return r.records[idx], nil
}

// Add appends a record, assigning the next free id and forcing the
// status to pending.
func (r *Repository[T]) Add(rec T) (T, error) {
	rec = rec.WithRecordID(r.nextID()).WithStatus(models.StatusPending)
	r.records = append(r.records, rec)
	if err := r.commit(); err != nil {
		var zero T
		return zero, err
	}
	r.log.Info("record added", logging.F("id", rec.RecordID()))
	return rec, nil
}

// Update replaces every field of the matching record except its id.
func (r *Repository[T]) Update(id int, rec T) (T, error) {
	var zero T
	idx := r.index(id)
	if idx < 0 {
		return zero, &apperrors.NotFoundError{Kind: string(r.kind), ID: id}
	}
	rec = rec.WithRecordID(id)
	r.records[idx] = rec
	if err := r.commit(); err != nil {
		return zero, err
	}
	r.log.Info("record updated", logging.F("id", id))
	return rec, nil
}

// Delete removes the matching record.
func (r *Repository[T]) Delete(id int) error {
	idx := r.index(id)
	if idx < 0 {
		return &apperrors.NotFoundError{Kind: string(r.kind), ID: id}
	}
	r.records = append(r.records[:idx], r.records[idx+1:]...)
	if err := r.commit(); err != nil {
		return err
	}
	r.log.Info("record deleted", logging.F("id", id))
	return nil
}

// ToggleStatus flips the matching record between pending and completed.
func (r *Repository[T]) ToggleStatus(id int) (T, error) {
	var zero T
	idx := r.index(id)
	if idx < 0 {
		return zero, &apperrors.NotFoundError{Kind: string(r.kind), ID: id}
	}
	rec := r.records[idx].WithStatus(r.records[idx].RecordStatus().Toggle())
	r.records[idx] = rec
	if err := r.commit(); err != nil {
		return zero, err
	}
	r.log.Info("record status toggled",
		logging.F("id", id), logging.F("status", string(rec.RecordStatus())))
	return rec, nil
}

// BulkReplace discards the collection and installs the given records,
// reassigning 1-based sequential ids in input order. Used only by
// import.
func (r *Repository[T]) BulkReplace(records []T) error {
	replaced := make([]T, 0, len(records))
	for i, rec := range records {
		replaced = append(replaced, rec.WithRecordID(i+1))
	}
	r.records = replaced
	if err := r.commit(); err != nil {
		return err
	}
	r.log.Info("collection replaced", logging.F("count", len(replaced)))
	return nil
}

// FilterByStatus returns the records matching the filter: "all",
// "pending" or "completed". A pure read; nothing is persisted.
func (r *Repository[T]) FilterByStatus(filter string) []T {
	if filter == FilterAll || filter == "" {
		return r.Records()
	}
	matched := make([]T, 0, len(r.records))
	for _, rec := range r.records {
		if string(rec.RecordStatus()) == filter {
			matched = append(matched, rec)
		}
	}
	return matched
}

// commit mirrors the collection to the store and then re-derives the
// transaction feed. The ordering matters: the feed must be computed over
// the already-persisted collections.
func (r *Repository[T]) commit() error {
	if err := r.persist(r.records); err != nil {
		return fmt.Errorf("error persisting %s collection: %w", r.kind, err)
	}
	if err := r.sync(); err != nil {
		return fmt.Errorf("error syncing transaction feed: %w", err)
	}
	return nil
}

func (r *Repository[T]) index(id int) int {
	for i, rec := range r.records {
		if rec.RecordID() == id {
			return i
		}
	}
	return -1
}

func (r *Repository[T]) nextID() int {
	max := 0
	for _, rec := range r.records {
		if rec.RecordID() > max {
			max = rec.RecordID()
		}
	}
	return max + 1
}
