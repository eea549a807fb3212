package badger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/diarit/core"
	"github.com/poiesic/diarit/storage"
)

// Repository implements storage.ContextRepository for BadgerDB.
type Repository struct {
	backend *Backend
	posSeq  *badger.Sequence

	// seed produces the records a new user starts with.
	seed func() []*core.ContextRecord
}

var _ storage.ContextRepository = (*Repository)(nil)

// NewRepository opens a durable context repository at the given path.
//
// Returns storage.ContextRepository interface to enforce abstraction.
func NewRepository(filePath string) (storage.ContextRepository, error) {
	backend, err := OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}
	return newRepository(backend)
}

// NewMemoryRepository opens an in-memory (non-durable) context repository.
// Intended for tests.
func NewMemoryRepository() (storage.ContextRepository, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}
	return newRepository(backend)
}

func newRepository(backend *Backend) (*Repository, error) {
	posSeq, err := backend.GetSequence(contextPosSeq)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return &Repository{
		backend: backend,
		posSeq:  posSeq,
		seed:    core.DemoContexts,
	}, nil
}

// Close releases the position sequence and closes the database.
func (r *Repository) Close() error {
	if err := r.posSeq.Release(); err != nil {
		r.backend.Close()
		return err
	}
	return r.backend.Close()
}

// GetOrSeed retrieves all context records for a user, seeding the demo corpus
// on first touch. The seed check and write happen in one transaction, so
// concurrent first reads for the same user seed at most once; the loser
// retries and reads the seeded state.
func (r *Repository) GetOrSeed(ctx context.Context, userID string) ([]*core.ContextRecord, error) {
	if userID == "" {
		return nil, storage.ErrEmptyUserID
	}

	for {
		seeded, err := r.isSeeded(userID)
		if err != nil {
			return nil, err
		}
		if seeded {
			break
		}

		err = r.backend.WithTx(func(tx *badger.Txn) error {
			// Recheck inside the transaction
			if _, err := tx.Get(makeUserMarkerKey(userID)); err == nil {
				return nil
			} else if err != badger.ErrKeyNotFound {
				return err
			}

			for _, record := range r.seed() {
				if err := r.appendRecord(tx, userID, record); err != nil {
					return err
				}
			}
			return tx.Commit()
		}, true)
		if err == badger.ErrConflict {
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}

	return r.readAll(userID)
}

// Append adds records to the user's history. Unknown users are created empty,
// not seeded: explicit writes should not conjure demo data.
func (r *Repository) Append(ctx context.Context, userID string, records ...*core.ContextRecord) ([]*core.ContextRecord, error) {
	if userID == "" {
		return nil, storage.ErrEmptyUserID
	}

	now := time.Now().UTC()
	added := make([]*core.ContextRecord, 0, len(records))

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		added = added[:0]
		for _, record := range records {
			stored := *record
			if stored.Id == "" {
				// Bump the clock per generated ID so a batch never collides
				stored.Id = core.NewRecordID(stored.Type, now)
				now = now.Add(time.Nanosecond)
			}
			if stored.InsertedAt.IsZero() {
				stored.InsertedAt = now
			}
			if err := r.appendRecord(tx, userID, &stored); err != nil {
				return err
			}
			added = append(added, &stored)
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return added, nil
}

// Update replaces existing records matched by Id.
func (r *Repository) Update(ctx context.Context, userID string, records ...*core.ContextRecord) error {
	if userID == "" {
		return storage.ErrEmptyUserID
	}

	now := time.Now().UTC()
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			pos, err := r.lookupPos(tx, userID, record.Id)
			if err != nil {
				return err
			}

			stored := *record
			stored.UpdatedAt = now
			key := makeContextRecordKey(userID, pos)
			if err := tx.Set(key, storage.MarshalContextRecord(&stored)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Get retrieves a single context record by ID.
func (r *Repository) Get(ctx context.Context, userID string, id core.ID) (*core.ContextRecord, error) {
	if userID == "" {
		return nil, storage.ErrEmptyUserID
	}

	var result *core.ContextRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		pos, err := r.lookupPos(tx, userID, id)
		if err != nil {
			return err
		}

		item, err := tx.Get(makeContextRecordKey(userID, pos))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalContextRecord(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// Users lists all user IDs with stored context.
func (r *Repository) Users(ctx context.Context) ([]string, error) {
	var users []string
	prefix := []byte(userMarkerPrefix + ":")

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			users = append(users, strings.TrimPrefix(string(key), userMarkerPrefix+":"))
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Helper methods

// isSeeded checks for the user's seed marker outside a write transaction.
func (r *Repository) isSeeded(userID string) (bool, error) {
	var seeded bool
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeUserMarkerKey(userID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		seeded = true
		return nil
	}, false)
	return seeded, err
}

// appendRecord writes a record, its ID index entry, and the user marker
// within the transaction. Fails with ErrDuplicateKey if the ID exists.
func (r *Repository) appendRecord(tx *badger.Txn, userID string, record *core.ContextRecord) error {
	idKey := makeContextIDKey(userID, record.Id)
	if _, err := tx.Get(idKey); err == nil {
		return fmt.Errorf("%w: %s", storage.ErrDuplicateKey, record.Id)
	} else if err != badger.ErrKeyNotFound {
		return err
	}

	pos, err := r.posSeq.Next()
	if err != nil {
		return err
	}

	key := makeContextRecordKey(userID, pos)
	if err := tx.Set(key, storage.MarshalContextRecord(record)); err != nil {
		return err
	}
	if err := tx.Set(idKey, encodePos(pos)); err != nil {
		return err
	}
	return tx.Set(makeUserMarkerKey(userID), nil)
}

// lookupPos resolves a record ID to its storage position.
func (r *Repository) lookupPos(tx *badger.Txn, userID string, id core.ID) (uint64, error) {
	item, err := tx.Get(makeContextIDKey(userID, id))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return 0, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
		}
		return 0, err
	}

	var pos uint64
	err = item.Value(func(val []byte) error {
		var decodeErr error
		pos, decodeErr = decodePos(val)
		return decodeErr
	})
	return pos, err
}

// readAll returns all of a user's records in insertion order. The position
// sequence is global but monotonic, so key order within the user's prefix
// is insertion order.
func (r *Repository) readAll(userID string) ([]*core.ContextRecord, error) {
	var records []*core.ContextRecord
	prefix := makeUserRecordPrefix(userID)

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.ContextRecord
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				record, unmarshalErr = storage.UnmarshalContextRecord(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			if record != nil {
				records = append(records, record)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return records, nil
}
