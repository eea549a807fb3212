// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/poiesic/diarit/core"
	"github.com/poiesic/diarit/storage"
)

// Store is an in-memory implementation of storage.ContextRepository.
// It is the default backend for demo use and tests; nothing is persisted.
type Store struct {
	mu     sync.RWMutex
	users  map[string][]*core.ContextRecord
	index  map[string]map[core.ID]int
	closed bool
	logger *slog.Logger

	// seed produces the records a new user starts with.
	seed func() []*core.ContextRecord
}

var _ storage.ContextRepository = (*Store)(nil)

// Option configures a Store during construction.
type Option func(*Store) error

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}

// WithSeed replaces the demo corpus used to seed new users.
// Passing a function that returns nil disables seeding entirely.
func WithSeed(seed func() []*core.ContextRecord) Option {
	return func(s *Store) error {
		if seed == nil {
			return fmt.Errorf("seed function cannot be nil")
		}
		s.seed = seed
		return nil
	}
}

// NewStore creates an in-memory context repository.
//
// Returns storage.ContextRepository interface to enforce abstraction.
func NewStore(opts ...Option) (storage.ContextRepository, error) {
	s := &Store{
		users:  make(map[string][]*core.ContextRecord),
		index:  make(map[string]map[core.ID]int),
		logger: slog.Default().With("component", "memory-store"),
		seed:   core.DemoContexts,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// GetOrSeed returns all records for the user, seeding the demo corpus on
// first touch. The returned slice and records are copies; callers may
// modify them freely.
func (s *Store) GetOrSeed(ctx context.Context, userID string) ([]*core.ContextRecord, error) {
	if userID == "" {
		return nil, storage.ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	records, ok := s.users[userID]
	if !ok {
		records = s.seed()
		s.users[userID] = records
		idx := make(map[core.ID]int, len(records))
		for i, record := range records {
			idx[record.Id] = i
		}
		s.index[userID] = idx
		s.logger.Debug("seeded new user", "user", userID, "records", len(records))
	}

	return copyRecords(records), nil
}

// Append adds records to the user's history. Unknown users are created empty,
// not seeded: explicit writes should not conjure demo data.
func (s *Store) Append(ctx context.Context, userID string, records ...*core.ContextRecord) ([]*core.ContextRecord, error) {
	if userID == "" {
		return nil, storage.ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	idx, ok := s.index[userID]
	if !ok {
		idx = make(map[core.ID]int)
		s.index[userID] = idx
	}

	now := time.Now()
	added := make([]*core.ContextRecord, 0, len(records))
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
		if _, exists := idx[stored.Id]; exists {
			return nil, fmt.Errorf("%w: %s", storage.ErrDuplicateKey, stored.Id)
		}
		idx[stored.Id] = len(s.users[userID])
		s.users[userID] = append(s.users[userID], &stored)
		added = append(added, &stored)
	}

	s.logger.Debug("appended records", "user", userID, "count", len(added))
	return copyRecords(added), nil
}

// Update replaces existing records matched by Id.
func (s *Store) Update(ctx context.Context, userID string, records ...*core.ContextRecord) error {
	if userID == "" {
		return storage.ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}

	idx, ok := s.index[userID]
	if !ok {
		return fmt.Errorf("%w: user %s", storage.ErrNotFound, userID)
	}

	// Validate all IDs before mutating anything
	for _, record := range records {
		if _, exists := idx[record.Id]; !exists {
			return fmt.Errorf("%w: %s", storage.ErrNotFound, record.Id)
		}
	}

	now := time.Now()
	for _, record := range records {
		stored := *record
		stored.UpdatedAt = now
		s.users[userID][idx[stored.Id]] = &stored
	}

	return nil
}

// Get retrieves a single record by ID.
func (s *Store) Get(ctx context.Context, userID string, id core.ID) (*core.ContextRecord, error) {
	if userID == "" {
		return nil, storage.ErrEmptyUserID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	idx, ok := s.index[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", storage.ErrNotFound, userID)
	}
	pos, exists := idx[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}

	record := *s.users[userID][pos]
	return &record, nil
}

// Users lists all user IDs with stored context, sorted for determinism.
func (s *Store) Users(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	users := make([]string, 0, len(s.users))
	for user := range s.users {
		users = append(users, user)
	}
	sort.Strings(users)
	return users, nil
}

// Close marks the store closed. Further operations return ErrStorageClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// copyRecords deep-copies the slice so callers can't mutate stored state.
func copyRecords(records []*core.ContextRecord) []*core.ContextRecord {
	out := make([]*core.ContextRecord, len(records))
	for i, record := range records {
		clone := *record
		out[i] = &clone
	}
	return out
}
