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


package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/storage"
)

// EntryRepository implements storage.EntryRepository for BadgerDB.
type EntryRepository struct {
	backend *Backend
	seq     *badger.Sequence
}

var _ storage.EntryRepository = (*EntryRepository)(nil)

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(backend *Backend) (*EntryRepository, error) {
	seq, err := backend.GetSequence(entrySeq)
	if err != nil {
		return nil, err
	}

	return &EntryRepository{
		backend: backend,
		seq:     seq,
	}, nil
}

// Close releases the insertion sequence.
func (r *EntryRepository) Close() error {
	return r.seq.Release()
}

// WithTransaction delegates to the backend.
func (r *EntryRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddEntries appends entries after the existing entries of their locale.
func (r *EntryRepository) AddEntries(ctx context.Context, entries ...*core.Entry) ([]*core.Entry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if err := r.addEntry(tx, entry); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *EntryRepository) addEntry(tx *badger.Txn, entry *core.Entry) error {
	core.NormalizeEntry(entry)
	if err := core.ValidateEntry(entry); err != nil {
		return err
	}

	key := makeEntryKey(entry.Id)
	existing, _, err := r.readEntry(tx, key)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %q", storage.ErrDuplicateKey, entry.Question)
	}

	seq, err := r.nextSeq()
	if err != nil {
		return err
	}
	if entry.InsertedAt.IsZero() {
		entry.InsertedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	if err := tx.Set(key, storage.MarshalEntryRecord(seq, entry)); err != nil {
		return err
	}
	return tx.Set(makeEntryOrderKey(entry.Locale, seq), storage.MarshalID(entry.Id))
}

func (r *EntryRepository) nextSeq() (uint64, error) {
	seq, err := r.seq.Next()
	if err != nil {
		return 0, err
	}
	// BadgerDB sequences can return 0 on first call, so we skip it
	if seq == 0 {
		return r.seq.Next()
	}
	return seq, nil
}

// UpdateEntries replaces stored entries, keeping their insertion position
// and timestamp.
func (r *EntryRepository) UpdateEntries(ctx context.Context, entries ...*core.Entry) ([]*core.Entry, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			key := makeEntryKey(entry.Id)
			old, seq, err := r.readEntry(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}
			if entry.Locale != old.Locale {
				return fmt.Errorf("%w: locale cannot change from %q to %q", core.ErrInvalidEntry, old.Locale, entry.Locale)
			}

			core.NormalizeEntry(entry)
			if err := core.ValidateEntry(entry); err != nil {
				return err
			}
			entry.InsertedAt = old.InsertedAt

			if err := tx.Set(key, storage.MarshalEntryRecord(seq, entry)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteEntries removes entries by their IDs.
func (r *EntryRepository) DeleteEntries(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			if err := r.deleteEntry(tx, id); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

func (r *EntryRepository) deleteEntry(tx *badger.Txn, id core.ID) error {
	key := makeEntryKey(id)
	entry, seq, err := r.readEntry(tx, key)
	if err != nil {
		return err
	}
	if entry == nil {
		return storage.ErrNotFound
	}
	if err := tx.Delete(makeEntryOrderKey(entry.Locale, seq)); err != nil {
		return err
	}
	return tx.Delete(key)
}

// GetEntry retrieves a single entry by ID.
func (r *EntryRepository) GetEntry(ctx context.Context, id core.ID) (*core.Entry, error) {
	var result *core.Entry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, _, err = r.readEntry(tx, makeEntryKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListEntries returns the entries of a locale in insertion order.
func (r *EntryRepository) ListEntries(ctx context.Context, locale core.Locale) ([]*core.Entry, error) {
	var entries []*core.Entry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		ids, err := r.localeIDs(tx, locale)
		if err != nil {
			return err
		}
		entries = make([]*core.Entry, 0, len(ids))
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, _, err := r.readEntry(tx, makeEntryKey(id))
			if err != nil {
				return err
			}
			if entry == nil {
				// Order index points at a missing record
				r.backend.logger.Warn("dangling order index entry", "locale", string(locale), "id", uint64(id))
				continue
			}
			entries = append(entries, entry)
		}
		return nil
	}, false)
	return entries, err
}

// CountEntries returns the number of entries of a locale.
func (r *EntryRepository) CountEntries(ctx context.Context, locale core.Locale) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makeEntryOrderPrefix(locale)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// ReplaceEntries removes every entry of locale and stores entries in their
// place, in one transaction. Entries of other locales are rejected.
func (r *EntryRepository) ReplaceEntries(ctx context.Context, locale core.Locale, entries ...*core.Entry) ([]*core.Entry, error) {
	if err := core.ValidateLocale(locale); err != nil {
		return nil, err
	}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		ids, err := r.localeIDs(tx, locale)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := r.deleteEntry(tx, id); err != nil && !errors.Is(err, storage.ErrNotFound) {
				return err
			}
		}

		for _, entry := range entries {
			if entry.Locale == "" {
				entry.Locale = locale
			}
			if entry.Locale != locale {
				return fmt.Errorf("%w: entry locale %q in %q corpus", core.ErrInvalidEntry, entry.Locale, locale)
			}
			if err := r.addEntry(tx, entry); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// localeIDs returns the entry IDs of a locale in insertion order.
func (r *EntryRepository) localeIDs(tx *badger.Txn, locale core.Locale) ([]core.ID, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = makeEntryOrderPrefix(locale)
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var ids []core.ID
	for iter.Rewind(); iter.Valid(); iter.Next() {
		err := iter.Item().Value(func(val []byte) error {
			id, err := storage.UnmarshalID(val)
			if err != nil {
				return err
			}
			ids = append(ids, id)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// readEntry reads an entry and its insertion sequence.
// Returns a nil entry when the key does not exist.
func (r *EntryRepository) readEntry(tx *badger.Txn, key []byte) (*core.Entry, uint64, error) {
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}

	var (
		entry *core.Entry
		seq   uint64
	)
	err = item.Value(func(val []byte) error {
		var err error
		seq, entry, err = storage.UnmarshalEntryRecord(val)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return entry, seq, nil
}
