package badger

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) storage.EntryRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func entry(locale core.Locale, question string) *core.Entry {
	return &core.Entry{
		Locale:   locale,
		Question: question,
		Answer:   "Answer to " + question,
		Keywords: []string{" Keyword ", "keyword"},
	}
}

func questions(entries []*core.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Question
	}
	return out
}

func TestEntryRepository_AddEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes and stamps", func(t *testing.T) {
		repo := newTestRepository(t)
		added, err := repo.AddEntries(ctx, entry(core.LocaleEnglish, "  What does Visual Alpha do? "))
		require.NoError(t, err)
		require.Len(t, added, 1)

		e := added[0]
		assert.Equal(t, "What does Visual Alpha do?", e.Question)
		assert.Equal(t, core.EntryID(core.LocaleEnglish, e.Question), e.Id)
		assert.Equal(t, core.DefaultCategory, e.Category)
		assert.Equal(t, []string{"keyword"}, e.Keywords)
		assert.False(t, e.InsertedAt.IsZero())

		stored, err := repo.GetEntry(ctx, e.Id)
		require.NoError(t, err)
		assert.Equal(t, e, stored)
	})

	t.Run("appends in insertion order per locale", func(t *testing.T) {
		repo := newTestRepository(t)
		_, err := repo.AddEntries(ctx,
			entry(core.LocaleEnglish, "first"),
			entry(core.LocaleJapanese, "最初"),
			entry(core.LocaleEnglish, "second"),
		)
		require.NoError(t, err)
		_, err = repo.AddEntries(ctx, entry(core.LocaleEnglish, "third"))
		require.NoError(t, err)

		en, err := repo.ListEntries(ctx, core.LocaleEnglish)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, questions(en))

		ja, err := repo.ListEntries(ctx, core.LocaleJapanese)
		require.NoError(t, err)
		assert.Equal(t, []string{"最初"}, questions(ja))

		count, err := repo.CountEntries(ctx, core.LocaleEnglish)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("duplicate question", func(t *testing.T) {
		repo := newTestRepository(t)
		_, err := repo.AddEntries(ctx, entry(core.LocaleEnglish, "same"))
		require.NoError(t, err)

		_, err = repo.AddEntries(ctx, entry(core.LocaleEnglish, "other"), entry(core.LocaleEnglish, "same"))
		assert.ErrorIs(t, err, storage.ErrDuplicateKey)

		all, err := repo.ListEntries(ctx, core.LocaleEnglish)
		require.NoError(t, err)
		assert.Equal(t, []string{"same"}, questions(all), "failed batch stores nothing")
	})

	t.Run("duplicate within a batch", func(t *testing.T) {
		repo := newTestRepository(t)
		_, err := repo.AddEntries(ctx, entry(core.LocaleEnglish, "twice"), entry(core.LocaleEnglish, "twice"))
		assert.ErrorIs(t, err, storage.ErrDuplicateKey)
	})

	t.Run("same question in another locale", func(t *testing.T) {
		repo := newTestRepository(t)
		_, err := repo.AddEntries(ctx, entry(core.LocaleEnglish, "Visual Alpha"), entry(core.LocaleJapanese, "Visual Alpha"))
		assert.NoError(t, err)
	})

	t.Run("invalid entry", func(t *testing.T) {
		repo := newTestRepository(t)
		bad := entry(core.LocaleEnglish, "no answer")
		bad.Answer = ""
		_, err := repo.AddEntries(ctx, bad)
		assert.ErrorIs(t, err, core.ErrInvalidEntry)

		_, err = repo.AddEntries(ctx, entry("", "no locale"))
		assert.ErrorIs(t, err, core.ErrUnknownLocale)
	})

	t.Run("concurrent adds", func(t *testing.T) {
		repo := newTestRepository(t)
		var wg sync.WaitGroup
		for w := range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range 10 {
					_, err := repo.AddEntries(ctx, entry(core.LocaleEnglish, fmt.Sprintf("q-%d-%d", w, i)))
					assert.NoError(t, err)
				}
			}()
		}
		wg.Wait()

		count, err := repo.CountEntries(ctx, core.LocaleEnglish)
		require.NoError(t, err)
		assert.Equal(t, 40, count)
	})
}

func TestEntryRepository_UpdateEntries(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	added, err := repo.AddEntries(ctx, entry(core.LocaleEnglish, "one"), entry(core.LocaleEnglish, "two"))
	require.NoError(t, err)
	insertedAt := added[0].InsertedAt

	updated := added[0].Clone()
	updated.Answer = "A new answer"
	updated.ImagePath = "images/one.png"
	_, err = repo.UpdateEntries(ctx, updated)
	require.NoError(t, err)

	got, err := repo.GetEntry(ctx, updated.Id)
	require.NoError(t, err)
	assert.Equal(t, "A new answer", got.Answer)
	assert.Equal(t, "images/one.png", got.ImagePath)
	assert.Equal(t, insertedAt, got.InsertedAt)

	all, err := repo.ListEntries(ctx, core.LocaleEnglish)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, questions(all), "position is kept")

	t.Run("missing entry", func(t *testing.T) {
		_, err := repo.UpdateEntries(ctx, &core.Entry{Id: 99, Locale: core.LocaleEnglish, Question: "q", Answer: "a"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("locale change", func(t *testing.T) {
		moved := added[1].Clone()
		moved.Locale = core.LocaleJapanese
		_, err := repo.UpdateEntries(ctx, moved)
		assert.ErrorIs(t, err, core.ErrInvalidEntry)
	})
}

func TestEntryRepository_DeleteEntries(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	added, err := repo.AddEntries(ctx,
		entry(core.LocaleEnglish, "one"),
		entry(core.LocaleEnglish, "two"),
		entry(core.LocaleEnglish, "three"),
	)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteEntries(ctx, added[1].Id))

	_, err = repo.GetEntry(ctx, added[1].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	all, err := repo.ListEntries(ctx, core.LocaleEnglish)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "three"}, questions(all))

	assert.ErrorIs(t, repo.DeleteEntries(ctx, added[1].Id), storage.ErrNotFound)
}

func TestEntryRepository_ReplaceEntries(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	_, err := repo.AddEntries(ctx,
		entry(core.LocaleEnglish, "old one"),
		entry(core.LocaleEnglish, "kept"),
		entry(core.LocaleJapanese, "日本語"),
	)
	require.NoError(t, err)

	_, err = repo.ReplaceEntries(ctx, core.LocaleEnglish,
		&core.Entry{Question: "kept", Answer: "Replaced answer"},
		entry(core.LocaleEnglish, "new one"),
	)
	require.NoError(t, err)

	en, err := repo.ListEntries(ctx, core.LocaleEnglish)
	require.NoError(t, err)
	assert.Equal(t, []string{"kept", "new one"}, questions(en))
	assert.Equal(t, "Replaced answer", en[0].Answer)

	ja, err := repo.ListEntries(ctx, core.LocaleJapanese)
	require.NoError(t, err)
	assert.Len(t, ja, 1, "other locales are untouched")

	t.Run("rejects foreign entries", func(t *testing.T) {
		_, err := repo.ReplaceEntries(ctx, core.LocaleEnglish, entry(core.LocaleJapanese, "混在"))
		assert.ErrorIs(t, err, core.ErrInvalidEntry)

		en, err := repo.ListEntries(ctx, core.LocaleEnglish)
		require.NoError(t, err)
		assert.Len(t, en, 2, "failed replace keeps the corpus")
	})

	t.Run("empty corpus", func(t *testing.T) {
		_, err := repo.ReplaceEntries(ctx, core.LocaleJapanese)
		require.NoError(t, err)
		count, err := repo.CountEntries(ctx, core.LocaleJapanese)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("unknown locale", func(t *testing.T) {
		_, err := repo.ReplaceEntries(ctx, "xx")
		assert.ErrorIs(t, err, core.ErrUnknownLocale)
	})
}

func TestEntryRepository_Persistence(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	backend, err := OpenBackend(dir, false)
	require.NoError(t, err)
	repo, err := NewEntryRepository(backend)
	require.NoError(t, err)
	_, err = repo.AddEntries(ctx, entry(core.LocaleEnglish, "first"), entry(core.LocaleEnglish, "second"))
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	require.NoError(t, backend.Close())

	backend, err = OpenBackend(dir, false)
	require.NoError(t, err)
	defer backend.Close()
	repo, err = NewEntryRepository(backend)
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.AddEntries(ctx, entry(core.LocaleEnglish, "third"))
	require.NoError(t, err)

	all, err := repo.ListEntries(ctx, core.LocaleEnglish)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, questions(all), "sequence continues after reopen")
}
