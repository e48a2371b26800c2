package badger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/faqit/core"
	"github.com/poiesic/faqit/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "db")
	backend, err := OpenBackend(dir, false)
	require.NoError(t, err)
	defer backend.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "missing directories are created")
}

func TestOpenBackend_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := OpenBackend(file, false)
	assert.ErrorContains(t, err, "is not a directory")
}

func TestOpenBackend_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	backend, err := OpenBackend(t.TempDir(), false, WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	assert.Contains(t, buf.String(), "component=badger")
}

func TestBackend_Close(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)

	require.NoError(t, backend.Close())
	assert.True(t, backend.IsClosed())

	err = backend.WithTx(func(tx *badger.Txn) error { return nil }, false)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestBackend_WithTransaction(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	called := false
	require.NoError(t, backend.WithTransaction(ctx, func(context.Context) error {
		called = true
		return nil
	}))
	assert.True(t, called)

	boom := errors.New("boom")
	assert.ErrorIs(t, backend.WithTransaction(ctx, func(context.Context) error { return boom }), boom)
}

func TestEntryOrderKeys(t *testing.T) {
	a := makeEntryOrderKey(core.LocaleEnglish, 2)
	b := makeEntryOrderKey(core.LocaleEnglish, 10)
	c := makeEntryOrderKey(core.LocaleJapanese, 1)

	assert.Negative(t, bytes.Compare(a, b), "sequence order is byte order")
	assert.True(t, bytes.HasPrefix(a, makeEntryOrderPrefix(core.LocaleEnglish)))
	assert.False(t, bytes.HasPrefix(c, makeEntryOrderPrefix(core.LocaleEnglish)))
}
