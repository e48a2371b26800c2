package badger

import "github.com/poiesic/faqit/storage"

// NewMemoryRepository creates an in-memory entry repository for testing.
// Caller must close the repository and then the backend.
func NewMemoryRepository() (storage.EntryRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}

	repo, err := NewEntryRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	return repo, backend, nil
}
