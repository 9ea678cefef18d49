package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"shramikadmin/internal/domain"
	"shramikadmin/internal/util/memzero"
)

const (
	storageFilename       = "storage.json"
	sealedStorageFilename = "storage.enc"
)

// FileKVStore persists the storage slot to a single file under dir.
type FileKVStore struct {
	dir        string
	passphrase string
	kdf        scryptParams
	mu         sync.Mutex
}

// NewFileKVStore returns a plaintext store rooted at dir.
func NewFileKVStore(dir string) *FileKVStore {
	return &FileKVStore{dir: dir}
}

// NewSealedKVStore returns a store whose file is encrypted with passphrase.
func NewSealedKVStore(dir, passphrase string) *FileKVStore {
	return &FileKVStore{dir: dir, passphrase: passphrase, kdf: defaultScryptParams()}
}

// Path returns the file backing the store.
func (s *FileKVStore) Path() string {
	if s.passphrase != "" {
		return filepath.Join(s.dir, sealedStorageFilename)
	}
	return filepath.Join(s.dir, storageFilename)
}

// GetItem returns the value stored under key.
func (s *FileKVStore) GetItem(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := items[key]
	return v, ok, nil
}

// SetItem stores value under key, replacing any previous value.
func (s *FileKVStore) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	items[key] = value
	return s.save(items)
}

// RemoveItem deletes keys; the file is removed once the map is empty.
func (s *FileKVStore) RemoveItem(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	for _, k := range keys {
		delete(items, k)
	}
	if len(items) == 0 {
		return removeFile(s.Path())
	}
	return s.save(items)
}

func (s *FileKVStore) load() (map[string]string, error) {
	items := make(map[string]string)
	if s.passphrase == "" {
		if err := readJSON(s.Path(), &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	blob, err := readFile(s.Path())
	if err != nil || blob == nil {
		return items, err
	}
	raw, err := decrypt(s.passphrase, blob)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FileKVStore) save(items map[string]string) error {
	if s.passphrase == "" {
		return writeJSON(s.Path(), items, 0o600)
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)
	blob, err := encrypt(s.passphrase, raw, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(s.Path(), blob, 0o600)
}

// Compile-time assertion that FileKVStore implements domain.KeyValueStore.
var _ domain.KeyValueStore = (*FileKVStore)(nil)
