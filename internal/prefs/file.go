package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// FileStore persists settings as a YAML document. Every write rewrites the
// whole file through a temp file and rename.
type FileStore struct {
	mu       sync.Mutex
	path     string
	settings Settings
}

// OpenFile loads the store at path. A missing file yields default settings;
// the install ID is generated and saved on first open.
func OpenFile(path string) (*FileStore, error) {
	fsStore := &FileStore{path: path, settings: DefaultSettings()}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read preferences: %w", err)
	default:
		if err := yaml.Unmarshal(data, &fsStore.settings); err != nil {
			return nil, fmt.Errorf("parse preferences %s: %w", path, err)
		}
	}

	if fsStore.settings.InstallID == "" {
		fsStore.settings.InstallID = uuid.NewString()
		if err := fsStore.saveLocked(fsStore.settings); err != nil {
			return nil, err
		}
	}
	return fsStore, nil
}

// Path returns the file backing the store.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Bool(key Key) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings.Bool(key)
}

func (f *FileStore) SetBool(key Key, v bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := f.settings
	if err := next.setBool(key, v); err != nil {
		return err
	}
	return f.saveLocked(next)
}

func (f *FileStore) Position() Position {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings.Position
}

func (f *FileStore) SetPosition(p Position) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := f.settings
	next.Position = p
	return f.saveLocked(next)
}

func (f *FileStore) Settings() Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings
}

// saveLocked writes next to disk and only adopts it in memory once the
// rename succeeded.
func (f *FileStore) saveLocked(next Settings) error {
	data, err := yaml.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp preferences: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close preferences: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace preferences: %w", err)
	}

	f.settings = next
	return nil
}
