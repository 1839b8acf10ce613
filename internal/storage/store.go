// Package storage persists the contact list as a JSON file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/smileynet/insurabook/internal/contact"
)

// FileStore reads and writes the contact list at a single JSON path.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string { return s.path }

type bookFile struct {
	Persons []jsonPerson `json:"persons"`
}

// Save writes every contact, creating parent directories as needed.
func (s *FileStore) Save(contacts []contact.Contact) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("storage: creating directory: %w", err)
	}

	file := bookFile{Persons: make([]jsonPerson, len(contacts))}
	for i, c := range contacts {
		file.Persons[i] = fromContact(c)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: marshaling: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("storage: writing %s: %w", s.path, err)
	}
	return nil
}

// Load reads the contact list.
// Returns (contacts, true, nil) if found, (nil, false, nil) if the file does not exist.
func (s *FileStore) Load() ([]contact.Contact, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("storage: reading %s: %w", s.path, err)
	}

	contacts, err := Decode(data)
	if err != nil {
		return nil, false, fmt.Errorf("storage: parsing %s: %w", s.path, err)
	}
	return contacts, true, nil
}

// Decode parses a persisted contact list.
func Decode(data []byte) ([]contact.Contact, error) {
	var file bookFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	contacts := make([]contact.Contact, 0, len(file.Persons))
	for i, p := range file.Persons {
		c, err := p.toContact()
		if err != nil {
			return nil, fmt.Errorf("person %d: %w", i+1, err)
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// SampleContacts decodes the sample contact list named file inside fsys.
func SampleContacts(fsys fs.FS, file string) ([]contact.Contact, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("storage: reading samples: %w", err)
	}
	contacts, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("storage: parsing samples: %w", err)
	}
	return contacts, nil
}
