// Package credstore persists the client credential between runs: the
// access token, the mirrored user record and the raw user id, always
// written and cleared together.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	userModel "github.com/remirami/RecipeBank/internal/models/user"
)

type Credentials struct {
	Token  string         `json:"token"`
	User   userModel.User `json:"user"`
	UserID string         `json:"userId"`
}

type FileStore struct {
	path string
}

// New creates a pointer to a FileStore
func New(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the stored credentials, or nil when none are stored.
// A corrupt file reads as absent; the session layer treats that the same
// as an expired token.
func (s *FileStore) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read credentials: %w", err)
	}

	var credentials Credentials
	if err := json.Unmarshal(data, &credentials); err != nil || credentials.Token == "" {
		return nil, nil
	}
	return &credentials, nil
}

// Save writes the credentials atomically with owner-only permissions.
func (s *FileStore) Save(credentials Credentials) error {
	data, err := json.Marshal(credentials)
	if err != nil {
		return fmt.Errorf("could not encode credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("could not create credentials directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("could not write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("could not store credentials: %w", err)
	}
	return nil
}

// Clear removes the stored credentials. Clearing an empty store is not an
// error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not clear credentials: %w", err)
	}
	return nil
}
