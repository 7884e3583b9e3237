package client

import (
	"os"
	"path/filepath"
	"strings"
)

// TokenStore persists the session token to a single file, the CLI's
// stand-in for the panel's localStorage entry. Presence of a token is the
// whole login state; nothing validates or expires it client-side.
type TokenStore struct {
	path string
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// DefaultTokenPath puts the token under the user config directory.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "salonctl", "token"), nil
}

func (s *TokenStore) SetToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Token returns the stored token, or "" when none is stored.
func (s *TokenStore) Token() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *TokenStore) ClearToken() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *TokenStore) IsAuthenticated() bool {
	return s.Token() != ""
}
