package fs

import (
	"Nuremento/internal/cli/repo"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoToken - токен ещё не сохранён.
var ErrNoToken = errors.New("not logged in: run `login <token>` or `dev-token <owner-id>` first")

// AuthFSStore - файловое хранилище auth-токена CLI.
type AuthFSStore struct {
	Path string
}

var _ repo.TokenStore = AuthFSStore{}

// NewAuthFSStore хранит токен в файле path.
func NewAuthFSStore(path string) AuthFSStore {
	return AuthFSStore{Path: path}
}

// Save сохраняет auth‑токен в файл (0600), создавая каталог при необходимости.
func (s AuthFSStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	if s.Path == "" {
		return errors.New("token file path is not configured")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load читает auth‑токен из файла.
func (s AuthFSStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	tok := strings.TrimSpace(string(b))
	if tok == "" {
		return "", ErrNoToken
	}
	return tok, nil
}

// Clear удаляет файл токена; отсутствие файла ошибкой не считается.
func (s AuthFSStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
