package cognito

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/ports"
)

// SessionCache persistencia de los tokens entre ejecuciones.
type SessionCache interface {
	Load() (*ports.AuthResult, error)
	Save(s *ports.AuthResult) error
	Clear() error
}

// FileCache guarda la sesión en un archivo JSON con permisos 0600.
type FileCache struct {
	Path string
}

// DefaultSessionPath ~/.laika/session.json.
func DefaultSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".laika", "session.json"), nil
}

// Load devuelve (nil, nil) si no hay sesión guardada.
func (f FileCache) Load() (*ports.AuthResult, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var s ports.AuthResult
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("sesión corrupta: %w", err)
	}
	return &s, nil
}

func (f FileCache) Save(s *ports.AuthResult) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, b, 0o600)
}

func (f FileCache) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
