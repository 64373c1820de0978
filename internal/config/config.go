package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/Rorical/RoriChat/internal/models"
)

// ErrMissingCredential is returned when an operation needs an API token and
// none has been configured.
var ErrMissingCredential = errors.New("no API token configured")

// SessionConfig is the only durable state of the application.
type SessionConfig struct {
	Credential *string
	Model      models.ModelID
}

// fileConfig is the on-disk shape: {"credential": string|null, "model": string}.
type fileConfig struct {
	Credential *string `json:"credential"`
	Model      string  `json:"model"`
}

func Default() SessionConfig {
	return SessionConfig{Model: models.DefaultModel}
}

func (c SessionConfig) HasCredential() bool {
	return c.Credential != nil && *c.Credential != ""
}

func (c SessionConfig) GetCredential() string {
	if c.Credential == nil {
		return ""
	}
	return *c.Credential
}

// WithCredential returns a copy with the token replaced. A blank token clears it.
func (c SessionConfig) WithCredential(token string) SessionConfig {
	token = strings.TrimSpace(token)
	if token == "" {
		c.Credential = nil
		return c
	}
	c.Credential = &token
	return c
}

func (c SessionConfig) WithModel(id models.ModelID) SessionConfig {
	c.Model = id
	return c
}

// Equal compares by value, including the credential contents.
func (c SessionConfig) Equal(other SessionConfig) bool {
	return c.Model == other.Model &&
		c.HasCredential() == other.HasCredential() &&
		c.GetCredential() == other.GetCredential()
}

// Store persists a SessionConfig as JSON at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore returns a store at the per-user config path.
func DefaultStore() (*Store, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return NewStore(configPath), nil
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the config file. A missing file yields the default config.
func (s *Store) Load() (SessionConfig, error) {
	cfg, err := loadConfigFile(s.path)
	if err != nil {
		return Default(), fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Save overwrites the config file wholesale.
func (s *Store) Save(cfg SessionConfig) error {
	if err := ensureConfigDir(s.path); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return saveConfig(cfg, s.path)
}

// HomeDir is the directory holding the .rorichat folder.
func HomeDir() (string, error) {
	// Use RORICHAT_HOME if set, otherwise use user's home directory
	if home := os.Getenv("RORICHAT_HOME"); home != "" {
		return home, nil
	}
	return homedir.Dir()
}

func getConfigPath() (string, error) {
	configDir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ".rorichat", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (SessionConfig, error) {
	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), err
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return Default(), err
	}

	cfg := Default()
	if fc.Credential != nil {
		cfg = cfg.WithCredential(*fc.Credential)
	}
	// Unknown or retired model names fall back to the default.
	if id, err := models.ParseModelID(fc.Model); err == nil {
		cfg.Model = id
	}
	return cfg, nil
}

func saveConfig(cfg SessionConfig, configPath string) error {
	fc := fileConfig{Model: string(cfg.Model)}
	if cfg.HasCredential() {
		token := cfg.GetCredential()
		fc.Credential = &token
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}
