package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL       = "https://qianfan.baidubce.com/v2"
	DefaultTimeout       = 30 * time.Second
	DefaultMarkdownStyle = "dark"
)

// ModalPolicy decides what happens when the config or model selector is
// opened while a request is in flight.
type ModalPolicy string

const (
	// ModalAllow opens the modal and leaves the request running.
	ModalAllow ModalPolicy = "allow"
	// ModalCancel opens the modal and cancels the running request.
	ModalCancel ModalPolicy = "cancel"
	// ModalBlock refuses to open the modal until the request finishes.
	ModalBlock ModalPolicy = "block"
)

func ParseModalPolicy(s string) (ModalPolicy, error) {
	switch p := ModalPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case ModalAllow, ModalCancel, ModalBlock:
		return p, nil
	case "":
		return ModalAllow, nil
	}
	return ModalAllow, fmt.Errorf("unknown modal policy %q", s)
}

// Settings are runtime knobs read from the environment. They are not
// persisted; only SessionConfig is.
type Settings struct {
	BaseURL       string
	Timeout       time.Duration
	LogFile       string
	ModalPolicy   ModalPolicy
	MarkdownStyle string
}

// LoadSettings reads RORICHAT_* variables, after loading a .env file from the
// working directory when one exists.
func LoadSettings() (Settings, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Settings{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return settingsFromEnv()
}

func settingsFromEnv() (Settings, error) {
	s := Settings{
		BaseURL:       getEnv("RORICHAT_BASE_URL", DefaultBaseURL),
		Timeout:       DefaultTimeout,
		MarkdownStyle: getEnv("RORICHAT_MARKDOWN_STYLE", DefaultMarkdownStyle),
	}

	if v := os.Getenv("RORICHAT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return s, fmt.Errorf("invalid RORICHAT_TIMEOUT %q", v)
		}
		s.Timeout = d
	}

	policy, err := ParseModalPolicy(os.Getenv("RORICHAT_MODAL_WHILE_LOADING"))
	if err != nil {
		return s, err
	}
	s.ModalPolicy = policy

	s.LogFile = os.Getenv("RORICHAT_LOG_FILE")
	if s.LogFile == "" {
		home, err := HomeDir()
		if err != nil {
			return s, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		s.LogFile = filepath.Join(home, ".rorichat", "rorichat.log")
	}

	return s, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
