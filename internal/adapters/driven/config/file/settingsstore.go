package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
	"github.com/gitscout-dev/gitscout/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// settingsFile is the on-disk TOML shape of domain.Settings.
type settingsFile struct {
	TrendingBaseURL        string `toml:"trending_base_url,omitempty"`
	RawContentBaseURL      string `toml:"raw_content_base_url,omitempty"`
	UserAgent              string `toml:"user_agent,omitempty"`
	TrendingTimeoutSeconds int    `toml:"trending_timeout_seconds,omitempty"`
	ReadmeTimeoutSeconds   int    `toml:"readme_timeout_seconds,omitempty"`
	MaxReadmeLength        int    `toml:"max_readme_length,omitempty"`
}

// SettingsStore is a file-based implementation of driven.SettingsStore
// using TOML.
type SettingsStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSettingsStore creates a new TOML-based settings store.
// If configDir is empty, defaults to ~/.gitscout/config.toml.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".gitscout")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SettingsStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads settings from the TOML file. A missing file yields
// defaults; unset fields are filled from defaults.
func (s *SettingsStore) Load() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}

	var loaded settingsFile
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return domain.Settings{}, err
	}

	settings := domain.Settings{
		TrendingBaseURL:        loaded.TrendingBaseURL,
		RawContentBaseURL:      loaded.RawContentBaseURL,
		UserAgent:              loaded.UserAgent,
		TrendingTimeoutSeconds: loaded.TrendingTimeoutSeconds,
		ReadmeTimeoutSeconds:   loaded.ReadmeTimeoutSeconds,
		MaxReadmeLength:        loaded.MaxReadmeLength,
	}
	return settings.Normalise(), nil
}

// Save persists the settings with restricted permissions.
func (s *SettingsStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(settingsFile{
		TrendingBaseURL:        settings.TrendingBaseURL,
		RawContentBaseURL:      settings.RawContentBaseURL,
		UserAgent:              settings.UserAgent,
		TrendingTimeoutSeconds: settings.TrendingTimeoutSeconds,
		ReadmeTimeoutSeconds:   settings.ReadmeTimeoutSeconds,
		MaxReadmeLength:        settings.MaxReadmeLength,
	})
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0600)
}
